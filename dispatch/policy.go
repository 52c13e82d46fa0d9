package dispatch

import "expresocargas/models"

// submissionPolicy collects the role-conditional suppression rules in one
// place instead of scattering them through the composer.
//
// SuppressCatalogDimensions: never send client-supplied dimensions for
// predefined catalog bags.
// OmitNonCUITTaxID: drop the tax-id field when the stripped digits are not a
// full 11-digit CUIT; the carrier rejects short IDs coming from this role.
type submissionPolicy struct {
	SuppressCatalogDimensions bool
	OmitNonCUITTaxID          bool
}

var policies = map[string]submissionPolicy{
	models.RoleOperator: {SuppressCatalogDimensions: true, OmitNonCUITTaxID: true},
	models.RoleAdmin:    {SuppressCatalogDimensions: false, OmitNonCUITTaxID: false},
}

// policyFor returns the submission policy for a role. Unknown roles get the
// operator's restricted policy.
func policyFor(role string) submissionPolicy {
	if p, ok := policies[role]; ok {
		return p
	}
	return policies[models.RoleOperator]
}

package dispatch

import (
	"fmt"
	"strings"

	"expresocargas/backend"
	"expresocargas/models"
)

// AuthContext carries the credentials under which a submission happens: the
// carrier bearer token, the employee role driving the suppression policy and
// the branch the employee operates from, when known.
type AuthContext struct {
	Token      string
	Role       string
	BranchName string
}

const fallbackPostal = "0000"

// Delivery-type labels used on the notes line.
var deliveryLabels = map[string]string{
	models.DeliveryBranch: "Retiro en sucursal",
	models.DeliveryHome:   "Entrega a domicilio",
}

// Compose is the pure transformation from an in-progress draft to the
// carrier's order-creation request. It never sends a client identifier: the
// logged-in employee is not the shipping client, so raw client fields go out
// and the carrier resolves or creates the record.
func Compose(d *models.DispatchDraft, auth AuthContext) backend.CreateOrderRequest {
	policy := policyFor(auth.Role)

	req := backend.CreateOrderRequest{
		ClientType:   d.ClientType,
		DeliveryType: deliveryType(d),
		Packages:     composePackages(d.Packages, policy),
		Price:        FinalPrice(d),
		Notes:        composeNotes(d, auth),
	}

	if d.Sender != nil {
		req.ClientName = d.Sender.FullName
		req.ClientPhone = d.Sender.Phone
		req.ClientEmail = d.Sender.Email
		req.ClientAddress = d.Sender.Address
		if taxID, ok := formatTaxID(*d.Sender, policy); ok {
			req.ClientTaxID = taxID
		}
	}

	if d.Quote != nil {
		req.OriginPostal = d.Quote.Origin.PostalCode
	}
	req.DestinationAddress, req.DestinationPostal = composeDestination(d)

	return req
}

// formatTaxID normalizes the sender's DNI/CUIT field. Exactly 11 digits
// become the dashed CUIT form. Anything shorter is omitted under the
// restricted policy (the carrier rejects it) and passed through as stripped
// digits otherwise.
func formatTaxID(sender models.Person, policy submissionPolicy) (string, bool) {
	digits := sender.Digits()
	if len(digits) == 11 {
		return digits[:2] + "-" + digits[2:10] + "-" + digits[10:], true
	}
	if policy.OmitNonCUITTaxID {
		return "", false
	}
	return digits, true
}

// composeDestination resolves the destination address line and postal code.
// Three mutually exclusive branches: branch pickup composes from the fixed
// directory and never consults the recipient's raw address; home delivery
// joins the non-empty address parts; the fallback uses the recipient's raw
// address plus the quote's destination.
func composeDestination(d *models.DispatchDraft) (string, string) {
	if d.Delivery != nil && d.Delivery.Type == models.DeliveryBranch {
		if b := models.FindBranch(d.Delivery.BranchID); b != nil {
			return fmt.Sprintf("%s, %s, %s", b.Address, b.City, b.Province), b.PostalCode
		}
	}

	if d.Delivery != nil && d.Delivery.Type == models.DeliveryHome && d.Delivery.Home != nil {
		home := d.Delivery.Home

		street := strings.TrimSpace(home.Street)
		if street != "" && home.Number != "" {
			street += " " + home.Number
		}
		if street == "" {
			street = home.Address
		}

		parts := joinNonEmpty(street, home.Floor, home.Neighborhood, home.Locality, home.Province)

		postal := home.PostalCode
		if postal == "" && d.Quote != nil {
			postal = d.Quote.Destination.PostalCode
		}
		if postal == "" {
			postal = fallbackPostal
		}
		return parts, postal
	}

	var addr, name, province, postal string
	if d.Recipient != nil {
		addr = d.Recipient.Address
	}
	if d.Quote != nil {
		name = d.Quote.Destination.Name
		province = d.Quote.Destination.Province
		postal = d.Quote.Destination.PostalCode
	}
	if postal == "" {
		postal = fallbackPostal
	}
	return joinNonEmpty(addr, name, province), postal
}

// composePackages maps draft packages to wire bultos. Dimensions for catalog
// bags are dropped entirely under the restricted policy; for every other
// case a dimension travels only when it is at least 1.
func composePackages(packages []models.Package, policy submissionPolicy) []backend.OrderPackage {
	out := make([]backend.OrderPackage, len(packages))
	for i, p := range packages {
		op := backend.OrderPackage{
			Description:   p.Description,
			Weight:        p.Weight,
			DeclaredValue: p.DeclaredValue,
		}
		suppress := policy.SuppressCatalogDimensions && !p.IsCustom()
		if !suppress {
			op.Height = dimension(p.Height)
			op.Width = dimension(p.Width)
			op.Depth = dimension(p.Length)
		}
		out[i] = op
	}
	return out
}

// dimension admits a value only when it is a real measurement: present and
// at least 1.
func dimension(v float64) *float64 {
	if v < 1 {
		return nil
	}
	return &v
}

// composeNotes assembles the single pipe-delimited observations line.
func composeNotes(d *models.DispatchDraft, auth AuthContext) string {
	var segments []string

	if auth.BranchName != "" {
		segments = append(segments, auth.BranchName)
	}
	if d.Quote != nil && d.Quote.Description != "" {
		segments = append(segments, d.Quote.Description)
	}
	if d.Delivery != nil {
		if label := deliveryLabels[d.Delivery.Type]; label != "" {
			segments = append(segments, label)
		}
		if d.Delivery.Type == models.DeliveryBranch {
			if b := models.FindBranch(d.Delivery.BranchID); b != nil {
				segments = append(segments, b.Name)
			}
		}
		if d.Delivery.Type == models.DeliveryHome && d.Delivery.Home != nil && d.Delivery.Home.Reference != "" {
			segments = append(segments, d.Delivery.Home.Reference)
		}
	}
	if d.Recipient != nil {
		segments = append(segments, fmt.Sprintf("Destinatario: %s, DNI %s, Tel %s",
			d.Recipient.FullName, d.Recipient.TaxID, d.Recipient.Phone))
	}

	return strings.Join(segments, " | ")
}

func deliveryType(d *models.DispatchDraft) string {
	if d.Delivery != nil {
		return d.Delivery.Type
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expresocargas/models"
)

func operatorAuth() AuthContext {
	return AuthContext{Token: "tok", Role: models.RoleOperator, BranchName: "Casa Central San Rafael"}
}

func adminAuth() AuthContext {
	return AuthContext{Token: "tok", Role: models.RoleAdmin}
}

func draftWithSender(taxID string) *models.DispatchDraft {
	d := NewDraft("s1")
	q := sampleQuote(models.BultoLine{Weight: 5})
	SelectQuote(d, q, "Caja", 1, models.PackageTypeCustom)
	UpdateSender(d, models.Person{
		FullName: "Ana López",
		TaxID:    taxID,
		Email:    "ana@example.com",
		Phone:    "2604123456",
		Address:  "Av. Mitre 450",
	})
	UpdateRecipient(d, models.Person{
		FullName: "Beto Díaz",
		TaxID:    "30111222333",
		Email:    "beto@example.com",
		Phone:    "1145678901",
		Address:  "Córdoba 1200",
	})
	return d
}

func TestComposeFormatsElevenDigitCUIT(t *testing.T) {
	d := draftWithSender("20123456789")
	req := Compose(d, operatorAuth())
	assert.Equal(t, "20-12345678-9", req.ClientTaxID)

	d = draftWithSender("30-11122233-3")
	req = Compose(d, adminAuth())
	assert.Equal(t, "30-11122233-3", req.ClientTaxID)
}

func TestComposeTaxIDByRole(t *testing.T) {
	// 8-digit DNI: omitted for the operator, raw for the admin
	d := draftWithSender("34567890")
	assert.Empty(t, Compose(d, operatorAuth()).ClientTaxID)
	assert.Equal(t, "34567890", Compose(d, adminAuth()).ClientTaxID)

	// other digit counts: omitted for the operator, stripped digits for admin
	d = draftWithSender("123")
	assert.Empty(t, Compose(d, operatorAuth()).ClientTaxID)
	assert.Equal(t, "123", Compose(d, adminAuth()).ClientTaxID)

	// unknown role falls back to the restricted policy
	d = draftWithSender("34567890")
	req := Compose(d, AuthContext{Token: "tok", Role: "otro"})
	assert.Empty(t, req.ClientTaxID)
}

func TestComposeNeverSendsClientID(t *testing.T) {
	d := draftWithSender("20123456789")
	req := Compose(d, operatorAuth())
	assert.Equal(t, "Ana López", req.ClientName)
	assert.Equal(t, "2604123456", req.ClientPhone)
	assert.Equal(t, "ana@example.com", req.ClientEmail)
	assert.Equal(t, "Av. Mitre 450", req.ClientAddress)
}

func TestComposeDimensionSuppression(t *testing.T) {
	d := draftWithSender("20123456789")
	d.Packages = []models.Package{{
		Description: "Bolsa", Weight: 2,
		Height: 10, Width: 40, Length: 60,
		Type: "bolsa 40x60",
	}}

	// operator + predefined bag: all dimensions dropped
	req := Compose(d, operatorAuth())
	require.Len(t, req.Packages, 1)
	assert.Nil(t, req.Packages[0].Height)
	assert.Nil(t, req.Packages[0].Width)
	assert.Nil(t, req.Packages[0].Depth)

	// admin sends them
	req = Compose(d, adminAuth())
	require.NotNil(t, req.Packages[0].Width)
	assert.Equal(t, 40.0, *req.Packages[0].Width)

	// custom package under operator: sub-1 values dropped individually
	d.Packages = []models.Package{{
		Description: "Caja", Weight: 2,
		Height: 0.5, Width: 20, Length: 30,
		Type: models.PackageTypeCustom,
	}}
	req = Compose(d, operatorAuth())
	assert.Nil(t, req.Packages[0].Height)
	require.NotNil(t, req.Packages[0].Width)
	assert.Equal(t, 20.0, *req.Packages[0].Width)
	require.NotNil(t, req.Packages[0].Depth)
	assert.Equal(t, 30.0, *req.Packages[0].Depth)
}

func TestComposeDestinationBranchPickup(t *testing.T) {
	d := draftWithSender("20123456789")
	SetDeliveryTarget(d, models.DeliveryTarget{Type: models.DeliveryBranch, BranchID: 2})

	req := Compose(d, operatorAuth())
	assert.Equal(t, "Av. Warnes 2340, CABA, Buenos Aires", req.DestinationAddress)
	assert.Equal(t, "1417", req.DestinationPostal)
	// the recipient's raw address never leaks into a branch pickup
	assert.NotContains(t, req.DestinationAddress, "Córdoba 1200")
}

func TestComposeDestinationHomeDelivery(t *testing.T) {
	d := draftWithSender("20123456789")
	SetDeliveryTarget(d, models.DeliveryTarget{
		Type: models.DeliveryHome,
		Home: &models.HomeAddress{
			Street:       "Rivadavia",
			Number:       "100",
			Floor:        "2B",
			Neighborhood: "Centro",
			Locality:     "Rosario",
			Province:     "Santa Fe",
			Reference:    "timbre roto, llamar",
		},
	})

	req := Compose(d, operatorAuth())
	assert.Equal(t, "Rivadavia 100, 2B, Centro, Rosario, Santa Fe", req.DestinationAddress)
	// no postal on the home record: the quote's destination postal applies
	assert.Equal(t, "2000", req.DestinationPostal)
	assert.Contains(t, req.Notes, "timbre roto, llamar")
}

func TestComposeDestinationHomeMinimal(t *testing.T) {
	d := draftWithSender("20123456789")
	d.Quote.Destination.PostalCode = "1000"
	SetDeliveryTarget(d, models.DeliveryTarget{
		Type: models.DeliveryHome,
		Home: &models.HomeAddress{Street: "Rivadavia", Number: "100"},
	})

	req := Compose(d, operatorAuth())
	assert.Equal(t, "Rivadavia 100", req.DestinationAddress)
	assert.Equal(t, "1000", req.DestinationPostal)
}

func TestComposeDestinationHomeFreeform(t *testing.T) {
	d := draftWithSender("20123456789")
	d.Quote.Destination.PostalCode = ""
	SetDeliveryTarget(d, models.DeliveryTarget{
		Type: models.DeliveryHome,
		Home: &models.HomeAddress{Address: "Ruta 143 km 12"},
	})

	req := Compose(d, operatorAuth())
	assert.Equal(t, "Ruta 143 km 12", req.DestinationAddress)
	assert.Equal(t, "0000", req.DestinationPostal)
}

func TestComposeDestinationFallback(t *testing.T) {
	d := draftWithSender("20123456789")
	// no delivery target at all
	req := Compose(d, operatorAuth())
	assert.Equal(t, "Córdoba 1200, Rosario, Santa Fe", req.DestinationAddress)
	assert.Equal(t, "2000", req.DestinationPostal)

	d.Quote.Destination.PostalCode = ""
	req = Compose(d, operatorAuth())
	assert.Equal(t, "0000", req.DestinationPostal)
}

func TestComposeNotes(t *testing.T) {
	d := draftWithSender("20123456789")
	SetDeliveryTarget(d, models.DeliveryTarget{Type: models.DeliveryBranch, BranchID: 1})

	req := Compose(d, operatorAuth())
	assert.Equal(t,
		"Casa Central San Rafael | Sucursal a sucursal | Retiro en sucursal | "+
			"Casa Central San Rafael | Destinatario: Beto Díaz, DNI 30111222333, Tel 1145678901",
		req.Notes)
}

func TestComposePrice(t *testing.T) {
	d := draftWithSender("20123456789")
	assert.Equal(t, 1500.0, Compose(d, operatorAuth()).Price)

	manual := 1800.0
	SetManualPrice(d, &manual)
	assert.Equal(t, 1800.0, Compose(d, operatorAuth()).Price)
}

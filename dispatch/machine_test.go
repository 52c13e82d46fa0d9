package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expresocargas/models"
)

func sampleQuote(bultos ...models.BultoLine) models.Quote {
	return models.Quote{
		ID: 42,
		Origin: models.Locality{
			ID: 1, Name: "San Rafael", Province: "Mendoza", PostalCode: "5600",
		},
		Destination: models.Locality{
			ID: 2, Name: "Rosario", Province: "Santa Fe", PostalCode: "2000",
		},
		Bultos:      bultos,
		Price:       1500,
		Service:     models.ServiceBranchToBranch,
		Description: "Sucursal a sucursal",
	}
}

func TestSelectQuoteReplicatesSingleBulto(t *testing.T) {
	d := NewDraft("s1")
	q := sampleQuote(models.BultoLine{Weight: 5, DeclaredValue: 1000})

	SelectQuote(d, q, "Caja", 3, models.PackageTypeCustom)

	require.Len(t, d.Packages, 3)
	for _, p := range d.Packages {
		assert.Equal(t, "Caja", p.Description)
		assert.Equal(t, 5.0, p.Weight)
		assert.Equal(t, 1000.0, p.DeclaredValue)
	}
}

func TestSelectQuoteKeepsExactCount(t *testing.T) {
	d := NewDraft("s1")
	q := sampleQuote(
		models.BultoLine{Weight: 5},
		models.BultoLine{Weight: 7},
	)

	SelectQuote(d, q, "Caja", 2, models.PackageTypeCustom)

	require.Len(t, d.Packages, 2)
	assert.Equal(t, 5.0, d.Packages[0].Weight)
	assert.Equal(t, 7.0, d.Packages[1].Weight)
}

func TestSelectQuoteForcesBagDimensions(t *testing.T) {
	d := NewDraft("s1")
	q := sampleQuote(models.BultoLine{Weight: 2, Height: 10, Width: 99, Length: 99})

	SelectQuote(d, q, "Bolsa", 1, "bolsa 40x60")

	require.Len(t, d.Packages, 1)
	p := d.Packages[0]
	assert.Equal(t, 40.0, p.Width)
	assert.Equal(t, 60.0, p.Length)
	assert.Zero(t, p.Height)
	assert.False(t, p.IsCustom())
}

func TestSelectQuoteCustomKeepsDimensions(t *testing.T) {
	d := NewDraft("s1")
	q := sampleQuote(models.BultoLine{Weight: 2, Height: 10, Width: 20, Length: 30})

	SelectQuote(d, q, "Caja", 1, models.PackageTypeCustom)

	p := d.Packages[0]
	assert.Equal(t, 10.0, p.Height)
	assert.Equal(t, 20.0, p.Width)
	assert.Equal(t, 30.0, p.Length)
	assert.True(t, p.IsCustom())
}

func TestSelectQuoteResetsFlow(t *testing.T) {
	d := NewDraft("s1")
	d.Step = models.StepSenderRecipient
	d.Error = "algo falló"

	SelectQuote(d, sampleQuote(models.BultoLine{Weight: 1}), "Caja", 1, models.PackageTypeCustom)

	assert.Equal(t, models.StepQuote, d.Step)
	assert.Empty(t, d.Error)
}

func TestFinalPrice(t *testing.T) {
	d := NewDraft("s1")
	assert.Equal(t, 0.0, FinalPrice(d))

	q := sampleQuote(models.BultoLine{Weight: 1})
	SelectQuote(d, q, "Caja", 1, models.PackageTypeCustom)
	assert.Equal(t, 1500.0, FinalPrice(d))

	override := 2000.0
	SetManualPrice(d, &override)
	assert.Equal(t, 2000.0, FinalPrice(d))

	// an explicit zero still wins over the quote
	zero := 0.0
	SetManualPrice(d, &zero)
	assert.Equal(t, 0.0, FinalPrice(d))

	SetManualPrice(d, nil)
	assert.Equal(t, 1500.0, FinalPrice(d))
}

func validParty(name string) models.Person {
	return models.Person{
		FullName: name,
		TaxID:    "20123456789",
		Email:    name + "@example.com",
		Phone:    "2604123456",
		Address:  "Calle Falsa 123",
	}
}

func TestAdvanceValidatesEachStep(t *testing.T) {
	d := NewDraft("s1")

	assert.ErrorIs(t, Advance(d), ErrNoQuote)

	SelectQuote(d, sampleQuote(models.BultoLine{Weight: 3}), "Caja", 1, models.PackageTypeCustom)
	require.NoError(t, Advance(d))
	assert.Equal(t, models.StepPackages, d.Step)

	// a package without weight blocks the packages step
	UpdatePackages(d, []models.Package{{Description: "Caja", Weight: 0}})
	assert.ErrorIs(t, Advance(d), ErrBadPackage)

	UpdatePackages(d, []models.Package{{Description: "Caja", Weight: 3}})
	require.NoError(t, Advance(d))
	assert.Equal(t, models.StepSenderRecipient, d.Step)

	assert.ErrorIs(t, Advance(d), ErrNoSender)
	UpdateSender(d, validParty("ana"))
	assert.ErrorIs(t, Advance(d), ErrNoRecipient)
	UpdateRecipient(d, validParty("beto"))
	require.NoError(t, Advance(d))
	assert.Equal(t, models.StepConfirmation, d.Step)

	assert.ErrorIs(t, Advance(d), ErrLastStep)
}

func TestBackNeverValidates(t *testing.T) {
	d := NewDraft("s1")
	assert.ErrorIs(t, Back(d), ErrFirstStep)

	d.Step = models.StepConfirmation
	require.NoError(t, Back(d))
	require.NoError(t, Back(d))
	require.NoError(t, Back(d))
	assert.Equal(t, models.StepQuote, d.Step)
	assert.ErrorIs(t, Back(d), ErrFirstStep)
}

// Three packages selected, then one edited: the others stay untouched and
// the count never drifts from the quote's bulto count.
func TestEditOnePackageOfThree(t *testing.T) {
	d := NewDraft("s1")
	SelectQuote(d, sampleQuote(models.BultoLine{Weight: 5}), "Caja", 3, models.PackageTypeCustom)
	require.Len(t, d.Packages, 3)

	edited := make([]models.Package, len(d.Packages))
	copy(edited, d.Packages)
	edited[1].Description = "Repuestos"
	edited[1].Weight = 8
	UpdatePackages(d, edited)

	require.Len(t, d.Packages, 3)
	assert.Equal(t, "Caja", d.Packages[0].Description)
	assert.Equal(t, "Repuestos", d.Packages[1].Description)
	assert.Equal(t, 8.0, d.Packages[1].Weight)
	assert.Equal(t, "Caja", d.Packages[2].Description)
}

func TestResetRestoresEmptyDraft(t *testing.T) {
	d := NewDraft("s1")
	SelectQuote(d, sampleQuote(models.BultoLine{Weight: 1}), "Caja", 2, models.PackageTypeCustom)
	UpdateSender(d, validParty("ana"))
	price := 99.0
	SetManualPrice(d, &price)

	Reset(d)

	assert.Equal(t, "s1", d.SessionID)
	assert.Nil(t, d.Quote)
	assert.Nil(t, d.Sender)
	assert.Nil(t, d.ManualPrice)
	assert.Empty(t, d.Packages)
	assert.Equal(t, models.StepQuote, d.Step)
	assert.Equal(t, models.ClientIndividual, d.ClientType)
}

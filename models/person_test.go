package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonDigits(t *testing.T) {
	assert.Equal(t, "20123456789", Person{TaxID: "20-12345678-9"}.Digits())
	assert.Equal(t, "34567890", Person{TaxID: "34.567.890"}.Digits())
	assert.Equal(t, "", Person{}.Digits())
}

func TestPersonValidate(t *testing.T) {
	valid := Person{
		FullName: "Ana López",
		TaxID:    "34567890",
		Email:    "ana@example.com",
		Phone:    "2604123456",
	}
	assert.NoError(t, valid.Validate())

	// 7-digit DNI and 11-digit CUIT are both accepted
	p := valid
	p.TaxID = "4567890"
	assert.NoError(t, p.Validate())
	p.TaxID = "20-12345678-9"
	assert.NoError(t, p.Validate())

	p = valid
	p.FullName = "  "
	assert.Error(t, p.Validate())

	p = valid
	p.TaxID = "123456"
	assert.Error(t, p.Validate())
	p.TaxID = "123456789"
	assert.Error(t, p.Validate())

	p = valid
	p.Phone = "260412345"
	assert.Error(t, p.Validate())
	p.Phone = "26041234567"
	assert.Error(t, p.Validate())
	// formatting characters are stripped before counting
	p.Phone = "(260) 412-3456"
	assert.NoError(t, p.Validate())

	p = valid
	p.Email = "no-es-un-email"
	assert.Error(t, p.Validate())
}

func TestCatalogID(t *testing.T) {
	assert.Equal(t, int64(1), CatalogID("bolsa 30x40"))
	assert.Equal(t, int64(2), CatalogID("bolsa 40x60"))
	assert.Equal(t, int64(3), CatalogID("bolsa 60x80"))
	assert.Equal(t, int64(0), CatalogID(PackageTypeCustom))
	assert.Equal(t, int64(0), CatalogID("bolsa 99x99"))
}

func TestPackageIsCustom(t *testing.T) {
	assert.True(t, Package{Type: ""}.IsCustom())
	assert.True(t, Package{Type: PackageTypeCustom}.IsCustom())
	assert.False(t, Package{Type: "bolsa 30x40"}.IsCustom())
}

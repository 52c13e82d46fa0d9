package models

// PackageTypeCustom marks a free-form bulto; every other type refers to a
// predefined bag size from the carrier catalog.
const PackageTypeCustom = "personalizado"

// Catalog of predefined bag sizes. The key doubles as the dimension token
// ("WIDTHxLENGTH" in cm) parsed when the bag is selected; the value is the
// carrier's articulos_id for quoting.
var PackageCatalog = map[string]int64{
	"bolsa 30x40": 1,
	"bolsa 40x60": 2,
	"bolsa 60x80": 3,
}

// CatalogID maps a package type to the carrier's catalog identifier.
// Custom (or unknown) packages quote with identifier 0.
func CatalogID(packageType string) int64 {
	if id, ok := PackageCatalog[packageType]; ok {
		return id
	}
	return 0
}

// Package is one physical item to ship. The count of packages on a draft
// always equals the bulto count of the selected quote.
type Package struct {
	Description   string  `json:"descripcion" bson:"descripcion"`
	Weight        float64 `json:"peso" bson:"peso"`
	DeclaredValue float64 `json:"valor_declarado" bson:"valor_declarado"`
	Height        float64 `json:"alto" bson:"alto"`
	Width         float64 `json:"ancho" bson:"ancho"`
	Length        float64 `json:"largo" bson:"largo"`
	Type          string  `json:"tipo,omitempty" bson:"tipo,omitempty"`
}

// IsCustom reports whether the package is a free-form bulto rather than a
// predefined catalog bag.
func (p Package) IsCustom() bool {
	return p.Type == "" || p.Type == PackageTypeCustom
}

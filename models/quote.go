package models

// Locality is a serviced town/city record as returned by the carrier's
// locality search.
type Locality struct {
	ID         int64  `json:"id" bson:"id"`
	Name       string `json:"nombre" bson:"nombre"`
	Province   string `json:"provincia" bson:"provincia"`
	PostalCode string `json:"codigo_postal" bson:"codigo_postal"`
}

// BultoLine is one weight/dimension/declared-value line item on a quote.
type BultoLine struct {
	Weight        float64 `json:"peso" bson:"peso"`
	DeclaredValue float64 `json:"valor_declarado" bson:"valor_declarado"`
	Height        float64 `json:"alto" bson:"alto"`
	Width         float64 `json:"ancho" bson:"ancho"`
	Length        float64 `json:"largo" bson:"largo"`
}

// Service classes offered by the carrier.
const (
	ServiceBranchToBranch = "sucursal_sucursal"
	ServiceDoorToDoor     = "puerta_puerta"
)

// Quote is a priced shipping option for an origin/destination/package
// combination. Once selected into a dispatch draft it is immutable: a new
// selection replaces it wholesale, it is never patched.
type Quote struct {
	ID          int64       `json:"id" bson:"id"`
	Origin      Locality    `json:"origen" bson:"origen"`
	Destination Locality    `json:"destino" bson:"destino"`
	Bultos      []BultoLine `json:"bultos" bson:"bultos"`
	Price       float64     `json:"precio" bson:"precio"`
	Service     string      `json:"servicio" bson:"servicio"`
	Description string      `json:"descripcion" bson:"descripcion"`
	TransitTime string      `json:"tiempo_estimado,omitempty" bson:"tiempo_estimado,omitempty"`
}

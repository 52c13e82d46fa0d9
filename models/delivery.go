package models

// Delivery target kinds.
const (
	DeliveryBranch = "sucursal"
	DeliveryHome   = "domicilio"
)

// HomeAddress is the free-form destination record for door delivery. Every
// sub-field is optional; Address carries a freeform line used when the
// street/number pair is absent.
type HomeAddress struct {
	Street       string `json:"calle,omitempty" bson:"calle,omitempty"`
	Number       string `json:"numero,omitempty" bson:"numero,omitempty"`
	Floor        string `json:"piso_depto,omitempty" bson:"piso_depto,omitempty"`
	Neighborhood string `json:"barrio,omitempty" bson:"barrio,omitempty"`
	Locality     string `json:"localidad,omitempty" bson:"localidad,omitempty"`
	Province     string `json:"provincia,omitempty" bson:"provincia,omitempty"`
	PostalCode   string `json:"codigo_postal,omitempty" bson:"codigo_postal,omitempty"`
	Address      string `json:"direccion,omitempty" bson:"direccion,omitempty"`
	Reference    string `json:"referencia,omitempty" bson:"referencia,omitempty"`
}

// DeliveryTarget is a tagged choice between branch pickup and home delivery.
// BranchID references the fixed branch directory when Type is
// DeliveryBranch; Home is set when Type is DeliveryHome.
type DeliveryTarget struct {
	Type     string       `json:"tipo" bson:"tipo"`
	BranchID int64        `json:"sucursal_id,omitempty" bson:"sucursal_id,omitempty"`
	Home     *HomeAddress `json:"domicilio,omitempty" bson:"domicilio,omitempty"`
}

package models

import "time"

// Preorder statuses as reported by the carrier.
const (
	PreorderPending   = "PENDING"
	PreorderCompleted = "COMPLETED"
	PreorderCancelled = "CANCELLED"
)

// Preorder is a submitted shipment record awaiting or undergoing processing,
// identified by a human-readable voucher number.
type Preorder struct {
	ID            int64     `json:"id"`
	VoucherNumber string    `json:"numero_comprobante"`
	Status        string    `json:"status"`
	ClientName    string    `json:"nombre_cliente"`
	ClientTaxID   string    `json:"cuit,omitempty"`
	ClientPhone   string    `json:"telefono,omitempty"`
	ClientEmail   string    `json:"email,omitempty"`
	Origin        string    `json:"origen,omitempty"`
	Destination   string    `json:"destino,omitempty"`
	DestPostal    string    `json:"dpostal,omitempty"`
	Packages      []Package `json:"paquetes,omitempty"`
	Price         float64   `json:"precio"`
	Notes         string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

package models

import "time"

// Container (reparto) statuses.
const (
	ContainerPreparing = "PREPARING"
	ContainerInTransit = "IN_TRANSIT"
	ContainerArrived   = "ARRIVED"
)

// Container is a delivery run aggregating preorders onto one transport.
type Container struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Status      string    `json:"status"`
	TransportID int64     `json:"transporte_id,omitempty"`
	PreorderIDs []int64   `json:"preorder_ids,omitempty"`
	Departure   time.Time `json:"salida,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

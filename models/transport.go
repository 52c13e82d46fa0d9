package models

import "time"

// Transport is a company vehicle assignable to delivery runs.
type Transport struct {
	ID         int64     `json:"id"`
	Plate      string    `json:"patente"`
	Brand      string    `json:"marca"`
	Model      string    `json:"modelo"`
	CapacityKG float64   `json:"capacidad_kg"`
	Driver     string    `json:"conductor,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

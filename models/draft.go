package models

import "time"

// Wizard steps, strictly ordered.
type Step int

const (
	StepQuote Step = iota
	StepPackages
	StepSenderRecipient
	StepConfirmation
)

// Client type tags.
const (
	ClientIndividual = "particular"
	ClientCompany    = "empresa"
)

// DispatchDraft is the aggregate root of the wizard: the in-progress order.
// Exactly one draft exists per session. It is persisted after every committed
// mutation so a reload resumes mid-flow, and cleared only on successful
// submission or explicit reset. IsSubmitting and Error are transient UI
// state and are never persisted.
type DispatchDraft struct {
	SessionID   string          `json:"session_id" bson:"session_id"`
	Quote       *Quote          `json:"cotizacion,omitempty" bson:"cotizacion,omitempty"`
	Packages    []Package       `json:"paquetes,omitempty" bson:"paquetes,omitempty"`
	Sender      *Person         `json:"remitente,omitempty" bson:"remitente,omitempty"`
	Recipient   *Person         `json:"destinatario,omitempty" bson:"destinatario,omitempty"`
	ClientType  string          `json:"tipo_cliente,omitempty" bson:"tipo_cliente,omitempty"`
	Delivery    *DeliveryTarget `json:"entrega,omitempty" bson:"entrega,omitempty"`
	ManualPrice *float64        `json:"precio_manual,omitempty" bson:"precio_manual,omitempty"`
	Step        Step            `json:"paso" bson:"paso"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`

	IsSubmitting bool   `json:"-" bson:"-"`
	Error        string `json:"-" bson:"-"`
}

// SubmissionResult is the carrier's answer to a successful order creation.
type SubmissionResult struct {
	ID            int64  `json:"id"`
	VoucherNumber string `json:"numero_comprobante"`
}

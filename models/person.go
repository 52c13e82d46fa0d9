package models

import (
	"errors"
	"regexp"
	"strings"
)

// Person is a shipment party, either sender or recipient.
type Person struct {
	FullName string `json:"nombre" bson:"nombre"`
	TaxID    string `json:"dni" bson:"dni"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"telefono" bson:"telefono"`
	Address  string `json:"direccion" bson:"direccion"`
}

var (
	nonDigits = regexp.MustCompile(`\D`)
	emailRe   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Digits returns the tax ID stripped of every non-digit character.
func (p Person) Digits() string {
	return nonDigits.ReplaceAllString(p.TaxID, "")
}

// Validate checks the party fields: DNI of 7-8 digits or CUIT of 11 digits,
// phone of exactly 10 digits and a well-formed email.
func (p Person) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return errors.New("el nombre es obligatorio")
	}
	switch n := len(p.Digits()); {
	case n >= 7 && n <= 8, n == 11:
	default:
		return errors.New("el DNI debe tener 7 u 8 dígitos, o 11 para CUIT")
	}
	if phone := nonDigits.ReplaceAllString(p.Phone, ""); len(phone) != 10 {
		return errors.New("el teléfono debe tener exactamente 10 dígitos")
	}
	if !emailRe.MatchString(p.Email) {
		return errors.New("el email no es válido")
	}
	return nil
}

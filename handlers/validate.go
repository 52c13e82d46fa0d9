package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate checks request DTOs. Besides the builtin tags, two local rules:
// dni_cuit (7-8 digit DNI or 11 digit CUIT, separators tolerated) and
// phone10 (exactly 10 digits).
var validate = newValidator()

var digitsOnly = regexp.MustCompile(`\D`)

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("dni_cuit", func(fl validator.FieldLevel) bool {
		n := len(digitsOnly.ReplaceAllString(fl.Field().String(), ""))
		return (n >= 7 && n <= 8) || n == 11
	})

	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(digitsOnly.ReplaceAllString(fl.Field().String(), "")) == 10
	})

	return v
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := map[int]string{
		1:       "uno",
		15:      "quince",
		21:      "veintiuno",
		30:      "treinta",
		45:      "cuarenta y cinco",
		100:     "cien",
		101:     "ciento uno",
		500:     "quinientos",
		999:     "novecientos noventa y nueve",
		1000:    "mil",
		1500:    "mil quinientos",
		21000:   "veintiuno mil",
		350400:  "trescientos cincuenta mil cuatrocientos",
		1000000: "un millón",
		2500000: "dos millones quinientos mil",
	}
	for num, want := range cases {
		assert.Equal(t, want, NumberToWords(num), "num=%d", num)
	}
}

func TestAmountToWords(t *testing.T) {
	cases := map[float64]string{
		0:       "Cero pesos",
		1500:    "Mil quinientos pesos",
		1500.50: "Mil quinientos pesos con cincuenta centavos",
		0.75:    "Setenta y cinco centavos",
		2.05:    "Dos pesos con cinco centavos",
	}
	for amount, want := range cases {
		assert.Equal(t, want, AmountToWords(amount), "amount=%v", amount)
	}
}

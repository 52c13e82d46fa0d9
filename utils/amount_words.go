package utils

import (
	"math"
	"strings"
	"unicode"
)

var unidades = []string{
	"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var decenas = []string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var centenas = []string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos",
	"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
}

func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 30:
		return unidades[num]
	case num < 100:
		if num%10 == 0 {
			return decenas[num/10]
		}
		return decenas[num/10] + " y " + unidades[num%10]
	case num == 100:
		return "cien"
	case num < 1000:
		remainder := num % 100
		if remainder == 0 {
			return centenas[num/100]
		}
		return centenas[num/100] + " " + NumberToWords(remainder)
	case num < 2000:
		remainder := num % 1000
		if remainder == 0 {
			return "mil"
		}
		return "mil " + NumberToWords(remainder)
	case num < 1000000:
		remainder := num % 1000
		if remainder == 0 {
			return NumberToWords(num/1000) + " mil"
		}
		return NumberToWords(num/1000) + " mil " + NumberToWords(remainder)
	case num < 2000000:
		remainder := num % 1000000
		if remainder == 0 {
			return "un millón"
		}
		return "un millón " + NumberToWords(remainder)
	default:
		remainder := num % 1000000
		if remainder == 0 {
			return NumberToWords(num/1000000) + " millones"
		}
		return NumberToWords(num/1000000) + " millones " + NumberToWords(remainder)
	}
}

// AmountToWords spells a peso amount for the receipt's amount line, e.g.
// 1500.50 -> "Mil quinientos pesos con cincuenta centavos".
func AmountToWords(amount float64) string {
	pesos := int(math.Floor(amount))
	centavos := int(math.Round((amount - float64(pesos)) * 100))

	var parts []string
	if pesos > 0 {
		parts = append(parts, strings.TrimSpace(NumberToWords(pesos))+" pesos")
	}
	if centavos > 0 {
		parts = append(parts, strings.TrimSpace(NumberToWords(centavos))+" centavos")
	}
	if len(parts) == 0 {
		return "Cero pesos"
	}

	return capitalize(strings.Join(parts, " con "))
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

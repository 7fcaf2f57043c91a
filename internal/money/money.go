// Package money formats monetary values for display. Rounding to two
// decimals happens here and only here; the quote engine works on unrounded
// values so rounding error never compounds across the fee/FX chain.
package money

import (
	"github.com/shopspring/decimal"
)

// Format renders an amount as "12.35 MXN" (or "$12.35 USD"), rounded
// half-up to two decimal places.
func Format(amount float64, currency string) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)
	if currency == "USD" {
		return "$" + s + " " + currency
	}
	return s + " " + currency
}

// FormatRate renders an exchange rate with four decimal places.
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(4)
}

package pkg

import "github.com/shopspring/decimal"

// Monetary amounts cross the HTTP boundary as integer minor units (cents) to
// avoid floating-point entry artifacts, and live as decimal currency units
// inside the model. These two helpers are the only conversion points.

// CentsToDecimal converts minor units to decimal currency units (12345 -> 123.45).
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// DecimalToCents converts decimal currency units to minor units, rounding
// half-up at the second decimal place.
func DecimalToCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// Package money holds the fixed-point conventions for currency amounts:
// two decimal places, rounded half away from zero before storage or
// comparison.
package money

import (
	"math"
	"strconv"
)

const cents = 100

// Round normalizes an amount to two decimal places.
func Round(amount float64) float64 {
	return math.Round(amount*cents) / cents
}

// IsZero reports whether a rounded amount collapses to no value at all.
// A zero amount must never be stored as an edge.
func IsZero(amount float64) bool {
	return Round(amount) == 0
}

// Format renders an amount in its minimal form: "5", "3.33", "0.1".
func Format(amount float64) string {
	return strconv.FormatFloat(Round(amount), 'f', -1, 64)
}

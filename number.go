package currency

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ParseNumber parses a finite decimal literal such as "1.495", "-3" or "2e-4".
// The whole string must be a number; NaN, infinities, trailing garbage and values
// outside the float64 range are rejected.
func ParseNumber(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	// grammar only: converting a decimal with a huge exponent materialises 10^exp
	if _, err := decimal.NewFromString(value); err != nil {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)

	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

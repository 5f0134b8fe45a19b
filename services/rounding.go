package services

import "math"

const (
	rateScale   = 1_000_000
	amountScale = 100
)

// roundHalfUp rounds to the nearest integer with ties going towards positive infinity,
// so -2.5 becomes -2 and 2.5 becomes 3.
func roundHalfUp(x float64) float64 {
	r := math.Round(x)

	if x-r == 0.5 {
		return r + 1
	}

	return r
}

// RoundRate rounds a rate to 6 decimal places.
func RoundRate(rate float64) float64 {
	return roundHalfUp(rate*rateScale) / rateScale
}

// RoundAmount converts amount with rate and rounds the result to 2 decimal places.
// The rate must be the unrounded one.
func RoundAmount(amount, rate float64) float64 {
	return roundHalfUp(amount*rate*amountScale) / amountScale
}

func finite(values ...float64) bool {
	for _, value := range values {
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return false
		}
	}

	return true
}

package common

import "math"

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundPercent rounds a 0..1 ratio to a whole percentage.
func RoundPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}

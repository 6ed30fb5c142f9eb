package utils

import (
	"math"
	"strconv"
)

// Round1 rounds to 1 decimal place. Hour figures use it.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to 2 decimal places. Monetary figures use it.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseNonNegativeFloat parses a string as a float64 and reports whether it is
// a valid non-negative number. Form inputs arrive as strings.
func ParseNonNegativeFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0, false
	}
	return v, true
}

package match

import (
	"math"
	"strconv"
)

// Round rounds x to the given number of decimal places.
//
// Rounding is applied to the exact binary value of x, with exact ties going
// to the even digit. 0.1234565 is stored slightly below the tie and becomes
// 0.123456; 0.0078125 is an exact tie and becomes 0.007812.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || places < 0 {
		return x
	}

	// FormatFloat rounds correctly on the exact decimal expansion of x.
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return r
}

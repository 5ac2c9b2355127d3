package utils

import (
	"math"
)

const (
	NODETOL = 1.e-12
)

// POW avoids math.Pow for the small integer exponents that dominate
// polynomial evaluation.
func POW(x float64, p int) (y float64) {
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = math.Pow(x, float64(p))
	}
	return
}

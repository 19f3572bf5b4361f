package mat

import (
	"math"
)

// epsilon is the float64 machine epsilon, used as an absolute tolerance.
const epsilon = 0x1p-52

func floatEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

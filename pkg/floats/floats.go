package floats

import "math"

// EqualEnough reports whether the magnitudes of a and b are equal within machine
// epsilon scaled by the larger of the two.
func EqualEnough(a, b float64) bool {
	a = math.Abs(a)
	b = math.Abs(b)

	return math.Abs(a-b) <= math.Max(a, b)*epsilon
}

// epsilon is the difference between 1.0 and the next representable float64.
const epsilon = 0x1p-52

// Lerp linearly interpolates between a and b. t=0 yields a and t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return (1.0-t)*a + t*b
}

// Clamp01 clamps x to [0, 1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

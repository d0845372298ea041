package transforms

import "math"

const (
	// Bailout is the escape radius. Well beyond 2 so log(log(Bailout)) is defined
	// and the smoothing correction stays in range.
	Bailout        = 20.0
	BailoutSquared = Bailout * Bailout
)

var (
	logLogBailout = math.Log(math.Log(Bailout))
	log2          = math.Log(2.0)
)

// Mandelbrot is the recurrence z -> z^2 + c for a fixed c = X0 + Y0*i,
// kept in split real/imaginary form.
type Mandelbrot struct {
	X0, Y0 float64
}

// Escape iterates from the origin until the orbit leaves the bailout radius or
// maxIterations steps have been taken.
//
// If the orbit escaped, iter is the number of steps taken and magnitude is |z|
// at the first point outside the bailout radius. Otherwise iter == maxIterations
// and magnitude is 0.
func (m Mandelbrot) Escape(maxIterations int) (iter int, magnitude float64) {
	x, y := 0.0, 0.0

	for iter < maxIterations {
		xSquared := x * x
		ySquared := y * y

		if xSquared+ySquared >= BailoutSquared {
			return iter, math.Sqrt(xSquared + ySquared)
		}

		y = 2.0*x*y + m.Y0
		x = xSquared - ySquared + m.X0

		iter++
	}

	return iter, 0.0
}

// DistanceToNext is the fractional remainder of the continuous escape count for
// an orbit which escaped with the given magnitude. It is in [0, 1] for any
// magnitude at or beyond Bailout.
// Larger values mean the orbit barely crossed the bailout radius.
func DistanceToNext(magnitude float64) float64 {
	return 1.0 - math.Min(1.0, (math.Log(math.Log(magnitude))-logLogBailout)/log2)
}

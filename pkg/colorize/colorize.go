// Package colorize turns escape times into colors.
package colorize

import (
	"errors"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/floats"
	"github.com/willbeason/mandelbrot/pkg/gradient"
	"github.com/willbeason/mandelbrot/pkg/histogram"
)

var ErrSize = errors.New("mismatched sizes")

// Colorize writes the color of each pixel into dst, which must be the same length as pixels.
//
// Points which never escaped are black. Every other point is placed along g by
// its equalized iteration, nudged toward the next equalized iteration by its
// fractional distance, so bands blend into each other instead of forming rings.
func Colorize(pixels []escape.Pixel, table histogram.Table, maxIterations int, g *gradient.Gradient, dst []gradient.RGB) error {
	if len(dst) != len(pixels) {
		return fmt.Errorf("%w: %d pixels but buffer of %d", ErrSize, len(pixels), len(dst))
	}
	if table.MaxIterations() != maxIterations {
		return fmt.Errorf("%w: table for %d iterations, rendering %d", ErrSize, table.MaxIterations(), maxIterations)
	}

	for i, p := range pixels {
		if p.Iter >= maxIterations {
			dst[i] = gradient.Black
			continue
		}

		c, err := g.Resolve(Position(p, table, maxIterations))
		if err != nil {
			return err
		}
		dst[i] = c
	}

	return nil
}

// Position returns where along the gradient an escaped pixel falls, in [0, 1].
func Position(p escape.Pixel, table histogram.Table, maxIterations int) float64 {
	curr := table.At(p.Iter)
	next := table.At(p.Iter + 1)

	smoothed := floats.Lerp(curr, next, p.DistanceToNext)

	// Rounding in the equalization table can push the top of the range a hair past 1.
	return floats.Clamp01(smoothed / float64(maxIterations))
}

// Package escape evaluates the escape time of every pixel in a viewport.
package escape

import (
	"context"
	"errors"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/histogram"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"github.com/willbeason/mandelbrot/pkg/viewport"
	"golang.org/x/sync/errgroup"
	"runtime"
)

var (
	ErrInvalidIterations = errors.New("max iterations must be positive")
	ErrTooManyIterations = errors.New("too many iterations")
)

// MaxIterations bounds the iteration cap of a render. Every worker holds a
// histogram with one bucket per iteration.
const MaxIterations = 1 << 20

// CheckIterations returns an error if maxIterations is outside [1, MaxIterations].
func CheckIterations(maxIterations int) error {
	if maxIterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIterations)
	}
	if maxIterations > MaxIterations {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyIterations, maxIterations, MaxIterations)
	}
	return nil
}

// A Pixel is the escape time of a single point.
type Pixel struct {
	// Iter is the number of iterations before the orbit escaped, or
	// MaxIterations if it never did.
	Iter int

	// DistanceToNext is the fractional part of the continuous escape count, in [0, 1].
	// Always 0 for points that never escaped.
	DistanceToNext float64
}

// Point evaluates the escape time of x0 + y0*i.
func Point(x0, y0 float64, maxIterations int) Pixel {
	iter, magnitude := transforms.Mandelbrot{X0: x0, Y0: y0}.Escape(maxIterations)
	if iter >= maxIterations {
		return Pixel{Iter: maxIterations}
	}

	return Pixel{
		Iter:           iter,
		DistanceToNext: transforms.DistanceToNext(magnitude),
	}
}

// Result holds one Pixel per pixel of the viewport in row-major order starting
// at the top left, and the histogram of the iterations at which they escaped.
type Result struct {
	Width, Height int
	MaxIterations int

	Pixels    []Pixel
	Histogram *histogram.Histogram
}

func (r *Result) At(px, py int) Pixel {
	return r.Pixels[py*r.Width+px]
}

type options struct {
	workers int
}

type Option func(*options)

// Workers sets the number of goroutines evaluating rows.
// Values below 1 use GOMAXPROCS.
func Workers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Evaluate computes the escape time of every pixel of v.
//
// Rows are handed out to workers one at a time, and each worker keeps its own
// histogram which is merged once all rows are done, so the Result does not
// depend on the number of workers. Cancelling ctx stops evaluation before the
// next row.
func Evaluate(ctx context.Context, v viewport.Viewport, maxIterations int, opts ...Option) (*Result, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := CheckIterations(maxIterations); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	result := &Result{
		Width:         v.Width,
		Height:        v.Height,
		MaxIterations: maxIterations,
		Pixels:        make([]Pixel, v.Pixels()),
		Histogram:     histogram.New(maxIterations),
	}
	if v.Empty() {
		return result, nil
	}

	workers := min(o.workers, v.Height)
	bounds := v.Bounds()

	g, ctx := errgroup.WithContext(ctx)

	rows := make(chan int)
	g.Go(func() error {
		defer close(rows)
		for y := 0; y < v.Height; y++ {
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	locals := make([]*histogram.Histogram, workers)
	for i := range locals {
		local := histogram.New(maxIterations)
		locals[i] = local

		g.Go(func() error {
			for y := range rows {
				if err := ctx.Err(); err != nil {
					return err
				}

				y0 := bounds.Row(y, v.Height)
				row := result.Pixels[y*v.Width : (y+1)*v.Width]
				for x := range row {
					p := Point(bounds.Column(x, v.Width), y0, maxIterations)
					row[x] = p
					local.Add(p.Iter)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, local := range locals {
		if err := result.Histogram.Merge(local); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Package render draws Mandelbrot set images with histogram-equalized smooth coloring.
//
// A render runs in three passes, each of which needs the complete output of
// the one before it:
//
//  1. every pixel's escape time is evaluated, building a histogram of escape iterations,
//  2. the histogram is equalized into a table of iteration to gradient position,
//  3. each pixel is colored from the table and the gradient.
package render

import (
	"context"
	"errors"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/colorize"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/gradient"
	"github.com/willbeason/mandelbrot/pkg/histogram"
	"github.com/willbeason/mandelbrot/pkg/viewport"
	"image"
)

// ErrAllocation is returned when the buffers for a render cannot be provided.
var ErrAllocation = errors.New("cannot allocate render buffers")

// An Image is a grid of colors in row-major order, row 0 at the top.
type Image struct {
	Width, Height int
	Pix           []gradient.RGB
}

func (img *Image) At(x, y int) gradient.RGB {
	return img.Pix[y*img.Width+x]
}

// RGBA packs img into an opaque *image.RGBA.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for i, c := range img.Pix {
		out.Pix[i*4] = c.R
		out.Pix[i*4+1] = c.G
		out.Pix[i*4+2] = c.B
		out.Pix[i*4+3] = 0xff
	}

	return out
}

// Render draws the viewport v, iterating at most maxIterations times per pixel.
func Render(ctx context.Context, v viewport.Viewport, maxIterations int, g *gradient.Gradient, opts ...escape.Option) (*Image, error) {
	if err := validate(v, maxIterations); err != nil {
		return nil, err
	}

	img := &Image{
		Width:  v.Width,
		Height: v.Height,
		Pix:    make([]gradient.RGB, v.Pixels()),
	}

	err := RenderInto(ctx, v, maxIterations, g, img.Pix, opts...)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// RenderInto is Render writing into a caller-owned buffer, which must hold at
// least one color per pixel of v.
func RenderInto(ctx context.Context, v viewport.Viewport, maxIterations int, g *gradient.Gradient, dst []gradient.RGB, opts ...escape.Option) error {
	if err := validate(v, maxIterations); err != nil {
		return err
	}
	if len(dst) < v.Pixels() {
		return fmt.Errorf("%w: buffer holds %d pixels, need %d", ErrAllocation, len(dst), v.Pixels())
	}

	result, err := escape.Evaluate(ctx, v, maxIterations, opts...)
	if err != nil {
		return err
	}

	table := histogram.Equalize(result.Histogram)

	return colorize.Colorize(result.Pixels, table, maxIterations, g, dst[:v.Pixels()])
}

func validate(v viewport.Viewport, maxIterations int) error {
	err := v.Validate()
	if err == nil {
		err = escape.CheckIterations(maxIterations)
	}

	if errors.Is(err, viewport.ErrTooLarge) || errors.Is(err, escape.ErrTooManyIterations) {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return err
}

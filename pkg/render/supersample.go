package render

import (
	"context"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/gradient"
	"github.com/willbeason/mandelbrot/pkg/viewport"
	"golang.org/x/image/draw"
	"image"
)

// Supersampled renders v at factor times its resolution in each direction and
// scales the result back down, smoothing the edges of the set.
//
// The histogram is built from the larger render, so colors differ slightly
// from those of Render.
func Supersampled(ctx context.Context, v viewport.Viewport, maxIterations int, g *gradient.Gradient, factor int, opts ...escape.Option) (*image.RGBA, error) {
	if factor <= 1 {
		img, err := Render(ctx, v, maxIterations, g, opts...)
		if err != nil {
			return nil, err
		}
		return img.RGBA(), nil
	}

	if v.Width > viewport.MaxPixels/factor || v.Height > viewport.MaxPixels/factor {
		return nil, fmt.Errorf("%w: %dx%d supersampled %d times", ErrAllocation, v.Width, v.Height, factor)
	}

	large := v
	large.Width *= factor
	large.Height *= factor

	img, err := Render(ctx, large, maxIterations, g, opts...)
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, v.Width, v.Height))
	if v.Empty() {
		return out, nil
	}

	draw.CatmullRom.Scale(out, out.Bounds(), img.RGBA(), image.Rect(0, 0, large.Width, large.Height), draw.Src, nil)

	return out, nil
}

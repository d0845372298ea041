// Package viewport maps a rectangular pixel grid onto a section of the complex plane.
package viewport

import (
	"errors"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/floats"
	"math"
)

var (
	// ErrInvalid is returned for viewports that cannot be mapped onto the plane.
	ErrInvalid  = errors.New("invalid viewport")
	// ErrTooLarge is returned for pixel grids whose buffers cannot be allocated.
	ErrTooLarge = errors.New("viewport too large")
)

// MaxPixels bounds the pixel count of a single render.
const MaxPixels = 1 << 28

// The home view shows the whole set.
const (
	HomeCenterX       = -0.8
	HomeCenterY       = 0.0
	HomeSectionHeight = 2.2
)

// A Viewport is a pixel grid centered on a point in the complex plane.
//
// Only the vertical extent is given explicitly. The horizontal extent follows
// from the aspect ratio of the pixel grid, so pixels are always square.
type Viewport struct {
	Width, Height int

	CenterX, CenterY float64

	// SectionHeight is the distance in the plane between the top and bottom edges.
	SectionHeight float64
}

// Home returns the home view for a width x height pixel grid.
func Home(width, height int) Viewport {
	return Viewport{
		Width:         width,
		Height:        height,
		CenterX:       HomeCenterX,
		CenterY:       HomeCenterY,
		SectionHeight: HomeSectionHeight,
	}
}

// Validate returns an error wrapping ErrInvalid if v cannot be rendered.
// A zero-area grid is valid and renders nothing.
func (v Viewport) Validate() error {
	if v.Width < 0 || v.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalid, v.Width, v.Height)
	}
	if v.Height > 0 && v.Width > MaxPixels/v.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, v.Width, v.Height, MaxPixels)
	}
	if !(v.SectionHeight > 0) || math.IsInf(v.SectionHeight, 0) {
		return fmt.Errorf("%w: section height %v must be positive and finite", ErrInvalid, v.SectionHeight)
	}
	if math.IsNaN(v.CenterX) || math.IsInf(v.CenterX, 0) || math.IsNaN(v.CenterY) || math.IsInf(v.CenterY, 0) {
		return fmt.Errorf("%w: center (%v, %v) must be finite", ErrInvalid, v.CenterX, v.CenterY)
	}
	return nil
}

func (v Viewport) Pixels() int {
	return v.Width * v.Height
}

func (v Viewport) Empty() bool {
	return v.Width == 0 || v.Height == 0
}

func (v Viewport) SectionWidth() float64 {
	if v.Height == 0 {
		return 0
	}
	return v.SectionHeight * (float64(v.Width) / float64(v.Height))
}

// Bounds are the edges of a Viewport in the plane.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

func (v Viewport) Bounds() Bounds {
	width := v.SectionWidth()

	return Bounds{
		Left:   v.CenterX - width/2.0,
		Right:  v.CenterX + width/2.0,
		Top:    v.CenterY + v.SectionHeight/2.0,
		Bottom: v.CenterY - v.SectionHeight/2.0,
	}
}

// Row returns the imaginary coordinate of pixel row py. Row 0 is the top edge.
func (b Bounds) Row(py, height int) float64 {
	return floats.Lerp(b.Top, b.Bottom, float64(py)/float64(height))
}

// Column returns the real coordinate of pixel column px. Column 0 is the left edge.
func (b Bounds) Column(px, width int) float64 {
	return floats.Lerp(b.Left, b.Right, float64(px)/float64(width))
}

// Plane returns the point in the complex plane of pixel (px, py).
func (v Viewport) Plane(px, py int) (x, y float64) {
	b := v.Bounds()
	return b.Column(px, v.Width), b.Row(py, v.Height)
}

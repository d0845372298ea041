// Package gradient resolves positions in [0, 1] to colors along a piecewise-linear
// ramp defined by color stops.
package gradient

import (
	"errors"
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/willbeason/mandelbrot/pkg/floats"
	"math"
	"sort"
)

var (
	ErrNoBracket   = errors.New("no bracketing pair found")
	ErrTooFewStops = errors.New("gradient needs at least two stops")
	ErrInvalidStop = errors.New("invalid gradient stop")
)

type RGB struct {
	R, G, B uint8
}

var Black = RGB{}

// A Stop anchors a color at a position along the gradient.
// Channels of Color are in [0, 1].
type Stop struct {
	Position float64
	Color    mgl64.Vec3
}

// A Gradient is a list of stops sorted by position, no two of which are at the
// same position.
type Gradient struct {
	stops []Stop
}

// New returns a Gradient through stops, whose positions must be in [0, 1].
// Stops at the same position replace earlier ones.
func New(stops ...Stop) (*Gradient, error) {
	var b builder
	for _, s := range stops {
		if !(s.Position >= 0 && s.Position <= 1) {
			return nil, fmt.Errorf("%w: position %v outside [0, 1]", ErrInvalidStop, s.Position)
		}
		b.set(s)
	}

	if len(b.stops) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewStops, len(b.stops))
	}

	return b.gradient(), nil
}

// Stops returns a copy of the stops in ascending order of position.
func (g *Gradient) Stops() []Stop {
	stops := make([]Stop, len(g.stops))
	copy(stops, g.stops)
	return stops
}

// Resolve returns the color at pos, interpolating linearly between the pair of
// stops around it. Positions outside the first and last stop have no color.
func (g *Gradient) Resolve(pos float64) (RGB, error) {
	left, right, ok := g.bracket(pos)
	if !ok {
		return Black, fmt.Errorf("%w: position %v", ErrNoBracket, pos)
	}

	t := (pos - left.Position) / (right.Position - left.Position)
	c := left.Color.Mul(1.0 - t).Add(right.Color.Mul(t))

	return RGB{R: channel(c.X()), G: channel(c.Y()), B: channel(c.Z())}, nil
}

// bracket finds the first pair of adjacent stops with left <= pos <= right.
func (g *Gradient) bracket(pos float64) (left, right Stop, ok bool) {
	n := len(g.stops)
	if n < 2 || !(pos >= g.stops[0].Position && pos <= g.stops[n-1].Position) {
		return Stop{}, Stop{}, false
	}

	i := sort.Search(n, func(i int) bool {
		return g.stops[i].Position >= pos
	})
	if i == 0 {
		i = 1
	}

	return g.stops[i-1], g.stops[i], true
}

func channel(v float64) uint8 {
	return uint8(math.Round(255.0 * floats.Clamp01(v)))
}

// builder collects stops, replacing any stop already at a position.
type builder struct {
	stops []Stop
}

func (b *builder) set(s Stop) {
	for i := range b.stops {
		if floats.EqualEnough(b.stops[i].Position, s.Position) {
			b.stops[i] = s
			return
		}
	}
	b.stops = append(b.stops, s)
}

func (b *builder) gradient() *Gradient {
	stops := make([]Stop, len(b.stops))
	copy(stops, b.stops)

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})

	return &Gradient{stops: stops}
}

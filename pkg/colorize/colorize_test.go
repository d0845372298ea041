package colorize

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/gradient"
	"github.com/willbeason/mandelbrot/pkg/histogram"
	"testing"
)

func redGradient(t *testing.T) *gradient.Gradient {
	t.Helper()
	g, err := gradient.New(
		gradient.Stop{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
		gradient.Stop{Position: 1, Color: mgl64.Vec3{1, 0, 0}},
	)
	require.NoError(t, err)
	return g
}

func tableOf(maxIterations int, iters ...int) histogram.Table {
	h := histogram.New(maxIterations)
	for _, iter := range iters {
		h.Add(iter)
	}
	return histogram.Equalize(h)
}

func TestColorize(t *testing.T) {
	// cdf = [0, 1, 2, 3, 3], table = [0, 0, 2, 4, 4]
	table := tableOf(4, 1, 2, 3)

	pixels := []escape.Pixel{
		{Iter: 4},
		{Iter: 1, DistanceToNext: 0},
		{Iter: 1, DistanceToNext: 0.5},
		{Iter: 2, DistanceToNext: 1},
		{Iter: 3, DistanceToNext: 0.25},
	}
	dst := make([]gradient.RGB, len(pixels))

	require.NoError(t, Colorize(pixels, table, 4, redGradient(t), dst))

	assert.Equal(t, []gradient.RGB{
		{},
		{},
		{R: 64},
		{R: 255},
		{R: 255},
	}, dst)
}

func TestColorize_InsideIsBlack(t *testing.T) {
	g, err := gradient.New(
		gradient.Stop{Position: 0, Color: mgl64.Vec3{1, 1, 1}},
		gradient.Stop{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
	)
	require.NoError(t, err)

	pixels := []escape.Pixel{{Iter: 10}, {Iter: 0}, {Iter: 10}}
	dst := make([]gradient.RGB, len(pixels))

	require.NoError(t, Colorize(pixels, tableOf(10, 0), 10, g, dst))
	assert.Equal(t, []gradient.RGB{{}, {R: 255, G: 255, B: 255}, {}}, dst)
}

func TestColorize_Degenerate(t *testing.T) {
	g := redGradient(t)

	// Every pixel escapes at iteration 0 of 1.
	pixels := []escape.Pixel{{Iter: 0, DistanceToNext: 0.3}, {Iter: 0, DistanceToNext: 0.9}}
	dst := make([]gradient.RGB, len(pixels))

	require.NoError(t, Colorize(pixels, tableOf(1, 0, 0), 1, g, dst))
	assert.Equal(t, []gradient.RGB{{}, {}}, dst)
}

func TestColorize_SizeMismatch(t *testing.T) {
	g := redGradient(t)
	pixels := []escape.Pixel{{Iter: 0}}

	err := Colorize(pixels, tableOf(3), 3, g, make([]gradient.RGB, 2))
	require.ErrorIs(t, err, ErrSize)

	err = Colorize(pixels, tableOf(3), 4, g, make([]gradient.RGB, 1))
	require.ErrorIs(t, err, ErrSize)
}

func TestPosition_InUnitInterval(t *testing.T) {
	table := tableOf(7, 0, 1, 1, 2, 3, 3, 3, 5, 6, 6)

	for iter := 0; iter < 7; iter++ {
		for _, d := range []float64{0, 0.1, 0.5, 0.99, 1} {
			pos := Position(escape.Pixel{Iter: iter, DistanceToNext: d}, table, 7)
			assert.GreaterOrEqual(t, pos, 0.0)
			assert.LessOrEqual(t, pos, 1.0)
		}
	}
}

package gradient

import (
	"errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		name string
		text string
		want []Stop
	}{
		{
			name: "empty uses defaults",
			text: "",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
				{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
			},
		},
		{
			name: "inner stops are sorted",
			text: "0.7: 0, 0, 1\n0.2: 1, 0, 0\n",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
				{Position: 0.2, Color: mgl64.Vec3{1, 0, 0}},
				{Position: 0.7, Color: mgl64.Vec3{0, 0, 1}},
				{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
			},
		},
		{
			name: "boundaries overridden",
			text: "1.0: 0.5, 0.5, 0.5\n0: 0.1, 0.2, 0.3",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0.1, 0.2, 0.3}},
				{Position: 1, Color: mgl64.Vec3{0.5, 0.5, 0.5}},
			},
		},
		{
			name: "later duplicate wins",
			text: "0.5: 1, 0, 0\n0.50: 0, 1, 0\n.5: 0, 0, 1",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
				{Position: 0.5, Color: mgl64.Vec3{0, 0, 1}},
				{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
			},
		},
		{
			name: "rounding noise is the same position",
			text: "0.3: 1, 0, 0\n0.30000000000000004: 0, 1, 0\n0.7: 0, 0, 1\n0.7000000000000001: 1, 1, 0",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
				{Position: 0.30000000000000004, Color: mgl64.Vec3{0, 1, 0}},
				{Position: 0.7000000000000001, Color: mgl64.Vec3{1, 1, 0}},
				{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
			},
		},
		{
			name: "malformed lines skipped",
			text: "# comment\n0.5: 1, 0\nblue\n0.3 1, 1, 1\n1.5: 1, 1, 1\n0.4:0.25,0.5,0.75 trailing\r\n",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
				{Position: 0.4, Color: mgl64.Vec3{0.25, 0.5, 0.75}},
				{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
			},
		},
		{
			name: "exponents and signs",
			text: "  5e-1 : +1.0, 1e0, 0.",
			want: []Stop{
				{Position: 0, Color: mgl64.Vec3{0, 0, 0}},
				{Position: 0.5, Color: mgl64.Vec3{1, 1, 0}},
				{Position: 1, Color: mgl64.Vec3{1, 1, 1}},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.text).Stops()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	text := "0.25: 1, 0, 0\n0.75: 0, 0, 1\n"

	g, err := ParseReader(strings.NewReader(text))
	require.NoError(t, err)

	if diff := cmp.Diff(Parse(text).Stops(), g.Stops()); diff != "" {
		t.Errorf("ParseReader() mismatch (-want +got):\n%s", diff)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReader_Error(t *testing.T) {
	_, err := ParseReader(failingReader{})
	require.Error(t, err)
}

func TestParse_SpansUnitInterval(t *testing.T) {
	g := Parse("0.5: 1, 0, 0")

	for _, pos := range []float64{0, 0.25, 0.5, 0.999, 1} {
		_, err := g.Resolve(pos)
		assert.NoError(t, err, "pos %v", pos)
	}
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	require.Contains(t, names, DefaultPreset)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		g, err := Preset(name)
		require.NoError(t, err, name)

		stops := g.Stops()
		assert.Equal(t, 0.0, stops[0].Position, name)
		assert.Equal(t, 1.0, stops[len(stops)-1].Position, name)
	}

	_, err := Preset("plaid")
	require.Error(t, err)
}

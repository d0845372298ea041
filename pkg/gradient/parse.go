package gradient

import (
	"bufio"
	"github.com/go-gl/mathgl/mgl64"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const number = `([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`

// stopLine matches "<pos>: <r>, <g>, <b>". Anything after the blue channel is ignored.
var stopLine = regexp.MustCompile(`^\s*` + number + `\s*:\s*` + number + `\s*,\s*` + number + `\s*,\s*` + number)

// Parse reads a gradient from lines of the form
//
//	<pos>: <r>, <g>, <b>
//
// with all values in [0, 1]. The gradient starts out black at 0 and white at 1;
// lines at those positions override them. A later line at the same position as
// an earlier one replaces it. Lines which do not match, or whose position lies
// outside [0, 1], are skipped.
func Parse(text string) *Gradient {
	b := defaults()
	for _, line := range strings.Split(text, "\n") {
		b.line(line)
	}
	return b.gradient()
}

// ParseReader is Parse for text read from r.
func ParseReader(r io.Reader) (*Gradient, error) {
	b := defaults()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		b.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.gradient(), nil
}

func defaults() *builder {
	return &builder{stops: []Stop{
		{Position: 0.0, Color: mgl64.Vec3{0, 0, 0}},
		{Position: 1.0, Color: mgl64.Vec3{1, 1, 1}},
	}}
}

func (b *builder) line(line string) {
	m := stopLine.FindStringSubmatch(line)
	if m == nil {
		return
	}

	var v [4]float64
	for i := range v {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return
		}
		v[i] = f
	}

	if v[0] < 0 || v[0] > 1 {
		return
	}

	b.set(Stop{Position: v[0], Color: mgl64.Vec3{v[1], v[2], v[3]}})
}

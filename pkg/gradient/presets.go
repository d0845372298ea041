package gradient

import (
	"fmt"
	"sort"
)

// DefaultPreset is the gradient used when none is chosen.
const DefaultPreset = "benchmark"

var presets = map[string]string{
	"benchmark": `
0.00: 0.00, 0.00, 0.20
0.25: 0.10, 0.30, 0.80
0.50: 0.95, 0.95, 1.00
0.75: 1.00, 0.70, 0.00
1.00: 0.40, 0.05, 0.00
`,
	"grayscale": ``,
	"fire": `
0.00: 0.00, 0.00, 0.00
0.30: 0.60, 0.00, 0.00
0.60: 1.00, 0.50, 0.00
0.85: 1.00, 0.90, 0.20
1.00: 1.00, 1.00, 1.00
`,
	"ocean": `
0.00: 0.00, 0.03, 0.10
0.40: 0.00, 0.25, 0.50
0.70: 0.10, 0.65, 0.75
1.00: 0.90, 1.00, 1.00
`,
	"rainbow": `
0.000: 1.00, 0.00, 0.00
0.167: 1.00, 0.50, 0.00
0.333: 1.00, 1.00, 0.00
0.500: 0.00, 1.00, 0.00
0.667: 0.00, 1.00, 1.00
0.833: 0.00, 0.00, 1.00
1.000: 1.00, 0.00, 1.00
`,
}

// Preset returns the built-in gradient called name.
func Preset(name string) (*Gradient, error) {
	text, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown gradient preset %q, want one of %v", name, PresetNames())
	}
	return Parse(text), nil
}

// PresetNames lists the built-in gradients in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// internal/colorscale/parse.go
package colorscale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// namedColors covers the CSS names used by the default leaderboard theme.
var namedColors = map[string]RGB{
	"red":        {R: 255, G: 0, B: 0},
	"orange":     {R: 255, G: 165, B: 0},
	"yellow":     {R: 255, G: 255, B: 0},
	"lightgreen": {R: 144, G: 238, B: 144},
	"green":      {R: 0, G: 128, B: 0},
	"white":      {R: 255, G: 255, B: 255},
	"black":      {R: 0, G: 0, B: 0},
}

// StopSpec is the configuration form of a Stop.
type StopSpec struct {
	Position float64 `json:"position" yaml:"position"`
	Color    string  `json:"color" yaml:"color"`
}

// ParseColor reads #rrggbb, #rgb, rgb(r, g, b) or a theme color name.
func ParseColor(s string) (RGB, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}
	if m := rgbPattern.FindStringSubmatch(v); m != nil {
		var ch [3]uint8
		for i := range ch {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return RGB{}, fmt.Errorf("parse color %q: channel %q out of range", s, m[i+1])
			}
			ch[i] = uint8(n)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	return RGB{}, fmt.Errorf("parse color %q: unsupported format", s)
}

// ParseStops converts configured stops into a validated Scale. A malformed
// color is reported as an invalid configuration.
func ParseStops(specs []StopSpec) (*Scale, error) {
	stops := make([]Stop, 0, len(specs))
	for i, spec := range specs {
		c, err := ParseColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %v", ErrInvalidConfiguration, i, err)
		}
		stops = append(stops, Stop{Position: spec.Position, Color: c})
	}
	return New(stops)
}

// DefaultStops returns the leaderboard theme: red through green with
// anchors at 0, 15, 50, 85 and 100.
func DefaultStops() []Stop {
	return []Stop{
		{Position: 0, Color: namedColors["red"]},
		{Position: 15, Color: namedColors["orange"]},
		{Position: 50, Color: namedColors["yellow"]},
		{Position: 85, Color: namedColors["lightgreen"]},
		{Position: 100, Color: namedColors["green"]},
	}
}

// Default returns a Scale over DefaultStops.
func Default() *Scale {
	return MustNew(DefaultStops())
}

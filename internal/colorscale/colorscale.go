// internal/colorscale/colorscale.go
// Package colorscale maps scores onto an RGB gradient defined by ordered
// color stops, interpolating each channel linearly between neighbours.
package colorscale

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidConfiguration is returned for scales with fewer than two stops or
// positions that are not strictly increasing.
var ErrInvalidConfiguration = errors.New("invalid color scale configuration")

// RGB is an 8-bit per channel color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CSS renders the color as an rgb() expression.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Stop anchors a color at a position on the 0-100 score axis.
type Stop struct {
	Position float64
	Color    RGB
}

// Scale is a validated, immutable gradient. It is safe for concurrent use.
type Scale struct {
	stops []Stop
}

// New validates stops and returns a Scale holding a copy of them.
func New(stops []Stop) (*Scale, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidConfiguration, len(stops))
	}
	for i, s := range stops {
		if math.IsNaN(s.Position) || math.IsInf(s.Position, 0) {
			return nil, fmt.Errorf("%w: stop %d has non-finite position", ErrInvalidConfiguration, i)
		}
		if i > 0 && s.Position <= stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d position %g does not increase past %g",
				ErrInvalidConfiguration, i, s.Position, stops[i-1].Position)
		}
	}
	return &Scale{stops: slices.Clone(stops)}, nil
}

// MustNew is like New but panics on invalid stops. Use it for compiled-in themes.
func MustNew(stops []Stop) *Scale {
	s, err := New(stops)
	if err != nil {
		panic(err)
	}
	return s
}

// Stops returns a copy of the scale's stops.
func (s *Scale) Stops() []Stop {
	return slices.Clone(s.stops)
}

// ColorFor returns the color for score. Scores at or below the first stop get
// the first color, scores at or above the last stop get the last color.
func (s *Scale) ColorFor(score float64) RGB {
	first, last := s.stops[0], s.stops[len(s.stops)-1]
	if !(score > first.Position) {
		return first.Color
	}
	if score >= last.Position {
		return last.Color
	}

	for i := 1; i < len(s.stops); i++ {
		hi := s.stops[i]
		if score > hi.Position {
			continue
		}
		lo := s.stops[i-1]
		ratio := (score - lo.Position) / (hi.Position - lo.Position)
		return RGB{
			R: lerp(lo.Color.R, hi.Color.R, ratio),
			G: lerp(lo.Color.G, hi.Color.G, ratio),
			B: lerp(lo.Color.B, hi.Color.B, ratio),
		}
	}
	return last.Color
}

// ColorFor validates stops and returns the color for score.
func ColorFor(score float64, stops []Stop) (RGB, error) {
	s, err := New(stops)
	if err != nil {
		return RGB{}, err
	}
	return s.ColorFor(score), nil
}

func lerp(lo, hi uint8, ratio float64) uint8 {
	v := float64(lo)*(1-ratio) + float64(hi)*ratio
	v = math.Floor(v + 0.5)
	return uint8(math.Max(0, math.Min(255, v)))
}

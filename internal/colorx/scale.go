package colorx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode is the color space a Scale interpolates in.
type Mode string

const (
	ModeRGB Mode = "rgb"
	ModeLab Mode = "lab"
	ModeHcl Mode = "hcl"
)

// Scale is a continuous interpolation across two or more color stops.
// Stops are spaced evenly over [0, 1]. A Scale is immutable once built.
type Scale struct {
	mode  Mode
	stops []colorful.Color
}

// NewScale parses the given hex stops and returns a scale over them. It fails
// on the first stop that is not a valid hex color.
func NewScale(mode Mode, stops ...string) (*Scale, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("scale needs at least one stop")
	}
	switch mode {
	case ModeRGB, ModeLab, ModeHcl:
	case "":
		mode = ModeLab
	default:
		return nil, fmt.Errorf("unknown scale mode %q", mode)
	}

	parsed := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("scale stop %d: %w", i, err)
		}
		parsed[i] = c
	}
	return newScale(mode, parsed), nil
}

func newScale(mode Mode, stops []colorful.Color) *Scale {
	return &Scale{mode: mode, stops: stops}
}

// Mode returns the interpolation mode.
func (s *Scale) Mode() Mode { return s.mode }

// Len returns the number of stops.
func (s *Scale) Len() int { return len(s.stops) }

// Stops returns the stops as hex strings.
func (s *Scale) Stops() []string {
	out := make([]string, len(s.stops))
	for i, c := range s.stops {
		out[i] = c.Hex()
	}
	return out
}

// At samples the scale at t. Values outside [0, 1] are clamped. Sampling
// exactly on a stop returns that stop unchanged.
func (s *Scale) At(t float64) colorful.Color {
	if len(s.stops) == 1 || t <= 0 || math.IsNaN(t) {
		return s.stops[0]
	}
	last := len(s.stops) - 1
	if t >= 1 {
		return s.stops[last]
	}

	pos := t * float64(last)
	i := int(pos)
	frac := pos - float64(i)
	if frac == 0 {
		return s.stops[i]
	}
	return s.blend(s.stops[i], s.stops[i+1], frac)
}

// Color is At as a color.Color, for use with lipgloss.
func (s *Scale) Color(t float64) color.Color {
	return s.At(t)
}

// Colors returns n evenly spaced samples from the start to the end of the
// scale.
func (s *Scale) Colors(n int) []colorful.Color {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []colorful.Color{s.stops[0]}
	}
	out := make([]colorful.Color, n)
	for i := range n {
		out[i] = s.At(float64(i) / float64(n-1))
	}
	return out
}

// Hexes is Colors rendered as hex strings.
func (s *Scale) Hexes(n int) []string {
	colors := s.Colors(n)
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

func (s *Scale) blend(a, b colorful.Color, t float64) colorful.Color {
	switch s.mode {
	case ModeRGB:
		return a.BlendRgb(b, t).Clamped()
	case ModeHcl:
		return a.BlendHcl(b, t).Clamped()
	default:
		return a.BlendLab(b, t).Clamped()
	}
}

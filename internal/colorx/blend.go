package colorx

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend spreads size colors evenly along the gradient through stops, first
// and last stop included. Interpolation is in Hcl, clamped to the sRGB gamut.
func Blend(size int, stops ...color.Color) []color.Color {
	if len(stops) < 2 || size <= 0 {
		return nil
	}

	keys := make([]colorful.Color, len(stops))
	for i, c := range stops {
		keys[i], _ = colorful.MakeColor(c)
	}
	if size == 1 {
		return []color.Color{keys[0]}
	}

	last := len(keys) - 1
	out := make([]color.Color, size)
	for i := range out {
		pos := float64(i) / float64(size-1) * float64(last)
		seg := min(int(pos), last-1)
		out[i] = keys[seg].BlendHcl(keys[seg+1], pos-float64(seg)).Clamped()
	}
	return out
}

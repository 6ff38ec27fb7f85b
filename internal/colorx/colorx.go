// Package colorx provides the small amount of color math themes need:
// hex parsing, Lab lightness and chroma adjustments, multi-stop scales and
// tonal ramps.
package colorx

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a string is not a #rgb or #rrggbb hex
// color.
var ErrInvalidColor = errors.New("invalid hex color")

// labStep is the Lab lightness (and LCh chroma) delta applied per unit of
// Brighten, Darken and Desaturate. go-colorful keeps L in [0, 1], so this is
// 18 on the usual 0-100 scale.
const labStep = 0.18

// Parse parses a #rgb or #rrggbb hex color string. Every character after
// the leading # must be a hex digit.
func Parse(hex string) (colorful.Color, error) {
	if !strings.HasPrefix(hex, "#") || (len(hex) != 4 && len(hex) != 7) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	for i := 1; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return colorful.Color{}, fmt.Errorf("%w: %q: unexpected %q at offset %d", ErrInvalidColor, hex, hex[i], i)
		}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	return c, nil
}

func isHexDigit(b byte) bool {
	switch {
	case '0' <= b && b <= '9', 'a' <= b && b <= 'f', 'A' <= b && b <= 'F':
		return true
	}
	return false
}

// Hex returns the lowercase #rrggbb representation of any color.Color.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Clamped().Hex()
}

// Brighten raises the Lab lightness of c by amount steps.
func Brighten(c colorful.Color, amount float64) colorful.Color {
	l, a, b := c.Lab()
	return colorful.Lab(l+labStep*amount, a, b).Clamped()
}

// Darken lowers the Lab lightness of c by amount steps.
func Darken(c colorful.Color, amount float64) colorful.Color {
	return Brighten(c, -amount)
}

// Desaturate lowers the LCh chroma of c by amount steps, never below zero.
func Desaturate(c colorful.Color, amount float64) colorful.Color {
	h, ch, l := c.Hcl()
	ch = math.Max(0, ch-labStep*amount)
	return colorful.Hcl(h, ch, l).Clamped()
}

// Ramp builds a tonal ramp around a seed color: a Lab scale that runs from a
// dark, muted shade through the seed itself to a light, muted tint.
// Sampling the ramp at 0.5 returns the seed.
func Ramp(hex string) (*Scale, error) {
	seed, err := Parse(hex)
	if err != nil {
		return nil, err
	}
	start := Darken(Desaturate(seed, 1), 4)
	end := Brighten(Desaturate(seed, 1), 5)
	return newScale(ModeLab, []colorful.Color{start, seed, end}), nil
}

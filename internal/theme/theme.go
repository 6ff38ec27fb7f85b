// Package theme builds theme descriptors from base16 palettes.
package theme

import (
	"fmt"

	"github.com/yumosx/atelier/internal/colorx"
	"github.com/yumosx/atelier/internal/palette"
	"github.com/yumosx/atelier/internal/syntax"
)

// Appearance tells the host whether a theme is meant for dark or light
// backgrounds.
type Appearance string

const (
	Dark  Appearance = "dark"
	Light Appearance = "light"
)

// MarshalText implements encoding.TextMarshaler.
func (a Appearance) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Appearance) UnmarshalText(text []byte) error {
	switch v := Appearance(text); v {
	case Dark, Light:
		*a = v
		return nil
	default:
		return fmt.Errorf("unknown appearance %q", text)
	}
}

// Meta is the identity shared by every variant of a theme family.
type Meta struct {
	Name    string
	Author  string
	License License
}

// InputColor is the color input handed to the theme engine: a neutral
// scale across the grayscale slots and one tonal ramp per accent.
type InputColor struct {
	Neutral *colorx.Scale

	Red     *colorx.Scale
	Orange  *colorx.Scale
	Yellow  *colorx.Scale
	Green   *colorx.Scale
	Cyan    *colorx.Scale
	Blue    *colorx.Scale
	Violet  *colorx.Scale
	Magenta *colorx.Scale
}

// Accent returns the ramp for accent a.
func (c InputColor) Accent(a palette.Accent) *colorx.Scale {
	return *c.accentField(a)
}

func (c *InputColor) accentField(a palette.Accent) **colorx.Scale {
	switch a {
	case palette.Red:
		return &c.Red
	case palette.Orange:
		return &c.Orange
	case palette.Yellow:
		return &c.Yellow
	case palette.Green:
		return &c.Green
	case palette.Cyan:
		return &c.Cyan
	case palette.Blue:
		return &c.Blue
	case palette.Violet:
		return &c.Violet
	case palette.Magenta:
		return &c.Magenta
	}
	panic(fmt.Sprintf("unknown accent %d", int(a)))
}

// Override holds the parts of a theme that bypass the engine's defaults.
type Override struct {
	Syntax syntax.Override
}

// ThemeConfig is a complete theme descriptor. It is not modified after
// Build returns it.
type ThemeConfig struct {
	Name       string
	Author     string
	License    License
	Appearance Appearance
	InputColor InputColor
	Override   Override

	variant palette.Variant
}

// Variant returns the palette the theme was built from.
func (t *ThemeConfig) Variant() palette.Variant {
	return t.variant
}

// Build maps a palette onto a theme descriptor. The palette is not
// validated up front; a malformed color surfaces as the colorx error for the
// first scale or ramp that uses it.
func Build(meta Meta, variantName string, appearance Appearance, v palette.Variant) (*ThemeConfig, error) {
	neutral, err := colorx.NewScale(colorx.ModeRGB, v.NeutralHexes()...)
	if err != nil {
		return nil, fmt.Errorf("neutral scale: %w", err)
	}

	input := InputColor{Neutral: neutral}
	for _, a := range palette.Accents {
		ramp, err := colorx.Ramp(v.Accent(a))
		if err != nil {
			return nil, fmt.Errorf("%s ramp from %s: %w", a, a.Slot(), err)
		}
		*input.accentField(a) = ramp
	}

	return &ThemeConfig{
		Name:       meta.Name + " " + variantName,
		Author:     meta.Author,
		License:    meta.License,
		Appearance: appearance,
		InputColor: input,
		Override: Override{
			Syntax: syntax.Build(v),
		},
		variant: v,
	}, nil
}

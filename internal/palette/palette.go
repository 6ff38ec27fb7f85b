// Package palette models base16 palettes: sixteen named color slots where
// Base00 through Base07 form a neutral ramp and Base08 through Base0F hold
// the accent colors.
package palette

import (
	"errors"
	"fmt"

	"github.com/yumosx/atelier/internal/colorx"
)

// Slot identifies one of the sixteen base16 colors.
type Slot int

const (
	Base00 Slot = iota
	Base01
	Base02
	Base03
	Base04
	Base05
	Base06
	Base07
	Base08
	Base09
	Base0A
	Base0B
	Base0C
	Base0D
	Base0E
	Base0F
)

// NumSlots is the number of colors in a palette.
const NumSlots = 16

// Slots lists every slot in palette order.
var Slots = [NumSlots]Slot{
	Base00, Base01, Base02, Base03, Base04, Base05, Base06, Base07,
	Base08, Base09, Base0A, Base0B, Base0C, Base0D, Base0E, Base0F,
}

// Neutrals lists the grayscale slots, darkest to lightest for dark variants.
var Neutrals = [8]Slot{
	Base00, Base01, Base02, Base03, Base04, Base05, Base06, Base07,
}

func (s Slot) String() string {
	if s < 0 || s >= NumSlots {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return fmt.Sprintf("base%02X", int(s))
}

// Accent is a named accent role.
type Accent int

const (
	Red Accent = iota
	Orange
	Yellow
	Green
	Cyan
	Blue
	Violet
	Magenta
)

// Accents lists every accent role in slot order.
var Accents = [8]Accent{Red, Orange, Yellow, Green, Cyan, Blue, Violet, Magenta}

var accentTable = [8]struct {
	name string
	slot Slot
}{
	Red:     {"red", Base08},
	Orange:  {"orange", Base09},
	Yellow:  {"yellow", Base0A},
	Green:   {"green", Base0B},
	Cyan:    {"cyan", Base0C},
	Blue:    {"blue", Base0D},
	Violet:  {"violet", Base0E},
	Magenta: {"magenta", Base0F},
}

func (a Accent) String() string {
	if a < 0 || int(a) >= len(accentTable) {
		return fmt.Sprintf("Accent(%d)", int(a))
	}
	return accentTable[a].name
}

// Slot returns the palette slot that seeds this accent.
func (a Accent) Slot() Slot {
	return accentTable[a].slot
}

// ParseAccent looks an accent up by name.
func ParseAccent(name string) (Accent, error) {
	for _, a := range Accents {
		if accentTable[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown accent %q", name)
}

// Variant is one concrete base16 palette.
type Variant struct {
	Name   string
	Colors [NumSlots]string
}

// Get returns the hex color stored in slot s.
func (v Variant) Get(s Slot) string {
	return v.Colors[s]
}

// Accent returns the hex color seeding accent a.
func (v Variant) Accent(a Accent) string {
	return v.Colors[a.Slot()]
}

// NeutralHexes returns the neutral slots in ramp order.
func (v Variant) NeutralHexes() []string {
	out := make([]string, len(Neutrals))
	for i, s := range Neutrals {
		out[i] = v.Colors[s]
	}
	return out
}

// Validate parses every slot and reports all malformed ones at once.
func (v Variant) Validate() error {
	var errs []error
	for _, s := range Slots {
		if _, err := colorx.Parse(v.Colors[s]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("palette %q: %w", v.Name, errors.Join(errs...))
	}
	return nil
}

// With returns a copy of v with slot s set to hex.
func (v Variant) With(s Slot, hex string) Variant {
	v.Colors[s] = hex
	return v
}

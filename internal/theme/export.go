package theme

import (
	"encoding/json"

	"github.com/yumosx/atelier/internal/colorx"
	"github.com/yumosx/atelier/internal/palette"
	"github.com/yumosx/atelier/internal/syntax"
)

// DefaultSamples is how many colors each scale is sampled into when a theme
// is serialized.
const DefaultSamples = 11

// ScaleDocument is the serialized form of a scale.
type ScaleDocument struct {
	Mode    colorx.Mode `json:"mode"`
	Stops   []string    `json:"stops"`
	Samples []string    `json:"samples"`
}

// LicenseDocument is the serialized form of a license.
type LicenseDocument struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	File string `json:"file,omitempty"`
}

// Document is the serialized form of a theme, for hosts that cannot call
// into Go.
type Document struct {
	Name       string                   `json:"name"`
	Author     string                   `json:"author"`
	License    LicenseDocument          `json:"license"`
	Appearance Appearance               `json:"appearance"`
	Palette    map[string]string        `json:"palette"`
	InputColor map[string]ScaleDocument `json:"inputColor"`
	Override   OverrideDocument         `json:"override"`
}

// OverrideDocument is the serialized form of Override.
type OverrideDocument struct {
	Syntax syntax.Override `json:"syntax"`
}

func scaleDocument(s *colorx.Scale, samples int) ScaleDocument {
	return ScaleDocument{
		Mode:    s.Mode(),
		Stops:   s.Stops(),
		Samples: s.Hexes(samples),
	}
}

// Document serializes t, sampling every scale into samples colors.
func (t *ThemeConfig) Document(samples int) Document {
	pal := make(map[string]string, palette.NumSlots)
	for _, s := range palette.Slots {
		pal[s.String()] = t.variant.Get(s)
	}

	input := map[string]ScaleDocument{
		"neutral": scaleDocument(t.InputColor.Neutral, samples),
	}
	for _, a := range palette.Accents {
		input[a.String()] = scaleDocument(t.InputColor.Accent(a), samples)
	}

	return Document{
		Name:   t.Name,
		Author: t.Author,
		License: LicenseDocument{
			Type: t.License.Type,
			URL:  t.License.URL,
			File: t.License.File,
		},
		Appearance: t.Appearance,
		Palette:    pal,
		InputColor: input,
		Override:   OverrideDocument{Syntax: t.Override.Syntax},
	}
}

// MarshalJSON implements json.Marshaler using DefaultSamples.
func (t *ThemeConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Document(DefaultSamples))
}

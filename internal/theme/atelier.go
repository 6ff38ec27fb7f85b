package theme

import "github.com/yumosx/atelier/internal/palette"

// AtelierMeta is the identity shared by the Atelier family.
var AtelierMeta = Meta{
	Name:   "Atelier",
	Author: "Bram de Haan (http://atelierbramdehaan.nl)",
	License: License{
		Type: "MIT",
		URL:  "https://github.com/atelierbram/syntax-highlighting/blob/master/LICENSE",
		File: "atelier.txt",
	},
}

// Atelier Forest palette values.
const (
	forest00 = "#1b1918"
	forest01 = "#2c2421"
	forest02 = "#68615e"
	forest03 = "#766e6b"
	forest04 = "#9c9491"
	forest05 = "#a8a19f"
	forest06 = "#e6e2e0"
	forest07 = "#f1efee"
	forest08 = "#f22c40"
	forest09 = "#df5320"
	forest0A = "#c38418"
	forest0B = "#7b9726"
	forest0C = "#3d97b8"
	forest0D = "#407ee7"
	forest0E = "#6666ea"
	forest0F = "#c33ff3"
)

// ForestDarkVariant is the dark Atelier Forest palette.
var ForestDarkVariant = palette.Variant{
	Name: "Forest Dark",
	Colors: [palette.NumSlots]string{
		forest00, forest01, forest02, forest03,
		forest04, forest05, forest06, forest07,
		forest08, forest09, forest0A, forest0B,
		forest0C, forest0D, forest0E, forest0F,
	},
}

// ForestLightVariant is the light Atelier Forest palette. The neutral ramp
// is reversed so Base00 stays the background.
var ForestLightVariant = palette.Variant{
	Name: "Forest Light",
	Colors: [palette.NumSlots]string{
		forest07, forest06, forest05, forest04,
		forest03, forest02, forest01, forest00,
		forest08, forest09, forest0A, forest0B,
		forest0C, forest0D, forest0E, forest0F,
	},
}

// ForestDark builds the Atelier Forest Dark theme.
func ForestDark() (*ThemeConfig, error) {
	return Build(AtelierMeta, ForestDarkVariant.Name, Dark, ForestDarkVariant)
}

// ForestLight builds the Atelier Forest Light theme.
func ForestLight() (*ThemeConfig, error) {
	return Build(AtelierMeta, ForestLightVariant.Name, Light, ForestLightVariant)
}

package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/yumosx/atelier/internal/palette"
)

// Styles are terminal styles derived from a theme, used to preview it.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Border lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Background color.Color
	Foreground color.Color
}

// Styles builds terminal styles from the theme's palette.
func (t *ThemeConfig) Styles() *Styles {
	c := func(s palette.Slot) color.Color {
		return lipgloss.Color(t.variant.Get(s))
	}

	base := lipgloss.NewStyle().
		Foreground(c(palette.Base05))
	return &Styles{
		Base:   base,
		Muted:  base.Foreground(c(palette.Base04)),
		Subtle: base.Foreground(c(palette.Base03)),
		Title: base.
			Foreground(c(palette.Base0D)).
			Bold(true),
		Border: base.Foreground(c(palette.Base02)),

		Success: base.Foreground(c(palette.Base0B)),
		Error:   base.Foreground(c(palette.Base08)),
		Warning: base.Foreground(c(palette.Base0A)),
		Info:    base.Foreground(c(palette.Base0C)),

		Background: c(palette.Base00),
		Foreground: c(palette.Base05),
	}
}

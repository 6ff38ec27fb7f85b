// Package preview renders a theme to the terminal.
package preview

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
	"github.com/yumosx/atelier/internal/colorx"
	"github.com/yumosx/atelier/internal/palette"
	"github.com/yumosx/atelier/internal/syntax"
	"github.com/yumosx/atelier/internal/theme"
)

const (
	defaultWidth = 64
	labelWidth   = 9
	swatch       = "██"
	bar          = "█"
)

const sample = `package main

import "fmt"

// greet says hello.
func greet(name string) string {
	return fmt.Sprintf("hello, %s\n", name)
}

func main() {
	for i := 0; i < 3; i++ {
		fmt.Println(greet("forest"), i, true)
	}
}
`

// Render writes a preview of t: its identity, the neutral scale, one
// gradient bar per accent ramp and a highlighted code sample.
func Render(w io.Writer, t *theme.ThemeConfig, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	st := t.Styles()

	var b strings.Builder
	b.WriteString(st.Title.Render(t.Name))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(fmt.Sprintf("%s · %s", t.Appearance, t.License.Type)))
	b.WriteString("\n")
	b.WriteString(st.Subtle.Render(t.Author))
	b.WriteString("\n\n")

	b.WriteString(label(st, "neutral"))
	for _, s := range palette.Neutrals {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Variant().Get(s))).Render(swatch))
	}
	b.WriteString("\n")

	barWidth := max(width-labelWidth, 1)
	for _, a := range palette.Accents {
		ramp := t.InputColor.Accent(a)
		b.WriteString(label(st, a.String()))
		b.WriteString(Gradient(strings.Repeat(bar, barWidth), ramp.Color(0), ramp.Color(0.5), ramp.Color(1)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	style, err := t.Override.Syntax.ChromaStyle(theme.ID(t.Name))
	if err != nil {
		return err
	}
	code, err := syntax.Highlight(style, sample, "main.go")
	if err != nil {
		return err
	}
	b.WriteString(strings.TrimRight(code, "\n"))

	for line := range strings.Lines(b.String()) {
		line = strings.TrimSuffix(line, "\n")
		if _, err := fmt.Fprintln(w, ansi.Truncate(line, width, "…")); err != nil {
			return err
		}
	}
	return nil
}

func label(st *theme.Styles, name string) string {
	return st.Subtle.Width(labelWidth).Render(name)
}

// Gradient renders input with a horizontal foreground gradient through the
// given stops.
func Gradient(input string, stops ...color.Color) string {
	if input == "" || len(stops) == 0 {
		return input
	}

	var clusters []string
	gr := uniseg.NewGraphemes(input)
	for gr.Next() {
		clusters = append(clusters, string(gr.Runes()))
	}

	if len(clusters) == 1 || len(stops) == 1 {
		return lipgloss.NewStyle().Foreground(stops[0]).Render(input)
	}

	ramp := colorx.Blend(len(clusters), stops...)
	var o strings.Builder
	for i, c := range ramp {
		o.WriteString(lipgloss.NewStyle().Foreground(c).Render(clusters[i]))
	}
	return o.String()
}

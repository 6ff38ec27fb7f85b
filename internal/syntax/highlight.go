package syntax

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

var _ chroma.Formatter = formatter{}

// formatter renders chroma tokens with Lip Gloss, keeping a forced
// background color behind every token.
type formatter struct {
	bg color.Color
}

// Format implements the chroma.Formatter interface.
func (f formatter) Format(w io.Writer, style *chroma.Style, it chroma.Iterator) error {
	for token := it(); token != chroma.EOF; token = it() {
		lines := strings.Split(token.Value, "\n")
		for i, line := range lines {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if line == "" {
				continue
			}
			if _, err := fmt.Fprint(w, f.render(style.Get(token.Type), escape(line))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f formatter) render(entry chroma.StyleEntry, value string) string {
	s := lipgloss.NewStyle()
	if f.bg != nil {
		s = s.Background(f.bg)
	}
	if entry.IsZero() {
		return s.Render(value)
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	return s.Render(value)
}

// escape replaces control characters with their Unicode Control Picture
// so they cannot break the terminal.
func escape(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch {
		case r == '\t':
			sb.WriteString("    ")
		case r >= 0 && r <= 0x1f:
			sb.WriteRune('␀' + r)
		case r == ansi.DEL:
			sb.WriteRune('␡')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// LipglossFormatter is the name of the built-in Lip Gloss formatter. Any
// other name is looked up in the chroma formatter registry.
const LipglossFormatter = "lipgloss"

// Highlight renders source with the given style using the Lip Gloss
// formatter.
func Highlight(style *chroma.Style, source, fileName string) (string, error) {
	return HighlightWith(LipglossFormatter, style, source, fileName)
}

// HighlightWith renders source with the given style and the named formatter.
// The lexer is picked from fileName and falls back to content analysis.
func HighlightWith(formatterName string, style *chroma.Style, source, fileName string) (string, error) {
	l := lexers.Match(fileName)
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	it, err := l.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise %s: %w", fileName, err)
	}

	var buf bytes.Buffer
	if err := newFormatter(formatterName, style).Format(&buf, style, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func newFormatter(name string, style *chroma.Style) chroma.Formatter {
	if name == "" || name == LipglossFormatter {
		var bg color.Color
		if entry := style.Get(chroma.Background); entry.Background.IsSet() {
			bg = lipgloss.Color(entry.Background.String())
		}
		return formatter{bg: bg}
	}
	f := formatters.Get(name)
	if f == nil {
		f = formatters.Fallback
	}
	return f
}

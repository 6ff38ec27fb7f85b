// Package syntax derives syntax highlighting overrides from a base16
// palette and turns them into chroma styles.
package syntax

import (
	"github.com/yumosx/atelier/internal/palette"
)

// Kind names a class of highlighted token.
type Kind string

const (
	Attribute      Kind = "attribute"
	Boolean        Kind = "boolean"
	Comment        Kind = "comment"
	CommentDoc     Kind = "comment.doc"
	Constant       Kind = "constant"
	Constructor    Kind = "constructor"
	Embedded       Kind = "embedded"
	Emphasis       Kind = "emphasis"
	EmphasisStrong Kind = "emphasis.strong"
	Enum           Kind = "enum"
	Function       Kind = "function"
	Hint           Kind = "hint"
	Keyword        Kind = "keyword"
	Label          Kind = "label"
	LinkText       Kind = "link_text"
	LinkURI        Kind = "link_uri"
	Number         Kind = "number"
	Operator       Kind = "operator"
	Predictive     Kind = "predictive"
	Preproc        Kind = "preproc"
	Primary        Kind = "primary"
	Property       Kind = "property"
	Punctuation    Kind = "punctuation"
	String         Kind = "string"
	StringEscape   Kind = "string.escape"
	StringRegex    Kind = "string.regex"
	StringSpecial  Kind = "string.special"
	Tag            Kind = "tag"
	Title          Kind = "title"
	Type           Kind = "type"
	Variable       Kind = "variable"
	Variant        Kind = "variant"
)

// Kinds lists every kind Build produces, in a stable order.
var Kinds = []Kind{
	Attribute, Boolean, Comment, CommentDoc, Constant, Constructor,
	Embedded, Emphasis, EmphasisStrong, Enum, Function, Hint, Keyword,
	Label, LinkText, LinkURI, Number, Operator, Predictive, Preproc,
	Primary, Property, Punctuation, String, StringEscape, StringRegex,
	StringSpecial, Tag, Title, Type, Variable, Variant,
}

// Weight is a font weight in the usual 100-900 range.
type Weight int

const (
	WeightNormal Weight = 0
	WeightBold   Weight = 700
)

// Style is how one token kind is drawn.
type Style struct {
	Color     string `json:"color"`
	Weight    Weight `json:"weight,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

// Override is the syntax section of a theme.
type Override struct {
	Foreground string         `json:"foreground"`
	Background string         `json:"background"`
	Styles     map[Kind]Style `json:"styles"`
}

// Get returns the style for k and whether the override defines it.
func (o Override) Get(k Kind) (Style, bool) {
	s, ok := o.Styles[k]
	return s, ok
}

// Build maps a palette onto syntax token styles.
func Build(v palette.Variant) Override {
	c := v.Get
	plain := func(s palette.Slot) Style { return Style{Color: c(s)} }
	italic := func(s palette.Slot) Style { return Style{Color: c(s), Italic: true} }
	bold := func(s palette.Slot) Style { return Style{Color: c(s), Weight: WeightBold} }

	return Override{
		Foreground: c(palette.Base05),
		Background: c(palette.Base00),
		Styles: map[Kind]Style{
			Primary:        plain(palette.Base06),
			Comment:        italic(palette.Base03),
			CommentDoc:     italic(palette.Base04),
			Punctuation:    plain(palette.Base05),
			Operator:       plain(palette.Base05),
			Variable:       plain(palette.Base06),
			Property:       plain(palette.Base08),
			Tag:            plain(palette.Base08),
			Label:          plain(palette.Base08),
			Number:         plain(palette.Base09),
			Boolean:        plain(palette.Base09),
			Constant:       plain(palette.Base09),
			Enum:           plain(palette.Base09),
			Variant:        plain(palette.Base09),
			LinkText:       italic(palette.Base09),
			EmphasisStrong: bold(palette.Base09),
			Type:           plain(palette.Base0A),
			Constructor:    plain(palette.Base0A),
			String:         plain(palette.Base0B),
			LinkURI:        {Color: c(palette.Base0B), Underline: true},
			StringEscape:   plain(palette.Base0C),
			StringRegex:    plain(palette.Base0C),
			StringSpecial:  plain(palette.Base0C),
			Function:       plain(palette.Base0D),
			Attribute:      plain(palette.Base0D),
			Emphasis:       italic(palette.Base0D),
			Title:          bold(palette.Base0D),
			Keyword:        plain(palette.Base0E),
			Preproc:        plain(palette.Base0E),
			Embedded:       plain(palette.Base0F),
			Predictive:     italic(palette.Base04),
			Hint:           italic(palette.Base04),
		},
	}
}

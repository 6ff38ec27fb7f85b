package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// chromaTokens maps each kind to the chroma token types it colors. Kinds
// with no chroma counterpart (hints, predictions) are left out.
var chromaTokens = map[Kind][]chroma.TokenType{
	Attribute:      {chroma.NameAttribute, chroma.NameDecorator},
	Boolean:        {chroma.KeywordConstant},
	Comment:        {chroma.Comment},
	CommentDoc:     {chroma.CommentSpecial},
	Constant:       {chroma.NameConstant},
	Constructor:    {chroma.NameClass},
	Embedded:       {chroma.LiteralStringInterpol},
	Emphasis:       {chroma.GenericEmph},
	EmphasisStrong: {chroma.GenericStrong},
	Enum:           {chroma.NameEntity},
	Function:       {chroma.NameFunction, chroma.NameBuiltin},
	Keyword:        {chroma.Keyword},
	Label:          {chroma.NameLabel},
	LinkURI:        {chroma.GenericUnderline},
	Number:         {chroma.LiteralNumber},
	Operator:       {chroma.Operator},
	Preproc:        {chroma.CommentPreproc},
	Primary:        {chroma.Name},
	Property:       {chroma.NameProperty},
	Punctuation:    {chroma.Punctuation},
	String:         {chroma.LiteralString},
	StringEscape:   {chroma.LiteralStringEscape},
	StringRegex:    {chroma.LiteralStringRegex},
	StringSpecial:  {chroma.LiteralStringSymbol, chroma.LiteralStringOther},
	Tag:            {chroma.NameTag},
	Title:          {chroma.GenericHeading, chroma.GenericSubheading},
	Type:           {chroma.KeywordType},
	Variable:       {chroma.NameVariable},
}

// entry renders a style in chroma's style entry syntax.
func (s Style) entry() string {
	parts := []string{s.Color}
	if s.Weight >= WeightBold {
		parts = append(parts, "bold")
	}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Underline {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}

// ChromaEntries converts the override into chroma style entries.
func (o Override) ChromaEntries() chroma.StyleEntries {
	entries := chroma.StyleEntries{
		chroma.Background: fmt.Sprintf("%s bg:%s", o.Foreground, o.Background),
		chroma.Text:       o.Foreground,
		chroma.Error:      o.errorColor(),
	}
	for kind, tokens := range chromaTokens {
		style, ok := o.Get(kind)
		if !ok {
			continue
		}
		for _, tt := range tokens {
			entries[tt] = style.entry()
		}
	}
	return entries
}

func (o Override) errorColor() string {
	if s, ok := o.Get(Property); ok {
		return s.Color
	}
	return o.Foreground
}

// ChromaStyle builds a named chroma style from the override.
func (o Override) ChromaStyle(name string) (*chroma.Style, error) {
	style, err := chroma.NewStyle(name, o.ChromaEntries())
	if err != nil {
		return nil, fmt.Errorf("failed to build chroma style %s: %w", name, err)
	}
	return style, nil
}

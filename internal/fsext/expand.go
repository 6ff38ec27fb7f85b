package fsext

import (
	"strings"

	"github.com/yumosx/atelier/internal/env"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Expand is a wrapper around [expand.Literal]. It expands shell symbols and
// resolves environment variables from e, so config values like
// "$XDG_DATA_HOME/atelier" work.
func Expand(s string, e env.Env) (string, error) {
	if s == "" || !strings.ContainsAny(s, "$~`") {
		return s, nil
	}
	p := syntax.NewParser()
	word, err := p.Document(strings.NewReader(s))
	if err != nil {
		return "", err
	}
	cfg := &expand.Config{
		Env: expand.FuncEnviron(e.Get),
	}
	return expand.Literal(cfg, word)
}

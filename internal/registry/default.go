package registry

import (
	"github.com/oxhq/webcst/internal/grammar/html"
	"github.com/oxhq/webcst/internal/grammar/js"
	"github.com/oxhq/webcst/internal/grammar/ts"
	"github.com/oxhq/webcst/internal/grammar/vue"
	"github.com/oxhq/webcst/internal/syntax"
)

// Default builds the Registry every entry point uses: the four grammars
// this spec covers, dispatched by extension.
func Default() *Registry {
	r := New()
	mustRegister(r, ".html", func(text string) *syntax.Tree { return html.Parse(text, html.Kinds, html.Delimiters{}) })
	mustRegister(r, ".vue", vue.Parse)
	mustRegister(r, ".js", func(text string) *syntax.Tree { return js.Parse(text, js.Kinds, nil) })
	mustRegister(r, ".ts", ts.Parse)
	return r
}

func mustRegister(r *Registry, ext string, parse ParseFunc) {
	if err := r.Register(ext, parse); err != nil {
		panic(err)
	}
}

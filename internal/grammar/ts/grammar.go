package ts

import (
	"github.com/oxhq/webcst/internal/grammar/js"
	"github.com/oxhq/webcst/internal/syntax"
)

// extensions wires js.Extensions to this package's TS-only node kinds.
var extensions = &js.Extensions{NonNull: NonNullExpression, AsExpr: AsExpression}

// Parse runs the shared statement/expression grammar over TypeScript
// source, using this language's own Kinds table and its non-null/as
// extensions (§4.3: "TypeScript extends the framework with `as` type
// assertion and `!` non-null; both obey standard precedence placement").
func Parse(text string) *syntax.Tree {
	return js.Parse(text, Kinds, extensions)
}

// ParseExpression mirrors Parse for standalone expression substrings (see
// js.ParseExpression).
func ParseExpression(text string) *syntax.Tree {
	return js.ParseExpression(text, Kinds, extensions)
}

// Package js implements the JavaScript grammar: a set of parser functions
// driving internal/parser's event-emitting kernel with precedence climbing
// for expressions (§4.3, §4.4). TypeScript (internal/grammar/ts) reuses
// every rule in this package, passing its own Kinds table and a small set
// of extension points for the constructs JS lacks (`as`, non-null `!`).
package js

import (
	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/syntax"
)

// Kinds is this language's built suffix table (§8.2: JS and TS each get a
// disjoint 16-bit namespace even though they share the same suffix
// numbering via jskinds).
var Kinds = jskinds.Build(syntax.LangJS)

func init() {
	syntax.RegisterDebugRepr(syntax.LangJS, func(k syntax.Kind) string {
		return Kinds.Name(k)
	})
}

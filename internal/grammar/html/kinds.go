// Package html implements the HTML grammar: tag open/close matching with a
// speculative close-tag lookahead that recovers by leaving an unmatched end
// tag for an ancestor frame (§4.4), raw script/style body capture, and an
// optional mustache-style template delimiter Vue installs on top of this
// same grammar.
package html

import (
	"github.com/oxhq/webcst/internal/grammar/htmlkinds"
	"github.com/oxhq/webcst/internal/syntax"
)

// Kinds is HTML's own 16-bit namespace (§8.2).
var Kinds = htmlkinds.Build(syntax.LangHTML)

func init() {
	syntax.RegisterDebugRepr(syntax.LangHTML, func(k syntax.Kind) string {
		return Kinds.Name(k)
	})
}

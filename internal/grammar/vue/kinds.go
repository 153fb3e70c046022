// Package vue implements the Vue single-file-component grammar as a thin
// extension of internal/grammar/html (§4.4 design note: "Vue grammar reuses
// the HTML grammar with the {{/}} template pattern installed"). Structural
// diagnostics (duplicate root template, script/style extraction, vm-shape
// inference) live in internal/analysis, which walks the tree this package
// produces.
package vue

import (
	"github.com/oxhq/webcst/internal/grammar/htmlkinds"
	"github.com/oxhq/webcst/internal/syntax"
)

// Kinds is Vue's own 16-bit namespace — built from the same suffix table as
// HTML (§8.2) so the markup shapes never drift apart.
var Kinds = htmlkinds.Build(syntax.LangVue)

func init() {
	syntax.RegisterDebugRepr(syntax.LangVue, func(k syntax.Kind) string {
		return Kinds.Name(k)
	})
}

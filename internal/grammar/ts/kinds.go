// Package ts implements the TypeScript grammar as a thin extension of
// internal/grammar/js (§4.3 design note: "TypeScript extends the
// framework"): every statement/expression rule is reused unmodified, with
// two additional postfix constructs (non-null `!`, `as` type assertion)
// layered in via js.Extensions.
package ts

import (
	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/syntax"
)

// Kinds is TS's own 16-bit namespace — built from the same suffix table as
// JS (§8.2) so the two languages' node kinds never drift apart, then
// extended with TS-only constructs starting at jskinds.FirstExtSuffix.
var Kinds = jskinds.Build(syntax.LangTS)

var (
	NonNullExpression = Kinds.Extend(uint16(jskinds.FirstExtSuffix), "TS_NON_NULL_EXPRESSION")
	AsExpression      = Kinds.Extend(uint16(jskinds.FirstExtSuffix)+1, "TS_AS_EXPRESSION")
)

func init() {
	syntax.RegisterDebugRepr(syntax.LangTS, func(k syntax.Kind) string {
		return Kinds.Name(k)
	})
}

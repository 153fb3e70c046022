// Package parser implements the predictive, backtracking parser kernel
// shared by every grammar (§4.3): a token source that hides trivia from
// lookahead, an event stream recording node starts/finishes/tokens/errors
// independent of how the tree is eventually materialized, markers that can
// retroactively wrap an already-completed node in a new parent (used by
// precedence climbing), and a bounded checkpoint/rollback mechanism for
// speculative parsing.
package parser

import "github.com/oxhq/webcst/internal/syntax"

type eventKind uint8

const (
	evStart eventKind = iota
	evFinish
	evToken
	evError
)

// tombstoneKind marks a Start event whose Marker was abandoned rather than
// completed — skipped entirely when the event stream is replayed into a
// tree.
const tombstoneKind = syntax.Kind(0xFFFF)

// event is one entry in the kernel's event stream. Exactly one of the
// per-kind fields is meaningful depending on kind.
type event struct {
	kind eventKind

	// evStart
	nodeKind      syntax.Kind
	forwardParent int // offset to the event that should wrap this one, 0 = none

	// evToken
	tokenKind syntax.Kind
	tokenLen  int

	// evError
	msg string
}

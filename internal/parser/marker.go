package parser

import "github.com/oxhq/webcst/internal/syntax"

// Marker references an open (not yet completed) node in the event stream.
// It must be completed or abandoned exactly once. Finish does not detect a
// marker left dangling: its Start event stays a placeholder that BuildTree
// skips, so the tokens it covered attach to the enclosing node.
type Marker struct {
	pos      int
	resolved bool
}

// CompletedMarker references a finished node. Precede lets a later rule
// retroactively insert a new parent around it — e.g. precedence climbing
// wrapping a parsed left-hand side in a BinaryExpression once it sees the
// operator.
type CompletedMarker struct {
	pos  int
	kind syntax.Kind
}

// Kind returns the kind the completed node was given.
func (c CompletedMarker) Kind() syntax.Kind { return c.kind }

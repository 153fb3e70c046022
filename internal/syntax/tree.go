package syntax

// Tree is a parsed syntax tree: an immutable green root plus the syntax
// errors collected while building it. It is the "TreeArc" handle referred
// to in §3's lifecycle notes — clients hold a *Tree and every Node derived
// from it is valid as long as the Tree is reachable; Go's GC makes this
// automatic; there is no manual refcounting to model.
type Tree struct {
	green  GreenElement
	errors []SyntaxError
}

// NewTree wraps a green root with its collected errors.
func NewTree(green GreenElement, errors []SyntaxError) *Tree {
	return &Tree{green: green, errors: errors}
}

// Root returns the red root of the tree.
func (t *Tree) Root() *Node { return NewRoot(t.green) }

// Errors returns the syntax errors recorded for this tree, in the order
// they were emitted.
func (t *Tree) Errors() []SyntaxError { return t.errors }

// HasErrors reports whether parsing produced any syntax errors.
func (t *Tree) HasErrors() bool { return len(t.errors) > 0 }

// Text reconstructs the full source text by concatenating every leaf token
// in document order (§8.1 losslessness invariant).
func (t *Tree) Text() string { return t.Root().TokenText() }

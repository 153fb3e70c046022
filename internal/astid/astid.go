// Package astid implements stable, breadth-first-numbered references into a
// syntax tree that survive re-parses of the same source (§4.5): a
// SyntaxNodePtr locates a node by its (range, kind) rather than by a live
// pointer, and a Map assigns each "interesting" node a dense integer slot in
// BFS order so inserting a new child only renumbers nodes visited after it.
package astid

import "github.com/oxhq/webcst/internal/syntax"

// SyntaxNodePtr locates a node by its byte range and kind — stable enough to
// carry across a fresh parse of unchanged text, unlike a *syntax.Node, which
// is only valid for the tree it was built from.
type SyntaxNodePtr struct {
	Range syntax.TextRange
	Kind  syntax.Kind
}

// PtrOf captures node's current position and kind.
func PtrOf(node *syntax.Node) SyntaxNodePtr {
	return SyntaxNodePtr{Range: node.Range(), Kind: node.Kind()}
}

// FindIn locates the node in root covering ptr's range and asserts its kind
// matches. Unlike Map.AstID, a mismatch here is not a programming error —
// root may come from a later edit of the source — so it reports ok=false
// rather than panicking; callers must treat that as "invalidate this ID"
// (§4.5, §7 "programming error" vs ordinary failure).
func (ptr SyntaxNodePtr) FindIn(root *syntax.Node) (*syntax.Node, bool) {
	n := coveringNode(root, ptr.Range)
	if n == nil || n.Kind() != ptr.Kind {
		return nil, false
	}
	return n, true
}

// coveringNode descends into whichever child covers r, stopping at the
// deepest node that still covers it (or at a leaf token, which has no
// children to descend into further).
func coveringNode(n *syntax.Node, r syntax.TextRange) *syntax.Node {
	if !n.Range().Covers(r) {
		return nil
	}
	for _, c := range n.Children() {
		if c.Range().Covers(r) {
			return coveringNode(c, r)
		}
	}
	return n
}

// Predicate decides whether a node is "interesting" enough to be assigned an
// AstId. Language-specific: e.g. script/style elements, class and function
// declarations.
type Predicate func(*syntax.Node) bool

// Map is a dense, BFS-numbered arena of SyntaxNodePtrs for one parsed tree.
// Slot i is the i-th node matching Predicate in breadth-first visiting
// order, so a locally inserted interesting node only shifts the slots of
// nodes visited after it (§8.7 BFS stability).
type Map struct {
	entries []SyntaxNodePtr
	index   map[SyntaxNodePtr]int
}

// FromRoot walks root breadth-first, allocating a dense slot for every node
// matching predicate.
func FromRoot(root *syntax.Node, predicate Predicate) *Map {
	m := &Map{index: make(map[SyntaxNodePtr]int)}
	queue := []*syntax.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if predicate(n) {
			ptr := PtrOf(n)
			m.index[ptr] = len(m.entries)
			m.entries = append(m.entries, ptr)
		}
		queue = append(queue, n.Children()...)
	}
	return m
}

// AstID returns the dense index assigned to node. Panics if node was never
// visited by FromRoot's predicate over this same tree — that can only
// happen from a programming error (asking for the id of a node the caller
// never registered), not a recoverable runtime condition (§4.5, §7).
func (m *Map) AstID(node *syntax.Node) int {
	id, ok := m.index[PtrOf(node)]
	if !ok {
		panic("astid: node has no assigned AstId")
	}
	return id
}

// Resolve returns the SyntaxNodePtr stored at id. Panics on an out-of-range
// id — a Map never hands out an id it cannot resolve.
func (m *Map) Resolve(id int) SyntaxNodePtr { return m.entries[id] }

// Len reports how many interesting nodes FromRoot found.
func (m *Map) Len() int { return len(m.entries) }

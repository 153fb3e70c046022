package astid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/astid"
	"github.com/oxhq/webcst/internal/grammar/js"
	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/syntax"
)

func isDeclaration(n *syntax.Node) bool {
	switch n.Kind() {
	case js.Kinds.Of(jskinds.FunctionDeclaration), js.Kinds.Of(jskinds.ClassDeclaration), js.Kinds.Of(jskinds.VariableDeclaration):
		return true
	default:
		return false
	}
}

func TestFromRootAssignsDenseBFSIndices(t *testing.T) {
	src := `var a = 1;
function f() {}
class C {}
`
	tree := js.Parse(src, js.Kinds, nil)
	require.False(t, tree.HasErrors())

	m := astid.FromRoot(tree.Root(), isDeclaration)
	require.Equal(t, 3, m.Len())

	var kinds []string
	for i := 0; i < m.Len(); i++ {
		kinds = append(kinds, m.Resolve(i).Kind.DebugRepr())
	}
	assert.Equal(t, []string{"VARIABLE_DECLARATION", "FUNCTION_DECLARATION", "CLASS_DECLARATION"}, kinds)
}

func TestAstIDRoundTripsThroughFindIn(t *testing.T) {
	src := `function f() {}
`
	tree := js.Parse(src, js.Kinds, nil)
	require.False(t, tree.HasErrors())

	root := tree.Root()
	m := astid.FromRoot(root, isDeclaration)
	require.Equal(t, 1, m.Len())

	var fn *syntax.Node
	for _, c := range root.Children() {
		if isDeclaration(c) {
			fn = c
		}
	}
	require.NotNil(t, fn)
	assert.Equal(t, 0, m.AstID(fn))

	ptr := m.Resolve(0)
	found, ok := ptr.FindIn(root)
	require.True(t, ok)
	assert.Equal(t, fn.Range(), found.Range())
}

func TestAstIDPanicsOnUnregisteredNode(t *testing.T) {
	src := `var a = 1;
`
	tree := js.Parse(src, js.Kinds, nil)
	m := astid.FromRoot(tree.Root(), isDeclaration)

	assert.Panics(t, func() {
		m.AstID(tree.Root()) // the root itself never matched the predicate
	})
}

func TestFindInFailsWhenKindNoLongerMatches(t *testing.T) {
	src := `function f() {}
`
	tree := js.Parse(src, js.Kinds, nil)
	root := tree.Root()
	m := astid.FromRoot(root, isDeclaration)
	ptr := m.Resolve(0)

	// A tree reparsed after an edit that changes the node's shape at that
	// range: simulate by asserting the wrong kind against the same root.
	badPtr := astid.SyntaxNodePtr{Range: ptr.Range, Kind: syntax.IDENT}
	_, ok := badPtr.FindIn(root)
	assert.False(t, ok)
}

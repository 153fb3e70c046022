package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderInternsIdenticalTokens(t *testing.T) {
	b := NewBuilder()
	a := b.Token(IDENT, "foo")
	c := b.Token(IDENT, "foo")
	assert.Same(t, a, c, "identical (kind, text) pairs must share one GreenToken")

	d := b.Token(IDENT, "bar")
	assert.NotSame(t, a, d)
}

func TestBuilderInternsIdenticalNodes(t *testing.T) {
	b := NewBuilder()
	leaf := b.Token(IDENT, "x")

	n1 := b.Node(MakeKind(LangJS, 1), []GreenElement{leaf})
	n2 := b.Node(MakeKind(LangJS, 1), []GreenElement{leaf})
	assert.Same(t, n1, n2, "identical subtrees must be deduplicated by the builder")

	n3 := b.Node(MakeKind(LangJS, 2), []GreenElement{leaf})
	assert.NotSame(t, n1, n3, "different kinds must not collide")
}

func TestGreenNodeLengthIsSumOfChildren(t *testing.T) {
	b := NewBuilder()
	a := b.Token(IDENT, "ab")
	c := b.Token(IDENT, "cde")
	n := b.Node(MakeKind(LangJS, 1), []GreenElement{a, c})
	require.Equal(t, uint32(5), n.Len())
}

func TestRedTreeOffsetsAccumulate(t *testing.T) {
	b := NewBuilder()
	a := b.Token(IDENT, "ab")
	c := b.Token(IDENT, "cde")
	root := b.Node(MakeKind(LangJS, 1), []GreenElement{a, c})

	red := NewRoot(root)
	children := red.Children()
	require.Len(t, children, 2)
	assert.Equal(t, TextRange{Start: 0, End: 2}, children[0].Range())
	assert.Equal(t, TextRange{Start: 2, End: 5}, children[1].Range())
}

func TestTokenTextReconstructsSource(t *testing.T) {
	b := NewBuilder()
	src := "let x = 1;"
	toks := []GreenElement{
		b.Token(IDENT, "let"),
		b.Token(WHITESPACE, " "),
		b.Token(IDENT, "x"),
		b.Token(WHITESPACE, " "),
		b.Token(EQ, "="),
		b.Token(WHITESPACE, " "),
		b.Token(IDENT, "1"),
		b.Token(SEMICOLON, ";"),
	}
	root := b.Node(MakeKind(LangJS, 1), toks)
	tree := NewTree(root, nil)
	assert.Equal(t, src, tree.Text())
}

package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/lexer"
	"github.com/oxhq/webcst/internal/syntax"
)

func parse(text string) *syntax.Tree {
	return Parse(text, Kinds, Delimiters{})
}

func topLevelKindNames(t *testing.T, tree *syntax.Tree) []string {
	t.Helper()
	root := tree.Root()
	var names []string
	for _, c := range root.Children() {
		if c.IsToken() {
			continue
		}
		names = append(names, c.Kind().DebugRepr())
	}
	return names
}

func TestParseNestedElementsAndAttributes(t *testing.T) {
	tree := parse(`<div class="a" data-x="1"><span>hi</span></div>`)
	require.False(t, tree.HasErrors(), "unexpected errors: %v", tree.Errors())
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "ELEMENT")
	assert.Contains(t, dump, "ATTRIBUTE")
	assert.Contains(t, dump, "ATTRIBUTE_VALUE")
}

func TestParseIsLossless(t *testing.T) {
	src := `<ul><li>one</li><li>two</li></ul>`
	tree := parse(src)
	assert.Equal(t, src, tree.Text())
}

func TestParseSelfClosingTag(t *testing.T) {
	tree := parse(`<br/><img src="a.png"/>`)
	require.False(t, tree.HasErrors())
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "SELF_CLOSING_TAG")
}

// TestParseScriptElementYieldsRawContentToken mirrors the S3 scenario:
// <script>...</script> yields a SCRIPT element whose body is a single
// SCRIPT_CONTENT token, not tokenized as markup.
func TestParseScriptElementYieldsRawContentToken(t *testing.T) {
	tree := parse(`<script>function foo() {}</script>`)
	require.False(t, tree.HasErrors(), "unexpected errors: %v", tree.Errors())
	names := topLevelKindNames(t, tree)
	require.Len(t, names, 1)
	assert.Equal(t, "SCRIPT_ELEMENT", names[0])
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "SCRIPT_CONTENT")
	assert.Contains(t, dump, "function foo() {}")
}

func TestParseMismatchedClosingTagRecovers(t *testing.T) {
	tree := parse(`<div><span></div>`)
	require.True(t, tree.HasErrors())
	found := false
	for _, e := range tree.Errors() {
		if e.Message != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a mismatched-closing-tag diagnostic")
	// </div> still closes the outer <div>, not left dangling.
	assert.Equal(t, `<div><span></div>`, tree.Text())
}

func TestParseCommentAndTextNodes(t *testing.T) {
	tree := parse(`<!-- hi --><p>text</p>`)
	require.False(t, tree.HasErrors())
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "COMMENT_NODE")
	assert.Contains(t, dump, "TEXT")
}

func TestParseStrayClosingTagIsError(t *testing.T) {
	tree := parse(`</p>`)
	assert.True(t, tree.HasErrors())
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "ERROR")
}

func TestTokenizeSumLenMatchesInput(t *testing.T) {
	src := `<div class="a">hi <b>there</b></div>`
	toks := Tokenize(src, Kinds, Delimiters{})
	assert.Equal(t, len(src), lexer.SumLen(toks))
}

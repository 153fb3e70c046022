package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/syntax"
	"github.com/oxhq/webcst/internal/testutil"
)

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

func TestParseMultiplicationTableTopLevelShape(t *testing.T) {
	src := `var size = 10;
let table = [];
if (size > 0) {
  table.push(1);
}
if (size < 0) {
  table.push(-1);
}
console.log(table);
function printTable() {
  return table;
}
`
	tree := Parse(src, Kinds, nil)
	require.False(t, tree.HasErrors(), "unexpected errors: %v", tree.Errors())
	names := topLevelKindNames(t, tree)
	assert.Equal(t, []string{
		"VARIABLE_DECLARATION",
		"VARIABLE_DECLARATION",
		"IF_STATEMENT",
		"IF_STATEMENT",
		"EXPRESSION_STATEMENT",
		"FUNCTION_DECLARATION",
	}, names)
}

func TestParseIsLossless(t *testing.T) {
	src := "const x = (1 + 2) * foo.bar[0]?.baz(1, 2, ...rest);"
	tree := Parse(src, Kinds, nil)
	assert.Equal(t, src, tree.Text())
}

func TestParseBinaryLeftAssociative(t *testing.T) {
	tree := Parse("a + b + c;", Kinds, nil)
	dump := syntax.Dump(tree)
	// (a + b) + c: the outer BINARY_EXPRESSION must cover the whole "a + b + c".
	assert.Contains(t, dump, "BINARY_EXPRESSION@[0; 9)")
}

func TestParseArrowVsParenDisambiguation(t *testing.T) {
	tree := Parse("const f = (x, y) => x + y;", Kinds, nil)
	require.False(t, tree.HasErrors())
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "ARROW_FUNCTION_EXPRESSION")
}

func TestParseVueExtendExport(t *testing.T) {
	src := `import Vue from 'vue';
export default Vue.extend({
  methods: {
    async load() {
      try {
        await fetch();
      } catch (e) {
        console.log(e);
      }
    }
  }
});
`
	tree := Parse(src, Kinds, nil)
	require.False(t, tree.HasErrors(), "unexpected errors: %v", tree.Errors())
	names := topLevelKindNames(t, tree)
	assert.Equal(t, []string{"IMPORT_DECLARATION", "EXPORT_DEFAULT_DECLARATION"}, names)
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "TRY_STATEMENT")
	assert.Contains(t, dump, "CATCH_CLAUSE")
}

func TestParseTemplateLiteralWithInterpolation(t *testing.T) {
	tree := Parse("let s = `hello ${name}!`;", Kinds, nil)
	require.False(t, tree.HasErrors())
	dump := syntax.Dump(tree)
	assert.Contains(t, dump, "TEMPLATE_LITERAL")
	assert.Contains(t, dump, "TEMPLATE_SUBSTITUTION")
}

func TestParseRecordsErrorOnMalformedExpression(t *testing.T) {
	tree := Parse("let x = ;", Kinds, nil)
	assert.True(t, tree.HasErrors())
}

// TestDumpIsStableAcrossReparse pins §8's determinism property (re-parsing
// unchanged text yields a byte-identical tree) using the project's
// golden-comparison helper, so a regression shows a readable unified diff
// instead of two giant strings.
func TestDumpIsStableAcrossReparse(t *testing.T) {
	src := "function greet(name) {\n  return `hi ${name}`;\n}\n"
	first := syntax.Dump(Parse(src, Kinds, nil))
	second := syntax.Dump(Parse(src, Kinds, nil))
	testutil.AssertEqualDump(t, first, second, "greet.js dump")
}

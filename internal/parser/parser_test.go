package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/lexer"
	"github.com/oxhq/webcst/internal/syntax"
)

func lexJS(t *testing.T, text string) []lexer.Token {
	t.Helper()
	k := jskinds.Build(syntax.LangJS)
	lex := lexer.NewJSLexer(lexer.JSKinds{
		Keyword: func(text string) (syntax.Kind, bool) {
			s, ok := jskinds.Keywords[text]
			if !ok {
				return 0, false
			}
			return k.Of(s), true
		},
	})
	return lexer.Tokenize(text, lex)
}

// parseAdditive is a minimal precedence-climbing rule covering a single
// binary level, enough to exercise Start/Complete/Precede end to end
// without a full expression grammar.
func parseAdditive(p *Parser, k *jskinds.Kinds) CompletedMarker {
	lhs := parsePrimary(p, k)
	for p.At(syntax.PLUS) || p.At(syntax.MINUS) {
		m := lhs.Precede(p)
		p.Bump() // operator
		parsePrimary(p, k)
		lhs = m.Complete(p, k.Of(jskinds.BinaryExpression))
	}
	return lhs
}

func parsePrimary(p *Parser, k *jskinds.Kinds) CompletedMarker {
	m := p.Start()
	if p.At(syntax.NUMBER) {
		p.Bump()
	} else {
		p.Error("expected expression")
	}
	return m.Complete(p, k.Of(jskinds.NumericLiteral))
}

func TestParserPrecedenceClimbingWrapsLeftAssociative(t *testing.T) {
	text := "1 + 2 + 3"
	toks := lexJS(t, text)
	k := jskinds.Build(syntax.LangJS)
	p := New(text, toks)

	root := p.Start()
	parseAdditive(p, k)
	root.Complete(p, k.Of(jskinds.Program))

	events := p.Finish()
	tree := BuildTree(text, events)

	require.NotNil(t, tree.Root())
	assert.False(t, tree.HasErrors())
	assert.Equal(t, text, tree.Text())

	dump := syntax.Dump(tree)
	// The outermost binary expression should wrap the whole input range.
	assert.Contains(t, dump, "[0; 9)")
}

func TestParserCheckpointRollback(t *testing.T) {
	text := "1 + 2"
	toks := lexJS(t, text)
	k := jskinds.Build(syntax.LangJS)
	p := New(text, toks)

	cp := p.Checkpoint()
	m := p.Start()
	p.Bump() // speculatively consume "1"
	m.Abandon(p)
	p.Rollback(cp)

	assert.Equal(t, syntax.NUMBER, p.Current())

	root := p.Start()
	parseAdditive(p, k)
	root.Complete(p, k.Of(jskinds.Program))
	events := p.Finish()
	tree := BuildTree(text, events)
	assert.Equal(t, text, tree.Text())
}

func TestParserExpectRecordsErrorWithoutConsuming(t *testing.T) {
	text := "+"
	toks := lexJS(t, text)
	k := jskinds.Build(syntax.LangJS)
	p := New(text, toks)

	root := p.Start()
	parsePrimary(p, k)
	root.Complete(p, k.Of(jskinds.Program))
	events := p.Finish()
	tree := BuildTree(text, events)
	assert.True(t, tree.HasErrors())
}

func TestParserIsJointToNext(t *testing.T) {
	toks := lexJS(t, "a.b")
	p := New("a.b", toks)
	assert.True(t, p.IsJointToNext()) // "a" immediately followed by "."

	toks2 := lexJS(t, "a . b")
	p2 := New("a . b", toks2)
	assert.False(t, p2.IsJointToNext())
}

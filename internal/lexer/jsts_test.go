package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/syntax"
)

func newTestJSLexer() *JSLexer {
	k := jskinds.Build(syntax.LangJS)
	return NewJSLexer(JSKinds{
		Keyword: func(text string) (syntax.Kind, bool) {
			suffix, ok := jskinds.Keywords[text]
			if !ok {
				return 0, false
			}
			return k.Of(suffix), true
		},
	})
}

func kindsOf(t []Token) []syntax.Kind {
	out := make([]syntax.Kind, 0, len(t))
	for _, tok := range t {
		if tok.Kind.IsTrivia() {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestJSLexerDivisionAfterNumber(t *testing.T) {
	lex := newTestJSLexer()
	toks := Tokenize("let bar = 12 / 3.5;", lex)
	kinds := kindsOf(toks)
	require.Contains(t, kinds, syntax.SLASH)
	assert.NotContains(t, kinds, syntax.REGEXP)
}

func TestJSLexerRegexAfterAssignment(t *testing.T) {
	lex := newTestJSLexer()
	toks := Tokenize("let re = /abc/.test(x);", lex)
	kinds := kindsOf(toks)
	require.Contains(t, kinds, syntax.REGEXP)
}

func TestJSLexerRegexVsDivisionScenario(t *testing.T) {
	// Mirrors the end-to-end scenario: division after a numeric literal,
	// then a regex literal right after '='.
	lex := newTestJSLexer()
	toks := Tokenize("let bar = 12 / 3.5; let re = /abc/.test(x);", lex)
	kinds := kindsOf(toks)

	var sawSlash, sawRegexAfterSlash bool
	for i, k := range kinds {
		if k == syntax.SLASH {
			sawSlash = true
		}
		if k == syntax.REGEXP && i > 0 {
			sawRegexAfterSlash = true
		}
	}
	assert.True(t, sawSlash)
	assert.True(t, sawRegexAfterSlash)
}

func TestJSLexerKeywordsPromoted(t *testing.T) {
	lex := newTestJSLexer()
	k := jskinds.Build(syntax.LangJS)
	toks := Tokenize("const x = 1;", lex)
	kinds := kindsOf(toks)
	assert.Equal(t, k.Of(jskinds.KwConst), kinds[0])
	assert.Equal(t, syntax.IDENT, kinds[1])
}

func TestJSLexerContextualKeywordStaysIdent(t *testing.T) {
	lex := newTestJSLexer()
	toks := Tokenize("import x as y from 'm';", lex)
	kinds := kindsOf(toks)
	// "as" and "from" must lex as IDENT, never a dedicated kind.
	assert.Contains(t, kinds, syntax.IDENT)
	assert.Equal(t, syntax.IDENT, kinds[2]) // as
	assert.Equal(t, syntax.IDENT, kinds[4]) // from
}

func TestJSLexerTemplateLiteralWithInterpolation(t *testing.T) {
	lex := newTestJSLexer()
	toks := Tokenize("`hi ${name}!`", lex)
	kinds := kindsOf(toks)
	require.Contains(t, kinds, syntax.BACKTICK)
	require.Contains(t, kinds, syntax.DOLLARLBRACE)
	require.Contains(t, kinds, syntax.RBRACE)
}

func TestJSLexerSumLenMatchesInput(t *testing.T) {
	lex := newTestJSLexer()
	input := "const answer = 41 + 1; // trailing\n"
	toks := Tokenize(input, lex)
	assert.Equal(t, len(input), SumLen(toks))
}

func TestJSLexerBlockComment(t *testing.T) {
	lex := newTestJSLexer()
	toks := Tokenize("/* hello */ const x = 1;", lex)
	kinds := kindsOf(toks)
	assert.NotContains(t, kinds, syntax.ERROR)
}

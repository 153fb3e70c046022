package js

import (
	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/lexer"
	"github.com/oxhq/webcst/internal/syntax"
)

// NewLexer builds the Scanner JS/TS source text is tokenized with, wired to
// k so reserved words get a dedicated Kind in k's own language namespace —
// TypeScript calls this with its own Kinds table so keyword tokens carry
// LangTS, not LangJS (§8.2 kind disjointness).
func NewLexer(k *jskinds.Kinds) *lexer.JSLexer {
	return lexer.NewJSLexer(lexer.JSKinds{Keyword: keywordLookup(k)})
}

func keywordLookup(k *jskinds.Kinds) func(string) (syntax.Kind, bool) {
	return func(text string) (syntax.Kind, bool) {
		s, ok := jskinds.Keywords[text]
		if !ok {
			return 0, false
		}
		return k.Of(s), true
	}
}

// Tokenize lexes text into the raw token stream (trivia included) that
// Parse consumes, using this package's own (JS) Kinds table.
func Tokenize(text string) []lexer.Token {
	return lexer.Tokenize(text, NewLexer(Kinds))
}

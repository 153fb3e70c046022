// Package lexer implements the multi-mode lexer framework (§4.2): scanners
// that switch between lexical contexts and preserve information a
// single-pass tokenizer would lose (HTML tag/text/script/style modes,
// configurable template delimiters, and JS/TS's prev-token-dependent
// regex-vs-division disambiguation).
package lexer

import (
	"github.com/oxhq/webcst/internal/scan"
	"github.com/oxhq/webcst/internal/syntax"
)

// Token is a (kind, byte-length) pair; no absolute offset is stored (§3) —
// callers reconstruct offsets by accumulating Len across the stream.
type Token struct {
	Kind syntax.Kind
	Len  int
}

// Scanner is the contract every mode-aware lexer implements: scan the
// token starting at first (the rune already peeked at the cursor),
// consuming it from s, and return its Kind. Reset clears any
// prev-token-window state so the same Scanner instance can retokenize a
// fresh input deterministically (§4.2 "the lexer is restartable").
type Scanner interface {
	Scan(first rune, s *scan.Scanner) syntax.Kind
	Reset()
}

// Tokenize runs lex over the entirety of text, returning the full token
// stream including a trailing EOF token. Given identical input and an
// initial Scanner state, the result is byte-identical run to run (§4.2
// determinism).
func Tokenize(text string, lex Scanner) []Token {
	cur := scan.New(text)
	var toks []Token
	for {
		first, ok := cur.Current()
		if !ok {
			break
		}
		start := cur.Pos()
		kind := lex.Scan(first, &cur)
		if cur.Pos() == start {
			// A Scanner that recognizes first but forgets to consume it
			// would spin forever; force progress so a single malformed
			// character becomes one ERROR token instead of an infinite loop.
			cur.Bump()
		}
		toks = append(toks, Token{Kind: kind, Len: cur.Pos() - start})
	}
	toks = append(toks, Token{Kind: syntax.EOF, Len: 0})
	return toks
}

// SumLen returns the sum of every token's length — used to check the §8.3
// invariant that Σ token.len == len(text).
func SumLen(toks []Token) int {
	total := 0
	for _, t := range toks {
		total += t.Len
	}
	return total
}

package lexer

import (
	"unicode"

	"github.com/oxhq/webcst/internal/scan"
	"github.com/oxhq/webcst/internal/syntax"
)

// JSKinds supplies the language-owned keyword lookup the JS/TS lexer needs.
// Everything else it emits (identifiers, literals, punctuation) is already
// a universal Kind (§3) shared by every grammar, so no further injection is
// required; TypeScript reuses this lexer unmodified (§4.2 "TypeScript
// extends the framework").
type JSKinds struct {
	// Keyword looks up a reserved word's dedicated Kind. Contextual
	// keywords (as, from, get, set, of, async) must return (0, false) here
	// — the grammar recognizes them positionally instead (§9).
	Keyword func(text string) (syntax.Kind, bool)
}

// templateFrame tracks one open template literal. While inText, the lexer
// scans raw TEMPLATE_CHUNK text instead of JS tokens; braceDepth counts
// unmatched '{' opened inside the current `${ … }` interpolation so an
// object literal inside the interpolation doesn't end it early.
type templateFrame struct {
	inText     bool
	braceDepth int
}

// JSLexer implements Scanner for JavaScript and TypeScript source text. It
// tracks the three most recent non-trivia tokens to disambiguate '/' as
// division or the start of a regex literal (§4.2), and recursively lexes
// template-literal interpolations via an explicit frame stack — one frame
// per nested backtick string, each remembering whether it is currently
// producing chunk text or has handed control to a `${ … }` expression.
type JSLexer struct {
	kinds JSKinds
	prev  [3]syntax.Kind // prev[0] is the most recent non-trivia token
	n     int            // how many of prev are valid, capped at 3

	tmpl []templateFrame
}

// NewJSLexer builds a JS/TS lexer.
func NewJSLexer(kinds JSKinds) *JSLexer {
	return &JSLexer{kinds: kinds}
}

func (l *JSLexer) Reset() {
	l.prev = [3]syntax.Kind{}
	l.n = 0
	l.tmpl = nil
}

func (l *JSLexer) record(kind syntax.Kind) {
	if kind.IsTrivia() {
		return
	}
	l.prev[2] = l.prev[1]
	l.prev[1] = l.prev[0]
	l.prev[0] = kind
	if l.n < 3 {
		l.n++
	}
}

func (l *JSLexer) Scan(first rune, s *scan.Scanner) syntax.Kind {
	kind := l.scanOne(first, s)
	l.record(kind)
	return kind
}

func (l *JSLexer) scanOne(first rune, s *scan.Scanner) syntax.Kind {
	if n := len(l.tmpl); n > 0 && l.tmpl[n-1].inText {
		return l.scanTemplateText(s)
	}
	switch {
	case unicode.IsSpace(first):
		s.BumpWhile(unicode.IsSpace)
		return syntax.WHITESPACE
	case s.AtStr("//"):
		s.BumpUntilEOL()
		return syntax.COMMENT
	case s.AtStr("/*"):
		s.Bump()
		s.Bump()
		s.BumpUntilStr("*/")
		if s.AtStr("*/") {
			s.Bump()
			s.Bump()
		}
		return syntax.COMMENT
	case first == '/':
		return l.scanSlash(s)
	case first == '"' || first == '\'':
		return l.scanString(s, first)
	case first == '`':
		return l.scanBacktick(s)
	case unicode.IsDigit(first):
		return l.scanNumber(s)
	case isIdentStart(first):
		return l.scanIdentOrKeyword(s)
	default:
		return l.scanPunct(s)
	}
}

// completesExpression reports whether the most recent non-trivia token
// could end an expression, per §4.2's division-vs-regex heuristic:
// identifiers, number and string literals, ')', ']', '}', '++' and '--'
// imply division; everything else (including "no previous token", an
// operator, an opening bracket, and every keyword token such as `this`)
// implies a regex literal is starting.
func (l *JSLexer) completesExpression() bool {
	if l.n == 0 {
		return false
	}
	switch l.prev[0] {
	case syntax.IDENT, syntax.NUMBER, syntax.STRING, syntax.RPAREN, syntax.RBRACKET,
		syntax.RBRACE, syntax.PLUSPLUS, syntax.MINUSMINUS:
		return true
	}
	return false
}

func (l *JSLexer) scanSlash(s *scan.Scanner) syntax.Kind {
	if l.completesExpression() {
		if s.AtStr("/=") {
			s.Bump()
			s.Bump()
			return syntax.SLASHEQ
		}
		s.Bump()
		return syntax.SLASH
	}
	return l.scanRegex(s)
}

// scanRegex consumes a /pattern/flags literal. A '/' inside a character
// class ('[...]') does not end the literal.
func (l *JSLexer) scanRegex(s *scan.Scanner) syntax.Kind {
	s.Bump() // opening '/'
	inClass := false
	for {
		c, ok := s.Current()
		if !ok || c == '\n' {
			return syntax.ERROR
		}
		if c == '\\' {
			s.Bump()
			s.Bump()
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			s.Bump()
			break
		}
		s.Bump()
	}
	s.BumpWhile(isIdentChar) // flags
	return syntax.REGEXP
}

func (l *JSLexer) scanString(s *scan.Scanner, quote rune) syntax.Kind {
	s.Bump()
	for {
		c, ok := s.Current()
		if !ok || c == '\n' {
			return syntax.ERROR
		}
		if c == '\\' {
			s.Bump()
			s.Bump()
			continue
		}
		if c == quote {
			s.Bump()
			break
		}
		s.Bump()
	}
	return syntax.STRING
}

// scanBacktick handles a '`' wherever JS-expression tokenizing is active:
// it either opens a new template literal (push a text frame) or, if the
// top frame is already waiting in text mode... it can't be, since this
// path only runs outside text mode — so every call here is an opening
// backtick. The matching close is recognized inside scanTemplateText.
func (l *JSLexer) scanBacktick(s *scan.Scanner) syntax.Kind {
	s.Bump()
	l.tmpl = append(l.tmpl, templateFrame{inText: true})
	return syntax.BACKTICK
}

// scanTemplateText runs while the top template frame is in text mode. It
// emits one TEMPLATE_CHUNK up to (not including) the next unescaped '`' or
// "${", or emits the BACKTICK/DOLLARLBRACE token itself when the cursor is
// already sitting on one.
func (l *JSLexer) scanTemplateText(s *scan.Scanner) syntax.Kind {
	top := len(l.tmpl) - 1
	if s.At('`') {
		s.Bump()
		l.tmpl = l.tmpl[:top]
		return syntax.BACKTICK
	}
	if s.AtStr("${") {
		s.Bump()
		s.Bump()
		l.tmpl[top].inText = false
		l.tmpl[top].braceDepth = 0
		return syntax.DOLLARLBRACE
	}
	for {
		if s.AtEOF() || s.At('`') || s.AtStr("${") {
			break
		}
		if c, _ := s.Current(); c == '\\' {
			s.Bump()
			s.Bump()
			continue
		}
		s.Bump()
	}
	return syntax.TEMPLATE_CHUNK
}

func (l *JSLexer) scanNumber(s *scan.Scanner) syntax.Kind {
	s.BumpWhile(unicode.IsDigit)
	if c, ok := s.Current(); ok && c == '.' {
		s.Bump()
		s.BumpWhile(unicode.IsDigit)
	}
	if c, ok := s.Current(); ok && (c == 'e' || c == 'E') {
		s.Bump()
		if c2, ok2 := s.Current(); ok2 && (c2 == '+' || c2 == '-') {
			s.Bump()
		}
		s.BumpWhile(unicode.IsDigit)
	}
	return syntax.NUMBER
}

func (l *JSLexer) scanIdentOrKeyword(s *scan.Scanner) syntax.Kind {
	start := s.Pos()
	s.BumpWhile(isIdentChar)
	text := s.CurrentText(start)
	if jskindsContextual(text) {
		return syntax.IDENT
	}
	if l.kinds.Keyword != nil {
		if k, ok := l.kinds.Keyword(text); ok {
			return k
		}
	}
	return syntax.IDENT
}

// jskindsContextual reports whether text is a contextual keyword that must
// always lex as a plain identifier (§9). Duplicated here as a small literal
// set (rather than importing grammar/jskinds) to keep the lexer framework
// below grammars in the dependency order.
func jskindsContextual(text string) bool {
	switch text {
	case "as", "from", "get", "set", "of", "async":
		return true
	}
	return false
}

func (l *JSLexer) scanPunct(s *scan.Scanner) syntax.Kind {
	three := map[string]syntax.Kind{
		"===": syntax.EQEQEQ, "!==": syntax.BANGEQEQ, "**=": syntax.STARSTAREQ,
		"...": syntax.DOTDOTDOT, "&&=": syntax.AMPAMPEQ, "||=": syntax.PIPEPIPEEQ,
		"??=": syntax.QUESTIONQUESTIONEQ,
	}
	two := map[string]syntax.Kind{
		"==": syntax.EQEQ, "!=": syntax.BANGEQ, "<=": syntax.LTEQ, ">=": syntax.GTEQ,
		"&&": syntax.AMPAMP, "||": syntax.PIPEPIPE, "??": syntax.QUESTIONQUESTION,
		"?.": syntax.QUESTIONDOT, "=>": syntax.ARROW, "++": syntax.PLUSPLUS,
		"--": syntax.MINUSMINUS, "+=": syntax.PLUSEQ, "-=": syntax.MINUSEQ,
		"*=": syntax.STAREQ, "/=": syntax.SLASHEQ, "%=": syntax.PERCENTEQ,
		"**": syntax.STARSTAR,
	}
	one := map[rune]syntax.Kind{
		'(': syntax.LPAREN, ')': syntax.RPAREN, '{': syntax.LBRACE, '}': syntax.RBRACE,
		'[': syntax.LBRACKET, ']': syntax.RBRACKET, ',': syntax.COMMA, ';': syntax.SEMICOLON,
		':': syntax.COLON, '.': syntax.DOT, '=': syntax.EQ, '<': syntax.LT, '>': syntax.GT,
		'!': syntax.BANG, '?': syntax.QUESTION, '*': syntax.STAR, '%': syntax.PERCENT,
		'+': syntax.PLUS, '-': syntax.MINUS, '&': syntax.AMP, '|': syntax.PIPE,
		'^': syntax.CARET, '~': syntax.TILDE, '@': syntax.AT,
	}

	rest3 := peekN(s, 3)
	if k, ok := three[rest3]; ok {
		for range 3 {
			s.Bump()
		}
		return k
	}
	rest2 := peekN(s, 2)
	if k, ok := two[rest2]; ok {
		for range 2 {
			s.Bump()
		}
		return k
	}
	c, _ := s.Current()
	if k, ok := one[c]; ok {
		s.Bump()
		l.trackInterpolationBrace(k)
		return k
	}
	s.Bump()
	return syntax.ERROR
}

// trackInterpolationBrace keeps the active `${ … }` frame's braceDepth in
// sync with nested object-literal braces, and flips the frame back to text
// mode when the interpolation's own closing '}' is reached.
func (l *JSLexer) trackInterpolationBrace(k syntax.Kind) {
	if len(l.tmpl) == 0 {
		return
	}
	top := len(l.tmpl) - 1
	if l.tmpl[top].inText {
		return
	}
	switch k {
	case syntax.LBRACE:
		l.tmpl[top].braceDepth++
	case syntax.RBRACE:
		if l.tmpl[top].braceDepth == 0 {
			l.tmpl[top].inText = true
		} else {
			l.tmpl[top].braceDepth--
		}
	}
}

func peekN(s *scan.Scanner, n int) string {
	var out []rune
	for i := range n {
		r, ok := s.Nth(i)
		if !ok {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

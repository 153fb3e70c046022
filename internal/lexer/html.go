package lexer

import (
	"strings"
	"unicode"

	"github.com/oxhq/webcst/internal/scan"
	"github.com/oxhq/webcst/internal/syntax"
)

// HTMLMode names a lexical context the HTML lexer can be in. The mode
// decides whether e.g. '<' starts a tag or is ordinary text (§4.2).
type HTMLMode int

const (
	ModeText HTMLMode = iota
	ModeTag
	ModeScriptBody
	ModeStyleBody
)

// HTMLKinds supplies the language-owned Kind values the HTML lexer emits.
// Kept as a dependency-injected config rather than hard-coded constants so
// the lexer framework (which sits below per-language grammars in the
// dependency order, §2) never has to import a grammar package.
type HTMLKinds struct {
	TagName       syntax.Kind
	AttrName      syntax.Kind
	Text          syntax.Kind
	Comment       syntax.Kind
	ScriptContent syntax.Kind
	StyleContent  syntax.Kind
	Delimited     syntax.Kind
	StringLit     syntax.Kind
}

// HTMLLexer implements Scanner for HTML, Vue templates and any other
// markup dialect that needs tag/text/script/style modes plus optional
// configurable template delimiters (§4.2).
type HTMLLexer struct {
	kinds HTMLKinds

	mode        HTMLMode
	lastTagName string

	// templateOpen/templateClose are the configurable mustache-style
	// delimiters Vue installs (e.g. "{{" / "}}"). Empty disables them.
	templateOpen  string
	templateClose string
}

// NewHTMLLexer builds an HTML-mode lexer. opener/closer may be "" to
// disable template-delimiter recognition (plain HTML has none; Vue
// installs "{{"/"}}").
func NewHTMLLexer(kinds HTMLKinds, opener, closer string) *HTMLLexer {
	return &HTMLLexer{kinds: kinds, templateOpen: opener, templateClose: closer}
}

func (l *HTMLLexer) Reset() {
	l.mode = ModeText
	l.lastTagName = ""
}

func (l *HTMLLexer) Scan(first rune, s *scan.Scanner) syntax.Kind {
	switch l.mode {
	case ModeScriptBody:
		return l.scanRawBody(s, l.kinds.ScriptContent)
	case ModeStyleBody:
		return l.scanRawBody(s, l.kinds.StyleContent)
	case ModeTag:
		return l.scanTag(first, s)
	default:
		return l.scanText(first, s)
	}
}

// scanText consumes either a template-delimited chunk, a tag opener/closer,
// or a run of plain text up to the next special character.
func (l *HTMLLexer) scanText(first rune, s *scan.Scanner) syntax.Kind {
	if l.templateOpen != "" && s.AtStr(l.templateOpen) {
		return l.scanDelimited(s)
	}
	if first == '<' {
		if s.AtStr("<!--") {
			return l.scanComment(s)
		}
		nxt, ok := s.Nth(1)
		if ok && (nxt == '/' || isNameStart(nxt)) {
			s.Bump() // consume '<'
			if nxt == '/' {
				l.lastTagName = "/" // a closing tag never opens a raw body
			}
			l.mode = ModeTag
			return syntax.LT
		}
	}
	// Plain text: consume up to the next '<' or template opener.
	for {
		c, ok := s.Current()
		if !ok || c == '<' {
			break
		}
		if l.templateOpen != "" && s.AtStr(l.templateOpen) {
			break
		}
		s.Bump()
	}
	return l.kinds.Text
}

func (l *HTMLLexer) scanComment(s *scan.Scanner) syntax.Kind {
	s.BumpUntilStr("-->")
	if s.AtStr("-->") {
		for range 3 {
			s.Bump()
		}
	}
	return l.kinds.Comment
}

// scanDelimited consumes a full "{{ ... }}"-style chunk as a single token,
// including the delimiters. The interior is re-parsed as a JS expression
// later, by the analysis layer, on the raw substring (§4.4, §4.7) — the
// lexer itself never looks inside.
func (l *HTMLLexer) scanDelimited(s *scan.Scanner) syntax.Kind {
	for range len(l.templateOpen) {
		s.Bump()
	}
	if !s.BumpUntilStr(l.templateClose) {
		return syntax.ERROR
	}
	for range len(l.templateClose) {
		s.Bump()
	}
	return l.kinds.Delimited
}

// scanTag tokenizes one piece of a tag: its name, an attribute name, '=',
// a quoted value, '/', or '>'. On '>' (or self-closing "/>") it decides the
// next mode based on the tag name remembered since the matching '<'.
func (l *HTMLLexer) scanTag(first rune, s *scan.Scanner) syntax.Kind {
	switch {
	case first == ' ' || first == '\t' || first == '\n' || first == '\r':
		s.BumpWhile(unicode.IsSpace)
		return syntax.WHITESPACE
	case first == '/' :
		if s.AtStr("/>") {
			s.Bump()
			s.Bump()
			l.mode = ModeText
			return syntax.SLASHGT
		}
		s.Bump()
		return syntax.SLASH
	case first == '>':
		s.Bump()
		l.mode = l.modeAfterTagClose()
		return syntax.GT
	case first == '=':
		s.Bump()
		return syntax.EQ
	case first == '"' || first == '\'':
		return l.scanQuoted(s, first)
	case isNameStart(first) || first == ':' || first == '@':
		start := s.Pos()
		s.Bump()
		s.BumpWhile(isNameChar)
		name := s.CurrentText(start)
		if l.lastTagName == "" {
			l.lastTagName = strings.ToLower(name)
		}
		if strings.Contains(name, ":") || strings.Contains(name, "-") {
			return l.kinds.AttrName
		}
		return l.kinds.TagName
	default:
		s.Bump()
		return syntax.ERROR
	}
}

func (l *HTMLLexer) scanQuoted(s *scan.Scanner, quote rune) syntax.Kind {
	s.Bump() // opening quote
	s.BumpWhile(func(r rune) bool { return r != quote })
	s.Bump() // closing quote (no-op at EOF)
	return l.kinds.StringLit
}

func (l *HTMLLexer) modeAfterTagClose() HTMLMode {
	defer func() { l.lastTagName = "" }()
	switch l.lastTagName {
	case "script":
		return ModeScriptBody
	case "style":
		return ModeStyleBody
	default:
		return ModeText
	}
}

// scanRawBody consumes everything up to (not including) the matching
// "</script>"/"</style>" close tag as a single content token (§4.2).
func (l *HTMLLexer) scanRawBody(s *scan.Scanner, kind syntax.Kind) syntax.Kind {
	closeTag := "</script"
	if kind == l.kinds.StyleContent {
		closeTag = "</style"
	}
	start := s.Pos()
	for {
		if s.AtEOF() {
			break
		}
		if matchesCloseTagCI(s, closeTag) {
			break
		}
		s.Bump()
	}
	if s.Pos() == start {
		// Empty body: immediately followed by its own close tag.
		l.mode = ModeText
		return l.scanText('<', s)
	}
	l.mode = ModeText
	return kind
}

// matchesCloseTagCI reports whether the scanner sits at an ASCII
// case-insensitive match of closeTag (HTML tag names are case-insensitive).
func matchesCloseTagCI(s *scan.Scanner, closeTag string) bool {
	for i, want := range closeTag {
		r, ok := s.Nth(i)
		if !ok {
			return false
		}
		if unicode.ToLower(r) != unicode.ToLower(want) {
			return false
		}
	}
	return true
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == ':'
}

package html

import (
	"fmt"
	"strings"

	"github.com/oxhq/webcst/internal/grammar/htmlkinds"
	"github.com/oxhq/webcst/internal/lexer"
	"github.com/oxhq/webcst/internal/parser"
	"github.com/oxhq/webcst/internal/syntax"
)

// Delimiters installs a configurable mustache-style template pattern (e.g.
// "{{" / "}}") on top of the plain HTML lexer (§4.2). The zero value
// disables it, which is what plain HTML parsing passes; Vue installs
// "{{"/"}}" (§4.4).
type Delimiters struct {
	Open  string
	Close string
}

// NewLexer builds the Scanner HTML/Vue source text is tokenized with, wired
// to k so every token this grammar produces carries k's language.
func NewLexer(k *htmlkinds.Kinds, delim Delimiters) *lexer.HTMLLexer {
	return lexer.NewHTMLLexer(lexer.HTMLKinds{
		TagName:       k.Of(htmlkinds.TagNameTok),
		AttrName:      k.Of(htmlkinds.AttrNameTok),
		Text:          k.Of(htmlkinds.TextNode),
		Comment:       k.Of(htmlkinds.CommentNode),
		ScriptContent: k.Of(htmlkinds.ScriptContentNode),
		StyleContent:  k.Of(htmlkinds.StyleContentNode),
		Delimited:     k.Of(htmlkinds.DelimitedTok),
		StringLit:     k.Of(htmlkinds.StringLitTok),
	}, delim.Open, delim.Close)
}

// Tokenize lexes text into the raw token stream Parse consumes.
func Tokenize(text string, k *htmlkinds.Kinds, delim Delimiters) []lexer.Token {
	return lexer.Tokenize(text, NewLexer(k, delim))
}

// Parse runs the HTML statement grammar over text, using k for every node
// and token kind it produces and delim for template-interpolation
// recognition. Vue calls this with its own Kinds table and "{{"/"}}"
// installed (§4.4: "Vue grammar reuses the HTML grammar with the {{/}}
// template pattern installed").
func Parse(text string, k *htmlkinds.Kinds, delim Delimiters) *syntax.Tree {
	toks := Tokenize(text, k, delim)
	p := parser.New(text, toks)
	m := p.Start()
	for !p.AtEOF() {
		parseNode(p, k)
	}
	m.Complete(p, k.Of(htmlkinds.Document))
	events := p.Finish()
	return parser.BuildTree(text, events)
}

// parseNode consumes one document-level construct: an element, a run of
// text, a comment, a template-delimited chunk, or (as an error) a stray
// closing tag with nothing open to match it against.
func parseNode(p *parser.Parser, k *htmlkinds.Kinds) {
	switch {
	case p.At(syntax.LT) && p.Nth(1) == syntax.SLASH:
		parseStrayEndTag(p, k)
	case p.At(syntax.LT):
		parseElement(p, k)
	case p.At(k.Of(htmlkinds.TextNode)), p.At(k.Of(htmlkinds.CommentNode)), p.At(k.Of(htmlkinds.DelimitedTok)):
		p.Bump()
	default:
		p.Error(fmt.Sprintf("unexpected token %s", p.Current().DebugRepr()))
		p.BumpAny()
	}
}

func parseStrayEndTag(p *parser.Parser, k *htmlkinds.Kinds) {
	m := p.Start()
	p.Bump() // '<'
	p.Bump() // '/'
	if p.At(k.Of(htmlkinds.TagNameTok)) {
		p.Bump()
	}
	p.Expect(syntax.GT)
	p.Error("closing tag has no matching opening tag")
	m.Complete(p, k.Of(htmlkinds.ErrorNode))
}

// parseElement parses one opening tag, its attributes, and — unless the tag
// self-closes — its children up to a matching closing tag. Tag-name
// matching is speculative: a closing tag whose name doesn't match is rolled
// back and left untouched for an ancestor frame, and this element is
// implicitly closed instead (§4.4).
func parseElement(p *parser.Parser, k *htmlkinds.Kinds) parser.CompletedMarker {
	m := p.Start()

	stm := p.Start()
	p.Expect(syntax.LT)
	name := ""
	if p.At(k.Of(htmlkinds.TagNameTok)) {
		name = strings.ToLower(p.NthText(0))
		p.Bump()
	} else {
		p.Error("expected a tag name")
	}
	parseAttributes(p, k)

	switch {
	case p.At(syntax.SLASHGT):
		p.Bump()
		stm.Complete(p, k.Of(htmlkinds.SelfClosingTag))
		return m.Complete(p, elementKind(name, k))
	case p.At(syntax.GT):
		p.Bump()
		stm.Complete(p, k.Of(htmlkinds.StartTag))
	default:
		p.Error("expected '>' or '/>' to close the tag")
		stm.Complete(p, k.Of(htmlkinds.StartTag))
	}

	// <script>/<style> bodies arrive as a single raw-content token from the
	// lexer's mode switch — not further tokenized as markup (§4.2).
	if p.At(k.Of(htmlkinds.ScriptContentNode)) || p.At(k.Of(htmlkinds.StyleContentNode)) {
		p.Bump()
	}

	for {
		if p.AtEOF() {
			p.Error(fmt.Sprintf("unexpected end of input inside <%s>", name))
			break
		}
		if p.At(syntax.LT) && p.Nth(1) == syntax.SLASH {
			// Matched or not, this element closes here: on mismatch the
			// unconsumed "</...>" is left for whichever ancestor it closes.
			parseEndTag(p, k, name)
			break
		}
		parseNode(p, k)
	}

	return m.Complete(p, elementKind(name, k))
}

// parseEndTag attempts to consume a closing tag matching name. On a name
// mismatch it rolls back every token it speculatively consumed and records
// a diagnostic instead — the unmatched "</...>" is left for whichever
// ancestor element it actually closes.
func parseEndTag(p *parser.Parser, k *htmlkinds.Kinds, name string) {
	cp := p.Checkpoint()
	etm := p.Start()
	p.Bump() // '<'
	p.Bump() // '/'
	endName := ""
	if p.At(k.Of(htmlkinds.TagNameTok)) {
		endName = strings.ToLower(p.NthText(0))
	}
	if endName != name {
		etm.Abandon(p)
		p.Rollback(cp)
		p.Error(fmt.Sprintf("mismatched closing tag: expected </%s>", name))
		return
	}
	p.Bump() // tag name
	p.Expect(syntax.GT)
	etm.Complete(p, k.Of(htmlkinds.EndTag))
}

// parseAttributes consumes a run of "name" or "name=\"value\"" pairs. The
// lexer only distinguishes a dedicated ATTR_NAME kind for names containing
// ':' or '-' (§4.2); plain names like "class" or "disabled" arrive as the
// same TAG_NAME kind the element name itself uses, so both are accepted
// here as attribute-name tokens.
func parseAttributes(p *parser.Parser, k *htmlkinds.Kinds) {
	for p.At(k.Of(htmlkinds.TagNameTok)) || p.At(k.Of(htmlkinds.AttrNameTok)) {
		parseAttribute(p, k)
	}
}

func parseAttribute(p *parser.Parser, k *htmlkinds.Kinds) {
	am := p.Start()

	nm := p.Start()
	p.Bump()
	nm.Complete(p, k.Of(htmlkinds.AttributeName))

	if p.At(syntax.EQ) {
		p.Bump()
		if p.At(k.Of(htmlkinds.StringLitTok)) {
			vm := p.Start()
			p.Bump()
			vm.Complete(p, k.Of(htmlkinds.AttributeValue))
		} else {
			p.Error("expected a quoted attribute value")
		}
	}

	am.Complete(p, k.Of(htmlkinds.AttributeNode))
}

func elementKind(name string, k *htmlkinds.Kinds) syntax.Kind {
	switch name {
	case "script":
		return k.Of(htmlkinds.ScriptElement)
	case "style":
		return k.Of(htmlkinds.StyleElement)
	default:
		return k.Of(htmlkinds.Element)
	}
}

// Package htmlkinds enumerates the HTML kind suffixes shared by the HTML
// and Vue grammars, the same way jskinds does for JS/TS (§8.2).
package htmlkinds

import "github.com/oxhq/webcst/internal/syntax"

type Suffix uint16

const (
	Document Suffix = iota
	ErrorNode
	Element
	StartTag
	EndTag
	SelfClosingTag
	AttributeNode
	AttributeName
	AttributeValue
	TextNode
	CommentNode
	ScriptElement
	ScriptContentNode
	StyleElement
	StyleContentNode
	TagNameTok
	AttrNameTok
	StringLitTok
	DelimitedTok

	FirstExtSuffix // Vue starts here.
)

type Kinds struct {
	lang syntax.Language
	m    map[Suffix]syntax.Kind
	name map[syntax.Kind]string
}

func Build(lang syntax.Language) *Kinds {
	k := &Kinds{lang: lang, m: make(map[Suffix]syntax.Kind), name: make(map[syntax.Kind]string)}
	for s := Suffix(0); s < FirstExtSuffix; s++ {
		kind := syntax.MakeKind(lang, uint16(s))
		k.m[s] = kind
		k.name[kind] = suffixNames[s]
	}
	return k
}

func (k *Kinds) Of(s Suffix) syntax.Kind { return k.m[s] }

func (k *Kinds) Name(kind syntax.Kind) string { return k.name[kind] }

func (k *Kinds) Extend(suffix uint16, name string) syntax.Kind {
	kind := syntax.MakeKind(k.lang, suffix)
	k.name[kind] = name
	return kind
}

var suffixNames = map[Suffix]string{
	Document: "DOCUMENT", ErrorNode: "ERROR", Element: "ELEMENT",
	StartTag: "START_TAG", EndTag: "END_TAG", SelfClosingTag: "SELF_CLOSING_TAG",
	AttributeNode: "ATTRIBUTE", AttributeName: "ATTRIBUTE_NAME", AttributeValue: "ATTRIBUTE_VALUE",
	TextNode: "TEXT", CommentNode: "COMMENT_NODE",
	ScriptElement: "SCRIPT_ELEMENT", ScriptContentNode: "SCRIPT_CONTENT",
	StyleElement: "STYLE_ELEMENT", StyleContentNode: "STYLE_CONTENT",
	TagNameTok: "TAG_NAME", AttrNameTok: "ATTR_NAME", StringLitTok: "STRING_LIT",
	DelimitedTok: "DELIMITED",
}

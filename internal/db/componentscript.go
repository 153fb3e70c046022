package db

import (
	"fmt"
	"strings"

	"github.com/oxhq/webcst/internal/astid"
	"github.com/oxhq/webcst/internal/grammar/htmlkinds"
	"github.com/oxhq/webcst/internal/grammar/vue"
	"github.com/oxhq/webcst/internal/source"
	"github.com/oxhq/webcst/internal/syntax"
)

// componentScriptKey is the ComponentScript intern-key from §4.6's
// derived-source convention: "component_script(file) ... interns a
// ComponentScript{ast_id, lang}". It is keyed by file + the script
// element's AstId + the script body, so editing unrelated parts of the
// component doesn't change which derived source downstream JS queries see,
// while editing the body yields a derived source carrying the new text.
type componentScriptKey struct {
	File  source.FileID
	AstID int
	Body  string
}

func isScriptElement(n *syntax.Node) bool {
	return n.Kind() == vue.Kinds.Of(htmlkinds.ScriptElement)
}

// ComponentScript locates file's <script> element, interns its body as a
// derived Source, and reports which language to parse it as (from a
// `lang="ts"` attribute, defaulting to JS). The resulting SourceId is a
// first-class input to downstream JS/TS queries — AST(id, lang) — never
// re-using file's own FileID namespace (§9).
func (db *Database) ComponentScript(file source.FileID) (source.ID, string, error) {
	fileSrc := db.FileSource(file)
	tree, err := db.AST(fileSrc, "vue")
	if err != nil {
		return 0, "", err
	}

	root := tree.Root()
	var scriptElems []*syntax.Node
	for _, c := range root.Children() {
		if isScriptElement(c) {
			scriptElems = append(scriptElems, c)
		}
	}
	if len(scriptElems) == 0 {
		return 0, "", fmt.Errorf("db: %d has no <script> element", file)
	}
	scriptNode := scriptElems[0]

	m := astid.FromRoot(root, isScriptElement)

	lang := "js"
	var body string
	for _, c := range scriptNode.Children() {
		switch c.Kind() {
		case vue.Kinds.Of(htmlkinds.StartTag):
			if l, ok := attrValue(c, "lang"); ok {
				lang = l
			}
		case vue.Kinds.Of(htmlkinds.ScriptContentNode):
			body = c.Text()
		}
	}

	key := componentScriptKey{File: file, AstID: m.AstID(scriptNode), Body: body}
	id := db.interner.Intern(source.Derived("ComponentScript", key, body))
	return id, lang, nil
}

// attrValue scans a StartTag node's ATTRIBUTE children for one named name,
// returning its unquoted value.
func attrValue(startTag *syntax.Node, name string) (string, bool) {
	for _, attr := range startTag.Children() {
		if attr.Kind() != vue.Kinds.Of(htmlkinds.AttributeNode) {
			continue
		}
		var attrName, attrValueText string
		for _, part := range attr.Children() {
			switch part.Kind() {
			case vue.Kinds.Of(htmlkinds.AttributeName):
				attrName = strings.TrimSpace(part.TokenText())
			case vue.Kinds.Of(htmlkinds.AttributeValue):
				attrValueText = strings.Trim(part.TokenText(), `"'`)
			}
		}
		if attrName == name {
			return attrValueText, true
		}
	}
	return "", false
}

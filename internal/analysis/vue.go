package analysis

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/oxhq/webcst/internal/db"
	"github.com/oxhq/webcst/internal/grammar/htmlkinds"
	"github.com/oxhq/webcst/internal/grammar/js"
	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/grammar/ts"
	"github.com/oxhq/webcst/internal/grammar/vue"
	"github.com/oxhq/webcst/internal/source"
	"github.com/oxhq/webcst/internal/syntax"
)

// vueDiagnostics implements the Vue branch of §4.7: the component's own
// parse errors, structural root-block checks, template-embedded expression
// checks, the embedded <script> body's own syntax errors, and (when the
// script parses cleanly) the `props` option's validation diagnostics.
func vueDiagnostics(database *db.Database, file source.FileID) ([]Diagnostic, error) {
	fileSrc := database.FileSource(file)
	tree, err := database.AST(fileSrc, "vue")
	if err != nil {
		return nil, err
	}
	root := tree.Root()

	var out []Diagnostic
	out = append(out, formatSyntaxErrors(database, fileSrc, tree.Errors(), 0)...)
	out = append(out, structuralDiagnostics(root)...)
	out = append(out, templateExpressionDiagnostics(database, fileSrc, root)...)
	out = append(out, scriptDiagnostics(database, file, fileSrc, root)...)
	out = append(out, propsDiagnostics(database, file)...)
	return out, nil
}

// structuralDiagnostics reports the Vue-specific root-block rules (§4.4,
// §4.7): at most one root <template>, at most one <script>.
func structuralDiagnostics(root *syntax.Node) []Diagnostic {
	var out []Diagnostic

	templates := 0
	scripts := 0
	for _, c := range root.Children() {
		switch {
		case c.Kind() == vue.Kinds.Of(htmlkinds.ScriptElement):
			scripts++
		case c.Kind() == vue.Kinds.Of(htmlkinds.Element) && tagName(c) == "template":
			templates++
		}
	}
	if templates > 1 {
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Category: CategoryCorrectness,
			Line:     1, Col: 1,
			Message: "vue component should contain exactly one root template",
		})
	}
	if scripts > 1 {
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Category: CategoryPedantic,
			Line:     1, Col: 1,
			Message: "vue component should contain exactly one script",
		})
	}
	return out
}

// scriptDiagnostics re-parses the component's first root <script> block and
// reports its syntax errors translated back into the file's coordinates
// (§4.7). A component with no <script> element yields nothing.
func scriptDiagnostics(database *db.Database, file source.FileID, fileSrc source.ID, root *syntax.Node) []Diagnostic {
	base, ok := firstScriptContentBase(root)
	if !ok {
		return nil
	}
	scriptSrc, lang, err := database.ComponentScript(file)
	if err != nil {
		return nil
	}
	tree, err := database.AST(scriptSrc, lang)
	if err != nil || !tree.HasErrors() {
		return nil
	}
	return formatSyntaxErrors(database, fileSrc, tree.Errors(), base)
}

// firstScriptContentBase returns the file-relative start offset of the
// first root <script> block's raw content, mirroring internal/db's own
// script-element lookup (db.ComponentScript).
func firstScriptContentBase(root *syntax.Node) (uint32, bool) {
	for _, c := range root.Children() {
		if c.Kind() != vue.Kinds.Of(htmlkinds.ScriptElement) {
			continue
		}
		for _, cc := range c.Children() {
			if cc.Kind() == vue.Kinds.Of(htmlkinds.ScriptContentNode) {
				return cc.Range().Start, true
			}
		}
	}
	return 0, false
}

// tagName recovers an element's lowercased tag name from its start/self-
// closing tag child, skipping trivia (§4.3 "Bump consumes ... leading
// trivia").
func tagName(elem *syntax.Node) string {
	for _, tagChild := range elem.Children() {
		if tagChild.Kind() != vue.Kinds.Of(htmlkinds.StartTag) && tagChild.Kind() != vue.Kinds.Of(htmlkinds.SelfClosingTag) {
			continue
		}
		for _, tok := range tagChild.Children() {
			if tok.Kind() == vue.Kinds.Of(htmlkinds.TagNameTok) {
				return strings.ToLower(tok.Text())
			}
		}
	}
	return ""
}

// templateExpressionDiagnostics re-parses every mustache interpolation and
// bound-attribute value as a JS expression (§4.7: "collect template-
// embedded expression ranges ... and parse each as a JS expression"),
// translating any syntax error's local offset back into the file's
// coordinates.
func templateExpressionDiagnostics(database *db.Database, fileSrc source.ID, root *syntax.Node) []Diagnostic {
	var out []Diagnostic
	root.Descendants(func(n *syntax.Node) bool {
		switch {
		case n.Kind() == vue.Kinds.Of(htmlkinds.DelimitedTok):
			out = append(out, mustacheExpressionDiagnostics(database, fileSrc, n)...)
		case n.Kind() == vue.Kinds.Of(htmlkinds.AttributeNode):
			out = append(out, bindingExpressionDiagnostics(database, fileSrc, n)...)
		}
		return true
	})
	return out
}

func mustacheExpressionDiagnostics(database *db.Database, fileSrc source.ID, delim *syntax.Node) []Diagnostic {
	open, close := vue.Delimiters().Open, vue.Delimiters().Close
	text := delim.Text()
	if len(text) < len(open)+len(close) {
		return nil
	}
	inner := text[len(open) : len(text)-len(close)]
	base := delim.Range().Start + uint32(len(open))
	return exprErrorsAt(database, fileSrc, inner, base)
}

// bindingExpressionDiagnostics checks attribute bindings and listeners
// (":prop", "v-bind:prop", "@event", "v-on:event") and computed-property-
// style shorthand — every attribute whose name carries one of those
// prefixes has its value re-parsed as a JS expression.
func bindingExpressionDiagnostics(database *db.Database, fileSrc source.ID, attr *syntax.Node) []Diagnostic {
	var name, value *syntax.Node
	for _, c := range attr.Children() {
		switch c.Kind() {
		case vue.Kinds.Of(htmlkinds.AttributeName):
			name = c
		case vue.Kinds.Of(htmlkinds.AttributeValue):
			value = c
		}
	}
	if name == nil || value == nil || !isBindingAttribute(strings.TrimSpace(name.TokenText())) {
		return nil
	}
	text := value.TokenText()
	if len(text) < 2 {
		return nil
	}
	inner := text[1 : len(text)-1] // strip the surrounding quotes
	base := value.Range().Start + 1
	return exprErrorsAt(database, fileSrc, inner, base)
}

func isBindingAttribute(name string) bool {
	switch {
	case strings.HasPrefix(name, ":"), strings.HasPrefix(name, "v-bind:"):
		return true
	case strings.HasPrefix(name, "@"), strings.HasPrefix(name, "v-on:"):
		return true
	default:
		return false
	}
}

// exprErrorsAt parses text as a standalone JS expression and reports each
// resulting syntax error at base+offset within fileSrc.
func exprErrorsAt(database *db.Database, fileSrc source.ID, text string, base uint32) []Diagnostic {
	exprTree := js.ParseExpression(text, js.Kinds, nil)
	if !exprTree.HasErrors() {
		return nil
	}
	var out []Diagnostic
	for _, e := range exprTree.Errors() {
		off := e.Location.Offset
		if e.Location.IsRange {
			off = e.Location.Range.Start
		}
		line, col := database.LineCol(fileSrc, base+off)
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Category: CategorySyntax,
			Line:     line, Col: col,
			Message: e.Message,
		})
	}
	return out
}

// VMShape is the extracted component option shape (§4.7: "extract props,
// data, computed, methods to a vm shape used for future member-access
// checks"). Field order mirrors common authoring order, not significance.
type VMShape struct {
	Props    []string
	Data     []string
	Computed []string
	Methods  []string
}

// ComponentShape locates file's component options object — either a plain
// `export default {...}` literal or `export default Vue.extend({...})` —
// and extracts its vm shape. Returns the zero VMShape if no options object
// is found (e.g. the script doesn't export a component at all).
func ComponentShape(database *db.Database, file source.FileID) (VMShape, error) {
	scriptSrc, lang, err := database.ComponentScript(file)
	if err != nil {
		return VMShape{}, err
	}
	tree, err := database.AST(scriptSrc, lang)
	if err != nil {
		return VMShape{}, err
	}

	obj := findOptionsObject(tree.Root(), kindsForLang(lang))
	if obj == nil {
		return VMShape{}, nil
	}
	return extractVMShape(obj), nil
}

// kindsForLang resolves the jskinds table a ComponentScript's declared
// language should be parsed and walked with.
func kindsForLang(lang string) *jskinds.Kinds {
	if lang == "ts" {
		return ts.Kinds
	}
	return js.Kinds
}

// findOptionsObject locates the object literal a `export default` statement
// ultimately describes the component with — either directly, or as the
// first object-valued argument to a call (the `Vue.extend({...})` shape,
// §4.7).
func findOptionsObject(root *syntax.Node, k *jskinds.Kinds) *syntax.Node {
	for _, c := range root.Children() {
		if c.Kind() != k.Of(jskinds.ExportDefaultDeclaration) {
			continue
		}
		for _, cc := range c.Children() {
			switch cc.Kind() {
			case k.Of(jskinds.ObjectExpression):
				return cc
			case k.Of(jskinds.CallExpression):
				if obj := firstObjectArgument(cc, k); obj != nil {
					return obj
				}
			}
		}
	}
	return nil
}

func firstObjectArgument(call *syntax.Node, k *jskinds.Kinds) *syntax.Node {
	for _, cc := range call.Children() {
		if cc.Kind() != k.Of(jskinds.ArgumentList) {
			continue
		}
		for _, arg := range cc.Children() {
			if arg.Kind() == k.Of(jskinds.ObjectExpression) {
				return arg
			}
		}
	}
	return nil
}

func extractVMShape(obj *syntax.Node) VMShape {
	k := objectKinds(obj)
	var shape VMShape
	for _, prop := range obj.ChildrenOfKind(k.Of(jskinds.Property)) {
		switch propertyKeyName(prop, k) {
		case "props":
			shape.Props = propsNames(prop, k)
		case "computed":
			shape.Computed = nestedObjectKeys(prop, k)
		case "methods":
			shape.Methods = nestedObjectKeys(prop, k)
		case "data":
			shape.Data = dataKeys(prop, k)
		}
	}
	return shape
}

// objectKinds recovers the jskinds table backing obj's own Kind, since
// extractVMShape's helpers are language-agnostic over JS and TS alike.
func objectKinds(obj *syntax.Node) *jskinds.Kinds {
	if obj.Kind().Lang() == syntax.LangTS {
		return ts.Kinds
	}
	return js.Kinds
}

// propertyKeyName returns a Property node's key text, skipping any leading
// trivia children and unquoting a string-literal key.
func propertyKeyName(prop *syntax.Node, k *jskinds.Kinds) string {
	for _, c := range prop.Children() {
		if c.Kind().IsTrivia() {
			continue
		}
		return strings.Trim(strings.TrimSpace(c.TokenText()), `"'`)
	}
	return ""
}

// propsNames extracts prop declarations from either array-of-names form
// (`props: ['foo', 'bar']`) or object form (`props: { foo: String }`).
func propsNames(prop *syntax.Node, k *jskinds.Kinds) []string {
	for _, c := range prop.Children() {
		switch c.Kind() {
		case k.Of(jskinds.ObjectExpression):
			return nestedObjectKeysOf(c, k)
		case k.Of(jskinds.ArrayExpression):
			var names []string
			for _, item := range c.Children() {
				if item.Kind() == k.Of(jskinds.StringLiteral) {
					names = append(names, strings.Trim(strings.TrimSpace(item.TokenText()), `"'`))
				}
			}
			return names
		}
	}
	return nil
}

// nestedObjectKeys returns the property keys of prop's object-literal
// value (used for "methods" and "computed", both always object-valued).
func nestedObjectKeys(prop *syntax.Node, k *jskinds.Kinds) []string {
	for _, c := range prop.Children() {
		if c.Kind() == k.Of(jskinds.ObjectExpression) {
			return nestedObjectKeysOf(c, k)
		}
	}
	return nil
}

func nestedObjectKeysOf(obj *syntax.Node, k *jskinds.Kinds) []string {
	var names []string
	for _, inner := range obj.ChildrenOfKind(k.Of(jskinds.Property)) {
		names = append(names, propertyKeyName(inner, k))
	}
	return names
}

// dataKeys descends `data() { return {...}; }` to the returned object
// literal's keys. An arrow body that is directly an object expression
// (`data: () => ({...})`) is intentionally left unrecognized — a
// preserved limitation, not a bug to fix (§9 open-question decision).
func dataKeys(prop *syntax.Node, k *jskinds.Kinds) []string {
	var block *syntax.Node
	for _, c := range prop.Children() {
		if c.Kind() == k.Of(jskinds.Block) {
			block = c
		}
	}
	if block == nil {
		return nil
	}
	for _, stmt := range block.ChildrenOfKind(k.Of(jskinds.ReturnStatement)) {
		for _, c := range stmt.Children() {
			if c.Kind() == k.Of(jskinds.ObjectExpression) {
				return nestedObjectKeysOf(c, k)
			}
		}
	}
	return nil
}

// propsDiagnostics validates the component options object's `props` value
// (§4.7): an array must hold only string literals that are themselves valid
// identifiers, an object's keys must not be computed and any `required`
// value must be the literal `true`/`false`, and the value itself must be an
// array or an object at all. A broken script (already reported by
// scriptDiagnostics) or one with no options object yields nothing.
func propsDiagnostics(database *db.Database, file source.FileID) []Diagnostic {
	scriptSrc, lang, err := database.ComponentScript(file)
	if err != nil {
		return nil
	}
	tree, err := database.AST(scriptSrc, lang)
	if err != nil || tree.HasErrors() {
		return nil
	}
	k := kindsForLang(lang)
	obj := findOptionsObject(tree.Root(), k)
	if obj == nil {
		return nil
	}
	for _, prop := range obj.ChildrenOfKind(k.Of(jskinds.Property)) {
		if propertyKeyName(prop, k) != "props" {
			continue
		}
		return propsValueDiagnostics(propertyValue(prop), k)
	}
	return nil
}

func propsValueDiagnostics(value *syntax.Node, k *jskinds.Kinds) []Diagnostic {
	if value == nil {
		return nil
	}
	switch value.Kind() {
	case k.Of(jskinds.ArrayExpression):
		return propsArrayDiagnostics(value, k)
	case k.Of(jskinds.ObjectExpression):
		return propsObjectDiagnostics(value, k)
	default:
		return []Diagnostic{{
			Severity: SeverityError,
			Category: CategoryPedantic,
			Line:     1, Col: 1,
			Message: "vue `props` must be an object or an array",
		}}
	}
}

// propsArrayDiagnostics validates `props: [...]` form. A non-string element
// is fatal to further validation — matches the original's "quit immediately,
// we probably can't figure out the vm type correctly" behavior.
func propsArrayDiagnostics(arr *syntax.Node, k *jskinds.Kinds) []Diagnostic {
	var out []Diagnostic
	for _, el := range arr.Children() {
		if el.Kind().IsTrivia() || el.Kind() == syntax.COMMA || el.Kind() == syntax.LBRACKET || el.Kind() == syntax.RBRACKET {
			continue
		}
		if el.Kind() == k.Of(jskinds.StringLiteral) {
			text := strings.Trim(strings.TrimSpace(el.TokenText()), `"'`)
			if isValidPropName(text) {
				continue
			}
			out = append(out, Diagnostic{
				Severity: SeverityWarn,
				Category: CategoryStyle,
				Line:     1, Col: 1,
				Message: fmt.Sprintf("vue `props` names should be valid identifiers, but found %q", text),
			})
			continue
		}
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Category: CategoryCorrectness,
			Line:     1, Col: 1,
			Message: "vue `props` array must be an array of strings",
		})
		return out
	}
	return out
}

// isValidPropName reports whether every rune is a letter, digit, or
// underscore (the empty string is vacuously valid).
func isValidPropName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// propsObjectDiagnostics validates `props: {...}` form: a computed key is
// skipped (non-fatal), and a `{ type, required }` descriptor's `required`
// must be the literal `true` or `false`.
func propsObjectDiagnostics(obj *syntax.Node, k *jskinds.Kinds) []Diagnostic {
	var out []Diagnostic
	for _, prop := range obj.ChildrenOfKind(k.Of(jskinds.Property)) {
		if isComputedPropertyKey(prop) {
			out = append(out, Diagnostic{
				Severity: SeverityError,
				Category: CategoryPedantic,
				Line:     1, Col: 1,
				Message: "vue `props` keys should not be computed, but got `[...]: ...`",
			})
			continue
		}
		descriptor := propertyValue(prop)
		if descriptor == nil || descriptor.Kind() != k.Of(jskinds.ObjectExpression) {
			continue
		}
		for _, inner := range descriptor.ChildrenOfKind(k.Of(jskinds.Property)) {
			if propertyKeyName(inner, k) != "required" {
				continue
			}
			req := propertyValue(inner)
			if req == nil {
				continue
			}
			text := strings.TrimSpace(req.TokenText())
			if text != "true" && text != "false" {
				out = append(out, Diagnostic{
					Severity: SeverityError,
					Category: CategoryPedantic,
					Line:     1, Col: 1,
					Message: fmt.Sprintf("vue `prop.required` should be `true` or `false`, but got `%s`", text),
				})
			}
		}
	}
	return out
}

// isComputedPropertyKey reports whether prop's key is a computed
// `[expr]: value` form — its leading non-trivia child is then the `[` token
// rather than the key itself.
func isComputedPropertyKey(prop *syntax.Node) bool {
	for _, c := range prop.Children() {
		if c.Kind().IsTrivia() {
			continue
		}
		return c.Kind() == syntax.LBRACKET
	}
	return false
}

// propertyValue returns a non-computed Property node's value — the child
// following the `:` in `key: value` — or nil for a shorthand property with
// no value.
func propertyValue(prop *syntax.Node) *syntax.Node {
	seenColon := false
	for _, c := range prop.Children() {
		if c.Kind().IsTrivia() {
			continue
		}
		if seenColon {
			return c
		}
		if c.Kind() == syntax.COLON {
			seenColon = true
		}
	}
	return nil
}

// Package jskinds enumerates the JavaScript kind suffixes shared by the JS
// and TS grammars. Per §8.2 (kind disjointness) every language gets its own
// 16-bit Kind namespace even for semantically identical constructs, so JS
// and TS cannot literally share Kind values — but they share the same
// *suffix numbering*, built under each language's own prefix by Build. This
// keeps the two grammars' kind tables from drifting apart while still
// producing disjoint values.
package jskinds

import "github.com/oxhq/webcst/internal/syntax"

// Suffix names every per-language slot the shared JS/TS grammar needs.
// TS-only additions (TS_NON_NULL_EXPRESSION, interfaces, ...) are declared
// separately in grammar/ts starting at FirstExtSuffix so they never collide
// with this block inside LangTS's own namespace.
type Suffix uint16

const (
	// Keywords. Reserved words get their own Kind; contextual keywords
	// (as, from, get, set, of, async) deliberately do NOT — they lex as
	// syntax.IDENT and grammar rules recognize them positionally via
	// at_keyword (§9 open question, preserved exactly).
	KwVar Suffix = iota
	KwLet
	KwConst
	KwFunction
	KwReturn
	KwIf
	KwElse
	KwFor
	KwWhile
	KwDo
	KwBreak
	KwContinue
	KwNew
	KwDelete
	KwVoid
	KwTypeof
	KwInstanceof
	KwIn
	KwThis
	KwSuper
	KwNull
	KwTrue
	KwFalse
	KwUndefined
	KwClass
	KwExtends
	KwImport
	KwExport
	KwDefault
	KwTry
	KwCatch
	KwFinally
	KwThrow
	KwSwitch
	KwCase
	KwStatic
	KwYield
	KwAwait
	KwNot // "not" is not a JS keyword in reality; reserved slot unused, kept for table symmetry with the precedence table tests.

	// Node (non-terminal) kinds.
	Program
	ErrorNode
	VariableDeclaration
	VariableDeclarator
	FunctionDeclaration
	FunctionExpression
	ArrowFunctionExpression
	ParameterList
	Parameter
	Block
	IfStatement
	ForStatement
	WhileStatement
	DoWhileStatement
	BreakStatement
	ContinueStatement
	ReturnStatement
	ThrowStatement
	TryStatement
	CatchClause
	SwitchStatement
	SwitchCase
	ExpressionStatement
	EmptyStatement
	ClassDeclaration
	ClassBody
	MethodDefinition
	ImportDeclaration
	ImportSpecifier
	ExportNamedDeclaration
	ExportDefaultDeclaration
	ExportSpecifier

	Identifier
	NumericLiteral
	StringLiteral
	BooleanLiteral
	NullLiteral
	RegexLiteral
	TemplateLiteral
	TemplateChunk
	TemplateSubstitution
	ArrayExpression
	ObjectExpression
	Property
	SpreadElement

	AssignmentExpression
	ConditionalExpression
	LogicalExpression
	BinaryExpression
	UnaryExpression
	UpdateExpression
	CallExpression
	NewExpression
	MemberExpression
	ArgumentList
	SequenceExpression
	ParenthesizedExpression

	FirstExtSuffix // TS (and future grammars built on this table) start here.
)

// Kinds is the fully-built Kind table for one language sharing this suffix
// layout (currently JS and TS).
type Kinds struct {
	lang syntax.Language
	m    map[Suffix]syntax.Kind
	name map[syntax.Kind]string
}

// Build constructs a Kinds table for lang, one syntax.Kind per Suffix. TS
// calls this with syntax.LangTS and then layers its own additions on top
// starting at FirstExtSuffix.
func Build(lang syntax.Language) *Kinds {
	k := &Kinds{lang: lang, m: make(map[Suffix]syntax.Kind), name: make(map[syntax.Kind]string)}
	for s := Suffix(0); s < FirstExtSuffix; s++ {
		kind := syntax.MakeKind(lang, uint16(s))
		k.m[s] = kind
		k.name[kind] = suffixNames[s]
	}
	return k
}

// Of returns the Kind for a given Suffix in this table.
func (k *Kinds) Of(s Suffix) syntax.Kind { return k.m[s] }

// Name returns the debug-repr name for any Kind this table produced,
// including extensions registered via Extend.
func (k *Kinds) Name(kind syntax.Kind) string { return k.name[kind] }

// Extend registers an additional (suffix, name) pair beyond FirstExtSuffix,
// used by grammar/ts for TS-only node kinds.
func (k *Kinds) Extend(suffix uint16, name string) syntax.Kind {
	kind := syntax.MakeKind(k.lang, suffix)
	k.name[kind] = name
	return kind
}

var suffixNames = map[Suffix]string{
	KwVar: "KW_VAR", KwLet: "KW_LET", KwConst: "KW_CONST", KwFunction: "KW_FUNCTION",
	KwReturn: "KW_RETURN", KwIf: "KW_IF", KwElse: "KW_ELSE", KwFor: "KW_FOR",
	KwWhile: "KW_WHILE", KwDo: "KW_DO", KwBreak: "KW_BREAK", KwContinue: "KW_CONTINUE",
	KwNew: "KW_NEW", KwDelete: "KW_DELETE", KwVoid: "KW_VOID", KwTypeof: "KW_TYPEOF",
	KwInstanceof: "KW_INSTANCEOF", KwIn: "KW_IN", KwThis: "KW_THIS", KwSuper: "KW_SUPER",
	KwNull: "KW_NULL", KwTrue: "KW_TRUE", KwFalse: "KW_FALSE", KwUndefined: "KW_UNDEFINED",
	KwClass: "KW_CLASS", KwExtends: "KW_EXTENDS", KwImport: "KW_IMPORT", KwExport: "KW_EXPORT",
	KwDefault: "KW_DEFAULT", KwTry: "KW_TRY", KwCatch: "KW_CATCH", KwFinally: "KW_FINALLY",
	KwThrow: "KW_THROW", KwSwitch: "KW_SWITCH", KwCase: "KW_CASE", KwStatic: "KW_STATIC",
	KwYield: "KW_YIELD", KwAwait: "KW_AWAIT", KwNot: "KW_NOT",

	Program: "PROGRAM", ErrorNode: "ERROR", VariableDeclaration: "VARIABLE_DECLARATION",
	VariableDeclarator: "VARIABLE_DECLARATOR", FunctionDeclaration: "FUNCTION_DECLARATION",
	FunctionExpression: "FUNCTION_EXPRESSION", ArrowFunctionExpression: "ARROW_FUNCTION_EXPRESSION",
	ParameterList: "PARAMETER_LIST", Parameter: "PARAMETER", Block: "BLOCK",
	IfStatement: "IF_STATEMENT", ForStatement: "FOR_STATEMENT", WhileStatement: "WHILE_STATEMENT",
	DoWhileStatement: "DO_WHILE_STATEMENT", BreakStatement: "BREAK_STATEMENT",
	ContinueStatement: "CONTINUE_STATEMENT", ReturnStatement: "RETURN_STATEMENT",
	ThrowStatement: "THROW_STATEMENT", TryStatement: "TRY_STATEMENT", CatchClause: "CATCH_CLAUSE",
	SwitchStatement: "SWITCH_STATEMENT", SwitchCase: "SWITCH_CASE",
	ExpressionStatement: "EXPRESSION_STATEMENT", EmptyStatement: "EMPTY_STATEMENT",
	ClassDeclaration: "CLASS_DECLARATION", ClassBody: "CLASS_BODY", MethodDefinition: "METHOD_DEFINITION",
	ImportDeclaration: "IMPORT_DECLARATION", ImportSpecifier: "IMPORT_SPECIFIER",
	ExportNamedDeclaration: "EXPORT_NAMED_DECLARATION", ExportDefaultDeclaration: "EXPORT_DEFAULT_DECLARATION",
	ExportSpecifier: "EXPORT_SPECIFIER",

	Identifier: "IDENTIFIER", NumericLiteral: "NUMERIC_LITERAL", StringLiteral: "STRING_LITERAL",
	BooleanLiteral: "BOOLEAN_LITERAL", NullLiteral: "NULL_LITERAL", RegexLiteral: "REGEX_LITERAL",
	TemplateLiteral: "TEMPLATE_LITERAL", TemplateChunk: "TEMPLATE_CHUNK", TemplateSubstitution: "TEMPLATE_SUBSTITUTION",
	ArrayExpression: "ARRAY_EXPRESSION", ObjectExpression: "OBJECT_EXPRESSION", Property: "PROPERTY",
	SpreadElement: "SPREAD_ELEMENT",

	AssignmentExpression: "ASSIGNMENT_EXPRESSION", ConditionalExpression: "CONDITIONAL_EXPRESSION",
	LogicalExpression: "LOGICAL_EXPRESSION", BinaryExpression: "BINARY_EXPRESSION",
	UnaryExpression: "UNARY_EXPRESSION", UpdateExpression: "UPDATE_EXPRESSION",
	CallExpression: "CALL_EXPRESSION", NewExpression: "NEW_EXPRESSION", MemberExpression: "MEMBER_EXPRESSION",
	ArgumentList: "ARGUMENT_LIST", SequenceExpression: "SEQUENCE_EXPRESSION",
	ParenthesizedExpression: "PARENTHESIZED_EXPRESSION",
}

// Keywords maps the non-contextual reserved words to their Suffix. Used by
// the lexer to decide when IDENT text should instead become a keyword
// Kind.
var Keywords = map[string]Suffix{
	"var": KwVar, "let": KwLet, "const": KwConst, "function": KwFunction,
	"return": KwReturn, "if": KwIf, "else": KwElse, "for": KwFor,
	"while": KwWhile, "do": KwDo, "break": KwBreak, "continue": KwContinue,
	"new": KwNew, "delete": KwDelete, "void": KwVoid, "typeof": KwTypeof,
	"instanceof": KwInstanceof, "in": KwIn, "this": KwThis, "super": KwSuper,
	"null": KwNull, "true": KwTrue, "false": KwFalse, "undefined": KwUndefined,
	"class": KwClass, "extends": KwExtends, "import": KwImport, "export": KwExport,
	"default": KwDefault, "try": KwTry, "catch": KwCatch, "finally": KwFinally,
	"throw": KwThrow, "switch": KwSwitch, "case": KwCase, "static": KwStatic,
	"yield": KwYield, "await": KwAwait,
}

// ContextualKeywords lists identifiers that are never promoted to a
// dedicated Kind (§9 open question, preserved exactly): the keyword map
// returns nothing for them and grammar rules recognize them positionally
// via at_keyword(text) instead.
var ContextualKeywords = map[string]bool{
	"as": true, "from": true, "get": true, "set": true, "of": true, "async": true,
}

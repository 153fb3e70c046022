package js

import (
	"strconv"

	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/lexer"
	"github.com/oxhq/webcst/internal/parser"
	"github.com/oxhq/webcst/internal/syntax"
)

// Extensions lets TypeScript layer a handful of constructs onto this
// package's rules without duplicating them (§4.3 design note: "TypeScript
// extends the framework"). Each field is the dedicated Kind to emit for
// that construct; the zero Kind disables it, which is what plain
// JavaScript parsing passes.
type Extensions struct {
	NonNull syntax.Kind // x! — TS_NON_NULL_EXPRESSION, wraps x
	AsExpr  syntax.Kind // x as T — TS_AS_EXPRESSION, wraps x (T is consumed as a bare identifier chain and discarded from the tree shape; §4.4 doesn't require a full type grammar)
}

// Parse runs this package's statement grammar over text and returns the
// resulting tree, using k for every node/token kind this grammar produces.
// ext may be nil (plain JS); TypeScript passes its own Extensions.
func Parse(text string, k *jskinds.Kinds, ext *Extensions) *syntax.Tree {
	toks := lexer.Tokenize(text, NewLexer(k))
	p := parser.New(text, toks)
	m := p.Start()
	for !p.AtEOF() {
		parseStatement(p, k, ext)
	}
	m.Complete(p, k.Of(jskinds.Program))
	events := p.Finish()
	return parser.BuildTree(text, events)
}

// ParseExpression parses text as a single expression rather than a sequence
// of statements — used to re-parse substrings that don't stand alone as a
// program: Vue mustache interpolations, attribute/listener bindings, and
// computed-property keys (§4.7). Trailing tokens past the expression are
// recorded as a syntax error rather than silently ignored.
func ParseExpression(text string, k *jskinds.Kinds, ext *Extensions) *syntax.Tree {
	toks := lexer.Tokenize(text, NewLexer(k))
	p := parser.New(text, toks)
	m := p.Start()
	parseExpr(p, k, ext)
	if !p.AtEOF() {
		p.Error("unexpected trailing input")
	}
	m.Complete(p, k.Of(jskinds.Program))
	events := p.Finish()
	return parser.BuildTree(text, events)
}

// --- statements ---------------------------------------------------------

func parseStatement(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	switch {
	case p.At(syntax.LBRACE):
		parseBlock(p, k, ext)
	case p.At(k.Of(jskinds.KwVar)), p.At(k.Of(jskinds.KwLet)), p.At(k.Of(jskinds.KwConst)):
		parseVariableDeclaration(p, k, ext)
		expectSemi(p)
	case p.At(k.Of(jskinds.KwFunction)):
		parseFunctionDeclaration(p, k, ext)
	case p.AtKeyword("async") && p.Nth(1) == k.Of(jskinds.KwFunction):
		p.Bump()
		parseFunctionDeclaration(p, k, ext)
	case p.At(k.Of(jskinds.KwClass)):
		parseClassDeclaration(p, k, ext)
	case p.At(k.Of(jskinds.KwIf)):
		parseIf(p, k, ext)
	case p.At(k.Of(jskinds.KwFor)):
		parseFor(p, k, ext)
	case p.At(k.Of(jskinds.KwWhile)):
		parseWhile(p, k, ext)
	case p.At(k.Of(jskinds.KwDo)):
		parseDoWhile(p, k, ext)
	case p.At(k.Of(jskinds.KwBreak)):
		parseBreakContinue(p, k, jskinds.BreakStatement)
	case p.At(k.Of(jskinds.KwContinue)):
		parseBreakContinue(p, k, jskinds.ContinueStatement)
	case p.At(k.Of(jskinds.KwReturn)):
		parseReturn(p, k, ext)
	case p.At(k.Of(jskinds.KwThrow)):
		parseThrow(p, k, ext)
	case p.At(k.Of(jskinds.KwTry)):
		parseTry(p, k, ext)
	case p.At(k.Of(jskinds.KwSwitch)):
		parseSwitch(p, k, ext)
	case p.At(k.Of(jskinds.KwImport)):
		parseImport(p, k)
	case p.At(k.Of(jskinds.KwExport)):
		parseExport(p, k, ext)
	case p.At(syntax.SEMICOLON):
		m := p.Start()
		p.Bump()
		m.Complete(p, k.Of(jskinds.EmptyStatement))
	default:
		parseExpressionStatement(p, k, ext)
	}
}

func parseBlock(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(syntax.LBRACE)
	for !p.At(syntax.RBRACE) && !p.AtEOF() {
		parseStatement(p, k, ext)
	}
	p.Expect(syntax.RBRACE)
	m.Complete(p, k.Of(jskinds.Block))
}

func parseVariableDeclaration(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Bump() // var/let/const
	for {
		d := p.Start()
		expectBindingIdentifier(p, k)
		skipOptionalTypeAnnotation(p)
		if p.At(syntax.EQ) {
			p.Bump()
			parseAssignExpr(p, k, ext)
		}
		d.Complete(p, k.Of(jskinds.VariableDeclarator))
		if p.At(syntax.COMMA) {
			p.Bump()
			continue
		}
		break
	}
	m.Complete(p, k.Of(jskinds.VariableDeclaration))
}

func expectBindingIdentifier(p *parser.Parser, k *jskinds.Kinds) {
	m := p.Start()
	if p.At(syntax.IDENT) {
		p.Bump()
	} else {
		p.Error("expected binding identifier")
	}
	m.Complete(p, k.Of(jskinds.Identifier))
}

// skipOptionalTypeAnnotation consumes ": T" in positions TypeScript allows
// one, without modeling the type grammar itself (§4.4 grammars focus on
// structural parsing, not a full type checker — see DESIGN.md). A no-op in
// plain JavaScript since ':' never appears there.
func skipOptionalTypeAnnotation(p *parser.Parser) {
	if !p.At(syntax.COLON) {
		return
	}
	p.Bump()
	depth := 0
	for !p.AtEOF() {
		switch {
		case p.At(syntax.LBRACE), p.At(syntax.LBRACKET), p.At(syntax.LT), p.At(syntax.LPAREN):
			depth++
			p.Bump()
		case p.At(syntax.RBRACE), p.At(syntax.RBRACKET), p.At(syntax.GT), p.At(syntax.RPAREN):
			if depth == 0 {
				return
			}
			depth--
			p.Bump()
		case depth == 0 && (p.At(syntax.COMMA) || p.At(syntax.EQ) || p.At(syntax.SEMICOLON) || p.At(syntax.RPAREN)):
			return
		default:
			p.Bump()
		}
	}
}

func parseFunctionDeclaration(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwFunction))
	if p.At(syntax.STAR) {
		p.Bump() // generator
	}
	if p.At(syntax.IDENT) {
		expectBindingIdentifier(p, k)
	}
	parseParameterList(p, k, ext)
	parseBlock(p, k, ext)
	m.Complete(p, k.Of(jskinds.FunctionDeclaration))
}

func parseParameterList(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(syntax.LPAREN)
	for !p.At(syntax.RPAREN) && !p.AtEOF() {
		param := p.Start()
		if p.At(syntax.DOTDOTDOT) {
			p.Bump()
		}
		expectBindingIdentifier(p, k)
		if p.At(syntax.QUESTION) {
			p.Bump() // TS optional parameter marker
		}
		skipOptionalTypeAnnotation(p)
		if p.At(syntax.EQ) {
			p.Bump()
			parseAssignExpr(p, k, ext)
		}
		param.Complete(p, k.Of(jskinds.Parameter))
		if p.At(syntax.COMMA) {
			p.Bump()
			continue
		}
		break
	}
	p.Expect(syntax.RPAREN)
	m.Complete(p, k.Of(jskinds.ParameterList))
}

func parseClassDeclaration(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwClass))
	if p.At(syntax.IDENT) {
		expectBindingIdentifier(p, k)
	}
	if p.At(k.Of(jskinds.KwExtends)) {
		p.Bump()
		parseLeftHandSideExpr(p, k, ext)
	}
	body := p.Start()
	p.Expect(syntax.LBRACE)
	for !p.At(syntax.RBRACE) && !p.AtEOF() {
		parseClassMember(p, k, ext)
	}
	p.Expect(syntax.RBRACE)
	body.Complete(p, k.Of(jskinds.ClassBody))
	m.Complete(p, k.Of(jskinds.ClassDeclaration))
}

func parseClassMember(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	if p.At(syntax.SEMICOLON) {
		p.Bump()
		m.Abandon(p)
		return
	}
	if p.At(k.Of(jskinds.KwStatic)) {
		p.Bump()
	}
	if p.AtKeyword("async") {
		p.Bump()
	}
	if p.At(syntax.STAR) {
		p.Bump()
	}
	if p.AtKeyword("get") || p.AtKeyword("set") {
		p.Bump()
	}
	expectBindingIdentifier(p, k)
	if p.At(syntax.LPAREN) {
		parseParameterList(p, k, ext)
		parseBlock(p, k, ext)
	} else {
		skipOptionalTypeAnnotation(p)
		if p.At(syntax.EQ) {
			p.Bump()
			parseAssignExpr(p, k, ext)
		}
		expectSemi(p)
	}
	m.Complete(p, k.Of(jskinds.MethodDefinition))
}

func parseIf(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwIf))
	p.Expect(syntax.LPAREN)
	parseExpr(p, k, ext)
	p.Expect(syntax.RPAREN)
	parseStatement(p, k, ext)
	if p.At(k.Of(jskinds.KwElse)) {
		p.Bump()
		parseStatement(p, k, ext)
	}
	m.Complete(p, k.Of(jskinds.IfStatement))
}

func parseFor(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwFor))
	p.Expect(syntax.LPAREN)
	switch {
	case p.At(syntax.SEMICOLON):
		// no init
	case p.At(k.Of(jskinds.KwVar)), p.At(k.Of(jskinds.KwLet)), p.At(k.Of(jskinds.KwConst)):
		parseVariableDeclaration(p, k, ext)
	default:
		parseExpr(p, k, ext)
	}
	if p.At(k.Of(jskinds.KwIn)) || p.AtKeyword("of") {
		p.Bump()
		parseAssignExpr(p, k, ext)
	} else {
		p.Expect(syntax.SEMICOLON)
		if !p.At(syntax.SEMICOLON) {
			parseExpr(p, k, ext)
		}
		p.Expect(syntax.SEMICOLON)
		if !p.At(syntax.RPAREN) {
			parseExpr(p, k, ext)
		}
	}
	p.Expect(syntax.RPAREN)
	parseStatement(p, k, ext)
	m.Complete(p, k.Of(jskinds.ForStatement))
}

func parseWhile(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwWhile))
	p.Expect(syntax.LPAREN)
	parseExpr(p, k, ext)
	p.Expect(syntax.RPAREN)
	parseStatement(p, k, ext)
	m.Complete(p, k.Of(jskinds.WhileStatement))
}

func parseDoWhile(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwDo))
	parseStatement(p, k, ext)
	p.Expect(k.Of(jskinds.KwWhile))
	p.Expect(syntax.LPAREN)
	parseExpr(p, k, ext)
	p.Expect(syntax.RPAREN)
	expectSemi(p)
	m.Complete(p, k.Of(jskinds.DoWhileStatement))
}

func parseBreakContinue(p *parser.Parser, k *jskinds.Kinds, kind jskinds.Suffix) {
	m := p.Start()
	p.Bump()
	if p.At(syntax.IDENT) {
		p.Bump()
	}
	expectSemi(p)
	m.Complete(p, k.Of(kind))
}

func parseReturn(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwReturn))
	if !p.At(syntax.SEMICOLON) && !p.At(syntax.RBRACE) && !p.AtEOF() {
		parseExpr(p, k, ext)
	}
	expectSemi(p)
	m.Complete(p, k.Of(jskinds.ReturnStatement))
}

func parseThrow(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwThrow))
	parseExpr(p, k, ext)
	expectSemi(p)
	m.Complete(p, k.Of(jskinds.ThrowStatement))
}

func parseTry(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwTry))
	parseBlock(p, k, ext)
	if p.At(k.Of(jskinds.KwCatch)) {
		c := p.Start()
		p.Bump()
		if p.At(syntax.LPAREN) {
			p.Bump()
			expectBindingIdentifier(p, k)
			p.Expect(syntax.RPAREN)
		}
		parseBlock(p, k, ext)
		c.Complete(p, k.Of(jskinds.CatchClause))
	}
	if p.At(k.Of(jskinds.KwFinally)) {
		p.Bump()
		parseBlock(p, k, ext)
	}
	m.Complete(p, k.Of(jskinds.TryStatement))
}

func parseSwitch(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwSwitch))
	p.Expect(syntax.LPAREN)
	parseExpr(p, k, ext)
	p.Expect(syntax.RPAREN)
	p.Expect(syntax.LBRACE)
	for !p.At(syntax.RBRACE) && !p.AtEOF() {
		c := p.Start()
		if p.At(k.Of(jskinds.KwCase)) {
			p.Bump()
			parseExpr(p, k, ext)
		} else {
			p.Expect(k.Of(jskinds.KwDefault))
		}
		p.Expect(syntax.COLON)
		for !p.At(k.Of(jskinds.KwCase)) && !p.At(k.Of(jskinds.KwDefault)) && !p.At(syntax.RBRACE) && !p.AtEOF() {
			parseStatement(p, k, ext)
		}
		c.Complete(p, k.Of(jskinds.SwitchCase))
	}
	p.Expect(syntax.RBRACE)
	m.Complete(p, k.Of(jskinds.SwitchStatement))
}

func parseImport(p *parser.Parser, k *jskinds.Kinds) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwImport))
	if p.At(syntax.STRING) {
		p.Bump()
		expectSemi(p)
		m.Complete(p, k.Of(jskinds.ImportDeclaration))
		return
	}
	for !p.At(syntax.SEMICOLON) && !p.AtEOF() && !p.AtKeyword("from") {
		switch {
		case p.At(syntax.LBRACE):
			p.Bump()
			for !p.At(syntax.RBRACE) && !p.AtEOF() {
				s := p.Start()
				expectBindingIdentifier(p, k)
				if p.AtKeyword("as") {
					p.Bump()
					expectBindingIdentifier(p, k)
				}
				s.Complete(p, k.Of(jskinds.ImportSpecifier))
				if p.At(syntax.COMMA) {
					p.Bump()
				}
			}
			p.Expect(syntax.RBRACE)
		case p.At(syntax.STAR):
			p.Bump()
			if p.AtKeyword("as") {
				p.Bump()
			}
			expectBindingIdentifier(p, k)
		case p.At(syntax.IDENT):
			expectBindingIdentifier(p, k)
			if p.At(syntax.COMMA) {
				p.Bump()
			}
		default:
			p.BumpAny()
		}
	}
	if p.AtKeyword("from") {
		p.Bump()
	}
	if p.At(syntax.STRING) {
		p.Bump()
	}
	expectSemi(p)
	m.Complete(p, k.Of(jskinds.ImportDeclaration))
}

func parseExport(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwExport))
	if p.At(k.Of(jskinds.KwDefault)) {
		p.Bump()
		switch {
		case p.At(k.Of(jskinds.KwFunction)):
			parseFunctionDeclaration(p, k, ext)
		case p.At(k.Of(jskinds.KwClass)):
			parseClassDeclaration(p, k, ext)
		default:
			parseAssignExpr(p, k, ext)
			expectSemi(p)
		}
		m.Complete(p, k.Of(jskinds.ExportDefaultDeclaration))
		return
	}
	if p.At(syntax.LBRACE) {
		p.Bump()
		for !p.At(syntax.RBRACE) && !p.AtEOF() {
			s := p.Start()
			expectBindingIdentifier(p, k)
			if p.AtKeyword("as") {
				p.Bump()
				expectBindingIdentifier(p, k)
			}
			s.Complete(p, k.Of(jskinds.ExportSpecifier))
			if p.At(syntax.COMMA) {
				p.Bump()
			}
		}
		p.Expect(syntax.RBRACE)
		if p.AtKeyword("from") {
			p.Bump()
			p.Expect(syntax.STRING)
		}
		expectSemi(p)
		m.Complete(p, k.Of(jskinds.ExportNamedDeclaration))
		return
	}
	parseStatement(p, k, ext)
	m.Complete(p, k.Of(jskinds.ExportNamedDeclaration))
}

func parseExpressionStatement(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	parseExpr(p, k, ext)
	expectSemi(p)
	m.Complete(p, k.Of(jskinds.ExpressionStatement))
}

func expectSemi(p *parser.Parser) {
	if p.At(syntax.SEMICOLON) {
		p.Bump()
	}
	// Automatic semicolon insertion is approximated permissively: a missing
	// ';' is never reported as an error, wherever it occurs.
}

// --- expressions ---------------------------------------------------------

func parseExpr(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	lhs := parseAssignExpr(p, k, ext)
	if !p.At(syntax.COMMA) {
		return lhs
	}
	m := lhs.Precede(p)
	for p.At(syntax.COMMA) {
		p.Bump()
		parseAssignExpr(p, k, ext)
	}
	return m.Complete(p, k.Of(jskinds.SequenceExpression))
}

var assignOps = map[syntax.Kind]bool{
	syntax.EQ: true, syntax.PLUSEQ: true, syntax.MINUSEQ: true, syntax.STAREQ: true,
	syntax.SLASHEQ: true, syntax.PERCENTEQ: true, syntax.STARSTAREQ: true,
	syntax.AMPAMPEQ: true, syntax.PIPEPIPEEQ: true, syntax.QUESTIONQUESTIONEQ: true,
}

func parseAssignExpr(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	if isArrowFunctionAhead(p, k) {
		return parseArrowFunction(p, k, ext)
	}
	lhs := parseConditional(p, k, ext)
	if assignOps[p.Current()] {
		m := lhs.Precede(p)
		p.Bump()
		parseAssignExpr(p, k, ext)
		return m.Complete(p, k.Of(jskinds.AssignmentExpression))
	}
	return lhs
}

// isArrowFunctionAhead speculatively checks whether the upcoming tokens
// form an arrow function's parameter list (or a single bare identifier)
// followed by "=>", without committing to either interpretation — the
// "harder alternative first, speculate, fall back" pattern (§4.4) applied
// to the classic arrow-vs-parenthesized-expression ambiguity.
func isArrowFunctionAhead(p *parser.Parser, k *jskinds.Kinds) bool {
	if p.At(syntax.IDENT) && p.Nth(1) == syntax.ARROW {
		return true
	}
	if p.AtKeyword("async") && p.Nth(1) == syntax.IDENT && p.Nth(2) == syntax.ARROW {
		return true
	}
	if !p.At(syntax.LPAREN) && !(p.AtKeyword("async") && p.Nth(1) == syntax.LPAREN) {
		return false
	}
	cp := p.Checkpoint()
	if p.AtKeyword("async") {
		p.Bump()
	}
	p.Bump() // '('
	depth := 1
	for depth > 0 && !p.AtEOF() {
		switch p.Current() {
		case syntax.LPAREN:
			depth++
		case syntax.RPAREN:
			depth--
		}
		if depth == 0 {
			break
		}
		p.Bump()
	}
	if p.At(syntax.RPAREN) {
		p.Bump()
	}
	isArrow := p.At(syntax.ARROW)
	p.Rollback(cp)
	return isArrow
}

func parseArrowFunction(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	m := p.Start()
	if p.AtKeyword("async") {
		p.Bump()
	}
	if p.At(syntax.IDENT) {
		params := p.Start()
		inner := p.Start()
		expectBindingIdentifier(p, k)
		inner.Complete(p, k.Of(jskinds.Parameter))
		params.Complete(p, k.Of(jskinds.ParameterList))
	} else {
		parseParameterList(p, k, ext)
	}
	skipOptionalTypeAnnotation(p)
	p.Expect(syntax.ARROW)
	if p.At(syntax.LBRACE) {
		parseBlock(p, k, ext)
	} else {
		parseAssignExpr(p, k, ext)
	}
	return m.Complete(p, k.Of(jskinds.ArrowFunctionExpression))
}

func parseConditional(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	lhs := parseBinary(p, k, ext, 1)
	if !p.At(syntax.QUESTION) {
		return lhs
	}
	m := lhs.Precede(p)
	p.Bump()
	parseAssignExpr(p, k, ext)
	p.Expect(syntax.COLON)
	parseAssignExpr(p, k, ext)
	return m.Complete(p, k.Of(jskinds.ConditionalExpression))
}

type opInfo struct {
	prec       int
	rightAssoc bool
	logical    bool // ||, &&, ?? produce LogicalExpression instead of BinaryExpression
}

func binOpInfo(p *parser.Parser, k *jskinds.Kinds) (syntax.Kind, opInfo, bool) {
	cur := p.Current()
	table := map[syntax.Kind]opInfo{
		syntax.QUESTIONQUESTION: {1, false, true},
		syntax.PIPEPIPE:         {2, false, true},
		syntax.AMPAMP:           {3, false, true},
		syntax.PIPE:             {4, false, false},
		syntax.CARET:            {5, false, false},
		syntax.AMP:              {6, false, false},
		syntax.EQEQ:             {7, false, false},
		syntax.EQEQEQ:           {7, false, false},
		syntax.BANGEQ:           {7, false, false},
		syntax.BANGEQEQ:         {7, false, false},
		syntax.LT:               {8, false, false},
		syntax.GT:               {8, false, false},
		syntax.LTEQ:             {8, false, false},
		syntax.GTEQ:             {8, false, false},
		syntax.PLUS:             {9, false, false},
		syntax.MINUS:            {9, false, false},
		syntax.STAR:             {10, false, false},
		syntax.SLASH:            {10, false, false},
		syntax.PERCENT:          {10, false, false},
		syntax.STARSTAR:         {11, true, false},
	}
	if info, ok := table[cur]; ok {
		return cur, info, true
	}
	if cur == k.Of(jskinds.KwInstanceof) || cur == k.Of(jskinds.KwIn) {
		return cur, opInfo{prec: 8}, true
	}
	return 0, opInfo{}, false
}

// parseBinary is the precedence-climbing core (§4.3, §9): parse a unary
// operand, then repeatedly consume a binary operator whose precedence
// meets minPrec, wrapping the running left-hand side so the result is
// left-associative (right-associative operators recurse at the same
// precedence instead of precedence+1).
func parseBinary(p *parser.Parser, k *jskinds.Kinds, ext *Extensions, minPrec int) parser.CompletedMarker {
	lhs := parseUnary(p, k, ext)
	for {
		_, info, ok := binOpInfo(p, k)
		if !ok || info.prec < minPrec {
			return lhs
		}
		m := lhs.Precede(p)
		p.Bump()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		parseBinary(p, k, ext, nextMin)
		kind := jskinds.BinaryExpression
		resultKind := k.Of(kind)
		if info.logical {
			resultKind = k.Of(jskinds.LogicalExpression)
		}
		lhs = m.Complete(p, resultKind)
	}
}

func parseUnary(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	switch {
	case p.At(syntax.PLUS), p.At(syntax.MINUS), p.At(syntax.BANG), p.At(syntax.TILDE),
		p.At(k.Of(jskinds.KwTypeof)), p.At(k.Of(jskinds.KwVoid)), p.At(k.Of(jskinds.KwDelete)):
		m := p.Start()
		p.Bump()
		parseUnary(p, k, ext)
		return m.Complete(p, k.Of(jskinds.UnaryExpression))
	case p.At(syntax.PLUSPLUS), p.At(syntax.MINUSMINUS):
		m := p.Start()
		p.Bump()
		parseUnary(p, k, ext)
		return m.Complete(p, k.Of(jskinds.UpdateExpression))
	case p.At(k.Of(jskinds.KwAwait)):
		m := p.Start()
		p.Bump()
		parseUnary(p, k, ext)
		return m.Complete(p, k.Of(jskinds.UnaryExpression))
	default:
		return parsePostfix(p, k, ext)
	}
}

func parsePostfix(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	lhs := parseLeftHandSideExprMarker(p, k, ext)
	for {
		switch {
		case p.At(syntax.PLUSPLUS), p.At(syntax.MINUSMINUS):
			m := lhs.Precede(p)
			p.Bump()
			lhs = m.Complete(p, k.Of(jskinds.UpdateExpression))
		case ext != nil && ext.NonNull != 0 && p.At(syntax.BANG):
			m := lhs.Precede(p)
			p.Bump()
			lhs = m.Complete(p, ext.NonNull)
		case ext != nil && ext.AsExpr != 0 && p.AtKeyword("as"):
			m := lhs.Precede(p)
			p.Bump()
			skipTypeExpression(p)
			lhs = m.Complete(p, ext.AsExpr)
		default:
			return lhs
		}
	}
}

// skipTypeExpression consumes a bare type reference (identifier chain,
// optionally generic) after "as" — see skipOptionalTypeAnnotation's note:
// this grammar does not model TypeScript's type language itself.
func skipTypeExpression(p *parser.Parser) {
	if p.At(syntax.IDENT) {
		p.Bump()
		for p.At(syntax.DOT) {
			p.Bump()
			if p.At(syntax.IDENT) {
				p.Bump()
			}
		}
	}
	if p.At(syntax.LT) {
		depth := 0
		for !p.AtEOF() {
			switch p.Current() {
			case syntax.LT:
				depth++
			case syntax.GT:
				depth--
			}
			p.Bump()
			if depth == 0 {
				break
			}
		}
	}
}

// parseLeftHandSideExprMarker parses member/call/index chains rooted at a
// primary expression, returning the completed marker so postfix operators
// (update, TS non-null/as) can wrap it.
func parseLeftHandSideExprMarker(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	isNew := p.At(k.Of(jskinds.KwNew))
	var lhs parser.CompletedMarker
	if isNew {
		m := p.Start()
		p.Bump()
		parseLeftHandSideExprMarker(p, k, ext) // callee chain (without invoking the call itself)
		if p.At(syntax.LPAREN) {
			parseArgumentList(p, k, ext)
		}
		lhs = m.Complete(p, k.Of(jskinds.NewExpression))
	} else {
		lhs = parsePrimary(p, k, ext)
	}
	for {
		switch {
		case p.At(syntax.DOT):
			m := lhs.Precede(p)
			p.Bump()
			expectBindingIdentifier(p, k)
			lhs = m.Complete(p, k.Of(jskinds.MemberExpression))
		case p.At(syntax.QUESTIONDOT):
			m := lhs.Precede(p)
			p.Bump()
			if p.At(syntax.LPAREN) {
				parseArgumentList(p, k, ext)
				lhs = m.Complete(p, k.Of(jskinds.CallExpression))
			} else {
				expectBindingIdentifier(p, k)
				lhs = m.Complete(p, k.Of(jskinds.MemberExpression))
			}
		case p.At(syntax.LBRACKET):
			m := lhs.Precede(p)
			p.Bump()
			parseExpr(p, k, ext)
			p.Expect(syntax.RBRACKET)
			lhs = m.Complete(p, k.Of(jskinds.MemberExpression))
		case p.At(syntax.LPAREN):
			m := lhs.Precede(p)
			parseArgumentList(p, k, ext)
			lhs = m.Complete(p, k.Of(jskinds.CallExpression))
		case p.At(syntax.BACKTICK):
			// tagged template: attach the template literal as a trailing child.
			m := lhs.Precede(p)
			parseTemplateLiteral(p, k, ext)
			lhs = m.Complete(p, k.Of(jskinds.CallExpression))
		default:
			return lhs
		}
	}
}

// parseLeftHandSideExpr is the statement-level entry point (e.g. `extends`
// clauses) that only needs the completed node, not postfix wrapping.
func parseLeftHandSideExpr(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	return parseLeftHandSideExprMarker(p, k, ext)
}

func parseArgumentList(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	m := p.Start()
	p.Expect(syntax.LPAREN)
	for !p.At(syntax.RPAREN) && !p.AtEOF() {
		if p.At(syntax.DOTDOTDOT) {
			s := p.Start()
			p.Bump()
			parseAssignExpr(p, k, ext)
			s.Complete(p, k.Of(jskinds.SpreadElement))
		} else {
			parseAssignExpr(p, k, ext)
		}
		if p.At(syntax.COMMA) {
			p.Bump()
			continue
		}
		break
	}
	p.Expect(syntax.RPAREN)
	m.Complete(p, k.Of(jskinds.ArgumentList))
}

func parsePrimary(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	switch {
	case p.At(syntax.NUMBER):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.NumericLiteral))
	case p.At(syntax.STRING):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.StringLiteral))
	case p.At(syntax.REGEXP):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.RegexLiteral))
	case p.At(k.Of(jskinds.KwTrue)), p.At(k.Of(jskinds.KwFalse)):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.BooleanLiteral))
	case p.At(k.Of(jskinds.KwNull)):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.NullLiteral))
	case p.At(k.Of(jskinds.KwThis)), p.At(k.Of(jskinds.KwSuper)), p.At(k.Of(jskinds.KwUndefined)):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.Identifier))
	case p.At(syntax.IDENT):
		m := p.Start()
		p.Bump()
		return m.Complete(p, k.Of(jskinds.Identifier))
	case p.At(syntax.BACKTICK):
		return parseTemplateLiteral(p, k, ext)
	case p.At(syntax.LPAREN):
		m := p.Start()
		p.Bump()
		parseExpr(p, k, ext)
		p.Expect(syntax.RPAREN)
		return m.Complete(p, k.Of(jskinds.ParenthesizedExpression))
	case p.At(syntax.LBRACKET):
		return parseArrayLiteral(p, k, ext)
	case p.At(syntax.LBRACE):
		return parseObjectLiteral(p, k, ext)
	case p.At(k.Of(jskinds.KwFunction)):
		return parseFunctionExpr(p, k, ext)
	case p.AtKeyword("async") && p.Nth(1) == k.Of(jskinds.KwFunction):
		p.Bump()
		return parseFunctionExpr(p, k, ext)
	case p.At(k.Of(jskinds.KwClass)):
		m := p.Start()
		parseClassDeclaration(p, k, ext)
		return m.Complete(p, k.Of(jskinds.ClassDeclaration))
	default:
		m := p.Start()
		p.Error("expected expression")
		if !p.AtEOF() {
			p.BumpAny()
		}
		return m.Complete(p, k.Of(jskinds.ErrorNode))
	}
}

func parseFunctionExpr(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	m := p.Start()
	p.Expect(k.Of(jskinds.KwFunction))
	if p.At(syntax.STAR) {
		p.Bump()
	}
	if p.At(syntax.IDENT) {
		expectBindingIdentifier(p, k)
	}
	parseParameterList(p, k, ext)
	parseBlock(p, k, ext)
	return m.Complete(p, k.Of(jskinds.FunctionExpression))
}

func parseArrayLiteral(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	m := p.Start()
	p.Expect(syntax.LBRACKET)
	for !p.At(syntax.RBRACKET) && !p.AtEOF() {
		if p.At(syntax.COMMA) {
			p.Bump()
			continue
		}
		if p.At(syntax.DOTDOTDOT) {
			s := p.Start()
			p.Bump()
			parseAssignExpr(p, k, ext)
			s.Complete(p, k.Of(jskinds.SpreadElement))
		} else {
			parseAssignExpr(p, k, ext)
		}
		if p.At(syntax.COMMA) {
			p.Bump()
		}
	}
	p.Expect(syntax.RBRACKET)
	return m.Complete(p, k.Of(jskinds.ArrayExpression))
}

func parseObjectLiteral(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	m := p.Start()
	p.Expect(syntax.LBRACE)
	for !p.At(syntax.RBRACE) && !p.AtEOF() {
		prop := p.Start()
		if p.At(syntax.DOTDOTDOT) {
			p.Bump()
			parseAssignExpr(p, k, ext)
			prop.Complete(p, k.Of(jskinds.SpreadElement))
		} else {
			isModifier := p.AtKeyword("get") || p.AtKeyword("set") || p.AtKeyword("async")
			if isModifier && p.Nth(1) != syntax.COLON && p.Nth(1) != syntax.COMMA && p.Nth(1) != syntax.RBRACE && p.Nth(1) != syntax.LPAREN {
				p.Bump()
			}
			if p.At(syntax.STAR) {
				p.Bump() // generator method
			}
			parsePropertyKey(p, k, ext)
			switch {
			case p.At(syntax.LPAREN): // method shorthand
				parseParameterList(p, k, ext)
				parseBlock(p, k, ext)
			case p.At(syntax.COLON):
				p.Bump()
				parseAssignExpr(p, k, ext)
			default:
				// shorthand { x }
			}
			prop.Complete(p, k.Of(jskinds.Property))
		}
		if p.At(syntax.COMMA) {
			p.Bump()
		}
	}
	p.Expect(syntax.RBRACE)
	return m.Complete(p, k.Of(jskinds.ObjectExpression))
}

func parsePropertyKey(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) {
	switch {
	case p.At(syntax.LBRACKET):
		p.Bump()
		parseAssignExpr(p, k, ext)
		p.Expect(syntax.RBRACKET)
	case p.At(syntax.STRING), p.At(syntax.NUMBER):
		p.Bump()
	default:
		expectBindingIdentifier(p, k)
	}
}

// parseTemplateLiteral consumes a full `chunk${expr}chunk` literal,
// reparsing each interpolation through the full expression grammar.
func parseTemplateLiteral(p *parser.Parser, k *jskinds.Kinds, ext *Extensions) parser.CompletedMarker {
	m := p.Start()
	p.Expect(syntax.BACKTICK)
	for {
		if p.At(syntax.TEMPLATE_CHUNK) {
			c := p.Start()
			p.Bump()
			c.Complete(p, k.Of(jskinds.TemplateChunk))
			continue
		}
		if p.At(syntax.DOLLARLBRACE) {
			s := p.Start()
			p.Bump()
			parseExpr(p, k, ext)
			p.Expect(syntax.RBRACE)
			s.Complete(p, k.Of(jskinds.TemplateSubstitution))
			continue
		}
		break
	}
	p.Expect(syntax.BACKTICK)
	return m.Complete(p, k.Of(jskinds.TemplateLiteral))
}

// ParseNumericLiteralValue converts a numeric literal's text to its value,
// reporting false when strconv.ParseFloat rejects the text.
func ParseNumericLiteralValue(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	return v, err == nil
}

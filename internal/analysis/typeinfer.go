package analysis

import (
	"github.com/oxhq/webcst/internal/grammar/jskinds"
	"github.com/oxhq/webcst/internal/grammar/ts"
	"github.com/oxhq/webcst/internal/syntax"
)

// InferExpressionType is a best-effort, single-pass type inference over one
// expression node (§4.7): "literals and unary forms produce exact types;
// new, function literals, and class expressions produce hints; unknown
// forms return Any; TS non-null strips Null/Undefined from a union,
// collapsing single-element unions. No cross-expression flow." It is total
// (never panics, per §7) and lax (ambiguity always resolves to Any, never
// an error).
func InferExpressionType(expr *syntax.Node, k *jskinds.Kinds) Type {
	if expr == nil {
		return Any
	}
	switch expr.Kind() {
	case k.Of(jskinds.NumericLiteral):
		return Number
	case k.Of(jskinds.StringLiteral), k.Of(jskinds.TemplateLiteral):
		return String
	case k.Of(jskinds.BooleanLiteral):
		return Boolean
	case k.Of(jskinds.NullLiteral):
		return Null
	case k.Of(jskinds.RegexLiteral):
		return InstanceOf("RegExp")
	case k.Of(jskinds.Identifier):
		if expr.TokenText() == "undefined" {
			return Undefined
		}
		return Any
	case k.Of(jskinds.ArrayExpression):
		return ArrayOf(Unknown)
	case k.Of(jskinds.ObjectExpression):
		return Object
	case k.Of(jskinds.UnaryExpression):
		return inferUnary(expr, k)
	case k.Of(jskinds.NewExpression):
		return HintOf("new")
	case k.Of(jskinds.FunctionExpression), k.Of(jskinds.ArrowFunctionExpression):
		return HintOf("function")
	case k.Of(jskinds.ClassDeclaration):
		return HintOf("class")
	case k.Of(jskinds.ParenthesizedExpression):
		return InferExpressionType(firstNonTokenChild(expr), k)
	case ts.NonNullExpression:
		return StripNonNull(InferExpressionType(firstNonTokenChild(expr), k))
	default:
		return Any
	}
}

// inferUnary covers the unary operator forms §4.7 calls out as producing
// exact types: typeof, void, logical-not, and numeric negation/plus on a
// numeric operand. The operator is always the leading token (parseUnary
// bumps it before recursing); the operand always arrives as a wrapped node,
// never a bare token (parsePrimary wraps every literal and identifier).
func inferUnary(expr *syntax.Node, k *jskinds.Kinds) Type {
	op := ""
	for _, c := range expr.Children() {
		if c.Kind().IsTrivia() || !c.IsToken() {
			continue
		}
		op = c.Text()
		break
	}
	operand := firstNonTokenChild(expr)
	switch op {
	case "typeof":
		return String
	case "void":
		return Undefined
	case "!":
		return Boolean
	case "-", "+":
		if InferExpressionType(operand, k).Kind == TyNumber {
			return Number
		}
		return Any
	case "delete":
		return Boolean
	default:
		return Any
	}
}

// firstNonTokenChild returns n's first child that is neither trivia nor a
// bare token — i.e. the first wrapped sub-expression. ParenthesizedExpression
// ([LPAREN, expr, RPAREN]) and NonNullExpression ([expr, BANG]) both need
// this rather than a plain first-non-trivia scan, since the former's
// leading non-trivia child is the LPAREN token itself.
func firstNonTokenChild(n *syntax.Node) *syntax.Node {
	for _, c := range n.Children() {
		if c.Kind().IsTrivia() || c.IsToken() {
			continue
		}
		return c
	}
	return nil
}

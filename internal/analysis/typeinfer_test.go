package analysis_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/analysis"
	"github.com/oxhq/webcst/internal/grammar/js"
	"github.com/oxhq/webcst/internal/grammar/ts"
	"github.com/oxhq/webcst/internal/syntax"
)

// parseJSExpr parses text as a standalone JS expression and returns the
// expression node itself (ParseExpression wraps it directly in a Program
// with no intervening statement node).
func parseJSExpr(t *testing.T, text string) *syntax.Node {
	t.Helper()
	tree := js.ParseExpression(text, js.Kinds, nil)
	require.False(t, tree.HasErrors(), "unexpected syntax errors for %q: %v", text, tree.Errors())
	for _, c := range tree.Root().Children() {
		if !c.Kind().IsTrivia() {
			return c
		}
	}
	t.Fatalf("no expression node found for %q", text)
	return nil
}

func parseTSExpr(t *testing.T, text string) *syntax.Node {
	t.Helper()
	tree := ts.ParseExpression(text)
	require.False(t, tree.HasErrors(), "unexpected syntax errors for %q: %v", text, tree.Errors())
	for _, c := range tree.Root().Children() {
		if !c.Kind().IsTrivia() {
			return c
		}
	}
	t.Fatalf("no expression node found for %q", text)
	return nil
}

func TestInferExpressionTypeLiterals(t *testing.T) {
	cases := map[string]analysis.Type{
		"42":         analysis.Number,
		`"hi"`:       analysis.String,
		"`hi ${1}`":  analysis.String,
		"true":       analysis.Boolean,
		"false":      analysis.Boolean,
		"null":       analysis.Null,
		"undefined":  analysis.Undefined,
		"[1, 2]":     analysis.ArrayOf(analysis.Unknown),
		"({a: 1})":   analysis.Object,
	}
	for src, want := range cases {
		expr := parseJSExpr(t, src)
		got := analysis.InferExpressionType(expr, js.Kinds)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("InferExpressionType(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestInferExpressionTypeUnary(t *testing.T) {
	cases := map[string]analysis.Type{
		"typeof x": analysis.String,
		"void x":   analysis.Undefined,
		"!x":       analysis.Boolean,
		"-1":       analysis.Number,
		"+1":       analysis.Number,
		"delete x": analysis.Boolean,
	}
	for src, want := range cases {
		expr := parseJSExpr(t, src)
		got := analysis.InferExpressionType(expr, js.Kinds)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("InferExpressionType(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestInferExpressionTypeNegationOfNonNumericIsAny(t *testing.T) {
	expr := parseJSExpr(t, `-"x"`)
	got := analysis.InferExpressionType(expr, js.Kinds)
	require.Equal(t, analysis.Any, got)
}

func TestInferExpressionTypeHints(t *testing.T) {
	cases := map[string]string{
		"new Foo()":     "new",
		"function() {}": "function",
		"() => 1":       "function",
	}
	for src, hint := range cases {
		expr := parseJSExpr(t, src)
		got := analysis.InferExpressionType(expr, js.Kinds)
		require.Equal(t, analysis.TyHint, got.Kind, "for %q", src)
		require.Equal(t, hint, got.Hint, "for %q", src)
	}
}

func TestInferExpressionTypeIdentifierIsAny(t *testing.T) {
	expr := parseJSExpr(t, "x")
	got := analysis.InferExpressionType(expr, js.Kinds)
	require.Equal(t, analysis.Any, got)
}

// TestInferExpressionTypeParenthesizedUnwraps covers the fix for a real bug:
// a parenthesized expression's leading non-trivia child is the LPAREN token
// itself, not the wrapped expression, so inference must skip past it rather
// than naively taking the first non-trivia child.
func TestInferExpressionTypeParenthesizedUnwraps(t *testing.T) {
	expr := parseJSExpr(t, "(42)")
	got := analysis.InferExpressionType(expr, js.Kinds)
	require.Equal(t, analysis.Number, got)
}

func TestInferExpressionTypeParenthesizedNestedUnary(t *testing.T) {
	expr := parseJSExpr(t, "(!x)")
	got := analysis.InferExpressionType(expr, js.Kinds)
	require.Equal(t, analysis.Boolean, got)
}

func TestInferExpressionTypeNonNullOnIdentifierIsAny(t *testing.T) {
	expr := parseTSExpr(t, "x!")
	got := analysis.InferExpressionType(expr, ts.Kinds)
	require.Equal(t, analysis.Any, got) // bare identifier under `!` strips to Any unchanged
}

func TestInferExpressionTypeNilIsAny(t *testing.T) {
	got := analysis.InferExpressionType(nil, js.Kinds)
	require.Equal(t, analysis.Any, got)
}

package vue

import (
	"github.com/oxhq/webcst/internal/grammar/html"
	"github.com/oxhq/webcst/internal/syntax"
)

// delimiters installs Vue's mustache interpolation pattern onto the shared
// HTML grammar (§4.4).
var delimiters = html.Delimiters{Open: "{{", Close: "}}"}

// Parse runs the HTML grammar over a Vue single-file component, using Vue's
// own Kinds table and "{{"/"}}" template-delimiter recognition. The
// resulting tree's top level is a sequence of <template>, <script>, and
// <style> root blocks; internal/analysis owns deciding whether that
// sequence is well-formed (§4.4, §4.7: "vue component should contain
// exactly one root template").
func Parse(text string) *syntax.Tree {
	return html.Parse(text, Kinds, delimiters)
}

// Delimiters exposes the installed mustache pattern so internal/analysis
// can strip it back off a DELIMITED token's text without duplicating the
// "{{"/"}}" literals.
func Delimiters() html.Delimiters { return delimiters }

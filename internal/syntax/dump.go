package syntax

import (
	"fmt"
	"strings"
)

// Dump renders t in the deterministic format used by the test suite (§6):
//
//	KIND@[start; end) [ "literal-text" when leaf ]
//	  CHILD_KIND@[s; e)
//	  ...
//
// with two spaces of indentation per depth level, and `err: `msg`` lines
// appended at the depth of the token that contains each error's location.
func Dump(t *Tree) string {
	var b strings.Builder
	root := t.Root()
	dumpNode(&b, root, 0, t.errors)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, depth int, errs []SyntaxError) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(n.Kind().DebugRepr())
	b.WriteByte('@')
	b.WriteString(n.Range().String())
	if n.IsToken() {
		b.WriteString(" \"")
		b.WriteString(escapeDumpText(n.Text()))
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	for _, e := range errs {
		loc := errorOffset(e.Location)
		if n.Range().Contains(loc) || (n.Range().IsEmpty() && n.Range().Start == loc) {
			if n.IsToken() || coveringChildExists(n, loc) == false {
				b.WriteString(strings.Repeat("  ", depth+1))
				fmt.Fprintf(b, "err: `%s`\n", e.Message)
			}
		}
	}

	for _, c := range n.Children() {
		dumpNode(b, c, depth+1, errs)
	}
}

func coveringChildExists(n *Node, loc uint32) bool {
	for _, c := range n.Children() {
		if c.Range().Contains(loc) {
			return true
		}
	}
	return false
}

func errorOffset(l Location) uint32 {
	if l.IsRange {
		return l.Range.Start
	}
	return l.Offset
}

func escapeDumpText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

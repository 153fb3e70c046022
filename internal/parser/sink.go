package parser

import "github.com/oxhq/webcst/internal/syntax"

// frame accumulates one open node's children while events replay.
type frame struct {
	kind     syntax.Kind
	children []syntax.GreenElement
}

// BuildTree replays a finished Parser's event stream into a lossless
// syntax.Tree. text must be the exact source the tokens were lexed from.
//
// Forward-parent chains (built by CompletedMarker.Precede, used for
// precedence-climbing wraps) are resolved here: walking from a Start event
// through its forward_parent offsets collects the full nesting — innermost
// (the originally completed node) first, each subsequent link wrapping the
// one before it — and opens them outer-first so the wrap ends up as the
// true parent in the materialized tree.
func BuildTree(text string, events []event) *syntax.Tree {
	b := syntax.NewBuilder()
	var stack []frame
	var root syntax.GreenElement
	var rootFrame *frame
	var errs []syntax.SyntaxError
	offset := 0

	for i := 0; i < len(events); i++ {
		ev := events[i]
		switch ev.kind {
		case evStart:
			if ev.nodeKind == tombstoneKind {
				continue
			}
			var kinds []syntax.Kind
			kinds = append(kinds, ev.nodeKind)
			idx := i
			fp := ev.forwardParent
			for fp != 0 {
				idx += fp
				if events[idx].nodeKind != tombstoneKind {
					kinds = append(kinds, events[idx].nodeKind)
				}
				fp = events[idx].forwardParent
				events[idx].nodeKind = tombstoneKind // consumed; the loop must not reopen it
			}
			for j := len(kinds) - 1; j >= 0; j-- {
				stack = append(stack, frame{kind: kinds[j]})
			}

		case evFinish:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootFrame = &top // built after the loop, once trailing tokens are in
				continue
			}
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, b.Node(top.kind, top.children))

		case evToken:
			tok := b.Token(ev.tokenKind, text[offset:offset+ev.tokenLen])
			offset += ev.tokenLen
			if len(stack) == 0 {
				if rootFrame != nil {
					rootFrame.children = append(rootFrame.children, tok)
				} else {
					root = tok
				}
				continue
			}
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, tok)

		case evError:
			errs = append(errs, syntax.SyntaxError{Message: ev.msg, Location: syntax.OffsetLocation(uint32(offset))})
		}
	}

	if rootFrame != nil {
		root = b.Node(rootFrame.kind, rootFrame.children)
	}
	return syntax.NewTree(root, errs)
}

package parser

import (
	"fmt"

	"github.com/oxhq/webcst/internal/lexer"
	"github.com/oxhq/webcst/internal/syntax"
)

// maxSteps bounds runaway parsing (a grammar rule that never advances the
// cursor would otherwise spin forever). Hitting it is a grammar bug, not a
// user-triggerable condition, so it panics rather than erroring.
const maxSteps = 10_000_000

// maxRollbackSize bounds how much event-stream speculation a single
// Checkpoint/Rollback pair may discard. A backtracking rule that drifts
// this far without committing is restructured, not patched around.
const maxRollbackSize = 100_000

// Parser drives one grammar's token stream into an event stream a Sink
// later replays into a syntax.Tree. Trivia (whitespace, comments) is
// invisible to lookahead (Nth/At) but preserved losslessly: it rides along
// with whichever real token follows it and is emitted to the sink first.
type Parser struct {
	text string
	raw  []lexer.Token // every token, including trivia
	view []int         // indices into raw of non-trivia tokens, in order

	rawCursor int // next raw index not yet turned into a Token event
	viewPos   int // index into view: the next not-yet-bumped token

	events []event
	steps  int
}

// New builds a Parser over text's already-lexed token stream.
func New(text string, tokens []lexer.Token) *Parser {
	p := &Parser{text: text, raw: tokens}
	for i, t := range tokens {
		if !t.Kind.IsTrivia() && t.Kind != syntax.EOF {
			p.view = append(p.view, i)
		}
	}
	return p
}

func (p *Parser) tick() {
	p.steps++
	if p.steps > maxSteps {
		panic("parser: exceeded maximum step count; a grammar rule is not advancing the cursor")
	}
}

// Nth returns the kind of the n-th upcoming non-trivia token (0 = current),
// or syntax.EOF past the end of input.
func (p *Parser) Nth(n int) syntax.Kind {
	p.tick()
	idx := p.viewPos + n
	if idx >= len(p.view) {
		return syntax.EOF
	}
	return p.raw[p.view[idx]].Kind
}

// Current is shorthand for Nth(0).
func (p *Parser) Current() syntax.Kind { return p.Nth(0) }

// At reports whether the current token has the given kind.
func (p *Parser) At(kind syntax.Kind) bool { return p.Current() == kind }

// AtAny reports whether the current token is a member of set.
func (p *Parser) AtAny(set TokenSet) bool { return set.Contains(p.Current()) }

// AtKeyword reports whether the current token is an identifier whose text
// equals word — the mechanism by which contextual keywords (as, from, get,
// set, of, async, and HTML/Vue's analogues) are recognized positionally
// instead of getting a dedicated Kind (§9).
func (p *Parser) AtKeyword(word string) bool {
	if p.viewPos >= len(p.view) {
		return false
	}
	rawIdx := p.view[p.viewPos]
	if p.raw[rawIdx].Kind != syntax.IDENT {
		return false
	}
	return p.tokenText(rawIdx) == word
}

// NthText returns the source text of the n-th upcoming non-trivia token
// (0 = current), or "" past the end of input — used by grammars that must
// inspect a token's text beyond its kind, e.g. HTML tag-name matching for
// open/close recovery.
func (p *Parser) NthText(n int) string {
	idx := p.viewPos + n
	if idx >= len(p.view) {
		return ""
	}
	return p.tokenText(p.view[idx])
}

// AtEOF reports whether every non-trivia token has been consumed.
func (p *Parser) AtEOF() bool { return p.viewPos >= len(p.view) }

// IsJointToNext reports whether no trivia (and so no source text at all)
// separates the current token from the next one — used by grammars that
// must distinguish e.g. `a.b` from `a . b`, or a tagged template from a
// plain call followed by a backtick string.
func (p *Parser) IsJointToNext() bool {
	if p.viewPos+1 >= len(p.view) {
		return false
	}
	cur := p.view[p.viewPos]
	nxt := p.view[p.viewPos+1]
	return nxt == cur+1
}

// Bump consumes the current token (plus any leading trivia not yet
// emitted), appending Token events for each, and advances the cursor. It
// panics if called at EOF — callers must check AtEOF or At(EOF) first.
func (p *Parser) Bump() {
	p.tick()
	if p.viewPos >= len(p.view) {
		panic("parser: Bump called at end of input")
	}
	target := p.view[p.viewPos]
	for p.rawCursor <= target {
		t := p.raw[p.rawCursor]
		p.events = append(p.events, event{kind: evToken, tokenKind: t.Kind, tokenLen: t.Len})
		p.rawCursor++
	}
	p.viewPos++
}

// BumpAny is Bump with no kind check — used in error-recovery rules that
// consume one token no matter what it is.
func (p *Parser) BumpAny() { p.Bump() }

// Expect bumps the current token if it matches kind, otherwise records an
// error and leaves the cursor in place for recovery. Reports whether it
// matched.
func (p *Parser) Expect(kind syntax.Kind) bool {
	if p.At(kind) {
		p.Bump()
		return true
	}
	p.Error(fmt.Sprintf("expected %s", kind.DebugRepr()))
	return false
}

// Error records a diagnostic without consuming anything. Its location is
// the end of the last consumed token, before any trivia that precedes the
// current token.
func (p *Parser) Error(msg string) {
	p.events = append(p.events, event{kind: evError, msg: msg})
}

// Start opens a new node. The returned Marker must be completed or
// abandoned before parsing finishes.
func (p *Parser) Start() Marker {
	p.events = append(p.events, event{kind: evStart, nodeKind: tombstoneKind})
	return Marker{pos: len(p.events) - 1}
}

// Complete closes kind's node, covering every token and child node opened
// since the matching Start.
func (m Marker) Complete(p *Parser, kind syntax.Kind) CompletedMarker {
	if m.resolved {
		panic("parser: marker completed twice")
	}
	m.resolved = true
	p.events[m.pos].nodeKind = kind
	p.events = append(p.events, event{kind: evFinish})
	return CompletedMarker{pos: m.pos, kind: kind}
}

// Abandon discards the node without closing it; anything parsed since
// Start becomes a direct child of the enclosing node instead.
func (m Marker) Abandon(p *Parser) {
	if m.resolved {
		panic("parser: marker abandoned after completion")
	}
	m.resolved = true
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
		return
	}
	p.events[m.pos].nodeKind = tombstoneKind
}

// Precede opens a new node that will become c's parent once completed —
// the mechanism precedence climbing uses to wrap an already-parsed
// left-hand side in a BinaryExpression/LogicalExpression/etc. after seeing
// the operator token.
func (c CompletedMarker) Precede(p *Parser) Marker {
	newMarker := p.Start()
	p.events[c.pos].forwardParent = newMarker.pos - c.pos
	return newMarker
}

// Checkpoint captures the kernel's position for a bounded speculative
// parse. Use Rollback to undo everything parsed since, or simply continue
// (no explicit "commit" call is needed — the events stay if never rolled
// back).
type Checkpoint struct {
	viewPos   int
	rawCursor int
	eventLen  int
}

// Checkpoint snapshots the current parse position.
func (p *Parser) Checkpoint() Checkpoint {
	return Checkpoint{viewPos: p.viewPos, rawCursor: p.rawCursor, eventLen: len(p.events)}
}

// Rollback restores the kernel to cp, discarding every token and event
// consumed since. Panics if the discarded span exceeds maxRollbackSize —
// a speculative rule drifting that far belongs in its own grammar
// function, not a backtrack.
func (p *Parser) Rollback(cp Checkpoint) {
	if len(p.events)-cp.eventLen > maxRollbackSize {
		panic("parser: rollback span exceeds maximum; restructure the speculative rule")
	}
	p.viewPos = cp.viewPos
	p.rawCursor = cp.rawCursor
	p.events = p.events[:cp.eventLen]
}

func (p *Parser) tokenText(rawIdx int) string {
	start := 0
	for i := 0; i < rawIdx; i++ {
		start += p.raw[i].Len
	}
	return p.text[start : start+p.raw[rawIdx].Len]
}

// Finish flushes any trailing trivia as Token events and returns the
// completed event stream for a Sink to replay.
func (p *Parser) Finish() []event {
	for p.rawCursor < len(p.raw) {
		t := p.raw[p.rawCursor]
		p.events = append(p.events, event{kind: evToken, tokenKind: t.Kind, tokenLen: t.Len})
		p.rawCursor++
	}
	return p.events
}

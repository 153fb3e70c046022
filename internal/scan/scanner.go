// Package scan implements the character cursor every lexer is built on
// (§4.1): an immutable view of the remaining input plus a cursor length,
// with peek/bump primitives that never allocate and never fail — queries
// past the end of input simply return zero values.
package scan

import "unicode/utf8"

// Scanner is cheap to copy: cloning it (value semantics) is how speculative
// lexing takes a lookahead snapshot without touching the underlying text.
type Scanner struct {
	text string
	pos  int
}

// New returns a Scanner positioned at the start of text.
func New(text string) Scanner {
	return Scanner{text: text}
}

// AtEOF reports whether the cursor has consumed all of text.
func (s Scanner) AtEOF() bool { return s.pos >= len(s.text) }

// Pos returns the current byte offset into text.
func (s Scanner) Pos() int { return s.pos }

// Current returns the rune at the cursor, or (0, false) at EOF.
func (s Scanner) Current() (rune, bool) { return s.Nth(0) }

// Nth returns the k-th rune ahead of the cursor (k=0 is Current), or
// (0, false) if that position is at or past EOF.
func (s Scanner) Nth(k int) (rune, bool) {
	rest := s.text[s.pos:]
	for range k {
		_, size := utf8.DecodeRuneInString(rest)
		if size == 0 {
			return 0, false
		}
		rest = rest[size:]
	}
	if len(rest) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// At reports whether the current rune equals r.
func (s Scanner) At(r rune) bool {
	c, ok := s.Current()
	return ok && c == r
}

// AtStr reports whether the remaining text starts with str.
func (s Scanner) AtStr(str string) bool {
	rest := s.text[s.pos:]
	return len(rest) >= len(str) && rest[:len(str)] == str
}

// AtPred reports whether the current rune satisfies pred.
func (s Scanner) AtPred(pred func(rune) bool) bool {
	c, ok := s.Current()
	return ok && pred(c)
}

// Bump advances the cursor by one rune, returning it, or (0, false) at EOF.
func (s *Scanner) Bump() (rune, bool) {
	if s.AtEOF() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.pos += size
	return r, true
}

// BumpWhile advances the cursor past every rune satisfying pred, returning
// the count of runes consumed.
func (s *Scanner) BumpWhile(pred func(rune) bool) int {
	n := 0
	for s.AtPred(pred) {
		s.Bump()
		n++
	}
	return n
}

// BumpUntilEOL advances the cursor up to but not including the next '\n',
// or to EOF if the input ends first.
func (s *Scanner) BumpUntilEOL() {
	s.BumpWhile(func(r rune) bool { return r != '\n' })
}

// BumpUntilStr advances the cursor up to (not including) the next
// occurrence of str, or to EOF if str never appears. Reports whether str
// was found.
func (s *Scanner) BumpUntilStr(str string) bool {
	idx := indexFrom(s.text, s.pos, str)
	if idx < 0 {
		s.pos = len(s.text)
		return false
	}
	s.pos = idx
	return true
}

func indexFrom(text string, from int, str string) int {
	rest := text[from:]
	for i := 0; i+len(str) <= len(rest); i++ {
		if rest[i:i+len(str)] == str {
			return from + i
		}
	}
	return -1
}

// StartFrom returns a Scanner over text starting at byte offset pos. Used
// when a token-length accounting loop (§3: "no absolute offset is stored")
// needs to resume scanning from a reconstructed offset.
func StartFrom(text string, pos int) Scanner {
	return Scanner{text: text, pos: pos}
}

// CurrentText returns the slice of text from offset start up to the
// cursor's current position.
func (s Scanner) CurrentText(start int) string {
	return s.text[start:s.pos]
}

// Remaining returns the unconsumed suffix of text.
func (s Scanner) Remaining() string { return s.text[s.pos:] }

// Len returns the total length of the underlying text, in bytes.
func (s Scanner) Len() int { return len(s.text) }

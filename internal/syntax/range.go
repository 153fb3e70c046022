package syntax

import "fmt"

// TextRange is a half-open [Start, End) byte range, per §3.
type TextRange struct {
	Start, End uint32
}

// NewRange builds a TextRange, panicking if end < start — an inverted range
// is always a bug in the caller, never a legitimate empty span (use
// start==end for that).
func NewRange(start, end uint32) TextRange {
	if end < start {
		panic(fmt.Sprintf("syntax: inverted range [%d, %d)", start, end))
	}
	return TextRange{Start: start, End: end}
}

// Len returns the byte length of the range.
func (r TextRange) Len() uint32 { return r.End - r.Start }

// IsEmpty reports whether the range spans zero bytes.
func (r TextRange) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether offset falls within [Start, End).
func (r TextRange) Contains(offset uint32) bool {
	return offset >= r.Start && offset < r.End
}

// Covers reports whether r fully contains other.
func (r TextRange) Covers(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Add shifts both endpoints by delta.
func (r TextRange) Add(delta uint32) TextRange {
	return TextRange{Start: r.Start + delta, End: r.End + delta}
}

func (r TextRange) String() string {
	return fmt.Sprintf("[%d; %d)", r.Start, r.End)
}

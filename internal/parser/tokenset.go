package parser

import "github.com/oxhq/webcst/internal/syntax"

// TokenSet is a small map-backed set of Kind values, used for recovery sets and
// FIRST/FOLLOW-style membership checks without allocating a slice per call.
type TokenSet struct {
	bits map[syntax.Kind]struct{}
}

// NewTokenSet builds a TokenSet containing the given kinds.
func NewTokenSet(kinds ...syntax.Kind) TokenSet {
	ts := TokenSet{bits: make(map[syntax.Kind]struct{}, len(kinds))}
	for _, k := range kinds {
		ts.bits[k] = struct{}{}
	}
	return ts
}

// Contains reports whether k is a member.
func (ts TokenSet) Contains(k syntax.Kind) bool {
	_, ok := ts.bits[k]
	return ok
}

// Union returns a TokenSet containing the members of both sets.
func (ts TokenSet) Union(other TokenSet) TokenSet {
	out := NewTokenSet()
	for k := range ts.bits {
		out.bits[k] = struct{}{}
	}
	for k := range other.bits {
		out.bits[k] = struct{}{}
	}
	return out
}

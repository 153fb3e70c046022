package source

import "sync"

// ID is a dense, process-lifetime handle obtained by interning a Source.
// Comparing IDs compares content (§3, §8.8 interning idempotence).
type ID uint32

// Interner is the one mutable shared object in the query database (§5): a
// monotone table mapping Source values to dense IDs, guarded by a mutex so
// it can be shared across concurrently running queries.
type Interner struct {
	mu      sync.Mutex
	byKey   map[any]ID
	sources []Source
}

// NewInterner builds an empty Interner.
func NewInterner() *Interner {
	return &Interner{byKey: make(map[any]ID)}
}

// Intern returns s's dense ID, allocating a new one the first time s's
// identity is seen. Two Sources with the same identity (same file, or same
// discriminant+key for a derived source) always intern to the same ID.
func (in *Interner) Intern(s Source) ID {
	in.mu.Lock()
	defer in.mu.Unlock()
	key := s.identity()
	if id, ok := in.byKey[key]; ok {
		return id
	}
	id := ID(len(in.sources))
	in.sources = append(in.sources, s)
	in.byKey[key] = id
	return id
}

// Lookup returns the Source previously interned as id. Panics if id was
// never handed out by this Interner — a programming error, not a runtime
// condition (§7).
func (in *Interner) Lookup(id ID) Source {
	in.mu.Lock()
	defer in.mu.Unlock()
	if int(id) >= len(in.sources) {
		panic("source: lookup of an id this interner never issued")
	}
	return in.sources[id]
}

// Len reports how many distinct sources have been interned.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.sources)
}

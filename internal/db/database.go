package db

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oxhq/webcst/internal/registry"
	"github.com/oxhq/webcst/internal/source"
	"github.com/oxhq/webcst/internal/syntax"
)

// astCacheSize bounds the memoization table backing the *_ast derived query
// (§4.6, §9: "any memoization table is an implementation detail behind an
// interface returning immutable snapshots").
const astCacheSize = 256

// astCacheKey pairs a source id with the database generation it was parsed
// under, so a stale entry simply misses rather than needing an explicit
// dependency-graph walk to invalidate (§4.6 "derived... recomputed when any
// input transitively depends on has changed").
type astCacheKey struct {
	id         source.ID
	generation uint64
}

// Database is the query database: input state set by SourceChange.apply_to,
// plus derived queries computed (and memoized) on demand over it. Safe for
// concurrent read access; mutation only happens transactionally through
// ApplyTo (§5).
type Database struct {
	mu sync.RWMutex

	fileText         map[source.FileID]string
	fileRelativePath map[source.FileID]string
	fileSourceRoot   map[source.FileID]SourceRootID
	sourceRoots      map[SourceRootID]*SourceRoot
	localRoots       []SourceRootID
	foreignRoots     []SourceRootID
	packageGraph     *PackageGraph
	nextFileID       uint32

	interner *source.Interner
	registry *registry.Registry

	astCache   *lru.Cache[astCacheKey, *syntax.Tree]
	generation uint64
}

// New builds an empty Database dispatching *_ast queries through reg.
func New(reg *registry.Registry) *Database {
	cache, err := lru.New[astCacheKey, *syntax.Tree](astCacheSize)
	if err != nil {
		// Only size<=0 can fail New; astCacheSize is a positive constant.
		panic(fmt.Sprintf("db: building ast cache: %v", err))
	}
	return &Database{
		fileText:         make(map[source.FileID]string),
		fileRelativePath: make(map[source.FileID]string),
		fileSourceRoot:   make(map[source.FileID]SourceRootID),
		sourceRoots:      make(map[SourceRootID]*SourceRoot),
		packageGraph:     NewPackageGraph(),
		interner:         source.NewInterner(),
		registry:         reg,
		astCache:         cache,
	}
}

// --- input queries -------------------------------------------------------

// FileText returns the current text of file.
func (db *Database) FileText(file source.FileID) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, ok := db.fileText[file]
	return t, ok
}

// FileRelativePath returns the path file was added under, relative to its
// source root.
func (db *Database) FileRelativePath(file source.FileID) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	p, ok := db.fileRelativePath[file]
	return p, ok
}

// FileSourceRoot returns the root file belongs to.
func (db *Database) FileSourceRoot(file source.FileID) (SourceRootID, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	r, ok := db.fileSourceRoot[file]
	return r, ok
}

// SourceRoot returns the root itself (including its file set).
func (db *Database) SourceRoot(id SourceRootID) (*SourceRoot, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	r, ok := db.sourceRoots[id]
	return r, ok
}

// LocalRoots returns every root flagged local, in insertion order.
func (db *Database) LocalRoots() []SourceRootID {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]SourceRootID, len(db.localRoots))
	copy(out, db.localRoots)
	return out
}

// ForeignRoots returns every root flagged foreign, in insertion order.
func (db *Database) ForeignRoots() []SourceRootID {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]SourceRootID, len(db.foreignRoots))
	copy(out, db.foreignRoots)
	return out
}

// PackageGraph returns the current package graph.
func (db *Database) PackageGraph() *PackageGraph {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.packageGraph
}

// --- derived queries -------------------------------------------------------

// FileExtension returns file's extension (including the leading '.'),
// derived purely from its relative path.
func (db *Database) FileExtension(file source.FileID) (string, bool) {
	path, ok := db.FileRelativePath(file)
	if !ok {
		return "", false
	}
	return filepath.Ext(path), true
}

// FileSource interns file as a Source, returning its SourceId. Pure given
// FileID identity — the same file always interns to the same id.
func (db *Database) FileSource(file source.FileID) source.ID {
	return db.interner.Intern(source.FromFile(file))
}

// SourceText resolves id to its text: file_text for a file source, or the
// stored substring for a derived source.
func (db *Database) SourceText(id source.ID) (string, bool) {
	s := db.interner.Lookup(id)
	if file, isFile := s.FileID(); isFile {
		return db.FileText(file)
	}
	return s.DerivedText()
}

// SourceLineIndex returns the byte offset each line starts at within id's
// text — offset 0 for line 0, then one entry per '\n' encountered.
func (db *Database) SourceLineIndex(id source.ID) ([]uint32, bool) {
	text, ok := db.SourceText(id)
	if !ok {
		return nil, false
	}
	starts := []uint32{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return starts, true
}

// LineCol converts a byte offset within id's text to a 1-based (line, col).
func (db *Database) LineCol(id source.ID, offset uint32) (line, col int) {
	starts, ok := db.SourceLineIndex(id)
	if !ok {
		return 1, 1
	}
	line = 1
	lineStart := uint32(0)
	for i, s := range starts {
		if s > offset {
			break
		}
		line = i + 1
		lineStart = s
	}
	return line, int(offset-lineStart) + 1
}

// AST parses id's text with the grammar registered for the extension lang
// names (a leading '.' is added when missing, so "js" selects ".js"), for
// files and derived sources alike, memoizing the result against the
// database's current generation.
func (db *Database) AST(id source.ID, lang string) (*syntax.Tree, error) {
	db.mu.RLock()
	gen := db.generation
	db.mu.RUnlock()

	key := astCacheKey{id: id, generation: gen}
	if tree, ok := db.astCache.Get(key); ok {
		return tree, nil
	}

	text, ok := db.SourceText(id)
	if !ok {
		return nil, fmt.Errorf("db: source %d has no text", id)
	}
	ext := lang
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	parse, ok := db.registry.Resolve(ext)
	if !ok {
		return nil, fmt.Errorf("db: no grammar registered for %q", ext)
	}
	tree := parse(text)
	db.astCache.Add(key, tree)
	return tree, nil
}

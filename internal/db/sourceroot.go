package db

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oxhq/webcst/internal/source"
)

// SourceRoot is a set of relative-path -> FileID entries with a local flag:
// local roots (the workspace under edit) change frequently, foreign roots
// (e.g. vendored dependencies) rarely do (§3).
type SourceRoot struct {
	Local   bool
	Files   map[string]source.FileID
	Ignores []string // doublestar glob patterns; a matching relative path is excluded from Files even if added
}

func newSourceRoot(local bool) *SourceRoot {
	return &SourceRoot{Local: local, Files: make(map[string]source.FileID)}
}

// Ignored reports whether relPath matches one of root's ignore globs.
func (r *SourceRoot) Ignored(relPath string) bool {
	for _, pattern := range r.Ignores {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// SortedPaths returns every relative path in root, sorted — used wherever
// query output must be deterministic (§8.10 diagnostic determinism).
func (r *SourceRoot) SortedPaths() []string {
	paths := make([]string, 0, len(r.Files))
	for p := range r.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

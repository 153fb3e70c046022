// Package db implements the incremental query database (§4.6): input
// queries set externally, derived queries memoized and recomputed only when
// a transitively-depended-on input changes, dense interning, source-root
// layering, and a package graph with DFS cycle detection.
package db

import "github.com/oxhq/webcst/internal/source"

// SourceRootID identifies one SourceRoot (§3).
type SourceRootID uint32

// PackageID identifies one node of the PackageGraph (§3).
type PackageID uint32

// FileID is re-exported from internal/source so callers of this package
// never need to import both for the same concept.
type FileID = source.FileID

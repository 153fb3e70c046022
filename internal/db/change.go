package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/oxhq/webcst/internal/source"
)

// NewFile is one file added by a RootDelta.
type NewFile struct {
	RelativePath string
	Text         string
}

// RootDelta adds and removes files under one SourceRoot within a single
// SourceChange (§4.6 step 2).
type RootDelta struct {
	Added   []NewFile
	Removed []source.FileID
}

// NewRoot declares a SourceRoot to create, empty, before any delta against
// it is applied (§4.6 step 1).
type NewRoot struct {
	ID      SourceRootID
	Local   bool
	Ignores []string
}

// SourceChange is the single externally-submitted transaction the database
// accepts: additions, removals, edits, and/or a package-graph replacement
// (§3, §4.6). Applying it invalidates affected memoized queries exactly
// once, never exposing a partially-applied intermediate state (§5).
type SourceChange struct {
	NewRoots     []NewRoot
	RootDeltas   map[SourceRootID]RootDelta
	FileEdits    map[source.FileID]string
	PackageGraph *PackageGraph // nil leaves the existing graph unchanged
}

// ApplyTo runs the four-step change-application protocol (§4.6) against db
// and returns an opaque transaction id used only for test/debug tracing —
// it carries no content identity; IDs throughout the database remain dense
// ints (§3).
func (sc *SourceChange) ApplyTo(db *Database) (uuid.UUID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	txID := uuid.New()

	for _, nr := range sc.NewRoots {
		if _, exists := db.sourceRoots[nr.ID]; exists {
			return txID, fmt.Errorf("db: source root %d already exists", nr.ID)
		}
		root := newSourceRoot(nr.Local)
		root.Ignores = nr.Ignores
		db.sourceRoots[nr.ID] = root
		if nr.Local {
			db.localRoots = append(db.localRoots, nr.ID)
		} else {
			db.foreignRoots = append(db.foreignRoots, nr.ID)
		}
	}

	for rootID, delta := range sc.RootDeltas {
		root, ok := db.sourceRoots[rootID]
		if !ok {
			return txID, fmt.Errorf("db: root %d has no delta target (add it via NewRoots first)", rootID)
		}
		for _, nf := range delta.Added {
			if root.Ignored(nf.RelativePath) {
				continue
			}
			db.nextFileID++
			fid := source.FileID(db.nextFileID)
			db.fileText[fid] = nf.Text
			db.fileRelativePath[fid] = nf.RelativePath
			db.fileSourceRoot[fid] = rootID
			root.Files[nf.RelativePath] = fid
		}
		for _, fid := range delta.Removed {
			if path, ok := db.fileRelativePath[fid]; ok {
				delete(root.Files, path)
			}
			delete(db.fileText, fid)
			delete(db.fileRelativePath, fid)
			delete(db.fileSourceRoot, fid)
		}
	}

	for fid, text := range sc.FileEdits {
		if _, ok := db.fileText[fid]; !ok {
			return txID, fmt.Errorf("db: edit targets unknown file %d", fid)
		}
		db.fileText[fid] = text
	}

	if sc.PackageGraph != nil {
		db.packageGraph = sc.PackageGraph
	}

	db.generation++
	return txID, nil
}

// Package cli implements the two external-interface subcommands §6
// describes (`lint`, `parse`) as a thin cobra CLI over internal/db and
// internal/analysis — the "vue_analyzer" collaborator, kept deliberately
// shallow since file-system scanning and workspace discovery are the
// spec's own Non-goals.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oxhq/webcst/internal/db"
	"github.com/oxhq/webcst/internal/model"
	"github.com/oxhq/webcst/internal/registry"
	"github.com/oxhq/webcst/internal/source"
)

// singleFileRoot is the one SourceRootID every CLI invocation uses — each
// invocation analyzes exactly one file, so there's never a second root to
// collide with it.
const singleFileRoot db.SourceRootID = 1

var supportedExt = map[string]bool{".html": true, ".js": true, ".ts": true, ".vue": true}

// loadFile reads path off disk and indexes it as the sole file of a
// fresh, single-root Database (§6's CLI has no project/workspace concept —
// every invocation analyzes exactly one file).
func loadFile(path string) (*db.Database, source.FileID, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExt[ext] {
		return nil, 0, model.CLIError{
			Code:    model.ErrUnsupportedLang,
			Message: "unsupported file extension",
			Detail:  ext,
		}
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, model.Wrap(model.ErrIO, "reading source file", err)
	}

	database := db.New(registry.Default())
	relPath := filepath.Base(path)
	change := &db.SourceChange{
		NewRoots: []db.NewRoot{{ID: singleFileRoot, Local: true}},
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			singleFileRoot: {Added: []db.NewFile{{RelativePath: relPath, Text: string(text)}}},
		},
	}
	if _, err := change.ApplyTo(database); err != nil {
		return nil, 0, model.Wrap(model.ErrIO, "indexing source file", err)
	}

	root, _ := database.SourceRoot(singleFileRoot)
	file, ok := root.Files[relPath]
	if !ok {
		return nil, 0, model.CLIError{
			Code:    model.ErrNoSuchFile,
			Message: "file not indexed",
			Detail:  path,
		}
	}
	return database, file, nil
}

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/db"
	"github.com/oxhq/webcst/internal/registry"
)

func newTestDB(t *testing.T) (*db.Database, db.SourceRootID) {
	t.Helper()
	d := db.New(registry.Default())
	rootID := db.SourceRootID(1)
	change := &db.SourceChange{
		NewRoots: []db.NewRoot{{ID: rootID, Local: true}},
	}
	_, err := change.ApplyTo(d)
	require.NoError(t, err)
	return d, rootID
}

func TestApplyToAddsFileAndMakesItQueryable(t *testing.T) {
	d, root := newTestDB(t)
	change := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{{RelativePath: "a.js", Text: "let x = 1;"}}},
		},
	}
	_, err := change.ApplyTo(d)
	require.NoError(t, err)

	sr, ok := d.SourceRoot(root)
	require.True(t, ok)
	fid, ok := sr.Files["a.js"]
	require.True(t, ok)

	text, ok := d.FileText(fid)
	require.True(t, ok)
	assert.Equal(t, "let x = 1;", text)

	ext, ok := d.FileExtension(fid)
	require.True(t, ok)
	assert.Equal(t, ".js", ext)
}

func TestFileEditUpdatesTextWithoutPathChange(t *testing.T) {
	d, root := newTestDB(t)
	add := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{{RelativePath: "a.js", Text: "let x = 1;"}}},
		},
	}
	_, err := add.ApplyTo(d)
	require.NoError(t, err)
	sr, _ := d.SourceRoot(root)
	fid := sr.Files["a.js"]

	edit := &db.SourceChange{FileEdits: map[db.FileID]string{fid: "let x = 2;"}}
	_, err = edit.ApplyTo(d)
	require.NoError(t, err)

	text, _ := d.FileText(fid)
	assert.Equal(t, "let x = 2;", text)
	path, _ := d.FileRelativePath(fid)
	assert.Equal(t, "a.js", path)
}

func TestRemovedFileIsNoLongerQueryable(t *testing.T) {
	d, root := newTestDB(t)
	add := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{{RelativePath: "a.js", Text: "1;"}}},
		},
	}
	_, err := add.ApplyTo(d)
	require.NoError(t, err)
	sr, _ := d.SourceRoot(root)
	fid := sr.Files["a.js"]

	remove := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{root: {Removed: []db.FileID{fid}}},
	}
	_, err = remove.ApplyTo(d)
	require.NoError(t, err)

	_, ok := d.FileText(fid)
	assert.False(t, ok)
	sr2, _ := d.SourceRoot(root)
	_, stillThere := sr2.Files["a.js"]
	assert.False(t, stillThere)
}

func TestASTParsesAndMemoizes(t *testing.T) {
	d, root := newTestDB(t)
	add := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{{RelativePath: "a.js", Text: "let x = 1;"}}},
		},
	}
	_, err := add.ApplyTo(d)
	require.NoError(t, err)
	sr, _ := d.SourceRoot(root)
	fid := sr.Files["a.js"]

	srcID := d.FileSource(fid)
	tree1, err := d.AST(srcID, "js")
	require.NoError(t, err)
	require.False(t, tree1.HasErrors())

	tree2, err := d.AST(srcID, "js")
	require.NoError(t, err)
	assert.Same(t, tree1, tree2, "expected the memoized tree pointer to be reused")
}

func TestComponentScriptExtractsVueScriptBody(t *testing.T) {
	d, root := newTestDB(t)
	vueSrc := `<template><div>{{ msg }}</div></template>
<script lang="ts">export default { data() { return {}; } };</script>
`
	add := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{{RelativePath: "App.vue", Text: vueSrc}}},
		},
	}
	_, err := add.ApplyTo(d)
	require.NoError(t, err)
	sr, _ := d.SourceRoot(root)
	fid := sr.Files["App.vue"]

	srcID, lang, err := d.ComponentScript(fid)
	require.NoError(t, err)
	assert.Equal(t, "ts", lang)

	text, ok := d.SourceText(srcID)
	require.True(t, ok)
	assert.Contains(t, text, "export default")
}

func TestPackageGraphRejectsCycles(t *testing.T) {
	g := db.NewPackageGraph()
	require.NoError(t, g.AddDependency(1, "b", 2))
	err := g.AddDependency(2, "a", 1)
	assert.Error(t, err)
}

func TestSourceRootIgnoreGlobExcludesMatchingFiles(t *testing.T) {
	d := db.New(registry.Default())
	root := db.SourceRootID(1)
	create := &db.SourceChange{NewRoots: []db.NewRoot{{ID: root, Local: true, Ignores: []string{"**/*.min.js"}}}}
	_, err := create.ApplyTo(d)
	require.NoError(t, err)

	add := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{
				{RelativePath: "vendor/lib.min.js", Text: "x"},
				{RelativePath: "src/a.js", Text: "let a=1;"},
			}},
		},
	}
	_, err = add.ApplyTo(d)
	require.NoError(t, err)

	sr, _ := d.SourceRoot(root)
	_, minified := sr.Files["vendor/lib.min.js"]
	_, normal := sr.Files["src/a.js"]
	assert.False(t, minified)
	assert.True(t, normal)
}

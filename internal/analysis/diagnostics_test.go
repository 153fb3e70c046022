package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/analysis"
	"github.com/oxhq/webcst/internal/db"
	"github.com/oxhq/webcst/internal/registry"
	"github.com/oxhq/webcst/internal/source"
)

func newTestDB(t *testing.T) (*db.Database, db.SourceRootID) {
	t.Helper()
	d := db.New(registry.Default())
	rootID := db.SourceRootID(1)
	change := &db.SourceChange{NewRoots: []db.NewRoot{{ID: rootID, Local: true}}}
	_, err := change.ApplyTo(d)
	require.NoError(t, err)
	return d, rootID
}

func addFile(t *testing.T, d *db.Database, root db.SourceRootID, path, text string) source.FileID {
	t.Helper()
	change := &db.SourceChange{
		RootDeltas: map[db.SourceRootID]db.RootDelta{
			root: {Added: []db.NewFile{{RelativePath: path, Text: text}}},
		},
	}
	_, err := change.ApplyTo(d)
	require.NoError(t, err)
	sr, ok := d.SourceRoot(root)
	require.True(t, ok)
	fid, ok := sr.Files[path]
	require.True(t, ok)
	return fid
}

func TestDiagnosticsCleanJSHasNone(t *testing.T) {
	d, root := newTestDB(t)
	fid := addFile(t, d, root, "a.js", "let x = 1;\n")

	diags, err := analysis.Diagnostics(d, fid)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestDiagnosticsReportsOneSyntaxErrorPerOffset(t *testing.T) {
	d, root := newTestDB(t)
	fid := addFile(t, d, root, "bad.js", "let x = ;\n")

	diags, err := analysis.Diagnostics(d, fid)
	require.NoError(t, err)
	require.NotEmpty(t, diags)
	for _, diag := range diags {
		assert.Equal(t, analysis.SeverityError, diag.Severity)
		assert.Equal(t, analysis.CategorySyntax, diag.Category)
	}

	seen := make(map[int]bool)
	for _, diag := range diags {
		key := diag.Line*100000 + diag.Col
		assert.False(t, seen[key], "duplicate diagnostic at line %d col %d", diag.Line, diag.Col)
		seen[key] = true
	}
}

func TestDiagnosticsUnknownExtensionErrors(t *testing.T) {
	d, root := newTestDB(t)
	fid := addFile(t, d, root, "data.json", "{}")

	_, err := analysis.Diagnostics(d, fid)
	assert.Error(t, err)
}

func TestDiagnosticDeterministicAcrossRepeatCalls(t *testing.T) {
	d, root := newTestDB(t)
	fid := addFile(t, d, root, "bad.ts", "const x: = 1;\n")

	first, err := analysis.Diagnostics(d, fid)
	require.NoError(t, err)
	second, err := analysis.Diagnostics(d, fid)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDiagnosticStringFormat(t *testing.T) {
	diag := analysis.Diagnostic{
		Severity: analysis.SeverityError,
		Category: analysis.CategorySyntax,
		Line:     3, Col: 7,
		Message: "unexpected token",
	}
	assert.Equal(t, "error(syntax): [line 3, col 7] unexpected token", diag.String())
}

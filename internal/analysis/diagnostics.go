// Package analysis computes the diagnostics, syntax-tree dumps, and
// best-effort type inferences §4.7 describes, all as pure functions of an
// internal/db.Database snapshot.
package analysis

import (
	"fmt"
	"sort"

	"github.com/oxhq/webcst/internal/db"
	"github.com/oxhq/webcst/internal/source"
	"github.com/oxhq/webcst/internal/syntax"
)

// Diagnostics computes file's diagnostics by dispatching on its extension
// (§4.7). The result is a pure function of the database's current
// generation — re-running it against an unchanged database yields a
// byte-identical slice (§8 "Diagnostic determinism").
func Diagnostics(database *db.Database, file source.FileID) ([]Diagnostic, error) {
	ext, ok := database.FileExtension(file)
	if !ok {
		return nil, fmt.Errorf("analysis: unknown file %d", file)
	}
	switch ext {
	case ".html":
		return syntaxDiagnostics(database, database.FileSource(file), "html")
	case ".js":
		return syntaxDiagnostics(database, database.FileSource(file), "js")
	case ".ts":
		return syntaxDiagnostics(database, database.FileSource(file), "ts")
	case ".vue":
		return vueDiagnostics(database, file)
	default:
		return nil, fmt.Errorf("analysis: no diagnostics rule for extension %q", ext)
	}
}

// syntaxDiagnostics parses id as lang and formats its syntax errors (§4.7:
// "HTML/JS/TS: parse; collect syntax errors; format as error(syntax):
// [line L, col C] msg; deduplicate to one error per offset").
func syntaxDiagnostics(database *db.Database, id source.ID, lang string) ([]Diagnostic, error) {
	tree, err := database.AST(id, lang)
	if err != nil {
		return nil, err
	}
	return formatSyntaxErrors(database, id, tree.Errors(), 0), nil
}

// formatSyntaxErrors converts raw tree errors into Diagnostics, resolving
// each offset (plus base, for errors from a derived source embedded at some
// offset within id) to a (line, col) and dropping every error past the
// first reported at a given offset (§7 "Deduplication: within a single
// file's diagnostics, at most one syntax error is reported per offset").
func formatSyntaxErrors(database *db.Database, id source.ID, errs []syntax.SyntaxError, base uint32) []Diagnostic {
	type located struct {
		offset uint32
		msg    string
	}
	located_ := make([]located, 0, len(errs))
	for _, e := range errs {
		off := e.Location.Offset
		if e.Location.IsRange {
			off = e.Location.Range.Start
		}
		located_ = append(located_, located{offset: base + off, msg: e.Message})
	}
	sort.SliceStable(located_, func(i, j int) bool { return located_[i].offset < located_[j].offset })

	out := make([]Diagnostic, 0, len(located_))
	seen := make(map[uint32]bool, len(located_))
	for _, e := range located_ {
		if seen[e.offset] {
			continue
		}
		seen[e.offset] = true
		line, col := database.LineCol(id, e.offset)
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Category: CategorySyntax,
			Line:     line,
			Col:      col,
			Message:  e.msg,
		})
	}
	return out
}

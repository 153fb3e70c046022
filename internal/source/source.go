// Package source implements the uniform ID over real files and derived
// sub-sources (§3 Source, §9 design note: "keep derived sources as distinct
// first-class IDs rather than re-using the file-ID namespace, to preserve
// query-graph purity").
package source

import "fmt"

// FileID identifies a file known to the query database (internal/db owns
// allocating these; this package only consumes them).
type FileID uint32

// Source is a polymorphic text origin: either a real file or text derived
// from another query (e.g. the JS embedded in a Vue <script>). The
// discriminant distinguishes derived sources that originate from different
// intern-key shapes, so two derived sources can never alias just because
// their keys happen to compare equal across types (§3).
type Source struct {
	file         FileID
	isFile       bool
	discriminant string
	key          any
	text         string
}

// FromFile wraps a real file as a Source.
func FromFile(id FileID) Source {
	return Source{file: id, isFile: true}
}

// Derived builds a Source whose text comes from somewhere other than a real
// file — discriminant names the kind of key (e.g. "ComponentScript"), key is
// the intern-key value itself (must be comparable), and text is the
// materialized substring this source's content resolves to.
func Derived(discriminant string, key any, text string) Source {
	return Source{discriminant: discriminant, key: key, text: text}
}

// IsFile reports whether this Source wraps a real file.
func (s Source) IsFile() bool { return s.isFile }

// FileID returns the wrapped file id, and ok=false if s is derived.
func (s Source) FileID() (FileID, bool) { return s.file, s.isFile }

// DerivedText returns the derived text, and ok=false if s wraps a real file
// (file text is read through file_text(FileId), not stored on the Source).
func (s Source) DerivedText() (string, bool) {
	if s.isFile {
		return "", false
	}
	return s.text, true
}

// Discriminant returns the derived-key type tag, or "" for a file source.
func (s Source) Discriminant() string { return s.discriminant }

func (s Source) identity() any {
	if s.isFile {
		return s.file
	}
	return struct {
		discriminant string
		key          any
	}{s.discriminant, s.key}
}

func (s Source) String() string {
	if s.isFile {
		return fmt.Sprintf("Source::File(%d)", s.file)
	}
	return fmt.Sprintf("Source::Derived(%s, %v)", s.discriminant, s.key)
}

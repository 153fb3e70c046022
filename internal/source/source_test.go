package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/webcst/internal/source"
)

func TestInternIsIdempotent(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern(source.FromFile(7))
	b := in.Intern(source.FromFile(7))
	assert.Equal(t, a, b)
	assert.Equal(t, 1, in.Len())
}

func TestInternLookupRoundTrip(t *testing.T) {
	in := source.NewInterner()
	s := source.FromFile(42)
	id := in.Intern(s)
	got := in.Lookup(id)
	fid, ok := got.FileID()
	assert.True(t, ok)
	assert.Equal(t, source.FileID(42), fid)
}

func TestDerivedSourcesWithDistinctDiscriminantsDoNotAlias(t *testing.T) {
	in := source.NewInterner()
	type componentScriptKey struct{ AstID int }
	type anotherKey struct{ AstID int }

	a := in.Intern(source.Derived("ComponentScript", componentScriptKey{AstID: 1}, "export default {}"))
	b := in.Intern(source.Derived("Another", anotherKey{AstID: 1}, "export default {}"))
	assert.NotEqual(t, a, b)
}

func TestDerivedSourceSameKeyInternsOnce(t *testing.T) {
	in := source.NewInterner()
	type key struct{ AstID int }
	a := in.Intern(source.Derived("ComponentScript", key{AstID: 3}, "let x = 1;"))
	b := in.Intern(source.Derived("ComponentScript", key{AstID: 3}, "let x = 1;"))
	assert.Equal(t, a, b)
}

func TestLookupPanicsOnUnknownID(t *testing.T) {
	in := source.NewInterner()
	assert.Panics(t, func() { in.Lookup(99) })
}

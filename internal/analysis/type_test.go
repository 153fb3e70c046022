package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/webcst/internal/analysis"
)

func TestTypeStringForms(t *testing.T) {
	assert.Equal(t, "Number", analysis.Number.String())
	assert.Equal(t, "Array<Number>", analysis.ArrayOf(analysis.Number).String())
	assert.Equal(t, "Hint(function)", analysis.HintOf("function").String())
	assert.Equal(t, "Instance(RegExp)", analysis.InstanceOf("RegExp").String())
}

func TestNewUnionCollapsesSingleton(t *testing.T) {
	got := analysis.NewUnion([]analysis.Type{analysis.Number})
	assert.Equal(t, analysis.Number, got)
}

func TestNewUnionDedupesAndFlattens(t *testing.T) {
	inner := analysis.NewUnion([]analysis.Type{analysis.Number, analysis.String})
	got := analysis.NewUnion([]analysis.Type{inner, analysis.String, analysis.Boolean})
	assert.Equal(t, analysis.TyUnion, got.Kind)
	assert.Len(t, got.Members, 3)
	assert.Contains(t, got.Members, analysis.Number)
	assert.Contains(t, got.Members, analysis.String)
	assert.Contains(t, got.Members, analysis.Boolean)
}

func TestNewIntersectionCollapsesSingleton(t *testing.T) {
	got := analysis.NewIntersection([]analysis.Type{analysis.Object, analysis.Object})
	assert.Equal(t, analysis.Object, got)
}

func TestStripNonNullOnBareNullIsNever(t *testing.T) {
	assert.Equal(t, analysis.Never, analysis.StripNonNull(analysis.Null))
	assert.Equal(t, analysis.Never, analysis.StripNonNull(analysis.Undefined))
}

func TestStripNonNullOnUnionDropsNullAndUndefined(t *testing.T) {
	u := analysis.NewUnion([]analysis.Type{analysis.String, analysis.Null, analysis.Undefined})
	assert.Equal(t, analysis.String, analysis.StripNonNull(u))
}

func TestStripNonNullOnUnionCollapsesToNeverWhenOnlyNullish(t *testing.T) {
	u := analysis.NewUnion([]analysis.Type{analysis.Null, analysis.Undefined, analysis.Number})
	got := analysis.StripNonNull(analysis.Type{Kind: analysis.TyUnion, Members: []analysis.Type{analysis.Null, analysis.Undefined}})
	assert.Equal(t, analysis.Never, got)
	assert.NotEqual(t, analysis.Never, analysis.StripNonNull(u))
}

func TestStripNonNullOnPlainTypeIsIdentity(t *testing.T) {
	assert.Equal(t, analysis.Number, analysis.StripNonNull(analysis.Number))
}

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/registry"
	"github.com/oxhq/webcst/internal/syntax"
)

func noopParse(string) *syntax.Tree { return nil }

func TestDefaultResolvesAllFourExtensions(t *testing.T) {
	r := registry.Default()
	for _, ext := range []string{".html", ".vue", ".js", ".ts"} {
		parse, ok := r.Resolve(ext)
		require.True(t, ok, "expected %s to be registered", ext)
		assert.NotNil(t, parse)
	}
}

func TestResolveUnknownExtensionFails(t *testing.T) {
	r := registry.Default()
	_, ok := r.Resolve(".css")
	assert.False(t, ok)
}

func TestRegisterRejectsDuplicateExtension(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(".js", noopParse))
	err := r.Register(".js", noopParse)
	assert.Error(t, err)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/webcst/internal/config"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSONConfig(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"global": {"components": ["Foo", "Bar"], "filters": ["capitalize"]}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "Bar"}, cfg.Global.Components)
	assert.Equal(t, []string{"capitalize"}, cfg.Global.Filters)
}

func TestLoadTOMLConfig(t *testing.T) {
	path := writeTemp(t, "cfg.toml", "[global]\ncomponents = [\"Foo\"]\nfilters = []\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo"}, cfg.Global.Components)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"global": {"components": []}, "bogus": true}`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "global: {}\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunLintCleanFileExitsZero(t *testing.T) {
	path := writeTempFile(t, "a.js", "let x = 1;\n")
	var stderr bytes.Buffer
	code, err := runLint(path, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "info: found 0 error(s)")
}

func TestRunLintBrokenFileExitsOne(t *testing.T) {
	path := writeTempFile(t, "bad.js", "let x = ;\n")
	var stderr bytes.Buffer
	code, err := runLint(path, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error(syntax)")
	assert.Contains(t, stderr.String(), "info: found 1 error(s)")
}

func TestRunLintUnsupportedExtensionErrors(t *testing.T) {
	path := writeTempFile(t, "data.json", "{}")
	var stderr bytes.Buffer
	_, err := runLint(path, &stderr)
	assert.Error(t, err)
}

func TestRunLintMissingFileErrors(t *testing.T) {
	var stderr bytes.Buffer
	_, err := runLint(filepath.Join(t.TempDir(), "nope.js"), &stderr)
	assert.Error(t, err)
}

func TestRunParseWritesDumpToStdout(t *testing.T) {
	path := writeTempFile(t, "a.js", "let x = 1;\n")
	var stdout bytes.Buffer
	err := runParse(path, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "PROGRAM")
}

func TestNewRootCmdHasLintAndParse(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["lint"])
	assert.True(t, names["parse"])
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "kcc-lex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadExistingFile(t *testing.T) {
	path := writeTemp(t, "in: main.c\nout: a.out\nno_comments: true\ndump_tokens: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{In: "main.c", Out: "a.out", NoComments: true, DumpTokens: true}, cfg)
}

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadMalformedYAMLIsError(t *testing.T) {
	path := writeTemp(t, "in: [this is not\n  a valid: map")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadPartialConfigLeavesOtherFieldsZero(t *testing.T) {
	path := writeTemp(t, "no_comments: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.In)
	assert.Equal(t, "", cfg.Out)
	assert.True(t, cfg.NoComments)
	assert.False(t, cfg.DumpTokens)
}

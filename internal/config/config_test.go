package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(configEnv, "")
	for _, k := range []string{"STUDYCARDS_BACKEND", "STUDYCARDS_DIR", "STUDYCARDS_LOG_LEVEL", "STUDYCARDS_LOG_FILE", "STUDYCARDS_THEME"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Equal(t, ".studycards", filepath.Base(cfg.Store.Dir))
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeYAML(t, dir, `
store:
  backend: sqlite
  dir: /tmp/cards
log:
  level: debug
ui:
  theme: neon
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/cards", cfg.Store.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "neon", cfg.UI.Theme)

	t.Setenv("STUDYCARDS_THEME", "mono")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.UI.Theme)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYCARDS_BACKEND", "postgres")
	_, err := Load("")
	assert.ErrorContains(t, err, "store.backend")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MDREADER_CONFIG", "")
	t.Setenv("PORT", "")
	t.Setenv("DOC_TTL", "")
	t.Setenv("DOC_ROOT", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("ENABLE_EMOJI", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, ".", cfg.DocRoot)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, time.Hour, cfg.DocTTL)
	assert.False(t, cfg.EnableEmoji)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mdreader.yaml")
	yml := "port: \"9000\"\ndoc_root: /srv/docs\ndoc_ttl: 30m\nenable_emoji: true\nstylesheet: \"p{}\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv("MDREADER_CONFIG", path)
	t.Setenv("PORT", "9100")
	t.Setenv("HARD_WRAPS", "true")
	t.Setenv("MAX_UPLOAD_BYTES", "-5")
	t.Setenv("DOC_ROOT", "")
	t.Setenv("DOC_TTL", "")
	t.Setenv("ENABLE_EMOJI", "")
	t.Setenv("STYLESHEET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "/srv/docs", cfg.DocRoot)
	assert.Equal(t, 30*time.Minute, cfg.DocTTL)
	assert.True(t, cfg.EnableEmoji)
	assert.True(t, cfg.HardWraps)
	assert.Equal(t, "p{}", cfg.Stylesheet)
	assert.Equal(t, Defaults().MaxUploadBytes, cfg.MaxUploadBytes)
}

func TestLoad_BadFile(t *testing.T) {
	t.Setenv("MDREADER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.DocRoot = t.TempDir()
	assert.NoError(t, cfg.Validate())

	file := filepath.Join(cfg.DocRoot, "a.md")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.DocRoot = file
	assert.Error(t, cfg.Validate())

	cfg.DocRoot = filepath.Join(t.TempDir(), "nope")
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

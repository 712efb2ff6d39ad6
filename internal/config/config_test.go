package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, "release", cfg.GinMode())
	assert.Equal(t, 12*time.Second, cfg.FetchTimeout())
	assert.Equal(t, "mapcards/1.0", cfg.UserAgent())
	assert.True(t, cfg.UseSystemFonts())
}

func TestLayeredFiles(t *testing.T) {
	t.Setenv("PORT", "")
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")

	require.NoError(t, os.WriteFile(base, []byte(`
[server]
addr = ":9000"
mode = "debug"

[fetch]
timeout = "3s"

[fonts]
dirs = ["/opt/fonts"]
system = false

[log]
level = "debug"
`), 0o644))
	require.NoError(t, os.WriteFile(local, []byte(`
[server]
addr = ":9100"

[assets]
logo = "/srv/logo.png"
root = "/srv/covers"
`), 0o644))

	cfg, err := LoadFiles(base, local)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.ListenAddr())
	assert.Equal(t, "debug", cfg.GinMode())
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout())
	assert.Equal(t, []string{"/opt/fonts"}, cfg.Fonts.Dirs)
	assert.False(t, cfg.UseSystemFonts())
	assert.Equal(t, "/srv/logo.png", cfg.Assets.Logo)
	assert.Equal(t, "/srv/covers", cfg.Assets.Root)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestPortOverride(t *testing.T) {
	t.Setenv("PORT", "7070")
	cfg, err := LoadFiles()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr())
}

func TestBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddr="), 0o644))
	_, err := LoadFiles(path)
	assert.Error(t, err)
}

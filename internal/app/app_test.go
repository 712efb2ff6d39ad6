package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/youruser/mapcards/internal/config"
	imagepkg "github.com/youruser/mapcards/internal/image"
)

func TestNewFallsBackToBuiltinLogo(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))

	system := false
	cfg := &config.Config{}
	cfg.Fonts.System = &system
	cfg.Assets.Logo = bad

	core, logs := observer.New(zapcore.WarnLevel)
	a := New(cfg, zap.New(core))

	require.NotNil(t, a.Renderer)
	require.NotNil(t, a.BeatSaver)
	require.NotNil(t, a.ScoreSaber)
	assert.Equal(t, 1, logs.FilterMessage("custom logo unusable, falling back to built-in").Len())
}

func TestLoadLogo(t *testing.T) {
	logo := loadLogo("", zap.NewNop())
	require.NotNil(t, logo)
	assert.Equal(t, 1538, logo.Scaled(1).Bounds().Dx())
}

func TestFileSources(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "cover.png")
	outside := filepath.Join(t.TempDir(), "other.png")
	for _, p := range []string{inside, outside} {
		require.NoError(t, os.WriteFile(p, []byte("png"), 0o644))
	}
	system := false
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.Fonts.System = &system
	_, err := New(cfg, zap.NewNop()).Fetcher.Fetch(ctx, inside)
	assert.ErrorIs(t, err, imagepkg.ErrForbidden)

	cfg.Assets.Root = root
	a := New(cfg, zap.NewNop())
	_, err = a.Fetcher.Fetch(ctx, inside)
	assert.NoError(t, err)
	_, err = a.Fetcher.Fetch(ctx, outside)
	assert.ErrorIs(t, err, imagepkg.ErrForbidden)

	_, err = New(cfg, zap.NewNop(), AnyLocalFile()).Fetcher.Fetch(ctx, outside)
	assert.NoError(t, err)
}

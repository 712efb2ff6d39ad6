package imagepkg

import (
	"context"
	"errors"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/mapcards/internal/util"
)

func TestFetcherSources(t *testing.T) {
	pngBytes := encode(t, solid(4, 3, color.NRGBA{1, 2, 3, 255}), imaging.PNG)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cover.png" {
			_, _ = w.Write(pngBytes)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o644))

	f := NewFetcher(util.NewHTTPClient(time.Second, ""), WithFileRoot(""))
	ctx := context.Background()

	for _, src := range []string{srv.URL + "/cover.png", PNGDataURL(pngBytes), path} {
		img, err := f.FetchImage(ctx, src)
		require.NoError(t, err, src)
		assert.Equal(t, 4, img.Bounds().Dx())
	}

	for _, src := range []string{"", srv.URL + "/boom", "data:image/png;base64,@@@", filepath.Join(t.TempDir(), "nope.png")} {
		_, err := f.Fetch(ctx, src)
		assert.True(t, errors.Is(err, ErrFetch), src)
	}
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage(encode(t, solid(5, 5, color.NRGBA{9, 9, 9, 255}), imaging.JPEG))
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())

	_, err = DecodeImage([]byte("definitely not an image"))
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = DecodeImage(nil)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestFetcherRefusesFilesByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := NewFetcher(nil).Fetch(context.Background(), path)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFetcherFileRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "cover.gif"), []byte("GIF89a"), 0o644))
	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	f := NewFetcher(nil, WithFileRoot(root))
	ctx := context.Background()

	b, err := f.Fetch(ctx, "cover.gif")
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(b))

	b, err = f.Fetch(ctx, filepath.Join(root, "cover.gif"))
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(b))

	for _, src := range []string{"/etc/passwd", secret, "../" + filepath.Base(outside) + "/secret.txt", "a/../../x"} {
		_, err := f.Fetch(ctx, src)
		assert.ErrorIs(t, err, ErrForbidden, src)
	}

	_, err = f.Fetch(ctx, "missing.png")
	require.ErrorIs(t, err, ErrFetch)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.NotContains(t, err.Error(), root)
}

func TestFetcherFileRootSymlink(t *testing.T) {
	root := t.TempDir()
	secret := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))
	if err := os.Symlink(secret, filepath.Join(root, "link.png")); err != nil {
		t.Skip("symlinks unavailable:", err)
	}

	_, err := NewFetcher(nil, WithFileRoot(root)).Fetch(context.Background(), "link.png")
	assert.ErrorIs(t, err, ErrForbidden)
}

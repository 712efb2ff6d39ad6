package imagepkg

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/mapcards/internal/util"
)

// Fetcher resolves an image source to raw bytes. A source is an http(s) URL,
// a data: URL or a local file path. File paths are refused unless the
// Fetcher was built with WithFileRoot.
type Fetcher struct {
	http     *util.HTTPClient
	files    bool
	root     string
	realRoot string
}

type FetcherOption func(*Fetcher)

// WithFileRoot allows file sources. Relative paths resolve against root and
// nothing outside it is read. An empty root allows any path.
func WithFileRoot(root string) FetcherOption {
	return func(f *Fetcher) {
		f.files = true
		if root == "" {
			return
		}
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		f.root = filepath.Clean(root)
		f.realRoot = f.root
		if real, err := filepath.EvalSymlinks(f.root); err == nil {
			f.realRoot = real
		}
	}
}

func NewFetcher(client *util.HTTPClient, opts ...FetcherOption) *Fetcher {
	if client == nil {
		client = util.NewHTTPClient(0, "")
	}
	f := &Fetcher{http: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the bytes behind source. Every failure wraps ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil, fmt.Errorf("%w: empty source", ErrFetch)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		b, err := f.http.GetBytes(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return b, nil
	case strings.HasPrefix(source, "data:"):
		_, b, err := ParseDataURL(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return b, nil
	default:
		return f.readFile(source)
	}
}

// FetchImage fetches and decodes source.
func (f *Fetcher) FetchImage(ctx context.Context, source string) (image.Image, error) {
	b, err := f.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return DecodeImage(b)
}

// InlineFile reads a local image and returns it as a data URL.
func (f *Fetcher) InlineFile(path string) (string, error) {
	b, err := f.readFile(path)
	if err != nil {
		return "", err
	}
	return "data:" + MimeForPath(path) + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

func (f *Fetcher) readFile(source string) ([]byte, error) {
	path, err := f.resolve(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if f.root != "" {
			// no host path in the message
			return nil, fmt.Errorf("%w: cannot read %s", ErrFetch, source)
		}
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return b, nil
}

// resolve maps source to a path the Fetcher may read.
func (f *Fetcher) resolve(source string) (string, error) {
	if !f.files {
		return "", fmt.Errorf("%w: file sources are disabled", ErrForbidden)
	}
	if f.root == "" {
		return source, nil
	}
	path := source
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.root, path)
	}
	if !within(f.root, path) {
		return "", fmt.Errorf("%w: %s", ErrForbidden, source)
	}
	// a symlink inside the root may still point outside it
	if real, err := filepath.EvalSymlinks(path); err == nil && !within(f.realRoot, real) {
		return "", fmt.Errorf("%w: %s", ErrForbidden, source)
	}
	return path, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

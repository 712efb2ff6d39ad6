package imagepkg

import (
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"github.com/nfnt/resize"
)

const (
	LogoWidth  = 1538
	LogoHeight = 262
)

// defaultLogoSVG is a plain banner mark used when no logo asset is configured.
const defaultLogoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1538 262">` +
	`<g fill="none" stroke="#FFFFFF" stroke-width="14">` +
	`<path d="M70,7 H1468 A63,63 0 0 1 1531,70 V192 A63,63 0 0 1 1468,255 H70 A63,63 0 0 1 7,192 V70 A63,63 0 0 1 70,7 Z"/>` +
	`</g><g fill="#FFFFFF">` +
	`<polygon points="96,56 96,206 226,131"/>` +
	`<polygon points="1442,56 1442,206 1312,131"/>` +
	`<path d="M300,56 H1238 A16,16 0 0 1 1254,72 V88 A16,16 0 0 1 1238,104 H300 A16,16 0 0 1 284,88 V72 A16,16 0 0 1 300,56 Z"/>` +
	`<path d="M380,158 H1158 A16,16 0 0 1 1174,174 V190 A16,16 0 0 1 1158,206 H380 A16,16 0 0 1 364,190 V174 A16,16 0 0 1 380,158 Z"/>` +
	`<circle cx="769" cy="131" r="18"/>` +
	`</g></svg>`

var (
	defaultLogoOnce sync.Once
	defaultLogo     *Logo
	defaultLogoErr  error
)

// Logo is the brand mark composited onto thumbnails, held at its native size.
type Logo struct {
	img    image.Image
	scaled sync.Map // float64 scale -> image.Image
}

// DefaultLogo returns the built-in mark, rasterized once per process.
func DefaultLogo() (*Logo, error) {
	defaultLogoOnce.Do(func() {
		img, err := rasterizeSVG(defaultLogoSVG, LogoWidth, LogoHeight)
		if err != nil {
			defaultLogoErr = fmt.Errorf("default logo: %w", err)
			return
		}
		defaultLogo = &Logo{img: img}
	})
	return defaultLogo, defaultLogoErr
}

// LoadLogo reads a raster logo from disk and normalizes it to the native logo size.
func LoadLogo(path string) (*Logo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading logo: %w", err)
	}
	img, err := DecodeImage(b)
	if err != nil {
		return nil, fmt.Errorf("logo %s: %w", path, err)
	}
	if img.Bounds().Dx() != LogoWidth || img.Bounds().Dy() != LogoHeight {
		img = resize.Resize(LogoWidth, LogoHeight, img, resize.Lanczos3)
	}
	return &Logo{img: img}, nil
}

// Scaled returns the logo at scale times its native size. Results are
// cached per scale and must not be modified.
func (l *Logo) Scaled(scale float64) image.Image {
	if scale == 1 {
		return l.img
	}
	if v, ok := l.scaled.Load(scale); ok {
		return v.(image.Image)
	}
	w := uint(math.Round(LogoWidth * scale))
	h := uint(math.Round(LogoHeight * scale))
	v, _ := l.scaled.LoadOrStore(scale, resize.Resize(w, h, l.img, resize.Lanczos3))
	return v.(image.Image)
}

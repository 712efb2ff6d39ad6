package imagepkg

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// MaxSurfacePixels bounds the size of a single drawing surface.
const MaxSurfacePixels = 8192 * 8192

// Surface is a transparent RGBA canvas owned by a single render call.
type Surface struct {
	dc *gg.Context
}

// NewSurface allocates a w x h surface cleared to transparent.
func NewSurface(w, h int) (s *Surface, err error) {
	if w <= 0 || h <= 0 || w*h > MaxSurfacePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceAllocation, w, h)
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %v", ErrSurfaceAllocation, r)
		}
	}()
	return &Surface{dc: gg.NewContext(w, h)}, nil
}

func (s *Surface) Context() *gg.Context { return s.dc }

func (s *Surface) Width() int { return s.dc.Width() }

func (s *Surface) Height() int { return s.dc.Height() }

func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG encodes the surface losslessly. Identical pixels give identical bytes.
func (s *Surface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, s.dc.Image(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// DataURL encodes the surface as a PNG data URL.
func (s *Surface) DataURL() (string, error) {
	b, err := s.EncodePNG()
	if err != nil {
		return "", err
	}
	return PNGDataURL(b), nil
}

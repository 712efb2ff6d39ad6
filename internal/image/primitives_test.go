package imagepkg

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarPoints(t *testing.T) {
	pts := StarPoints(50, 50, 20)
	require.Len(t, pts, 10)

	assert.InDelta(t, 50, pts[0].X, 1e-9)
	assert.InDelta(t, 30, pts[0].Y, 1e-9)
	for i, p := range pts {
		d := math.Hypot(p.X-50, p.Y-50)
		if i%2 == 0 {
			assert.InDelta(t, 20, d, 1e-9)
		} else {
			assert.InDelta(t, 8, d, 1e-9)
		}
	}
}

func TestArrowPoints(t *testing.T) {
	pts := ArrowPoints(405, 218, 20)
	require.Len(t, pts, 3)
	assert.InDelta(t, 397, pts[0].X, 1e-9)
	assert.InDelta(t, 208, pts[0].Y, 1e-9)
	assert.InDelta(t, 413, pts[1].X, 1e-9)
	assert.InDelta(t, 218, pts[1].Y, 1e-9)
	assert.InDelta(t, 228, pts[2].Y, 1e-9)
}

func TestDrawStarFillsCenter(t *testing.T) {
	s, err := NewSurface(40, 40)
	require.NoError(t, err)
	DrawStar(s.Context(), 20, 20, 15, color.White)

	_, _, _, a := s.Image().At(20, 20).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = s.Image().At(1, 38).RGBA()
	assert.Zero(t, a)
}

func TestDrawRoundedImageRespectsCorners(t *testing.T) {
	s, err := NewSurface(100, 100)
	require.NoError(t, err)
	src := solid(50, 50, color.NRGBA{0, 255, 0, 255})
	DrawRoundedImage(s.Context(), src, 10, 10, 80, 80, 20)

	_, g, _, _ := s.Image().At(50, 50).RGBA()
	assert.Equal(t, uint32(0xffff), g)
	_, _, _, a := s.Image().At(11, 11).RGBA()
	assert.Zero(t, a)
}

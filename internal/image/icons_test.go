package imagepkg

import (
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaquePixels(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestRenderIcon(t *testing.T) {
	for _, id := range []IconID{IconKey, IconClock, IconMetronome} {
		img, err := RenderIcon(id, 24)
		require.NoError(t, err, id)
		assert.Equal(t, image.Rect(0, 0, 24, 24), img.Bounds())
		assert.Positive(t, opaquePixels(img), id)
	}

	again, err := RenderIcon(IconKey, 24)
	require.NoError(t, err)
	first, _ := RenderIcon(IconKey, 24)
	assert.Same(t, first.(*image.RGBA), again.(*image.RGBA))

	_, err = RenderIcon("nope", 24)
	assert.Error(t, err)
}

func TestLogo(t *testing.T) {
	l, err := DefaultLogo()
	require.NoError(t, err)
	full := l.Scaled(1)
	assert.Equal(t, image.Rect(0, 0, LogoWidth, LogoHeight), full.Bounds())
	assert.Positive(t, opaquePixels(full))

	small := l.Scaled(0.3)
	assert.Equal(t, 461, small.Bounds().Dx())
	assert.Equal(t, 79, small.Bounds().Dy())
	assert.Same(t, small, l.Scaled(0.3))
}

func TestLogoScaledConcurrent(t *testing.T) {
	l := &Logo{img: solid(LogoWidth, LogoHeight, color.NRGBA{255, 255, 255, 255})}

	var wg sync.WaitGroup
	got := make([]image.Image, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = l.Scaled(0.5)
		}(i)
	}
	wg.Wait()
	for _, img := range got {
		assert.Same(t, got[0], img)
	}
	assert.Equal(t, LogoWidth/2, got[0].Bounds().Dx())
}

func TestMapQRPNG(t *testing.T) {
	b, err := MapQRPNG("3f1a2", 128)
	require.NoError(t, err)
	img, err := DecodeImage(b)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	assert.Equal(t, "https://beatsaver.com/maps/3f1a2", MapShareURL("3f1a2"))
}

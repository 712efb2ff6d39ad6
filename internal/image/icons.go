package imagepkg

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
)

type IconID string

const (
	IconKey       IconID = "key"
	IconClock     IconID = "clock"
	IconMetronome IconID = "metronome"
)

const strokedIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
	`<g fill="none" stroke="#FFFFFF" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</g></svg>`

var iconSources = map[IconID]string{
	IconKey: fmt.Sprintf(strokedIcon,
		`<path d="m15.5 7.5 2.3 2.3a1 1 0 0 0 1.4 0l2.1-2.1a1 1 0 0 0 0-1.4L19 4"/>`+
			`<path d="m21 2-9.6 9.6"/>`+
			`<circle cx="7.5" cy="15.5" r="5.5"/>`),
	IconClock: fmt.Sprintf(strokedIcon,
		`<circle cx="12" cy="12" r="10"/>`+
			`<polyline points="12,6 12,12 16,14"/>`),
	IconMetronome: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1280 1280"><g fill="#FFFFFF">` +
		`<path d="M703.47,886.75l-428.38-463.1c-9.94-10.75-26.71-11.4-37.46-1.46l-41.85,38.72c-10.75,9.94-11.4,26.71-1.46,37.46l428.38,463.1c9.94,10.75,26.71,11.4,37.46,1.46l41.85-38.72C712.76,914.27,713.41,897.5,703.47,886.75z"/>` +
		`<polygon points="817.7,135.5 484.43,135.5 392.26,471.63 470.09,555.77 558.65,232.81 743.36,232.81 965.35,1047.19 335.33,1047.19 400.45,809.71 322.62,725.58 207.75,1144.5 1092.73,1144.5"/>` +
		`</g></svg>`,
}

type iconKey struct {
	id   IconID
	size int
}

// icon bitmaps are immutable once stored
var iconCache sync.Map

// RenderIcon rasterizes a built-in icon into a size x size bitmap.
func RenderIcon(id IconID, size int) (image.Image, error) {
	k := iconKey{id, size}
	if v, ok := iconCache.Load(k); ok {
		return v.(image.Image), nil
	}
	src, ok := iconSources[id]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", id)
	}
	if size <= 0 {
		return nil, fmt.Errorf("icon %q: invalid size %d", id, size)
	}
	img, err := rasterizeSVG(src, size, size)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", id, err)
	}
	v, _ := iconCache.LoadOrStore(k, image.Image(img))
	return v.(image.Image), nil
}

// DrawIcon draws a built-in icon with its top-left corner at (x, y).
func DrawIcon(dc *gg.Context, id IconID, x, y, size float64) error {
	img, err := RenderIcon(id, int(math.Round(size)))
	if err != nil {
		return err
	}
	dc.DrawImage(img, int(math.Round(x)), int(math.Round(y)))
	return nil
}

package imagepkg

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const mapShareBase = "https://beatsaver.com/maps/"

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("qr: empty text")
	}
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return pngBytes, nil
}

// MapShareURL is the public page of a map.
func MapShareURL(id string) string {
	return mapShareBase + id
}

// MapQRPNG encodes the share URL of a map as a QR code.
func MapQRPNG(id string, size int) ([]byte, error) {
	return GenerateQRPNG(MapShareURL(id), size)
}

package imagepkg

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/youruser/mapcards/internal/util"
)

const pngDataURLPrefix = "data:image/png;base64,"

var errBadDataURL = errors.New("malformed data URL")

// PNGDataURL wraps PNG bytes as a data URL.
func PNGDataURL(png []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(png)
}

// ParseDataURL splits a base64 data URL into its media type and payload.
func ParseDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errBadDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errBadDataURL
	}
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", errBadDataURL)
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errBadDataURL, err)
	}
	return mime, b, nil
}

// MimeForPath guesses an image media type from the file extension.
func MimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/png"
	}
}

// SaveDataURL decodes a data URL and writes its payload to path.
func SaveDataURL(path, dataURL string) (int, error) {
	_, b, err := ParseDataURL(dataURL)
	if err != nil {
		return 0, err
	}
	if err := util.WriteFile(path, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

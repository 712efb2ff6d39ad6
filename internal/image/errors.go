package imagepkg

import "errors"

var (
	ErrFetch             = errors.New("image fetch failed")
	ErrDecode            = errors.New("image decode failed")
	ErrSurfaceAllocation = errors.New("surface allocation failed")
	ErrEncoding          = errors.New("png encoding failed")

	// ErrForbidden marks a local path the Fetcher is not allowed to read.
	// It is always reported together with ErrFetch.
	ErrForbidden = errors.New("local path not allowed")
)

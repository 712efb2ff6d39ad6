package beatmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads one map document. Syntax and type errors wrap ErrMalformedInput.
func Decode(r io.Reader) (*MapInfo, error) {
	var m MapInfo
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return &m, nil
}

// LoadFile reads a map document from disk.
func LoadFile(path string) (*MapInfo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	m, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return m, nil
}

// LoadRatingsFile reads a rating set from disk.
func LoadRatingsFile(path string) (RatingSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	var rs RatingSet
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return rs, nil
}

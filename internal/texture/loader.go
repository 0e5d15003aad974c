package texture

import (
	"fmt"

	"mml2-dash-decoder/internal/archive"
)

// LoadTexture reads a texture block from disk (optionally .zst compressed)
// and decodes it.
func LoadTexture(path string) (*Decoded, error) {
	f, err := archive.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	d, err := Decode(f.Raw)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return d, nil
}

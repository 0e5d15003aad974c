package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image container.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
)

// FormatFor picks the container from a file extension, defaulting to WebP.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		return TGA
	case ".png":
		return PNG
	default:
		return WebP
	}
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("preview: unknown format %q", f)
	}
}

// WriteFile encodes img to path, creating parent directories. The format
// follows the file extension.
func WriteFile(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	if err := Encode(f, img, FormatFor(path)); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}

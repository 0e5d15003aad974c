package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// File is a raw archive read from disk.
type File struct {
	Path   string
	Raw    []byte
	Digest uint64 // xxhash64 of Raw after decompression
}

// ReadFile loads an archive or texture file. Files ending in .zst are
// decompressed transparently.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("archive: read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".zst") {
		raw, err = decompressZstd(raw)
		if err != nil {
			return nil, fmt.Errorf("archive: zstd %s: %w", path, err)
		}
	}

	return &File{
		Path:   path,
		Raw:    raw,
		Digest: xxhash.Sum64(raw),
	}, nil
}

// Payload unwraps the archive envelope of f.
func (f *File) Payload() ([]byte, error) {
	p, err := Payload(f.Raw)
	if err != nil {
		return nil, fmt.Errorf("archive: %s: %w", f.Path, err)
	}
	return p, nil
}

func decompressZstd(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}

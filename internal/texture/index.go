package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// An uncompressed file wins over a .zst copy of the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir recursively and indexes every regular file.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		stem := stemOf(path)
		existing, exists := idx.entries[stem]
		if !exists || (isZstd(existing) && !isZstd(path)) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
func (idx *Index) ResolvePath(texName string) (string, bool) {
	path, ok := idx.entries[stemOf(strings.ReplaceAll(texName, "\\", "/"))]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	if isZstd(base) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func isZstd(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

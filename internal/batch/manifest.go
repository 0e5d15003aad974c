package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one character in the output manifest.
type ManifestEntry struct {
	Name      string   `json:"name"`
	File      string   `json:"file"`
	Digest    string   `json:"xxhash64,omitempty"`
	Bones     int      `json:"bones"`
	Meshes    int      `json:"meshes"`
	Vertices  int      `json:"vertices"`
	Triangles int      `json:"triangles"`
	Skipped   []string `json:"skipped_strips,omitempty"`
	Preview   string   `json:"texture_preview,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every result.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:      r.Name,
			File:      r.File,
			Bones:     r.Bones,
			Meshes:    r.Meshes,
			Vertices:  r.Vertices,
			Triangles: r.Triangles,
			Skipped:   r.Skipped,
			Preview:   r.Preview,
			Error:     r.Error,
		}
		if r.Digest != 0 {
			entries[i].Digest = fmt.Sprintf("%016x", r.Digest)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

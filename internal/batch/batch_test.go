package batch

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mml2-dash-decoder/internal/archive"
	"mml2-dash-decoder/internal/roster"
	"mml2-dash-decoder/internal/texture"
)

func writeArchive(t *testing.T, path string) {
	t.Helper()
	payload := make([]byte, 0x3000)
	raw := make([]byte, archive.PayloadStart+len(payload))
	binary.LittleEndian.PutUint32(raw[archive.PayloadLengthOffset:], uint32(len(payload)))
	copy(raw[archive.PayloadStart:], payload)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}
}

// writeTexture stores a 4×1 texture with a 16-colour palette as a
// literal-only stream.
func writeTexture(t *testing.T, path string) {
	t.Helper()
	data := make([]byte, 34)
	binary.LittleEndian.PutUint16(data[2:], 0x001f)
	data[32], data[33] = 0x10, 0x10

	block := make([]byte, texture.StreamOffset+4, texture.StreamOffset+4+len(data))
	binary.LittleEndian.PutUint32(block[0x04:], uint32(len(data)))
	binary.LittleEndian.PutUint16(block[0x10:], 16)
	binary.LittleEndian.PutUint16(block[0x12:], 1)
	binary.LittleEndian.PutUint16(block[0x18:], 1)
	binary.LittleEndian.PutUint16(block[0x1a:], 1)
	binary.LittleEndian.PutUint16(block[0x24:], 4)
	block = append(block, data...)
	if err := os.WriteFile(path, block, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	base := t.TempDir()
	archives := filepath.Join(base, "PL")
	textures := filepath.Join(base, "TIM")
	out := filepath.Join(base, "out")
	for _, d := range []string{archives, textures} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	writeArchive(t, filepath.Join(archives, "PL00.BIN"))
	writeTexture(t, filepath.Join(textures, "PL00T.TIM"))

	chars := []roster.Character{
		{Name: "MegaMan", File: "PL00.BIN", Texture: "PL00T"},
		{Name: "Roll", File: "PL01.BIN"},
	}
	results := Run(Config{
		ArchiveDir:   archives,
		OutputDir:    out,
		TexResolver:  texture.NewCache(texture.BuildIndex(textures)),
		PreviewScale: 2,
		Workers:      2,
	}, chars)

	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	mm := results[0]
	if !mm.Success || mm.Name != "MegaMan" || mm.Bones != 15 || mm.Meshes != 20 || mm.Digest == 0 {
		t.Fatalf("MegaMan result = %+v", mm)
	}
	if mm.Preview != "MegaMan.webp" {
		t.Errorf("preview = %q", mm.Preview)
	}
	if _, err := os.Stat(filepath.Join(out, mm.Preview)); err != nil {
		t.Errorf("preview not written: %v", err)
	}
	if results[1].Success || results[1].Error == "" {
		t.Errorf("Roll should fail without an archive: %+v", results[1])
	}

	manifest := filepath.Join(out, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || len(entries[0].Digest) != 16 || entries[1].Error == "" {
		t.Errorf("manifest = %+v", entries)
	}
}

func TestFindArchiveZstFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "PL02.BIN.zst"), []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := findArchive(dir, "PL02.BIN")
	if err != nil || got != filepath.Join(dir, "PL02.BIN.zst") {
		t.Fatalf("findArchive = %s, %v", got, err)
	}
	if _, err := findArchive(dir, "PL03.BIN"); err == nil {
		t.Error("expected error for missing archive")
	}
}

package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{248, 0, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 248, 255})
	return img
}

func TestUpscale(t *testing.T) {
	src := checker()
	if Upscale(src, 1) != src {
		t.Error("factor 1 should return the source image")
	}

	big := Upscale(src, 3)
	if b := big.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v", b)
	}
	for _, p := range []image.Point{{0, 0}, {2, 2}} {
		if c := big.NRGBAAt(p.X, p.Y); c != (color.NRGBA{248, 0, 0, 255}) {
			t.Errorf("pixel %v = %v", p, c)
		}
	}
	if c := big.NRGBAAt(3, 0); c.A != 0 {
		t.Errorf("transparent texel became %v", c)
	}
	if c := big.NRGBAAt(5, 5); c != (color.NRGBA{0, 0, 248, 255}) {
		t.Errorf("pixel (5,5) = %v", c)
	}
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"a.webp": WebP,
		"a.TGA":  TGA,
		"a.png":  PNG,
		"a":      WebP,
	}
	for path, want := range cases {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%s) = %s, want %s", path, got, want)
		}
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, checker(), PNG); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, _, _, a := img.At(0, 0).RGBA()
	if r>>8 != 248 || a>>8 != 255 {
		t.Errorf("decoded pixel = %v", img.At(0, 0))
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x.webp", "x.tga", "sub/x.png"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, checker()); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: %v", name, err)
		}
	}
	if err := Encode(&bytes.Buffer{}, checker(), Format("bmp")); err == nil {
		t.Error("expected error for unknown format")
	}
}

package texture

import (
	"image"

	"mml2-dash-decoder/internal/decodeerr"
)

// Image renders the indices through CLUT clut. Pixels past the end of the
// index data stay transparent.
func (d *Decoded) Image(clut int) (*image.NRGBA, error) {
	if clut < 0 || clut >= len(d.Palettes) {
		return nil, decodeerr.New("image", 0, decodeerr.ErrCorruptStream,
			"palette %d requested, texture has %d", clut, len(d.Palettes))
	}
	pal := d.Palettes[clut]

	w, h := d.Header.PixelWidth(), d.Header.PixelHeight()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	n := w * h
	if len(d.Indices) < n {
		n = len(d.Indices)
	}
	for i := 0; i < n; i++ {
		idx := int(d.Indices[i])
		if idx >= len(pal) {
			return nil, decodeerr.New("image", i, decodeerr.ErrCorruptStream,
				"palette index %d outside %d-color palette", idx, len(pal))
		}
		c := pal[idx]
		o := img.PixOffset(i%w, i/w)
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img, nil
}

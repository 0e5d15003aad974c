package texture

import (
	"image/color"

	"mml2-dash-decoder/internal/binio"
	"mml2-dash-decoder/internal/decodeerr"
)

// WordToColor expands a 15-bit BGR word. Only the all-zero word is
// transparent; bit 15 is ignored.
func WordToColor(w uint16) color.NRGBA {
	c := color.NRGBA{
		R: uint8((w & 0x1f) << 3),
		G: uint8(((w >> 5) & 0x1f) << 3),
		B: uint8(((w >> 10) & 0x1f) << 3),
	}
	if w != 0 {
		c.A = 0xff
	}
	return c
}

// ReadPalette converts count raw palette words starting at off. It works on
// decompressed buffers and on uncompressed palette blocks alike.
func ReadPalette(raw []byte, off, count int) ([]color.NRGBA, error) {
	pal := make([]color.NRGBA, count)
	for i := range pal {
		w, err := binio.ReadU16(raw, off+i*2)
		if err != nil {
			return nil, err
		}
		pal[i] = WordToColor(w)
	}
	return pal, nil
}

// Decoded is an unpacked texture: one or more CLUTs plus row-major palette
// indices.
type Decoded struct {
	Header   Header
	Palettes [][]color.NRGBA
	Indices  []uint8
}

// Palette returns the first CLUT, or nil when the texture has none.
func (d *Decoded) Palette() []color.NRGBA {
	if len(d.Palettes) == 0 {
		return nil
	}
	return d.Palettes[0]
}

// Unpack splits a decompressed buffer into palettes and pixel indices.
func Unpack(h Header, buf []byte) (*Decoded, error) {
	paletteBytes := h.PaletteCount * h.ColorCount * 2
	if paletteBytes > len(buf) {
		return nil, decodeerr.New("palette", 0, decodeerr.ErrCorruptStream,
			"%d palettes of %d colors need %d bytes, have %d",
			h.PaletteCount, h.ColorCount, paletteBytes, len(buf))
	}

	d := &Decoded{
		Header:   h,
		Palettes: make([][]color.NRGBA, h.PaletteCount),
	}
	for i := range d.Palettes {
		pal, err := ReadPalette(buf, i*h.ColorCount*2, h.ColorCount)
		if err != nil {
			return nil, err
		}
		d.Palettes[i] = pal
	}

	pixels := buf[paletteBytes:]
	if h.Is8Bit() {
		d.Indices = make([]uint8, len(pixels))
		copy(d.Indices, pixels)
		return d, nil
	}

	d.Indices = make([]uint8, 0, len(pixels)*2)
	for _, b := range pixels {
		d.Indices = append(d.Indices, b&0x0f, b>>4)
	}
	return d, nil
}

// Decode runs the full pipeline on a texture block: header, decompression,
// then palette/index unpacking.
func Decode(block []byte) (*Decoded, error) {
	h, err := ParseHeader(block)
	if err != nil {
		return nil, err
	}
	buf, err := Decompress(block[StreamOffset:], h.BitfieldSize, h.DecompressedSize)
	if err != nil {
		return nil, err
	}
	return Unpack(h, buf)
}

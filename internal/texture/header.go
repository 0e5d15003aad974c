package texture

import (
	"mml2-dash-decoder/internal/binio"
	"mml2-dash-decoder/internal/decodeerr"
)

const (
	// StreamOffset is where the bitfield table starts inside a texture block.
	StreamOffset = 0x30
	// DefaultSize is the render size used when the header carries no dimensions.
	DefaultSize = 256
)

// Header is the fixed 0x30-byte prefix of a compressed texture block.
// Width is in VRAM halfword units; use PixelWidth for pixels.
type Header struct {
	Type             uint32
	DecompressedSize int
	PaletteX         uint16
	PaletteY         uint16
	ColorCount       int
	PaletteCount     int
	ImageX           uint16
	ImageY           uint16
	Width            int
	Height           int
	BitfieldSize     int
	PayloadSize      int
}

// ParseHeader reads the texture header at the start of block.
func ParseHeader(block []byte) (Header, error) {
	if len(block) < StreamOffset {
		return Header{}, decodeerr.New("texture", 0, decodeerr.ErrOutOfBounds,
			"block of %d bytes is shorter than its 0x%x-byte header", len(block), StreamOffset)
	}

	r := binio.NewReader(block, 0)
	var h Header
	h.Type = r.U32()
	h.DecompressedSize = int(r.U32())
	r.Seek(0x0c)
	h.PaletteX = r.U16()
	h.PaletteY = r.U16()
	h.ColorCount = int(r.U16())
	h.PaletteCount = int(r.U16())
	h.ImageX = r.U16()
	h.ImageY = r.U16()
	h.Width = int(r.U16())
	h.Height = int(r.U16())
	r.Seek(0x24)
	h.BitfieldSize = int(r.U16())
	h.PayloadSize = int(r.U16())
	if err := r.Err(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Is8Bit reports whether pixels are stored one palette index per byte.
func (h Header) Is8Bit() bool {
	return h.ColorCount == 256
}

// PixelWidth converts the VRAM width into pixels: four 4-bit or two 8-bit
// indices fit one halfword.
func (h Header) PixelWidth() int {
	if h.Width == 0 {
		return DefaultSize
	}
	if h.Is8Bit() {
		return h.Width * 2
	}
	return h.Width * 4
}

func (h Header) PixelHeight() int {
	if h.Height == 0 {
		return DefaultSize
	}
	return h.Height
}

package mesh

import (
	"encoding/binary"

	"mml2-dash-decoder/internal/decodeerr"
)

const (
	// FaceSize is one face record: four UV byte pairs and a packed index word.
	FaceSize = 0x0c

	faceIndexMask = 0x7f
	pixelToUnit   = 0.00390625
	halfTexel     = 0.001953125
)

// Corner is one triangle corner.
type Corner struct {
	Material int
	Vertex   int
	U, V     float32
}

// Triangle is three corners in output winding.
type Triangle [3]Corner

// DecodeFace decodes one 12-byte record. The first triangle is emitted as
// (A, C, B); quads add (B, C, D). The winding sets the face normal.
func DecodeFace(rec []byte, isQuad bool) ([]Triangle, error) {
	if len(rec) < FaceSize {
		return nil, decodeerr.New("mesh", 0, decodeerr.ErrOutOfBounds,
			"face record of %d bytes, need %d", len(rec), FaceSize)
	}
	word := binary.LittleEndian.Uint32(rec[8:])
	material := int(word>>28) & 0x3

	var c [4]Corner
	for i := range c {
		c[i] = Corner{
			Material: material,
			Vertex:   int(word>>(7*uint(i))) & faceIndexMask,
			U:        uvUnit(rec[i*2]),
			V:        uvUnit(rec[i*2+1]),
		}
	}
	a, b, cc, d := c[0], c[1], c[2], c[3]

	if !isQuad {
		return []Triangle{{a, cc, b}}, nil
	}
	return []Triangle{{a, cc, b}, {b, cc, d}}, nil
}

func uvUnit(b byte) float32 {
	return float32(float64(b)*pixelToUnit + halfTexel)
}

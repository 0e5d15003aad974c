// Package mesh decodes the per-part geometry strips of a character payload.
package mesh

import (
	"fmt"

	"mml2-dash-decoder/internal/binio"
)

// HeaderSize is the size of one strip header; headers are packed back to back.
const HeaderSize = 0x18

// StripHeader locates one part's geometry. Offsets are payload-relative.
type StripHeader struct {
	Name              string
	TriangleCount     int
	QuadCount         int
	VertexCount       int
	TriangleOffset    int
	QuadOffset        int
	VertexOffset      int
	ActiveColorOffset int
	StaticColorOffset int
}

// ReadStrips reads len(names) consecutive headers starting at base.
func ReadStrips(payload []byte, base int, names []string) ([]StripHeader, error) {
	r := binio.NewReader(payload, base)
	strips := make([]StripHeader, 0, len(names))
	for _, name := range names {
		start := r.Offset()
		h := StripHeader{Name: name}
		h.TriangleCount = int(r.U8())
		h.QuadCount = int(r.U8())
		h.VertexCount = int(r.U8())
		r.Skip(1)
		h.TriangleOffset = int(r.U32())
		h.QuadOffset = int(r.U32())
		h.VertexOffset = int(r.U32())
		h.ActiveColorOffset = int(r.U32())
		h.StaticColorOffset = int(r.U32())
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("mesh: strip %s header at 0x%x: %w", name, start, err)
		}
		strips = append(strips, h)
	}
	return strips, nil
}

package mesh

import (
	"mml2-dash-decoder/internal/mathutil"
	"mml2-dash-decoder/internal/skeleton"
)

const (
	vertexMask = 0x3ff
	vertexSign = 0x200
)

// DecodeVertex splits a packed word into three 10-bit two's-complement
// fields at bits 0, 10 and 20, then scales them to world units.
func DecodeVertex(word uint32) mathutil.Vec3 {
	return mathutil.Vec3{
		float64(signed10(word)) * skeleton.Scale,
		float64(signed10(word>>10)) * skeleton.Scale,
		float64(signed10(word>>20)) * skeleton.Scale,
	}
}

// signed10 returns -512..511.
func signed10(v uint32) int {
	f := int(v & vertexMask)
	return f&(vertexSign-1) - f&vertexSign
}

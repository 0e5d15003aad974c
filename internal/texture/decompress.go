package texture

import (
	"encoding/binary"

	"mml2-dash-decoder/internal/binio"
	"mml2-dash-decoder/internal/decodeerr"
)

const (
	// WindowSize is how far a 0xFFFF command moves the back-reference base.
	WindowSize = 0x2000

	windowJump = 0xFFFF
)

// maxRun is the longest back-reference, so one command word never yields
// more than this many bytes.
const maxRun = 16

// Decompress expands a bitfield-driven stream. src starts at the bitfield
// table of bitfieldSize bytes; the 16-bit command words follow it. Each flag
// bit, MSB first within its u32, consumes one word: 0 copies the word
// literally, 1 is a back-reference into the output (or a window jump when the
// word is 0xFFFF). The result is exactly decompressedSize bytes.
//
// Error offsets are relative to the texture block, with src at StreamOffset.
func Decompress(src []byte, bitfieldSize, decompressedSize int) ([]byte, error) {
	if bitfieldSize < 0 || decompressedSize < 0 {
		return nil, decodeerr.New("decompress", StreamOffset, decodeerr.ErrCorruptStream,
			"negative sizes (bitfield %d, output %d)", bitfieldSize, decompressedSize)
	}

	// Reject sizes the input cannot produce before allocating the output.
	flagBits := (bitfieldSize + 3) / 4 * 32
	words := 0
	if len(src) > bitfieldSize {
		words = (len(src) - bitfieldSize) / 2
	}
	if limit := min(flagBits, words) * maxRun; decompressedSize > limit {
		return nil, decodeerr.New("decompress", StreamOffset, decodeerr.ErrCorruptStream,
			"%d-byte output exceeds the %d bytes %d flags and %d words can produce",
			decompressedSize, limit, flagBits, words)
	}

	out := make([]byte, decompressedSize)
	outPos := 0
	window := 0
	cur := bitfieldSize

	for flagOff := 0; flagOff < bitfieldSize; flagOff += 4 {
		flags, err := binio.ReadU32(src, flagOff)
		if err != nil {
			return nil, decodeerr.Wrap("decompress", StreamOffset+flagOff, decodeerr.ErrOutOfBounds, err)
		}

		for k := 31; k >= 0; k-- {
			if outPos == decompressedSize {
				return out, nil
			}

			word, err := binio.ReadU16(src, cur)
			if err != nil {
				return nil, decodeerr.Wrap("decompress", StreamOffset+cur, decodeerr.ErrOutOfBounds, err)
			}
			cur += 2

			if flags&(1<<uint(k)) == 0 {
				if outPos+2 > decompressedSize {
					return nil, decodeerr.New("decompress", StreamOffset+cur-2, decodeerr.ErrCorruptStream,
						"literal at output 0x%x overruns %d-byte target", outPos, decompressedSize)
				}
				binary.LittleEndian.PutUint16(out[outPos:], word)
				outPos += 2
				continue
			}

			if word == windowJump {
				window += WindowSize
				continue
			}

			from := window + int((word>>3)&0x1fff)
			n := (int(word&0x7) + 2) * 2
			if from >= outPos {
				return nil, decodeerr.New("decompress", StreamOffset+cur-2, decodeerr.ErrCorruptStream,
					"back-reference to 0x%x reads past output cursor 0x%x", from, outPos)
			}
			// Byte at a time: runs may overlap the bytes they produce.
			for i := 0; i < n && outPos < decompressedSize; i++ {
				out[outPos] = out[from+i]
				outPos++
			}
		}
	}

	if outPos != decompressedSize {
		return nil, decodeerr.New("decompress", StreamOffset+cur, decodeerr.ErrCorruptStream,
			"bitfield exhausted after %d of %d bytes", outPos, decompressedSize)
	}
	return out, nil
}

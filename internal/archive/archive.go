// Package archive unwraps the character archive envelope.
package archive

import (
	"mml2-dash-decoder/internal/binio"
	"mml2-dash-decoder/internal/decodeerr"
)

const (
	// PayloadLengthOffset holds the u32 payload size.
	PayloadLengthOffset = 0x04
	// PayloadStart is where the embedded payload begins; every format offset
	// in the model is relative to it.
	PayloadStart = 0x30
)

// Payload returns the embedded payload of a raw archive. The returned slice
// aliases raw and must be treated as read-only.
func Payload(raw []byte) ([]byte, error) {
	length, err := binio.ReadU32(raw, PayloadLengthOffset)
	if err != nil {
		return nil, err
	}
	if len(raw) < PayloadStart || uint64(length) > uint64(len(raw)-PayloadStart) {
		return nil, decodeerr.New("archive", PayloadStart, decodeerr.ErrOutOfBounds,
			"payload of %d bytes exceeds archive of %d bytes", length, len(raw))
	}
	end := PayloadStart + int(length)
	return raw[PayloadStart:end:end], nil
}

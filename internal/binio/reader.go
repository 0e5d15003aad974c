// Package binio reads little-endian primitives out of immutable byte buffers.
package binio

import (
	"encoding/binary"

	"mml2-dash-decoder/internal/decodeerr"
)

func check(buf []byte, off, width int) error {
	if off < 0 || off+width > len(buf) {
		return decodeerr.New("binio", off, decodeerr.ErrOutOfBounds,
			"read of %d bytes, buffer is %d bytes", width, len(buf))
	}
	return nil
}

func ReadU8(buf []byte, off int) (uint8, error) {
	if err := check(buf, off, 1); err != nil {
		return 0, err
	}
	return buf[off], nil
}

func ReadU16(buf []byte, off int) (uint16, error) {
	if err := check(buf, off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[off:]), nil
}

func ReadU32(buf []byte, off int) (uint32, error) {
	if err := check(buf, off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[off:]), nil
}

func ReadI16(buf []byte, off int) (int16, error) {
	v, err := ReadU16(buf, off)
	return int16(v), err
}

// Fits reports whether n bytes starting at off lie inside buf.
func Fits(buf []byte, off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(buf)
}

// Reader is a sequential cursor over a buffer. The first failed read is kept
// in Err and every later read returns zero.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte, off int) *Reader {
	return &Reader{data: data, off: off}
}

func (r *Reader) Offset() int { return r.off }

func (r *Reader) Err() error { return r.err }

func (r *Reader) Seek(off int) { r.off = off }

func (r *Reader) Skip(n int) { r.off += n }

func (r *Reader) U8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := ReadU8(r.data, r.off)
	r.err = err
	r.off++
	return v
}

func (r *Reader) U16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := ReadU16(r.data, r.off)
	r.err = err
	r.off += 2
	return v
}

func (r *Reader) U32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := ReadU32(r.data, r.off)
	r.err = err
	r.off += 4
	return v
}

func (r *Reader) I16() int16 {
	return int16(r.U16())
}

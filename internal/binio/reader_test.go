package binio

import (
	"errors"
	"testing"

	"mml2-dash-decoder/internal/decodeerr"
)

func TestReadPrimitives(t *testing.T) {
	buf := []byte{0x01, 0x00, 0xFF, 0xFF, 0x78, 0x56, 0x34, 0x12}

	if v, err := ReadU16(buf, 0); err != nil || v != 1 {
		t.Errorf("ReadU16(0) = %d, %v; want 1", v, err)
	}
	if v, err := ReadI16(buf, 2); err != nil || v != -1 {
		t.Errorf("ReadI16(2) = %d, %v; want -1", v, err)
	}
	if v, err := ReadU16(buf, 2); err != nil || v != 0xFFFF {
		t.Errorf("ReadU16(2) = 0x%x, %v; want 0xffff", v, err)
	}
	if v, err := ReadU32(buf, 4); err != nil || v != 0x12345678 {
		t.Errorf("ReadU32(4) = 0x%x, %v; want 0x12345678", v, err)
	}
	if v, err := ReadU8(buf, 7); err != nil || v != 0x12 {
		t.Errorf("ReadU8(7) = 0x%x, %v; want 0x12", v, err)
	}
}

func TestReadOutOfBounds(t *testing.T) {
	buf := []byte{0, 1, 2}
	for name, read := range map[string]func() error{
		"u8 past end":   func() error { _, err := ReadU8(buf, 3); return err },
		"u16 straddles": func() error { _, err := ReadU16(buf, 2); return err },
		"u32 too short": func() error { _, err := ReadU32(buf, 0); return err },
		"i16 negative":  func() error { _, err := ReadI16(buf, -1); return err },
	} {
		err := read()
		if !errors.Is(err, decodeerr.ErrOutOfBounds) {
			t.Errorf("%s: expected ErrOutOfBounds, got %v", name, err)
		}
		var de *decodeerr.Error
		if !errors.As(err, &de) || de.Component != "binio" {
			t.Errorf("%s: expected binio decode error, got %#v", name, err)
		}
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader([]byte{0x02, 0x03, 0x00}, 0)
	if v := r.U8(); v != 2 {
		t.Fatalf("U8 = %d, want 2", v)
	}
	if v := r.U16(); v != 3 {
		t.Fatalf("U16 = %d, want 3", v)
	}
	if v := r.U32(); v != 0 {
		t.Errorf("U32 past end = %d, want 0", v)
	}
	if !errors.Is(r.Err(), decodeerr.ErrOutOfBounds) {
		t.Fatalf("expected sticky ErrOutOfBounds, got %v", r.Err())
	}
	r.Seek(0)
	if v := r.U8(); v != 0 {
		t.Errorf("read after error = %d, want 0", v)
	}
}

func TestFits(t *testing.T) {
	buf := make([]byte, 8)
	cases := []struct {
		off, n int
		want   bool
	}{
		{0, 8, true},
		{4, 4, true},
		{5, 4, false},
		{-1, 1, false},
		{8, 0, true},
	}
	for _, c := range cases {
		if got := Fits(buf, c.off, c.n); got != c.want {
			t.Errorf("Fits(%d, %d) = %v, want %v", c.off, c.n, got, c.want)
		}
	}
}

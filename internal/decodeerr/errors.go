package decodeerr

import (
	"errors"
	"fmt"
)

// Error kinds. Every decode failure wraps exactly one of these so callers can
// branch with errors.Is.
var (
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrCorruptStream     = errors.New("corrupt stream")
	ErrMalformedSkeleton = errors.New("malformed skeleton")
	ErrTruncatedStrip    = errors.New("truncated strip")
)

// Error attaches the failing component and byte offset to a decode error.
type Error struct {
	Component string
	Offset    int
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: offset 0x%x: %v", e.Component, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps kind with a formatted detail message.
func New(component string, offset int, kind error, format string, args ...any) *Error {
	return &Error{
		Component: component,
		Offset:    offset,
		Err:       fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// Wrap re-labels an underlying error (usually an out-of-bounds read) under kind,
// keeping both reachable through errors.Is.
func Wrap(component string, offset int, kind, err error) *Error {
	return &Error{
		Component: component,
		Offset:    offset,
		Err:       fmt.Errorf("%w: %w", kind, err),
	}
}

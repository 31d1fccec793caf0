package data

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidText = errors.New("bytes are not valid text")
	ErrEmptyKey    = errors.New("key must not be empty")
)

// LengthMismatchError is returned (or panicked by MustXor) when two
// sequences of different length are combined.
type LengthMismatchError struct {
	Left, Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("buffers must be the same length (%d, %d)", e.Left, e.Right)
}

// DecodingError reports malformed input for an encoding.
type DecodingError struct {
	Encoding string
	Line     int
	Err      error
}

func (e *DecodingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s decode (line %d): %v", e.Encoding, e.Line, e.Err)
	}
	return fmt.Sprintf("%s decode: %v", e.Encoding, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

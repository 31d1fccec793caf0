// Package data holds the byte container used to parse ciphertexts and
// render recovered plaintexts.
package data

import (
	"bytes"
	"fmt"
)

// Sequence is an immutable run of bytes paired with the Encoding used to
// render it. The zero value is an empty ASCII sequence.
type Sequence struct {
	b   []byte
	enc Encoding
}

// New copies b into a Sequence rendered with enc.
func New(b []byte, enc Encoding) Sequence {
	out := make([]byte, len(b))
	copy(out, b)
	return Sequence{b: out, enc: enc}
}

func FromBytes(b []byte) Sequence {
	return New(b, ASCII)
}

// FromText takes one byte per byte of s.
func FromText(s string) Sequence {
	return Sequence{b: []byte(s), enc: ASCII}
}

// FromHex decodes a hex string. The result renders as text, since the
// decoded bytes are the message itself.
func FromHex(s string) (Sequence, error) {
	b, err := Hex.Decode(s)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{b: b, enc: ASCII}, nil
}

func FromBase64(s string) (Sequence, error) {
	b, err := Base64.Decode(s)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{b: b, enc: ASCII}, nil
}

// Parse decodes s with enc and keeps enc for rendering.
func Parse(s string, enc Encoding) (Sequence, error) {
	b, err := enc.Decode(s)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{b: b, enc: enc}, nil
}

func (s Sequence) Len() int { return len(s.b) }

// Bytes returns a copy of the underlying bytes.
func (s Sequence) Bytes() []byte {
	out := make([]byte, len(s.b))
	copy(out, s.b)
	return out
}

func (s Sequence) Encoding() Encoding {
	if s.enc == nil {
		return ASCII
	}
	return s.enc
}

func (s Sequence) WithEncoding(enc Encoding) Sequence {
	return Sequence{b: s.b, enc: enc}
}

func (s Sequence) Equal(o Sequence) bool {
	return bytes.Equal(s.b, o.b)
}

// Text renders the bytes with the sequence's encoding. For ASCII it fails
// if the bytes are not valid UTF-8.
func (s Sequence) Text() (string, error) {
	return s.Encoding().Encode(s.b)
}

func (s Sequence) Hex() string {
	out, _ := Hex.Encode(s.b)
	return out
}

func (s Sequence) Base64() string {
	out, _ := Base64.Encode(s.b)
	return out
}

// String renders with the sequence's own encoding. Bytes that are not
// valid text are shown quoted.
func (s Sequence) String() string {
	out, err := s.Encoding().Encode(s.b)
	if err != nil {
		return fmt.Sprintf("%q", s.b)
	}
	return out
}

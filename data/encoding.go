package data

import (
	"encoding/base64"
	"encoding/hex"
	"unicode/utf8"
)

// Encoding is the textual form a Sequence is parsed from and rendered to.
// It never changes the underlying bytes.
type Encoding interface {
	Name() string
	Decode(s string) ([]byte, error)
	Encode(b []byte) (string, error)
}

var (
	ASCII  Encoding = asciiEncoding{}
	Hex    Encoding = hexEncoding{}
	Base64 Encoding = base64Encoding{}
)

type asciiEncoding struct{}

func (asciiEncoding) Name() string { return "ascii" }

func (asciiEncoding) Decode(s string) ([]byte, error) {
	return []byte(s), nil
}

func (e asciiEncoding) Encode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &DecodingError{Encoding: e.Name(), Err: ErrInvalidText}
	}
	return string(b), nil
}

type hexEncoding struct{}

func (hexEncoding) Name() string { return "hex" }

func (e hexEncoding) Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &DecodingError{Encoding: e.Name(), Err: err}
	}
	return b, nil
}

func (hexEncoding) Encode(b []byte) (string, error) {
	return hex.EncodeToString(b), nil
}

type base64Encoding struct{}

func (base64Encoding) Name() string { return "base64" }

func (e base64Encoding) Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &DecodingError{Encoding: e.Name(), Err: err}
	}
	return b, nil
}

func (base64Encoding) Encode(b []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}

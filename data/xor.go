package data

// Xor combines two sequences byte by byte. The result keeps a's encoding.
func Xor(a, b Sequence) (Sequence, error) {
	if len(a.b) != len(b.b) {
		return Sequence{}, &LengthMismatchError{Left: len(a.b), Right: len(b.b)}
	}

	out := make([]byte, len(a.b))
	for i := 0; i < len(out); i++ {
		out[i] = a.b[i] ^ b.b[i]
	}
	return Sequence{b: out, enc: a.enc}, nil
}

// MustXor is Xor for callers that guarantee equal lengths. It panics with
// a *LengthMismatchError otherwise.
func MustXor(a, b Sequence) Sequence {
	out, err := Xor(a, b)
	if err != nil {
		panic(err)
	}
	return out
}

// Repeat returns n copies of v, the key stream for a single-byte key.
func Repeat(v byte, n int) Sequence {
	out := make([]byte, n)
	for i := range out {
		out[i] = v
	}
	return Sequence{b: out, enc: ASCII}
}

// RepeatKey cycles key until it is n bytes long.
func RepeatKey(key Sequence, n int) (Sequence, error) {
	if len(key.b) == 0 {
		return Sequence{}, ErrEmptyKey
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = key.b[i%len(key.b)]
	}
	return Sequence{b: out, enc: key.enc}, nil
}

func RepeatingKeyXor(msg, key Sequence) (Sequence, error) {
	stream, err := RepeatKey(key, msg.Len())
	if err != nil {
		return Sequence{}, err
	}
	return Xor(msg, stream)
}

func HexToBase64(hx string) (string, error) {
	s, err := FromHex(hx)
	if err != nil {
		return "", err
	}
	return s.Base64(), nil
}

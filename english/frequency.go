// Package english scores byte strings by how closely they resemble
// English text.
package english

// Table holds expected relative frequencies for 'a' through 'z' followed
// by space.
type Table [27]float64

const space = 26

// Frequencies is the English table used by Evaluate.
var Frequencies = Table{
	0.0653, 0.0126, 0.0223, 0.0328, 0.1027, 0.0198, 0.0162, // a-g
	0.0498, 0.0567, 0.0010, 0.0056, 0.0332, 0.0203, 0.0517, // h-n
	0.0616, 0.0150, 0.0008, 0.0499, 0.0532, 0.0752, 0.0228, // o-u
	0.0080, 0.0170, 0.0014, 0.0143, 0.0005, // v-z
	0.1823, // ' '
}

// Score is the result of evaluating a candidate plaintext. A lower
// Distance is more English-like. LetterRatio is the share of bytes that
// are letters or spaces.
type Score struct {
	Distance    float64
	LetterRatio float64
}

func Evaluate(b []byte) Score {
	return Frequencies.Evaluate(b)
}

// Evaluate sums the squared difference between the observed count of
// every byte value and its expected count. Upper and lower case letters
// share an expectation; bytes that are neither letters nor space are
// expected zero times.
func (t *Table) Evaluate(b []byte) Score {
	if len(b) == 0 {
		return Score{}
	}

	var counts [256]int
	for _, c := range b {
		counts[c]++
	}

	n := float64(len(b))
	var distance float64
	hits := 0
	for v := 0; v < len(counts); v++ {
		diff := float64(counts[v])
		if sym, ok := symbol(byte(v)); ok {
			hits += counts[v]
			// conversions keep each product rounded, no fused multiply-add
			diff -= float64(t[sym] * n)
		}
		distance += float64(diff * diff)
	}

	return Score{
		Distance:    distance,
		LetterRatio: float64(hits) / n,
	}
}

func symbol(c byte) (int, bool) {
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c - 'A'), true
	case 'a' <= c && c <= 'z':
		return int(c - 'a'), true
	case c == ' ':
		return space, true
	}
	return 0, false
}

package crack

import (
	"context"
	"errors"
	"fmt"

	"github.com/krehermann/xorcrack/data"
)

// Detection is the best result found across several ciphertexts.
type Detection struct {
	Index int
	Candidate
}

// Detect attacks every ciphertext and returns the one whose best candidate
// has the smallest distance. Ciphertexts with no valid candidate are
// skipped; the earliest index wins on equal distance.
func Detect(ctx context.Context, ciphertexts []data.Sequence, opts ...Option) (Detection, error) {
	c := newConfig(opts)

	var (
		best  Detection
		found bool
	)
	for i, ct := range ciphertexts {
		cand, err := SingleByteXor(ctx, ct, opts...)
		if errors.Is(err, ErrNoValidCandidate) {
			continue
		}
		if err != nil {
			return Detection{}, fmt.Errorf("ciphertext %d: %w", i, err)
		}
		if !found || cand.Score.Distance < best.Score.Distance {
			best = Detection{Index: i, Candidate: cand}
			found = true
		}
	}
	if !found {
		return Detection{}, &NoValidCandidateError{MinLetterRatio: c.minLetterRatio}
	}

	c.log.Info().
		Int("index", best.Index).
		Int("lines", len(ciphertexts)).
		Uint8("key", best.Key).
		Float64("distance", best.Score.Distance).
		Msg("detected single-byte xor")
	return best, nil
}

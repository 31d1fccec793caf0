// Package crack recovers single-byte XOR keys by scoring every possible
// key against English letter statistics.
package crack

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/krehermann/xorcrack/data"
	"github.com/krehermann/xorcrack/english"
)

const keySpace = 256

// Candidate is the plaintext produced by one key guess.
type Candidate struct {
	Key       byte
	Score     english.Score
	Plaintext data.Sequence
}

// SingleByteXor tries every key byte against ciphertext and returns the
// candidate with the smallest distance among those whose letter ratio is
// above the configured minimum. Equal distances resolve to the smaller key.
func SingleByteXor(ctx context.Context, ciphertext data.Sequence, opts ...Option) (Candidate, error) {
	c := newConfig(opts)
	cands, err := c.candidates(ctx, ciphertext)
	if err != nil {
		return Candidate{}, err
	}
	best, err := Select(cands, c.minLetterRatio)
	if err != nil {
		c.log.Debug().Int("len", ciphertext.Len()).Err(err).Msg("no candidate")
		return Candidate{}, err
	}
	c.log.Debug().
		Uint8("key", best.Key).
		Float64("distance", best.Score.Distance).
		Float64("letter_ratio", best.Score.LetterRatio).
		Msg("selected key")
	return best, nil
}

// Candidates returns the candidate for every key, indexed by key.
func Candidates(ctx context.Context, ciphertext data.Sequence, opts ...Option) ([]Candidate, error) {
	c := newConfig(opts)
	return c.candidates(ctx, ciphertext)
}

func (c config) candidates(ctx context.Context, ciphertext data.Sequence) ([]Candidate, error) {
	out := make([]Candidate, keySpace)

	if c.workers == 1 {
		for k := 0; k < keySpace; k++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[k] = c.candidate(ciphertext, byte(k))
		}
		return out, nil
	}

	// each goroutine writes only its own slot
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for k := 0; k < keySpace; k++ {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[k] = c.candidate(ciphertext, byte(k))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c config) candidate(ciphertext data.Sequence, key byte) Candidate {
	stream := data.Repeat(key, ciphertext.Len())
	plaintext := data.MustXor(ciphertext, stream).WithEncoding(data.ASCII)
	score := c.table.Evaluate(plaintext.Bytes())
	c.log.Trace().
		Uint8("key", key).
		Float64("distance", score.Distance).
		Float64("letter_ratio", score.LetterRatio).
		Msg("scored key")
	return Candidate{Key: key, Score: score, Plaintext: plaintext}
}

// Survivors keeps the candidates whose letter ratio is above threshold,
// in the order given.
func Survivors(cands []Candidate, threshold float64) []Candidate {
	out := make([]Candidate, 0, len(cands))
	for _, cand := range cands {
		if cand.Score.LetterRatio > threshold {
			out = append(out, cand)
		}
	}
	return out
}

// Select reduces cands to the surviving candidate with the smallest
// distance, taking the smaller key on equal distance. It never falls back
// to a candidate that failed the letter ratio gate.
func Select(cands []Candidate, threshold float64) (Candidate, error) {
	var (
		best  Candidate
		found bool
	)
	for _, cand := range Survivors(cands, threshold) {
		if !found || better(cand, best) {
			best = cand
			found = true
		}
	}
	if !found {
		return Candidate{}, &NoValidCandidateError{MinLetterRatio: threshold}
	}
	return best, nil
}

func better(a, b Candidate) bool {
	if a.Score.Distance != b.Score.Distance {
		return a.Score.Distance < b.Score.Distance
	}
	return a.Key < b.Key
}

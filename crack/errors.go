package crack

import (
	"errors"
	"fmt"
)

var ErrNoValidCandidate = errors.New("no valid candidate")

// NoValidCandidateError means every key produced a plaintext whose letter
// ratio did not exceed MinLetterRatio.
type NoValidCandidateError struct {
	MinLetterRatio float64
}

func (e *NoValidCandidateError) Error() string {
	return fmt.Sprintf("%v: no key gave a letter ratio above %g", ErrNoValidCandidate, e.MinLetterRatio)
}

func (e *NoValidCandidateError) Is(target error) bool {
	return target == ErrNoValidCandidate
}

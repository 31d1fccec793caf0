package english

import (
	"github.com/pemistahl/lingua-go"
)

// Detector reports how confident lingua is that a text is English. The
// other languages only give the detector something to compare against.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish).
		Build()
	return &Detector{
		detector: detector,
	}
}

// Confidence is in [0, 1].
func (d *Detector) Confidence(text string) float64 {
	return d.detector.ComputeLanguageConfidence(text, lingua.English)
}

package english

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantDistance float64
		wantRatio    float64
	}{
		{
			name:         "empty",
			in:           "",
			wantDistance: 0,
			wantRatio:    0,
		},
		{
			name:         "single letter",
			in:           "a",
			wantDistance: 0.98900787,
			wantRatio:    1,
		},
		{
			name:         "no letters",
			in:           "!!!!",
			wantDistance: 17.91372592,
			wantRatio:    0,
		},
		{
			name:         "cryptopals 1.3 plaintext",
			in:           "Cooking MC's like a pound of bacon",
			wantDistance: 86.14989772,
			wantRatio:    33. / 34.,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate([]byte(tt.in))
			assert.InDelta(t, tt.wantDistance, got.Distance, 1e-9)
			assert.InDelta(t, tt.wantRatio, got.LetterRatio, 1e-12)
		})
	}
}

func TestEvaluateFoldsCase(t *testing.T) {
	lower := Evaluate([]byte("hello world"))
	upper := Evaluate([]byte("HELLO WORLD"))
	mixed := Evaluate([]byte("hELLO wORLD"))
	assert.InDelta(t, lower.Distance, upper.Distance, 1e-9)
	assert.InDelta(t, lower.Distance, mixed.Distance, 1e-9)
	assert.Equal(t, 1.0, mixed.LetterRatio)
}

func TestEvaluatePenalisesNonLetters(t *testing.T) {
	clean := Evaluate([]byte("the cat sat on the mat"))
	noisy := Evaluate([]byte("the cat sat on the mat\x01\x02"))
	assert.InDelta(t, 42.00020908, clean.Distance, 1e-9)
	assert.InDelta(t, 47.01413312, noisy.Distance, 1e-9)
	assert.Less(t, clean.Distance, noisy.Distance)
	assert.Greater(t, clean.LetterRatio, noisy.LetterRatio)

	// swapping letters for noise can lower the distance when those letters
	// were already over-represented; only the ratio gate catches it
	swapped := Evaluate([]byte("the cat sat on the m\x01\x02"))
	assert.InDelta(t, 36.18220908, swapped.Distance, 1e-9)
	assert.Less(t, swapped.LetterRatio, clean.LetterRatio)

	// every non-letter byte value is penalised the same way
	assert.Equal(t,
		Evaluate([]byte("the cat sat on the mat\x01")),
		Evaluate([]byte("the cat sat on the mat!")),
	)
}

func TestEvaluateIsPure(t *testing.T) {
	in := []byte("Now that the party is jumping\n")
	first := Evaluate(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Evaluate(in))
	}
	assert.Equal(t, "Now that the party is jumping\n", string(in))
}

func TestCustomTable(t *testing.T) {
	var onlySpace Table
	onlySpace[space] = 1
	got := onlySpace.Evaluate([]byte("    "))
	assert.Equal(t, 0.0, got.Distance)
	assert.Equal(t, 1.0, got.LetterRatio)
}

func TestFrequenciesTable(t *testing.T) {
	var sum float64
	for _, f := range Frequencies {
		require.GreaterOrEqual(t, f, 0.0)
		require.LessOrEqual(t, f, 1.0)
		sum += f
	}
	assert.InDelta(t, 0.992, sum, 1e-9)
	assert.Equal(t, 0.1823, Frequencies[space])
	assert.Equal(t, 0.1027, Frequencies['e'-'a'])
}

func TestDetectorConfidence(t *testing.T) {
	if testing.Short() {
		t.Skip("loads language models")
	}
	d := NewDetector()
	english := d.Confidence("Now that the party is jumping, everybody is going to the beach tonight")
	noise := d.Confidence("Ehm qbg gur cnegl vf whzcvat")
	t.Logf("english %f noise %f", english, noise)
	assert.Greater(t, english, 0.5)
	assert.LessOrEqual(t, english, 1.0)
	assert.Greater(t, english, noise)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, s string) Code {
	t.Helper()
	c, err := ParseCode(s, len(s), AllowRepeats)
	require.NoError(t, err)
	return c
}

func TestScore(t *testing.T) {
	tests := []struct {
		secret, guess string
		want          Feedback
	}{
		{"1234", "1234", Feedback{Exact: 4}},
		{"1234", "4321", Feedback{Misplaced: 4}},
		{"1123", "1111", Feedback{Exact: 2, Misplaced: 0}},
		{"1234", "5656", Feedback{}},
		{"1122", "2211", Feedback{Misplaced: 4}},
		{"1231", "1112", Feedback{Exact: 1, Misplaced: 2}},
		{"12345", "12354", Feedback{Exact: 3, Misplaced: 2}},
		{"666", "616", Feedback{Exact: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.secret+"/"+tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(mustCode(t, tt.secret), mustCode(t, tt.guess)))
		})
	}
}

// Exact positions are removed from both tallies before white pegs are
// counted, so a repeated guess digit cannot claim the same secret peg twice.
func TestScoreRepeatedDigits(t *testing.T) {
	fb := Score(mustCode(t, "1123"), mustCode(t, "1111"))
	assert.Equal(t, 2, fb.Exact)
	assert.Equal(t, 0, fb.Misplaced)

	fb = Score(mustCode(t, "1123"), mustCode(t, "3111"))
	assert.Equal(t, Feedback{Exact: 1, Misplaced: 2}, fb)
}

func TestScoreLengthMismatch(t *testing.T) {
	assert.Equal(t, Feedback{}, Score(Code{1, 2, 3}, Code{1, 2}))
}

func TestScoreProperties(t *testing.T) {
	gen := NewSeededGenerator(42)
	for length := 1; length <= 6; length++ {
		for i := 0; i < 200; i++ {
			a, err := gen.Generate(length, AllowRepeats)
			require.NoError(t, err)
			b, err := gen.Generate(length, AllowRepeats)
			require.NoError(t, err)

			ab, ba := Score(a, b), Score(b, a)
			assert.LessOrEqual(t, ab.Exact+ab.Misplaced, length)
			assert.Equal(t, ab, ba, "score must be symmetric for %s/%s", a, b)

			self := Score(a, a)
			assert.True(t, self.Solved(length))
		}
	}
}

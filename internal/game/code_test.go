package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		length    int
		repeats   RepeatPolicy
		want      Reason // empty when valid
	}{
		{"valid distinct", "1234", 4, NoRepeats, ""},
		{"valid repeats allowed", "1123", 4, AllowRepeats, ""},
		{"all sixes", "66666", 5, AllowRepeats, ""},
		{"too short", "123", 4, NoRepeats, ReasonLength},
		{"too long", "12345", 4, AllowRepeats, ReasonLength},
		{"empty", "", 3, NoRepeats, ReasonLength},
		{"letter", "12a4", 4, NoRepeats, ReasonDigit},
		{"zero", "1204", 4, AllowRepeats, ReasonDigit},
		{"seven", "1274", 4, AllowRepeats, ReasonDigit},
		{"repeat under no-repeat", "1123", 4, NoRepeats, ReasonRepeat},
		{"multibyte counted as one char", "12é4", 4, NoRepeats, ReasonDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCode(tt.candidate, tt.length, tt.repeats)
			if tt.want == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.candidate, code.String())
				assert.Equal(t, tt.length, code.Len())
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Reason)
			assert.Equal(t, tt.length, verr.Want)
			assert.Nil(t, code)
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	var verr *ValidationError

	require.ErrorAs(t, Check("12a4", 4, NoRepeats), &verr)
	assert.Equal(t, 'a', verr.Char)
	assert.Equal(t, 2, verr.Pos)

	require.ErrorAs(t, Check("12", 4, NoRepeats), &verr)
	assert.Equal(t, 2, verr.Got)

	require.ErrorAs(t, Check("1213", 4, NoRepeats), &verr)
	assert.Equal(t, ReasonRepeat, verr.Reason)
	assert.Equal(t, '1', verr.Char)
	assert.Contains(t, verr.Error(), "repeated")
}

func TestValidateScenarios(t *testing.T) {
	assert.False(t, Validate("12a4", 4, false))
	assert.False(t, Validate("1123", 4, false))
	assert.True(t, Validate("1123", 4, true))
}

func TestValidateIdempotent(t *testing.T) {
	for _, c := range []string{"1234", "1123", "12a4", "", "654321"} {
		first := Validate(c, 4, NoRepeats)
		assert.Equal(t, first, Validate(c, 4, NoRepeats), c)
	}
}

func TestCodeQueries(t *testing.T) {
	c, err := ParseCode("1123", 4, AllowRepeats)
	require.NoError(t, err)

	assert.False(t, c.Distinct())
	d, dup := c.FirstRepeat()
	assert.True(t, dup)
	assert.Equal(t, Digit(1), d)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "1123", c.String())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{CodeLength: 4, MaxAttempts: 10}.Validate())
	assert.ErrorIs(t, Config{CodeLength: 0, MaxAttempts: 10}.Validate(), ErrInvalidLength)
	assert.ErrorIs(t, Config{CodeLength: 4, MaxAttempts: 0}.Validate(), ErrInvalidAttempts)
	assert.ErrorIs(t, Config{CodeLength: 7, MaxAttempts: 10}.Validate(), ErrLengthExceedsAlphabet)
	assert.NoError(t, Config{CodeLength: 7, Repeats: AllowRepeats, MaxAttempts: 10}.Validate())
}

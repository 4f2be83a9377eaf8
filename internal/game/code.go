package game

import (
	"fmt"
	"unicode/utf8"
)

// Reason is a machine-readable validation failure code. Renderers map it to
// localized text; the engine never produces user-facing strings.
type Reason string

const (
	ReasonLength Reason = "CODE_LENGTH" // wrong number of characters
	ReasonDigit  Reason = "CODE_DIGIT"  // character outside 1–6
	ReasonRepeat Reason = "CODE_REPEAT" // duplicate digit under NoRepeats
)

// ValidationError describes why a candidate secret or guess was rejected.
type ValidationError struct {
	Reason  Reason
	Want    int          // expected length
	Got     int          // actual length (ReasonLength)
	Char    rune         // offending character (ReasonDigit, ReasonRepeat)
	Pos     int          // zero-based position of Char (ReasonDigit)
	Repeats RepeatPolicy // policy the candidate was checked against
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonLength:
		return fmt.Sprintf("invalid code: want %d digits, got %d", e.Want, e.Got)
	case ReasonDigit:
		return fmt.Sprintf("invalid code: %q at position %d is not a digit 1-6", e.Char, e.Pos)
	case ReasonRepeat:
		return fmt.Sprintf("invalid code: digit %q repeated", e.Char)
	}
	return "invalid code"
}

// ParseCode validates candidate against the length and repeat policy and
// returns it as a Code.
//
// Rules, checked in order:
//   - the character count must equal length;
//   - every character must be a digit 1–6;
//   - under NoRepeats, no digit value may appear twice.
func ParseCode(candidate string, length int, repeats RepeatPolicy) (Code, error) {
	if n := utf8.RuneCountInString(candidate); n != length {
		return nil, &ValidationError{Reason: ReasonLength, Want: length, Got: n, Repeats: repeats}
	}
	code := make(Code, 0, length)
	pos := 0
	for _, r := range candidate {
		d, ok := digitOf(r)
		if !ok {
			return nil, &ValidationError{Reason: ReasonDigit, Want: length, Char: r, Pos: pos, Repeats: repeats}
		}
		code = append(code, d)
		pos++
	}
	if repeats == NoRepeats {
		if d, dup := code.FirstRepeat(); dup {
			return nil, &ValidationError{Reason: ReasonRepeat, Want: length, Char: d.Rune(), Repeats: repeats}
		}
	}
	return code, nil
}

// Check is ParseCode without the parsed result. It returns nil or a *ValidationError.
func Check(candidate string, length int, repeats RepeatPolicy) error {
	_, err := ParseCode(candidate, length, repeats)
	return err
}

// Validate reports whether candidate is a legal code. Secrets entered by a
// human and guesses go through the same rules.
func Validate(candidate string, length int, repeats RepeatPolicy) bool {
	return Check(candidate, length, repeats) == nil
}

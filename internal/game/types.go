// internal/game/types.go
//
// Core type definitions for the Mastermind engine.
// Defines:
//   - Digit / Code: the peg alphabet (1–6) and an ordered sequence of pegs.
//   - RepeatPolicy / Mode / Config: per-session rules, fixed until restart.
//   - State: everything one session needs to be suspended and resumed.
//   - Feedback: the red/white peg counts for one scored guess.

package game

import (
	"errors"
	"strings"
	"time"
)

// Digit is a single peg value in [MinDigit, MaxDigit].
type Digit uint8

const (
	MinDigit Digit = 1
	MaxDigit Digit = 6

	// AlphabetSize is the number of distinct peg values.
	AlphabetSize = int(MaxDigit - MinDigit + 1)
)

// Valid reports whether d is inside the peg alphabet.
func (d Digit) Valid() bool { return d >= MinDigit && d <= MaxDigit }

// Rune renders d as its ASCII character ('1'..'6').
func (d Digit) Rune() rune { return rune('0' + d) }

// digitOf maps '1'..'6' to a Digit.
func digitOf(r rune) (Digit, bool) {
	if r < '0'+rune(MinDigit) || r > '0'+rune(MaxDigit) {
		return 0, false
	}
	return Digit(r - '0'), true
}

// Code is an ordered sequence of digits. Treat it as immutable once parsed.
type Code []Digit

// Len returns the number of pegs in the code.
func (c Code) Len() int { return len(c) }

// String renders the code as a digit string, e.g. "2461".
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, d := range c {
		sb.WriteRune(d.Rune())
	}
	return sb.String()
}

// Distinct reports whether no digit value occurs more than once.
func (c Code) Distinct() bool {
	_, dup := c.FirstRepeat()
	return !dup
}

// FirstRepeat returns the first digit that has already appeared earlier in the code.
func (c Code) FirstRepeat() (Digit, bool) {
	var seen [MaxDigit + 1]bool
	for _, d := range c {
		if seen[d] {
			return d, true
		}
		seen[d] = true
	}
	return 0, false
}

// RepeatPolicy controls whether a code may contain duplicate digits.
type RepeatPolicy bool

const (
	NoRepeats    RepeatPolicy = false
	AllowRepeats RepeatPolicy = true
)

// Mode says who sets the secret.
type Mode int

const (
	VsComputer Mode = iota // secret drawn by the generator
	VsHuman                // secret typed in by a second player
)

func (m Mode) String() string {
	if m == VsHuman {
		return "vs_human"
	}
	return "vs_computer"
}

// DefaultMaxAttempts is the attempt budget used when none is configured.
const DefaultMaxAttempts = 10

// Config holds the rules of one session. It never changes mid-session.
type Config struct {
	CodeLength  int          // pegs per code
	Repeats     RepeatPolicy // whether digits may repeat
	MaxAttempts int          // attempt budget
	Mode        Mode         // who supplied the secret
}

var (
	ErrInvalidLength         = errors.New("code length must be at least 1")
	ErrInvalidAttempts       = errors.New("max attempts must be at least 1")
	ErrLengthExceedsAlphabet = errors.New("code length exceeds the number of distinct digits")
)

// Validate checks that the configuration can produce a playable game.
func (c Config) Validate() error {
	if c.CodeLength < 1 {
		return ErrInvalidLength
	}
	if c.MaxAttempts < 1 {
		return ErrInvalidAttempts
	}
	if c.Repeats == NoRepeats && c.CodeLength > AlphabetSize {
		return ErrLengthExceedsAlphabet
	}
	return nil
}

// State is the mutable record of one game in progress.
type State struct {
	ID                 string    // correlation id (uuid); not part of the save record
	Secret             Code      // the code being guessed
	Config             Config    // rules for this session
	AttemptsUsed       int       // validated guesses consumed so far
	AccumulatedSeconds int       // play time banked before StartedAt
	StartedAt          time.Time // start of the current stretch of play
	Cheat              bool      // expose the secret at the start of each turn
	InProgress         bool      // true until the session reaches won/lost
}

// AttemptsLeft returns the remaining attempt budget.
func (s *State) AttemptsLeft() int { return s.Config.MaxAttempts - s.AttemptsUsed }

// Feedback is the result of scoring one guess.
// Exact is the red-peg count, Misplaced the white-peg count.
type Feedback struct {
	Exact     int
	Misplaced int
}

// Solved reports whether the feedback is a full match for a code of the given length.
func (f Feedback) Solved(length int) bool { return f.Exact == length && f.Misplaced == 0 }

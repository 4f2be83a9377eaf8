// internal/store/codec.go
//
// Text codec for the single save slot.
//
// Record layout (one field per line, all mandatory):
//
//	1                     format version
//	<codeLength>
//	<0|1>                 repeats allowed
//	<0|1>                 cheat enabled
//	<maxAttempts>
//	<attemptsUsed>
//	<0|1>                 vs human
//	<accumulatedSeconds>
//	<secretCode>
//
// Decoding is all-or-nothing: either a fully valid *game.State comes back
// or an error does. Fields are read as whitespace-separated tokens, so blank
// lines, CRLF endings and indentation are tolerated; anything after the
// secret is not.

package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kl-charizard/mastermind-sba/internal/game"
)

// FormatVersion is the only record version this codec reads or writes.
const FormatVersion = 1

// Encode writes s to w in the save-slot format.
func Encode(w io.Writer, s *game.State) error {
	bw := bufio.NewWriter(w)
	fields := []any{
		FormatVersion,
		s.Config.CodeLength,
		flag(s.Config.Repeats == game.AllowRepeats),
		flag(s.Cheat),
		s.Config.MaxAttempts,
		s.AttemptsUsed,
		flag(s.Config.Mode == game.VsHuman),
		s.AccumulatedSeconds,
		s.Secret.String(),
	}
	for _, f := range fields {
		if _, err := fmt.Fprintln(bw, f); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads one record from r. On success the session clock restarts at
// now and the state is marked in progress.
func Decode(r io.Reader, now time.Time) (*game.State, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	tok, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read save: %w", err)
		}
		return nil, ErrUnsupportedFormat
	}
	if v, err := strconv.Atoi(tok); err != nil || v != FormatVersion {
		return nil, ErrUnsupportedFormat
	}

	var ints [7]int
	for i := range ints {
		tok, ok := next()
		if !ok {
			return nil, corrupted("record ends after %d fields", i+1)
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, corrupted("field %d: %q is not an integer", i+2, tok)
		}
		ints[i] = n
	}
	secret, ok := next()
	if !ok {
		return nil, corrupted("missing secret code")
	}
	if extra, ok := next(); ok {
		return nil, corrupted("unexpected %q after secret code", extra)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}

	codeLength, repeats, cheat, maxAttempts, used, vsHuman, seconds :=
		ints[0], ints[1], ints[2], ints[3], ints[4], ints[5], ints[6]

	for _, b := range []int{repeats, cheat, vsHuman} {
		if b != 0 && b != 1 {
			return nil, corrupted("flag %d is not 0 or 1", b)
		}
	}

	cfg := game.Config{
		CodeLength:  codeLength,
		Repeats:     game.RepeatPolicy(repeats == 1),
		MaxAttempts: maxAttempts,
		Mode:        game.VsComputer,
	}
	if vsHuman == 1 {
		cfg.Mode = game.VsHuman
	}
	if err := cfg.Validate(); err != nil {
		return nil, corrupted("%v", err)
	}
	if used < 0 || used > maxAttempts {
		return nil, corrupted("attempts used %d outside [0,%d]", used, maxAttempts)
	}
	if seconds < 0 {
		return nil, corrupted("negative elapsed time %d", seconds)
	}
	code, err := game.ParseCode(secret, cfg.CodeLength, cfg.Repeats)
	if err != nil {
		return nil, corrupted("secret: %v", err)
	}

	return &game.State{
		Secret:             code,
		Config:             cfg,
		AttemptsUsed:       used,
		AccumulatedSeconds: seconds,
		StartedAt:          now,
		Cheat:              cheat == 1,
		InProgress:         true,
	}, nil
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupted, fmt.Sprintf(format, args...))
}

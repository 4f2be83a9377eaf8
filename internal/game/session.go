// internal/game/session.go
//
// Session controller for a single Mastermind game.
// Responsibilities:
//   - Own the State for one session and drive the turn state machine
//     (setting up → playing → won / lost / suspended / abandoned).
//   - Apply one classified Input per call: save, cheat, quit or a guess.
//   - Account elapsed time by sampling the clock at start, save and win.
//   - Restart with the same configuration after a finished round.
//
// Notes:
//   - Validation and scoring are delegated to ParseCode and Score.
//   - Persistence goes through the Saver interface, only on "save".
//   - The controller never logs or renders; callers act on the Outcome.

package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Phase is the controller's position in the session lifecycle.
type Phase int

const (
	PhaseSettingUp Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
	PhaseSuspended // saved; control returned to the caller
	PhaseAbandoned // quit without saving
)

func (p Phase) String() string {
	switch p {
	case PhaseSettingUp:
		return "setting_up"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseSuspended:
		return "suspended"
	case PhaseAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Over reports whether no further input will be accepted.
func (p Phase) Over() bool { return p >= PhaseWon }

// Saver persists a session snapshot. Implemented by the store package.
type Saver interface {
	Save(ctx context.Context, s *State) error
}

var (
	ErrNotStarted  = errors.New("session not started")
	ErrSessionOver = errors.New("session is over")
	ErrNotFinished = errors.New("session has not finished")
	ErrNoSaver     = errors.New("no save slot configured")
)

// OutcomeKind says what a single Apply call did.
type OutcomeKind int

const (
	OutcomeNone         OutcomeKind = iota // nothing happened; Apply returned an error
	OutcomeRejected                        // guess failed validation; no attempt used
	OutcomeScored                          // guess consumed an attempt and was scored
	OutcomeCheatToggled                    // cheat flag flipped
	OutcomeSaved                           // state written; session suspended
	OutcomeSaveFailed                      // write failed; still playing
	OutcomeQuit                            // abandoned without saving
)

// Outcome is the structured result of one turn.
type Outcome struct {
	Kind         OutcomeKind
	Phase        Phase            // phase after the turn
	Feedback     Feedback         // OutcomeScored
	Guess        Code             // OutcomeScored
	AttemptsUsed int              // after the turn
	AttemptsLeft int              // after the turn
	Seconds      int              // total play time, set on PhaseWon and OutcomeSaved
	Secret       Code             // revealed on PhaseWon and PhaseLost
	Cheat        bool             // cheat flag after the turn
	Invalid      *ValidationError // OutcomeRejected
}

// Prompt is what the renderer needs before reading the next input.
type Prompt struct {
	CodeLength   int
	Repeats      RepeatPolicy
	AttemptsUsed int
	AttemptsLeft int
	Secret       Code // non-nil only while cheat is on
}

// Controller drives one session. It is not safe for concurrent use.
type Controller struct {
	state *State
	phase Phase
	saver Saver
	now   func() time.Time
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock overrides the wall clock used for time accounting.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithSaver sets the save slot used by the "save" command.
func WithSaver(s Saver) Option {
	return func(c *Controller) { c.saver = s }
}

// NewSession creates a fresh session in the setting-up phase. The secret is
// checked against cfg with the same rules as guesses.
func NewSession(cfg Config, secret string, cheat bool, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	code, err := ParseCode(secret, cfg.CodeLength, cfg.Repeats)
	if err != nil {
		return nil, err
	}
	c := newController(&State{
		ID:     uuid.NewString(),
		Secret: code,
		Config: cfg,
		Cheat:  cheat,
	}, opts)
	return c, nil
}

// Resume wraps a previously saved state. The state must satisfy every
// session invariant and still have attempts left.
func Resume(s *State, opts ...Option) (*Controller, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	if err := Check(s.Secret.String(), s.Config.CodeLength, s.Config.Repeats); err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	if s.AttemptsUsed < 0 || s.AccumulatedSeconds < 0 {
		return nil, fmt.Errorf("resume: negative counters")
	}
	if s.AttemptsUsed >= s.Config.MaxAttempts {
		return nil, ErrSessionOver
	}
	st := *s
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	return newController(&st, opts), nil
}

func newController(s *State, opts []Option) *Controller {
	c := &Controller{state: s, phase: PhaseSettingUp, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start enters the playing phase and starts the session clock.
func (c *Controller) Start() {
	c.state.StartedAt = c.now()
	c.state.InProgress = true
	c.phase = PhasePlaying
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// State returns a copy of the session state.
func (c *Controller) State() State { return *c.state }

// Prompt describes the next turn. The secret is only exposed while cheat is on.
func (c *Controller) Prompt() Prompt {
	p := Prompt{
		CodeLength:   c.state.Config.CodeLength,
		Repeats:      c.state.Config.Repeats,
		AttemptsUsed: c.state.AttemptsUsed,
		AttemptsLeft: c.state.AttemptsLeft(),
	}
	if c.state.Cheat {
		p.Secret = c.state.Secret
	}
	return p
}

// Apply processes one turn input.
// Validation failures are reported through the Outcome, not as an error;
// the returned error is reserved for save failures and misuse.
func (c *Controller) Apply(ctx context.Context, in Input) (Outcome, error) {
	switch {
	case c.phase == PhaseSettingUp:
		return Outcome{}, ErrNotStarted
	case c.phase.Over():
		return Outcome{}, ErrSessionOver
	}

	if in.Kind == InputCommand {
		switch in.Command {
		case CmdSave:
			return c.save(ctx)
		case CmdCheat:
			c.state.Cheat = !c.state.Cheat
			return c.outcome(OutcomeCheatToggled), nil
		case CmdQuit:
			c.phase = PhaseAbandoned
			return c.outcome(OutcomeQuit), nil
		}
		return Outcome{}, fmt.Errorf("unknown command %d", in.Command)
	}
	return c.guess(in.Raw), nil
}

func (c *Controller) guess(raw string) Outcome {
	cfg := c.state.Config
	code, err := ParseCode(raw, cfg.CodeLength, cfg.Repeats)
	if err != nil {
		o := c.outcome(OutcomeRejected)
		errors.As(err, &o.Invalid)
		return o
	}

	c.state.AttemptsUsed++
	fb := Score(c.state.Secret, code)

	switch {
	case fb.Solved(cfg.CodeLength):
		c.phase = PhaseWon
		c.state.InProgress = false
	case c.state.AttemptsUsed >= cfg.MaxAttempts:
		c.phase = PhaseLost
		c.state.InProgress = false
	}

	o := c.outcome(OutcomeScored)
	o.Feedback, o.Guess = fb, code
	if c.phase == PhaseWon {
		o.Seconds = c.Elapsed()
	}
	if c.phase == PhaseWon || c.phase == PhaseLost {
		o.Secret = c.state.Secret
	}
	return o
}

// save banks the current stretch of play and writes a snapshot. The live
// state is only replaced once the write succeeds.
func (c *Controller) save(ctx context.Context) (Outcome, error) {
	if c.saver == nil {
		return c.outcome(OutcomeSaveFailed), ErrNoSaver
	}
	now := c.now()
	snap := *c.state
	snap.AccumulatedSeconds = c.elapsedAt(now)
	snap.StartedAt = now
	if err := c.saver.Save(ctx, &snap); err != nil {
		return c.outcome(OutcomeSaveFailed), fmt.Errorf("save session: %w", err)
	}
	*c.state = snap
	c.phase = PhaseSuspended
	o := c.outcome(OutcomeSaved)
	o.Seconds = snap.AccumulatedSeconds
	return o, nil
}

// Elapsed returns banked seconds plus the current stretch. A clock that went
// backwards contributes nothing.
func (c *Controller) Elapsed() int { return c.elapsedAt(c.now()) }

func (c *Controller) elapsedAt(now time.Time) int {
	total := c.state.AccumulatedSeconds
	if d := now.Sub(c.state.StartedAt); d >= 0 {
		total += int(d / time.Second)
	}
	return total
}

// Restart begins a new round with the same configuration and a new secret.
// Attempts and time are reset; nothing from the previous round is kept.
func (c *Controller) Restart(secret string) error {
	if c.phase != PhaseWon && c.phase != PhaseLost {
		return ErrNotFinished
	}
	cfg := c.state.Config
	code, err := ParseCode(secret, cfg.CodeLength, cfg.Repeats)
	if err != nil {
		return err
	}
	c.state.ID = uuid.NewString()
	c.state.Secret = code
	c.state.AttemptsUsed = 0
	c.state.AccumulatedSeconds = 0
	c.phase = PhaseSettingUp
	c.Start()
	return nil
}

func (c *Controller) outcome(k OutcomeKind) Outcome {
	return Outcome{
		Kind:         k,
		Phase:        c.phase,
		AttemptsUsed: c.state.AttemptsUsed,
		AttemptsLeft: c.state.AttemptsLeft(),
		Cheat:        c.state.Cheat,
	}
}

package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingSaver struct {
	saved []State
	err   error
}

func (s *recordingSaver) Save(_ context.Context, st *State) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, *st)
	return nil
}

func medium() Config { return Medium.Config(10, VsComputer) }

func newPlaying(t *testing.T, cfg Config, secret string, opts ...Option) (*Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 8, 21, 12, 0, 0, 0, time.UTC)}
	c, err := NewSession(cfg, secret, false, append([]Option{WithClock(clock.Now)}, opts...)...)
	require.NoError(t, err)
	assert.Equal(t, PhaseSettingUp, c.Phase())
	c.Start()
	require.Equal(t, PhasePlaying, c.Phase())
	return c, clock
}

func TestNewSessionRejectsBadSecret(t *testing.T) {
	_, err := NewSession(medium(), "1123", false)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonRepeat, verr.Reason)

	_, err = NewSession(Config{CodeLength: 7, MaxAttempts: 3}, "1234567", false)
	assert.ErrorIs(t, err, ErrLengthExceedsAlphabet)
}

func TestApplyBeforeStart(t *testing.T) {
	c, err := NewSession(medium(), "1234", false)
	require.NoError(t, err)
	out, err := c.Apply(context.Background(), GuessInput("1234"))
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Equal(t, OutcomeNone, out.Kind)
}

func TestWinReportsAttemptsAndTime(t *testing.T) {
	ctx := context.Background()
	c, clock := newPlaying(t, medium(), "1234")

	out, err := c.Apply(ctx, GuessInput("4321"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeScored, out.Kind)
	assert.Equal(t, Feedback{Misplaced: 4}, out.Feedback)
	assert.Equal(t, PhasePlaying, out.Phase)
	assert.Equal(t, 9, out.AttemptsLeft)
	assert.Nil(t, out.Secret)

	clock.Advance(42 * time.Second)
	out, err = c.Apply(ctx, GuessInput("1234"))
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, out.Phase)
	assert.Equal(t, Feedback{Exact: 4}, out.Feedback)
	assert.Equal(t, 2, out.AttemptsUsed)
	assert.Equal(t, 42, out.Seconds)
	assert.Equal(t, "1234", out.Secret.String())
	assert.False(t, c.State().InProgress)

	_, err = c.Apply(ctx, GuessInput("1234"))
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestLoseRevealsSecret(t *testing.T) {
	ctx := context.Background()
	cfg := medium()
	cfg.MaxAttempts = 3
	c, _ := newPlaying(t, cfg, "1234")

	for i := 0; i < 2; i++ {
		out, err := c.Apply(ctx, GuessInput("5612"))
		require.NoError(t, err)
		assert.Equal(t, PhasePlaying, out.Phase)
	}
	out, err := c.Apply(ctx, GuessInput("5612"))
	require.NoError(t, err)
	assert.Equal(t, PhaseLost, out.Phase)
	assert.Equal(t, 3, out.AttemptsUsed)
	assert.Equal(t, 0, out.AttemptsLeft)
	assert.Equal(t, "1234", out.Secret.String())
}

func TestWinOnLastAttemptIsWin(t *testing.T) {
	cfg := medium()
	cfg.MaxAttempts = 1
	c, _ := newPlaying(t, cfg, "1234")
	out, err := c.Apply(context.Background(), GuessInput("1234"))
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, out.Phase)
}

func TestInvalidGuessesNeverConsumeAttempts(t *testing.T) {
	ctx := context.Background()
	c, _ := newPlaying(t, medium(), "1234")

	for i := 0; i < 10; i++ {
		out, err := c.Apply(ctx, ParseInput("12a4"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeRejected, out.Kind)
		require.NotNil(t, out.Invalid)
		assert.Equal(t, ReasonDigit, out.Invalid.Reason)
	}
	assert.Equal(t, 0, c.State().AttemptsUsed)
	assert.Equal(t, PhasePlaying, c.Phase())

	out, err := c.Apply(ctx, ParseInput("1123"))
	require.NoError(t, err)
	assert.Equal(t, ReasonRepeat, out.Invalid.Reason)
}

func TestCheatToggleExposesSecret(t *testing.T) {
	ctx := context.Background()
	c, _ := newPlaying(t, medium(), "2461")
	assert.Nil(t, c.Prompt().Secret)

	out, err := c.Apply(ctx, ParseInput("cheat"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCheatToggled, out.Kind)
	assert.True(t, out.Cheat)
	assert.Equal(t, 0, out.AttemptsUsed)
	assert.Equal(t, "2461", c.Prompt().Secret.String())

	_, err = c.Apply(ctx, ParseInput("cheat"))
	require.NoError(t, err)
	assert.Nil(t, c.Prompt().Secret)
	assert.Equal(t, PhasePlaying, c.Phase())
}

func TestQuitAbandonsWithoutSaving(t *testing.T) {
	saver := &recordingSaver{}
	c, _ := newPlaying(t, medium(), "1234", WithSaver(saver))
	_, err := c.Apply(context.Background(), GuessInput("5612"))
	require.NoError(t, err)

	out, err := c.Apply(context.Background(), ParseInput("quit"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, out.Kind)
	assert.Equal(t, PhaseAbandoned, c.Phase())
	assert.Empty(t, saver.saved)
	assert.Equal(t, 1, c.State().AttemptsUsed)
}

func TestSaveBanksElapsedTime(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{}
	c, clock := newPlaying(t, medium(), "1234", WithSaver(saver))

	_, err := c.Apply(ctx, GuessInput("5612"))
	require.NoError(t, err)
	clock.Advance(90 * time.Second)

	out, err := c.Apply(ctx, ParseInput("save"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSaved, out.Kind)
	assert.Equal(t, PhaseSuspended, out.Phase)
	assert.Equal(t, 90, out.Seconds)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, 90, saver.saved[0].AccumulatedSeconds)
	assert.Equal(t, 1, saver.saved[0].AttemptsUsed)
	assert.Equal(t, 90, c.State().AccumulatedSeconds)
	assert.Equal(t, clock.Now(), c.State().StartedAt)
	assert.Equal(t, 90, c.Elapsed())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 100, c.Elapsed())
}

func TestSaveIgnoresBackwardsClock(t *testing.T) {
	saver := &recordingSaver{}
	c, clock := newPlaying(t, medium(), "1234", WithSaver(saver))
	clock.Advance(-time.Hour)
	_, err := c.Apply(context.Background(), ParseInput("save"))
	require.NoError(t, err)
	assert.Equal(t, 0, saver.saved[0].AccumulatedSeconds)
}

func TestSaveFailureKeepsPlaying(t *testing.T) {
	ioErr := errors.New("disk full")
	saver := &recordingSaver{err: ioErr}
	c, clock := newPlaying(t, medium(), "1234", WithSaver(saver))
	clock.Advance(30 * time.Second)

	out, err := c.Apply(context.Background(), ParseInput("save"))
	assert.ErrorIs(t, err, ioErr)
	assert.Equal(t, OutcomeSaveFailed, out.Kind)
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, 0, c.State().AccumulatedSeconds)

	out, err = c.Apply(context.Background(), GuessInput("1234"))
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, out.Phase)
	assert.Equal(t, 30, out.Seconds)
}

func TestSaveWithoutSlot(t *testing.T) {
	c, _ := newPlaying(t, medium(), "1234")
	_, err := c.Apply(context.Background(), ParseInput("save"))
	assert.ErrorIs(t, err, ErrNoSaver)
	assert.Equal(t, PhasePlaying, c.Phase())
}

func TestResumeCarriesAccumulatedTime(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	secret, _ := ParseCode("123", 3, NoRepeats)
	st := &State{
		Secret:             secret,
		Config:             Easy.Config(10, VsHuman),
		AttemptsUsed:       4,
		AccumulatedSeconds: 100,
	}
	c, err := Resume(st, WithClock(clock.Now))
	require.NoError(t, err)
	c.Start()
	assert.NotEmpty(t, c.State().ID)

	clock.Advance(5 * time.Second)
	out, err := c.Apply(context.Background(), GuessInput("123"))
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, out.Phase)
	assert.Equal(t, 5, out.AttemptsUsed)
	assert.Equal(t, 105, out.Seconds)
}

func TestResumeRejectsExhaustedOrInvalidState(t *testing.T) {
	secret, _ := ParseCode("123", 3, NoRepeats)
	_, err := Resume(&State{Secret: secret, Config: Easy.Config(3, VsComputer), AttemptsUsed: 3})
	assert.ErrorIs(t, err, ErrSessionOver)

	_, err = Resume(&State{Secret: Code{1, 1, 2}, Config: Easy.Config(3, VsComputer)})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRestartResetsRound(t *testing.T) {
	ctx := context.Background()
	c, clock := newPlaying(t, medium(), "1234")
	clock.Advance(time.Minute)
	_, err := c.Apply(ctx, GuessInput("1234"))
	require.NoError(t, err)
	firstID := c.State().ID

	assert.Error(t, c.Restart("1123"))
	require.NoError(t, c.Restart("6543"))
	st := c.State()
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, 0, st.AttemptsUsed)
	assert.Equal(t, 0, st.AccumulatedSeconds)
	assert.Equal(t, "6543", st.Secret.String())
	assert.Equal(t, medium(), st.Config)
	assert.NotEqual(t, firstID, st.ID)
	assert.Equal(t, 0, c.Elapsed())
}

func TestRestartWhilePlaying(t *testing.T) {
	c, _ := newPlaying(t, medium(), "1234")
	assert.ErrorIs(t, c.Restart("6543"), ErrNotFinished)
}

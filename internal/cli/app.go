// internal/cli/app.go
//
// Interactive session management around the game engine.
// Responsibilities:
//   - Main menu (new game, load, cheat default toggle, exit).
//   - Session setup: difficulty, mode, secret from the generator or a human.
//   - The turn loop: read input, classify it, apply it, render the outcome.
//   - Play-again rounds with identical settings, and the daily code.
//   - Recording finished rounds in the results ledger (best effort).
//
// Notes:
//   - The app owns process-wide settings such as the cheat default; sessions
//     receive them at construction and never read globals.
//   - All text goes through the renderer; this package only decides flow.

package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/kl-charizard/mastermind-sba/internal/daily"
	"github.com/kl-charizard/mastermind-sba/internal/game"
	"github.com/kl-charizard/mastermind-sba/internal/render"
	"github.com/kl-charizard/mastermind-sba/internal/store"
)

// Recorder stores finished rounds. *daily.Store implements it.
type Recorder interface {
	InsertResult(ctx context.Context, r daily.Result) error
	AlreadyPlayed(ctx context.Context, date string) (bool, error)
}

// Options configures an App. Zero values get sensible defaults.
type Options struct {
	In        io.Reader
	Renderer  *render.Renderer
	Store     store.Store
	SavePath  string
	Results   Recorder // nil disables the ledger
	Generator *game.Generator
	Now       func() time.Time

	CheatDefault bool
	MaxAttempts  int
	DailySalt    string
}

// App is the interactive front end. It is not safe for concurrent use.
type App struct {
	// CheatDefault seeds the cheat flag of every new session.
	CheatDefault bool
	MaxAttempts  int
	DailySalt    string

	in       *bufio.Reader
	hidden   func() (string, error) // non-nil when secrets can be typed without echo
	r        *render.Renderer
	slot     store.Store
	savePath string
	results  Recorder
	gen      *game.Generator
	now      func() time.Time
}

// New builds an App from opts.
func New(opts Options) *App {
	a := &App{
		CheatDefault: opts.CheatDefault,
		MaxAttempts:  opts.MaxAttempts,
		DailySalt:    opts.DailySalt,
		r:            opts.Renderer,
		slot:         opts.Store,
		savePath:     opts.SavePath,
		results:      opts.Results,
		gen:          opts.Generator,
		now:          opts.Now,
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	a.in = bufio.NewReader(in)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		a.hidden = func() (string, error) {
			b, err := term.ReadPassword(fd)
			return strings.TrimSpace(string(b)), err
		}
	}
	if a.r == nil {
		a.r = render.New(os.Stdout, "en-US", false)
	}
	if a.slot == nil {
		a.slot = store.NewMemoryStore()
	}
	if a.savePath == "" {
		a.savePath = store.SaveFile
	}
	if a.gen == nil {
		a.gen = game.NewRandomGenerator()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.MaxAttempts < 1 {
		a.MaxAttempts = game.DefaultMaxAttempts
	}
	return a
}

// read returns the next whitespace-delimited token. The delimiter after the
// token is consumed, so a fully read terminal line leaves nothing buffered.
func (a *App) read() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := a.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
	}
}

// Run shows the main menu until the player exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.r.Welcome()
	for {
		a.r.Menu(a.CheatDefault)
		choice, err := a.read()
		if err != nil {
			return ignoreEOF(err)
		}
		a.r.Newline()

		switch choice {
		case "1":
			err = a.NewGame(ctx)
		case "2":
			err = a.LoadGame(ctx)
		case "3":
			a.CheatDefault = !a.CheatDefault
			a.r.CheatDefault(a.CheatDefault)
		case "4":
			a.r.Goodbye()
			return nil
		default:
			a.r.InvalidChoice()
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// NewGame asks for difficulty and mode, then plays rounds until the player
// stops.
func (a *App) NewGame(ctx context.Context) error {
	a.r.DifficultyMenu()
	d, err := a.read()
	if err != nil {
		return err
	}
	diff, perr := game.ParseDifficulty(d)
	if perr != nil {
		diff = game.Hard
	}

	a.r.ModeMenu()
	m, err := a.read()
	if err != nil {
		return err
	}
	mode := game.VsComputer
	if m == "2" {
		mode = game.VsHuman
	}
	return a.Play(ctx, diff.Config(a.MaxAttempts, mode), a.CheatDefault)
}

// Play starts a session with cfg and keeps offering same-settings restarts
// after each finished round.
func (a *App) Play(ctx context.Context, cfg game.Config, cheat bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	secret, err := a.secret(cfg, false)
	if err != nil {
		return err
	}
	ctl, err := game.NewSession(cfg, secret, cheat, a.sessionOpts()...)
	if err != nil {
		return err
	}
	return a.rounds(ctx, ctl, false)
}

// LoadGame resumes the saved session, if any. Load failures are reported
// and leave the player at the menu.
func (a *App) LoadGame(ctx context.Context) error {
	st, err := a.slot.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoSave):
			log.Debug().Err(err).Msg("load game")
		case store.IsFormatError(err):
			log.Warn().Err(err).Msg("save file unusable")
		default:
			log.Warn().Err(err).Msg("load game")
		}
		a.r.LoadFailed(err)
		return nil
	}
	ctl, err := game.Resume(st, a.sessionOpts()...)
	if err != nil {
		log.Warn().Err(err).Msg("resume game")
		a.r.LoadFailed(errors.Join(store.ErrCorrupted, err))
		return nil
	}
	a.r.Loaded()
	_, err = a.round(ctx, ctl, false)
	return err
}

// Daily plays the shared code of the day, once per day when a ledger is
// configured.
func (a *App) Daily(ctx context.Context) error {
	now := a.now()
	date := daily.DateKey(now)
	if a.results != nil {
		played, err := a.results.AlreadyPlayed(ctx, date)
		if err != nil {
			log.Warn().Err(err).Msg("daily lookup")
		} else if played {
			a.r.DailyPlayed(date)
			return nil
		}
	}
	cfg, code, err := daily.Secret(now, a.DailySalt, a.MaxAttempts)
	if err != nil {
		return err
	}
	ctl, err := game.NewSession(cfg, code.String(), false, a.sessionOpts()...)
	if err != nil {
		return err
	}
	a.r.DailyBanner(date)
	_, err = a.round(ctx, ctl, true)
	return err
}

func (a *App) sessionOpts() []game.Option {
	return []game.Option{game.WithSaver(a.slot), game.WithClock(a.now)}
}

// rounds plays until the player declines a restart or leaves mid-round.
func (a *App) rounds(ctx context.Context, ctl *game.Controller, isDaily bool) error {
	for {
		phase, err := a.round(ctx, ctl, isDaily)
		if err != nil {
			return err
		}
		if phase != game.PhaseWon && phase != game.PhaseLost {
			return nil
		}

		a.r.PlayAgain()
		again, err := a.read()
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			return nil
		}
		secret, err := a.secret(ctl.State().Config, true)
		if err != nil {
			return err
		}
		if err := ctl.Restart(secret); err != nil {
			return err
		}
	}
}

// round runs the turn loop of one round and returns the phase it ended in.
func (a *App) round(ctx context.Context, ctl *game.Controller, isDaily bool) (game.Phase, error) {
	if ctl.Phase() == game.PhaseSettingUp {
		ctl.Start()
	}
	st := ctl.State()
	log.Info().
		Str("session_id", st.ID).
		Str("difficulty", game.DifficultyName(st.Config)).
		Str("mode", st.Config.Mode.String()).
		Int("attempts_used", st.AttemptsUsed).
		Msg("round started")
	a.r.Rules(st.Config)

	for {
		if err := ctx.Err(); err != nil {
			return ctl.Phase(), err
		}
		a.r.Prompt(ctl.Prompt())
		raw, err := a.read()
		if err != nil {
			return ctl.Phase(), err
		}

		out, err := ctl.Apply(ctx, game.ParseInput(raw))
		if err != nil {
			if out.Kind == game.OutcomeSaveFailed {
				log.Warn().Err(err).Str("session_id", st.ID).Msg("save failed")
				a.r.SaveFailed(err)
				continue
			}
			return ctl.Phase(), err
		}
		a.r.Outcome(out, a.savePath)

		if out.Phase.Over() {
			log.Info().
				Str("session_id", st.ID).
				Str("phase", out.Phase.String()).
				Int("attempts_used", out.AttemptsUsed).
				Msg("round ended")
			if out.Phase == game.PhaseWon || out.Phase == game.PhaseLost {
				a.record(ctx, ctl, out, isDaily)
			}
			return out.Phase, nil
		}
	}
}

func (a *App) record(ctx context.Context, ctl *game.Controller, out game.Outcome, isDaily bool) {
	if a.results == nil {
		return
	}
	st := ctl.State()
	res := daily.Result{
		SessionID:  st.ID,
		Date:       daily.DateKey(a.now()),
		Difficulty: game.DifficultyName(st.Config),
		Mode:       st.Config.Mode.String(),
		Daily:      isDaily,
		Attempts:   out.AttemptsUsed,
		Seconds:    ctl.Elapsed(),
		Won:        out.Phase == game.PhaseWon,
	}
	if err := a.results.InsertResult(ctx, res); err != nil {
		log.Warn().Err(err).Str("session_id", st.ID).Msg("record result")
	}
}

// secret produces the next secret: drawn by the generator against the
// computer, typed (and re-prompted until valid) by the code maker otherwise.
func (a *App) secret(cfg game.Config, restart bool) (string, error) {
	if cfg.Mode == game.VsComputer {
		code, err := a.gen.Generate(cfg.CodeLength, cfg.Repeats)
		if err != nil {
			return "", err
		}
		return code.String(), nil
	}

	if restart {
		a.r.NewSecretPrompt()
	} else {
		a.r.SecretPrompt(cfg)
	}
	for {
		s, echoed, err := a.readSecret()
		if err != nil {
			return "", err
		}
		if game.Validate(s, cfg.CodeLength, cfg.Repeats) {
			if echoed {
				a.r.ClearScreen()
			}
			return s, nil
		}
		a.r.TryAgain()
	}
}

// readSecret reads without echo when possible. Text the player typed ahead on
// an earlier line is already buffered, so it is taken from there instead of
// being left behind to be read later as a guess.
func (a *App) readSecret() (s string, echoed bool, err error) {
	if a.hidden != nil && a.in.Buffered() == 0 {
		s, err = a.hidden()
		a.r.Newline()
		return s, false, err
	}
	s, err = a.read()
	return s, true, err
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

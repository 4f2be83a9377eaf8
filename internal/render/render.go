// Package render turns engine outcomes into localized terminal text.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/message"

	"github.com/kl-charizard/mastermind-sba/internal/daily"
	"github.com/kl-charizard/mastermind-sba/internal/game"
	"github.com/kl-charizard/mastermind-sba/internal/store"
)

// Renderer writes localized, optionally coloured, output.
type Renderer struct {
	out   io.Writer
	p     *message.Printer
	red   *color.Color
	white *color.Color
	title *color.Color
	warn  *color.Color
}

// New creates a renderer for lang. noColor strips all ANSI codes; otherwise
// colour follows fatih/color's terminal detection.
func New(out io.Writer, lang string, noColor bool) *Renderer {
	r := &Renderer{
		out:   out,
		p:     printerFor(lang),
		red:   color.New(color.FgRed, color.Bold),
		white: color.New(color.FgWhite, color.Bold),
		title: color.New(color.FgCyan, color.Bold),
		warn:  color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{r.red, r.white, r.title, r.warn} {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) line(key string, args ...any) {
	fmt.Fprintln(r.out, r.p.Sprintf(key, args...))
}

func (r *Renderer) inline(key string, args ...any) {
	fmt.Fprint(r.out, r.p.Sprintf(key, args...))
}

func (r *Renderer) onOff(b bool) string {
	if b {
		return r.p.Sprintf(msgOn)
	}
	return r.p.Sprintf(msgOff)
}

// Welcome prints the banner.
func (r *Renderer) Welcome() {
	bar := strings.Repeat("=", 24)
	fmt.Fprintln(r.out, r.title.Sprint(bar))
	fmt.Fprintln(r.out, r.title.Sprint("   MASTERMIND"))
	fmt.Fprintln(r.out, r.title.Sprint(bar))
	r.line(msgWelcome)
	fmt.Fprintln(r.out)
}

// Menu prints the main menu with the current cheat default.
func (r *Renderer) Menu(cheatDefault bool) { r.inline(msgMenu, r.onOff(cheatDefault)) }

// DifficultyMenu prints the difficulty choices.
func (r *Renderer) DifficultyMenu() { r.inline(msgDifficultyMenu) }

// ModeMenu prints the mode choices.
func (r *Renderer) ModeMenu() { r.inline(msgModeMenu) }

// Rules prints the rules and session settings.
func (r *Renderer) Rules(cfg game.Config) {
	r.inline(msgRules, cfg.CodeLength, cfg.MaxAttempts)
	r.line(msgDifficulty, r.difficulty(cfg))
	mode := msgVsComputer
	if cfg.Mode == game.VsHuman {
		mode = msgVsHuman
	}
	r.line(msgMode, r.p.Sprintf(mode))
	r.line(msgAttemptsAllowed, cfg.MaxAttempts)
	fmt.Fprintln(r.out)
}

func (r *Renderer) difficulty(cfg game.Config) string {
	key := map[string]string{
		"easy":         msgEasy,
		"medium":       msgMedium,
		"hard":         msgHard,
		"hard_repeats": msgHardRepeats,
	}[game.DifficultyName(cfg)]
	if key == "" {
		key = msgCustom
	}
	return r.p.Sprintf(key)
}

// Prompt prints the per-turn prompt, preceded by the secret when cheat is on.
func (r *Renderer) Prompt(p game.Prompt) {
	if p.Secret != nil {
		fmt.Fprintln(r.out, r.warn.Sprint(r.p.Sprintf(msgCheatSecret, p.Secret.String())))
	}
	r.inline(msgGuessPrompt, p.CodeLength)
}

// Outcome prints the result of one turn.
func (r *Renderer) Outcome(o game.Outcome, savePath string) {
	switch o.Kind {
	case game.OutcomeRejected:
		r.Invalid(o.Invalid)
	case game.OutcomeCheatToggled:
		r.line(msgCheatNow, r.onOff(o.Cheat))
	case game.OutcomeSaved:
		r.line(msgSaved, savePath)
		fmt.Fprintln(r.out)
	case game.OutcomeQuit:
		r.line(msgQuit)
		fmt.Fprintln(r.out)
	case game.OutcomeScored:
		r.line(msgFeedback, r.red.Sprint(o.Feedback.Exact), r.white.Sprint(o.Feedback.Misplaced))
		switch o.Phase {
		case game.PhaseWon:
			r.line(msgWon, o.AttemptsUsed, o.Seconds)
		case game.PhaseLost:
			r.line(msgLost, o.Secret.String())
		default:
			r.line(msgAttemptsLeft, o.AttemptsLeft)
		}
		fmt.Fprintln(r.out)
	}
}

// Invalid explains a validation failure and restates the rule.
func (r *Renderer) Invalid(e *game.ValidationError) {
	if e == nil {
		return
	}
	switch e.Reason {
	case game.ReasonLength:
		r.line(msgErrLength, e.Want, e.Got)
	case game.ReasonDigit:
		r.line(msgErrDigit, string(e.Char))
	case game.ReasonRepeat:
		r.line(msgErrRepeat, e.Char)
	}
	if e.Repeats == game.AllowRepeats {
		r.line(msgHintRepeats, e.Want)
	} else {
		r.line(msgHintNoRepeats, e.Want)
	}
}

// SaveFailed reports a save error; play continues.
func (r *Renderer) SaveFailed(err error) {
	fmt.Fprintln(r.out, r.warn.Sprint(r.p.Sprintf(msgSaveFailed, err)))
}

// LoadFailed maps a load error to a message.
func (r *Renderer) LoadFailed(err error) {
	switch {
	case errors.Is(err, store.ErrNoSave):
		r.line(msgNoSave)
	case errors.Is(err, store.ErrUnsupportedFormat):
		r.line(msgUnsupportedSave)
	case errors.Is(err, store.ErrCorrupted):
		r.line(msgCorruptedSave)
	default:
		r.line(msgLoadFailed, err)
	}
	fmt.Fprintln(r.out)
}

// Loaded confirms a successful load.
func (r *Renderer) Loaded() { r.line(msgLoaded) }

// CheatDefault reports the toggled cheat default.
func (r *Renderer) CheatDefault(on bool) {
	r.line(msgCheatDefault, r.onOff(on))
	fmt.Fprintln(r.out)
}

// SecretPrompt asks the code maker for a secret.
func (r *Renderer) SecretPrompt(cfg game.Config) {
	suffix := msgNoRepeats
	if cfg.Repeats == game.AllowRepeats {
		suffix = msgRepeatsAllowed
	}
	r.inline(msgSecretPrompt, cfg.CodeLength, r.p.Sprintf(suffix))
}

// NewSecretPrompt asks the code maker for the next round's secret.
func (r *Renderer) NewSecretPrompt() { r.inline(msgNewSecretPrompt) }

// TryAgain re-prompts after an invalid secret.
func (r *Renderer) TryAgain() { r.inline(msgTryAgain) }

// ClearScreen scrolls the secret out of view.
func (r *Renderer) ClearScreen() { fmt.Fprint(r.out, strings.Repeat("\n", 50)) }

// PlayAgain asks whether to restart with the same settings.
func (r *Renderer) PlayAgain() { r.inline(msgPlayAgain) }

// InvalidChoice reports an unknown menu entry.
func (r *Renderer) InvalidChoice() {
	r.line(msgInvalidChoice)
	fmt.Fprintln(r.out)
}

// Goodbye prints the exit line.
func (r *Renderer) Goodbye() { r.line(msgGoodbye) }

// Newline ends a prompt line when input came from somewhere that did not echo one.
func (r *Renderer) Newline() { fmt.Fprintln(r.out) }

// DailyBanner announces the daily code.
func (r *Renderer) DailyBanner(date string) { r.line(msgDailyBanner, date) }

// DailyPlayed says the daily code was already finished.
func (r *Renderer) DailyPlayed(date string) { r.line(msgDailyPlayed, date) }

// Summary prints ledger totals.
func (r *Renderer) Summary(s daily.Summary) {
	r.line(msgSummary, s.Played, s.Won, s.BestAttempts, s.BestSeconds)
}

// Leaderboard prints the daily leaderboard.
func (r *Renderer) Leaderboard(date string, rows []daily.LBRow) {
	fmt.Fprintln(r.out, r.title.Sprint(r.p.Sprintf(msgLeaderboardTitle, date)))
	if len(rows) == 0 {
		r.line(msgLeaderboardEmpty)
		return
	}
	for i, row := range rows {
		id := row.SessionID
		if len(id) > 8 {
			id = id[:8]
		}
		r.line(msgLeaderboardRow, i+1, id, row.Attempts, row.Seconds)
	}
}

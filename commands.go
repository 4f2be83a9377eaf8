package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kl-charizard/mastermind-sba/internal/cli"
	"github.com/kl-charizard/mastermind-sba/internal/config"
	"github.com/kl-charizard/mastermind-sba/internal/daily"
	"github.com/kl-charizard/mastermind-sba/internal/game"
)

var errNoLedger = errors.New("results ledger unavailable")

func rootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Terminal Mastermind",
		Long:          "Guess the secret digit code. Run without a command for the interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, nil, func(ctx context.Context, app *cli.App, _ *env) error {
				return app.Run(ctx)
			})
		},
	}
	root.AddCommand(playCmd(cfg), loadCmd(cfg), dailyCmd(cfg), statsCmd(cfg))
	return root
}

// withApp opens the ledger, builds an App and closes everything after fn.
func withApp(ctx context.Context, cfg *config.Config, gen *game.Generator, fn func(context.Context, *cli.App, *env) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e := openEnv(cfg)
	defer e.Close()

	opts := cli.Options{
		In:           os.Stdin,
		Renderer:     e.r,
		Store:        e.slot,
		SavePath:     e.slot.Path(),
		Generator:    gen,
		CheatDefault: cfg.CheatDefault,
		MaxAttempts:  cfg.MaxAttempts,
		DailySalt:    cfg.DailySalt,
	}
	if e.results != nil {
		opts.Results = e.results
	}
	return fn(ctx, cli.New(opts), e)
}

func playCmd(cfg *config.Config) *cobra.Command {
	var (
		difficulty string
		vsHuman    bool
		cheat      bool
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game directly, skipping the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := game.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			mode := game.VsComputer
			if vsHuman {
				mode = game.VsHuman
			}
			var gen *game.Generator
			if cmd.Flags().Changed("seed") {
				gen = game.NewSeededGenerator(seed)
			}
			log.Debug().Str("difficulty", string(d)).Str("mode", mode.String()).Msg("play")
			return withApp(cmd.Context(), cfg, gen, func(ctx context.Context, app *cli.App, _ *env) error {
				return app.Play(ctx, d.Config(cfg.MaxAttempts, mode), cheat || cfg.CheatDefault)
			})
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy, medium or hard (or 1-3)")
	cmd.Flags().BoolVar(&vsHuman, "vs-human", false, "let a second player type the secret")
	cmd.Flags().BoolVar(&cheat, "cheat", false, "show the secret before every guess")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the code generator for a reproducible secret")
	return cmd
}

func loadCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Resume the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, nil, func(ctx context.Context, app *cli.App, _ *env) error {
				return app.LoadGame(ctx)
			})
		},
	}
}

func dailyCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Play today's shared code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, nil, func(ctx context.Context, app *cli.App, _ *env) error {
				return app.Daily(ctx)
			})
		},
	}
}

func statsCmd(cfg *config.Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals and today's daily leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, nil, func(ctx context.Context, _ *cli.App, e *env) error {
				if e.results == nil {
					return errNoLedger
				}
				sum, err := e.results.Summary(ctx)
				if err != nil {
					return err
				}
				e.r.Summary(sum)
				e.r.Newline()

				date := daily.DateKey(time.Now())
				rows, err := e.results.Leaderboard(ctx, date, limit)
				if err != nil {
					return err
				}
				e.r.Leaderboard(date, rows)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "leaderboard rows")
	return cmd
}

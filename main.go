package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kl-charizard/mastermind-sba/internal/config"
	"github.com/kl-charizard/mastermind-sba/internal/daily"
	"github.com/kl-charizard/mastermind-sba/internal/render"
	"github.com/kl-charizard/mastermind-sba/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor})

	if err := rootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// env bundles what every command needs. The ledger is optional: when it
// cannot be opened the game still runs, only unrecorded.
type env struct {
	cfg     *config.Config
	r       *render.Renderer
	slot    *store.File
	results *daily.Store
}

func openEnv(cfg *config.Config) *env {
	e := &env{
		cfg:  cfg,
		r:    render.New(os.Stdout, cfg.Lang, cfg.NoColor),
		slot: store.NewFileStore(cfg.DataDir),
	}
	results, err := daily.NewStore(cfg.ResultsDSN())
	if err != nil {
		log.Warn().Err(err).Str("dsn", cfg.ResultsDSN()).Msg("results ledger unavailable")
	} else {
		e.results = results
	}
	return e
}

func (e *env) Close() {
	if e.results == nil {
		return
	}
	if err := e.results.Close(); err != nil {
		log.Warn().Err(err).Msg("close results ledger")
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/config"
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/game"
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/httpserver"
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/score"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// One session and one scoreboard for the lifetime of the process.
	session := game.NewSession(nil)
	board := score.NewBoard()
	srv := httpserver.New(session, board, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", cfg.Addr).Msg("starting higher-or-lower")
	if err := srv.Start(ctx, cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("bye")
}

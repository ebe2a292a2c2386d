package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"slashsync/internal/command"
	"slashsync/internal/command/core"
	"slashsync/internal/config"
	"slashsync/internal/discord"
	"slashsync/internal/logging"
	"slashsync/internal/ui"
	"slashsync/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", "")
		log.Fatal().Err(err).Msg("configuration error")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("version", version.Version).Msgf("starting %s", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := command.NewRegistry()
	uiReg := ui.NewRegistry()
	bot := discord.New(cfg, commands, uiReg)
	core.Register(commands, uiReg, bot, cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot exited with error")
		}
		cancel()
	}

	log.Info().Msg("bot exited cleanly")
}

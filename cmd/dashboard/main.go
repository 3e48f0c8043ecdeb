package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"traincoach/internal/api/whoop"
	"traincoach/internal/config"
	"traincoach/internal/engine"
	"traincoach/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	ctx := context.Background()

	auth := whoop.NewAuthenticator(whoop.AuthenticatorOptions{
		ClientID:     cfg.WhoopClientID,
		ClientSecret: cfg.WhoopClientSecret,
		RedirectURI:  cfg.WhoopRedirectURI,
		CachePath:    cfg.TokenCachePath,
	})

	client := whoop.NewClient(whoop.ClientOptions{
		TokenSource:    auth.LazyTokenSource(ctx),
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	eng := engine.New(engine.Options{
		SleepDebtCutoffMin: cfg.SleepDebtCutoffMin,
		StrainAvgThreshold: cfg.StrainAvgThreshold,
		HistoryDays:        cfg.HistoryDays,
	})

	service := server.NewService(client, eng, cfg.HistoryDays)

	// First fill; tolerate failure when the user has not authorized yet.
	if auth.HasToken() {
		if err := service.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Initial refresh failed")
		}
	} else {
		log.Warn().Msg("No cached token, visit /auth/login to authorize")
	}

	handler := server.NewHandler(service, auth)

	srv := new(server.Server)
	log.Info().Str("addr", cfg.ListenAddr).Msg("Starting dashboard")
	if err := srv.Run(cfg.ListenAddr, handler.InitRoutes(), service, cfg.RefreshSchedule); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

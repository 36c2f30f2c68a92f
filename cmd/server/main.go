package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/topsis/internal/config"
	"github.com/tensorplex-labs/topsis/internal/server"
	"github.com/tensorplex-labs/topsis/internal/topsis"
	"github.com/tensorplex-labs/topsis/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}
	logger.Init(cfg.Environment, cfg.LogLevel)
	log.Info().Msg("Starting ranking server...")

	engine := topsis.NewEngine(topsis.WithPrecision(cfg.ScorePrecision))
	s := server.NewServer(server.NewServerConfig(&cfg.ServerEnvConfig), engine)

	// setup signal handling for graceful shutdown before starting the server
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-sigChan
		log.Info().Msg("shutdown signal received, stopping server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	if err := s.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	<-done
	log.Info().Msg("server stopped")
}

// Package logger provides a global logger for the application
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"
)

var Logger *zap.Logger

// Level resolves the zerolog level for an environment, letting an explicit
// level name override it.
func Level(environment, level string) zerolog.Level {
	if level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && parsed != zerolog.NoLevel {
			return parsed
		}
	}

	switch strings.ToLower(environment) {
	case "dev", "test":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

func initLogger(environment, level string) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	environment = strings.ToLower(environment)
	if environment == "" {
		environment = "prod"
	}

	logLevel := Level(environment, level)
	zerolog.SetGlobalLevel(logLevel)

	var (
		zl  *zap.Logger
		err error
	)
	switch environment {
	case "dev", "test":
		zl, err = zap.NewDevelopment()
	default:
		zl, err = zap.NewProduction()
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to build zap logger, stage logs are disabled")
		zl = zap.NewNop()
	}
	Logger = zl

	log.Debug().
		Str("environment", environment).
		Str("level", logLevel.String()).
		Msg("logger initialised")
}

// Init initializes the logger for the given environment ("dev", "test" or
// "prod") and optional explicit level name. It sets up the global zerolog
// logger with console output on stderr and the zap logger behind Sugar.
//
//	logger.Init(cfg.Environment, cfg.LogLevel) <- inside whichever main() function in your entrypoint
func Init(environment, level string) {
	initLogger(environment, level)
}

// Sugar returns a sugared logger for key/value stage logs. It is a no-op
// logger until Init has been called.
func Sugar() *zap.SugaredLogger {
	if Logger == nil {
		return zap.NewNop().Sugar()
	}
	return Logger.Sugar()
}

// Package server exposes the scoring engine as an HTTP service.
package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/topsis/internal/config"
	"github.com/tensorplex-labs/topsis/internal/topsis"
	"github.com/tensorplex-labs/topsis/pkg/api"
)

// NewServerConfig maps the environment configuration onto a ServerConfig.
func NewServerConfig(cfg *config.ServerEnvConfig) *ServerConfig {
	if cfg == nil {
		return nil
	}
	return &ServerConfig{
		Host:      cfg.Host,
		Port:      cfg.Port,
		BodyLimit: cfg.BodyLimit,
	}
}

// NewServer creates the ranking server. A nil serverConfig uses the defaults
// and a nil engine uses topsis.NewEngine().
func NewServer(serverConfig *ServerConfig, engine *topsis.Engine) *Server {
	if serverConfig == nil {
		serverConfig = &ServerConfig{
			Host:      DefaultServerHost,
			Port:      DefaultServerPort,
			BodyLimit: DefaultBodyLimit,
		}
	}
	if serverConfig.BodyLimit == 0 {
		serverConfig.BodyLimit = DefaultBodyLimit
	}
	if engine == nil {
		engine = topsis.NewEngine()
	}

	log.Info().
		Any("serverConfig", serverConfig).
		Msg("Server configuration loaded")

	app := fiber.New(fiber.Config{
		Prefork:               false,
		DisableStartupMessage: true,
		ErrorHandler:          fiberErrHandler,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             serverConfig.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(ZstdMiddleware([]string{api.HealthPath}))

	server := &Server{
		App:    app,
		config: serverConfig,
		engine: engine,
	}

	app.Get(api.HealthPath, func(c *fiber.Ctx) error {
		return c.JSON(api.NewResponse(api.HealthResponse{Status: api.StatusOK}, nil))
	})
	ServeRoute[api.RankRequest, api.RankResponse](server, api.RankPath, server.handleRank)

	return server
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("Fiber error handler triggered")

	return ctx.Status(code).JSON(api.NewResponse(map[string]any{}, err))
}

// ServeRoute registers a POST handler on path that decodes a Req body and
// wraps the handler's answer in an api.StdResponse.
func ServeRoute[Req, Resp any](s *Server, path string, handler RouteHandler[Req, Resp]) {
	s.App.Post(path, func(c *fiber.Ctx) error {
		var req Req
		if err := c.BodyParser(&req); err != nil {
			log.Error().
				Err(err).
				Str("route", path).
				Msg("Failed to parse request body")
			var zero Resp
			return c.Status(fiber.StatusBadRequest).
				JSON(api.NewResponse(zero, fmt.Errorf("invalid request body: %w", err)))
		}

		resp, err := handler(c, req)
		if err != nil {
			code := statusFor(err)
			log.Warn().
				Err(err).
				Str("route", path).
				Int("status_code", code).
				Msg("Handler returned error")
			var zero Resp
			return c.Status(code).JSON(api.NewResponse(zero, err))
		}

		return c.JSON(api.NewResponse(resp, nil))
	})
}

// Address is the listen address derived from the configuration.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start blocks serving requests until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	log.Info().Str("address", s.Address()).Msg("ranking server listening")
	return s.App.Listen(s.Address())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}

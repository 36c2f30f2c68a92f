package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorplex-labs/topsis/internal/topsis"
)

const (
	ZstdEncoding = "zstd"

	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 8888
	DefaultBodyLimit  = 4 * 1024 * 1024 // 4MB
)

// Server serves TOPSIS rankings over HTTP.
type Server struct {
	App    *fiber.App
	config *ServerConfig
	engine *topsis.Engine
}

type ServerConfig struct {
	Host      string
	Port      int
	BodyLimit int
}

// RouteHandler handles a decoded request body of type Req.
type RouteHandler[Req, Resp any] func(*fiber.Ctx, Req) (Resp, error)

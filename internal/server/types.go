package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

const (
	// Server defaults
	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 8888
	DefaultBodyLimit  = 4 * 1024 * 1024 // 4MB
)

// Server represents the H-measure service
type Server struct {
	App       *fiber.App
	config    *ServerConfig
	evaluator *hmeasure.Evaluator
}

type ServerConfig struct {
	Host      string
	Port      int
	BodyLimit int
	// Density used when a request does not name its own.
	Density hmeasure.BetaParams
	Options []hmeasure.Option
}

// RouterHandler is a generic handler function type
type RouterHandler[Req, Resp any] func(*fiber.Ctx, Req) (Resp, error)

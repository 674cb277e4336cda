// Package server exposes the H-measure engine over HTTP.
package server

import (
	"context"
	"net"
	"reflect"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/hmeasure/internal/config"
	"github.com/tensorplex-labs/hmeasure/pkg/api"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// ConfigFromEnv builds a ServerConfig from the loaded environment.
func ConfigFromEnv(cfg *config.AppConfig) *ServerConfig {
	return &ServerConfig{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		BodyLimit: cfg.Server.BodySizeLimit,
		Density:   cfg.HMeasure.Params(),
		Options:   cfg.HMeasure.Options(),
	}
}

// NewServer creates the service with its routes registered.
func NewServer(serverConfig *ServerConfig) (*Server, error) {
	if serverConfig == nil {
		serverConfig = &ServerConfig{}
	}
	if serverConfig.Host == "" {
		serverConfig.Host = DefaultServerHost
	}
	if serverConfig.Port == 0 {
		serverConfig.Port = DefaultServerPort
	}
	if serverConfig.BodyLimit == 0 {
		serverConfig.BodyLimit = DefaultBodyLimit
	}
	if serverConfig.Density == (hmeasure.BetaParams{}) {
		serverConfig.Density = hmeasure.DefaultBetaParams()
	}

	// Caller options come last so an explicit WithLogger wins.
	serverConfig.Options = append([]hmeasure.Option{hmeasure.WithLogger(log.Logger)}, serverConfig.Options...)

	evaluator, err := hmeasure.New(serverConfig.Density, serverConfig.Options...)
	if err != nil {
		return nil, errors.WithMessage(err, "default evaluator")
	}

	log.Info().
		Str("host", serverConfig.Host).
		Int("port", serverConfig.Port).
		Int("body_limit", serverConfig.BodyLimit).
		Any("density", serverConfig.Density).
		Msg("Server configuration loaded")

	app := fiber.New(fiber.Config{
		Prefork:               false,
		DisableStartupMessage: true,
		ErrorHandler:          fiberErrHandler,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             serverConfig.BodyLimit,
	})

	app.Use(recover.New()) // add panic recovery
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	zstdMiddleware, err := ZstdMiddleware([]string{api.HealthRoute}, serverConfig.BodyLimit)
	if err != nil {
		return nil, err
	}
	app.Use(zstdMiddleware)

	server := &Server{
		App:       app,
		config:    serverConfig,
		evaluator: evaluator,
	}
	server.registerRoutes()
	return server, nil
}

func (s *Server) registerRoutes() {
	s.App.Get(api.HealthRoute, s.handleHealth)
	ServeRoute(s, s.handleCompute)
	ServeRoute(s, s.handleCompare)
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	code := statusCode(err)

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("Fiber error handler triggered")

	return ctx.Status(code).JSON(createResponse(map[string]any{}, err))
}

// ServeRoute registers a POST handler at "/" + the request type's name.
func ServeRoute[Req, Resp any](s *Server, handler RouterHandler[Req, Resp]) {
	var zeroReq Req
	route := "/" + reflect.TypeOf(zeroReq).Name()

	s.App.Post(route, func(c *fiber.Ctx) error {
		var req Req
		if err := c.BodyParser(&req); err != nil {
			log.Error().
				Err(err).
				Str("route", route).
				Msg("Failed to parse request body")
			return c.Status(fiber.StatusBadRequest).
				JSON(createResponse(map[string]any{}, err))
		}

		resp, err := handler(c, req)
		if err != nil {
			code := statusCode(err)
			log.Error().
				Err(err).
				Int("status_code", code).
				Str("route", route).
				Msg("Handler returned error")
			var zero Resp
			return c.Status(code).JSON(createResponse(zero, err))
		}

		return c.JSON(createResponse(resp, nil))
	})
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.Addr()).Msg("Server listening")
		errCh <- s.App.Listen(s.Addr())
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		if err := s.App.Shutdown(); err != nil {
			return errors.Wrap(err, "server shutdown")
		}
		return nil
	}
}

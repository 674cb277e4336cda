// Command server runs the H-measure HTTP service configured from the
// environment. It is equivalent to `hmeasure serve`.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/hmeasure/internal/config"
	"github.com/tensorplex-labs/hmeasure/internal/server"
	"github.com/tensorplex-labs/hmeasure/internal/utils/logger"
)

func main() {
	var flags logger.Flags
	flag.BoolVar(&flags.Debug, "debug", false, "sets log level to debug")
	flag.BoolVar(&flags.Trace, "trace", false, "sets log level to trace")
	flag.BoolVar(&flags.Info, "info", false, "sets log level to info (default)")
	flag.Parse()
	logger.Init(flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	srv, err := server.NewServer(server.ConfigFromEnv(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	if err := srv.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
	log.Info().Msg("Server stopped")
}

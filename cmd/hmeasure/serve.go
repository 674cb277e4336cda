package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve H-measure computations over HTTP",
		Long: `Serve H-measure computations over HTTP.

Routes: POST /ComputeRequest, POST /CompareRequest, GET /health.
The default density and priors come from the HMEASURE_* environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverConfig := server.ConfigFromEnv(a.cfg)
			if cmd.Flags().Changed("host") {
				serverConfig.Host = host
			}
			if cmd.Flags().Changed("port") {
				serverConfig.Port = port
			}

			srv, err := server.NewServer(serverConfig)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", server.DefaultServerHost, "listen host (default SERVER_HOST)")
	cmd.Flags().IntVar(&port, "port", server.DefaultServerPort, "listen port (default SERVER_PORT)")
	return cmd
}

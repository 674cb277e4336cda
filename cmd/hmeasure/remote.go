package main

import (
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/pkg/api"
	"github.com/tensorplex-labs/hmeasure/pkg/client"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func newRemoteCmd(a *app) *cobra.Command {
	var (
		input   scoreFlags
		density densityFlags
		url     string
		curves  bool
		noZstd  bool
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Compute the H-measure through a running hmeasure server",
		Long: `Compute the H-measure through a running hmeasure server.

Density and priors are only sent when given as flags; otherwise the
server's defaults apply.

Example: hmeasure remote --url http://127.0.0.1:8888 --scores scores.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input.load()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("url") {
				url = a.cfg.Client.ServerURL
			}
			c, err := client.NewClient(&client.ClientConfig{
				BaseURL:         url,
				Timeout:         a.cfg.Client.ClientTimeout,
				RetryMax:        a.cfg.Client.RetryMax,
				ZstdCompression: !noZstd,
			})
			if err != nil {
				return err
			}
			defer c.Close()

			req := api.ComputeRequest{Class0: s.Class0, Class1: s.Class1, Curves: curves}
			if cmd.Flags().Changed("alpha") {
				req.WithDensity(hmeasure.BetaParams{Alpha: density.alpha, Beta: density.beta})
			}
			if cmd.Flags().Changed("prior0") {
				req.WithPriors(density.prior0, density.prior1)
			}

			resp, err := c.Compute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp.Result)
		},
	}

	input.register(cmd)
	density.register(cmd)
	cmd.Flags().StringVar(&url, "url", "", "server base URL (default HMEASURE_SERVER_URL)")
	cmd.Flags().BoolVar(&curves, "curves", false, "include the ROC curve, convex hull and integration components")
	cmd.Flags().BoolVar(&noZstd, "no-zstd", false, "send and accept uncompressed bodies")
	return cmd
}

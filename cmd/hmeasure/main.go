// Command hmeasure computes, serves and inspects H-measures of binary
// classifiers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/config"
	"github.com/tensorplex-labs/hmeasure/internal/utils/logger"
)

// app carries state shared by every subcommand once the root has run.
type app struct {
	logFlags logger.Flags
	cfg      *config.AppConfig
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "hmeasure",
		Short:         "Evaluate binary classifiers with Hand's H-measure",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(a.logFlags)
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.logFlags.Debug, "debug", false, "sets log level to debug")
	rootCmd.PersistentFlags().BoolVar(&a.logFlags.Trace, "trace", false, "sets log level to trace")
	rootCmd.PersistentFlags().BoolVar(&a.logFlags.Info, "info", false, "sets log level to info (default)")

	rootCmd.AddCommand(
		newComputeCmd(a),
		newCompareCmd(a),
		newGenerateCmd(a),
		newDescribeCmd(a),
		newServeCmd(a),
		newRemoteCmd(a),
	)
	return rootCmd
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/report"
	"github.com/tensorplex-labs/hmeasure/internal/scores"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		files   fileFlags
		density densityFlags
		plot    bool
	)

	cmd := &cobra.Command{
		Use:   "compare [score-file...]",
		Short: "Rank classifiers by H-measure under one cost density",
		Long: `Rank classifiers by H-measure under one cost density. Each score file
holds one classifier, named after the file.

Example: hmeasure compare model_a.csv model_b.xlsx --plot`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := files.options()
			if err != nil {
				return err
			}
			classifiers := make(map[string]hmeasure.BinaryClassScores, len(args))
			for _, path := range args {
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				if _, dup := classifiers[name]; dup {
					return fmt.Errorf("duplicate classifier name %q", name)
				}
				s, err := scores.Load(path, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				classifiers[name] = s
			}

			env := density.merge(cmd, a.cfg.HMeasure)
			evaluator, err := hmeasure.New(env.Params(), append(env.Options(), hmeasure.WithLogger(log.Logger))...)
			if err != nil {
				return err
			}
			rankings, err := evaluator.Compare(cmd.Context(), classifiers)
			if err != nil {
				return err
			}

			if plot {
				return report.PlotRankings(cmd.OutOrStdout(), rankings,
					fmt.Sprintf("H-measure under Beta(%g, %g)", env.Alpha, env.Beta))
			}
			return writeJSON(cmd.OutOrStdout(), rankings)
		},
	}

	files.register(cmd)
	density.register(cmd)
	density.registerQuadrature(cmd)
	cmd.Flags().BoolVar(&plot, "plot", false, "draw a terminal bar chart instead of JSON")
	return cmd
}

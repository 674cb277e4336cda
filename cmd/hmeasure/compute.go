package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/report"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

type computeOutput struct {
	H             float64             `json:"h"`
	AUC           float64             `json:"auc"`
	Loss          float64             `json:"loss"`
	ReferenceLoss float64             `json:"reference_loss"`
	Priors        hmeasure.Priors     `json:"priors"`
	Density       hmeasure.BetaParams `json:"density"`
	Class0Count   int                 `json:"class0_count"`
	Class1Count   int                 `json:"class1_count"`
	// Detail is only filled with --curves.
	Detail *hmeasure.Result `json:"detail,omitempty"`
}

func newComputeCmd(a *app) *cobra.Command {
	var (
		input   scoreFlags
		density densityFlags
		curves  bool
		plot    bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the H-measure of a classifier",
		Long: `Compute the H-measure of a classifier from its class-0 and class-1 scores.

Example: hmeasure compute --scores scores.csv --alpha 2 --beta 2
         hmeasure compute --class0 0.1,0.4 --class1 0.35,0.8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input.load()
			if err != nil {
				return err
			}

			env := density.merge(cmd, a.cfg.HMeasure)
			evaluator, err := hmeasure.New(env.Params(), append(env.Options(), hmeasure.WithLogger(log.Logger))...)
			if err != nil {
				return err
			}
			res, err := evaluator.Compute(s)
			if err != nil {
				return err
			}

			out := computeOutput{
				H:             res.H,
				AUC:           res.AUC,
				Loss:          res.Loss,
				ReferenceLoss: res.ReferenceLoss,
				Priors:        res.Priors,
				Density:       res.Density,
				Class0Count:   len(res.Class0),
				Class1Count:   len(res.Class1),
			}
			if plot {
				return report.PlotHull(cmd.OutOrStdout(), res)
			}
			if curves {
				out.Detail = res
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	input.register(cmd)
	density.register(cmd)
	density.registerQuadrature(cmd)
	cmd.Flags().BoolVar(&curves, "curves", false, "include the ROC curve, convex hull and integration components")
	cmd.Flags().BoolVar(&plot, "plot", false, "print the convex hull and cost intervals instead of JSON")
	return cmd
}

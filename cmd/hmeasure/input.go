package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/config"
	"github.com/tensorplex-labs/hmeasure/internal/scores"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// fileFlags describe the layout of score files.
type fileFlags struct {
	sheet   string
	columns []int
	noHead  bool
}

func (f *fileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "worksheet to read from an .xlsx file (default first)")
	cmd.Flags().IntSliceVar(&f.columns, "columns", nil, "zero-based class-0 and class-1 columns (default 1,2)")
	cmd.Flags().BoolVar(&f.noHead, "no-header", false, "the score file has no header row")
}

func (f *fileFlags) options() ([]scores.Option, error) {
	var opts []scores.Option
	if len(f.columns) > 0 {
		if len(f.columns) != 2 {
			return nil, fmt.Errorf("--columns takes exactly two indexes, got %d", len(f.columns))
		}
		opts = append(opts, scores.WithColumns(f.columns[0], f.columns[1]))
	}
	if f.noHead {
		opts = append(opts, scores.WithoutHeader())
	}
	if f.sheet != "" {
		opts = append(opts, scores.WithSheet(f.sheet))
	}
	return opts, nil
}

// scoreFlags select where class scores come from: a score file or two
// inline lists.
type scoreFlags struct {
	fileFlags
	path   string
	class0 []float64
	class1 []float64
}

func (f *scoreFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "scores", "s", "", "score file (.csv or .xlsx)")
	f.fileFlags.register(cmd)
	cmd.Flags().Float64SliceVar(&f.class0, "class0", nil, "class-0 scores")
	cmd.Flags().Float64SliceVar(&f.class1, "class1", nil, "class-1 scores")
	cmd.MarkFlagsMutuallyExclusive("scores", "class0")
	cmd.MarkFlagsMutuallyExclusive("scores", "class1")
}

func (f *scoreFlags) load() (hmeasure.BinaryClassScores, error) {
	if f.path == "" {
		if len(f.class0) == 0 && len(f.class1) == 0 {
			return hmeasure.BinaryClassScores{}, fmt.Errorf("either --scores or --class0 and --class1 is required")
		}
		return hmeasure.BinaryClassScores{Class0: f.class0, Class1: f.class1}, nil
	}

	opts, err := f.options()
	if err != nil {
		return hmeasure.BinaryClassScores{}, err
	}
	return scores.Load(f.path, opts...)
}

// densityFlags override the configured cost density and priors.
type densityFlags struct {
	alpha      float64
	beta       float64
	prior0     float64
	prior1     float64
	quadrature int
}

func (f *densityFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "cost density alpha (default HMEASURE_ALPHA)")
	cmd.Flags().Float64Var(&f.beta, "beta", 0, "cost density beta (default HMEASURE_BETA)")
	cmd.Flags().Float64Var(&f.prior0, "prior0", 0, "class-0 prior (default from sample sizes)")
	cmd.Flags().Float64Var(&f.prior1, "prior1", 0, "class-1 prior (default from sample sizes)")
	cmd.MarkFlagsRequiredTogether("alpha", "beta")
	cmd.MarkFlagsRequiredTogether("prior0", "prior1")
}

// registerQuadrature adds the local-only --quadrature flag.
func (f *densityFlags) registerQuadrature(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.quadrature, "quadrature", 0, "integrate numerically with this many Gauss-Legendre nodes")
}

// merge layers the flags set on cmd over the environment configuration.
func (f *densityFlags) merge(cmd *cobra.Command, env config.HMeasureEnvConfig) config.HMeasureEnvConfig {
	if cmd.Flags().Changed("alpha") {
		env.Alpha, env.Beta = f.alpha, f.beta
	}
	if cmd.Flags().Changed("prior0") {
		env.Class0Prior, env.Class1Prior = f.prior0, f.prior1
	}
	if fl := cmd.Flags().Lookup("quadrature"); fl != nil && fl.Changed {
		env.QuadratureNodes = f.quadrature
	}
	return env
}

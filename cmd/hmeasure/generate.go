package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/datagen"
	"github.com/tensorplex-labs/hmeasure/internal/scores"
)

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		params = datagen.DefaultParams()
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate [output-file]",
		Short: "Write synthetic Beta-distributed classifier scores",
		Long: `Write synthetic classifier scores drawn from one Beta distribution per class.

The output format follows the file extension (.csv or .xlsx).

Example: hmeasure generate scores.csv --n0 2000 --n1 1800 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			s, err := datagen.Generate(params, seed)
			if err != nil {
				return err
			}

			switch ext := strings.ToLower(filepath.Ext(path)); ext {
			case ".csv":
				err = scores.SaveCSV(path, s)
			case ".xlsx":
				err = scores.SaveXLSX(path, s)
			default:
				return fmt.Errorf("%w: %q", scores.ErrUnsupportedFormat, ext)
			}
			if err != nil {
				return err
			}

			log.Info().
				Str("path", path).
				Int("class0", len(s.Class0)).
				Int("class1", len(s.Class1)).
				Uint64("seed", seed).
				Msg("wrote synthetic scores")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 42, "random seed for deterministic output")
	cmd.Flags().IntVar(&params.Class0Size, "n0", params.Class0Size, "number of class-0 scores")
	cmd.Flags().IntVar(&params.Class1Size, "n1", params.Class1Size, "number of class-1 scores")
	cmd.Flags().Float64Var(&params.Class0.Alpha, "class0-alpha", params.Class0.Alpha, "class-0 score Beta alpha")
	cmd.Flags().Float64Var(&params.Class0.Beta, "class0-beta", params.Class0.Beta, "class-0 score Beta beta")
	cmd.Flags().Float64Var(&params.Class1.Alpha, "class1-alpha", params.Class1.Alpha, "class-1 score Beta alpha")
	cmd.Flags().Float64Var(&params.Class1.Beta, "class1-beta", params.Class1.Beta, "class-1 score Beta beta")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/hmeasure/internal/scores"
)

func newDescribeCmd(_ *app) *cobra.Command {
	var input scoreFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarize the score distribution of each class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input.load()
			if err != nil {
				return err
			}
			summary, err := scores.Summarize(s)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}

	input.register(cmd)
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func newRollupCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rollup",
		Args:  cobra.NoArgs,
		Short: "Print per-route aggregates of an environment as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			routes, err := rt.service.Rollup(cmd.Context(), opts.env)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), routes)
		},
	}
}

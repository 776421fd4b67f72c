package commands

import (
	"github.com/spf13/cobra"
)

func newAnalyzeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Args:  cobra.NoArgs,
		Short: "Print the performance report of an environment as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			report, err := rt.service.Report(cmd.Context(), opts.env)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}

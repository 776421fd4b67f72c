package commands

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPurgeCommand(opts *globalOptions) *cobra.Command {
	var (
		olderThan time.Duration
		allEnvs   bool
	)

	cmd := &cobra.Command{
		Use:   "purge",
		Args:  cobra.NoArgs,
		Short: "Remove stored records older than a given age",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan < 0 {
				return fmt.Errorf("--older-than must not be negative")
			}
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			var before time.Time
			if olderThan > 0 {
				before = time.Now().Add(-olderThan)
			}
			env := opts.env
			if allEnvs {
				env = ""
			}

			removed, err := rt.service.Purge(cmd.Context(), before, env)
			if err != nil {
				return err
			}
			rt.logger.WithFields(logrus.Fields{
				"env":     env,
				"before":  before,
				"removed": removed,
			}).Debug("Purge finished")
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d records\n", removed)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age of records to remove; 0 removes everything")
	cmd.Flags().BoolVar(&allEnvs, "all-envs", false, "purge every environment instead of --env")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/spf13/cobra"
)

func newRecordCommand(opts *globalOptions) *cobra.Command {
	var (
		route        string
		method       string
		requestTime  float64
		queryTime    float64
		totalQueries int
		memoryUsage  int64
		statusCode   int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Args:  cobra.NoArgs,
		Short: "Record a single request",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			flags := cmd.Flags()
			rec := models.AccessRecord{
				Env:        opts.env,
				Route:      route,
				HTTPMethod: method,
			}
			if flags.Changed("time") {
				rec.ResponseTime = models.Float(requestTime)
			}
			if flags.Changed("query-time") {
				rec.QueryTime = models.Float(queryTime)
			}
			if flags.Changed("queries") {
				rec.TotalQueries = models.Int(totalQueries)
			}
			if flags.Changed("memory") {
				rec.MemoryUsage = models.Int64(memoryUsage)
			}
			if flags.Changed("status") {
				rec.StatusCode = models.Int(statusCode)
			}

			stored, err := rt.service.Record(cmd.Context(), rec)
			if err != nil {
				return err
			}
			if stored {
				fmt.Fprintln(cmd.OutOrStdout(), "recorded")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "skipped")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&route, "route", "r", "", "route name")
	cmd.Flags().StringVarP(&method, "method", "m", "GET", "HTTP method")
	cmd.Flags().Float64VarP(&requestTime, "time", "t", 0, "request time in seconds")
	cmd.Flags().Float64Var(&queryTime, "query-time", 0, "query time in seconds")
	cmd.Flags().IntVarP(&totalQueries, "queries", "q", 0, "number of queries")
	cmd.Flags().Int64Var(&memoryUsage, "memory", 0, "peak memory in bytes")
	cmd.Flags().IntVarP(&statusCode, "status", "s", 0, "HTTP status code")
	cmd.MarkFlagRequired("route")

	return cmd
}

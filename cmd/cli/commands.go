package main

import (
	"fmt"

	"fundtrack/internal/domain"

	"github.com/spf13/cobra"
)

// cli runs act on behalf of the system actor
var cliActor = domain.SystemActor

func newMetricsCmd(cc *cliContext) *cobra.Command {
	var asOf string
	var refresh bool
	c := &cobra.Command{
		Use:   "metrics <allocation-id>",
		Short: "Compute MOIC and IRR for an allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID("allocation", args[0])
			if err != nil {
				return err
			}
			ctx := c.Context()
			performance := cc.deps.ApiHandler.PerformanceService
			if refresh {
				a, err := performance.RefreshMetrics(ctx, id)
				if err != nil {
					return err
				}
				return printJson(c, a)
			}

			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			metrics, err := performance.ComputeMetrics(ctx, cliActor, id, date)
			if err != nil {
				return err
			}
			return printJson(c, metrics)
		},
	}
	c.Flags().StringVar(&asOf, "as-of", "", "valuation date (YYYY-MM-DD), defaults to today")
	c.Flags().BoolVar(&refresh, "refresh", false, "store the recomputed figures on the allocation")
	return c
}

func newRecalcCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc <fund-id>",
		Short: "Recalculate portfolio weights for a fund",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			fundID, err := parseID("fund", args[0])
			if err != nil {
				return err
			}
			weights, err := cc.deps.ApiHandler.PortfolioService.RecalculateWeights(c.Context(), cliActor, fundID)
			if err != nil {
				return err
			}
			return printJson(c, weights)
		},
	}
}

func newDiversificationCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diversification <fund-id>",
		Short: "Print sector, security type and stage breakdowns for a fund",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			fundID, err := parseID("fund", args[0])
			if err != nil {
				return err
			}
			metrics, err := cc.deps.ApiHandler.PortfolioService.Diversification(c.Context(), cliActor, fundID)
			if err != nil {
				return err
			}
			return printJson(c, metrics)
		},
	}
}

func newAdvanceCmd(cc *cliContext) *cobra.Command {
	var asOf string
	c := &cobra.Command{
		Use:   "advance",
		Short: "Run the capital call sweep and recompute metrics",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			summary, err := cc.deps.RecomputeApp.RunDailySweep(c.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "called %d, defaulted %d, sweep failures %d, refreshed %d\n",
				len(summary.Sweep.Called),
				len(summary.Sweep.Defaulted),
				len(summary.Sweep.Failures),
				summary.RefreshedCount,
			)
			for _, f := range summary.Sweep.Failures {
				fmt.Fprintf(c.OutOrStdout(), "  %s: %v\n", f.AllocationID, f.Err)
			}
			return nil
		},
	}
	c.Flags().StringVar(&asOf, "as-of", "", "sweep date (YYYY-MM-DD), defaults to today")
	return c
}

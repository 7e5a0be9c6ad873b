package main

import (
	"encoding/json"
	"fmt"
	"os"

	"fundtrack/cmd"
	"fundtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type cliContext struct {
	deps *cmd.Dependencies
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}
	root := &cobra.Command{
		Use:           "fundtrack",
		Short:         "Operate on fund allocations from the command line",
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			cc.deps = deps
			return nil
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			if cc.deps != nil {
				cmd.CloseDependencies(cc.deps)
			}
		},
	}

	root.AddCommand(
		newMetricsCmd(cc),
		newRecalcCmd(cc),
		newDiversificationCmd(cc),
		newAdvanceCmd(cc),
		newImportDealsCmd(cc),
	)
	return root
}

func printJson(c *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(out))
	return err
}

func parseID(kind, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", kind, s, err)
	}
	return id, nil
}

// parseAsOf reads an optional YYYY-MM-DD flag, defaulting to today.
func parseAsOf(raw string) (domain.Date, error) {
	if raw == "" {
		return domain.Today(domain.SystemClock{}), nil
	}
	return domain.ParseDate(raw)
}

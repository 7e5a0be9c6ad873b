package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fundtrack/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type dealCsvRow struct {
	DealID string `csv:"deal_id"`
	Name   string `csv:"name"`
	Sector string `csv:"sector"`
	Stage  string `csv:"stage"`
}

// parseDealsCsv reads name, sector, stage and an optional deal_id column.
func parseDealsCsv(r io.Reader, fundID uuid.UUID) ([]domain.Deal, error) {
	rows := []dealCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse deals csv: %w", err)
	}

	out := make([]domain.Deal, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("row %d: name is required", i+1)
		}
		dealID := uuid.New()
		if s := strings.TrimSpace(row.DealID); s != "" {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid deal_id %q: %w", i+1, s, err)
			}
			dealID = id
		}
		out = append(out, domain.Deal{
			DealID: dealID,
			FundID: fundID,
			Name:   name,
			Sector: strings.TrimSpace(row.Sector),
			Stage:  strings.TrimSpace(row.Stage),
		})
	}
	return out, nil
}

func newImportDealsCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-deals <fund-id> <file.csv>",
		Short: "Load deals for a fund from a csv file",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			fundID, err := parseID("fund", args[0])
			if err != nil {
				return err
			}
			if _, err := cc.deps.FundRepository.Get(nil, fundID); err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[1], err)
			}
			defer f.Close()

			deals, err := parseDealsCsv(f, fundID)
			if err != nil {
				return err
			}
			for _, d := range deals {
				if _, err := cc.deps.DealRepository.Add(nil, d); err != nil {
					return fmt.Errorf("failed to import deal %s: %w", d.Name, err)
				}
			}
			fmt.Fprintf(c.OutOrStdout(), "imported %d deals into fund %s\n", len(deals), fundID)
			return nil
		},
	}
}

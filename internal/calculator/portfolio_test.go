package calculator

import (
	"testing"

	"fundtrack/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func weightStrings(weights map[uuid.UUID]decimal.Decimal, allocations []domain.Allocation) []string {
	out := []string{}
	for _, a := range allocations {
		out = append(out, weights[a.AllocationID].String())
	}
	return out
}

func TestRecalculateWeights(t *testing.T) {
	t.Run("market value shares", func(t *testing.T) {
		allocations := []domain.Allocation{
			testAllocation("100", "100"),
			testAllocation("100", "300"),
		}

		weights := RecalculateWeights(allocations)
		require.Equal(t, "", cmp.Diff([]string{"0.25", "0.75"}, weightStrings(weights, allocations)))

		for i := range allocations {
			allocations[i].PortfolioWeight = weights[allocations[i].AllocationID]
		}
		again := RecalculateWeights(allocations)
		require.Equal(t, "", cmp.Diff(weightStrings(weights, allocations), weightStrings(again, allocations)))
	})

	t.Run("falls back to paid when unmarked", func(t *testing.T) {
		allocations := []domain.Allocation{
			testAllocation("100", "0"),
			testAllocation("300", "0"),
		}

		weights := RecalculateWeights(allocations)
		require.Equal(t, "", cmp.Diff([]string{"0.25", "0.75"}, weightStrings(weights, allocations)))
	})

	t.Run("written off is excluded", func(t *testing.T) {
		writtenOff := testAllocation("500", "0")
		writtenOff.Status = domain.AllocationStatusWrittenOff
		allocations := []domain.Allocation{
			testAllocation("100", "200"),
			writtenOff,
			testAllocation("100", "200"),
		}

		weights := RecalculateWeights(allocations)
		require.Equal(t, "", cmp.Diff([]string{"0.5", "0", "0.5"}, weightStrings(weights, allocations)))
	})

	t.Run("empty fund", func(t *testing.T) {
		allocations := []domain.Allocation{testAllocation("0", "0")}

		weights := RecalculateWeights(allocations)
		require.True(t, weights[allocations[0].AllocationID].IsZero())
	})
}

func TestDiversification(t *testing.T) {
	fundID := uuid.New()
	a1 := testAllocation("100", "100")
	a1.Moic = decimal.RequireFromString("1")
	a2 := testAllocation("100", "300")
	a2.Moic = decimal.RequireFromString("3")
	a2.SecurityType = domain.SecurityTypeSafe
	a3 := testAllocation("100", "0")
	a3.Status = domain.AllocationStatusWrittenOff

	deals := map[uuid.UUID]domain.Deal{
		a1.DealID: {DealID: a1.DealID, Sector: "fintech", Stage: "seed"},
		a2.DealID: {DealID: a2.DealID, Sector: "biotech"},
	}

	m := Diversification(fundID, []domain.Allocation{a1, a2, a3}, deals)

	require.Equal(t, fundID, m.FundID)
	require.Equal(t, 2, m.AllocationCount)
	require.Equal(t, "400.00", m.TotalValue.String())
	require.Equal(t, "0.625", m.ConcentrationRisk.String())
	require.Equal(t, "0.75", m.LargestWeight.String())

	keys := func(b []domain.BucketWeight) []string {
		out := []string{}
		for _, w := range b {
			out = append(out, w.Key+"="+w.Weight.String())
		}
		return out
	}
	require.Equal(t, "", cmp.Diff([]string{"biotech=0.75", "fintech=0.25"}, keys(m.BySector)))
	require.Equal(t, "", cmp.Diff([]string{"safe=0.75", "equity=0.25"}, keys(m.BySecurityType)))
	require.Equal(t, "", cmp.Diff([]string{"unknown=0.75", "seed=0.25"}, keys(m.ByStage)))

	require.InDelta(t, 2.0, m.Moic.Mean, 1e-9)
	require.InDelta(t, 2.0, m.Moic.Median, 1e-9)
	require.InDelta(t, 1.0, m.Moic.Stdev, 1e-9)
}

package calculator

import (
	"math"
	"testing"

	"fundtrack/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestXIRR(t *testing.T) {
	t.Run("two cash flows one year apart", func(t *testing.T) {
		rate, err := XIRR([]CashFlow{
			{Date: domain.MustDate("2023-01-01"), Amount: -100},
			{Date: domain.MustDate("2024-01-01"), Amount: 150},
		})
		require.NoError(t, err)
		require.InDelta(t, 0.5, rate, 1e-6)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		rate, err := XIRR([]CashFlow{
			{Date: domain.MustDate("2024-01-01"), Amount: 1100},
			{Date: domain.MustDate("2023-01-01"), Amount: -1000},
		})
		require.NoError(t, err)
		require.InDelta(t, 0.1, rate, 1e-6)
	})

	t.Run("losses give negative rates", func(t *testing.T) {
		rate, err := XIRR([]CashFlow{
			{Date: domain.MustDate("2023-01-01"), Amount: -100},
			{Date: domain.MustDate("2023-07-01"), Amount: -100},
			{Date: domain.MustDate("2025-01-01"), Amount: 120},
		})
		require.NoError(t, err)
		require.Less(t, rate, 0.0)

		years := []float64{0, 181.0 / 365, 731.0 / 365}
		require.InDelta(t, 0, npv(rate, years, []float64{-100, -100, 120}), 1e-2)
	})

	t.Run("very large multiple", func(t *testing.T) {
		rate, err := XIRR([]CashFlow{
			{Date: domain.MustDate("2023-01-01"), Amount: -1},
			{Date: domain.MustDate("2024-01-01"), Amount: 1000},
		})
		require.NoError(t, err)
		require.InDelta(t, 999, rate, 999*1e-6)
	})

	t.Run("no sign change", func(t *testing.T) {
		_, err := XIRR([]CashFlow{
			{Date: domain.MustDate("2023-01-01"), Amount: -100},
			{Date: domain.MustDate("2024-01-01"), Amount: -50},
		})
		var nc domain.IrrNotConvergentError
		require.ErrorAs(t, err, &nc)
	})

	t.Run("single flow", func(t *testing.T) {
		_, err := XIRR([]CashFlow{{Date: domain.MustDate("2023-01-01"), Amount: -100}})
		var nc domain.IrrNotConvergentError
		require.ErrorAs(t, err, &nc)
	})
}

func TestBisect(t *testing.T) {
	rate, err := bisect([]float64{0, 1}, []float64{-100, 150})
	require.NoError(t, err)
	require.InDelta(t, 0.5, rate, 1e-5)

	rate, err = bisect([]float64{0, 2}, []float64{-100, 100})
	require.NoError(t, err)
	require.True(t, math.Abs(rate) < 1e-5)
}

package calculator

import (
	"testing"

	"fundtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testAllocation(paid, marketValue string) domain.Allocation {
	committed := domain.MustMoney("1000")
	return domain.Allocation{
		AllocationID:      uuid.New(),
		FundID:            uuid.New(),
		DealID:            uuid.New(),
		SecurityType:      domain.SecurityTypeEquity,
		CommittedAmount:   committed,
		PaidAmount:        domain.MustMoney(paid),
		OutstandingAmount: committed.Sub(domain.MustMoney(paid)),
		MarketValue:       domain.MustMoney(marketValue),
		Moic:              decimal.NewFromInt(1),
		Irr:               decimal.Zero,
		Status:            domain.AllocationStatusFunded,
	}
}

func testPayment(a domain.Allocation, amount, on string) domain.Payment {
	return domain.Payment{
		PaymentID:     uuid.New(),
		AllocationID:  a.AllocationID,
		CapitalCallID: uuid.New(),
		Amount:        domain.MustMoney(amount),
		AppliedAmount: domain.MustMoney(amount),
		PaymentDate:   domain.MustDate(on),
	}
}

func TestMoic(t *testing.T) {
	t.Run("nothing paid is exactly one", func(t *testing.T) {
		require.True(t, Moic(domain.ZeroMoney, domain.ZeroMoney, domain.ZeroMoney).Equal(decimal.NewFromInt(1)))
		require.True(t, Moic(domain.ZeroMoney, domain.MustMoney("500"), domain.MustMoney("900")).Equal(decimal.NewFromInt(1)))
	})

	t.Run("distributions plus market value over paid", func(t *testing.T) {
		require.Equal(t, "1.5", Moic(domain.MustMoney("100"), domain.MustMoney("50"), domain.MustMoney("100")).String())
		require.Equal(t, "0.3333", Moic(domain.MustMoney("3"), domain.MustMoney("1"), domain.ZeroMoney).String())
	})
}

func TestComputeMetrics(t *testing.T) {
	t.Run("paid in and marked up", func(t *testing.T) {
		a := testAllocation("100", "150")
		payments := []domain.Payment{testPayment(a, "100", "2023-01-01")}

		m := ComputeMetrics(a, payments, nil, domain.MustDate("2024-01-01"))

		require.True(t, m.IrrConverged)
		require.Empty(t, m.Warnings)
		require.Equal(t, "1.5", m.Moic.String())
		require.Equal(t, "0.5", m.Irr.String())
		require.Equal(t, "50.00", m.TotalReturn.String())
		require.Equal(t, "0.00", m.RealizedReturn.String())
		require.Equal(t, "150.00", m.UnrealizedReturn.String())
	})

	t.Run("distributions are realized", func(t *testing.T) {
		a := testAllocation("100", "0")
		payments := []domain.Payment{testPayment(a, "100", "2023-01-01")}
		distributions := []domain.Distribution{{
			DistributionID:   uuid.New(),
			AllocationID:     a.AllocationID,
			Amount:           domain.MustMoney("110"),
			DistributionDate: domain.MustDate("2024-01-01"),
			Type:             domain.DistributionTypeLiquidation,
		}}

		m := ComputeMetrics(a, payments, distributions, domain.MustDate("2024-06-01"))

		require.True(t, m.IrrConverged)
		require.Equal(t, "1.1", m.Moic.String())
		require.Equal(t, "0.1", m.Irr.String())
		require.Equal(t, "110.00", m.TotalDistributed.String())
		require.Equal(t, "10.00", m.TotalReturn.String())
	})

	t.Run("nothing paid keeps defaults", func(t *testing.T) {
		a := testAllocation("0", "0")

		m := ComputeMetrics(a, nil, nil, domain.MustDate("2024-01-01"))

		require.True(t, m.IrrConverged)
		require.True(t, m.Moic.Equal(decimal.NewFromInt(1)))
		require.True(t, m.Irr.IsZero())
	})

	t.Run("unsolvable irr keeps the last value", func(t *testing.T) {
		a := testAllocation("100", "0")
		a.Irr = decimal.RequireFromString("0.123456")
		payments := []domain.Payment{testPayment(a, "100", "2023-01-01")}

		m := ComputeMetrics(a, payments, nil, domain.MustDate("2024-01-01"))

		require.False(t, m.IrrConverged)
		require.Len(t, m.Warnings, 1)
		require.Equal(t, "0.123456", m.Irr.String())
		require.Equal(t, "0", m.Moic.String())
	})
}

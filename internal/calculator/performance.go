package calculator

import (
	"errors"

	"fundtrack/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	MoicPrecision int32 = 4
	IrrPrecision  int32 = 6
)

var one = decimal.NewFromInt(1)

// Moic is (distributions + market value) / paid in. It is exactly 1 when
// nothing has been paid yet.
func Moic(paid, distributed, marketValue domain.Money) decimal.Decimal {
	if !paid.IsPositive() {
		return one
	}
	return distributed.Add(marketValue).Ratio(paid, MoicPrecision)
}

// ComputeMetrics derives the allocation's return figures as of asOf. An IRR
// that cannot be solved keeps the allocation's previous value and is reported
// through IrrConverged and Warnings rather than an error.
func ComputeMetrics(
	a domain.Allocation,
	payments []domain.Payment,
	distributions []domain.Distribution,
	asOf domain.Date,
) domain.PerformanceMetrics {
	distributed := domain.ZeroMoney
	for _, d := range distributions {
		distributed = distributed.Add(d.Amount)
	}

	out := domain.PerformanceMetrics{
		AllocationID:     a.AllocationID,
		AsOf:             asOf,
		PaidAmount:       a.PaidAmount,
		TotalDistributed: distributed,
		MarketValue:      a.MarketValue,
		Moic:             Moic(a.PaidAmount, distributed, a.MarketValue),
		Irr:              a.Irr,
		IrrConverged:     true,
		RealizedReturn:   distributed,
		UnrealizedReturn: a.MarketValue,
		TotalReturn:      distributed.Add(a.MarketValue).Sub(a.PaidAmount),
		Warnings:         []string{},
	}

	if !a.PaidAmount.IsPositive() {
		return out
	}

	flows, err := cashFlowsFor(payments, distributions, a.MarketValue, asOf)
	if err == nil {
		var rate float64
		rate, err = XIRR(flows)
		if err == nil {
			out.Irr = decimal.NewFromFloat(rate).Round(IrrPrecision)
			return out
		}
	}

	out.IrrConverged = false
	var nc domain.IrrNotConvergentError
	if errors.As(err, &nc) {
		out.Warnings = append(out.Warnings, "irr not convergent: "+nc.Error())
	} else {
		out.Warnings = append(out.Warnings, "irr not computed: "+err.Error())
	}
	return out
}

package calculator

import (
	"sort"

	"fundtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const WeightPrecision int32 = 8

const unknownBucket = "unknown"

// WeightBasis is the value an allocation contributes to its fund: market value
// when marked, otherwise capital paid in.
func WeightBasis(a domain.Allocation) domain.Money {
	if !a.MarketValue.IsZero() {
		return a.MarketValue
	}
	return a.PaidAmount
}

func countsTowardPortfolio(a domain.Allocation) bool {
	return a.Status != domain.AllocationStatusWrittenOff
}

// RecalculateWeights returns each allocation's share of the fund's total
// basis. Written-off allocations get 0 and are left out of the total. The
// result only depends on the input set, so re-running it is a no-op.
func RecalculateWeights(allocations []domain.Allocation) map[uuid.UUID]decimal.Decimal {
	total := domain.ZeroMoney
	for _, a := range allocations {
		if countsTowardPortfolio(a) {
			total = total.Add(WeightBasis(a))
		}
	}

	weights := map[uuid.UUID]decimal.Decimal{}
	for _, a := range allocations {
		if !countsTowardPortfolio(a) || !total.IsPositive() {
			weights[a.AllocationID] = decimal.Zero
			continue
		}
		weights[a.AllocationID] = WeightBasis(a).Ratio(total, WeightPrecision)
	}
	return weights
}

// Diversification buckets the fund's allocations by sector, security type and
// company stage and computes the Herfindahl concentration of their weights.
func Diversification(fundID uuid.UUID, allocations []domain.Allocation, deals map[uuid.UUID]domain.Deal) domain.DiversificationMetrics {
	out := domain.DiversificationMetrics{
		FundID:            fundID,
		TotalValue:        domain.ZeroMoney,
		BySector:          []domain.BucketWeight{},
		BySecurityType:    []domain.BucketWeight{},
		ByStage:           []domain.BucketWeight{},
		ConcentrationRisk: decimal.Zero,
		LargestWeight:     decimal.Zero,
	}

	counted := []domain.Allocation{}
	for _, a := range allocations {
		if countsTowardPortfolio(a) {
			counted = append(counted, a)
			out.TotalValue = out.TotalValue.Add(WeightBasis(a))
		}
	}
	out.AllocationCount = len(counted)

	weights := RecalculateWeights(counted)

	bySector := map[string]domain.Money{}
	bySecurityType := map[string]domain.Money{}
	byStage := map[string]domain.Money{}
	moics := []float64{}
	for _, a := range counted {
		basis := WeightBasis(a)
		deal, ok := deals[a.DealID]
		sector, stage := unknownBucket, unknownBucket
		if ok && deal.Sector != "" {
			sector = deal.Sector
		}
		if ok && deal.Stage != "" {
			stage = deal.Stage
		}
		securityType := string(a.SecurityType)
		if securityType == "" {
			securityType = unknownBucket
		}
		bySector[sector] = bySector[sector].Add(basis)
		bySecurityType[securityType] = bySecurityType[securityType].Add(basis)
		byStage[stage] = byStage[stage].Add(basis)

		w := weights[a.AllocationID]
		out.ConcentrationRisk = out.ConcentrationRisk.Add(w.Mul(w))
		if w.GreaterThan(out.LargestWeight) {
			out.LargestWeight = w
		}
		if a.PaidAmount.IsPositive() {
			moics = append(moics, a.Moic.InexactFloat64())
		}
	}
	out.ConcentrationRisk = out.ConcentrationRisk.Round(WeightPrecision)

	out.BySector = buckets(bySector, out.TotalValue)
	out.BySecurityType = buckets(bySecurityType, out.TotalValue)
	out.ByStage = buckets(byStage, out.TotalValue)
	out.Moic = moicSummary(moics)

	return out
}

func buckets(values map[string]domain.Money, total domain.Money) []domain.BucketWeight {
	out := []domain.BucketWeight{}
	for key, value := range values {
		weight := decimal.Zero
		if total.IsPositive() {
			weight = value.Ratio(total, WeightPrecision)
		}
		out = append(out, domain.BucketWeight{Key: key, Value: value, Weight: weight})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Weight.Equal(out[j].Weight) {
			return out[i].Weight.GreaterThan(out[j].Weight)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func moicSummary(moics []float64) domain.MoicSummary {
	if len(moics) == 0 {
		return domain.MoicSummary{}
	}
	// errors only occur on empty input, which is handled above
	mean, _ := stats.Mean(moics)
	median, _ := stats.Median(moics)
	stdev, _ := stats.StandardDeviation(moics)
	return domain.MoicSummary{
		Mean:   mean,
		Median: median,
		Stdev:  stdev,
	}
}

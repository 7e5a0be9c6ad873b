package calculator

import (
	"fmt"
	"math"
	"sort"

	"fundtrack/internal/domain"
)

// solver constants. tolerance is relative to max(1, |rate|).
const (
	IrrTolerance              = 1e-6
	IrrMaxNewtonIterations    = 100
	IrrMaxBisectionIterations = 200

	irrInitialGuess = 0.1
	irrLowerBound   = -0.999999
	irrUpperLimit   = 1e6
	daysPerYear     = 365.0
)

// CashFlow is a signed dated amount: negative for money paid in, positive for
// money returned.
type CashFlow struct {
	Date   domain.Date
	Amount float64
}

// XIRR returns the annualized rate r solving sum(cf / (1+r)^(days/365)) = 0.
// Newton-Raphson runs first; if it diverges or leaves the domain r > -1 the
// root is bracketed and bisected.
func XIRR(flows []CashFlow) (float64, error) {
	if len(flows) < 2 {
		return 0, domain.IrrNotConvergentError{}
	}
	sorted := make([]CashFlow, len(flows))
	copy(sorted, flows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	hasIn, hasOut := false, false
	years := make([]float64, len(sorted))
	amounts := make([]float64, len(sorted))
	for i, f := range sorted {
		years[i] = float64(f.Date.DaysSince(sorted[0].Date)) / daysPerYear
		amounts[i] = f.Amount
		if f.Amount < 0 {
			hasOut = true
		} else if f.Amount > 0 {
			hasIn = true
		}
	}
	if !hasIn || !hasOut {
		// no sign change, no root
		return 0, domain.IrrNotConvergentError{}
	}

	if r, ok := newton(years, amounts); ok {
		return r, nil
	}
	return bisect(years, amounts)
}

func npv(rate float64, years, amounts []float64) float64 {
	total := 0.0
	for i := range amounts {
		total += amounts[i] / math.Pow(1+rate, years[i])
	}
	return total
}

func npvDerivative(rate float64, years, amounts []float64) float64 {
	total := 0.0
	for i := range amounts {
		total -= years[i] * amounts[i] / math.Pow(1+rate, years[i]+1)
	}
	return total
}

func withinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= IrrTolerance*math.Max(1, math.Abs(b))
}

func newton(years, amounts []float64) (float64, bool) {
	rate := irrInitialGuess
	for i := 0; i < IrrMaxNewtonIterations; i++ {
		f := npv(rate, years, amounts)
		df := npvDerivative(rate, years, amounts)
		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			return 0, false
		}
		next := rate - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			return 0, false
		}
		if withinTolerance(rate, next) {
			return next, true
		}
		rate = next
	}
	return 0, false
}

func bisect(years, amounts []float64) (float64, error) {
	lo, hi := irrLowerBound, 1.0
	fLo := npv(lo, years, amounts)
	fHi := npv(hi, years, amounts)
	for sameSign(fLo, fHi) {
		if hi >= irrUpperLimit {
			return 0, domain.IrrNotConvergentError{Iterations: IrrMaxNewtonIterations, LastGuess: hi}
		}
		hi = math.Min(hi*10, irrUpperLimit)
		fHi = npv(hi, years, amounts)
	}

	mid := lo
	for i := 0; i < IrrMaxBisectionIterations; i++ {
		mid = lo + (hi-lo)/2
		fMid := npv(mid, years, amounts)
		if fMid == 0 || withinTolerance(lo, hi) {
			return mid, nil
		}
		if sameSign(fLo, fMid) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, domain.IrrNotConvergentError{
		Iterations: IrrMaxNewtonIterations + IrrMaxBisectionIterations,
		LastGuess:  mid,
	}
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

// cashFlowsFor builds the signed cash flow series of an allocation: payments
// out, distributions in and the current market value as a terminal inflow.
func cashFlowsFor(payments []domain.Payment, distributions []domain.Distribution, marketValue domain.Money, asOf domain.Date) ([]CashFlow, error) {
	flows := []CashFlow{}
	for _, p := range payments {
		if p.Amount.IsZero() {
			continue
		}
		flows = append(flows, CashFlow{Date: p.PaymentDate, Amount: -p.Amount.Float64()})
	}
	for _, d := range distributions {
		flows = append(flows, CashFlow{Date: d.DistributionDate, Amount: d.Amount.Float64()})
	}
	if marketValue.IsPositive() {
		if asOf.IsZero() {
			return nil, fmt.Errorf("evaluation date is required to value the terminal cash flow")
		}
		flows = append(flows, CashFlow{Date: asOf, Amount: marketValue.Float64()})
	}
	return flows, nil
}

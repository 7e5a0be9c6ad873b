package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ScheduleType string

const (
	ScheduleTypeSingle    ScheduleType = "single"
	ScheduleTypeQuarterly ScheduleType = "quarterly"
	ScheduleTypeMonthly   ScheduleType = "monthly"
	ScheduleTypeBiannual  ScheduleType = "biannual"
	ScheduleTypeAnnual    ScheduleType = "annual"
	ScheduleTypeCustom    ScheduleType = "custom"
)

func (t ScheduleType) String() string { return string(t) }

// cadenceMonths is the spacing between calls of a periodic schedule.
var cadenceMonths = map[ScheduleType]int{
	ScheduleTypeMonthly:   1,
	ScheduleTypeQuarterly: 3,
	ScheduleTypeBiannual:  6,
	ScheduleTypeAnnual:    12,
}

func (t ScheduleType) IsPeriodic() bool {
	_, ok := cadenceMonths[t]
	return ok
}

// MaxScheduledCalls bounds the size of one generated schedule.
const MaxScheduledCalls = 600

var hundred = decimal.NewFromInt(100)

type ScheduleConfig struct {
	GracePeriodDays       int
	DefaultCallPercentage decimal.Decimal
}

func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		GracePeriodDays:       30,
		DefaultCallPercentage: decimal.NewFromInt(25),
	}
}

type CustomCall struct {
	CallDate Date  `json:"callDate"`
	Amount   Money `json:"amount"`
}

type ScheduleSpec struct {
	Type          ScheduleType
	FirstCallDate Date
	CallCount     *int
	// CallPercentage is the share of the committed amount requested per call,
	// in percent (25 means 25%).
	CallPercentage  *decimal.Decimal
	GracePeriodDays *int
	CustomCalls     []CustomCall
}

// SchedulePlan is the full outcome of a schedule request. Nothing is applied
// until the caller persists every part of it.
type SchedulePlan struct {
	Kept       []CapitalCall
	Superseded []CapitalCall
	NewCalls   []CapitalCall
	Target     Money
}

// GenerateSchedule produces the initial call set for an allocation with no calls.
func GenerateSchedule(a Allocation, spec ScheduleSpec, cfg ScheduleConfig, now time.Time) ([]CapitalCall, error) {
	plan, err := Reschedule(a, nil, spec, cfg, now)
	if err != nil {
		return nil, err
	}
	return plan.NewCalls, nil
}

// Reschedule replaces the allocation's still-scheduled calls. Calls that are
// called, partial, paid or defaulted are kept as is, and the new calls must
// cover exactly what they leave unscheduled.
func Reschedule(a Allocation, existing []CapitalCall, spec ScheduleSpec, cfg ScheduleConfig, now time.Time) (SchedulePlan, error) {
	invalid := func(format string, args ...any) error {
		return InvalidScheduleError{AllocationID: a.AllocationID, Reason: fmt.Sprintf(format, args...)}
	}

	switch a.Status {
	case AllocationStatusCommitted, AllocationStatusInvested, AllocationStatusPartiallyPaid:
	default:
		return SchedulePlan{}, invalid("allocation in status %s cannot be scheduled", a.Status)
	}
	if !a.CommittedAmount.IsPositive() {
		return SchedulePlan{}, invalid("committed amount must be positive")
	}

	plan := SchedulePlan{}
	immutableTotal := ZeroMoney
	lastSequence := 0
	for _, c := range ActiveCalls(existing) {
		if c.IsImmutable() {
			plan.Kept = append(plan.Kept, c)
			immutableTotal = immutableTotal.Add(c.CallAmount)
			if c.Sequence > lastSequence {
				lastSequence = c.Sequence
			}
			continue
		}
		superseded := c
		at := now
		superseded.SupersededAt = &at
		superseded.UpdatedAt = now
		plan.Superseded = append(plan.Superseded, superseded)
	}

	plan.Target = a.CommittedAmount.Sub(immutableTotal)
	if !plan.Target.IsPositive() {
		return SchedulePlan{}, invalid("nothing left to schedule: %s of %s already called", immutableTotal, a.CommittedAmount)
	}

	grace := cfg.GracePeriodDays
	if spec.GracePeriodDays != nil {
		grace = *spec.GracePeriodDays
	}
	if grace < 0 {
		return SchedulePlan{}, invalid("grace period must be >= 0 days, got %d", grace)
	}

	type slot struct {
		date   Date
		amount Money
	}
	slots := []slot{}

	switch {
	case spec.Type == ScheduleTypeSingle:
		if spec.FirstCallDate.IsZero() {
			return SchedulePlan{}, invalid("firstCallDate is required")
		}
		slots = append(slots, slot{date: spec.FirstCallDate, amount: plan.Target})

	case spec.Type.IsPeriodic():
		if spec.FirstCallDate.IsZero() {
			return SchedulePlan{}, invalid("firstCallDate is required")
		}
		amounts, err := periodicAmounts(a, plan.Target, spec, cfg)
		if err != nil {
			return SchedulePlan{}, err
		}
		cadence := cadenceMonths[spec.Type]
		for i, amount := range amounts {
			slots = append(slots, slot{date: spec.FirstCallDate.AddMonths(i * cadence), amount: amount})
		}

	case spec.Type == ScheduleTypeCustom:
		if len(spec.CustomCalls) == 0 {
			return SchedulePlan{}, invalid("custom schedule needs at least one call")
		}
		if len(spec.CustomCalls) > MaxScheduledCalls {
			return SchedulePlan{}, invalid("custom schedule has %d calls, max is %d", len(spec.CustomCalls), MaxScheduledCalls)
		}
		total := ZeroMoney
		for i, c := range spec.CustomCalls {
			if c.CallDate.IsZero() {
				return SchedulePlan{}, invalid("custom call %d has no date", i)
			}
			if !c.Amount.IsPositive() {
				return SchedulePlan{}, invalid("custom call %d amount must be positive, got %s", i, c.Amount)
			}
			total = total.Add(c.Amount)
			slots = append(slots, slot{date: c.CallDate, amount: c.Amount})
		}
		if !total.Equal(plan.Target) {
			return SchedulePlan{}, ScheduleAmountMismatchError{
				AllocationID: a.AllocationID,
				Expected:     plan.Target,
				Got:          total,
			}
		}
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].date.Before(slots[j].date)
		})

	default:
		return SchedulePlan{}, invalid("unknown schedule type %q", spec.Type)
	}

	for i, s := range slots {
		plan.NewCalls = append(plan.NewCalls, CapitalCall{
			CapitalCallID: uuid.New(),
			AllocationID:  a.AllocationID,
			Sequence:      lastSequence + i + 1,
			CallAmount:    s.amount,
			AmountPaid:    ZeroMoney,
			CallDate:      s.date,
			DueDate:       s.date.AddDays(grace),
			Status:        CapitalCallStatusScheduled,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	return plan, nil
}

// periodicAmounts splits target into per-period call amounts that sum to it exactly.
func periodicAmounts(a Allocation, target Money, spec ScheduleSpec, cfg ScheduleConfig) ([]Money, error) {
	invalid := func(format string, args ...any) error {
		return InvalidScheduleError{AllocationID: a.AllocationID, Reason: fmt.Sprintf(format, args...)}
	}

	var amounts []Money
	if spec.CallCount != nil && spec.CallPercentage == nil {
		n := *spec.CallCount
		if n < 1 || n > MaxScheduledCalls {
			return nil, invalid("callCount must be between 1 and %d, got %d", MaxScheduledCalls, n)
		}
		amounts = target.Split(n)
	} else {
		pct := cfg.DefaultCallPercentage
		if spec.CallPercentage != nil {
			pct = *spec.CallPercentage
		}
		if !pct.IsPositive() || pct.GreaterThan(hundred) {
			return nil, invalid("callPercentage must be in (0, 100], got %s", pct)
		}
		perCall := a.CommittedAmount.Mul(pct.Div(hundred))
		if !perCall.IsPositive() {
			return nil, invalid("call amount rounds to zero at %s%%", pct)
		}
		n := int(target.Decimal().Div(perCall.Decimal()).Ceil().IntPart())
		if n > MaxScheduledCalls {
			return nil, invalid("callPercentage %s%% yields %d calls, max is %d", pct, n, MaxScheduledCalls)
		}
		if spec.CallCount != nil && *spec.CallCount != n {
			return nil, invalid("callCount %d disagrees with callPercentage %s%% (%d calls)", *spec.CallCount, pct, n)
		}
		remaining := target
		for i := 0; i < n-1; i++ {
			amounts = append(amounts, perCall)
			remaining = remaining.Sub(perCall)
		}
		amounts = append(amounts, remaining)
	}

	for i, amount := range amounts {
		if !amount.IsPositive() {
			return nil, invalid("call %d amount rounds to zero", i+1)
		}
	}
	return amounts, nil
}

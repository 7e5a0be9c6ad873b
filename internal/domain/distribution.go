package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type DistributionType string

const (
	DistributionTypeDividend        DistributionType = "dividend"
	DistributionTypeCapitalGain     DistributionType = "capital_gain"
	DistributionTypeReturnOfCapital DistributionType = "return_of_capital"
	DistributionTypeLiquidation     DistributionType = "liquidation"
	DistributionTypeOther           DistributionType = "other"
)

func (t DistributionType) String() string { return string(t) }

func (t DistributionType) Valid() bool {
	switch t {
	case DistributionTypeDividend, DistributionTypeCapitalGain, DistributionTypeReturnOfCapital,
		DistributionTypeLiquidation, DistributionTypeOther:
		return true
	}
	return false
}

// Distribution is an immutable cash return against an allocation.
type Distribution struct {
	DistributionID   uuid.UUID
	AllocationID     uuid.UUID
	Amount           Money
	DistributionDate Date
	Type             DistributionType
	Description      string
	CreatedAt        time.Time
}

type DistributionInput struct {
	Amount           Money
	DistributionDate Date
	Type             DistributionType
	Description      string
}

// NewDistribution validates the input and builds the distribution record. It
// never touches the allocation's committed or paid amounts.
func NewDistribution(a Allocation, in DistributionInput, now time.Time) (Distribution, error) {
	invalid := func(format string, args ...any) error {
		return InvalidDistributionError{AllocationID: a.AllocationID, Reason: fmt.Sprintf(format, args...)}
	}
	if !in.Amount.IsPositive() {
		return Distribution{}, invalid("amount must be positive, got %s", in.Amount)
	}
	if in.DistributionDate.IsZero() {
		return Distribution{}, invalid("distribution date is required")
	}
	if in.Type == "" {
		in.Type = DistributionTypeOther
	}
	if !in.Type.Valid() {
		return Distribution{}, invalid("unknown distribution type %q", in.Type)
	}
	return Distribution{
		DistributionID:   uuid.New(),
		AllocationID:     a.AllocationID,
		Amount:           in.Amount,
		DistributionDate: in.DistributionDate,
		Type:             in.Type,
		Description:      strings.TrimSpace(in.Description),
		CreatedAt:        now,
	}, nil
}

// OverageDistribution records the excess of a payment routed away from its call.
func OverageDistribution(a Allocation, callID uuid.UUID, overage Money, on Date, now time.Time) (Distribution, error) {
	return NewDistribution(a, DistributionInput{
		Amount:           overage,
		DistributionDate: on,
		Type:             DistributionTypeOther,
		Description:      fmt.Sprintf("payment overage on capital call %s", callID),
	}, now)
}

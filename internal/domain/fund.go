package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Fund struct {
	FundID            uuid.UUID
	Name              string
	Currency          string
	NotificationEmail *string
	CreatedAt         time.Time
}

// Deal is the investment an allocation goes into. Sector and Stage feed the
// fund's diversification buckets.
type Deal struct {
	DealID    uuid.UUID
	FundID    uuid.UUID
	Name      string
	Sector    string
	Stage     string
	CreatedAt time.Time
}

// AllocationUpdated is published after a mutation commits. Consumers must be
// idempotent: the same event may be delivered more than once.
type AllocationUpdated struct {
	AllocationID uuid.UUID
	FundID       uuid.UUID
	Reason       string
	OccurredAt   time.Time
}

// PerformanceMetrics are the return figures derived for one allocation.
type PerformanceMetrics struct {
	AllocationID     uuid.UUID
	AsOf             Date
	PaidAmount       Money
	TotalDistributed Money
	MarketValue      Money
	Moic             decimal.Decimal
	Irr              decimal.Decimal
	IrrConverged     bool
	TotalReturn      Money
	RealizedReturn   Money
	UnrealizedReturn Money
	Warnings         []string
}

type BucketWeight struct {
	Key    string
	Value  Money
	Weight decimal.Decimal
}

type MoicSummary struct {
	Mean   float64
	Median float64
	Stdev  float64
}

type DiversificationMetrics struct {
	FundID            uuid.UUID
	AllocationCount   int
	TotalValue        Money
	BySector          []BucketWeight
	BySecurityType    []BucketWeight
	ByStage           []BucketWeight
	ConcentrationRisk decimal.Decimal
	LargestWeight     decimal.Decimal
	Moic              MoicSummary
}

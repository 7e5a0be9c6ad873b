package domain

import (
	"time"

	"github.com/google/uuid"
)

type CapitalCallStatus string

const (
	CapitalCallStatusScheduled CapitalCallStatus = "scheduled"
	CapitalCallStatusCalled    CapitalCallStatus = "called"
	CapitalCallStatusPartial   CapitalCallStatus = "partial"
	CapitalCallStatusPaid      CapitalCallStatus = "paid"
	CapitalCallStatusDefaulted CapitalCallStatus = "defaulted"
)

func (s CapitalCallStatus) String() string { return string(s) }

// CapitalCall is one scheduled cash request against an allocation.
type CapitalCall struct {
	CapitalCallID uuid.UUID
	AllocationID  uuid.UUID
	Sequence      int
	CallAmount    Money
	AmountPaid    Money
	CallDate      Date
	DueDate       Date
	Status        CapitalCallStatus
	// SupersededAt is set when a reschedule replaced this call. Superseded
	// calls are kept for audit but are no longer part of the schedule.
	SupersededAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c CapitalCall) IsActive() bool { return c.SupersededAt == nil }

func (c CapitalCall) Remaining() Money { return c.CallAmount.Sub(c.AmountPaid) }

func (c CapitalCall) IsPaid() bool { return c.Status == CapitalCallStatusPaid }

// IsImmutable reports whether a reschedule must keep this call as is.
func (c CapitalCall) IsImmutable() bool { return c.Status != CapitalCallStatusScheduled }

// ActiveCalls filters out superseded calls, keeping order.
func ActiveCalls(calls []CapitalCall) []CapitalCall {
	out := []CapitalCall{}
	for _, c := range calls {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// CallStatusForAmount derives the status implied by the amount paid so far.
// A call with nothing paid keeps its current scheduled/called status.
func CallStatusForAmount(c CapitalCall) CapitalCallStatus {
	switch {
	case c.AmountPaid.IsZero():
		return c.Status
	case c.AmountPaid.LessThan(c.CallAmount):
		return CapitalCallStatusPartial
	default:
		return CapitalCallStatusPaid
	}
}

// Payment is one cash receipt against a capital call. PaymentID is the
// caller's idempotency key. Amount is what was received; AppliedAmount is the
// part credited to the call (they differ only when an overage was routed to a
// distribution).
type Payment struct {
	PaymentID             uuid.UUID
	CapitalCallID         uuid.UUID
	AllocationID          uuid.UUID
	Amount                Money
	AppliedAmount         Money
	PaymentDate           Date
	OverageDistributionID *uuid.UUID
	ActorID               uuid.UUID
	CreatedAt             time.Time
}

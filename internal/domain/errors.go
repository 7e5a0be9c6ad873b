package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrCallNotFound       = errors.New("capital call not found")
	ErrFundNotFound       = errors.New("fund not found")
	ErrDealNotFound       = errors.New("deal not found")
)

// NotFoundError is a referential integrity failure. errors.Is matches it
// against the entity's sentinel (ErrAllocationNotFound etc).
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
	base   error
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e NotFoundError) Unwrap() error { return e.base }

func NewAllocationNotFound(id uuid.UUID) error {
	return NotFoundError{Entity: "allocation", ID: id, base: ErrAllocationNotFound}
}

func NewCallNotFound(id uuid.UUID) error {
	return NotFoundError{Entity: "capital call", ID: id, base: ErrCallNotFound}
}

func NewFundNotFound(id uuid.UUID) error {
	return NotFoundError{Entity: "fund", ID: id, base: ErrFundNotFound}
}

func NewDealNotFound(id uuid.UUID) error {
	return NotFoundError{Entity: "deal", ID: id, base: ErrDealNotFound}
}

// InvalidTransitionError is returned for any lifecycle move not in the
// transition table. The allocation it refers to was not modified.
type InvalidTransitionError struct {
	AllocationID uuid.UUID
	From         AllocationStatus
	Event        AllocationEvent
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: allocation %s in status %s cannot accept event %s", e.AllocationID, e.From, e.Event)
}

// InvalidScheduleError rejects a schedule request before any call is produced.
type InvalidScheduleError struct {
	AllocationID uuid.UUID
	Reason       string
}

func (e InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule for allocation %s: %s", e.AllocationID, e.Reason)
}

// ScheduleAmountMismatchError means explicit call amounts do not sum to the
// amount that is left to schedule.
type ScheduleAmountMismatchError struct {
	AllocationID uuid.UUID
	Expected     Money
	Got          Money
}

func (e ScheduleAmountMismatchError) Error() string {
	return fmt.Sprintf("schedule amount mismatch for allocation %s: calls sum to %s, expected %s", e.AllocationID, e.Got, e.Expected)
}

// OverpaymentError means the payment exceeds the call's remaining balance.
type OverpaymentError struct {
	CallID    uuid.UUID
	Attempted Money
	Remaining Money
}

func (e OverpaymentError) Error() string {
	return fmt.Sprintf("overpayment on capital call %s: attempted %s, remaining balance %s", e.CallID, e.Attempted, e.Remaining)
}

type InvalidPaymentError struct {
	CallID uuid.UUID
	Reason string
}

func (e InvalidPaymentError) Error() string {
	return fmt.Sprintf("invalid payment on capital call %s: %s", e.CallID, e.Reason)
}

type InvalidDistributionError struct {
	AllocationID uuid.UUID
	Reason       string
}

func (e InvalidDistributionError) Error() string {
	return fmt.Sprintf("invalid distribution for allocation %s: %s", e.AllocationID, e.Reason)
}

type InvalidAllocationError struct {
	Reason string
}

func (e InvalidAllocationError) Error() string {
	return fmt.Sprintf("invalid allocation: %s", e.Reason)
}

// IrrNotConvergentError is non-fatal: callers keep the previous IRR and flag
// the allocation for review.
type IrrNotConvergentError struct {
	Iterations int
	LastGuess  float64
}

func (e IrrNotConvergentError) Error() string {
	return fmt.Sprintf("irr did not converge after %d iterations (last guess %g)", e.Iterations, e.LastGuess)
}

type ForbiddenError struct {
	ActorID uuid.UUID
	Action  string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("actor %s is not allowed to %s", e.ActorID, e.Action)
}

// TransientError wraps timeouts and persistence conflicts that survived the
// retry budget. The caller may retry the whole operation.
type TransientError struct {
	Op  string
	Err error
}

func (e TransientError) Error() string {
	return fmt.Sprintf("transient failure in %s: %v", e.Op, e.Err)
}

func (e TransientError) Unwrap() error { return e.Err }

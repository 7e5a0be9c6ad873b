package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationStatus string

const (
	AllocationStatusCommitted       AllocationStatus = "committed"
	AllocationStatusInvested        AllocationStatus = "invested"
	AllocationStatusFunded          AllocationStatus = "funded"
	AllocationStatusPartiallyPaid   AllocationStatus = "partially_paid"
	AllocationStatusPartiallyClosed AllocationStatus = "partially_closed"
	AllocationStatusClosed          AllocationStatus = "closed"
	AllocationStatusWrittenOff      AllocationStatus = "written_off"
)

func (s AllocationStatus) String() string { return string(s) }

func (s AllocationStatus) Valid() bool {
	switch s {
	case AllocationStatusCommitted, AllocationStatusInvested, AllocationStatusFunded,
		AllocationStatusPartiallyPaid, AllocationStatusPartiallyClosed,
		AllocationStatusClosed, AllocationStatusWrittenOff:
		return true
	}
	return false
}

// IsTerminal reports whether no further lifecycle event is accepted.
func (s AllocationStatus) IsTerminal() bool {
	return s == AllocationStatusClosed || s == AllocationStatusWrittenOff
}

type AllocationEvent string

const (
	EventScheduleFunded       AllocationEvent = "scheduleFunded"
	EventAllPaid              AllocationEvent = "allPaid"
	EventFirstPaymentReceived AllocationEvent = "firstPaymentReceived"
	EventAllCallsPaid         AllocationEvent = "allCallsPaid"
	EventPartialExit          AllocationEvent = "partialExit"
	EventFullExit             AllocationEvent = "fullExit"
	EventWriteOff             AllocationEvent = "writeOff"
)

func (e AllocationEvent) String() string { return string(e) }

func ParseAllocationEvent(s string) (AllocationEvent, error) {
	e := AllocationEvent(s)
	switch e {
	case EventScheduleFunded, EventAllPaid, EventFirstPaymentReceived, EventAllCallsPaid,
		EventPartialExit, EventFullExit, EventWriteOff:
		return e, nil
	}
	return "", fmt.Errorf("unknown allocation event %q", s)
}

type SecurityType string

const (
	SecurityTypeEquity          SecurityType = "equity"
	SecurityTypePreferredEquity SecurityType = "preferred_equity"
	SecurityTypeConvertibleNote SecurityType = "convertible_note"
	SecurityTypeSafe            SecurityType = "safe"
	SecurityTypeDebt            SecurityType = "debt"
	SecurityTypeOther           SecurityType = "other"
)

// Allocation is one unit of committed capital into a deal within a fund.
type Allocation struct {
	AllocationID      uuid.UUID
	FundID            uuid.UUID
	DealID            uuid.UUID
	SecurityType      SecurityType
	Currency          string
	CommittedAmount   Money
	PaidAmount        Money
	OutstandingAmount Money
	MarketValue       Money
	// PortfolioWeight, Moic and Irr are fractions (0.25 is 25%).
	PortfolioWeight decimal.Decimal
	Moic            decimal.Decimal
	Irr             decimal.Decimal
	IrrNeedsReview  bool
	ScheduleType    *ScheduleType
	Status          AllocationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewAllocationInput struct {
	FundID          uuid.UUID
	DealID          uuid.UUID
	SecurityType    SecurityType
	Currency        string
	CommittedAmount Money
}

// NewAllocation builds a committed allocation with all derived fields at
// their defaults.
func NewAllocation(in NewAllocationInput, now time.Time) (Allocation, error) {
	if !in.CommittedAmount.IsPositive() {
		return Allocation{}, InvalidAllocationError{Reason: fmt.Sprintf("committed amount must be > 0, got %s", in.CommittedAmount)}
	}
	if in.FundID == uuid.Nil || in.DealID == uuid.Nil {
		return Allocation{}, InvalidAllocationError{Reason: "fund and deal are required"}
	}
	securityType := in.SecurityType
	if securityType == "" {
		securityType = SecurityTypeEquity
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	return Allocation{
		AllocationID:      uuid.New(),
		FundID:            in.FundID,
		DealID:            in.DealID,
		SecurityType:      securityType,
		Currency:          currency,
		CommittedAmount:   in.CommittedAmount,
		PaidAmount:        ZeroMoney,
		OutstandingAmount: in.CommittedAmount,
		MarketValue:       ZeroMoney,
		PortfolioWeight:   decimal.Zero,
		Moic:              decimal.NewFromInt(1),
		Irr:               decimal.Zero,
		Status:            AllocationStatusCommitted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (a Allocation) IsSingleSchedule() bool {
	return a.ScheduleType != nil && *a.ScheduleType == ScheduleTypeSingle
}

// CheckInvariants verifies paid + outstanding == committed (outside
// written_off), paid >= 0 and committed > 0.
func (a Allocation) CheckInvariants() error {
	if !a.CommittedAmount.IsPositive() {
		return fmt.Errorf("allocation %s: committed amount %s must be positive", a.AllocationID, a.CommittedAmount)
	}
	if a.PaidAmount.IsNegative() {
		return fmt.Errorf("allocation %s: paid amount %s is negative", a.AllocationID, a.PaidAmount)
	}
	if a.Status != AllocationStatusWrittenOff && !a.PaidAmount.Add(a.OutstandingAmount).Equal(a.CommittedAmount) {
		return fmt.Errorf(
			"allocation %s: paid %s + outstanding %s != committed %s",
			a.AllocationID, a.PaidAmount, a.OutstandingAmount, a.CommittedAmount,
		)
	}
	return nil
}

// Transition applies event to the allocation and returns the updated copy.
// Illegal moves return InvalidTransitionError and leave the input untouched.
func Transition(a Allocation, event AllocationEvent) (Allocation, error) {
	next, ok := nextStatus(a, event)
	if !ok {
		return a, InvalidTransitionError{
			AllocationID: a.AllocationID,
			From:         a.Status,
			Event:        event,
		}
	}

	out := a
	out.Status = next
	if next == AllocationStatusWrittenOff {
		out.OutstandingAmount = ZeroMoney
	}
	return out, nil
}

// CanTransition reports whether event is legal for the allocation's current status.
func CanTransition(a Allocation, event AllocationEvent) bool {
	_, ok := nextStatus(a, event)
	return ok
}

func nextStatus(a Allocation, event AllocationEvent) (AllocationStatus, bool) {
	if a.Status.IsTerminal() {
		return "", false
	}

	switch event {
	case EventScheduleFunded:
		if a.Status == AllocationStatusCommitted {
			return AllocationStatusInvested, true
		}
	case EventAllPaid:
		if a.Status == AllocationStatusInvested && a.IsSingleSchedule() {
			return AllocationStatusFunded, true
		}
	case EventFirstPaymentReceived:
		if a.Status == AllocationStatusInvested && !a.IsSingleSchedule() {
			return AllocationStatusPartiallyPaid, true
		}
	case EventAllCallsPaid:
		if a.Status == AllocationStatusPartiallyPaid {
			return AllocationStatusFunded, true
		}
	case EventPartialExit:
		if a.Status == AllocationStatusFunded || a.Status == AllocationStatusPartiallyPaid {
			return AllocationStatusPartiallyClosed, true
		}
	case EventFullExit:
		return AllocationStatusClosed, true
	case EventWriteOff:
		return AllocationStatusWrittenOff, true
	}
	return "", false
}

// TransitionRecord is the audit row written for every applied transition.
type TransitionRecord struct {
	AllocationID uuid.UUID
	From         AllocationStatus
	To           AllocationStatus
	Event        AllocationEvent
	ActorID      uuid.UUID
	CreatedAt    time.Time
}

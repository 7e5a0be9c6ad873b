package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentInput struct {
	PaymentID   uuid.UUID
	Amount      Money
	PaymentDate Date
	// AllowOverageAsDistribution routes any amount above the call's remaining
	// balance to a distribution instead of rejecting the payment.
	AllowOverageAsDistribution bool
}

type PaymentResult struct {
	Call       CapitalCall
	Allocation Allocation
	Payment    Payment
	// Overage is the part of the payment that must be recorded as a
	// distribution. Zero unless AllowOverageAsDistribution was set.
	Overage     Money
	Transitions []TransitionRecord
}

// ApplyPayment credits a payment to one of the allocation's calls, recomputes
// the allocation's paid and outstanding amounts from the full call set and
// advances the lifecycle accordingly. On error nothing in the inputs changes.
func ApplyPayment(a Allocation, calls []CapitalCall, callID uuid.UUID, in PaymentInput, now time.Time) (PaymentResult, error) {
	active := ActiveCalls(calls)
	idx := -1
	for i, c := range active {
		if c.CapitalCallID == callID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return PaymentResult{}, NewCallNotFound(callID)
	}
	call := active[idx]

	if in.Amount.IsNegative() {
		return PaymentResult{}, InvalidPaymentError{CallID: callID, Reason: "amount must not be negative"}
	}
	if in.PaymentDate.IsZero() {
		return PaymentResult{}, InvalidPaymentError{CallID: callID, Reason: "payment date is required"}
	}
	if call.Status == CapitalCallStatusDefaulted {
		return PaymentResult{}, InvalidPaymentError{CallID: callID, Reason: "call is defaulted"}
	}
	if a.Status.IsTerminal() || a.Status == AllocationStatusCommitted {
		return PaymentResult{}, InvalidPaymentError{CallID: callID, Reason: "allocation in status " + a.Status.String() + " does not accept payments"}
	}

	applied := in.Amount
	overage := ZeroMoney
	if remaining := call.Remaining(); in.Amount.GreaterThan(remaining) {
		if !in.AllowOverageAsDistribution {
			return PaymentResult{}, OverpaymentError{
				CallID:    callID,
				Attempted: in.Amount,
				Remaining: remaining,
			}
		}
		applied = remaining
		overage = in.Amount.Sub(remaining)
	}

	call.AmountPaid = call.AmountPaid.Add(applied)
	call.Status = CallStatusForAmount(call)
	call.UpdatedAt = now

	updated := make([]CapitalCall, len(active))
	copy(updated, active)
	updated[idx] = call

	alloc := a
	alloc.PaidAmount = ZeroMoney
	for _, c := range updated {
		alloc.PaidAmount = alloc.PaidAmount.Add(c.AmountPaid)
	}
	alloc.OutstandingAmount = alloc.CommittedAmount.Sub(alloc.PaidAmount)
	alloc.UpdatedAt = now

	transitions := []TransitionRecord{}
	for _, event := range paymentEvents(alloc, updated) {
		next, err := Transition(alloc, event)
		if err != nil {
			return PaymentResult{}, err
		}
		transitions = append(transitions, TransitionRecord{
			AllocationID: alloc.AllocationID,
			From:         alloc.Status,
			To:           next.Status,
			Event:        event,
			CreatedAt:    now,
		})
		alloc = next
	}

	if err := alloc.CheckInvariants(); err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{
		Call:       call,
		Allocation: alloc,
		Payment: Payment{
			PaymentID:     in.PaymentID,
			CapitalCallID: call.CapitalCallID,
			AllocationID:  alloc.AllocationID,
			Amount:        in.Amount,
			AppliedAmount: applied,
			PaymentDate:   in.PaymentDate,
			CreatedAt:     now,
		},
		Overage:     overage,
		Transitions: transitions,
	}, nil
}

// paymentEvents picks the lifecycle events implied by the aggregate call state.
func paymentEvents(a Allocation, calls []CapitalCall) []AllocationEvent {
	allPaid := len(calls) > 0
	anyPaid := false
	for _, c := range calls {
		if !c.IsPaid() {
			allPaid = false
		}
		if c.AmountPaid.IsPositive() {
			anyPaid = true
		}
	}

	switch a.Status {
	case AllocationStatusInvested:
		if a.IsSingleSchedule() {
			if allPaid {
				return []AllocationEvent{EventAllPaid}
			}
			return nil
		}
		if !anyPaid {
			return nil
		}
		if allPaid {
			return []AllocationEvent{EventFirstPaymentReceived, EventAllCallsPaid}
		}
		return []AllocationEvent{EventFirstPaymentReceived}
	case AllocationStatusPartiallyPaid:
		if allPaid {
			return []AllocationEvent{EventAllCallsPaid}
		}
	}
	return nil
}

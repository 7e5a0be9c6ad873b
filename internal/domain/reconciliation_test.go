package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fundedQuarterly returns a $1,000,000 allocation with four $250,000 calls,
// already moved to invested.
func fundedQuarterly(t *testing.T) (Allocation, []CapitalCall) {
	a := newTestAllocation(t, "1000000")
	calls, err := GenerateSchedule(a, ScheduleSpec{
		Type:          ScheduleTypeQuarterly,
		FirstCallDate: MustDate("2024-01-15"),
		CallCount:     intPointer(4),
	}, DefaultScheduleConfig(), scheduleNow)
	require.NoError(t, err)

	a, err = Transition(a, EventScheduleFunded)
	require.NoError(t, err)
	quarterly := ScheduleTypeQuarterly
	a.ScheduleType = &quarterly
	return a, calls
}

func payment(amount string, on string) PaymentInput {
	return PaymentInput{
		PaymentID:   uuid.New(),
		Amount:      MustMoney(amount),
		PaymentDate: MustDate(on),
	}
}

func TestApplyPayment(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("quarterly lifecycle", func(t *testing.T) {
		a, calls := fundedQuarterly(t)

		result, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("250000", "2024-01-20"), now)
		require.NoError(t, err)
		require.Equal(t, CapitalCallStatusPaid, result.Call.Status)
		require.Equal(t, AllocationStatusPartiallyPaid, result.Allocation.Status)
		require.True(t, result.Allocation.PaidAmount.Equal(MustMoney("250000")))
		require.True(t, result.Allocation.OutstandingAmount.Equal(MustMoney("750000")))
		require.Len(t, result.Transitions, 1)
		require.Equal(t, EventFirstPaymentReceived, result.Transitions[0].Event)

		a = result.Allocation
		calls[0] = result.Call
		for i := 1; i < 4; i++ {
			result, err = ApplyPayment(a, calls, calls[i].CapitalCallID, payment("250000", "2024-06-01"), now)
			require.NoError(t, err)
			require.NoError(t, result.Allocation.CheckInvariants())
			a = result.Allocation
			calls[i] = result.Call
		}

		require.Equal(t, AllocationStatusFunded, a.Status)
		require.True(t, a.PaidAmount.Equal(a.CommittedAmount))
		require.True(t, a.OutstandingAmount.IsZero())
		require.Equal(t, EventAllCallsPaid, result.Transitions[0].Event)
	})

	t.Run("overpayment leaves everything unmodified", func(t *testing.T) {
		a, calls := fundedQuarterly(t)
		before := make([]CapitalCall, len(calls))
		copy(before, calls)

		_, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("300000", "2024-01-20"), now)

		var over OverpaymentError
		require.ErrorAs(t, err, &over)
		require.Equal(t, calls[0].CapitalCallID, over.CallID)
		require.True(t, over.Attempted.Equal(MustMoney("300000")))
		require.True(t, over.Remaining.Equal(MustMoney("250000")))
		require.Equal(t, AllocationStatusInvested, a.Status)
		require.True(t, a.PaidAmount.IsZero())
		require.Equal(t, "", cmp.Diff(before, calls))
	})

	t.Run("overage routed to distribution", func(t *testing.T) {
		a, calls := fundedQuarterly(t)
		in := payment("300000", "2024-01-20")
		in.AllowOverageAsDistribution = true

		result, err := ApplyPayment(a, calls, calls[0].CapitalCallID, in, now)
		require.NoError(t, err)
		require.True(t, result.Overage.Equal(MustMoney("50000")))
		require.True(t, result.Call.AmountPaid.Equal(MustMoney("250000")))
		require.True(t, result.Payment.Amount.Equal(MustMoney("300000")))
		require.True(t, result.Payment.AppliedAmount.Equal(MustMoney("250000")))
		require.True(t, result.Allocation.PaidAmount.Equal(MustMoney("250000")))
	})

	t.Run("partial payment", func(t *testing.T) {
		a, calls := fundedQuarterly(t)

		result, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("100000", "2024-01-20"), now)
		require.NoError(t, err)
		require.Equal(t, CapitalCallStatusPartial, result.Call.Status)
		require.Equal(t, AllocationStatusPartiallyPaid, result.Allocation.Status)
		require.True(t, result.Allocation.OutstandingAmount.Equal(MustMoney("900000")))
	})

	t.Run("zero payment keeps status", func(t *testing.T) {
		a, calls := fundedQuarterly(t)

		result, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("0", "2024-01-20"), now)
		require.NoError(t, err)
		require.Equal(t, CapitalCallStatusScheduled, result.Call.Status)
		require.Equal(t, AllocationStatusInvested, result.Allocation.Status)
		require.Empty(t, result.Transitions)
	})

	t.Run("single schedule goes straight to funded", func(t *testing.T) {
		a := newTestAllocation(t, "500000")
		calls, err := GenerateSchedule(a, ScheduleSpec{Type: ScheduleTypeSingle, FirstCallDate: MustDate("2024-01-15")}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		a = withStatus(a, AllocationStatusInvested, ScheduleTypeSingle)

		partial, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("200000", "2024-01-20"), now)
		require.NoError(t, err)
		require.Equal(t, AllocationStatusInvested, partial.Allocation.Status)

		calls[0] = partial.Call
		result, err := ApplyPayment(partial.Allocation, calls, calls[0].CapitalCallID, payment("300000", "2024-01-25"), now)
		require.NoError(t, err)
		require.Equal(t, AllocationStatusFunded, result.Allocation.Status)
		require.Equal(t, EventAllPaid, result.Transitions[0].Event)
	})

	t.Run("unknown call", func(t *testing.T) {
		a, calls := fundedQuarterly(t)

		_, err := ApplyPayment(a, calls, uuid.New(), payment("1", "2024-01-20"), now)
		require.ErrorIs(t, err, ErrCallNotFound)
	})

	t.Run("superseded call is not payable", func(t *testing.T) {
		a, calls := fundedQuarterly(t)
		calls[0].SupersededAt = &now

		_, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("1", "2024-01-20"), now)
		require.ErrorIs(t, err, ErrCallNotFound)
	})

	t.Run("rejected inputs", func(t *testing.T) {
		a, calls := fundedQuarterly(t)

		_, err := ApplyPayment(a, calls, calls[0].CapitalCallID, payment("-1", "2024-01-20"), now)
		var invalid InvalidPaymentError
		require.ErrorAs(t, err, &invalid)

		calls[1].Status = CapitalCallStatusDefaulted
		_, err = ApplyPayment(a, calls, calls[1].CapitalCallID, payment("1", "2024-01-20"), now)
		require.ErrorAs(t, err, &invalid)

		writtenOff, err := Transition(a, EventWriteOff)
		require.NoError(t, err)
		_, err = ApplyPayment(writtenOff, calls, calls[0].CapitalCallID, payment("1", "2024-01-20"), now)
		require.ErrorAs(t, err, &invalid)
	})
}

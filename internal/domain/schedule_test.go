package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func intPointer(i int) *int { return &i }

func decimalPointer(d decimal.Decimal) *decimal.Decimal { return &d }

var scheduleNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func sumCalls(calls []CapitalCall) Money {
	total := ZeroMoney
	for _, c := range calls {
		total = total.Add(c.CallAmount)
	}
	return total
}

func TestGenerateSchedule(t *testing.T) {
	t.Run("quarterly with call count", func(t *testing.T) {
		a := newTestAllocation(t, "1000000")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:          ScheduleTypeQuarterly,
			FirstCallDate: MustDate("2024-01-15"),
			CallCount:     intPointer(4),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Len(t, calls, 4)

		expectedDates := []string{"2024-01-15", "2024-04-15", "2024-07-15", "2024-10-15"}
		for i, c := range calls {
			require.True(t, c.CallAmount.Equal(MustMoney("250000")), c.CallAmount.String())
			require.Equal(t, expectedDates[i], c.CallDate.String())
			require.Equal(t, c.CallDate.AddDays(30), c.DueDate)
			require.Equal(t, CapitalCallStatusScheduled, c.Status)
			require.Equal(t, i+1, c.Sequence)
			require.Equal(t, a.AllocationID, c.AllocationID)
		}
	})

	t.Run("single", func(t *testing.T) {
		a := newTestAllocation(t, "500000")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:          ScheduleTypeSingle,
			FirstCallDate: MustDate("2024-03-01"),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Len(t, calls, 1)
		require.True(t, calls[0].CallAmount.Equal(a.CommittedAmount))
		require.Equal(t, "2024-03-31", calls[0].DueDate.String())
	})

	t.Run("uneven split keeps exact total", func(t *testing.T) {
		a := newTestAllocation(t, "100")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:          ScheduleTypeMonthly,
			FirstCallDate: MustDate("2024-01-31"),
			CallCount:     intPointer(3),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)

		amounts := []string{}
		dates := []string{}
		for _, c := range calls {
			amounts = append(amounts, c.CallAmount.String())
			dates = append(dates, c.CallDate.String())
		}
		require.Equal(t, "", cmp.Diff([]string{"33.33", "33.33", "33.34"}, amounts))
		require.Equal(t, "", cmp.Diff([]string{"2024-01-31", "2024-02-29", "2024-03-31"}, dates))
		require.True(t, sumCalls(calls).Equal(a.CommittedAmount))
	})

	t.Run("call percentage derives count", func(t *testing.T) {
		a := newTestAllocation(t, "1000")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:           ScheduleTypeAnnual,
			FirstCallDate:  MustDate("2024-06-01"),
			CallPercentage: decimalPointer(decimal.NewFromInt(30)),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Len(t, calls, 4)
		require.Equal(t, "100.00", calls[3].CallAmount.String())
		require.Equal(t, "2027-06-01", calls[3].CallDate.String())
		require.True(t, sumCalls(calls).Equal(a.CommittedAmount))
	})

	t.Run("default percentage", func(t *testing.T) {
		a := newTestAllocation(t, "1000")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:          ScheduleTypeBiannual,
			FirstCallDate: MustDate("2024-06-01"),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Len(t, calls, 4)
		require.Equal(t, "2025-12-01", calls[3].CallDate.String())
	})

	t.Run("custom grace period", func(t *testing.T) {
		a := newTestAllocation(t, "1000")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:            ScheduleTypeSingle,
			FirstCallDate:   MustDate("2024-06-01"),
			GracePeriodDays: intPointer(10),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Equal(t, "2024-06-11", calls[0].DueDate.String())
	})

	t.Run("custom must sum exactly", func(t *testing.T) {
		a := newTestAllocation(t, "1000")

		_, err := GenerateSchedule(a, ScheduleSpec{
			Type: ScheduleTypeCustom,
			CustomCalls: []CustomCall{
				{CallDate: MustDate("2024-02-01"), Amount: MustMoney("600")},
				{CallDate: MustDate("2024-03-01"), Amount: MustMoney("399.99")},
			},
		}, DefaultScheduleConfig(), scheduleNow)

		var mismatch ScheduleAmountMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.True(t, mismatch.Expected.Equal(MustMoney("1000")))
		require.True(t, mismatch.Got.Equal(MustMoney("999.99")))
	})

	t.Run("custom sorted by date", func(t *testing.T) {
		a := newTestAllocation(t, "1000")

		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type: ScheduleTypeCustom,
			CustomCalls: []CustomCall{
				{CallDate: MustDate("2024-05-01"), Amount: MustMoney("400")},
				{CallDate: MustDate("2024-02-01"), Amount: MustMoney("600")},
			},
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Equal(t, "2024-02-01", calls[0].CallDate.String())
		require.Equal(t, "600.00", calls[0].CallAmount.String())
		require.Equal(t, 2, calls[1].Sequence)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		a := newTestAllocation(t, "1000")
		specs := map[string]ScheduleSpec{
			"unknown type":        {Type: "weekly", FirstCallDate: MustDate("2024-01-01")},
			"missing first date":  {Type: ScheduleTypeQuarterly, CallCount: intPointer(4)},
			"zero call count":     {Type: ScheduleTypeQuarterly, FirstCallDate: MustDate("2024-01-01"), CallCount: intPointer(0)},
			"percentage over 100": {Type: ScheduleTypeMonthly, FirstCallDate: MustDate("2024-01-01"), CallPercentage: decimalPointer(decimal.NewFromInt(120))},
			"count and percentage disagree": {
				Type:           ScheduleTypeMonthly,
				FirstCallDate:  MustDate("2024-01-01"),
				CallCount:      intPointer(3),
				CallPercentage: decimalPointer(decimal.NewFromInt(25)),
			},
			"empty custom":   {Type: ScheduleTypeCustom},
			"negative grace": {Type: ScheduleTypeSingle, FirstCallDate: MustDate("2024-01-01"), GracePeriodDays: intPointer(-1)},
		}
		for name, spec := range specs {
			t.Run(name, func(t *testing.T) {
				calls, err := GenerateSchedule(a, spec, DefaultScheduleConfig(), scheduleNow)
				var invalid InvalidScheduleError
				require.ErrorAs(t, err, &invalid)
				require.Nil(t, calls)
			})
		}
	})

	t.Run("closed allocation", func(t *testing.T) {
		a := newTestAllocation(t, "1000")
		a.Status = AllocationStatusClosed

		_, err := GenerateSchedule(a, ScheduleSpec{Type: ScheduleTypeSingle, FirstCallDate: MustDate("2024-01-01")}, DefaultScheduleConfig(), scheduleNow)
		var invalid InvalidScheduleError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestReschedule(t *testing.T) {
	t.Run("replaces only scheduled calls", func(t *testing.T) {
		a := withStatus(newTestAllocation(t, "1000000"), AllocationStatusPartiallyPaid, ScheduleTypeQuarterly)
		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:          ScheduleTypeQuarterly,
			FirstCallDate: MustDate("2024-01-15"),
			CallCount:     intPointer(4),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)

		calls[0].Status = CapitalCallStatusPaid
		calls[0].AmountPaid = calls[0].CallAmount
		calls[1].Status = CapitalCallStatusCalled

		later := scheduleNow.Add(24 * time.Hour)
		plan, err := Reschedule(a, calls, ScheduleSpec{
			Type:          ScheduleTypeMonthly,
			FirstCallDate: MustDate("2024-08-01"),
			CallCount:     intPointer(5),
		}, DefaultScheduleConfig(), later)
		require.NoError(t, err)

		require.Len(t, plan.Kept, 2)
		require.Len(t, plan.Superseded, 2)
		for _, c := range plan.Superseded {
			require.NotNil(t, c.SupersededAt)
			require.Equal(t, later, *c.SupersededAt)
		}
		require.True(t, plan.Target.Equal(MustMoney("500000")))
		require.Len(t, plan.NewCalls, 5)
		require.Equal(t, 3, plan.NewCalls[0].Sequence)
		require.True(t, sumCalls(plan.NewCalls).Equal(MustMoney("500000")))
		require.True(t, sumCalls(plan.Kept).Add(sumCalls(plan.NewCalls)).Equal(a.CommittedAmount))
	})

	t.Run("custom reschedule reconciles to remaining", func(t *testing.T) {
		a := withStatus(newTestAllocation(t, "1000"), AllocationStatusInvested, ScheduleTypeQuarterly)
		calls, err := GenerateSchedule(a, ScheduleSpec{
			Type:          ScheduleTypeQuarterly,
			FirstCallDate: MustDate("2024-01-15"),
			CallCount:     intPointer(4),
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		calls[0].Status = CapitalCallStatusPartial
		calls[0].AmountPaid = MustMoney("100")

		_, err = Reschedule(a, calls, ScheduleSpec{
			Type:        ScheduleTypeCustom,
			CustomCalls: []CustomCall{{CallDate: MustDate("2024-09-01"), Amount: MustMoney("1000")}},
		}, DefaultScheduleConfig(), scheduleNow)
		var mismatch ScheduleAmountMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.True(t, mismatch.Expected.Equal(MustMoney("750")))

		plan, err := Reschedule(a, calls, ScheduleSpec{
			Type:        ScheduleTypeCustom,
			CustomCalls: []CustomCall{{CallDate: MustDate("2024-09-01"), Amount: MustMoney("750")}},
		}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		require.Len(t, plan.NewCalls, 1)
	})

	t.Run("nothing left to schedule", func(t *testing.T) {
		a := withStatus(newTestAllocation(t, "1000"), AllocationStatusInvested, ScheduleTypeSingle)
		calls, err := GenerateSchedule(a, ScheduleSpec{Type: ScheduleTypeSingle, FirstCallDate: MustDate("2024-01-15")}, DefaultScheduleConfig(), scheduleNow)
		require.NoError(t, err)
		calls[0].Status = CapitalCallStatusCalled

		_, err = Reschedule(a, calls, ScheduleSpec{Type: ScheduleTypeSingle, FirstCallDate: MustDate("2024-02-15")}, DefaultScheduleConfig(), scheduleNow)
		var invalid InvalidScheduleError
		require.ErrorAs(t, err, &invalid)
	})
}

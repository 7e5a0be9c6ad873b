package service

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"fundtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeTransactor runs the unit of work once with no real transaction.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	f.calls++
	if err := ctx.Err(); err != nil {
		return domain.TransientError{Op: "transaction", Err: err}
	}
	return fn(nil)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AllocationUpdated
}

func (p *recordingPublisher) Publish(e domain.AllocationUpdated) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) reasons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []string{}
	for _, e := range p.events {
		out = append(out, e.Reason)
	}
	return out
}

var (
	testNow   = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	testClock = domain.FixedClock{At: testNow}
	manager   = domain.Actor{UserID: uuid.New(), Role: domain.RoleManager}
	viewer    = domain.Actor{UserID: uuid.New(), Role: domain.RoleViewer}
)

func scheduleTypePtr(t domain.ScheduleType) *domain.ScheduleType {
	return &t
}

func newTestAllocation(status domain.AllocationStatus, committed string) domain.Allocation {
	c := domain.MustMoney(committed)
	return domain.Allocation{
		AllocationID:      uuid.New(),
		FundID:            uuid.New(),
		DealID:            uuid.New(),
		SecurityType:      domain.SecurityTypeEquity,
		Currency:          "USD",
		CommittedAmount:   c,
		PaidAmount:        domain.ZeroMoney,
		OutstandingAmount: c,
		MarketValue:       domain.ZeroMoney,
		PortfolioWeight:   decimal.Zero,
		Moic:              decimal.NewFromInt(1),
		Irr:               decimal.Zero,
		Status:            status,
		CreatedAt:         testNow,
		UpdatedAt:         testNow,
	}
}

func newTestCall(a domain.Allocation, sequence int, amount string, status domain.CapitalCallStatus, callDate string) domain.CapitalCall {
	on := domain.MustDate(callDate)
	return domain.CapitalCall{
		CapitalCallID: uuid.New(),
		AllocationID:  a.AllocationID,
		Sequence:      sequence,
		CallAmount:    domain.MustMoney(amount),
		AmountPaid:    domain.ZeroMoney,
		CallDate:      on,
		DueDate:       on.AddDays(30),
		Status:        status,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
}

// returnAllocation echoes the updated allocation back like the repository does.
func returnAllocation(tx *sql.Tx, a domain.Allocation) (*domain.Allocation, error) {
	return &a, nil
}

type recordingNotifier struct {
	calls         []domain.CapitalCall
	distributions []domain.Distribution
}

func (n *recordingNotifier) NotifyCallDue(ctx context.Context, fund domain.Fund, a domain.Allocation, call domain.CapitalCall) {
	n.calls = append(n.calls, call)
}

func (n *recordingNotifier) NotifyDistributionReceived(ctx context.Context, fund domain.Fund, a domain.Allocation, d domain.Distribution) {
	n.distributions = append(n.distributions, d)
}

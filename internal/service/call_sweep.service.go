package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fundtrack/internal/domain"
	"fundtrack/internal/logger"
	"fundtrack/internal/repository"

	"github.com/google/uuid"
)

type CallSweepService interface {
	// AdvanceCalls moves scheduled calls whose call date has arrived to
	// called and marks called or partial calls past their due date as
	// defaulted. Each allocation is swept in its own transaction; a failure
	// on one does not stop the others.
	AdvanceCalls(ctx context.Context, actor domain.Actor, asOf domain.Date) (*SweepResult, error)
}

type SweepFailure struct {
	AllocationID uuid.UUID
	Err          error
}

type SweepResult struct {
	AsOf      domain.Date
	Called    []domain.CapitalCall
	Defaulted []domain.CapitalCall
	Failures  []SweepFailure
}

type callSweepServiceHandler struct {
	runner                txRunner
	AllocationRepository  repository.AllocationRepository
	CapitalCallRepository repository.CapitalCallRepository
	FundRepository        repository.FundRepository
	Notifier              Notifier
	Publisher             EventPublisher
	Clock                 domain.Clock
}

func NewCallSweepService(
	transactor repository.Transactor,
	timeout time.Duration,
	allocationRepository repository.AllocationRepository,
	capitalCallRepository repository.CapitalCallRepository,
	fundRepository repository.FundRepository,
	notifier Notifier,
	publisher EventPublisher,
	clock domain.Clock,
) CallSweepService {
	return callSweepServiceHandler{
		runner:                txRunner{Transactor: transactor, Timeout: timeout},
		AllocationRepository:  allocationRepository,
		CapitalCallRepository: capitalCallRepository,
		FundRepository:        fundRepository,
		Notifier:              notifier,
		Publisher:             publisher,
		Clock:                 clock,
	}
}

// advanceCall returns the call's status after the sweep on asOf.
func advanceCall(c domain.CapitalCall, asOf domain.Date) domain.CapitalCallStatus {
	status := c.Status
	if status == domain.CapitalCallStatusScheduled && !c.CallDate.After(asOf) {
		status = domain.CapitalCallStatusCalled
	}
	if (status == domain.CapitalCallStatusCalled || status == domain.CapitalCallStatusPartial) && c.DueDate.Before(asOf) {
		status = domain.CapitalCallStatusDefaulted
	}
	return status
}

func (h callSweepServiceHandler) AdvanceCalls(ctx context.Context, actor domain.Actor, asOf domain.Date) (*SweepResult, error) {
	if err := actor.Authorize("advance capital calls"); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = domain.Today(h.Clock)
	}
	log := logger.FromContext(ctx)

	candidates, err := h.CapitalCallRepository.ListSweepCandidates(nil, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list sweep candidates: %w", err)
	}

	allocationIDs := []uuid.UUID{}
	seen := map[uuid.UUID]bool{}
	for _, c := range candidates {
		if !seen[c.AllocationID] {
			seen[c.AllocationID] = true
			allocationIDs = append(allocationIDs, c.AllocationID)
		}
	}

	result := &SweepResult{AsOf: asOf}
	funds := map[uuid.UUID]*domain.Fund{}
	for _, allocationID := range allocationIDs {
		a, called, defaulted, err := h.sweepAllocation(ctx, allocationID, asOf)
		if err != nil {
			log.Errorw("failed to sweep allocation", "allocationID", allocationID, "error", err)
			result.Failures = append(result.Failures, SweepFailure{AllocationID: allocationID, Err: err})
			continue
		}
		if len(called) == 0 && len(defaulted) == 0 {
			continue
		}
		result.Called = append(result.Called, called...)
		result.Defaulted = append(result.Defaulted, defaulted...)
		h.Publisher.Publish(allocationUpdated(*a, "callSweep", h.Clock.Now()))

		fund, ok := funds[a.FundID]
		if !ok {
			fund, err = h.FundRepository.Get(nil, a.FundID)
			if err != nil {
				log.Warnw("skipping call due notifications", "fundID", a.FundID, "error", err)
			}
			funds[a.FundID] = fund
		}
		if fund == nil {
			continue
		}
		for _, c := range called {
			if c.Status == domain.CapitalCallStatusCalled {
				h.Notifier.NotifyCallDue(ctx, *fund, *a, c)
			}
		}
	}

	log.Infow(
		"advanced capital calls",
		"asOf", asOf.String(),
		"called", len(result.Called),
		"defaulted", len(result.Defaulted),
		"failures", len(result.Failures),
	)
	return result, nil
}

// sweepAllocation re-reads the allocation's calls under its lock, since the
// candidate list was read outside any transaction.
func (h callSweepServiceHandler) sweepAllocation(ctx context.Context, allocationID uuid.UUID, asOf domain.Date) (*domain.Allocation, []domain.CapitalCall, []domain.CapitalCall, error) {
	var (
		allocation *domain.Allocation
		called     []domain.CapitalCall
		defaulted  []domain.CapitalCall
	)
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		called, defaulted = nil, nil
		a, err := h.AllocationRepository.GetForUpdate(tx, allocationID)
		if err != nil {
			return err
		}
		allocation = a
		if a.Status.IsTerminal() {
			return nil
		}

		calls, err := h.CapitalCallRepository.ListByAllocation(tx, allocationID, repository.CapitalCallListFilter{})
		if err != nil {
			return err
		}
		now := h.Clock.Now()
		for _, c := range calls {
			next := advanceCall(c, asOf)
			if next == c.Status {
				continue
			}
			wasScheduled := c.Status == domain.CapitalCallStatusScheduled
			c.Status = next
			c.UpdatedAt = now
			if err := h.CapitalCallRepository.Update(tx, c); err != nil {
				return fmt.Errorf("failed to advance capital call %s: %w", c.CapitalCallID, err)
			}
			if wasScheduled {
				called = append(called, c)
			}
			if next == domain.CapitalCallStatusDefaulted {
				defaulted = append(defaulted, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return allocation, called, defaulted, nil
}

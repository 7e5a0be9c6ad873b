package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fundtrack/internal/domain"
	"fundtrack/internal/repository"

	"github.com/google/uuid"
)

type ScheduleService interface {
	// Generate creates the allocation's call schedule, or replaces the calls
	// that are still scheduled. A committed allocation moves to invested in
	// the same transaction.
	Generate(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, spec domain.ScheduleSpec) (*ScheduleResult, error)
	ListCalls(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, includeSuperseded bool) ([]domain.CapitalCall, error)
}

type ScheduleResult struct {
	Allocation domain.Allocation
	Calls      []domain.CapitalCall
	Superseded []domain.CapitalCall
}

type scheduleServiceHandler struct {
	runner                         txRunner
	Config                         domain.ScheduleConfig
	AllocationRepository           repository.AllocationRepository
	CapitalCallRepository          repository.CapitalCallRepository
	AllocationTransitionRepository repository.AllocationTransitionRepository
	Publisher                      EventPublisher
	Clock                          domain.Clock
}

func NewScheduleService(
	transactor repository.Transactor,
	timeout time.Duration,
	cfg domain.ScheduleConfig,
	allocationRepository repository.AllocationRepository,
	capitalCallRepository repository.CapitalCallRepository,
	allocationTransitionRepository repository.AllocationTransitionRepository,
	publisher EventPublisher,
	clock domain.Clock,
) ScheduleService {
	return scheduleServiceHandler{
		runner:                         txRunner{Transactor: transactor, Timeout: timeout},
		Config:                         cfg,
		AllocationRepository:           allocationRepository,
		CapitalCallRepository:          capitalCallRepository,
		AllocationTransitionRepository: allocationTransitionRepository,
		Publisher:                      publisher,
		Clock:                          clock,
	}
}

func (h scheduleServiceHandler) Generate(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, spec domain.ScheduleSpec) (*ScheduleResult, error) {
	if err := actor.Authorize("schedule capital calls"); err != nil {
		return nil, err
	}

	var result *ScheduleResult
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		now := h.Clock.Now()
		a, err := h.AllocationRepository.GetForUpdate(tx, allocationID)
		if err != nil {
			return err
		}
		existing, err := h.CapitalCallRepository.ListByAllocation(tx, allocationID, repository.CapitalCallListFilter{})
		if err != nil {
			return err
		}

		plan, err := domain.Reschedule(*a, existing, spec, h.Config, now)
		if err != nil {
			return err
		}

		for _, c := range plan.Superseded {
			if err := h.CapitalCallRepository.Update(tx, c); err != nil {
				return fmt.Errorf("failed to supersede capital call %s: %w", c.CapitalCallID, err)
			}
		}
		if err := h.CapitalCallRepository.AddMany(tx, plan.NewCalls); err != nil {
			return err
		}

		next := *a
		scheduleType := spec.Type
		next.ScheduleType = &scheduleType
		if next.Status == domain.AllocationStatusCommitted {
			next, err = domain.Transition(next, domain.EventScheduleFunded)
			if err != nil {
				return err
			}
			err = h.AllocationTransitionRepository.Add(tx, []domain.TransitionRecord{{
				AllocationID: allocationID,
				From:         a.Status,
				To:           next.Status,
				Event:        domain.EventScheduleFunded,
				ActorID:      actor.UserID,
				CreatedAt:    now,
			}})
			if err != nil {
				return err
			}
		}

		updated, err := h.AllocationRepository.Update(tx, next)
		if err != nil {
			return fmt.Errorf("failed to update allocation: %w", err)
		}

		result = &ScheduleResult{
			Allocation: *updated,
			Calls:      append(append([]domain.CapitalCall{}, plan.Kept...), plan.NewCalls...),
			Superseded: plan.Superseded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.Publisher.Publish(allocationUpdated(result.Allocation, "scheduled", h.Clock.Now()))
	return result, nil
}

func (h scheduleServiceHandler) ListCalls(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, includeSuperseded bool) ([]domain.CapitalCall, error) {
	if err := actor.AuthorizeRead("read capital calls"); err != nil {
		return nil, err
	}
	if _, err := h.AllocationRepository.Get(nil, allocationID); err != nil {
		return nil, err
	}
	return h.CapitalCallRepository.ListByAllocation(nil, allocationID, repository.CapitalCallListFilter{
		IncludeSuperseded: includeSuperseded,
	})
}

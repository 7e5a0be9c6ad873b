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

type AllocationService interface {
	Create(ctx context.Context, actor domain.Actor, in domain.NewAllocationInput) (*domain.Allocation, error)
	Get(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) (*domain.Allocation, error)
	// Transition applies a lifecycle event by hand, e.g. an exit or a write off.
	Transition(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, event domain.AllocationEvent) (*domain.Allocation, error)
	History(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) ([]domain.TransitionRecord, error)
}

type allocationServiceHandler struct {
	runner                         txRunner
	AllocationRepository           repository.AllocationRepository
	FundRepository                 repository.FundRepository
	DealRepository                 repository.DealRepository
	AllocationTransitionRepository repository.AllocationTransitionRepository
	Publisher                      EventPublisher
	Clock                          domain.Clock
}

func NewAllocationService(
	transactor repository.Transactor,
	timeout time.Duration,
	allocationRepository repository.AllocationRepository,
	fundRepository repository.FundRepository,
	dealRepository repository.DealRepository,
	allocationTransitionRepository repository.AllocationTransitionRepository,
	publisher EventPublisher,
	clock domain.Clock,
) AllocationService {
	return allocationServiceHandler{
		runner:                         txRunner{Transactor: transactor, Timeout: timeout},
		AllocationRepository:           allocationRepository,
		FundRepository:                 fundRepository,
		DealRepository:                 dealRepository,
		AllocationTransitionRepository: allocationTransitionRepository,
		Publisher:                      publisher,
		Clock:                          clock,
	}
}

func (h allocationServiceHandler) Create(ctx context.Context, actor domain.Actor, in domain.NewAllocationInput) (*domain.Allocation, error) {
	if err := actor.Authorize("create allocation"); err != nil {
		return nil, err
	}

	var out *domain.Allocation
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		fund, err := h.FundRepository.Get(tx, in.FundID)
		if err != nil {
			return err
		}
		deal, err := h.DealRepository.Get(tx, in.DealID)
		if err != nil {
			return err
		}
		if deal.FundID != fund.FundID {
			return domain.InvalidAllocationError{Reason: fmt.Sprintf("deal %s does not belong to fund %s", deal.DealID, fund.FundID)}
		}
		if in.Currency == "" {
			in.Currency = fund.Currency
		}

		a, err := domain.NewAllocation(in, h.Clock.Now())
		if err != nil {
			return err
		}
		out, err = h.AllocationRepository.Add(tx, a)
		if err != nil {
			return fmt.Errorf("failed to add allocation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.Publisher.Publish(allocationUpdated(*out, "created", h.Clock.Now()))
	return out, nil
}

func (h allocationServiceHandler) Get(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) (*domain.Allocation, error) {
	if err := actor.AuthorizeRead("read allocation"); err != nil {
		return nil, err
	}
	return h.AllocationRepository.Get(nil, allocationID)
}

func (h allocationServiceHandler) Transition(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, event domain.AllocationEvent) (*domain.Allocation, error) {
	if err := actor.Authorize("transition allocation"); err != nil {
		return nil, err
	}

	var out *domain.Allocation
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		current, err := h.AllocationRepository.GetForUpdate(tx, allocationID)
		if err != nil {
			return err
		}

		next, err := domain.Transition(*current, event)
		if err != nil {
			return err
		}

		out, err = h.AllocationRepository.Update(tx, next)
		if err != nil {
			return fmt.Errorf("failed to update allocation: %w", err)
		}

		return h.AllocationTransitionRepository.Add(tx, []domain.TransitionRecord{{
			AllocationID: allocationID,
			From:         current.Status,
			To:           next.Status,
			Event:        event,
			ActorID:      actor.UserID,
			CreatedAt:    h.Clock.Now(),
		}})
	})
	if err != nil {
		return nil, err
	}

	h.Publisher.Publish(allocationUpdated(*out, string(event), h.Clock.Now()))
	return out, nil
}

func (h allocationServiceHandler) History(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) ([]domain.TransitionRecord, error) {
	if err := actor.AuthorizeRead("read allocation history"); err != nil {
		return nil, err
	}
	if _, err := h.AllocationRepository.Get(nil, allocationID); err != nil {
		return nil, err
	}
	return h.AllocationTransitionRepository.List(nil, allocationID)
}

func allocationUpdated(a domain.Allocation, reason string, at time.Time) domain.AllocationUpdated {
	return domain.AllocationUpdated{
		AllocationID: a.AllocationID,
		FundID:       a.FundID,
		Reason:       reason,
		OccurredAt:   at,
	}
}

// stampActor sets the acting user on transition records produced by the domain.
func stampActor(records []domain.TransitionRecord, actor domain.Actor) []domain.TransitionRecord {
	out := make([]domain.TransitionRecord, len(records))
	for i, r := range records {
		r.ActorID = actor.UserID
		out[i] = r
	}
	return out
}

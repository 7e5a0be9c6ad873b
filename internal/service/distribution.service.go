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

type DistributionService interface {
	Record(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, in domain.DistributionInput) (*domain.Distribution, error)
	List(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) ([]domain.Distribution, error)
}

type distributionServiceHandler struct {
	runner                 txRunner
	AllocationRepository   repository.AllocationRepository
	DistributionRepository repository.DistributionRepository
	FundRepository         repository.FundRepository
	Notifier               Notifier
	Publisher              EventPublisher
	Clock                  domain.Clock
}

func NewDistributionService(
	transactor repository.Transactor,
	timeout time.Duration,
	allocationRepository repository.AllocationRepository,
	distributionRepository repository.DistributionRepository,
	fundRepository repository.FundRepository,
	notifier Notifier,
	publisher EventPublisher,
	clock domain.Clock,
) DistributionService {
	return distributionServiceHandler{
		runner:                 txRunner{Transactor: transactor, Timeout: timeout},
		AllocationRepository:   allocationRepository,
		DistributionRepository: distributionRepository,
		FundRepository:         fundRepository,
		Notifier:               notifier,
		Publisher:              publisher,
		Clock:                  clock,
	}
}

func (h distributionServiceHandler) Record(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, in domain.DistributionInput) (*domain.Distribution, error) {
	if err := actor.Authorize("record distribution"); err != nil {
		return nil, err
	}

	var (
		out        *domain.Distribution
		allocation domain.Allocation
	)
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		a, err := h.AllocationRepository.GetForUpdate(tx, allocationID)
		if err != nil {
			return err
		}
		d, err := domain.NewDistribution(*a, in, h.Clock.Now())
		if err != nil {
			return err
		}
		out, err = h.DistributionRepository.Add(tx, d)
		if err != nil {
			return fmt.Errorf("failed to add distribution: %w", err)
		}
		allocation = *a
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.Publisher.Publish(allocationUpdated(allocation, "distribution", h.Clock.Now()))

	fund, err := h.FundRepository.Get(nil, allocation.FundID)
	if err != nil {
		logger.FromContext(ctx).Warnw("skipping distribution notification", "fundID", allocation.FundID, "error", err)
		return out, nil
	}
	h.Notifier.NotifyDistributionReceived(ctx, *fund, allocation, *out)

	return out, nil
}

func (h distributionServiceHandler) List(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) ([]domain.Distribution, error) {
	if err := actor.AuthorizeRead("read distributions"); err != nil {
		return nil, err
	}
	return h.DistributionRepository.ListByAllocation(nil, allocationID)
}

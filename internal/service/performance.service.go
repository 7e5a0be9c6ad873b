package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fundtrack/internal/calculator"
	"fundtrack/internal/domain"
	"fundtrack/internal/logger"
	"fundtrack/internal/repository"

	"github.com/google/uuid"
)

type PerformanceService interface {
	// ComputeMetrics derives the allocation's figures as of asOf without
	// persisting them.
	ComputeMetrics(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, asOf domain.Date) (*domain.PerformanceMetrics, error)
	// RefreshMetrics recomputes MOIC and IRR as of today and stores them on
	// the allocation.
	RefreshMetrics(ctx context.Context, allocationID uuid.UUID) (*domain.Allocation, error)
	UpdateMarketValue(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, value domain.Money, asOf domain.Date) (*domain.Allocation, error)
}

type performanceServiceHandler struct {
	runner                 txRunner
	AllocationRepository   repository.AllocationRepository
	PaymentRepository      repository.PaymentRepository
	DistributionRepository repository.DistributionRepository
	Publisher              EventPublisher
	Clock                  domain.Clock
}

func NewPerformanceService(
	transactor repository.Transactor,
	timeout time.Duration,
	allocationRepository repository.AllocationRepository,
	paymentRepository repository.PaymentRepository,
	distributionRepository repository.DistributionRepository,
	publisher EventPublisher,
	clock domain.Clock,
) PerformanceService {
	return performanceServiceHandler{
		runner:                 txRunner{Transactor: transactor, Timeout: timeout},
		AllocationRepository:   allocationRepository,
		PaymentRepository:      paymentRepository,
		DistributionRepository: distributionRepository,
		Publisher:              publisher,
		Clock:                  clock,
	}
}

func (h performanceServiceHandler) metricsFor(tx *sql.Tx, a domain.Allocation, asOf domain.Date) (domain.PerformanceMetrics, error) {
	payments, err := h.PaymentRepository.ListByAllocation(tx, a.AllocationID)
	if err != nil {
		return domain.PerformanceMetrics{}, err
	}
	distributions, err := h.DistributionRepository.ListByAllocation(tx, a.AllocationID)
	if err != nil {
		return domain.PerformanceMetrics{}, err
	}
	return calculator.ComputeMetrics(a, payments, distributions, asOf), nil
}

func (h performanceServiceHandler) ComputeMetrics(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, asOf domain.Date) (*domain.PerformanceMetrics, error) {
	if err := actor.AuthorizeRead("read metrics"); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = domain.Today(h.Clock)
	}

	var out domain.PerformanceMetrics
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		a, err := h.AllocationRepository.Get(tx, allocationID)
		if err != nil {
			return err
		}
		out, err = h.metricsFor(tx, *a, asOf)
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logWarnings(ctx, out)
	return &out, nil
}

// applyMetrics stores the derived figures on a. A non-convergent IRR keeps
// the previous value and flags the allocation for review.
func applyMetrics(a domain.Allocation, m domain.PerformanceMetrics) domain.Allocation {
	a.Moic = m.Moic
	a.Irr = m.Irr
	a.IrrNeedsReview = !m.IrrConverged
	return a
}

func (h performanceServiceHandler) RefreshMetrics(ctx context.Context, allocationID uuid.UUID) (*domain.Allocation, error) {
	var (
		out     *domain.Allocation
		metrics domain.PerformanceMetrics
	)
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		a, err := h.AllocationRepository.GetForUpdate(tx, allocationID)
		if err != nil {
			return err
		}
		metrics, err = h.metricsFor(tx, *a, domain.Today(h.Clock))
		if err != nil {
			return err
		}

		next := applyMetrics(*a, metrics)
		if next.Moic.Equal(a.Moic) && next.Irr.Equal(a.Irr) && next.IrrNeedsReview == a.IrrNeedsReview {
			out = a
			return nil
		}
		out, err = h.AllocationRepository.Update(tx, next)
		if err != nil {
			return fmt.Errorf("failed to store metrics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logWarnings(ctx, metrics)
	return out, nil
}

func (h performanceServiceHandler) UpdateMarketValue(ctx context.Context, actor domain.Actor, allocationID uuid.UUID, value domain.Money, asOf domain.Date) (*domain.Allocation, error) {
	if err := actor.Authorize("update market value"); err != nil {
		return nil, err
	}
	if value.IsNegative() {
		return nil, domain.InvalidAllocationError{Reason: fmt.Sprintf("market value must be >= 0, got %s", value)}
	}
	if asOf.IsZero() {
		asOf = domain.Today(h.Clock)
	}

	var (
		out     *domain.Allocation
		metrics domain.PerformanceMetrics
	)
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		a, err := h.AllocationRepository.GetForUpdate(tx, allocationID)
		if err != nil {
			return err
		}
		if a.Status == domain.AllocationStatusWrittenOff && value.IsPositive() {
			return domain.InvalidAllocationError{Reason: "written off allocations carry no market value"}
		}

		marked := *a
		marked.MarketValue = value
		metrics, err = h.metricsFor(tx, marked, asOf)
		if err != nil {
			return err
		}

		out, err = h.AllocationRepository.Update(tx, applyMetrics(marked, metrics))
		if err != nil {
			return fmt.Errorf("failed to update market value: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logWarnings(ctx, metrics)
	h.Publisher.Publish(allocationUpdated(*out, "valuation", h.Clock.Now()))
	return out, nil
}

func (h performanceServiceHandler) logWarnings(ctx context.Context, m domain.PerformanceMetrics) {
	for _, w := range m.Warnings {
		logger.FromContext(ctx).Warnw(
			"irr needs review",
			"allocationID", m.AllocationID,
			"asOf", m.AsOf.String(),
			"warning", w,
		)
	}
}

package app

import (
	"context"
	"fmt"

	"fundtrack/internal/domain"
	"fundtrack/internal/logger"
	"fundtrack/internal/repository"
	"fundtrack/internal/service"

	"github.com/google/uuid"
)

// RecomputeApp keeps derived figures current. It reacts to committed
// allocation changes and runs the daily sweep the scheduler triggers.
type RecomputeApp interface {
	// HandleAllocationUpdated refreshes the allocation's metrics and its
	// fund's weights. Safe to run any number of times for the same event.
	HandleAllocationUpdated(ctx context.Context, e domain.AllocationUpdated) error
	// RunDailySweep advances capital calls as of asOf, then refreshes every
	// open allocation's metrics and every fund's weights.
	RunDailySweep(ctx context.Context, asOf domain.Date) (*DailySweepSummary, error)
}

type DailySweepSummary struct {
	Sweep              service.SweepResult
	RefreshedCount     int
	ReweightedFunds    int
	IrrNeedsReviewIDs  []uuid.UUID
	RefreshFailedCount int
}

type recomputeAppHandler struct {
	PerformanceService   service.PerformanceService
	PortfolioService     service.PortfolioService
	CallSweepService     service.CallSweepService
	AllocationRepository repository.AllocationRepository
}

func NewRecomputeApp(
	performanceService service.PerformanceService,
	portfolioService service.PortfolioService,
	callSweepService service.CallSweepService,
	allocationRepository repository.AllocationRepository,
) RecomputeApp {
	return &recomputeAppHandler{
		PerformanceService:   performanceService,
		PortfolioService:     portfolioService,
		CallSweepService:     callSweepService,
		AllocationRepository: allocationRepository,
	}
}

func (h *recomputeAppHandler) HandleAllocationUpdated(ctx context.Context, e domain.AllocationUpdated) error {
	if _, err := h.PerformanceService.RefreshMetrics(ctx, e.AllocationID); err != nil {
		return fmt.Errorf("failed to refresh metrics for allocation %s: %w", e.AllocationID, err)
	}
	if _, err := h.PortfolioService.RecalculateWeights(ctx, domain.SystemActor, e.FundID); err != nil {
		return fmt.Errorf("failed to recalculate weights for fund %s: %w", e.FundID, err)
	}
	return nil
}

func (h *recomputeAppHandler) RunDailySweep(ctx context.Context, asOf domain.Date) (*DailySweepSummary, error) {
	log := logger.FromContext(ctx)

	sweep, err := h.CallSweepService.AdvanceCalls(ctx, domain.SystemActor, asOf)
	if err != nil {
		return nil, err
	}
	summary := &DailySweepSummary{Sweep: *sweep}

	allocations, err := h.AllocationRepository.List(nil, repository.AllocationListFilter{})
	if err != nil {
		return nil, err
	}

	fundIDs := []uuid.UUID{}
	seenFunds := map[uuid.UUID]bool{}
	for _, a := range allocations {
		if !seenFunds[a.FundID] {
			seenFunds[a.FundID] = true
			fundIDs = append(fundIDs, a.FundID)
		}
		if a.Status.IsTerminal() {
			continue
		}
		refreshed, err := h.PerformanceService.RefreshMetrics(ctx, a.AllocationID)
		if err != nil {
			log.Errorw("failed to refresh metrics", "allocationID", a.AllocationID, "error", err)
			summary.RefreshFailedCount++
			continue
		}
		summary.RefreshedCount++
		if refreshed.IrrNeedsReview {
			summary.IrrNeedsReviewIDs = append(summary.IrrNeedsReviewIDs, a.AllocationID)
		}
	}

	for _, fundID := range fundIDs {
		if _, err := h.PortfolioService.RecalculateWeights(ctx, domain.SystemActor, fundID); err != nil {
			log.Errorw("failed to recalculate weights", "fundID", fundID, "error", err)
			continue
		}
		summary.ReweightedFunds++
	}

	return summary, nil
}

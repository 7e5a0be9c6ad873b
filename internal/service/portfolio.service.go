package service

import (
	"context"
	"database/sql"
	"time"

	"fundtrack/internal/calculator"
	"fundtrack/internal/domain"
	"fundtrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioService interface {
	// RecalculateWeights stores every allocation's share of the fund and
	// returns the new weights by allocation id.
	RecalculateWeights(ctx context.Context, actor domain.Actor, fundID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
	Diversification(ctx context.Context, actor domain.Actor, fundID uuid.UUID) (*domain.DiversificationMetrics, error)
}

type portfolioServiceHandler struct {
	runner               txRunner
	FundRepository       repository.FundRepository
	DealRepository       repository.DealRepository
	AllocationRepository repository.AllocationRepository
}

func NewPortfolioService(
	transactor repository.Transactor,
	timeout time.Duration,
	fundRepository repository.FundRepository,
	dealRepository repository.DealRepository,
	allocationRepository repository.AllocationRepository,
) PortfolioService {
	return portfolioServiceHandler{
		runner:               txRunner{Transactor: transactor, Timeout: timeout},
		FundRepository:       fundRepository,
		DealRepository:       dealRepository,
		AllocationRepository: allocationRepository,
	}
}

func (h portfolioServiceHandler) RecalculateWeights(ctx context.Context, actor domain.Actor, fundID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	if err := actor.Authorize("recalculate weights"); err != nil {
		return nil, err
	}

	var weights map[uuid.UUID]decimal.Decimal
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		if _, err := h.FundRepository.Get(tx, fundID); err != nil {
			return err
		}
		allocations, err := h.AllocationRepository.List(tx, repository.AllocationListFilter{
			FundIDs:   []uuid.UUID{fundID},
			ForUpdate: true,
		})
		if err != nil {
			return err
		}

		weights = calculator.RecalculateWeights(allocations)
		changed := map[uuid.UUID]decimal.Decimal{}
		for _, a := range allocations {
			if w := weights[a.AllocationID]; !w.Equal(a.PortfolioWeight) {
				changed[a.AllocationID] = w
			}
		}
		if len(changed) == 0 {
			return nil
		}
		return h.AllocationRepository.UpdateWeights(tx, changed)
	})
	if err != nil {
		return nil, err
	}
	return weights, nil
}

func (h portfolioServiceHandler) Diversification(ctx context.Context, actor domain.Actor, fundID uuid.UUID) (*domain.DiversificationMetrics, error) {
	if err := actor.AuthorizeRead("read diversification"); err != nil {
		return nil, err
	}

	var out domain.DiversificationMetrics
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		if _, err := h.FundRepository.Get(tx, fundID); err != nil {
			return err
		}
		allocations, err := h.AllocationRepository.List(tx, repository.AllocationListFilter{
			FundIDs: []uuid.UUID{fundID},
		})
		if err != nil {
			return err
		}
		deals, err := h.DealRepository.ListByFund(tx, fundID)
		if err != nil {
			return err
		}

		dealsByID := map[uuid.UUID]domain.Deal{}
		for _, d := range deals {
			dealsByID[d.DealID] = d
		}
		out = calculator.Diversification(fundID, allocations, dealsByID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type getMetricsResponse struct {
	AllocationID     uuid.UUID       `json:"allocationID"`
	AsOf             domain.Date     `json:"asOf"`
	PaidAmount       domain.Money    `json:"paidAmount"`
	TotalDistributed domain.Money    `json:"totalDistributed"`
	MarketValue      domain.Money    `json:"marketValue"`
	Moic             decimal.Decimal `json:"moic"`
	// Irr is null when the solver did not converge.
	Irr              *decimal.Decimal `json:"irr"`
	TotalReturn      domain.Money     `json:"totalReturn"`
	RealizedReturn   domain.Money     `json:"realizedReturn"`
	UnrealizedReturn domain.Money     `json:"unrealizedReturn"`
	Warnings         []string         `json:"warnings"`
}

func (m ApiHandler) getMetrics(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	asOf, ok := m.asOfQuery(c)
	if !ok {
		return
	}

	metrics, err := m.PerformanceService.ComputeMetrics(c.Request.Context(), actor, allocationID, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := getMetricsResponse{
		AllocationID:     metrics.AllocationID,
		AsOf:             metrics.AsOf,
		PaidAmount:       metrics.PaidAmount,
		TotalDistributed: metrics.TotalDistributed,
		MarketValue:      metrics.MarketValue,
		Moic:             metrics.Moic,
		TotalReturn:      metrics.TotalReturn,
		RealizedReturn:   metrics.RealizedReturn,
		UnrealizedReturn: metrics.UnrealizedReturn,
		Warnings:         metrics.Warnings,
	}
	if metrics.IrrConverged {
		irr := metrics.Irr
		out.Irr = &irr
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}

	c.JSON(200, out)
}

package api

import (
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type allocationWeight struct {
	AllocationID uuid.UUID       `json:"allocationID"`
	Weight       decimal.Decimal `json:"weight"`
}

type recalculateWeightsResponse struct {
	FundID  uuid.UUID          `json:"fundID"`
	Weights []allocationWeight `json:"weights"`
}

func (m ApiHandler) recalculateWeights(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	fundID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	weights, err := m.PortfolioService.RecalculateWeights(c.Request.Context(), actor, fundID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := recalculateWeightsResponse{
		FundID:  fundID,
		Weights: make([]allocationWeight, 0, len(weights)),
	}
	for id, w := range weights {
		out.Weights = append(out.Weights, allocationWeight{AllocationID: id, Weight: w})
	}
	sort.Slice(out.Weights, func(i, j int) bool {
		if !out.Weights[i].Weight.Equal(out.Weights[j].Weight) {
			return out.Weights[i].Weight.GreaterThan(out.Weights[j].Weight)
		}
		return out.Weights[i].AllocationID.String() < out.Weights[j].AllocationID.String()
	})

	c.JSON(200, out)
}

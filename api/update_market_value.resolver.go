package api

import (
	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
)

type updateMarketValueRequest struct {
	MarketValue domain.Money `json:"marketValue"`
	AsOf        domain.Date  `json:"asOf"`
}

func (m ApiHandler) updateMarketValue(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var requestBody updateMarketValueRequest
	if !bindJson(c, &requestBody) {
		return
	}
	asOf := requestBody.AsOf
	if asOf.IsZero() {
		asOf = m.today()
	}

	allocation, err := m.PerformanceService.UpdateMarketValue(c.Request.Context(), actor, allocationID, requestBody.MarketValue, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newAllocationResponse(*allocation))
}

package api

import (
	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
)

type recordDistributionRequest struct {
	Amount           domain.Money            `json:"amount"`
	DistributionDate domain.Date             `json:"distributionDate"`
	Type             domain.DistributionType `json:"type"`
	Description      string                  `json:"description"`
}

func (m ApiHandler) recordDistribution(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var requestBody recordDistributionRequest
	if !bindJson(c, &requestBody) {
		return
	}

	distribution, err := m.DistributionService.Record(c.Request.Context(), actor, allocationID, domain.DistributionInput{
		Amount:           requestBody.Amount,
		DistributionDate: requestBody.DistributionDate,
		Type:             requestBody.Type,
		Description:      requestBody.Description,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, newDistributionResponse(*distribution))
}

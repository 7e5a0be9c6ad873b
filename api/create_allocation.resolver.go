package api

import (
	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createAllocationRequest struct {
	FundID          uuid.UUID           `json:"fundID"`
	DealID          uuid.UUID           `json:"dealID"`
	SecurityType    domain.SecurityType `json:"securityType"`
	Currency        string              `json:"currency"`
	CommittedAmount domain.Money        `json:"committedAmount"`
}

func (m ApiHandler) createAllocation(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var requestBody createAllocationRequest
	if !bindJson(c, &requestBody) {
		return
	}

	allocation, err := m.AllocationService.Create(c.Request.Context(), actor, domain.NewAllocationInput{
		FundID:          requestBody.FundID,
		DealID:          requestBody.DealID,
		SecurityType:    requestBody.SecurityType,
		Currency:        requestBody.Currency,
		CommittedAmount: requestBody.CommittedAmount,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, newAllocationResponse(*allocation))
}

func (m ApiHandler) getAllocation(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	allocation, err := m.AllocationService.Get(c.Request.Context(), actor, allocationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newAllocationResponse(*allocation))
}

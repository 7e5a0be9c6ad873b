package api

import (
	"strconv"

	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type generateScheduleRequest struct {
	Type            domain.ScheduleType `json:"type"`
	FirstCallDate   domain.Date         `json:"firstCallDate"`
	CallCount       *int                `json:"callCount"`
	CallPercentage  *decimal.Decimal    `json:"callPercentage"`
	GracePeriodDays *int                `json:"gracePeriodDays"`
	CustomCalls     []domain.CustomCall `json:"customCalls"`
}

type generateScheduleResponse struct {
	Allocation allocationResponse    `json:"allocation"`
	Calls      []capitalCallResponse `json:"calls"`
	Superseded []capitalCallResponse `json:"superseded"`
}

func (m ApiHandler) generateSchedule(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var requestBody generateScheduleRequest
	if !bindJson(c, &requestBody) {
		return
	}

	result, err := m.ScheduleService.Generate(c.Request.Context(), actor, allocationID, domain.ScheduleSpec{
		Type:            requestBody.Type,
		FirstCallDate:   requestBody.FirstCallDate,
		CallCount:       requestBody.CallCount,
		CallPercentage:  requestBody.CallPercentage,
		GracePeriodDays: requestBody.GracePeriodDays,
		CustomCalls:     requestBody.CustomCalls,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, generateScheduleResponse{
		Allocation: newAllocationResponse(result.Allocation),
		Calls:      newCapitalCallResponses(result.Calls),
		Superseded: newCapitalCallResponses(result.Superseded),
	})
}

func (m ApiHandler) listCapitalCalls(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	includeSuperseded := false
	if raw := c.Query("includeSuperseded"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			returnErrorJson(badRequest("invalid includeSuperseded: %w", err), c)
			return
		}
		includeSuperseded = v
	}

	calls, err := m.ScheduleService.ListCalls(c.Request.Context(), actor, allocationID, includeSuperseded)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newCapitalCallResponses(calls))
}

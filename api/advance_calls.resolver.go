package api

import (
	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type advanceCallsRequest struct {
	AsOf domain.Date `json:"asOf"`
}

type sweepFailureResponse struct {
	AllocationID uuid.UUID `json:"allocationID"`
	Error        string    `json:"error"`
}

type advanceCallsResponse struct {
	AsOf      domain.Date            `json:"asOf"`
	Called    []capitalCallResponse  `json:"called"`
	Defaulted []capitalCallResponse  `json:"defaulted"`
	Failures  []sweepFailureResponse `json:"failures"`
}

func (m ApiHandler) advanceCalls(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	// body is optional; asOf defaults to today
	var requestBody advanceCallsRequest
	if c.Request.ContentLength > 0 && !bindJson(c, &requestBody) {
		return
	}
	asOf := requestBody.AsOf
	if asOf.IsZero() {
		asOf = m.today()
	}

	result, err := m.CallSweepService.AdvanceCalls(c.Request.Context(), actor, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := advanceCallsResponse{
		AsOf:      result.AsOf,
		Called:    newCapitalCallResponses(result.Called),
		Defaulted: newCapitalCallResponses(result.Defaulted),
		Failures:  []sweepFailureResponse{},
	}
	for _, f := range result.Failures {
		out.Failures = append(out.Failures, sweepFailureResponse{
			AllocationID: f.AllocationID,
			Error:        f.Err.Error(),
		})
	}

	c.JSON(200, out)
}

package api

import (
	"time"

	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type transitionAllocationRequest struct {
	Event string `json:"event"`
}

func (m ApiHandler) transitionAllocation(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var requestBody transitionAllocationRequest
	if !bindJson(c, &requestBody) {
		return
	}
	event, err := domain.ParseAllocationEvent(requestBody.Event)
	if err != nil {
		returnErrorJson(badRequest("%w", err), c)
		return
	}

	allocation, err := m.AllocationService.Transition(c.Request.Context(), actor, allocationID, event)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newAllocationResponse(*allocation))
}

type transitionRecordResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Event     string    `json:"event"`
	ActorID   uuid.UUID `json:"actorID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m ApiHandler) getAllocationTransitions(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	allocationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	records, err := m.AllocationService.History(c.Request.Context(), actor, allocationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]transitionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, transitionRecordResponse{
			From:      r.From.String(),
			To:        r.To.String(),
			Event:     r.Event.String(),
			ActorID:   r.ActorID,
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(200, out)
}

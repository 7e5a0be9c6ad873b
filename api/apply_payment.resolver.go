package api

import (
	"net/http"

	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type applyPaymentRequest struct {
	// PaymentID is the caller's idempotency key.
	PaymentID                  uuid.UUID    `json:"paymentID"`
	Amount                     domain.Money `json:"amount"`
	PaymentDate                domain.Date  `json:"paymentDate"`
	AllowOverageAsDistribution bool         `json:"allowOverageAsDistribution"`
}

type applyPaymentResponse struct {
	Allocation          allocationResponse    `json:"allocation"`
	Call                capitalCallResponse   `json:"call"`
	Payment             paymentResponse       `json:"payment"`
	OverageDistribution *distributionResponse `json:"overageDistribution,omitempty"`
	Replayed            bool                  `json:"replayed"`
}

func (m ApiHandler) applyPayment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	callID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var requestBody applyPaymentRequest
	if !bindJson(c, &requestBody) {
		return
	}
	if requestBody.PaymentID == uuid.Nil {
		returnErrorJson(badRequest("paymentID is required"), c)
		return
	}
	paymentDate := requestBody.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = m.today()
	}

	result, err := m.PaymentService.ApplyPayment(c.Request.Context(), actor, callID, domain.PaymentInput{
		PaymentID:                  requestBody.PaymentID,
		Amount:                     requestBody.Amount,
		PaymentDate:                paymentDate,
		AllowOverageAsDistribution: requestBody.AllowOverageAsDistribution,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := applyPaymentResponse{
		Allocation: newAllocationResponse(result.Allocation),
		Call:       newCapitalCallResponse(result.Call),
		Payment:    newPaymentResponse(result.Payment),
		Replayed:   result.Replayed,
	}
	if result.OverageDistribution != nil {
		d := newDistributionResponse(*result.OverageDistribution)
		out.OverageDistribution = &d
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, out)
}

package api

import (
	"time"

	"fundtrack/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type allocationResponse struct {
	AllocationID      uuid.UUID            `json:"allocationID"`
	FundID            uuid.UUID            `json:"fundID"`
	DealID            uuid.UUID            `json:"dealID"`
	SecurityType      domain.SecurityType  `json:"securityType"`
	Currency          string               `json:"currency"`
	CommittedAmount   domain.Money         `json:"committedAmount"`
	PaidAmount        domain.Money         `json:"paidAmount"`
	OutstandingAmount domain.Money         `json:"outstandingAmount"`
	MarketValue       domain.Money         `json:"marketValue"`
	PortfolioWeight   decimal.Decimal      `json:"portfolioWeight"`
	Moic              decimal.Decimal      `json:"moic"`
	Irr               decimal.Decimal      `json:"irr"`
	IrrNeedsReview    bool                 `json:"irrNeedsReview"`
	ScheduleType      *domain.ScheduleType `json:"scheduleType"`
	Status            string               `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func newAllocationResponse(a domain.Allocation) allocationResponse {
	return allocationResponse{
		AllocationID:      a.AllocationID,
		FundID:            a.FundID,
		DealID:            a.DealID,
		SecurityType:      a.SecurityType,
		Currency:          a.Currency,
		CommittedAmount:   a.CommittedAmount,
		PaidAmount:        a.PaidAmount,
		OutstandingAmount: a.OutstandingAmount,
		MarketValue:       a.MarketValue,
		PortfolioWeight:   a.PortfolioWeight,
		Moic:              a.Moic,
		Irr:               a.Irr,
		IrrNeedsReview:    a.IrrNeedsReview,
		ScheduleType:      a.ScheduleType,
		Status:            a.Status.String(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

type capitalCallResponse struct {
	CapitalCallID uuid.UUID    `json:"capitalCallID"`
	AllocationID  uuid.UUID    `json:"allocationID"`
	Sequence      int          `json:"sequence"`
	CallAmount    domain.Money `json:"callAmount"`
	AmountPaid    domain.Money `json:"amountPaid"`
	Remaining     domain.Money `json:"remaining"`
	CallDate      domain.Date  `json:"callDate"`
	DueDate       domain.Date  `json:"dueDate"`
	Status        string       `json:"status"`
	SupersededAt  *time.Time   `json:"supersededAt,omitempty"`
}

func newCapitalCallResponse(c domain.CapitalCall) capitalCallResponse {
	return capitalCallResponse{
		CapitalCallID: c.CapitalCallID,
		AllocationID:  c.AllocationID,
		Sequence:      c.Sequence,
		CallAmount:    c.CallAmount,
		AmountPaid:    c.AmountPaid,
		Remaining:     c.Remaining(),
		CallDate:      c.CallDate,
		DueDate:       c.DueDate,
		Status:        c.Status.String(),
		SupersededAt:  c.SupersededAt,
	}
}

func newCapitalCallResponses(calls []domain.CapitalCall) []capitalCallResponse {
	out := make([]capitalCallResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, newCapitalCallResponse(c))
	}
	return out
}

type distributionResponse struct {
	DistributionID   uuid.UUID    `json:"distributionID"`
	AllocationID     uuid.UUID    `json:"allocationID"`
	Amount           domain.Money `json:"amount"`
	DistributionDate domain.Date  `json:"distributionDate"`
	Type             string       `json:"type"`
	Description      string       `json:"description,omitempty"`
}

func newDistributionResponse(d domain.Distribution) distributionResponse {
	return distributionResponse{
		DistributionID:   d.DistributionID,
		AllocationID:     d.AllocationID,
		Amount:           d.Amount,
		DistributionDate: d.DistributionDate,
		Type:             d.Type.String(),
		Description:      d.Description,
	}
}

type paymentResponse struct {
	PaymentID             uuid.UUID    `json:"paymentID"`
	CapitalCallID         uuid.UUID    `json:"capitalCallID"`
	Amount                domain.Money `json:"amount"`
	AppliedAmount         domain.Money `json:"appliedAmount"`
	PaymentDate           domain.Date  `json:"paymentDate"`
	OverageDistributionID *uuid.UUID   `json:"overageDistributionID,omitempty"`
}

func newPaymentResponse(p domain.Payment) paymentResponse {
	return paymentResponse{
		PaymentID:             p.PaymentID,
		CapitalCallID:         p.CapitalCallID,
		Amount:                p.Amount,
		AppliedAmount:         p.AppliedAmount,
		PaymentDate:           p.PaymentDate,
		OverageDistributionID: p.OverageDistributionID,
	}
}

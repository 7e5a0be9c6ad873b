package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fundtrack/internal/domain"
	"fundtrack/internal/repository"

	"github.com/google/uuid"
)

type PaymentService interface {
	// ApplyPayment credits a payment to a capital call. Re-submitting a
	// payment id that was already applied returns the current state without
	// applying it again.
	ApplyPayment(ctx context.Context, actor domain.Actor, callID uuid.UUID, in domain.PaymentInput) (*PaymentResult, error)
	ListPayments(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) ([]domain.Payment, error)
}

type PaymentResult struct {
	Allocation          domain.Allocation
	Call                domain.CapitalCall
	Payment             domain.Payment
	OverageDistribution *domain.Distribution
	// Replayed is set when the payment id had already been applied.
	Replayed bool
}

type paymentServiceHandler struct {
	runner                         txRunner
	AllocationRepository           repository.AllocationRepository
	CapitalCallRepository          repository.CapitalCallRepository
	PaymentRepository              repository.PaymentRepository
	DistributionRepository         repository.DistributionRepository
	AllocationTransitionRepository repository.AllocationTransitionRepository
	Publisher                      EventPublisher
	Clock                          domain.Clock
}

func NewPaymentService(
	transactor repository.Transactor,
	timeout time.Duration,
	allocationRepository repository.AllocationRepository,
	capitalCallRepository repository.CapitalCallRepository,
	paymentRepository repository.PaymentRepository,
	distributionRepository repository.DistributionRepository,
	allocationTransitionRepository repository.AllocationTransitionRepository,
	publisher EventPublisher,
	clock domain.Clock,
) PaymentService {
	return paymentServiceHandler{
		runner:                         txRunner{Transactor: transactor, Timeout: timeout},
		AllocationRepository:           allocationRepository,
		CapitalCallRepository:          capitalCallRepository,
		PaymentRepository:              paymentRepository,
		DistributionRepository:         distributionRepository,
		AllocationTransitionRepository: allocationTransitionRepository,
		Publisher:                      publisher,
		Clock:                          clock,
	}
}

func (h paymentServiceHandler) ApplyPayment(ctx context.Context, actor domain.Actor, callID uuid.UUID, in domain.PaymentInput) (*PaymentResult, error) {
	if err := actor.Authorize("apply payment"); err != nil {
		return nil, err
	}
	if in.PaymentID == uuid.Nil {
		in.PaymentID = uuid.New()
	}

	var result *PaymentResult
	err := h.runner.run(ctx, func(tx *sql.Tx) error {
		now := h.Clock.Now()
		call, err := h.CapitalCallRepository.Get(tx, callID)
		if err != nil {
			return err
		}
		a, err := h.AllocationRepository.GetForUpdate(tx, call.AllocationID)
		if err != nil {
			return err
		}

		// checked under the allocation lock so concurrent retries serialize
		prior, err := h.PaymentRepository.Get(tx, in.PaymentID)
		if err != nil {
			return err
		}
		if prior != nil {
			if prior.CapitalCallID != callID {
				return domain.InvalidPaymentError{
					CallID: callID,
					Reason: fmt.Sprintf("payment id %s was already applied to capital call %s", in.PaymentID, prior.CapitalCallID),
				}
			}
			result = &PaymentResult{
				Allocation: *a,
				Call:       *call,
				Payment:    *prior,
				Replayed:   true,
			}
			return nil
		}

		calls, err := h.CapitalCallRepository.ListByAllocation(tx, a.AllocationID, repository.CapitalCallListFilter{})
		if err != nil {
			return err
		}

		applied, err := domain.ApplyPayment(*a, calls, callID, in, now)
		if err != nil {
			return err
		}

		payment := applied.Payment
		payment.ActorID = actor.UserID
		result = &PaymentResult{}

		if applied.Overage.IsPositive() {
			d, err := domain.OverageDistribution(applied.Allocation, callID, applied.Overage, in.PaymentDate, now)
			if err != nil {
				return err
			}
			inserted, err := h.DistributionRepository.Add(tx, d)
			if err != nil {
				return fmt.Errorf("failed to record overage distribution: %w", err)
			}
			payment.OverageDistributionID = &inserted.DistributionID
			result.OverageDistribution = inserted
		}

		insertedPayment, err := h.PaymentRepository.Add(tx, payment)
		if err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		if err := h.CapitalCallRepository.Update(tx, applied.Call); err != nil {
			return fmt.Errorf("failed to update capital call: %w", err)
		}
		updated, err := h.AllocationRepository.Update(tx, applied.Allocation)
		if err != nil {
			return fmt.Errorf("failed to update allocation: %w", err)
		}
		if len(applied.Transitions) > 0 {
			if err := h.AllocationTransitionRepository.Add(tx, stampActor(applied.Transitions, actor)); err != nil {
				return err
			}
		}

		result.Allocation = *updated
		result.Call = applied.Call
		result.Payment = *insertedPayment
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		h.Publisher.Publish(allocationUpdated(result.Allocation, "payment", h.Clock.Now()))
	}
	return result, nil
}

func (h paymentServiceHandler) ListPayments(ctx context.Context, actor domain.Actor, allocationID uuid.UUID) ([]domain.Payment, error) {
	if err := actor.AuthorizeRead("read payments"); err != nil {
		return nil, err
	}
	return h.PaymentRepository.ListByAllocation(nil, allocationID)
}

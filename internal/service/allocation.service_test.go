package service

import (
	"context"
	"errors"
	"testing"

	"fundtrack/internal/domain"
	mock_repository "fundtrack/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAllocationService(ctrl *gomock.Controller) (
	allocationServiceHandler,
	*mock_repository.MockAllocationRepository,
	*mock_repository.MockFundRepository,
	*mock_repository.MockDealRepository,
	*mock_repository.MockAllocationTransitionRepository,
	*recordingPublisher,
) {
	allocationRepository := mock_repository.NewMockAllocationRepository(ctrl)
	fundRepository := mock_repository.NewMockFundRepository(ctrl)
	dealRepository := mock_repository.NewMockDealRepository(ctrl)
	transitionRepository := mock_repository.NewMockAllocationTransitionRepository(ctrl)
	publisher := &recordingPublisher{}

	handler := NewAllocationService(
		&fakeTransactor{},
		0,
		allocationRepository,
		fundRepository,
		dealRepository,
		transitionRepository,
		publisher,
		testClock,
	).(allocationServiceHandler)
	return handler, allocationRepository, fundRepository, dealRepository, transitionRepository, publisher
}

func Test_allocationServiceHandler_Create(t *testing.T) {
	fund := domain.Fund{FundID: uuid.New(), Name: "Fund I", Currency: "EUR"}

	t.Run("creates a committed allocation in the fund currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, fundRepository, dealRepository, _, publisher := newTestAllocationService(ctrl)
		deal := domain.Deal{DealID: uuid.New(), FundID: fund.FundID}

		fundRepository.EXPECT().Get(gomock.Any(), fund.FundID).Return(&fund, nil)
		dealRepository.EXPECT().Get(gomock.Any(), deal.DealID).Return(&deal, nil)
		allocationRepository.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(returnAllocation)

		a, err := handler.Create(context.Background(), manager, domain.NewAllocationInput{
			FundID:          fund.FundID,
			DealID:          deal.DealID,
			CommittedAmount: domain.MustMoney("1000000"),
		})
		require.NoError(t, err)

		require.Equal(t, domain.AllocationStatusCommitted, a.Status)
		require.Equal(t, "EUR", a.Currency)
		require.Equal(t, "1000000.00", a.OutstandingAmount.String())
		require.Equal(t, "0.00", a.PaidAmount.String())
		require.Equal(t, "1", a.Moic.String())
		require.Equal(t, "", cmp.Diff([]string{"created"}, publisher.reasons()))
	})

	t.Run("deal from another fund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, fundRepository, dealRepository, _, publisher := newTestAllocationService(ctrl)
		deal := domain.Deal{DealID: uuid.New(), FundID: uuid.New()}

		fundRepository.EXPECT().Get(gomock.Any(), fund.FundID).Return(&fund, nil)
		dealRepository.EXPECT().Get(gomock.Any(), deal.DealID).Return(&deal, nil)

		_, err := handler.Create(context.Background(), manager, domain.NewAllocationInput{
			FundID:          fund.FundID,
			DealID:          deal.DealID,
			CommittedAmount: domain.MustMoney("100"),
		})
		require.ErrorAs(t, err, &domain.InvalidAllocationError{})
		require.Empty(t, publisher.reasons())
	})

	t.Run("unknown fund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, fundRepository, _, _, _ := newTestAllocationService(ctrl)
		fundID := uuid.New()

		fundRepository.EXPECT().Get(gomock.Any(), fundID).Return(nil, domain.NewFundNotFound(fundID))

		_, err := handler.Create(context.Background(), manager, domain.NewAllocationInput{
			FundID:          fundID,
			DealID:          uuid.New(),
			CommittedAmount: domain.MustMoney("100"),
		})
		require.True(t, errors.Is(err, domain.ErrFundNotFound))
	})

	t.Run("viewers cannot create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _, _, _, _ := newTestAllocationService(ctrl)

		_, err := handler.Create(context.Background(), viewer, domain.NewAllocationInput{})
		require.ErrorAs(t, err, &domain.ForbiddenError{})
	})
}

func Test_allocationServiceHandler_Transition(t *testing.T) {
	t.Run("write off records the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, _, _, transitionRepository, publisher := newTestAllocationService(ctrl)
		a := newTestAllocation(domain.AllocationStatusPartiallyPaid, "1000")
		a.PaidAmount = domain.MustMoney("400")
		a.OutstandingAmount = domain.MustMoney("600")

		allocationRepository.EXPECT().GetForUpdate(gomock.Any(), a.AllocationID).Return(&a, nil)
		allocationRepository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnAllocation)
		transitionRepository.EXPECT().Add(gomock.Any(), []domain.TransitionRecord{{
			AllocationID: a.AllocationID,
			From:         domain.AllocationStatusPartiallyPaid,
			To:           domain.AllocationStatusWrittenOff,
			Event:        domain.EventWriteOff,
			ActorID:      manager.UserID,
			CreatedAt:    testNow,
		}}).Return(nil)

		out, err := handler.Transition(context.Background(), manager, a.AllocationID, domain.EventWriteOff)
		require.NoError(t, err)
		require.Equal(t, domain.AllocationStatusWrittenOff, out.Status)
		require.True(t, out.OutstandingAmount.IsZero())
		require.Equal(t, "400.00", out.PaidAmount.String())
		require.Equal(t, "", cmp.Diff([]string{"writeOff"}, publisher.reasons()))
	})

	t.Run("illegal event writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, _, _, _, publisher := newTestAllocationService(ctrl)
		a := newTestAllocation(domain.AllocationStatusClosed, "1000")

		allocationRepository.EXPECT().GetForUpdate(gomock.Any(), a.AllocationID).Return(&a, nil)

		_, err := handler.Transition(context.Background(), manager, a.AllocationID, domain.EventPartialExit)
		transitionErr := domain.InvalidTransitionError{}
		require.ErrorAs(t, err, &transitionErr)
		require.Equal(t, domain.AllocationStatusClosed, transitionErr.From)
		require.Empty(t, publisher.reasons())
	})

	t.Run("cancelled context is transient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _, _, _, _ := newTestAllocationService(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := handler.Transition(ctx, manager, uuid.New(), domain.EventWriteOff)
		require.ErrorAs(t, err, &domain.TransientError{})
	})
}

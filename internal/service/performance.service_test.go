package service

import (
	"context"
	"testing"

	"fundtrack/internal/domain"
	mock_repository "fundtrack/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_performanceServiceHandler(t *testing.T) {
	setup := func(ctrl *gomock.Controller) (
		PerformanceService,
		*mock_repository.MockAllocationRepository,
		*mock_repository.MockPaymentRepository,
		*mock_repository.MockDistributionRepository,
		*recordingPublisher,
	) {
		allocationRepository := mock_repository.NewMockAllocationRepository(ctrl)
		paymentRepository := mock_repository.NewMockPaymentRepository(ctrl)
		distributionRepository := mock_repository.NewMockDistributionRepository(ctrl)
		publisher := &recordingPublisher{}
		handler := NewPerformanceService(
			&fakeTransactor{},
			0,
			allocationRepository,
			paymentRepository,
			distributionRepository,
			publisher,
			testClock,
		)
		return handler, allocationRepository, paymentRepository, distributionRepository, publisher
	}

	paidAllocation := func(paid string) (domain.Allocation, []domain.Payment) {
		a := newTestAllocation(domain.AllocationStatusFunded, paid)
		a.PaidAmount = domain.MustMoney(paid)
		a.OutstandingAmount = domain.ZeroMoney
		payments := []domain.Payment{{
			PaymentID:     uuid.New(),
			AllocationID:  a.AllocationID,
			CapitalCallID: uuid.New(),
			Amount:        domain.MustMoney(paid),
			AppliedAmount: domain.MustMoney(paid),
			PaymentDate:   domain.MustDate("2022-03-15"),
		}}
		return a, payments
	}

	t.Run("market value mark recomputes moic and irr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, paymentRepository, distributionRepository, publisher := setup(ctrl)
		a, payments := paidAllocation("100")

		allocationRepository.EXPECT().GetForUpdate(gomock.Any(), a.AllocationID).Return(&a, nil)
		paymentRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(payments, nil)
		distributionRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(nil, nil)
		allocationRepository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnAllocation)

		out, err := handler.UpdateMarketValue(context.Background(), manager, a.AllocationID, domain.MustMoney("150"), domain.MustDate("2023-03-15"))
		require.NoError(t, err)

		require.Equal(t, "150.00", out.MarketValue.String())
		require.Equal(t, "1.5", out.Moic.String())
		require.Equal(t, "0.5", out.Irr.String())
		require.False(t, out.IrrNeedsReview)
		require.Equal(t, []string{"valuation"}, publisher.reasons())
	})

	t.Run("negative market value is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _, _, _ := setup(ctrl)

		_, err := handler.UpdateMarketValue(context.Background(), manager, uuid.New(), domain.MustMoney("-1"), domain.Date{})
		require.ErrorAs(t, err, &domain.InvalidAllocationError{})
	})

	t.Run("unsolvable irr keeps the last value and flags review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, paymentRepository, distributionRepository, _ := setup(ctrl)
		a, payments := paidAllocation("100")
		a.Irr = decimal.RequireFromString("0.123456")

		allocationRepository.EXPECT().GetForUpdate(gomock.Any(), a.AllocationID).Return(&a, nil)
		paymentRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(payments, nil)
		distributionRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(nil, nil)
		allocationRepository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnAllocation)

		out, err := handler.RefreshMetrics(context.Background(), a.AllocationID)
		require.NoError(t, err)
		require.True(t, out.IrrNeedsReview)
		require.Equal(t, "0.123456", out.Irr.String())
		require.Equal(t, "0", out.Moic.String())
	})

	t.Run("refresh without changes does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, paymentRepository, distributionRepository, _ := setup(ctrl)
		a := newTestAllocation(domain.AllocationStatusInvested, "1000")

		allocationRepository.EXPECT().GetForUpdate(gomock.Any(), a.AllocationID).Return(&a, nil)
		paymentRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(nil, nil)
		distributionRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(nil, nil)

		out, err := handler.RefreshMetrics(context.Background(), a.AllocationID)
		require.NoError(t, err)
		require.Equal(t, "1", out.Moic.String())
	})

	t.Run("compute metrics is read only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, allocationRepository, paymentRepository, distributionRepository, _ := setup(ctrl)
		a, payments := paidAllocation("100")
		a.MarketValue = domain.MustMoney("50")
		distributions := []domain.Distribution{{
			DistributionID:   uuid.New(),
			AllocationID:     a.AllocationID,
			Amount:           domain.MustMoney("100"),
			DistributionDate: domain.MustDate("2023-01-01"),
			Type:             domain.DistributionTypeDividend,
		}}

		allocationRepository.EXPECT().Get(gomock.Any(), a.AllocationID).Return(&a, nil)
		paymentRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(payments, nil)
		distributionRepository.EXPECT().ListByAllocation(gomock.Any(), a.AllocationID).Return(distributions, nil)

		m, err := handler.ComputeMetrics(context.Background(), viewer, a.AllocationID, domain.MustDate("2024-01-01"))
		require.NoError(t, err)
		require.Equal(t, "1.5", m.Moic.String())
		require.Equal(t, "100.00", m.RealizedReturn.String())
		require.Equal(t, "50.00", m.UnrealizedReturn.String())
		require.Equal(t, "50.00", m.TotalReturn.String())
		require.True(t, m.IrrConverged)
	})
}

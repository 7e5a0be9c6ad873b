package app

import (
	"context"
	"errors"
	"testing"

	"fundtrack/internal/domain"
	"fundtrack/internal/repository"
	mock_repository "fundtrack/internal/repository/mocks"
	"fundtrack/internal/service"
	mock_service "fundtrack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_recomputeAppHandler_HandleAllocationUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	performanceService := mock_service.NewMockPerformanceService(ctrl)
	portfolioService := mock_service.NewMockPortfolioService(ctrl)
	handler := NewRecomputeApp(performanceService, portfolioService, nil, nil)

	e := domain.AllocationUpdated{AllocationID: uuid.New(), FundID: uuid.New(), Reason: "payment"}
	performanceService.EXPECT().RefreshMetrics(gomock.Any(), e.AllocationID).Return(&domain.Allocation{}, nil)
	portfolioService.EXPECT().RecalculateWeights(gomock.Any(), domain.SystemActor, e.FundID).Return(map[uuid.UUID]decimal.Decimal{}, nil)

	require.NoError(t, handler.HandleAllocationUpdated(context.Background(), e))
}

func Test_recomputeAppHandler_RunDailySweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	performanceService := mock_service.NewMockPerformanceService(ctrl)
	portfolioService := mock_service.NewMockPortfolioService(ctrl)
	callSweepService := mock_service.NewMockCallSweepService(ctrl)
	allocationRepository := mock_repository.NewMockAllocationRepository(ctrl)
	handler := NewRecomputeApp(performanceService, portfolioService, callSweepService, allocationRepository)

	asOf := domain.MustDate("2024-03-15")
	fundID := uuid.New()
	open := domain.Allocation{AllocationID: uuid.New(), FundID: fundID, Status: domain.AllocationStatusInvested}
	review := domain.Allocation{AllocationID: uuid.New(), FundID: fundID, Status: domain.AllocationStatusFunded}
	failing := domain.Allocation{AllocationID: uuid.New(), FundID: fundID, Status: domain.AllocationStatusFunded}
	closed := domain.Allocation{AllocationID: uuid.New(), FundID: fundID, Status: domain.AllocationStatusClosed}

	callSweepService.EXPECT().AdvanceCalls(gomock.Any(), domain.SystemActor, asOf).Return(&service.SweepResult{AsOf: asOf}, nil)
	allocationRepository.EXPECT().List(gomock.Any(), repository.AllocationListFilter{}).Return([]domain.Allocation{open, review, failing, closed}, nil)
	performanceService.EXPECT().RefreshMetrics(gomock.Any(), open.AllocationID).Return(&open, nil)
	flagged := review
	flagged.IrrNeedsReview = true
	performanceService.EXPECT().RefreshMetrics(gomock.Any(), review.AllocationID).Return(&flagged, nil)
	performanceService.EXPECT().RefreshMetrics(gomock.Any(), failing.AllocationID).Return(nil, errors.New("boom"))
	portfolioService.EXPECT().RecalculateWeights(gomock.Any(), domain.SystemActor, fundID).Return(map[uuid.UUID]decimal.Decimal{}, nil)

	summary, err := handler.RunDailySweep(context.Background(), asOf)
	require.NoError(t, err)
	require.Equal(t, 2, summary.RefreshedCount)
	require.Equal(t, 1, summary.RefreshFailedCount)
	require.Equal(t, 1, summary.ReweightedFunds)
	require.Equal(t, []uuid.UUID{review.AllocationID}, summary.IrrNeedsReviewIDs)
}

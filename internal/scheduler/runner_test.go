package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fundtrack/internal/app"
	mock_app "fundtrack/internal/app/mocks"
	"fundtrack/internal/domain"
	"fundtrack/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunner_Add(t *testing.T) {
	t.Run("accepts descriptors", func(t *testing.T) {
		r := New(zap.NewNop().Sugar(), context.Background())
		_, err := r.Add("@daily", func(context.Context) {})
		require.NoError(t, err)
		_, err = r.Add("30 6 * * *", func(context.Context) {})
		require.NoError(t, err)
		require.Len(t, r.Entries(), 2)
	})

	t.Run("rejects bad spec", func(t *testing.T) {
		r := New(zap.NewNop().Sugar(), context.Background())
		_, err := r.Add("every tuesday", func(context.Context) {})
		require.Error(t, err)
		require.Empty(t, r.Entries())
	})

	t.Run("start and stop", func(t *testing.T) {
		r := New(zap.NewNop().Sugar(), nil)
		_, err := r.Add("@hourly", func(context.Context) {})
		require.NoError(t, err)
		r.Start()
		r.Stop()
	})
}

func TestSweepJob(t *testing.T) {
	clock := domain.FixedClock{At: time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)}

	t.Run("runs the sweep as of today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recomputeApp := mock_app.NewMockRecomputeApp(ctrl)
		core, logs := observer.New(zapcore.InfoLevel)

		recomputeApp.EXPECT().
			RunDailySweep(gomock.Any(), domain.NewDate(2024, 3, 15)).
			Return(&app.DailySweepSummary{
				Sweep:             service.SweepResult{AsOf: domain.NewDate(2024, 3, 15), Called: []domain.CapitalCall{{}}},
				RefreshedCount:    3,
				ReweightedFunds:   1,
				IrrNeedsReviewIDs: []uuid.UUID{uuid.New()},
			}, nil)

		SweepJob(recomputeApp, clock, zap.New(core).Sugar())(context.Background())

		require.Equal(t, 1, logs.FilterMessage("daily sweep finished").Len())
		fields := logs.All()[0].ContextMap()
		require.Equal(t, int64(1), fields["called"])
		require.Equal(t, int64(3), fields["refreshed"])
		require.Equal(t, int64(1), fields["irrNeedsReview"])
	})

	t.Run("logs failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recomputeApp := mock_app.NewMockRecomputeApp(ctrl)
		core, logs := observer.New(zapcore.InfoLevel)

		recomputeApp.EXPECT().
			RunDailySweep(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to list sweep candidates: boom"))

		SweepJob(recomputeApp, clock, zap.New(core).Sugar())(context.Background())

		require.Equal(t, 1, logs.FilterMessage("daily sweep failed").Len())
	})
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"fundtrack/internal/app"
	"fundtrack/internal/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Runner struct {
	cron    *cron.Cron
	logger  *zap.SugaredLogger
	baseCtx context.Context
}

// New builds a runner on the standard five field cron parser, which also
// accepts descriptors such as @daily.
func New(logger *zap.SugaredLogger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		job(r.baseCtx)
	})
	if err != nil {
		return 0, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return id, nil
}

func (r *Runner) Entries() []cron.Entry {
	return r.cron.Entries()
}

func (r *Runner) Start() {
	r.logger.Info("cron started")
	r.cron.Start()
}

// Stop waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("cron stopped")
}

// SweepJob runs the daily call sweep and recomputation as of the clock's day.
func SweepJob(recomputeApp app.RecomputeApp, clock domain.Clock, logger *zap.SugaredLogger) func(context.Context) {
	return func(ctx context.Context) {
		asOf := domain.Today(clock)
		summary, err := recomputeApp.RunDailySweep(ctx, asOf)
		if err != nil {
			logger.Errorw("daily sweep failed", "asOf", asOf.String(), "error", err)
			return
		}
		logger.Infow("daily sweep finished",
			"asOf", asOf.String(),
			"called", len(summary.Sweep.Called),
			"defaulted", len(summary.Sweep.Defaulted),
			"sweepFailures", len(summary.Sweep.Failures),
			"refreshed", summary.RefreshedCount,
			"refreshFailures", summary.RefreshFailedCount,
			"reweightedFunds", summary.ReweightedFunds,
			"irrNeedsReview", len(summary.IrrNeedsReviewIDs),
		)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fundtrack/cmd"
	"fundtrack/internal/domain"
	"fundtrack/internal/scheduler"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := scheduler.New(deps.Logger, ctx)
	spec := deps.Secrets.Scheduler.Cron
	_, err = runner.Add(spec, scheduler.SweepJob(deps.RecomputeApp, domain.SystemClock{}, deps.Logger))
	if err != nil {
		deps.Logger.Errorw("failed to schedule sweep", "cron", spec, "error", err)
		return
	}

	deps.Logger.Infow("scheduled daily sweep", "cron", spec)
	runner.Start()
	<-ctx.Done()
	runner.Stop()
}

package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"fundtrack/api"
	"fundtrack/internal/app"
	"fundtrack/internal/domain"
	"fundtrack/internal/logger"
	"fundtrack/internal/repository"
	"fundtrack/internal/service"
	"fundtrack/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

// Dependencies is everything a binary needs. Built once per process.
type Dependencies struct {
	Secrets      *util.Secrets
	Logger       *zap.SugaredLogger
	Db           *sql.DB
	Publisher    *service.AsyncPublisher
	RecomputeApp app.RecomputeApp
	ApiHandler   *api.ApiHandler

	FundRepository repository.FundRepository
	DealRepository repository.DealRepository
}

func CloseDependencies(deps *Dependencies) {
	// drain pending recomputation before the pool goes away
	deps.Publisher.Close()
	if err := deps.Db.Close(); err != nil {
		deps.Logger.Errorw("failed to close db", "error", err)
	}
	_ = deps.Logger.Sync()
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	log := logger.New(logger.ConfigFromEnv())

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	clock := domain.SystemClock{}
	timeout := secrets.Engine.OperationTimeout
	transactor := repository.NewTransactor(dbConn, secrets.Engine.MaxTxRetries)

	allocationRepository := repository.NewAllocationRepository(dbConn)
	capitalCallRepository := repository.NewCapitalCallRepository(dbConn)
	paymentRepository := repository.NewPaymentRepository(dbConn)
	distributionRepository := repository.NewDistributionRepository(dbConn)
	fundRepository := repository.NewFundRepository(dbConn)
	dealRepository := repository.NewDealRepository(dbConn)
	transitionRepository := repository.NewAllocationTransitionRepository(dbConn)

	notifier := service.NoopNotifier
	if secrets.SES.Region != "" && secrets.SES.FromEmail != "" {
		emailRepository, err := repository.NewEmailRepository(context.Background(), secrets.SES.Region, secrets.SES.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
		notifier = service.NewEmailService(emailRepository)
	} else {
		log.Infow("ses not configured, notifications disabled")
	}

	publisher := service.NewAsyncPublisher(secrets.Engine.EventBuffer, log)

	scheduleConfig := domain.ScheduleConfig{
		GracePeriodDays:       secrets.Engine.GracePeriodDays,
		DefaultCallPercentage: decimal.NewFromFloat(secrets.Engine.DefaultCallPercentage),
	}

	allocationService := service.NewAllocationService(
		transactor,
		timeout,
		allocationRepository,
		fundRepository,
		dealRepository,
		transitionRepository,
		publisher,
		clock,
	)
	scheduleService := service.NewScheduleService(
		transactor,
		timeout,
		scheduleConfig,
		allocationRepository,
		capitalCallRepository,
		transitionRepository,
		publisher,
		clock,
	)
	paymentService := service.NewPaymentService(
		transactor,
		timeout,
		allocationRepository,
		capitalCallRepository,
		paymentRepository,
		distributionRepository,
		transitionRepository,
		publisher,
		clock,
	)
	distributionService := service.NewDistributionService(
		transactor,
		timeout,
		allocationRepository,
		distributionRepository,
		fundRepository,
		notifier,
		publisher,
		clock,
	)
	performanceService := service.NewPerformanceService(
		transactor,
		timeout,
		allocationRepository,
		paymentRepository,
		distributionRepository,
		publisher,
		clock,
	)
	portfolioService := service.NewPortfolioService(
		transactor,
		timeout,
		fundRepository,
		dealRepository,
		allocationRepository,
	)
	callSweepService := service.NewCallSweepService(
		transactor,
		timeout,
		allocationRepository,
		capitalCallRepository,
		fundRepository,
		notifier,
		publisher,
		clock,
	)

	recomputeApp := app.NewRecomputeApp(
		performanceService,
		portfolioService,
		callSweepService,
		allocationRepository,
	)
	publisher.Subscribe(recomputeApp.HandleAllocationUpdated)
	go publisher.Run(context.Background())

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		AllocationService:    allocationService,
		ScheduleService:      scheduleService,
		PaymentService:       paymentService,
		DistributionService:  distributionService,
		PerformanceService:   performanceService,
		PortfolioService:     portfolioService,
		CallSweepService:     callSweepService,
		Clock:                clock,
		JwtDecodeToken:       secrets.Jwt,
		Logger:               log,
	}

	return &Dependencies{
		Secrets:        secrets,
		Logger:         log,
		Db:             dbConn,
		Publisher:      publisher,
		RecomputeApp:   recomputeApp,
		ApiHandler:     apiHandler,
		FundRepository: fundRepository,
		DealRepository: dealRepository,
	}, nil
}

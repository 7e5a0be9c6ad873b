package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fundtrack/internal/db/models/postgres/public/model"
	"fundtrack/internal/domain"
	"fundtrack/internal/logger"
	"fundtrack/internal/repository"
	"fundtrack/internal/service"
	"fundtrack/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                   *sql.DB
	ApiRequestRepository repository.ApiRequestRepository
	AllocationService    service.AllocationService
	ScheduleService      service.ScheduleService
	PaymentService       service.PaymentService
	DistributionService  service.DistributionService
	PerformanceService   service.PerformanceService
	PortfolioService     service.PortfolioService
	CallSweepService     service.CallSweepService
	Clock                domain.Clock
	JwtDecodeToken       string
	Logger               *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundtrack"})
	})

	authed := router.Group("/")
	authed.Use(m.authMiddleware)

	authed.POST("/allocations", m.createAllocation)
	authed.GET("/allocations/:id", m.getAllocation)
	authed.POST("/allocations/:id/transition", m.transitionAllocation)
	authed.GET("/allocations/:id/transitions", m.getAllocationTransitions)
	authed.POST("/allocations/:id/schedule", m.generateSchedule)
	authed.GET("/allocations/:id/capital-calls", m.listCapitalCalls)
	authed.POST("/allocations/:id/distributions", m.recordDistribution)
	authed.PUT("/allocations/:id/market-value", m.updateMarketValue)
	authed.GET("/allocations/:id/metrics", m.getMetrics)
	authed.POST("/capital-calls/advance", m.advanceCalls)
	authed.POST("/capital-calls/:id/payments", m.applyPayment)
	authed.POST("/funds/:id/recalculate-weights", m.recalculateWeights)
	authed.GET("/funds/:id/diversification", m.getDiversification)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) log() *zap.SugaredLogger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.S()
}

func (m ApiHandler) today() domain.Date {
	if m.Clock == nil {
		return domain.Today(domain.SystemClock{})
	}
	return domain.Today(m.Clock)
}

type errorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// errorStatus maps engine errors onto http codes. Anything unrecognized is a 500.
func errorStatus(err error) int {
	var (
		notFound          domain.NotFoundError
		invalidTransition domain.InvalidTransitionError
		invalidSchedule   domain.InvalidScheduleError
		mismatch          domain.ScheduleAmountMismatchError
		overpayment       domain.OverpaymentError
		invalidPayment    domain.InvalidPaymentError
		invalidDist       domain.InvalidDistributionError
		invalidAlloc      domain.InvalidAllocationError
		forbidden         domain.ForbiddenError
		transient         domain.TransientError
		malformed         badRequestError
	)
	switch {
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalidTransition):
		return http.StatusConflict
	case errors.As(err, &invalidSchedule),
		errors.As(err, &mismatch),
		errors.As(err, &overpayment),
		errors.As(err, &invalidPayment),
		errors.As(err, &invalidDist),
		errors.As(err, &invalidAlloc):
		return http.StatusUnprocessableEntity
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &transient):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorDetails(err error) map[string]any {
	var (
		notFound          domain.NotFoundError
		invalidTransition domain.InvalidTransitionError
		mismatch          domain.ScheduleAmountMismatchError
		overpayment       domain.OverpaymentError
	)
	switch {
	case errors.As(err, &notFound):
		return map[string]any{"entity": notFound.Entity, "id": notFound.ID}
	case errors.As(err, &invalidTransition):
		return map[string]any{
			"allocationID": invalidTransition.AllocationID,
			"from":         invalidTransition.From,
			"event":        invalidTransition.Event,
		}
	case errors.As(err, &mismatch):
		return map[string]any{"expected": mismatch.Expected, "got": mismatch.Got}
	case errors.As(err, &overpayment):
		return map[string]any{
			"capitalCallID": overpayment.CallID,
			"attempted":     overpayment.Attempted,
			"remaining":     overpayment.Remaining,
		}
	}
	return nil
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	l := logger.FromContext(c.Request.Context())
	if code >= 500 {
		l.Errorw("request failed", "status", code, "error", err.Error())
	} else {
		l.Infow("request rejected", "status", code, "error", err.Error())
	}
	c.AbortWithStatusJSON(code, errorResponse{
		Error:   err.Error(),
		Details: errorDetails(err),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	requestID := uuid.New()
	ctx.Header("X-Request-ID", requestID.String())
	l := m.log().With("requestID", requestID.String())
	ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context(), l))

	body, err := ctx.GetRawData()
	if err != nil {
		l.Warnw("failed to get raw data", "error", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	var req *model.APIRequest
	if m.Db != nil && m.ApiRequestRepository != nil {
		req, err = m.ApiRequestRepository.Add(m.Db, model.APIRequest{
			RequestID:   requestID,
			IPAddress:   util.StringPointer(ctx.ClientIP()),
			Method:      ctx.Request.Method,
			Route:       ctx.Request.URL.Path,
			RequestBody: util.StringPointer(string(body)),
			StartTs:     start,
		})
		if err != nil {
			l.Warnw("failed to record api request", "error", err)
		}
	}

	ctx.Next()

	status := ctx.Writer.Status()
	l.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.FullPath(),
		"status", status,
		"latencyMs", util.MillisSince(start),
	)

	if req != nil {
		if actor, ok := actorFromContext(ctx); ok {
			req.UserID = &actor.UserID
		}
		req.DurationMs = util.Ptr(util.MillisSince(start))
		req.StatusCode = util.Ptr(int32(status))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			l.Warnw("failed to update api request", "error", err)
		}
	}
}

const actorKey = "actor"

func (m ApiHandler) authMiddleware(c *gin.Context) {
	actor, err := actorFromRequest(c.Request, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}
	c.Set(actorKey, actor)
	c.Next()
}

func actorFromContext(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

func mustActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := actorFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("must be logged in"), c, http.StatusUnauthorized)
	}
	return actor, ok
}

// badRequestError marks malformed input that never reached the engine.
type badRequestError struct {
	err error
}

func (e badRequestError) Error() string { return e.err.Error() }
func (e badRequestError) Unwrap() error { return e.err }

func badRequest(format string, args ...any) error {
	return badRequestError{err: fmt.Errorf(format, args...)}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		returnErrorJson(badRequest("invalid %s %q: %w", name, c.Param(name), err), c)
		return uuid.Nil, false
	}
	return id, true
}

func bindJson(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		returnErrorJson(badRequest("failed to parse request body: %w", err), c)
		return false
	}
	return true
}

// asOfQuery reads an optional YYYY-MM-DD asOf query param, defaulting to today.
func (m ApiHandler) asOfQuery(c *gin.Context) (domain.Date, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return m.today(), true
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		returnErrorJson(badRequest("invalid asOf: %w", err), c)
		return domain.Date{}, false
	}
	return d, true
}

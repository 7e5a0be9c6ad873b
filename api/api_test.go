package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fundtrack/internal/domain"
	"fundtrack/internal/service"
	mock_service "fundtrack/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJwtSecret = "test-secret"

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApi struct {
	handler      ApiHandler
	allocations  *mock_service.MockAllocationService
	schedules    *mock_service.MockScheduleService
	payments     *mock_service.MockPaymentService
	distribution *mock_service.MockDistributionService
	performance  *mock_service.MockPerformanceService
	portfolio    *mock_service.MockPortfolioService
	sweep        *mock_service.MockCallSweepService
}

func newTestApi(t *testing.T) testApi {
	ctrl := gomock.NewController(t)
	ta := testApi{
		allocations:  mock_service.NewMockAllocationService(ctrl),
		schedules:    mock_service.NewMockScheduleService(ctrl),
		payments:     mock_service.NewMockPaymentService(ctrl),
		distribution: mock_service.NewMockDistributionService(ctrl),
		performance:  mock_service.NewMockPerformanceService(ctrl),
		portfolio:    mock_service.NewMockPortfolioService(ctrl),
		sweep:        mock_service.NewMockCallSweepService(ctrl),
	}
	ta.handler = ApiHandler{
		AllocationService:   ta.allocations,
		ScheduleService:     ta.schedules,
		PaymentService:      ta.payments,
		DistributionService: ta.distribution,
		PerformanceService:  ta.performance,
		PortfolioService:    ta.portfolio,
		CallSweepService:    ta.sweep,
		Clock:               domain.FixedClock{At: testNow},
		JwtDecodeToken:      testJwtSecret,
	}
	return ta
}

func signToken(t *testing.T, userID uuid.UUID, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	if role != "" {
		claims["app_metadata"] = map[string]any{"fund_role": role}
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJwtSecret))
	require.NoError(t, err)
	return token
}

func (ta testApi) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ta.handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testAllocation(status domain.AllocationStatus) domain.Allocation {
	return domain.Allocation{
		AllocationID:      uuid.New(),
		FundID:            uuid.New(),
		DealID:            uuid.New(),
		SecurityType:      domain.SecurityTypeEquity,
		Currency:          "USD",
		CommittedAmount:   domain.MustMoney("1000000"),
		PaidAmount:        domain.ZeroMoney,
		OutstandingAmount: domain.MustMoney("1000000"),
		MarketValue:       domain.ZeroMoney,
		Moic:              decimal.NewFromInt(1),
		Status:            status,
		CreatedAt:         testNow,
		UpdatedAt:         testNow,
	}
}

func TestErrorStatus(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.NewAllocationNotFound(id), 404},
		{"wrapped not found", fmt.Errorf("failed to get allocation: %w", domain.NewCallNotFound(id)), 404},
		{"invalid transition", domain.InvalidTransitionError{AllocationID: id}, 409},
		{"invalid schedule", domain.InvalidScheduleError{AllocationID: id}, 422},
		{"schedule mismatch", domain.ScheduleAmountMismatchError{AllocationID: id}, 422},
		{"overpayment", domain.OverpaymentError{CallID: id}, 422},
		{"invalid payment", domain.InvalidPaymentError{CallID: id}, 422},
		{"invalid distribution", domain.InvalidDistributionError{AllocationID: id}, 422},
		{"invalid allocation", domain.InvalidAllocationError{}, 422},
		{"forbidden", domain.ForbiddenError{ActorID: id}, 403},
		{"transient", domain.TransientError{Op: "tx", Err: fmt.Errorf("40001")}, 503},
		{"bad request", badRequest("nope"), 400},
		{"unknown", fmt.Errorf("boom"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.code, errorStatus(tc.err))
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ta := newTestApi(t)
		w := ta.do(t, "GET", "/allocations/"+uuid.NewString(), "", nil)
		require.Equal(t, 401, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		ta := newTestApi(t)
		ta.handler.JwtDecodeToken = "other-secret"
		token := signToken(t, uuid.New(), "manager", time.Now().Add(time.Hour))
		w := ta.do(t, "GET", "/allocations/"+uuid.NewString(), token, nil)
		require.Equal(t, 401, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		ta := newTestApi(t)
		token := signToken(t, uuid.New(), "manager", time.Now().Add(-time.Hour))
		w := ta.do(t, "GET", "/allocations/"+uuid.NewString(), token, nil)
		require.Equal(t, 401, w.Code)
	})

	t.Run("role defaults to viewer", func(t *testing.T) {
		ta := newTestApi(t)
		userID := uuid.New()
		a := testAllocation(domain.AllocationStatusCommitted)
		ta.allocations.EXPECT().
			Get(gomock.Any(), domain.Actor{UserID: userID, Role: domain.RoleViewer}, a.AllocationID).
			Return(&a, nil)

		token := signToken(t, userID, "", time.Now().Add(time.Hour))
		w := ta.do(t, "GET", "/allocations/"+a.AllocationID.String(), token, nil)
		require.Equal(t, 200, w.Code)
		require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestActorFromClaims(t *testing.T) {
	userID := uuid.New()

	t.Run("known role", func(t *testing.T) {
		actor, err := actorFromClaims(AccessTokenClaims{Subject: userID.String(), AppMetadata: AppMetadata{FundRole: "Admin"}})
		require.NoError(t, err)
		require.Equal(t, domain.Actor{UserID: userID, Role: domain.RoleAdmin}, actor)
	})

	t.Run("unknown role is viewer", func(t *testing.T) {
		actor, err := actorFromClaims(AccessTokenClaims{Subject: userID.String(), AppMetadata: AppMetadata{FundRole: "owner"}})
		require.NoError(t, err)
		require.Equal(t, domain.RoleViewer, actor.Role)
	})

	t.Run("subject must be a uuid", func(t *testing.T) {
		_, err := actorFromClaims(AccessTokenClaims{Subject: "someone"})
		require.Error(t, err)
	})
}

func TestCreateAllocation(t *testing.T) {
	userID := uuid.New()
	manager := domain.Actor{UserID: userID, Role: domain.RoleManager}

	t.Run("happy path", func(t *testing.T) {
		ta := newTestApi(t)
		a := testAllocation(domain.AllocationStatusCommitted)
		ta.allocations.EXPECT().
			Create(gomock.Any(), manager, domain.NewAllocationInput{
				FundID:          a.FundID,
				DealID:          a.DealID,
				SecurityType:    domain.SecurityTypeEquity,
				CommittedAmount: domain.MustMoney("1000000"),
			}).
			Return(&a, nil)

		token := signToken(t, userID, "manager", time.Now().Add(time.Hour))
		w := ta.do(t, "POST", "/allocations", token, map[string]any{
			"fundID":          a.FundID,
			"dealID":          a.DealID,
			"securityType":    "equity",
			"committedAmount": "1000000",
		})

		require.Equal(t, 201, w.Code)
		body := decodeBody(t, w)
		require.Equal(t, "committed", body["status"])
		require.Equal(t, "1000000.00", body["committedAmount"])
		require.Equal(t, a.AllocationID.String(), body["allocationID"])
	})

	t.Run("invalid allocation is 422", func(t *testing.T) {
		ta := newTestApi(t)
		ta.allocations.EXPECT().
			Create(gomock.Any(), manager, gomock.Any()).
			Return(nil, domain.InvalidAllocationError{Reason: "committed amount must be > 0, got 0.00"})

		token := signToken(t, userID, "manager", time.Now().Add(time.Hour))
		w := ta.do(t, "POST", "/allocations", token, map[string]any{
			"fundID":          uuid.New(),
			"dealID":          uuid.New(),
			"committedAmount": 0,
		})

		require.Equal(t, 422, w.Code)
		require.Contains(t, decodeBody(t, w)["error"], "committed amount must be > 0")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		ta := newTestApi(t)
		token := signToken(t, userID, "manager", time.Now().Add(time.Hour))
		w := ta.do(t, "POST", "/allocations", token, map[string]any{"committedAmount": "lots"})
		require.Equal(t, 400, w.Code)
	})
}

func TestTransitionAllocation(t *testing.T) {
	userID := uuid.New()
	token := func(t *testing.T) string { return signToken(t, userID, "manager", time.Now().Add(time.Hour)) }

	t.Run("unknown event is 400", func(t *testing.T) {
		ta := newTestApi(t)
		w := ta.do(t, "POST", "/allocations/"+uuid.NewString()+"/transition", token(t), map[string]any{"event": "explode"})
		require.Equal(t, 400, w.Code)
	})

	t.Run("invalid transition is 409 with details", func(t *testing.T) {
		ta := newTestApi(t)
		id := uuid.New()
		ta.allocations.EXPECT().
			Transition(gomock.Any(), gomock.Any(), id, domain.EventFullExit).
			Return(nil, domain.InvalidTransitionError{
				AllocationID: id,
				From:         domain.AllocationStatusCommitted,
				Event:        domain.EventFullExit,
			})

		w := ta.do(t, "POST", "/allocations/"+id.String()+"/transition", token(t), map[string]any{"event": "fullExit"})

		require.Equal(t, 409, w.Code)
		details, ok := decodeBody(t, w)["details"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "committed", details["from"])
		require.Equal(t, "fullExit", details["event"])
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		ta := newTestApi(t)
		id := uuid.New()
		viewer := domain.Actor{UserID: userID, Role: domain.RoleViewer}
		ta.allocations.EXPECT().
			Transition(gomock.Any(), viewer, id, domain.EventWriteOff).
			Return(nil, viewer.Authorize("transition allocation"))

		viewerToken := signToken(t, userID, "viewer", time.Now().Add(time.Hour))
		w := ta.do(t, "POST", "/allocations/"+id.String()+"/transition", viewerToken, map[string]any{"event": "writeOff"})
		require.Equal(t, 403, w.Code)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		ta := newTestApi(t)
		w := ta.do(t, "POST", "/allocations/abc/transition", token(t), map[string]any{"event": "writeOff"})
		require.Equal(t, 400, w.Code)
	})
}

func TestGenerateSchedule(t *testing.T) {
	userID := uuid.New()
	ta := newTestApi(t)
	a := testAllocation(domain.AllocationStatusInvested)
	count := 4
	calls := []domain.CapitalCall{}
	for i := 0; i < count; i++ {
		callDate := domain.NewDate(2024, time.Month(1+3*i), 1)
		calls = append(calls, domain.CapitalCall{
			CapitalCallID: uuid.New(),
			AllocationID:  a.AllocationID,
			Sequence:      i + 1,
			CallAmount:    domain.MustMoney("250000"),
			AmountPaid:    domain.ZeroMoney,
			CallDate:      callDate,
			DueDate:       callDate.AddDays(30),
			Status:        domain.CapitalCallStatusScheduled,
		})
	}

	ta.schedules.EXPECT().
		Generate(gomock.Any(), gomock.Any(), a.AllocationID, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.Actor, _ uuid.UUID, spec domain.ScheduleSpec) (*service.ScheduleResult, error) {
			require.Equal(t, domain.ScheduleTypeQuarterly, spec.Type)
			require.Equal(t, domain.NewDate(2024, 1, 1), spec.FirstCallDate)
			require.Equal(t, 4, *spec.CallCount)
			return &service.ScheduleResult{Allocation: a, Calls: calls}, nil
		})

	w := ta.do(t, "POST", "/allocations/"+a.AllocationID.String()+"/schedule",
		signToken(t, userID, "admin", time.Now().Add(time.Hour)),
		map[string]any{"type": "quarterly", "firstCallDate": "2024-01-01", "callCount": 4},
	)

	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	got, ok := body["calls"].([]any)
	require.True(t, ok)
	require.Len(t, got, 4)
	first := got[0].(map[string]any)
	require.Equal(t, "2024-01-31", first["dueDate"])
	require.Equal(t, "250000.00", first["remaining"])
}

func TestApplyPayment(t *testing.T) {
	userID := uuid.New()
	callID := uuid.New()
	paymentID := uuid.New()

	result := func(a domain.Allocation, replayed bool) *service.PaymentResult {
		return &service.PaymentResult{
			Allocation: a,
			Call: domain.CapitalCall{
				CapitalCallID: callID,
				AllocationID:  a.AllocationID,
				Sequence:      1,
				CallAmount:    domain.MustMoney("250000"),
				AmountPaid:    domain.MustMoney("250000"),
				Status:        domain.CapitalCallStatusPaid,
			},
			Payment: domain.Payment{
				PaymentID:     paymentID,
				CapitalCallID: callID,
				AllocationID:  a.AllocationID,
				Amount:        domain.MustMoney("250000"),
				AppliedAmount: domain.MustMoney("250000"),
				PaymentDate:   domain.NewDate(2024, 3, 15),
			},
			Replayed: replayed,
		}
	}

	t.Run("defaults payment date to today", func(t *testing.T) {
		ta := newTestApi(t)
		a := testAllocation(domain.AllocationStatusPartiallyPaid)
		ta.payments.EXPECT().
			ApplyPayment(gomock.Any(), gomock.Any(), callID, domain.PaymentInput{
				PaymentID:   paymentID,
				Amount:      domain.MustMoney("250000"),
				PaymentDate: domain.NewDate(2024, 3, 15),
			}).
			Return(result(a, false), nil)

		w := ta.do(t, "POST", "/capital-calls/"+callID.String()+"/payments",
			signToken(t, userID, "manager", time.Now().Add(time.Hour)),
			map[string]any{"paymentID": paymentID, "amount": "250000"},
		)
		require.Equal(t, 201, w.Code)
		require.Equal(t, false, decodeBody(t, w)["replayed"])
	})

	t.Run("replay is 200", func(t *testing.T) {
		ta := newTestApi(t)
		a := testAllocation(domain.AllocationStatusPartiallyPaid)
		ta.payments.EXPECT().
			ApplyPayment(gomock.Any(), gomock.Any(), callID, gomock.Any()).
			Return(result(a, true), nil)

		w := ta.do(t, "POST", "/capital-calls/"+callID.String()+"/payments",
			signToken(t, userID, "manager", time.Now().Add(time.Hour)),
			map[string]any{"paymentID": paymentID, "amount": "250000", "paymentDate": "2024-03-15"},
		)
		require.Equal(t, 200, w.Code)
		require.Equal(t, true, decodeBody(t, w)["replayed"])
	})

	t.Run("overpayment is 422", func(t *testing.T) {
		ta := newTestApi(t)
		ta.payments.EXPECT().
			ApplyPayment(gomock.Any(), gomock.Any(), callID, gomock.Any()).
			Return(nil, domain.OverpaymentError{
				CallID:    callID,
				Attempted: domain.MustMoney("300000"),
				Remaining: domain.MustMoney("250000"),
			})

		w := ta.do(t, "POST", "/capital-calls/"+callID.String()+"/payments",
			signToken(t, userID, "manager", time.Now().Add(time.Hour)),
			map[string]any{"paymentID": paymentID, "amount": "300000"},
		)
		require.Equal(t, 422, w.Code)
		details := decodeBody(t, w)["details"].(map[string]any)
		require.Equal(t, "250000.00", details["remaining"])
	})

	t.Run("payment id is required", func(t *testing.T) {
		ta := newTestApi(t)
		w := ta.do(t, "POST", "/capital-calls/"+callID.String()+"/payments",
			signToken(t, userID, "manager", time.Now().Add(time.Hour)),
			map[string]any{"amount": "300000"},
		)
		require.Equal(t, 400, w.Code)
	})
}

func TestGetMetrics(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("non convergent irr is null", func(t *testing.T) {
		ta := newTestApi(t)
		ta.performance.EXPECT().
			ComputeMetrics(gomock.Any(), gomock.Any(), id, domain.NewDate(2024, 3, 15)).
			Return(&domain.PerformanceMetrics{
				AllocationID: id,
				AsOf:         domain.NewDate(2024, 3, 15),
				Moic:         decimal.RequireFromString("1.5"),
				IrrConverged: false,
				Warnings:     []string{"irr did not converge"},
			}, nil)

		w := ta.do(t, "GET", "/allocations/"+id.String()+"/metrics", signToken(t, userID, "viewer", time.Now().Add(time.Hour)), nil)
		require.Equal(t, 200, w.Code)
		body := decodeBody(t, w)
		require.Nil(t, body["irr"])
		require.Equal(t, "1.5", body["moic"])
		require.Equal(t, []any{"irr did not converge"}, body["warnings"])
	})

	t.Run("asOf query", func(t *testing.T) {
		ta := newTestApi(t)
		ta.performance.EXPECT().
			ComputeMetrics(gomock.Any(), gomock.Any(), id, domain.NewDate(2023, 12, 31)).
			Return(&domain.PerformanceMetrics{
				AllocationID: id,
				AsOf:         domain.NewDate(2023, 12, 31),
				Irr:          decimal.RequireFromString("0.12"),
				IrrConverged: true,
			}, nil)

		w := ta.do(t, "GET", "/allocations/"+id.String()+"/metrics?asOf=2023-12-31", signToken(t, userID, "viewer", time.Now().Add(time.Hour)), nil)
		require.Equal(t, 200, w.Code)
		body := decodeBody(t, w)
		require.Equal(t, "0.12", body["irr"])
		require.Equal(t, []any{}, body["warnings"])
	})

	t.Run("bad asOf is 400", func(t *testing.T) {
		ta := newTestApi(t)
		w := ta.do(t, "GET", "/allocations/"+id.String()+"/metrics?asOf=yesterday", signToken(t, userID, "viewer", time.Now().Add(time.Hour)), nil)
		require.Equal(t, 400, w.Code)
	})
}

func TestAdvanceCalls(t *testing.T) {
	userID := uuid.New()
	ta := newTestApi(t)
	failedID := uuid.New()
	ta.sweep.EXPECT().
		AdvanceCalls(gomock.Any(), gomock.Any(), domain.NewDate(2024, 3, 15)).
		Return(&service.SweepResult{
			AsOf:     domain.NewDate(2024, 3, 15),
			Failures: []service.SweepFailure{{AllocationID: failedID, Err: domain.TransientError{Op: "tx", Err: fmt.Errorf("deadlock")}}},
		}, nil)

	w := ta.do(t, "POST", "/capital-calls/advance", signToken(t, userID, "admin", time.Now().Add(time.Hour)), nil)
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "2024-03-15", body["asOf"])
	failures := body["failures"].([]any)
	require.Len(t, failures, 1)
	require.Equal(t, failedID.String(), failures[0].(map[string]any)["allocationID"])
}

func TestRecalculateWeights(t *testing.T) {
	userID := uuid.New()
	ta := newTestApi(t)
	fundID := uuid.New()
	small, large := uuid.New(), uuid.New()
	ta.portfolio.EXPECT().
		RecalculateWeights(gomock.Any(), gomock.Any(), fundID).
		Return(map[uuid.UUID]decimal.Decimal{
			small: decimal.RequireFromString("0.25"),
			large: decimal.RequireFromString("0.75"),
		}, nil)

	w := ta.do(t, "POST", "/funds/"+fundID.String()+"/recalculate-weights", signToken(t, userID, "manager", time.Now().Add(time.Hour)), nil)
	require.Equal(t, 200, w.Code)

	out := recalculateWeightsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, fundID, out.FundID)
	require.Len(t, out.Weights, 2)
	require.Equal(t, large, out.Weights[0].AllocationID)
	require.Equal(t, small, out.Weights[1].AllocationID)
}

func TestGetDiversification(t *testing.T) {
	userID := uuid.New()
	ta := newTestApi(t)
	fundID := uuid.New()
	ta.portfolio.EXPECT().
		Diversification(gomock.Any(), gomock.Any(), fundID).
		Return(nil, domain.NewFundNotFound(fundID))

	w := ta.do(t, "GET", "/funds/"+fundID.String()+"/diversification", signToken(t, userID, "viewer", time.Now().Add(time.Hour)), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	details := decodeBody(t, w)["details"].(map[string]any)
	require.Equal(t, "fund", details["entity"])
}

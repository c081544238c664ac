package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledger"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/scheduler"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func setupRouter(t *testing.T) (*chi.Mux, *ledger.Ledger, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l, err := ledger.New(context.Background(), ledger.NewMemStore(), zap.NewNop(), ledger.WithClock(clock))
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, l, scheduler.NewDeterministic(decimal.RequireFromString("0.001")), zap.NewNop())
	return r, l, clock
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSchedulePaymentEndpoint(t *testing.T) {
	router, _, clock := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/payments", SchedulePaymentRequest{
		Recipient:    "party::bob",
		Amount:       "25.5",
		DelaySeconds: 60,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SchedulePaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1), resp.ID)
	assert.Equal(t, "25.5", resp.Amount)
	assert.Equal(t, clock.now.Add(60*time.Second), resp.ScheduledTime.UTC())
}

func TestSchedulePaymentEndpoint_Invalid(t *testing.T) {
	router, _, _ := setupRouter(t)

	tests := []struct {
		name string
		body SchedulePaymentRequest
	}{
		{"missing recipient", SchedulePaymentRequest{Amount: "1"}},
		{"missing amount", SchedulePaymentRequest{Recipient: "party::bob"}},
		{"bad amount", SchedulePaymentRequest{Recipient: "party::bob", Amount: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/payments", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestExecutePaymentEndpoint(t *testing.T) {
	router, l, clock := setupRouter(t)

	id, err := l.SchedulePayment(context.Background(), "party::bob", decimal.RequireFromString("10"), 60*time.Second)
	require.NoError(t, err)

	// too early
	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/payments/%d/execute", id), nil)
	assert.Equal(t, http.StatusTooEarly, rec.Code)

	clock.now = clock.now.Add(61 * time.Second)
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/payments/%d/execute", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExecutePaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Executed)

	// replay conflicts
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/payments/%d/execute", id), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// unknown id
	rec = doJSON(t, router, http.MethodPost, "/api/v1/payments/99/execute", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAndGetPayments(t *testing.T) {
	router, l, _ := setupRouter(t)
	ctx := context.Background()

	_, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("1"), time.Minute)
	require.NoError(t, err)
	_, err = l.ScheduleBridgedPayment(ctx, "0xvault:5", "party::carol", decimal.RequireFromString("2"), time.Hour)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/payments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list ListPaymentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 2, list.Count)
	assert.Equal(t, uint64(1), list.Payments[0].ID)
	assert.Equal(t, uint64(2), list.Payments[1].ID)
	assert.Equal(t, "0xvault:5", list.Payments[1].OriginKey)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/payments/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payment PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, "party::carol", payment.Recipient)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/payments/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/payments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReadinessEndpoint(t *testing.T) {
	router, l, clock := setupRouter(t)

	id, err := l.SchedulePayment(context.Background(), "party::bob", decimal.RequireFromString("10"), 60*time.Second)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d/readiness?priority=high", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Ready)
	assert.Equal(t, "high", resp.Priority)
	assert.True(t, resp.EstimatedFee.Equal(decimal.RequireFromString("0.001")))

	clock.now = clock.now.Add(2 * time.Minute)
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d/readiness", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Ready)
	assert.True(t, resp.EstimatedFee.IsZero(), "no fee once the slot has passed")

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d/readiness?priority=urgent", id), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

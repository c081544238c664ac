package api

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
	apphttp "github.com/chandrabosep/flow-schedule-transaction/pkg/app/http"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledger"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/scheduler"
)

var validate = validator.New()

// Handler serves the scheduled payment endpoints
type Handler struct {
	ledger    *ledger.Ledger
	scheduler scheduler.TransactionScheduler
	logger    *zap.Logger
}

// RegisterRoutes registers the payment endpoints on the given chi router
func RegisterRoutes(r chi.Router, l *ledger.Ledger, sched scheduler.TransactionScheduler, logger *zap.Logger) {
	h := &Handler{
		ledger:    l,
		scheduler: sched,
		logger:    logger,
	}

	r.Route("/api/v1/payments", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.schedulePayment))
		r.Get("/", apphttp.HandleError(h.listPayments))
		r.Get("/{id}", apphttp.HandleError(h.getPayment))
		r.Post("/{id}/execute", apphttp.HandleError(h.executePayment))
		r.Get("/{id}/readiness", apphttp.HandleError(h.getReadiness))
	})
}

func (h *Handler) schedulePayment(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.InvalidArgumentError(err, "failed to read request")
	}

	var req SchedulePaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.InvalidArgumentError(err, "invalid JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return apperrors.InvalidArgumentError(err, "missing required fields")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return apperrors.InvalidArgumentError(err, "invalid amount")
	}

	id, err := h.ledger.SchedulePayment(r.Context(), req.Recipient,
		amount, time.Duration(req.DelaySeconds)*time.Second)
	if err != nil {
		return err
	}

	payment, err := h.ledger.GetScheduledPayment(r.Context(), id)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusCreated, &SchedulePaymentResponse{
		ID:            payment.ID,
		Recipient:     payment.Recipient,
		Amount:        payment.Amount.String(),
		ScheduledTime: payment.ScheduledTime,
	})
	return nil
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) error {
	all, err := h.ledger.GetAllScheduledPayments(r.Context())
	if err != nil {
		return err
	}

	payments := make([]PaymentResponse, 0, len(all))
	for _, p := range all {
		payments = append(payments, toPaymentResponse(&p))
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })

	h.writeJSON(w, http.StatusOK, &ListPaymentsResponse{
		Payments: payments,
		Count:    len(payments),
	})
	return nil
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) error {
	id, err := paymentID(r)
	if err != nil {
		return err
	}

	payment, err := h.ledger.GetScheduledPayment(r.Context(), id)
	if err != nil {
		return err
	}

	resp := toPaymentResponse(payment)
	h.writeJSON(w, http.StatusOK, &resp)
	return nil
}

func (h *Handler) executePayment(w http.ResponseWriter, r *http.Request) error {
	id, err := paymentID(r)
	if err != nil {
		return err
	}

	if err := h.ledger.ExecutePayment(r.Context(), id); err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, &ExecutePaymentResponse{ID: id, Executed: true})
	return nil
}

func (h *Handler) getReadiness(w http.ResponseWriter, r *http.Request) error {
	id, err := paymentID(r)
	if err != nil {
		return err
	}

	payment, err := h.ledger.GetScheduledPayment(r.Context(), id)
	if err != nil {
		return err
	}

	priority, err := parsePriority(r.URL.Query().Get("priority"))
	if err != nil {
		return err
	}
	effort := uint64(10)
	if raw := r.URL.Query().Get("effort"); raw != "" {
		effort, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return apperrors.InvalidArgumentError(err, "invalid effort")
		}
	}

	now := h.ledger.Now()

	// a fee only applies to slots still in the future
	fee := decimal.Zero
	if payment.ScheduledTime.After(now) && !payment.Executed {
		fee, err = h.scheduler.EstimateFee(r.Context(), payment.ScheduledTime, priority, effort)
		if err != nil {
			return err
		}
	}

	h.writeJSON(w, http.StatusOK, &ReadinessResponse{
		ID:            payment.ID,
		Ready:         !payment.Executed && ledger.Ready(payment, now),
		ScheduledTime: payment.ScheduledTime,
		Now:           now,
		Executed:      payment.Executed,
		EstimatedFee:  fee,
		Priority:      priority.String(),
	})
	return nil
}

func toPaymentResponse(p *ledger.ScheduledPayment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Sender:        p.Sender,
		Recipient:     p.Recipient,
		Amount:        p.Amount.String(),
		ScheduledTime: p.ScheduledTime,
		Executed:      p.Executed,
		OriginKey:     p.OriginKey,
	}
}

func paymentID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.InvalidArgumentError(err, "invalid payment id")
	}
	return id, nil
}

func parsePriority(raw string) (scheduler.Priority, error) {
	switch raw {
	case "", "medium":
		return scheduler.PriorityMedium, nil
	case "low":
		return scheduler.PriorityLow, nil
	case "high":
		return scheduler.PriorityHigh, nil
	default:
		return 0, apperrors.InvalidArgumentError(nil, "priority must be low, medium or high")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

// Package api exposes the scheduled payment ledger over HTTP.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchedulePaymentRequest is the body of POST /api/v1/payments
type SchedulePaymentRequest struct {
	Recipient    string `json:"recipient" validate:"required"`
	Amount       string `json:"amount" validate:"required"`
	DelaySeconds uint64 `json:"delay_seconds"`
}

// SchedulePaymentResponse is returned when a payment is created
type SchedulePaymentResponse struct {
	ID            uint64    `json:"id"`
	Recipient     string    `json:"recipient"`
	Amount        string    `json:"amount"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

// PaymentResponse describes one scheduled payment record
type PaymentResponse struct {
	ID            uint64    `json:"id"`
	Sender        string    `json:"sender"`
	Recipient     string    `json:"recipient"`
	Amount        string    `json:"amount"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Executed      bool      `json:"executed"`
	OriginKey     string    `json:"origin_key,omitempty"`
}

// ListPaymentsResponse is the body of GET /api/v1/payments
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Count    int               `json:"count"`
}

// ExecutePaymentResponse confirms an execution
type ExecutePaymentResponse struct {
	ID       uint64 `json:"id"`
	Executed bool   `json:"executed"`
}

// ReadinessResponse reports whether a payment can execute now, and the
// estimated fee for executing it at its scheduled slot.
type ReadinessResponse struct {
	ID            uint64          `json:"id"`
	Ready         bool            `json:"ready"`
	ScheduledTime time.Time       `json:"scheduled_time"`
	Now           time.Time       `json:"now"`
	Executed      bool            `json:"executed"`
	EstimatedFee  decimal.Decimal `json:"estimated_fee"`
	Priority      string          `json:"priority"`
}

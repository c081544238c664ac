// Package ledger implements the destination-side scheduled payment
// state machine: record creation, the time-based readiness gate, and
// exactly-once execution.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/internal/metrics"
	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
)

// TransferHook runs a downstream transfer primitive atomically with the
// executed flip: if the hook fails, the payment stays unexecuted.
type TransferHook func(ctx context.Context, payment *ScheduledPayment) error

// EventHandler receives ledger events synchronously, in emission order,
// on the goroutine of the mutating call.
type EventHandler func(event any)

// Ledger is the payment state machine. A single mutex serializes all
// mutating calls, mirroring the host ledger's single-writer semantics;
// no call blocks or suspends.
type Ledger struct {
	mu           sync.RWMutex
	payments     map[uint64]*ScheduledPayment
	originIndex  map[string]uint64
	nextID       uint64
	bridgeSender string

	store        Store
	clock        Clock
	transferHook TransferHook
	handlers     []EventHandler
	logger       *zap.Logger
}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock overrides the ledger clock (used by tests)
func WithClock(clock Clock) Option {
	return func(l *Ledger) { l.clock = clock }
}

// WithTransferHook wires a transfer primitive into ExecutePayment
func WithTransferHook(hook TransferHook) Option {
	return func(l *Ledger) { l.transferHook = hook }
}

// WithBridgeSender sets the sentinel sender recorded on
// bridge-originated payments
func WithBridgeSender(sender string) Option {
	return func(l *Ledger) { l.bridgeSender = sender }
}

// New creates a Ledger backed by the given store, restoring any
// previously persisted payments and the id counter.
func New(ctx context.Context, store Store, logger *zap.Logger, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		payments:     make(map[uint64]*ScheduledPayment),
		originIndex:  make(map[string]uint64),
		nextID:       1,
		bridgeSender: "bridge",
		store:        store,
		clock:        SystemClock{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(l)
	}

	existing, err := store.LoadPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	for i := range existing {
		p := existing[i]
		l.payments[p.ID] = &p
		if p.OriginKey != "" {
			l.originIndex[p.OriginKey] = p.ID
		}
		if p.ID >= l.nextID {
			l.nextID = p.ID + 1
		}
	}

	if len(existing) > 0 {
		logger.Info("Restored ledger state",
			zap.Int("payments", len(existing)),
			zap.Uint64("next_id", l.nextID))
	}

	return l, nil
}

// Subscribe registers an event handler. Handlers must be registered
// before the ledger starts taking calls; registration is not
// synchronized with mutation.
func (l *Ledger) Subscribe(handler EventHandler) {
	l.handlers = append(l.handlers, handler)
}

func (l *Ledger) emit(event any) {
	for _, h := range l.handlers {
		h(event)
	}
}

func validateSchedule(recipient string, amount decimal.Decimal, delay time.Duration) error {
	if recipient == "" {
		return apperrors.InvalidArgumentError(nil, "recipient must not be empty")
	}
	if amount.IsNegative() {
		return apperrors.InvalidArgumentError(nil, "amount must not be negative")
	}
	if delay < 0 {
		return apperrors.InvalidArgumentError(nil, "delay must not be negative")
	}
	return nil
}

// SchedulePayment creates a new scheduled payment and returns its id.
// The scheduled time is submission time plus delay on the ledger's own
// clock. Rejects invalid input before any state change.
func (l *Ledger) SchedulePayment(ctx context.Context, recipient string, amount decimal.Decimal, delay time.Duration) (uint64, error) {
	return l.schedule(ctx, recipient, amount, delay, "")
}

// ScheduleBridgedPayment is the relay's entry point. originKey is the
// (origin contract, origin request id) idempotency key: a repeat call
// with a key the ledger has already recorded returns the existing id
// without creating a second payment. This is what absorbs at-least-once
// delivery from the relay.
func (l *Ledger) ScheduleBridgedPayment(ctx context.Context, originKey, recipient string, amount decimal.Decimal, delay time.Duration) (uint64, error) {
	if originKey == "" {
		return 0, apperrors.InvalidArgumentError(nil, "origin key must not be empty")
	}
	return l.schedule(ctx, recipient, amount, delay, originKey)
}

func (l *Ledger) schedule(ctx context.Context, recipient string, amount decimal.Decimal, delay time.Duration, originKey string) (uint64, error) {
	if err := validateSchedule(recipient, amount, delay); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if originKey != "" {
		if id, ok := l.originIndex[originKey]; ok {
			l.logger.Debug("Duplicate origin key, returning existing payment",
				zap.String("origin_key", originKey),
				zap.Uint64("id", id))
			return id, nil
		}
	}

	payment := &ScheduledPayment{
		ID:            l.nextID,
		Sender:        l.bridgeSender,
		Recipient:     recipient,
		Amount:        amount,
		ScheduledTime: l.clock.Now().Add(delay),
		Executed:      false,
		OriginKey:     originKey,
	}

	if err := l.store.CreatePayment(ctx, payment); err != nil {
		return 0, apperrors.GeneralError(fmt.Errorf("failed to persist payment: %w", err))
	}

	l.payments[payment.ID] = payment
	if originKey != "" {
		l.originIndex[originKey] = payment.ID
	}
	l.nextID++

	metrics.PaymentsScheduled.Inc()
	l.emit(PaymentScheduled{
		ID:            payment.ID,
		Recipient:     payment.Recipient,
		Amount:        payment.Amount,
		ScheduledTime: payment.ScheduledTime,
	})

	l.logger.Info("Payment scheduled",
		zap.Uint64("id", payment.ID),
		zap.String("recipient", payment.Recipient),
		zap.String("amount", payment.Amount.String()),
		zap.Time("scheduled_time", payment.ScheduledTime))

	return payment.ID, nil
}

// ExecutePayment marks a payment executed once its scheduled time has
// been reached. The transfer hook, if any, runs before the flip and
// aborts it on failure so the flip and the transfer are all-or-nothing.
func (l *Ledger) ExecutePayment(ctx context.Context, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	payment, ok := l.payments[id]
	if !ok {
		return apperrors.NotFoundError(nil, fmt.Sprintf("no scheduled payment with id %d", id))
	}
	if payment.Executed {
		return apperrors.AlreadyExecutedError(fmt.Sprintf("payment %d already executed", id))
	}

	now := l.clock.Now()
	if !Ready(payment, now) {
		return apperrors.NotReadyError(fmt.Sprintf(
			"payment %d not executable until %s", id, payment.ScheduledTime.Format(time.RFC3339)))
	}

	if l.transferHook != nil {
		if err := l.transferHook(ctx, payment); err != nil {
			return apperrors.GeneralError(fmt.Errorf("transfer failed for payment %d: %w", id, err))
		}
	}

	if err := l.store.MarkExecuted(ctx, id, now); err != nil {
		return apperrors.GeneralError(fmt.Errorf("failed to persist execution of payment %d: %w", id, err))
	}

	payment.Executed = true

	metrics.PaymentsExecuted.Inc()
	l.emit(PaymentExecuted{ID: id, Success: true})

	l.logger.Info("Payment executed", zap.Uint64("id", id))
	return nil
}

// GetScheduledPayment returns a copy of the payment, or NotFound.
func (l *Ledger) GetScheduledPayment(_ context.Context, id uint64) (*ScheduledPayment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	payment, ok := l.payments[id]
	if !ok {
		return nil, apperrors.NotFoundError(nil, fmt.Sprintf("no scheduled payment with id %d", id))
	}
	copied := *payment
	return &copied, nil
}

// GetAllScheduledPayments returns a copy of every payment record keyed
// by id.
func (l *Ledger) GetAllScheduledPayments(_ context.Context) (map[uint64]ScheduledPayment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[uint64]ScheduledPayment, len(l.payments))
	for id, p := range l.payments {
		out[id] = *p
	}
	return out, nil
}

// Now returns the ledger clock's current time.
func (l *Ledger) Now() time.Time {
	return l.clock.Now()
}

// Ready is the readiness gate: a payment may execute once the current
// time has reached its scheduled time.
func Ready(payment *ScheduledPayment, now time.Time) bool {
	return !now.Before(payment.ScheduledTime)
}

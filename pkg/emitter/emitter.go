// Package emitter implements an in-process origin emitter with the
// same surface as the on-chain schedule vault: monotonic request ids,
// a ScheduleRequested event per accepted request, and a bridged flag
// flipped by the authorized relay. It backs local development and
// relay tests where no origin chain is available.
package emitter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
)

// ScheduleRequest is a stored origin-side schedule request
type ScheduleRequest struct {
	OriginID     uint64          `json:"originId"`
	Requester    string          `json:"requester"`
	Recipient    string          `json:"recipient"`
	Amount       decimal.Decimal `json:"amount"`
	DelaySeconds uint64          `json:"delaySeconds"`
	Timestamp    time.Time       `json:"timestamp"`
	Bridged      bool            `json:"bridged"`
}

// ScheduleRequested is emitted once per accepted request
type ScheduleRequested struct {
	OriginID     uint64
	Recipient    string
	Amount       decimal.Decimal
	DelaySeconds uint64
	Timestamp    time.Time
	Requester    string

	// synthetic chain coordinates so relay dedup keys work the same
	// way they do against the real vault
	BlockNumber uint64
	TxHash      string
}

// ScheduleBridged confirms the relay delivered a request. Emitted at
// most once per request, on the first successful MarkBridged.
type ScheduleBridged struct {
	OriginID uint64
}

// Emitter holds origin-side state. Mutating calls are serialized by a
// single mutex, mirroring the host ledger's ordering of contract calls.
type Emitter struct {
	mu              sync.Mutex
	requests        map[uint64]*ScheduleRequest
	nextID          uint64
	blockHeight     uint64
	log             []ScheduleRequested
	bridgedLog      []ScheduleBridged
	authorizedRelay string
	subscribers     []chan ScheduleRequested
	bridgedSubs     []chan ScheduleBridged
	logger          *zap.Logger
}

// New creates an emitter that accepts markBridged only from relayIdentity
func New(relayIdentity string, logger *zap.Logger) *Emitter {
	return &Emitter{
		requests:        make(map[uint64]*ScheduleRequest),
		nextID:          1,
		authorizedRelay: relayIdentity,
		logger:          logger,
	}
}

func validateRequest(recipient string, amount decimal.Decimal, delaySeconds uint64) error {
	if recipient == "" {
		return apperrors.InvalidArgumentError(nil, "recipient must not be empty")
	}
	if !amount.IsPositive() {
		return apperrors.InvalidArgumentError(nil, "amount must be positive")
	}
	if delaySeconds == 0 {
		return apperrors.InvalidArgumentError(nil, "delay must be positive")
	}
	return nil
}

// RequestSchedule stores a new schedule request and emits
// ScheduleRequested. Invalid input is rejected before any state change.
func (e *Emitter) RequestSchedule(_ context.Context, requester, recipient string, amount decimal.Decimal, delaySeconds uint64) (uint64, error) {
	if err := validateRequest(recipient, amount, delaySeconds); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.accept(requester, recipient, amount, delaySeconds), nil
}

// RequestScheduleBatch accepts parallel arrays of recipients, amounts
// and delays. Mismatched or empty arrays fail as a whole with
// ArgumentLengthMismatch before any element is processed. Otherwise
// elements are independent: results[i] holds the originId for element
// i, errs[i] its validation failure, and earlier accepted elements
// stay committed when a later one fails.
func (e *Emitter) RequestScheduleBatch(_ context.Context, requester string, recipients []string, amounts []decimal.Decimal, delays []uint64) ([]uint64, []error, error) {
	if len(recipients) == 0 {
		return nil, nil, apperrors.ArgumentLengthMismatchError("batch must not be empty")
	}
	if len(amounts) != len(recipients) || len(delays) != len(recipients) {
		return nil, nil, apperrors.ArgumentLengthMismatchError(fmt.Sprintf(
			"mismatched batch arrays: %d recipients, %d amounts, %d delays",
			len(recipients), len(amounts), len(delays),
		))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ids := make([]uint64, len(recipients))
	errs := make([]error, len(recipients))
	for i := range recipients {
		if err := validateRequest(recipients[i], amounts[i], delays[i]); err != nil {
			errs[i] = err
			continue
		}
		ids[i] = e.accept(requester, recipients[i], amounts[i], delays[i])
	}
	return ids, errs, nil
}

// accept assigns the next id, stores the request and emits the event.
// Caller holds e.mu.
func (e *Emitter) accept(requester, recipient string, amount decimal.Decimal, delaySeconds uint64) uint64 {
	id := e.nextID
	e.nextID++
	e.blockHeight++

	now := time.Now().UTC()
	e.requests[id] = &ScheduleRequest{
		OriginID:     id,
		Requester:    requester,
		Recipient:    recipient,
		Amount:       amount,
		DelaySeconds: delaySeconds,
		Timestamp:    now,
		Bridged:      false,
	}

	event := ScheduleRequested{
		OriginID:     id,
		Recipient:    recipient,
		Amount:       amount,
		DelaySeconds: delaySeconds,
		Timestamp:    now,
		Requester:    requester,
		BlockNumber:  e.blockHeight,
		TxHash:       syntheticTxHash(id),
	}
	e.log = append(e.log, event)
	for _, sub := range e.subscribers {
		select {
		case sub <- event:
		default:
			e.logger.Warn("dropping event for slow subscriber",
				zap.Uint64("origin_id", id))
		}
	}

	e.logger.Info("schedule requested",
		zap.Uint64("origin_id", id),
		zap.String("recipient", recipient),
		zap.String("amount", amount.String()),
		zap.Uint64("delay_seconds", delaySeconds))

	return id
}

// MarkBridged flips the bridged flag for a delivered request. Only the
// authorized relay identity may call it, and a request is only marked
// once; a second call fails with AlreadyBridged and emits nothing.
func (e *Emitter) MarkBridged(_ context.Context, caller string, originID uint64) error {
	if caller != e.authorizedRelay {
		return apperrors.UnauthorizedError(nil, fmt.Sprintf("identity %q may not mark requests bridged", caller))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.requests[originID]
	if !ok {
		return apperrors.NotFoundError(nil, fmt.Sprintf("schedule request %d not found", originID))
	}
	if req.Bridged {
		return apperrors.AlreadyBridgedError(fmt.Sprintf("schedule request %d already bridged", originID))
	}
	req.Bridged = true

	event := ScheduleBridged{OriginID: originID}
	e.bridgedLog = append(e.bridgedLog, event)
	for _, sub := range e.bridgedSubs {
		select {
		case sub <- event:
		default:
			e.logger.Warn("dropping bridged event for slow subscriber",
				zap.Uint64("origin_id", originID))
		}
	}

	e.logger.Info("schedule request bridged", zap.Uint64("origin_id", originID))
	return nil
}

// GetRequest returns a copy of a stored request
func (e *Emitter) GetRequest(_ context.Context, originID uint64) (*ScheduleRequest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.requests[originID]
	if !ok {
		return nil, apperrors.NotFoundError(nil, fmt.Sprintf("schedule request %d not found", originID))
	}
	out := *req
	return &out, nil
}

// NextRequestID returns the id the next accepted request will get
func (e *Emitter) NextRequestID() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextID
}

// BlockHeight returns the synthetic chain height
func (e *Emitter) BlockHeight() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blockHeight
}

// Subscribe returns a channel receiving future ScheduleRequested events
func (e *Emitter) Subscribe(buffer int) <-chan ScheduleRequested {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan ScheduleRequested, buffer)
	e.subscribers = append(e.subscribers, ch)
	return ch
}

// SubscribeBridged returns a channel receiving future ScheduleBridged
// confirmation events
func (e *Emitter) SubscribeBridged(buffer int) <-chan ScheduleBridged {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan ScheduleBridged, buffer)
	e.bridgedSubs = append(e.bridgedSubs, ch)
	return ch
}

// BridgedEvents returns every ScheduleBridged confirmation emitted so
// far, in emission order.
func (e *Emitter) BridgedEvents() []ScheduleBridged {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]ScheduleBridged, len(e.bridgedLog))
	copy(out, e.bridgedLog)
	return out
}

// EventsSince returns logged events with BlockNumber >= fromBlock, in
// emission order. Rescans replay overlapping ranges through this.
func (e *Emitter) EventsSince(fromBlock uint64) []ScheduleRequested {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []ScheduleRequested
	for _, ev := range e.log {
		if ev.BlockNumber >= fromBlock {
			out = append(out, ev)
		}
	}
	return out
}

func syntheticTxHash(id uint64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "local-origin-tx-%d", id))
	return "0x" + hex.EncodeToString(sum[:])
}

// Package relay turns origin-chain ScheduleRequested events into
// destination-ledger payments. Delivery is at-least-once: a dedup set
// keyed by (origin tx hash, origin id) suppresses replays the relay
// has already landed, and the ledger-side idempotency key absorbs the
// rest.
package relay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/internal/metrics"
	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/relaydb"
)

// Event is a normalized schedule request observed on the origin chain
type Event struct {
	OriginID     uint64
	OriginKey    string
	Recipient    string
	Amount       decimal.Decimal
	DelaySeconds uint64
	TxHash       string
	BlockNumber  uint64
}

// Source defines the interface for observing origin-chain events
type Source interface {
	// StreamEvents streams events starting after the given block
	StreamEvents(ctx context.Context, fromBlock uint64) (<-chan *Event, <-chan error)
	// FilterEvents returns events in the inclusive block range
	FilterEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*Event, error)
	// LatestBlock returns the current chain height
	LatestBlock(ctx context.Context) (uint64, error)
	// GetChainID returns the chain ID
	GetChainID() string
}

// PaymentLedger defines the destination ledger interface
type PaymentLedger interface {
	ScheduleBridgedPayment(ctx context.Context, originKey, recipient string, amount decimal.Decimal, delay time.Duration) (uint64, error)
}

// OriginMarker confirms delivery back on the origin chain
type OriginMarker interface {
	MarkBridged(ctx context.Context, originID uint64) error
}

// RelayStore defines the durable bookkeeping interface
type RelayStore interface {
	IsSeen(ctx context.Context, originTxHash string, originID int64) (bool, error)
	MarkSeen(ctx context.Context, originTxHash string, originID, paymentID int64) error
	GetCursor(ctx context.Context, chainID string) (int64, error)
	SetCursor(ctx context.Context, chainID string, lastBlock int64) error
	CreateSubmission(ctx context.Context, submission *relaydb.SubmissionDao) error
	UpdateSubmission(ctx context.Context, id string, status relaydb.SubmissionStatus, attempts int, paymentID *int64, lastError *string) error
}

// Engine orchestrates the relay: live subscription, periodic rescans,
// a bounded worker pool and retry with backoff.
type Engine struct {
	config *config.Config
	source Source
	ledger PaymentLedger
	marker OriginMarker
	store  RelayStore
	logger *zap.Logger

	mu   sync.Mutex
	seen map[string]struct{}

	jobs   chan *Event
	stopCh chan struct{}
	wg     sync.WaitGroup
	ready  atomic.Bool
}

// NewEngine creates a new relay engine
func NewEngine(
	cfg *config.Config,
	source Source,
	ledger PaymentLedger,
	marker OriginMarker,
	store RelayStore,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		config: cfg,
		source: source,
		ledger: ledger,
		marker: marker,
		store:  store,
		logger: logger,
		seen:   make(map[string]struct{}),
		jobs:   make(chan *Event, cfg.Relay.Workers*4),
		stopCh: make(chan struct{}),
	}
}

// Start starts the relay engine
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Starting relay engine",
		zap.String("chain", e.source.GetChainID()),
		zap.Int("workers", e.config.Relay.Workers))

	cursor, err := e.store.GetCursor(ctx, e.source.GetChainID())
	if err != nil {
		return fmt.Errorf("failed to load chain cursor: %w", err)
	}
	if cursor == 0 {
		cursor = e.config.Ethereum.StartBlock
	}

	for i := 0; i < e.config.Relay.Workers; i++ {
		e.wg.Add(1)
		go e.worker(ctx, i)
	}

	e.wg.Add(1)
	go e.stream(ctx, uint64(cursor))

	e.wg.Add(1)
	go e.rescan(ctx)

	e.ready.Store(true)
	e.logger.Info("Relay engine started", zap.Int64("cursor", cursor))
	return nil
}

// Stop stops the relay engine
func (e *Engine) Stop() {
	e.logger.Info("Stopping relay engine")
	e.ready.Store(false)
	close(e.stopCh)
	e.wg.Wait()
	e.logger.Info("Relay engine stopped")
}

// IsReady reports whether the engine is serving
func (e *Engine) IsReady() bool {
	return e.ready.Load()
}

func dedupKey(event *Event) string {
	return fmt.Sprintf("%s:%d", event.TxHash, event.OriginID)
}

// stream consumes the live subscription, resubscribing after errors.
// Gaps between subscriptions are covered by the rescan loop.
func (e *Engine) stream(ctx context.Context, fromBlock uint64) {
	defer e.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		default:
		}

		eventCh, errCh := e.source.StreamEvents(ctx, fromBlock)

	consume:
		for {
			select {
			case event, ok := <-eventCh:
				if !ok {
					// the source closes its channel when a watch
					// ends; resubscribe like any stream error
					break consume
				}
				metrics.EventsDetected.WithLabelValues("stream").Inc()
				if event.BlockNumber > fromBlock {
					fromBlock = event.BlockNumber
				}
				e.enqueue(ctx, event)
			case err := <-errCh:
				if err != nil {
					e.logger.Warn("Event stream failed, resubscribing",
						zap.Error(err))
					metrics.ErrorsTotal.WithLabelValues("stream", "subscription").Inc()
				}
				break consume
			case <-ctx.Done():
				return
			case <-e.stopCh:
				return
			}
		}

		select {
		case <-time.After(e.config.Ethereum.PollingInterval):
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		}
	}
}

// rescan periodically refilters the last N blocks to catch events the
// live subscription missed. Events are enqueued in observed order.
func (e *Engine) rescan(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.config.Relay.RescanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			if err := e.runRescan(ctx); err != nil {
				e.logger.Error("Rescan failed", zap.Error(err))
				metrics.ErrorsTotal.WithLabelValues("rescan", "filter").Inc()
			}
		}
	}
}

func (e *Engine) runRescan(ctx context.Context) error {
	latest, err := e.source.LatestBlock(ctx)
	if err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	from := uint64(0)
	if lookback := uint64(e.config.Ethereum.LookbackBlocks); latest > lookback {
		from = latest - lookback
	}

	events, err := e.source.FilterEvents(ctx, from, latest)
	if err != nil {
		return fmt.Errorf("failed to filter events: %w", err)
	}

	e.logger.Debug("Rescan pass",
		zap.Uint64("from_block", from),
		zap.Uint64("to_block", latest),
		zap.Int("events", len(events)))

	for _, event := range events {
		metrics.EventsDetected.WithLabelValues("rescan").Inc()
		e.enqueue(ctx, event)
	}

	if err := e.store.SetCursor(ctx, e.source.GetChainID(), int64(latest)); err != nil {
		return fmt.Errorf("failed to persist cursor: %w", err)
	}
	metrics.LastProcessedBlock.Set(float64(latest))
	return nil
}

// enqueue hands an event to the worker pool unless it is already in
// the seen set.
func (e *Engine) enqueue(ctx context.Context, event *Event) {
	key := dedupKey(event)

	e.mu.Lock()
	_, dup := e.seen[key]
	e.mu.Unlock()
	if dup {
		metrics.EventsSkipped.WithLabelValues("memory").Inc()
		return
	}

	seen, err := e.store.IsSeen(ctx, event.TxHash, int64(event.OriginID))
	if err != nil {
		e.logger.Warn("Failed to check seen set, event will be retried on next rescan",
			zap.String("key", key),
			zap.Error(err))
		metrics.ErrorsTotal.WithLabelValues("dedup", "store").Inc()
		return
	}
	if seen {
		e.mu.Lock()
		e.seen[key] = struct{}{}
		e.mu.Unlock()
		metrics.EventsSkipped.WithLabelValues("store").Inc()
		return
	}

	select {
	case e.jobs <- event:
	case <-ctx.Done():
	case <-e.stopCh:
	}
}

func (e *Engine) worker(ctx context.Context, id int) {
	defer e.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case event := <-e.jobs:
			// a replay may have been enqueued before the first
			// delivery finished
			e.mu.Lock()
			_, dup := e.seen[dedupKey(event)]
			e.mu.Unlock()
			if dup {
				metrics.EventsSkipped.WithLabelValues("memory").Inc()
				continue
			}

			if err := e.process(ctx, event); err != nil {
				e.logger.Error("Failed to deliver schedule request",
					zap.Int("worker", id),
					zap.Uint64("origin_id", event.OriginID),
					zap.String("tx_hash", event.TxHash),
					zap.Error(err))
			}
		}
	}
}

// process submits one event to the payment ledger, retrying transient
// failures with exponential backoff. Permanent failures are recorded
// and surfaced; the event stays out of the seen set so a manual fix
// re-triggers naturally on a later rescan.
func (e *Engine) process(ctx context.Context, event *Event) error {
	metrics.InFlightSubmissions.Inc()
	defer metrics.InFlightSubmissions.Dec()
	start := time.Now()

	submissionID := uuid.New().String()
	submission := &relaydb.SubmissionDao{
		ID:           submissionID,
		OriginTxHash: event.TxHash,
		OriginID:     int64(event.OriginID),
		Recipient:    event.Recipient,
		Amount:       event.Amount.String(),
		DelaySeconds: int64(event.DelaySeconds),
		Status:       string(relaydb.SubmissionStatusPending),
	}
	if err := e.store.CreateSubmission(ctx, submission); err != nil {
		e.logger.Warn("Failed to record submission", zap.Error(err))
	}

	delay := time.Duration(event.DelaySeconds) * time.Second
	attempts := 0

	for {
		attempts++

		paymentID, err := e.ledger.ScheduleBridgedPayment(ctx, event.OriginKey, event.Recipient, event.Amount, delay)
		if err == nil {
			e.commit(ctx, event, submissionID, attempts, paymentID)
			metrics.SubmissionsTotal.WithLabelValues("completed").Inc()
			metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
			return nil
		}

		if !apperrors.IsRetryable(err) {
			msg := err.Error()
			if updateErr := e.store.UpdateSubmission(ctx, submissionID, relaydb.SubmissionStatusFailed, attempts, nil, &msg); updateErr != nil {
				e.logger.Warn("Failed to record submission failure", zap.Error(updateErr))
			}
			metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
			metrics.ErrorsTotal.WithLabelValues("submit", "permanent").Inc()
			return fmt.Errorf("permanent submission failure for origin id %d: %w", event.OriginID, err)
		}

		if attempts > e.config.Relay.MaxRetries {
			msg := err.Error()
			if updateErr := e.store.UpdateSubmission(ctx, submissionID, relaydb.SubmissionStatusFailed, attempts, nil, &msg); updateErr != nil {
				e.logger.Warn("Failed to record submission failure", zap.Error(updateErr))
			}
			metrics.SubmissionsTotal.WithLabelValues("exhausted").Inc()
			metrics.ErrorsTotal.WithLabelValues("submit", "transient").Inc()
			return fmt.Errorf("retries exhausted for origin id %d: %w", event.OriginID, err)
		}

		metrics.SubmissionRetries.Inc()
		backoff := e.backoff(attempts)
		e.logger.Warn("Transient submission failure, backing off",
			zap.Uint64("origin_id", event.OriginID),
			zap.Int("attempt", attempts),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		case <-e.stopCh:
			return fmt.Errorf("engine stopped during retry for origin id %d", event.OriginID)
		}
	}
}

// commit records a successful delivery: seen set, submission audit,
// and best-effort markBridged back on the origin chain.
func (e *Engine) commit(ctx context.Context, event *Event, submissionID string, attempts int, paymentID uint64) {
	key := dedupKey(event)

	if err := e.store.MarkSeen(ctx, event.TxHash, int64(event.OriginID), int64(paymentID)); err != nil {
		e.logger.Warn("Failed to persist seen entry, ledger idempotency will absorb replays",
			zap.String("key", key),
			zap.Error(err))
	}
	e.mu.Lock()
	e.seen[key] = struct{}{}
	e.mu.Unlock()

	pid := int64(paymentID)
	if err := e.store.UpdateSubmission(ctx, submissionID, relaydb.SubmissionStatusCompleted, attempts, &pid, nil); err != nil {
		e.logger.Warn("Failed to record submission completion", zap.Error(err))
	}

	if err := e.marker.MarkBridged(ctx, event.OriginID); err != nil {
		// the request is delivered either way; dedup prevents a
		// second payment on replay
		e.logger.Warn("Failed to mark request bridged on origin chain",
			zap.Uint64("origin_id", event.OriginID),
			zap.Error(err))
		metrics.ErrorsTotal.WithLabelValues("mark_bridged", "origin").Inc()
	}

	e.logger.Info("Schedule request delivered",
		zap.Uint64("origin_id", event.OriginID),
		zap.Uint64("payment_id", paymentID),
		zap.String("tx_hash", event.TxHash),
		zap.Int("attempts", attempts))
}

func (e *Engine) backoff(attempt int) time.Duration {
	d := e.config.Relay.RetryBaseDelay << uint(attempt-1)
	if d > e.config.Relay.RetryMaxDelay || d <= 0 {
		d = e.config.Relay.RetryMaxDelay
	}
	return d
}

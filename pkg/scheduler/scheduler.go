// Package scheduler models the destination ledger's native time-locked
// execution facility as a capability interface, with a fee-table
// backing implementation and a deterministic test double. The ledger
// core never depends on which one is wired in.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
)

// Priority orders competing scheduled transactions at the same slot
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// multiplier returns the fee multiplier for a priority tier
func (p Priority) multiplier() decimal.Decimal {
	switch p {
	case PriorityHigh:
		return decimal.NewFromInt(10)
	case PriorityMedium:
		return decimal.NewFromInt(5)
	default:
		return decimal.NewFromInt(2)
	}
}

// ScheduleRequest asks the facility to run a transaction at a timestamp
type ScheduleRequest struct {
	Timestamp       time.Time
	Priority        Priority
	ExecutionEffort uint64
	PaymentID       uint64
}

// Handle identifies a scheduled slot on the native facility
type Handle struct {
	ID        string
	Timestamp time.Time
	Fee       decimal.Decimal
}

// TransactionScheduler is the native scheduling capability
type TransactionScheduler interface {
	EstimateFee(ctx context.Context, timestamp time.Time, priority Priority, executionEffort uint64) (decimal.Decimal, error)
	Schedule(ctx context.Context, req ScheduleRequest) (*Handle, error)
}

// FeeTable is the backing implementation: fees derive from a base fee,
// a per-effort-unit fee, the priority multiplier, and a surge factor.
type FeeTable struct {
	baseFee       decimal.Decimal
	effortUnitFee decimal.Decimal
	surgeFactor   decimal.Decimal
	maxEffort     uint64
	maxLeadTime   time.Duration
	clock         func() time.Time

	mu    sync.Mutex
	slots map[string]ScheduleRequest
}

// NewFeeTable builds a FeeTable from configuration
func NewFeeTable(cfg config.SchedulerConfig) (*FeeTable, error) {
	baseFee, err := decimal.NewFromString(cfg.BaseFee)
	if err != nil {
		return nil, fmt.Errorf("invalid base fee %q: %w", cfg.BaseFee, err)
	}
	effortUnitFee, err := decimal.NewFromString(cfg.EffortUnitFee)
	if err != nil {
		return nil, fmt.Errorf("invalid effort unit fee %q: %w", cfg.EffortUnitFee, err)
	}
	surge := decimal.NewFromFloat(cfg.SurgeFactor)
	if surge.LessThanOrEqual(decimal.Zero) {
		surge = decimal.NewFromInt(1)
	}
	return &FeeTable{
		baseFee:       baseFee,
		effortUnitFee: effortUnitFee,
		surgeFactor:   surge,
		maxEffort:     cfg.MaxEffort,
		maxLeadTime:   time.Duration(cfg.MaxLeadTimeDays) * 24 * time.Hour,
		clock:         time.Now,
		slots:         make(map[string]ScheduleRequest),
	}, nil
}

// WithClock overrides the wall clock (used by tests)
func (f *FeeTable) WithClock(clock func() time.Time) *FeeTable {
	f.clock = clock
	return f
}

func (f *FeeTable) validate(timestamp time.Time, executionEffort uint64) error {
	now := f.clock()
	if !timestamp.After(now) {
		return apperrors.InvalidArgumentError(nil, "timestamp must be in the future")
	}
	if f.maxLeadTime > 0 && timestamp.Sub(now) > f.maxLeadTime {
		return apperrors.InvalidArgumentError(nil, "timestamp exceeds maximum scheduling lead time")
	}
	if f.maxEffort > 0 && executionEffort > f.maxEffort {
		return apperrors.InvalidArgumentError(nil, "execution effort exceeds maximum")
	}
	return nil
}

// EstimateFee returns the fee for running a transaction of the given
// effort at the given timestamp and priority.
func (f *FeeTable) EstimateFee(_ context.Context, timestamp time.Time, priority Priority, executionEffort uint64) (decimal.Decimal, error) {
	if err := f.validate(timestamp, executionEffort); err != nil {
		return decimal.Zero, err
	}
	effortFee := f.effortUnitFee.Mul(decimal.NewFromUint64(executionEffort))
	fee := f.baseFee.Add(effortFee).Mul(priority.multiplier()).Mul(f.surgeFactor)
	return fee, nil
}

// Schedule reserves a slot and returns its handle
func (f *FeeTable) Schedule(ctx context.Context, req ScheduleRequest) (*Handle, error) {
	fee, err := f.EstimateFee(ctx, req.Timestamp, req.Priority, req.ExecutionEffort)
	if err != nil {
		return nil, err
	}

	handle := &Handle{
		ID:        uuid.New().String(),
		Timestamp: req.Timestamp,
		Fee:       fee,
	}

	f.mu.Lock()
	f.slots[handle.ID] = req
	f.mu.Unlock()

	return handle, nil
}

// Deterministic is a test double: a fixed fee regardless of input and
// sequential slot ids.
type Deterministic struct {
	Fee decimal.Decimal

	mu   sync.Mutex
	next int
}

// NewDeterministic creates a double with the given fixed fee
func NewDeterministic(fee decimal.Decimal) *Deterministic {
	return &Deterministic{Fee: fee}
}

// EstimateFee returns the fixed fee
func (d *Deterministic) EstimateFee(context.Context, time.Time, Priority, uint64) (decimal.Decimal, error) {
	return d.Fee, nil
}

// Schedule returns sequential handles slot-1, slot-2, ...
func (d *Deterministic) Schedule(_ context.Context, req ScheduleRequest) (*Handle, error) {
	d.mu.Lock()
	d.next++
	id := d.next
	d.mu.Unlock()
	return &Handle{
		ID:        fmt.Sprintf("slot-%d", id),
		Timestamp: req.Timestamp,
		Fee:       d.Fee,
	}, nil
}

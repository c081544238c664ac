package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestLedger(t *testing.T, opts ...Option) (*Ledger, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock)}, opts...)
	l, err := New(context.Background(), NewMemStore(), zap.NewNop(), opts...)
	require.NoError(t, err)
	return l, clock
}

func TestSchedulePayment(t *testing.T) {
	l, clock := newTestLedger(t)
	ctx := context.Background()

	id, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("25.5"), 60*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	payment, err := l.GetScheduledPayment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "party::bob", payment.Recipient)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, clock.now.Add(60*time.Second), payment.ScheduledTime)
	assert.False(t, payment.Executed)

	id2, err := l.SchedulePayment(ctx, "party::carol", decimal.Zero, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id2)
}

func TestSchedulePayment_InvalidInput(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		recipient string
		amount    decimal.Decimal
		delay     time.Duration
	}{
		{"empty recipient", "", decimal.RequireFromString("1"), time.Minute},
		{"negative amount", "party::bob", decimal.RequireFromString("-1"), time.Minute},
		{"negative delay", "party::bob", decimal.RequireFromString("1"), -time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.SchedulePayment(ctx, tt.recipient, tt.amount, tt.delay)
			assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
		})
	}

	// no record was created by any rejected call
	all, err := l.GetAllScheduledPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExecutePayment_ReadinessGate(t *testing.T) {
	l, clock := newTestLedger(t)
	ctx := context.Background()

	id, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("10"), 60*time.Second)
	require.NoError(t, err)

	// before the scheduled time
	clock.Advance(30 * time.Second)
	err = l.ExecutePayment(ctx, id)
	assert.True(t, apperrors.Is(err, apperrors.CategoryNotReady))

	payment, err := l.GetScheduledPayment(ctx, id)
	require.NoError(t, err)
	assert.False(t, payment.Executed)

	// past the scheduled time
	clock.Advance(31 * time.Second)
	require.NoError(t, l.ExecutePayment(ctx, id))

	payment, err = l.GetScheduledPayment(ctx, id)
	require.NoError(t, err)
	assert.True(t, payment.Executed)

	// second execution is rejected
	err = l.ExecutePayment(ctx, id)
	assert.True(t, apperrors.Is(err, apperrors.CategoryAlreadyExecuted))
}

func TestExecutePayment_ExactBoundary(t *testing.T) {
	l, clock := newTestLedger(t)
	ctx := context.Background()

	id, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("10"), 60*time.Second)
	require.NoError(t, err)

	// now == scheduledTime is executable
	clock.Advance(60 * time.Second)
	assert.NoError(t, l.ExecutePayment(ctx, id))
}

func TestExecutePayment_NotFound(t *testing.T) {
	l, _ := newTestLedger(t)

	err := l.ExecutePayment(context.Background(), 99)
	assert.True(t, apperrors.Is(err, apperrors.CategoryNotFound))
}

func TestExecutePayment_TransferHookFailureAborts(t *testing.T) {
	hookErr := errors.New("insufficient funds")
	l, clock := newTestLedger(t, WithTransferHook(func(context.Context, *ScheduledPayment) error {
		return hookErr
	}))
	ctx := context.Background()

	id, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("10"), 0)
	require.NoError(t, err)
	clock.Advance(time.Second)

	err = l.ExecutePayment(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, hookErr)

	// the flip did not happen
	payment, err := l.GetScheduledPayment(ctx, id)
	require.NoError(t, err)
	assert.False(t, payment.Executed)
}

func TestScheduleBridgedPayment_Idempotency(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	amount := decimal.RequireFromString("25.5")
	id, err := l.ScheduleBridgedPayment(ctx, "0xvault:1", "party::bob", amount, time.Minute)
	require.NoError(t, err)

	// redelivery of the same origin request returns the existing id
	replayed, err := l.ScheduleBridgedPayment(ctx, "0xvault:1", "party::bob", amount, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, id, replayed)

	all, err := l.GetAllScheduledPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// a different origin request creates a new payment
	other, err := l.ScheduleBridgedPayment(ctx, "0xvault:2", "party::bob", amount, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	// empty origin key is rejected
	_, err = l.ScheduleBridgedPayment(ctx, "", "party::bob", amount, time.Minute)
	assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
}

type failingStore struct {
	*MemStore
	failCreate  bool
	failExecute bool
}

func (s *failingStore) CreatePayment(ctx context.Context, payment *ScheduledPayment) error {
	if s.failCreate {
		return errors.New("db unavailable")
	}
	return s.MemStore.CreatePayment(ctx, payment)
}

func (s *failingStore) MarkExecuted(ctx context.Context, id uint64, executedAt time.Time) error {
	if s.failExecute {
		return errors.New("db unavailable")
	}
	return s.MemStore.MarkExecuted(ctx, id, executedAt)
}

func TestStoreFailureAbortsMutation(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := &failingStore{MemStore: NewMemStore()}

	l, err := New(ctx, store, zap.NewNop(), WithClock(clock))
	require.NoError(t, err)

	store.failCreate = true
	_, err = l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("10"), 0)
	require.Error(t, err)

	all, err := l.GetAllScheduledPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "persist failure must leave no in-memory record")

	store.failCreate = false
	id, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("10"), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id, "id counter must not advance on failed create")

	clock.Advance(time.Second)
	store.failExecute = true
	require.Error(t, l.ExecutePayment(ctx, id))

	payment, err := l.GetScheduledPayment(ctx, id)
	require.NoError(t, err)
	assert.False(t, payment.Executed)

	store.failExecute = false
	require.NoError(t, l.ExecutePayment(ctx, id))
}

func TestLedgerEvents(t *testing.T) {
	l, clock := newTestLedger(t)
	ctx := context.Background()

	var events []any
	l.Subscribe(func(event any) {
		events = append(events, event)
	})

	id, err := l.SchedulePayment(ctx, "party::bob", decimal.RequireFromString("10"), time.Minute)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	require.NoError(t, l.ExecutePayment(ctx, id))

	require.Len(t, events, 2)
	scheduled, ok := events[0].(PaymentScheduled)
	require.True(t, ok)
	assert.Equal(t, id, scheduled.ID)
	assert.Equal(t, "party::bob", scheduled.Recipient)

	executed, ok := events[1].(PaymentExecuted)
	require.True(t, ok)
	assert.Equal(t, id, executed.ID)
	assert.True(t, executed.Success)
}

func TestRestoreFromStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	l, err := New(ctx, store, zap.NewNop(), WithClock(clock))
	require.NoError(t, err)

	_, err = l.ScheduleBridgedPayment(ctx, "0xvault:1", "party::bob", decimal.RequireFromString("10"), time.Minute)
	require.NoError(t, err)
	_, err = l.SchedulePayment(ctx, "party::carol", decimal.RequireFromString("5"), time.Hour)
	require.NoError(t, err)

	// a new ledger over the same store continues where the first left off
	restored, err := New(ctx, store, zap.NewNop(), WithClock(clock))
	require.NoError(t, err)

	all, err := restored.GetAllScheduledPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	id, err := restored.ScheduleBridgedPayment(ctx, "0xvault:1", "party::bob", decimal.RequireFromString("10"), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id, "origin index must survive a restart")

	next, err := restored.SchedulePayment(ctx, "party::dave", decimal.RequireFromString("1"), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), next)
}

func TestScheduledExecutionFlow(t *testing.T) {
	l, clock := newTestLedger(t)
	ctx := context.Background()

	id, err := l.ScheduleBridgedPayment(ctx, "0xvault:7", "party::bob", decimal.RequireFromString("100"), 60*time.Second)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	err = l.ExecutePayment(ctx, id)
	assert.True(t, apperrors.Is(err, apperrors.CategoryNotReady))

	clock.Advance(31 * time.Second)
	require.NoError(t, l.ExecutePayment(ctx, id))

	payment, err := l.GetScheduledPayment(ctx, id)
	require.NoError(t, err)
	assert.True(t, payment.Executed)
}

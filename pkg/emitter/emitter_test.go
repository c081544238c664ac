package emitter

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
)

const testRelay = "relay-0"

func newTestEmitter(t *testing.T) *Emitter {
	t.Helper()
	return New(testRelay, zap.NewNop())
}

func TestRequestScheduleAssignsMonotonicIDs(t *testing.T) {
	e := newTestEmitter(t)
	ctx := context.Background()

	first, err := e.RequestSchedule(ctx, "alice", "0xabc", decimal.NewFromInt(10), 60)
	require.NoError(t, err)
	second, err := e.RequestSchedule(ctx, "alice", "0xdef", decimal.NewFromInt(20), 120)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
	assert.Equal(t, uint64(3), e.NextRequestID())

	req, err := e.GetRequest(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", req.Recipient)
	assert.Equal(t, "alice", req.Requester)
	assert.False(t, req.Bridged)
}

func TestRequestScheduleRejectsBeforeMutation(t *testing.T) {
	e := newTestEmitter(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		recipient string
		amount    decimal.Decimal
		delay     uint64
	}{
		{"empty recipient", "", decimal.NewFromInt(10), 60},
		{"zero amount", "0xabc", decimal.Zero, 60},
		{"negative amount", "0xabc", decimal.NewFromInt(-1), 60},
		{"zero delay", "0xabc", decimal.NewFromInt(10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.RequestSchedule(ctx, "alice", tt.recipient, tt.amount, tt.delay)
			assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
		})
	}

	// nothing was created and no id was burned
	assert.Equal(t, uint64(1), e.NextRequestID())
	assert.Empty(t, e.EventsSince(0))
}

func TestRequestScheduleBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatched lengths create nothing", func(t *testing.T) {
		e := newTestEmitter(t)
		_, _, err := e.RequestScheduleBatch(ctx, "alice",
			[]string{"0xabc", "0xdef"},
			[]decimal.Decimal{decimal.NewFromInt(1)},
			[]uint64{60, 60})
		assert.True(t, apperrors.Is(err, apperrors.CategoryArgumentLengthMismatch))
		assert.Equal(t, uint64(1), e.NextRequestID())
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		e := newTestEmitter(t)
		_, _, err := e.RequestScheduleBatch(ctx, "alice", nil, nil, nil)
		assert.True(t, apperrors.Is(err, apperrors.CategoryArgumentLengthMismatch))
	})

	t.Run("elements are independent", func(t *testing.T) {
		e := newTestEmitter(t)
		ids, errs, err := e.RequestScheduleBatch(ctx, "alice",
			[]string{"0xabc", "", "0xghi"},
			[]decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)},
			[]uint64{60, 60, 60})
		require.NoError(t, err)

		assert.Equal(t, uint64(1), ids[0])
		assert.True(t, apperrors.Is(errs[1], apperrors.CategoryInvalidArgument))
		assert.Equal(t, uint64(2), ids[2])

		// the failed element did not roll back its predecessor
		_, err = e.GetRequest(ctx, 1)
		assert.NoError(t, err)
	})
}

func TestMarkBridged(t *testing.T) {
	e := newTestEmitter(t)
	ctx := context.Background()

	id, err := e.RequestSchedule(ctx, "alice", "0xabc", decimal.NewFromInt(10), 60)
	require.NoError(t, err)

	t.Run("unauthorized caller rejected", func(t *testing.T) {
		err := e.MarkBridged(ctx, "mallory", id)
		assert.True(t, apperrors.Is(err, apperrors.CategoryUnauthorized))
	})

	t.Run("unknown id", func(t *testing.T) {
		err := e.MarkBridged(ctx, testRelay, 999)
		assert.True(t, apperrors.Is(err, apperrors.CategoryNotFound))
	})

	t.Run("flips once then rejects", func(t *testing.T) {
		bridged := e.SubscribeBridged(4)

		require.NoError(t, e.MarkBridged(ctx, testRelay, id))

		req, err := e.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.True(t, req.Bridged)

		ev := <-bridged
		assert.Equal(t, id, ev.OriginID)

		err = e.MarkBridged(ctx, testRelay, id)
		assert.True(t, apperrors.Is(err, apperrors.CategoryAlreadyBridged))

		// the rejected second call emitted nothing
		select {
		case ev := <-bridged:
			t.Fatalf("unexpected second ScheduleBridged for id %d", ev.OriginID)
		default:
		}
		require.Len(t, e.BridgedEvents(), 1)
	})
}

func TestSubscribeAndRescan(t *testing.T) {
	e := newTestEmitter(t)
	ctx := context.Background()

	events := e.Subscribe(8)

	id, err := e.RequestSchedule(ctx, "alice", "0xabc", decimal.NewFromInt(10), 60)
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, id, ev.OriginID)
	assert.Equal(t, "0xabc", ev.Recipient)
	assert.NotEmpty(t, ev.TxHash)

	// rescanning an overlapping range replays the same event
	replayed := e.EventsSince(0)
	require.Len(t, replayed, 1)
	assert.Equal(t, ev.TxHash, replayed[0].TxHash)
	assert.Equal(t, ev.OriginID, replayed[0].OriginID)
}

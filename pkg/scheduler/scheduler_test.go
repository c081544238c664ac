package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chandrabosep/flow-schedule-transaction/pkg/app/errors"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
)

func newTestFeeTable(t *testing.T, now time.Time) *FeeTable {
	t.Helper()
	ft, err := NewFeeTable(config.SchedulerConfig{
		BaseFee:         "0.0001",
		EffortUnitFee:   "0.000001",
		SurgeFactor:     1.0,
		MaxEffort:       9999,
		MaxLeadTimeDays: 365,
	})
	require.NoError(t, err)
	return ft.WithClock(func() time.Time { return now })
}

func TestFeeTableEstimateFee(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ft := newTestFeeTable(t, now)

	tests := []struct {
		name     string
		priority Priority
		effort   uint64
		want     string
	}{
		{"low priority no effort", PriorityLow, 0, "0.0002"},
		{"medium priority no effort", PriorityMedium, 0, "0.0005"},
		{"high priority no effort", PriorityHigh, 0, "0.001"},
		{"high priority with effort", PriorityHigh, 1000, "0.011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := ft.EstimateFee(context.Background(), now.Add(time.Hour), tt.priority, tt.effort)
			require.NoError(t, err)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", fee, tt.want)
		})
	}
}

func TestFeeTableRejectsInvalidRequests(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ft := newTestFeeTable(t, now)

	t.Run("timestamp in the past", func(t *testing.T) {
		_, err := ft.EstimateFee(context.Background(), now.Add(-time.Minute), PriorityLow, 0)
		assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
	})

	t.Run("timestamp at now", func(t *testing.T) {
		_, err := ft.EstimateFee(context.Background(), now, PriorityLow, 0)
		assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
	})

	t.Run("timestamp beyond lead time", func(t *testing.T) {
		_, err := ft.EstimateFee(context.Background(), now.AddDate(2, 0, 0), PriorityLow, 0)
		assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
	})

	t.Run("effort above maximum", func(t *testing.T) {
		_, err := ft.EstimateFee(context.Background(), now.Add(time.Hour), PriorityLow, 10000)
		assert.True(t, apperrors.Is(err, apperrors.CategoryInvalidArgument))
	})
}

func TestFeeTableSchedule(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ft := newTestFeeTable(t, now)

	handle, err := ft.Schedule(context.Background(), ScheduleRequest{
		Timestamp:       now.Add(time.Hour),
		Priority:        PriorityMedium,
		ExecutionEffort: 100,
		PaymentID:       1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, handle.ID)
	assert.Equal(t, now.Add(time.Hour), handle.Timestamp)
	assert.True(t, handle.Fee.GreaterThan(decimal.Zero))
}

func TestDeterministicScheduler(t *testing.T) {
	d := NewDeterministic(decimal.RequireFromString("0.01"))

	fee, err := d.EstimateFee(context.Background(), time.Now(), PriorityHigh, 5000)
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.RequireFromString("0.01")))

	first, err := d.Schedule(context.Background(), ScheduleRequest{Timestamp: time.Now()})
	require.NoError(t, err)
	second, err := d.Schedule(context.Background(), ScheduleRequest{Timestamp: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "slot-1", first.ID)
	assert.Equal(t, "slot-2", second.ID)
}

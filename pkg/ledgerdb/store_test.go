package ledgerdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledger"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledgerdb"
	migrations "github.com/chandrabosep/flow-schedule-transaction/pkg/migrations/ledgerdb"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil"
)

func setupStore(t *testing.T) *ledgerdb.Store {
	t.Helper()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	return ledgerdb.NewStore(db)
}

func TestCreateAndLoadPayments(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	scheduled := time.Now().UTC().Add(time.Minute).Truncate(time.Microsecond)
	payment := &ledger.ScheduledPayment{
		ID:            1,
		Sender:        "bridge",
		Recipient:     "0xabc",
		Amount:        decimal.RequireFromString("10.5"),
		ScheduledTime: scheduled,
		OriginKey:     "0xvault:1",
	}
	require.NoError(t, store.CreatePayment(ctx, payment))

	payments, err := store.LoadPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	got := payments[0]
	assert.Equal(t, uint64(1), got.ID)
	assert.Equal(t, "0xabc", got.Recipient)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, scheduled.Unix(), got.ScheduledTime.Unix())
	assert.False(t, got.Executed)
	assert.Equal(t, "0xvault:1", got.OriginKey)
}

func TestCreatePaymentDuplicateOriginKey(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	payment := &ledger.ScheduledPayment{
		ID:            1,
		Sender:        "bridge",
		Recipient:     "0xabc",
		Amount:        decimal.NewFromInt(10),
		ScheduledTime: time.Now().UTC().Add(time.Minute),
		OriginKey:     "0xvault:1",
	}
	require.NoError(t, store.CreatePayment(ctx, payment))

	dup := *payment
	dup.ID = 2
	assert.Error(t, store.CreatePayment(ctx, &dup))
}

func TestMarkExecuted(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	payment := &ledger.ScheduledPayment{
		ID:            1,
		Sender:        "alice",
		Recipient:     "0xabc",
		Amount:        decimal.NewFromInt(5),
		ScheduledTime: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, store.CreatePayment(ctx, payment))

	require.NoError(t, store.MarkExecuted(ctx, 1, time.Now().UTC()))

	payments, err := store.LoadPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Executed)

	// second flip is rejected at the store level too
	assert.Error(t, store.MarkExecuted(ctx, 1, time.Now().UTC()))
	assert.Error(t, store.MarkExecuted(ctx, 99, time.Now().UTC()))
}

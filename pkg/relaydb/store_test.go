package relaydb_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"

	migrations "github.com/chandrabosep/flow-schedule-transaction/pkg/migrations/relayerdb"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/relaydb"
)

func setupStore(t *testing.T) *relaydb.Store {
	t.Helper()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	return relaydb.NewStore(db)
}

func TestSeenSet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	const txHash = "0x5cafe000000000000000000000000000000000000000000000000000000000aa"

	seen, err := store.IsSeen(ctx, txHash, 1)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, store.MarkSeen(ctx, txHash, 1, 42))

	seen, err = store.IsSeen(ctx, txHash, 1)
	require.NoError(t, err)
	assert.True(t, seen)

	// marking the same key again is a no-op, not an error
	require.NoError(t, store.MarkSeen(ctx, txHash, 1, 42))

	// same tx hash, different origin id is a distinct key
	seen, err = store.IsSeen(ctx, txHash, 2)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestChainCursor(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	block, err := store.GetCursor(ctx, "ethereum")
	require.NoError(t, err)
	assert.Equal(t, int64(0), block)

	require.NoError(t, store.SetCursor(ctx, "ethereum", 1500))
	require.NoError(t, store.SetCursor(ctx, "ethereum", 1600))

	block, err = store.GetCursor(ctx, "ethereum")
	require.NoError(t, err)
	assert.Equal(t, int64(1600), block)
}

func TestSubmissionLifecycle(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	submission := &relaydb.SubmissionDao{
		ID:           uuid.New().String(),
		OriginTxHash: "0x5cafe000000000000000000000000000000000000000000000000000000000bb",
		OriginID:     7,
		Recipient:    "0xabc",
		Amount:       "10",
		DelaySeconds: 60,
		Status:       string(relaydb.SubmissionStatusPending),
	}
	require.NoError(t, store.CreateSubmission(ctx, submission))

	paymentID := int64(3)
	require.NoError(t, store.UpdateSubmission(ctx, submission.ID,
		relaydb.SubmissionStatusCompleted, 2, &paymentID, nil))

	failed, err := store.GetFailedSubmissions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, failed)

	errMsg := "amount rejected"
	other := &relaydb.SubmissionDao{
		ID:           uuid.New().String(),
		OriginTxHash: "0x5cafe000000000000000000000000000000000000000000000000000000000cc",
		OriginID:     8,
		Recipient:    "0xdef",
		Amount:       "20",
		DelaySeconds: 30,
		Status:       string(relaydb.SubmissionStatusPending),
	}
	require.NoError(t, store.CreateSubmission(ctx, other))
	require.NoError(t, store.UpdateSubmission(ctx, other.ID,
		relaydb.SubmissionStatusFailed, 1, nil, &errMsg))

	failed, err = store.GetFailedSubmissions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, other.ID, failed[0].ID)
	require.NotNil(t, failed[0].LastError)
	assert.Equal(t, errMsg, *failed[0].LastError)
}

package relaydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Store provides database operations for the relay
type Store struct {
	db *bun.DB
}

// NewStore creates a new relay store on an existing connection
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// IsSeen reports whether an event keyed by (originTxHash, originID) was
// already delivered.
func (s *Store) IsSeen(ctx context.Context, originTxHash string, originID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*SeenEventDao)(nil)).
		Where("origin_tx_hash = ?", originTxHash).
		Where("origin_id = ?", originID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query seen set: %w", err)
	}
	return exists, nil
}

// MarkSeen records a delivered event and the payment it produced
func (s *Store) MarkSeen(ctx context.Context, originTxHash string, originID, paymentID int64) error {
	seen := &SeenEventDao{
		OriginTxHash: originTxHash,
		OriginID:     originID,
		PaymentID:    paymentID,
	}
	_, err := s.db.NewInsert().
		Model(seen).
		On("CONFLICT (origin_tx_hash, origin_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark event seen: %w", err)
	}
	return nil
}

// GetCursor returns the last processed block for a chain, or 0 if the
// relay has not run against it yet.
func (s *Store) GetCursor(ctx context.Context, chainID string) (int64, error) {
	cursor := new(ChainCursorDao)
	err := s.db.NewSelect().
		Model(cursor).
		Where("chain_id = ?", chainID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get chain cursor: %w", err)
	}
	return cursor.LastBlock, nil
}

// SetCursor updates the last processed block for a chain
func (s *Store) SetCursor(ctx context.Context, chainID string, lastBlock int64) error {
	cursor := &ChainCursorDao{
		ChainID:   chainID,
		LastBlock: lastBlock,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(cursor).
		On("CONFLICT (chain_id) DO UPDATE").
		Set("last_block = EXCLUDED.last_block").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set chain cursor: %w", err)
	}
	return nil
}

// CreateSubmission records a new submission attempt chain
func (s *Store) CreateSubmission(ctx context.Context, submission *SubmissionDao) error {
	_, err := s.db.NewInsert().
		Model(submission).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// UpdateSubmission updates the status, attempt count and outcome of a
// submission.
func (s *Store) UpdateSubmission(ctx context.Context, id string, status SubmissionStatus, attempts int, paymentID *int64, lastError *string) error {
	query := s.db.NewUpdate().
		Model((*SubmissionDao)(nil)).
		Set("status = ?", string(status)).
		Set("attempts = ?", attempts).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id)

	if paymentID != nil {
		query = query.Set("payment_id = ?", *paymentID)
	}
	if lastError != nil {
		query = query.Set("last_error = ?", *lastError)
	}
	if status == SubmissionStatusCompleted {
		query = query.Set("completed_at = ?", time.Now().UTC())
	}

	if _, err := query.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

// ListSubmissions lists submissions in any status, most recent first.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]*SubmissionDao, error) {
	var submissions []*SubmissionDao
	err := s.db.NewSelect().
		Model(&submissions).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// GetFailedSubmissions lists submissions that exhausted retries, most
// recent first. Used to surface permanent failures to operators.
func (s *Store) GetFailedSubmissions(ctx context.Context, limit int) ([]*SubmissionDao, error) {
	var submissions []*SubmissionDao
	err := s.db.NewSelect().
		Model(&submissions).
		Where("status = ?", string(SubmissionStatusFailed)).
		Order("updated_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list failed submissions: %w", err)
	}
	return submissions, nil
}

// Package relaydb persists relay bookkeeping: the seen set that backs
// event dedup, the chain cursor for rescans, and a submission audit
// trail for operators.
package relaydb

import (
	"time"

	"github.com/uptrace/bun"
)

// SubmissionStatus represents the state of one relay submission
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// SeenEventDao maps to the 'seen_events' table. A row exists only
// after the destination ledger accepted the submission.
type SeenEventDao struct {
	bun.BaseModel `bun:"table:seen_events"`
	OriginTxHash  string    `json:"origin_tx_hash" bun:",pk,type:varchar(66)"`
	OriginID      int64     `json:"origin_id" bun:",pk"`
	PaymentID     int64     `json:"payment_id" bun:",notnull"`
	CreatedAt     time.Time `json:"created_at" bun:",nullzero,default:current_timestamp"`
}

// ChainCursorDao maps to the 'chain_cursors' table and tracks the last
// block the relay processed per chain.
type ChainCursorDao struct {
	bun.BaseModel `bun:"table:chain_cursors"`
	ChainID       string    `json:"chain_id" bun:",pk,type:varchar(32)"`
	LastBlock     int64     `json:"last_block" bun:",notnull,use_zero"`
	UpdatedAt     time.Time `json:"updated_at" bun:",nullzero,default:current_timestamp"`
}

// SubmissionDao maps to the 'submissions' table, one row per relay
// delivery attempt chain.
type SubmissionDao struct {
	bun.BaseModel `bun:"table:submissions"`
	ID            string     `json:"id" bun:",pk,type:varchar(36)"`
	OriginTxHash  string     `json:"origin_tx_hash" bun:",notnull,type:varchar(66)"`
	OriginID      int64      `json:"origin_id" bun:",notnull"`
	Recipient     string     `json:"recipient" bun:",notnull,type:varchar(255)"`
	Amount        string     `json:"amount" bun:",notnull,type:numeric(38,18)"`
	DelaySeconds  int64      `json:"delay_seconds" bun:",notnull"`
	Status        string     `json:"status" bun:",notnull,type:varchar(20)"`
	Attempts      int        `json:"attempts" bun:",notnull,use_zero"`
	PaymentID     *int64     `json:"payment_id,omitempty" bun:"payment_id"`
	LastError     *string    `json:"last_error,omitempty" bun:"last_error,type:text"`
	CreatedAt     time.Time  `json:"created_at" bun:",nullzero,default:current_timestamp"`
	UpdatedAt     time.Time  `json:"updated_at" bun:",nullzero,default:current_timestamp"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" bun:"completed_at"`
}

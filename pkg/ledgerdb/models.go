// Package ledgerdb persists the payment ledger state so it survives
// process restarts.
package ledgerdb

import (
	"time"

	"github.com/uptrace/bun"
)

// ScheduledPaymentDao maps to the 'scheduled_payments' table. Ids are
// assigned by the ledger, not the database.
type ScheduledPaymentDao struct {
	bun.BaseModel `bun:"table:scheduled_payments"`
	ID            int64      `json:"id" bun:",pk"`
	Sender        string     `json:"sender" bun:",notnull,type:varchar(255)"`
	Recipient     string     `json:"recipient" bun:",notnull,type:varchar(255)"`
	Amount        string     `json:"amount" bun:",notnull,type:numeric(38,18)"`
	ScheduledTime time.Time  `json:"scheduled_time" bun:",notnull"`
	Executed      bool       `json:"executed" bun:",notnull,use_zero"`
	ExecutedAt    *time.Time `json:"executed_at,omitempty" bun:"executed_at"`
	OriginKey     *string    `json:"origin_key,omitempty" bun:"origin_key,type:varchar(128)"`
	CreatedAt     time.Time  `json:"created_at" bun:",nullzero,default:current_timestamp"`
}

package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledPayment is the canonical record of a future-dated payment on
// the destination ledger. Records are never deleted; Executed flips
// false to true exactly once.
type ScheduledPayment struct {
	ID            uint64          `json:"id"`
	Sender        string          `json:"sender"`
	Recipient     string          `json:"recipient"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledTime time.Time       `json:"scheduled_time"`
	Executed      bool            `json:"executed"`
	// OriginKey is the (origin contract, origin request id) idempotency
	// key for bridge-originated payments; empty for direct callers.
	OriginKey string `json:"origin_key,omitempty"`
}

// PaymentScheduled is emitted when a new payment record is created
type PaymentScheduled struct {
	ID            uint64
	Recipient     string
	Amount        decimal.Decimal
	ScheduledTime time.Time
}

// PaymentExecuted is emitted when a payment passes the readiness gate
// and is marked executed
type PaymentExecuted struct {
	ID      uint64
	Success bool
}

// Store persists ledger state. Mutations are write-through: a store
// failure aborts the ledger call with no in-memory change.
type Store interface {
	CreatePayment(ctx context.Context, payment *ScheduledPayment) error
	MarkExecuted(ctx context.Context, id uint64, executedAt time.Time) error
	LoadPayments(ctx context.Context) ([]ScheduledPayment, error)
}

// Clock abstracts the destination ledger's notion of current time.
// Scheduled times are always computed against this clock, never the
// origin chain's.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock
type SystemClock struct{}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}

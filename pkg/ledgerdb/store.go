package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledger"
)

// Store is the PostgreSQL write-through store behind the payment ledger
type Store struct {
	db *bun.DB
}

// NewStore creates a ledger store on an existing connection
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CreatePayment persists a newly scheduled payment
func (s *Store) CreatePayment(ctx context.Context, payment *ledger.ScheduledPayment) error {
	dao := &ScheduledPaymentDao{
		ID:            int64(payment.ID),
		Sender:        payment.Sender,
		Recipient:     payment.Recipient,
		Amount:        payment.Amount.String(),
		ScheduledTime: payment.ScheduledTime,
		Executed:      payment.Executed,
	}
	if payment.OriginKey != "" {
		key := payment.OriginKey
		dao.OriginKey = &key
	}

	if _, err := s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert scheduled payment: %w", err)
	}
	return nil
}

// MarkExecuted flips the executed flag for a payment
func (s *Store) MarkExecuted(ctx context.Context, id uint64, executedAt time.Time) error {
	res, err := s.db.NewUpdate().
		Model((*ScheduledPaymentDao)(nil)).
		Set("executed = TRUE").
		Set("executed_at = ?", executedAt).
		Where("id = ?", int64(id)).
		Where("executed = FALSE").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark payment executed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("payment %d not found or already executed", id)
	}
	return nil
}

// LoadPayments returns all persisted payments for ledger restore
func (s *Store) LoadPayments(ctx context.Context) ([]ledger.ScheduledPayment, error) {
	var daos []ScheduledPaymentDao
	if err := s.db.NewSelect().Model(&daos).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load scheduled payments: %w", err)
	}

	payments := make([]ledger.ScheduledPayment, 0, len(daos))
	for _, dao := range daos {
		amount, err := decimal.NewFromString(dao.Amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for payment %d: %w", dao.ID, err)
		}
		payment := ledger.ScheduledPayment{
			ID:            uint64(dao.ID),
			Sender:        dao.Sender,
			Recipient:     dao.Recipient,
			Amount:        amount,
			ScheduledTime: dao.ScheduledTime,
			Executed:      dao.Executed,
		}
		if dao.OriginKey != nil {
			payment.OriginKey = *dao.OriginKey
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

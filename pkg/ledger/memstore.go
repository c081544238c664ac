package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is an in-memory Store used by tests and single-process
// deployments that do not need durability.
type MemStore struct {
	mu       sync.Mutex
	payments map[uint64]ScheduledPayment
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{payments: make(map[uint64]ScheduledPayment)}
}

// CreatePayment stores a new payment record
func (s *MemStore) CreatePayment(_ context.Context, payment *ScheduledPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payments[payment.ID]; exists {
		return fmt.Errorf("payment %d already exists", payment.ID)
	}
	s.payments[payment.ID] = *payment
	return nil
}

// MarkExecuted flips the executed flag on a stored payment
func (s *MemStore) MarkExecuted(_ context.Context, id uint64, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return fmt.Errorf("payment %d not found", id)
	}
	payment.Executed = true
	s.payments[id] = payment
	return nil
}

// LoadPayments returns all stored payments
func (s *MemStore) LoadPayments(_ context.Context) ([]ScheduledPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScheduledPayment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	return out, nil
}

package relay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/relaydb"
)

// MemStore is an in-memory RelayStore for tests and local development.
type MemStore struct {
	mu          sync.Mutex
	seen        map[string]int64
	cursors     map[string]int64
	submissions map[string]*relaydb.SubmissionDao
}

// NewMemStore creates an empty in-memory relay store
func NewMemStore() *MemStore {
	return &MemStore{
		seen:        make(map[string]int64),
		cursors:     make(map[string]int64),
		submissions: make(map[string]*relaydb.SubmissionDao),
	}
}

func memSeenKey(originTxHash string, originID int64) string {
	return fmt.Sprintf("%s:%d", originTxHash, originID)
}

func (s *MemStore) IsSeen(_ context.Context, originTxHash string, originID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[memSeenKey(originTxHash, originID)]
	return ok, nil
}

func (s *MemStore) MarkSeen(_ context.Context, originTxHash string, originID, paymentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[memSeenKey(originTxHash, originID)] = paymentID
	return nil
}

func (s *MemStore) GetCursor(_ context.Context, chainID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursors[chainID], nil
}

func (s *MemStore) SetCursor(_ context.Context, chainID string, lastBlock int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[chainID] = lastBlock
	return nil
}

func (s *MemStore) CreateSubmission(_ context.Context, submission *relaydb.SubmissionDao) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *submission
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	s.submissions[submission.ID] = &copied
	return nil
}

// SeenCount reports the size of the seen set
func (s *MemStore) SeenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// Submissions returns a copy of every submission row
func (s *MemStore) Submissions() []*relaydb.SubmissionDao {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*relaydb.SubmissionDao, 0, len(s.submissions))
	for _, sub := range s.submissions {
		copied := *sub
		out = append(out, &copied)
	}
	return out
}

func (s *MemStore) UpdateSubmission(_ context.Context, id string, status relaydb.SubmissionStatus, attempts int, paymentID *int64, lastError *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[id]
	if !ok {
		return fmt.Errorf("no submission with id %s", id)
	}
	sub.Status = string(status)
	sub.Attempts = attempts
	sub.UpdatedAt = time.Now()
	if paymentID != nil {
		sub.PaymentID = paymentID
	}
	if lastError != nil {
		sub.LastError = lastError
	}
	if status == relaydb.SubmissionStatusCompleted {
		now := time.Now()
		sub.CompletedAt = &now
	}
	return nil
}

package relay

// TODO: remove the mock impl and use mockery to generate mock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MockSource is a mock implementation of Source
type MockSource struct {
	StreamEventsFunc func(ctx context.Context, fromBlock uint64) (<-chan *Event, <-chan error)
	FilterEventsFunc func(ctx context.Context, fromBlock, toBlock uint64) ([]*Event, error)
	LatestBlockFunc  func(ctx context.Context) (uint64, error)
	ChainID          string
}

func (m *MockSource) StreamEvents(ctx context.Context, fromBlock uint64) (<-chan *Event, <-chan error) {
	if m.StreamEventsFunc != nil {
		return m.StreamEventsFunc(ctx, fromBlock)
	}
	eventCh := make(chan *Event)
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		close(eventCh)
	}()
	return eventCh, errCh
}

func (m *MockSource) FilterEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*Event, error) {
	if m.FilterEventsFunc != nil {
		return m.FilterEventsFunc(ctx, fromBlock, toBlock)
	}
	return nil, nil
}

func (m *MockSource) LatestBlock(ctx context.Context) (uint64, error) {
	if m.LatestBlockFunc != nil {
		return m.LatestBlockFunc(ctx)
	}
	return 0, nil
}

func (m *MockSource) GetChainID() string {
	if m.ChainID != "" {
		return m.ChainID
	}
	return "test-chain"
}

// MockLedger is a mock implementation of PaymentLedger
type MockLedger struct {
	ScheduleBridgedPaymentFunc func(ctx context.Context, originKey, recipient string, amount decimal.Decimal, delay time.Duration) (uint64, error)
}

func (m *MockLedger) ScheduleBridgedPayment(ctx context.Context, originKey, recipient string, amount decimal.Decimal, delay time.Duration) (uint64, error) {
	if m.ScheduleBridgedPaymentFunc != nil {
		return m.ScheduleBridgedPaymentFunc(ctx, originKey, recipient, amount, delay)
	}
	return 0, nil
}

// MockMarker is a mock implementation of OriginMarker
type MockMarker struct {
	MarkBridgedFunc func(ctx context.Context, originID uint64) error
}

func (m *MockMarker) MarkBridged(ctx context.Context, originID uint64) error {
	if m.MarkBridgedFunc != nil {
		return m.MarkBridgedFunc(ctx, originID)
	}
	return nil
}


package relay

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/emitter"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ethereum"
)

// EthereumVaultClient defines the on-chain operations the relay uses
type EthereumVaultClient interface {
	FilterScheduleRequests(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.ScheduleRequestedEvent, error)
	WatchScheduleRequests(ctx context.Context, fromBlock uint64, handler func(*ethereum.ScheduleRequestedEvent) error) error
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	MarkBridged(ctx context.Context, requestID *big.Int) (common.Hash, error)
}

// EthereumSource adapts an EVM schedule vault into the relay Source
// and OriginMarker interfaces.
type EthereumSource struct {
	client        EthereumVaultClient
	chainID       string
	vaultAddress  string
	tokenDecimals int32
	logger        *zap.Logger
}

// NewEthereumSource creates a source backed by a vault contract
func NewEthereumSource(client EthereumVaultClient, chainID, vaultAddress string, tokenDecimals int32, logger *zap.Logger) *EthereumSource {
	return &EthereumSource{
		client:        client,
		chainID:       chainID,
		vaultAddress:  vaultAddress,
		tokenDecimals: tokenDecimals,
		logger:        logger,
	}
}

// GetChainID returns the chain ID
func (s *EthereumSource) GetChainID() string {
	return s.chainID
}

// LatestBlock returns the current chain height
func (s *EthereumSource) LatestBlock(ctx context.Context) (uint64, error) {
	return s.client.GetLatestBlockNumber(ctx)
}

func (s *EthereumSource) convert(ev *ethereum.ScheduleRequestedEvent) *Event {
	return &Event{
		OriginID:     ev.RequestID.Uint64(),
		OriginKey:    fmt.Sprintf("%s:%s", s.vaultAddress, ev.RequestID.String()),
		Recipient:    ev.Recipient,
		Amount:       ethereum.ToLedgerAmount(ev.Amount, s.tokenDecimals),
		DelaySeconds: ev.DelaySeconds.Uint64(),
		TxHash:       ev.TxHash.Hex(),
		BlockNumber:  ev.BlockNumber,
	}
}

// FilterEvents returns schedule requests in the block range
func (s *EthereumSource) FilterEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*Event, error) {
	raw, err := s.client.FilterScheduleRequests(ctx, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}
	events := make([]*Event, 0, len(raw))
	for _, ev := range raw {
		events = append(events, s.convert(ev))
	}
	return events, nil
}

// StreamEvents streams schedule requests starting at the given block.
// The error channel receives exactly one value when the watch ends.
func (s *EthereumSource) StreamEvents(ctx context.Context, fromBlock uint64) (<-chan *Event, <-chan error) {
	eventCh := make(chan *Event)
	errCh := make(chan error, 1)

	go func() {
		defer close(eventCh)
		err := s.client.WatchScheduleRequests(ctx, fromBlock, func(ev *ethereum.ScheduleRequestedEvent) error {
			select {
			case eventCh <- s.convert(ev):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		errCh <- err
	}()

	return eventCh, errCh
}

// MarkBridged confirms delivery on the vault contract
func (s *EthereumSource) MarkBridged(ctx context.Context, originID uint64) error {
	txHash, err := s.client.MarkBridged(ctx, new(big.Int).SetUint64(originID))
	if err != nil {
		return err
	}
	s.logger.Debug("Submitted markBridged transaction",
		zap.Uint64("origin_id", originID),
		zap.String("tx_hash", txHash.Hex()))
	return nil
}

// EmitterSource adapts the in-process origin emitter into the relay
// Source and OriginMarker interfaces. Used for local development and
// integration tests without an EVM node.
type EmitterSource struct {
	emitter *emitter.Emitter
	chainID string
	relayer string
}

// NewEmitterSource creates a source backed by an in-process emitter.
// relayer is the identity used for markBridged calls.
func NewEmitterSource(em *emitter.Emitter, chainID, relayer string) *EmitterSource {
	return &EmitterSource{emitter: em, chainID: chainID, relayer: relayer}
}

// GetChainID returns the chain ID
func (s *EmitterSource) GetChainID() string {
	return s.chainID
}

// LatestBlock returns the emitter's block height
func (s *EmitterSource) LatestBlock(_ context.Context) (uint64, error) {
	return s.emitter.BlockHeight(), nil
}

func (s *EmitterSource) convert(ev emitter.ScheduleRequested) *Event {
	return &Event{
		OriginID:     ev.OriginID,
		OriginKey:    fmt.Sprintf("%s:%d", s.chainID, ev.OriginID),
		Recipient:    ev.Recipient,
		Amount:       ev.Amount,
		DelaySeconds: ev.DelaySeconds,
		TxHash:       ev.TxHash,
		BlockNumber:  ev.BlockNumber,
	}
}

// FilterEvents returns schedule requests in the block range
func (s *EmitterSource) FilterEvents(_ context.Context, fromBlock, toBlock uint64) ([]*Event, error) {
	var events []*Event
	for _, ev := range s.emitter.EventsSince(fromBlock) {
		if ev.BlockNumber > toBlock {
			break
		}
		events = append(events, s.convert(ev))
	}
	return events, nil
}

// StreamEvents streams schedule requests as they are emitted
func (s *EmitterSource) StreamEvents(ctx context.Context, _ uint64) (<-chan *Event, <-chan error) {
	eventCh := make(chan *Event)
	errCh := make(chan error, 1)
	sub := s.emitter.Subscribe(64)

	go func() {
		defer close(eventCh)
		for {
			select {
			case ev, ok := <-sub:
				if !ok {
					errCh <- fmt.Errorf("emitter subscription closed")
					return
				}
				select {
				case eventCh <- s.convert(ev):
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()

	return eventCh, errCh
}

// MarkBridged confirms delivery on the emitter
func (s *EmitterSource) MarkBridged(ctx context.Context, originID uint64) error {
	return s.emitter.MarkBridged(ctx, s.relayer, originID)
}

package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ethereum/contracts"
)

// Client represents an Ethereum client bound to the schedule vault
type Client struct {
	config     *config.EthereumConfig
	client     *ethclient.Client
	wsClient   *ethclient.Client
	privateKey *ecdsa.PrivateKey
	address    common.Address
	logger     *zap.Logger

	vaultAddress common.Address
	vault        *contracts.ScheduleVault
}

// NewClient creates a new Ethereum client
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	// Connect to Ethereum RPC
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	// Connect to WebSocket for event streaming (optional)
	var wsClient *ethclient.Client
	if cfg.WSUrl != "" {
		wsClient, err = ethclient.Dial(cfg.WSUrl)
		if err != nil {
			logger.Warn("Failed to connect to Ethereum WebSocket, falling back to polling",
				zap.Error(err))
		}
	}

	// Load private key
	privateKey, err := crypto.HexToECDSA(cfg.RelayerPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	vaultAddress := common.HexToAddress(cfg.VaultContract)

	// Load vault contract
	vault, err := contracts.NewScheduleVault(vaultAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to load vault contract: %w", err)
	}

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("vault_contract", vaultAddress.Hex()),
		zap.String("relayer_address", address.Hex()))

	return &Client{
		config:       cfg,
		client:       client,
		wsClient:     wsClient,
		privateKey:   privateKey,
		address:      address,
		vaultAddress: vaultAddress,
		vault:        vault,
		logger:       logger,
	}, nil
}

// Close closes the Ethereum clients
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
	if c.wsClient != nil {
		c.wsClient.Close()
	}
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	chainID := big.NewInt(c.config.ChainID)

	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	// Get nonce
	nonce, err := c.client.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = big.NewInt(int64(nonce))
	auth.GasLimit = c.config.GasLimit

	// Set gas price if configured
	if c.config.MaxGasPrice != "" {
		maxGasPrice := new(big.Int)
		maxGasPrice.SetString(c.config.MaxGasPrice, 10)

		gasPrice, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// GetLatestBlockNumber gets the latest block number
func (c *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// FilterScheduleRequests queries ScheduleRequested events in a block
// range. Rescans go through here directly.
func (c *Client) FilterScheduleRequests(ctx context.Context, fromBlock, toBlock uint64) ([]*ScheduleRequestedEvent, error) {
	opts := &bind.FilterOpts{
		Start:   fromBlock,
		End:     &toBlock,
		Context: ctx,
	}

	iter, err := c.vault.FilterScheduleRequested(opts, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter schedule events: %w", err)
	}
	defer iter.Close()

	var events []*ScheduleRequestedEvent
	for iter.Next() {
		events = append(events, scheduleRequestedFromLog(iter.Event))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("schedule event iterator failed: %w", err)
	}
	return events, nil
}

// FilterScheduleBridged queries ScheduleBridged confirmations in a
// block range. Used to audit which requests the contract has recorded
// as delivered.
func (c *Client) FilterScheduleBridged(ctx context.Context, fromBlock, toBlock uint64) ([]*ScheduleBridgedEvent, error) {
	opts := &bind.FilterOpts{
		Start:   fromBlock,
		End:     &toBlock,
		Context: ctx,
	}

	iter, err := c.vault.FilterScheduleBridged(opts, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter bridged events: %w", err)
	}
	defer iter.Close()

	var events []*ScheduleBridgedEvent
	for iter.Next() {
		events = append(events, &ScheduleBridgedEvent{
			RequestID:   iter.Event.RequestId,
			BlockNumber: iter.Event.Raw.BlockNumber,
			TxHash:      iter.Event.Raw.TxHash,
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("bridged event iterator failed: %w", err)
	}
	return events, nil
}

// WatchScheduleRequests polls for schedule request events (uses polling
// for HTTP RPC compatibility)
func (c *Client) WatchScheduleRequests(ctx context.Context, fromBlock uint64, handler func(*ScheduleRequestedEvent) error) error {
	c.logger.Info("Starting schedule event poller", zap.Uint64("from_block", fromBlock))

	currentBlock := fromBlock
	ticker := time.NewTicker(c.config.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Get latest block
			latestBlock, err := c.GetLatestBlockNumber(ctx)
			if err != nil {
				c.logger.Warn("Failed to get latest block", zap.Error(err))
				continue
			}

			if latestBlock <= currentBlock {
				continue
			}

			events, err := c.FilterScheduleRequests(ctx, currentBlock+1, latestBlock)
			if err != nil {
				c.logger.Warn("Failed to filter schedule events", zap.Error(err))
				continue
			}

			for _, event := range events {
				if err := handler(event); err != nil {
					c.logger.Error("Failed to handle schedule event",
						zap.Error(err),
						zap.String("tx_hash", event.TxHash.Hex()))
				}
			}

			currentBlock = latestBlock
		}
	}
}

// MarkBridged submits a markBridged transaction confirming delivery of
// a schedule request
func (c *Client) MarkBridged(ctx context.Context, requestID *big.Int) (common.Hash, error) {
	c.logger.Info("Submitting markBridged",
		zap.String("request_id", requestID.String()))

	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}

	tx, err := c.vault.MarkBridged(auth, requestID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit markBridged transaction: %w", err)
	}

	c.logger.Info("markBridged transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("request_id", requestID.String()))

	return tx.Hash(), nil
}

// GetRequest reads a stored schedule request from the vault
func (c *Client) GetRequest(ctx context.Context, requestID *big.Int) (*ScheduleRequestedEvent, bool, error) {
	req, err := c.vault.GetRequest(&bind.CallOpts{Context: ctx}, requestID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read schedule request: %w", err)
	}

	return &ScheduleRequestedEvent{
		RequestID:    requestID,
		Requester:    req.Requester,
		Recipient:    req.Recipient,
		Amount:       req.Amount,
		DelaySeconds: req.DelaySeconds,
		Timestamp:    req.Timestamp,
	}, req.Bridged, nil
}

func scheduleRequestedFromLog(event *contracts.ScheduleVaultScheduleRequested) *ScheduleRequestedEvent {
	return &ScheduleRequestedEvent{
		RequestID:    event.RequestId,
		Requester:    event.Requester,
		Recipient:    event.Recipient,
		Amount:       event.Amount,
		DelaySeconds: event.DelaySeconds,
		Timestamp:    event.Timestamp,
		BlockNumber:  event.Raw.BlockNumber,
		TxHash:       event.Raw.TxHash,
		LogIndex:     event.Raw.Index,
	}
}

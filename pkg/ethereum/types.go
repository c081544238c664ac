package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ScheduleRequestedEvent represents a schedule request event from the
// origin chain vault
type ScheduleRequestedEvent struct {
	RequestID    *big.Int
	Requester    common.Address
	Recipient    string
	Amount       *big.Int
	DelaySeconds *big.Int
	Timestamp    *big.Int
	BlockNumber  uint64
	TxHash       common.Hash
	LogIndex     uint
}

// ScheduleBridgedEvent confirms a request was delivered to the
// destination ledger
type ScheduleBridgedEvent struct {
	RequestID   *big.Int
	BlockNumber uint64
	TxHash      common.Hash
}

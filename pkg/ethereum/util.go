package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToLedgerAmount converts an on-chain base-unit amount to a decimal
// amount using the token's decimals.
func ToLedgerAmount(amount *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(amount, -decimals)
}

// ToBaseUnits converts a decimal amount to on-chain base units,
// truncating sub-unit precision.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}

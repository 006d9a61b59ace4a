package ethereum

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxSucceeded TxStatus = "succeeded"
	TxReverted  TxStatus = "reverted"
)

type TxResult struct {
	Transaction *Transaction
	Error       error
}

type Transaction struct {
	Hash        string
	Status      TxStatus
	BlockNumber uint64
	From        string
	To          *string
	GasUsed     uint64
	Value       string
}

// OnChainPolicy is the contract's policies(bytes32) record.
type OnChainPolicy struct {
	ID         common.Hash
	Holder     common.Address
	Premium    *big.Int
	SumAssured *big.Int
	Expiry     time.Time
	IsActive   bool
	IsClaimed  bool
}

type PurchaseCall struct {
	PolicyID   common.Hash
	Holder     common.Address
	Premium    *big.Int
	SumAssured *big.Int
	Expiry     int64
	Nonce      *big.Int
	Signature  []byte
}

type ClaimCall struct {
	PolicyID  common.Hash
	Holder    common.Address
	Amount    *big.Int
	Nonce     *big.Int
	Signature []byte
}

type CancelCall struct {
	PolicyID  common.Hash
	Holder    common.Address
	Refund    *big.Int
	Nonce     *big.Int
	Signature []byte
}

type RenewCall struct {
	PolicyID  common.Hash
	Holder    common.Address
	Premium   *big.Int
	NewExpiry int64
	Nonce     *big.Int
	Signature []byte
}

package signature

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type Action string

const (
	ActionPurchase Action = "PURCHASE"
	ActionClaim    Action = "CLAIM"
	ActionCancel   Action = "CANCEL"
	ActionRenew    Action = "RENEW"
)

// Authorization is an admin signature over one privileged contract call.
type Authorization struct {
	Action    Action
	Digest    common.Hash
	Signature []byte
	Nonce     *big.Int
	Signer    common.Address
}

type PurchaseFields struct {
	PolicyID   common.Hash
	Holder     common.Address
	Premium    *big.Int
	SumAssured *big.Int
	Expiry     int64
}

type ClaimFields struct {
	PolicyID common.Hash
	Holder   common.Address
	Amount   *big.Int
}

type CancelFields struct {
	PolicyID common.Hash
	Holder   common.Address
	Refund   *big.Int
}

type RenewFields struct {
	PolicyID  common.Hash
	Holder    common.Address
	Premium   *big.Int
	NewExpiry int64
}

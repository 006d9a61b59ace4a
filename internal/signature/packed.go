package signature

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// packed reproduces Solidity's abi.encodePacked for the value kinds the
// insurance contract hashes.
type packed []byte

func (p packed) uint256(v *big.Int) packed {
	if v == nil {
		v = new(big.Int)
	}
	return append(p, math.U256Bytes(new(big.Int).Set(v))...)
}

func (p packed) int64(v int64) packed {
	return p.uint256(big.NewInt(v))
}

func (p packed) address(a common.Address) packed {
	return append(p, a.Bytes()...)
}

func (p packed) bytes32(h common.Hash) packed {
	return append(p, h.Bytes()...)
}

func (p packed) str(s string) packed {
	return append(p, s...)
}

func (p packed) hash() common.Hash {
	return crypto.Keccak256Hash(p)
}

func prefix(chainID *big.Int, contract common.Address, action Action) packed {
	return packed{}.uint256(chainID).address(contract).str(string(action))
}

// PurchaseDigest is keccak256(abi.encodePacked(chainId, contract, "PURCHASE",
// policyId, holder, premium, sumAssured, expiry, nonce)).
func PurchaseDigest(chainID *big.Int, contract common.Address, f PurchaseFields, nonce *big.Int) common.Hash {
	return prefix(chainID, contract, ActionPurchase).
		bytes32(f.PolicyID).
		address(f.Holder).
		uint256(f.Premium).
		uint256(f.SumAssured).
		int64(f.Expiry).
		uint256(nonce).
		hash()
}

func ClaimDigest(chainID *big.Int, contract common.Address, f ClaimFields, nonce *big.Int) common.Hash {
	return prefix(chainID, contract, ActionClaim).
		bytes32(f.PolicyID).
		address(f.Holder).
		uint256(f.Amount).
		uint256(nonce).
		hash()
}

func CancelDigest(chainID *big.Int, contract common.Address, f CancelFields, nonce *big.Int) common.Hash {
	return prefix(chainID, contract, ActionCancel).
		bytes32(f.PolicyID).
		address(f.Holder).
		uint256(f.Refund).
		uint256(nonce).
		hash()
}

func RenewDigest(chainID *big.Int, contract common.Address, f RenewFields, nonce *big.Int) common.Hash {
	return prefix(chainID, contract, ActionRenew).
		bytes32(f.PolicyID).
		address(f.Holder).
		uint256(f.Premium).
		int64(f.NewExpiry).
		uint256(nonce).
		hash()
}

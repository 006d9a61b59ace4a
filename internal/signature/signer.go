// Package signature produces and checks the admin signatures the insurance
// contract requires before it accepts privileged calls.
package signature

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/metrics"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidSignature error = errors.New("invalid signature")
var ErrInvalidKey error = errors.New("invalid admin private key")

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// RandomNonce draws a uniformly random uint256.
func RandomNonce() (*big.Int, error) {
	n, err := rand.Int(rand.Reader, maxUint256)
	if err != nil {
		return nil, fmt.Errorf("read random nonce: %w", err)
	}
	return n, nil
}

type AdminSigner struct {
	key      *ecdsa.PrivateKey
	address  common.Address
	chainID  *big.Int
	contract common.Address
	nonce    func() (*big.Int, error)
}

func NewAdminSigner(hexKey string, chainID *big.Int, contract common.Address) (*AdminSigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &AdminSigner{
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		chainID:  new(big.Int).Set(chainID),
		contract: contract,
		nonce:    RandomNonce,
	}, nil
}

// WithNonceSource replaces the nonce generator.
func (s *AdminSigner) WithNonceSource(source func() (*big.Int, error)) *AdminSigner {
	s.nonce = source
	return s
}

func (s *AdminSigner) Address() common.Address {
	return s.address
}

func (s *AdminSigner) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}

func (s *AdminSigner) ChainID() *big.Int {
	return new(big.Int).Set(s.chainID)
}

func (s *AdminSigner) Contract() common.Address {
	return s.contract
}

func (s *AdminSigner) SignPurchase(f PurchaseFields) (Authorization, error) {
	return s.authorize(ActionPurchase, func(nonce *big.Int) common.Hash {
		return PurchaseDigest(s.chainID, s.contract, f, nonce)
	})
}

func (s *AdminSigner) SignClaim(f ClaimFields) (Authorization, error) {
	return s.authorize(ActionClaim, func(nonce *big.Int) common.Hash {
		return ClaimDigest(s.chainID, s.contract, f, nonce)
	})
}

func (s *AdminSigner) SignCancel(f CancelFields) (Authorization, error) {
	return s.authorize(ActionCancel, func(nonce *big.Int) common.Hash {
		return CancelDigest(s.chainID, s.contract, f, nonce)
	})
}

func (s *AdminSigner) SignRenew(f RenewFields) (Authorization, error) {
	return s.authorize(ActionRenew, func(nonce *big.Int) common.Hash {
		return RenewDigest(s.chainID, s.contract, f, nonce)
	})
}

// Verify reports whether signature was produced by the admin key over digest.
func (s *AdminSigner) Verify(digest common.Hash, signature []byte) (bool, error) {
	signer, err := Recover(digest, signature)
	if err != nil {
		return false, err
	}
	return signer == s.address, nil
}

func (s *AdminSigner) authorize(action Action, digestFn func(nonce *big.Int) common.Hash) (Authorization, error) {
	nonce, err := s.nonce()
	if err != nil {
		return Authorization{}, fmt.Errorf("generate nonce: %w", err)
	}

	digest := digestFn(nonce)
	sig, err := s.Sign(digest)
	if err != nil {
		return Authorization{}, err
	}
	metrics.RecordSignature(string(action))

	return Authorization{
		Action:    action,
		Digest:    digest,
		Signature: sig,
		Nonce:     nonce,
		Signer:    s.address,
	}, nil
}

// Sign signs the EIP-191 personal-message hash of digest, matching
// ecrecover(toEthSignedMessageHash(digest), v, r, s) on-chain. V is 27 or 28.
func (s *AdminSigner) Sign(digest common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(digest.Bytes()), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign digest: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// Recover returns the address that signed digest.
func Recover(digest common.Hash, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(signature))
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	switch v := sig[crypto.RecoveryIDOffset]; v {
	case 0, 1:
	case 27, 28:
		sig[crypto.RecoveryIDOffset] = v - 27
	default:
		return common.Address{}, fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, v)
	}

	pub, err := crypto.SigToPub(accounts.TextHash(digest.Bytes()), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

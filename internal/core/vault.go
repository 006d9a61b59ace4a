package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// VaultBalance reports the shared fund pool in wei, ETH and THB.
func (s *Insurance) VaultBalance(ctx context.Context) (VaultInfo, error) {
	balance, err := s.contract.VaultBalance(ctx)
	if err != nil {
		return VaultInfo{}, fmt.Errorf("get vault balance: %w", err)
	}

	r, err := s.rates.Current(ctx)
	if err != nil {
		return VaultInfo{}, fmt.Errorf("get exchange rate: %w", err)
	}

	return VaultInfo{
		Address:    s.contract.VaultAddress().Hex(),
		BalanceWei: balance.String(),
		BalanceETH: rate.WeiToETH(balance),
		BalanceTHB: r.WeiToTHB(balance),
		Rate:       r,
	}, nil
}

// VerifySignature reports whether sigHex is the admin's signature over digestHex.
func (s *Insurance) VerifySignature(digestHex, sigHex string) (bool, error) {
	digest, err := hexutil.Decode(ensure0x(digestHex))
	if err != nil || len(digest) != common.HashLength {
		return false, fmt.Errorf("%w: digest must be 32 bytes of hex", ErrInvalidInput)
	}

	sig, err := hexutil.Decode(ensure0x(sigHex))
	if err != nil {
		return false, fmt.Errorf("%w: signature is not hex", ErrInvalidInput)
	}

	ok, err := s.signer.Verify(common.BytesToHash(digest), sig)
	if err != nil {
		return false, fmt.Errorf("verify signature: %w", err)
	}
	return ok, nil
}

func ensure0x(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}

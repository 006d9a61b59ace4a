package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/pricing"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// Quote prices the cover in THB and converts it at the current exchange rate.
func (s *Insurance) Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error) {
	product, err := pricing.ParseProduct(req.Product)
	if err != nil {
		return QuoteResult{}, err
	}

	quote, err := pricing.CalculatePremium(pricing.QuoteInput{
		Product:               product,
		Age:                   req.Age,
		Gender:                pricing.Gender(req.Gender),
		Smoker:                req.Smoker,
		PreExistingConditions: req.PreExistingConditions,
		SumAssured:            req.SumAssured,
		TermYears:             req.TermYears,
	})
	if err != nil {
		return QuoteResult{}, fmt.Errorf("calculate premium: %w", err)
	}

	r, err := s.rates.Current(ctx)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("get exchange rate: %w", err)
	}

	return newQuoteResult(quote, r), nil
}

func newQuoteResult(q pricing.Quote, r rate.Rate) QuoteResult {
	return QuoteResult{
		Product:       string(q.Product),
		PremiumTHB:    q.Premium,
		PremiumETH:    r.THBToETH(q.Premium),
		PremiumWei:    r.THBToWei(q.Premium).String(),
		SumAssuredTHB: q.SumAssured,
		SumAssuredWei: r.THBToWei(q.SumAssured).String(),
		TermYears:     q.TermYears,
		CoverageDays:  int(q.Coverage.Hours() / 24),
		Rate:          r,
	}
}

// draft is a quoted, signed policy that has not been mirrored yet.
type draft struct {
	policy repository.Policy
	quote  QuoteResult
	auth   signature.Authorization
	holder common.Address
}

func (s *Insurance) prepare(ctx context.Context, userID string, req PurchaseRequest) (draft, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return draft{}, ErrUserNotFound
		}
		return draft{}, fmt.Errorf("get user: %w", err)
	}

	holderHex := req.Holder
	if holderHex == "" {
		holderHex = user.WalletAddress
	}
	if holderHex == "" {
		return draft{}, ErrNoWallet
	}
	if !common.IsHexAddress(holderHex) {
		return draft{}, fmt.Errorf("%w: holder %q is not an address", ErrInvalidInput, holderHex)
	}
	holder := common.HexToAddress(holderHex)

	quote, err := s.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return draft{}, err
	}

	now := TimeNow().UTC()
	expiresAt := now.AddDate(0, 0, quote.CoverageDays)
	policyID := crypto.Keccak256Hash([]byte(uuid.NewString()))

	premiumWei, _ := new(big.Int).SetString(quote.PremiumWei, 10)
	sumAssuredWei, _ := new(big.Int).SetString(quote.SumAssuredWei, 10)

	auth, err := s.signer.SignPurchase(signature.PurchaseFields{
		PolicyID:   policyID,
		Holder:     holder,
		Premium:    premiumWei,
		SumAssured: sumAssuredWei,
		Expiry:     expiresAt.Unix(),
	})
	if err != nil {
		return draft{}, fmt.Errorf("sign purchase: %w", err)
	}

	return draft{
		policy: repository.Policy{
			ID:                    policyID.Hex(),
			UserID:                userID,
			Holder:                holder.Hex(),
			Product:               quote.Product,
			Age:                   req.Age,
			Gender:                req.Gender,
			Smoker:                req.Smoker,
			PreExistingConditions: req.PreExistingConditions,
			TermYears:             quote.TermYears,
			PremiumTHB:            quote.PremiumTHB,
			SumAssuredTHB:         quote.SumAssuredTHB,
			PremiumWei:            quote.PremiumWei,
			SumAssuredWei:         quote.SumAssuredWei,
			ExchangeRate:          quote.Rate.THBPerETH,
			StartAt:               now,
			PeriodStartAt:         now,
			ExpiresAt:             expiresAt,
			Status:                repository.PolicyPending,
			LastAction:            repository.ActionPurchase,
		},
		quote:  quote,
		auth:   auth,
		holder: holder,
	}, nil
}

// Authorize signs a purchase for the holder to submit from their own wallet.
// The policy is mirrored as pending until the sync job sees it on-chain.
func (s *Insurance) Authorize(ctx context.Context, userID string, req PurchaseRequest) (AuthorizationBundle, error) {
	d, err := s.prepare(ctx, userID, req)
	if err != nil {
		return AuthorizationBundle{}, err
	}

	if err := s.repo.SavePolicy(ctx, &d.policy); err != nil {
		return AuthorizationBundle{}, fmt.Errorf("save policy: %w", err)
	}

	s.logs.Infow("purchase authorized", "user_id", userID, "policy_id", d.policy.ID, "product", d.policy.Product)

	return AuthorizationBundle{
		PolicyID:      d.policy.ID,
		Action:        string(d.auth.Action),
		Holder:        d.policy.Holder,
		Contract:      s.signer.Contract().Hex(),
		ChainID:       s.signer.ChainID().String(),
		PremiumWei:    d.policy.PremiumWei,
		SumAssuredWei: d.policy.SumAssuredWei,
		Expiry:        d.policy.ExpiresAt.Unix(),
		Nonce:         d.auth.Nonce.String(),
		Digest:        d.auth.Digest.Hex(),
		Signature:     hexutil.Encode(d.auth.Signature),
		Signer:        d.auth.Signer.Hex(),
		Quote:         d.quote,
	}, nil
}

// Purchase signs and relays purchasePolicy, paying the premium from the relayer.
func (s *Insurance) Purchase(ctx context.Context, userID string, req PurchaseRequest) (PolicyRecord, error) {
	d, err := s.prepare(ctx, userID, req)
	if err != nil {
		return PolicyRecord{}, err
	}

	premiumWei, _ := new(big.Int).SetString(d.policy.PremiumWei, 10)
	sumAssuredWei, _ := new(big.Int).SetString(d.policy.SumAssuredWei, 10)

	txHash, err := s.contract.PurchasePolicy(ctx, ethereum.PurchaseCall{
		PolicyID:   common.HexToHash(d.policy.ID),
		Holder:     d.holder,
		Premium:    premiumWei,
		SumAssured: sumAssuredWei,
		Expiry:     d.policy.ExpiresAt.Unix(),
		Nonce:      d.auth.Nonce,
		Signature:  d.auth.Signature,
	})
	if err != nil {
		return PolicyRecord{}, fmt.Errorf("relay purchase: %w", err)
	}

	d.policy.TxHash = txHash
	d.policy.TxStatus = repository.TxPending
	if err := s.repo.SavePolicy(ctx, &d.policy); err != nil {
		s.logs.Errorw("purchase relayed but mirror write failed", "policy_id", d.policy.ID, "tx_hash", txHash, "error", err)
		return PolicyRecord{}, fmt.Errorf("save policy: %w", err)
	}

	s.logs.Infow("purchase relayed", "user_id", userID, "policy_id", d.policy.ID, "tx_hash", txHash)
	return toPolicyRecord(d.policy), nil
}

package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/pricing"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetPolicy returns the mirror after reconciling it with the contract. Reconciliation
// is skipped while a relayed transaction is still pending.
func (s *Insurance) GetPolicy(ctx context.Context, userID, policyID string) (PolicyRecord, error) {
	policy, err := s.ownedPolicy(ctx, userID, policyID)
	if err != nil {
		return PolicyRecord{}, err
	}

	if policy.TxStatus != repository.TxPending {
		s.reconcile(ctx, &policy)
	}

	return toPolicyRecord(policy), nil
}

// reconcile overwrites the lifecycle fields of policy with the on-chain record.
// It reports whether the policy was found on-chain.
func (s *Insurance) reconcile(ctx context.Context, policy *repository.Policy) bool {
	onChain, err := s.contract.GetPolicy(ctx, common.HexToHash(policy.ID))
	if err != nil {
		if !errors.Is(err, ethereum.ErrPolicyNotFound) {
			s.logs.Warnw("failed to read policy from chain", "policy_id", policy.ID, "error", err)
		}
		return false
	}

	status := chainStatus(onChain, TimeNow())
	if status == policy.Status &&
		onChain.IsActive == policy.IsActive &&
		onChain.IsClaimed == policy.IsClaimed &&
		onChain.Expiry.Equal(policy.ExpiresAt.Truncate(time.Second)) {
		return true
	}

	s.logs.Warnw("policy mirror diverged from chain",
		"policy_id", policy.ID,
		"mirror_status", policy.Status,
		"chain_status", status,
		"chain_expiry", onChain.Expiry,
	)

	policy.Status = status
	policy.IsActive = onChain.IsActive && status == repository.PolicyActive
	policy.IsClaimed = onChain.IsClaimed
	policy.ExpiresAt = onChain.Expiry
	if policy.TxStatus == repository.TxNone && policy.LastAction == repository.ActionPurchase {
		policy.TxStatus = repository.TxConfirmed
	}

	if err := s.repo.UpdatePolicy(ctx, policy); err != nil {
		s.logs.Errorw("failed to write reconciled policy", "policy_id", policy.ID, "error", err)
	}
	return true
}

func chainStatus(p *ethereum.OnChainPolicy, now time.Time) repository.PolicyStatus {
	switch {
	case p.IsClaimed:
		return repository.PolicyClaimed
	case !p.IsActive:
		return repository.PolicyCancelled
	case !now.Before(p.Expiry):
		return repository.PolicyExpired
	default:
		return repository.PolicyActive
	}
}

func (s *Insurance) ListPolicies(ctx context.Context, userID string) ([]PolicyRecord, error) {
	policies, err := s.repo.GetPoliciesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get policies by user: %w", err)
	}

	records := make([]PolicyRecord, 0, len(policies))
	for _, p := range policies {
		records = append(records, toPolicyRecord(p))
	}
	return records, nil
}

func (s *Insurance) ListClaims(ctx context.Context, userID string) ([]ClaimRecord, error) {
	claims, err := s.repo.GetClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get claims by user: %w", err)
	}

	records := make([]ClaimRecord, 0, len(claims))
	for _, c := range claims {
		records = append(records, toClaimRecord(c))
	}
	return records, nil
}

// RefundQuote prices a cancellation at the current time without relaying anything.
func (s *Insurance) RefundQuote(ctx context.Context, userID, policyID string) (RefundQuote, error) {
	policy, err := s.ownedPolicy(ctx, userID, policyID)
	if err != nil {
		return RefundQuote{}, err
	}
	return refundFor(policy, TimeNow())
}

func refundFor(policy repository.Policy, now time.Time) (RefundQuote, error) {
	view := policyView(policy)
	if view.IsClaimed {
		return RefundQuote{}, pricing.ErrAlreadyClaimed
	}
	if !view.IsActive {
		return RefundQuote{}, pricing.ErrPolicyInactive
	}

	refund := pricing.CalculateRefund(view, now)
	refundWei, err := proRataWei(policy.PremiumWei, refund, policy.PremiumTHB)
	if err != nil {
		return RefundQuote{}, err
	}

	return RefundQuote{
		PolicyID:   policy.ID,
		PremiumTHB: policy.PremiumTHB,
		RefundTHB:  refund,
		RefundWei:  refundWei.String(),
	}, nil
}

// Cancel signs and relays cancelPolicy with the refund owed at the current time.
func (s *Insurance) Cancel(ctx context.Context, userID, policyID string) (CancelResult, error) {
	policy, err := s.writablePolicy(ctx, userID, policyID)
	if err != nil {
		return CancelResult{}, err
	}

	refund, err := refundFor(policy, TimeNow())
	if err != nil {
		return CancelResult{}, err
	}
	refundWei, _ := new(big.Int).SetString(refund.RefundWei, 10)

	id := common.HexToHash(policy.ID)
	holder := common.HexToAddress(policy.Holder)
	auth, err := s.signer.SignCancel(signature.CancelFields{
		PolicyID: id,
		Holder:   holder,
		Refund:   refundWei,
	})
	if err != nil {
		return CancelResult{}, fmt.Errorf("sign cancel: %w", err)
	}

	txHash, err := s.contract.CancelPolicy(ctx, ethereum.CancelCall{
		PolicyID:  id,
		Holder:    holder,
		Refund:    refundWei,
		Nonce:     auth.Nonce,
		Signature: auth.Signature,
	})
	if err != nil {
		return CancelResult{}, fmt.Errorf("relay cancel: %w", err)
	}

	policy.PreviousStatus = policy.Status
	policy.Status = repository.PolicyCancelled
	policy.IsActive = false
	s.markRelayed(&policy, repository.ActionCancel, txHash)
	if err := s.repo.UpdatePolicy(ctx, &policy); err != nil {
		return CancelResult{}, fmt.Errorf("update policy: %w", err)
	}

	s.logs.Infow("cancellation relayed", "user_id", userID, "policy_id", policy.ID, "refund_thb", refund.RefundTHB.String(), "tx_hash", txHash)
	return CancelResult{
		Policy: toPolicyRecord(policy),
		Refund: refund,
		TxHash: txHash,
	}, nil
}

// FileClaim applies the claim rules, then signs and relays the payout.
func (s *Insurance) FileClaim(ctx context.Context, userID, policyID string, req ClaimRequest) (ClaimResult, error) {
	policy, err := s.writablePolicy(ctx, userID, policyID)
	if err != nil {
		return ClaimResult{}, err
	}

	payout, err := pricing.CheckClaim(policyView(policy), req.AmountTHB, TimeNow())
	if err != nil {
		return ClaimResult{}, err
	}

	payoutWei, err := proRataWei(policy.SumAssuredWei, payout, policy.SumAssuredTHB)
	if err != nil {
		return ClaimResult{}, err
	}

	id := common.HexToHash(policy.ID)
	holder := common.HexToAddress(policy.Holder)
	auth, err := s.signer.SignClaim(signature.ClaimFields{
		PolicyID: id,
		Holder:   holder,
		Amount:   payoutWei,
	})
	if err != nil {
		return ClaimResult{}, fmt.Errorf("sign claim: %w", err)
	}

	txHash, err := s.contract.Claim(ctx, ethereum.ClaimCall{
		PolicyID:  id,
		Holder:    holder,
		Amount:    payoutWei,
		Nonce:     auth.Nonce,
		Signature: auth.Signature,
	})
	if err != nil {
		return ClaimResult{}, fmt.Errorf("relay claim: %w", err)
	}

	claim := repository.Claim{
		ID:           uuid.NewString(),
		PolicyID:     policy.ID,
		UserID:       userID,
		AmountTHB:    payout,
		AmountWei:    payoutWei.String(),
		ExchangeRate: policy.ExchangeRate,
		Reason:       req.Reason,
		Status:       repository.ClaimPending,
		TxHash:       txHash,
	}
	if err := s.repo.SaveClaim(ctx, &claim); err != nil {
		return ClaimResult{}, fmt.Errorf("save claim: %w", err)
	}

	policy.PreviousStatus = policy.Status
	policy.Status = repository.PolicyClaimed
	policy.IsClaimed = true
	policy.IsActive = false
	s.markRelayed(&policy, repository.ActionClaim, txHash)
	if err := s.repo.UpdatePolicy(ctx, &policy); err != nil {
		s.logs.Errorw("claim relayed but policy mirror write failed", "policy_id", policy.ID, "claim_id", claim.ID, "tx_hash", txHash, "error", err)
		return ClaimResult{}, fmt.Errorf("update policy: %w", err)
	}

	s.logs.Infow("claim relayed", "user_id", userID, "policy_id", policy.ID, "claim_id", claim.ID, "amount_thb", payout.String(), "tx_hash", txHash)
	return ClaimResult{
		Claim:  toClaimRecord(claim),
		Policy: toPolicyRecord(policy),
	}, nil
}

// Renew re-quotes the policy at the holder's current age and extends its expiry.
func (s *Insurance) Renew(ctx context.Context, userID, policyID string, age int) (RenewResult, error) {
	policy, err := s.writablePolicy(ctx, userID, policyID)
	if err != nil {
		return RenewResult{}, err
	}

	newExpiry, err := pricing.CheckRenewal(policyView(policy), TimeNow())
	if err != nil {
		return RenewResult{}, err
	}

	quote, err := s.Quote(ctx, QuoteRequest{
		Product:               policy.Product,
		Age:                   age,
		Gender:                policy.Gender,
		Smoker:                policy.Smoker,
		PreExistingConditions: policy.PreExistingConditions,
		SumAssured:            policy.SumAssuredTHB,
		TermYears:             policy.TermYears,
	})
	if err != nil {
		return RenewResult{}, err
	}
	premiumWei, _ := new(big.Int).SetString(quote.PremiumWei, 10)

	id := common.HexToHash(policy.ID)
	holder := common.HexToAddress(policy.Holder)
	auth, err := s.signer.SignRenew(signature.RenewFields{
		PolicyID:  id,
		Holder:    holder,
		Premium:   premiumWei,
		NewExpiry: newExpiry.Unix(),
	})
	if err != nil {
		return RenewResult{}, fmt.Errorf("sign renew: %w", err)
	}

	txHash, err := s.contract.RenewPolicy(ctx, ethereum.RenewCall{
		PolicyID:  id,
		Holder:    holder,
		Premium:   premiumWei,
		NewExpiry: newExpiry.Unix(),
		Nonce:     auth.Nonce,
		Signature: auth.Signature,
	})
	if err != nil {
		return RenewResult{}, fmt.Errorf("relay renew: %w", err)
	}

	startNewPeriod(&policy, quote, newExpiry)
	policy.Age = age
	s.markRelayed(&policy, repository.ActionRenew, txHash)
	if err := s.repo.UpdatePolicy(ctx, &policy); err != nil {
		return RenewResult{}, fmt.Errorf("update policy: %w", err)
	}

	s.logs.Infow("renewal relayed", "user_id", userID, "policy_id", policy.ID, "new_expiry", newExpiry, "tx_hash", txHash)
	return RenewResult{
		Policy:    toPolicyRecord(policy),
		Quote:     quote,
		NewExpiry: newExpiry,
		TxHash:    txHash,
	}, nil
}

// startNewPeriod rolls the renewed coverage period into policy and keeps the
// current one so a reverted renewal can restore it.
func startNewPeriod(policy *repository.Policy, quote QuoteResult, newExpiry time.Time) {
	previousExpiry := policy.ExpiresAt
	previousStart := policy.CurrentPeriodStart()
	policy.PreviousStatus = policy.Status
	policy.PreviousExpiresAt = &previousExpiry
	policy.PreviousPeriodStartAt = &previousStart
	policy.PreviousPremiumTHB = policy.PremiumTHB
	policy.PreviousPremiumWei = policy.PremiumWei

	policy.PeriodStartAt = newExpiry.Add(-pricing.Coverage(pricing.Product(policy.Product), policy.TermYears))
	policy.ExpiresAt = newExpiry
	policy.PremiumTHB = quote.PremiumTHB
	policy.PremiumWei = quote.PremiumWei
	policy.Status = repository.PolicyActive
	policy.IsActive = true
}

func (s *Insurance) markRelayed(policy *repository.Policy, action repository.Action, txHash string) {
	policy.LastAction = action
	policy.TxHash = txHash
	policy.TxStatus = repository.TxPending
}

func policyView(p repository.Policy) pricing.PolicyView {
	return pricing.PolicyView{
		Product:       pricing.Product(p.Product),
		Premium:       p.PremiumTHB,
		SumAssured:    p.SumAssuredTHB,
		TermYears:     p.TermYears,
		StartAt:       p.StartAt,
		PeriodStartAt: p.CurrentPeriodStart(),
		ExpiresAt:     p.ExpiresAt,
		IsActive:      p.IsActive && p.Status == repository.PolicyActive,
		IsLapsed:      p.Status == repository.PolicyExpired && !p.IsClaimed,
		IsClaimed:     p.IsClaimed,
	}
}

// proRataWei returns totalWei * part / whole in whole wei. Refunds and payouts are
// shares of the wei locked at purchase, not conversions at the current rate.
func proRataWei(totalWei string, part, whole decimal.Decimal) (*big.Int, error) {
	total, err := decimal.NewFromString(totalWei)
	if err != nil {
		return nil, fmt.Errorf("parse wei amount %q: %w", totalWei, err)
	}
	if !whole.IsPositive() || !part.IsPositive() {
		return big.NewInt(0), nil
	}
	return total.Mul(part).Div(whole).Truncate(0).BigInt(), nil
}

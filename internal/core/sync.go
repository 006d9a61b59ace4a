package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/metrics"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

// SyncPending settles the mirror against the chain:
//   - relayed transactions are resolved from their receipts; a revert restores
//     the state the policy had before the call,
//   - holder-submitted purchases are looked up on-chain and failed once their
//     authorization is older than authorizationTTL,
//   - active policies past their expiry are marked expired,
//   - policies that missed a claim filed against them are marked claimed.
func (s *Insurance) SyncPending(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	policies, err := s.repo.GetPoliciesByTxStatus(ctx, repository.TxPending)
	if err != nil {
		return report, fmt.Errorf("get pending policies: %w", err)
	}
	claims, err := s.repo.GetClaimsByStatus(ctx, repository.ClaimPending)
	if err != nil {
		return report, fmt.Errorf("get pending claims: %w", err)
	}

	statuses, fetchErr := s.txStatuses(ctx, policies, claims)
	if fetchErr != nil {
		s.logs.Warnw("some transactions could not be fetched", "error", fetchErr)
	}

	var errs error
	tracked := make(map[string]struct{}, len(policies))
	for i := range policies {
		tracked[policies[i].ID] = struct{}{}
	}
	for i := range policies {
		p := &policies[i]
		switch statuses[p.TxHash] {
		case ethereum.TxSucceeded:
			confirmPolicy(p)
			report.Confirmed++
		case ethereum.TxReverted:
			revertPolicy(p)
			report.Reverted++
		default:
			report.Pending++
			continue
		}
		errs = errors.Join(errs, s.writePolicy(ctx, p))
	}

	for i := range claims {
		c := &claims[i]
		switch statuses[c.TxHash] {
		case ethereum.TxSucceeded:
			c.Status = repository.ClaimApproved
		case ethereum.TxReverted:
			c.Status = repository.ClaimFailed
		}
		if _, ok := tracked[c.PolicyID]; !ok && c.Status != repository.ClaimFailed {
			errs = errors.Join(errs, s.markPolicyClaimed(ctx, c))
		}
		if c.Status == repository.ClaimPending {
			continue
		}
		if err := s.repo.UpdateClaim(ctx, c); err != nil {
			metrics.RecordSyncUpdate("claim", "error")
			errs = errors.Join(errs, fmt.Errorf("update claim %s: %w", c.ID, err))
			continue
		}
		metrics.RecordSyncUpdate("claim", string(c.Status))
		s.logs.Infow("claim settled", "claim_id", c.ID, "policy_id", c.PolicyID, "status", c.Status)
	}

	n, err := s.syncAuthorized(ctx)
	report.Confirmed += n
	errs = errors.Join(errs, err)

	n, err = s.expirePolicies(ctx)
	report.Expired += n
	errs = errors.Join(errs, err)

	s.logs.Infow("mirror sync finished",
		"confirmed", report.Confirmed,
		"reverted", report.Reverted,
		"expired", report.Expired,
		"pending", report.Pending,
	)
	return report, errs
}

func (s *Insurance) txStatuses(ctx context.Context, policies []repository.Policy, claims []repository.Claim) (map[string]ethereum.TxStatus, error) {
	seen := make(map[string]struct{})
	var hashes []string
	add := func(h string) {
		if h == "" {
			return
		}
		if _, ok := seen[h]; ok {
			return
		}
		seen[h] = struct{}{}
		hashes = append(hashes, h)
	}
	for _, p := range policies {
		add(p.TxHash)
	}
	for _, c := range claims {
		add(c.TxHash)
	}

	statuses := make(map[string]ethereum.TxStatus, len(hashes))
	if len(hashes) == 0 {
		return statuses, nil
	}

	txs, err := s.chain.FetchTransactions(ctx, hashes)
	for _, tx := range txs {
		statuses[tx.Hash] = tx.Status
	}
	return statuses, err
}

// markPolicyClaimed repairs a policy whose mirror missed the claim filed against it.
func (s *Insurance) markPolicyClaimed(ctx context.Context, c *repository.Claim) error {
	p, err := s.repo.GetPolicy(ctx, c.PolicyID)
	if err != nil {
		return fmt.Errorf("get claimed policy %s: %w", c.PolicyID, err)
	}
	if p.IsClaimed {
		return nil
	}

	s.logs.Warnw("policy mirror missed its claim", "policy_id", p.ID, "claim_id", c.ID, "status", p.Status)
	p.PreviousStatus = p.Status
	p.Status = repository.PolicyClaimed
	p.IsClaimed = true
	p.IsActive = false
	p.LastAction = repository.ActionClaim
	p.TxHash = c.TxHash
	p.TxStatus = repository.TxPending
	if c.Status == repository.ClaimApproved {
		confirmPolicy(&p)
	}
	return s.writePolicy(ctx, &p)
}

func confirmPolicy(p *repository.Policy) {
	p.TxStatus = repository.TxConfirmed
	if p.LastAction == repository.ActionPurchase {
		p.Status = repository.PolicyActive
		p.IsActive = true
	}
	clearPrevious(p)
}

func clearPrevious(p *repository.Policy) {
	p.PreviousStatus = ""
	p.PreviousExpiresAt = nil
	p.PreviousPeriodStartAt = nil
	p.PreviousPremiumTHB = decimal.Zero
	p.PreviousPremiumWei = ""
}

func revertPolicy(p *repository.Policy) {
	p.TxStatus = repository.TxFailed
	switch p.LastAction {
	case repository.ActionPurchase:
		p.Status = repository.PolicyFailed
		p.IsActive = false
	case repository.ActionCancel, repository.ActionClaim:
		p.Status = p.PreviousStatus
		p.IsActive = p.Status == repository.PolicyActive
		p.IsClaimed = false
	case repository.ActionRenew:
		if p.PreviousExpiresAt != nil {
			p.ExpiresAt = *p.PreviousExpiresAt
		}
		if p.PreviousPeriodStartAt != nil {
			p.PeriodStartAt = *p.PreviousPeriodStartAt
			p.PremiumTHB = p.PreviousPremiumTHB
			p.PremiumWei = p.PreviousPremiumWei
		}
		if p.PreviousStatus != "" {
			p.Status = p.PreviousStatus
			p.IsActive = p.Status == repository.PolicyActive
		}
	}
	clearPrevious(p)
}

func (s *Insurance) writePolicy(ctx context.Context, p *repository.Policy) error {
	if err := s.repo.UpdatePolicy(ctx, p); err != nil {
		metrics.RecordSyncUpdate("policy", "error")
		return fmt.Errorf("update policy %s: %w", p.ID, err)
	}
	metrics.RecordSyncUpdate("policy", string(p.Status))
	s.logs.Infow("policy settled", "policy_id", p.ID, "action", p.LastAction, "status", p.Status, "tx_status", p.TxStatus)
	return nil
}

// syncAuthorized resolves purchases the holder submits directly; the relay never sees their tx.
func (s *Insurance) syncAuthorized(ctx context.Context) (int, error) {
	pending, err := s.repo.GetPoliciesByStatus(ctx, repository.PolicyPending)
	if err != nil {
		return 0, fmt.Errorf("get pending policies: %w", err)
	}

	var (
		confirmed int
		errs      error
	)
	now := TimeNow()
	for i := range pending {
		p := &pending[i]
		if p.TxStatus != repository.TxNone {
			continue
		}

		if s.reconcile(ctx, p) {
			confirmed++
			continue
		}

		if now.Sub(p.CreatedAt) > s.authorizationTTL {
			p.Status = repository.PolicyFailed
			p.TxStatus = repository.TxFailed
			errs = errors.Join(errs, s.writePolicy(ctx, p))
		}
	}
	return confirmed, errs
}

func (s *Insurance) expirePolicies(ctx context.Context) (int, error) {
	active, err := s.repo.GetPoliciesByStatus(ctx, repository.PolicyActive)
	if err != nil {
		return 0, fmt.Errorf("get active policies: %w", err)
	}

	var (
		expired int
		errs    error
	)
	now := TimeNow()
	for i := range active {
		p := &active[i]
		if p.TxStatus == repository.TxPending || now.Before(p.ExpiresAt) {
			continue
		}
		p.Status = repository.PolicyExpired
		p.IsActive = false
		if err := s.writePolicy(ctx, p); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		expired++
	}
	return expired, errs
}

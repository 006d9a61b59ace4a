package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const renewalWindow = 30 * day

var waitingPeriods = map[Product]time.Duration{
	Health:     30 * day,
	HealthLite: 60 * day,
}

// CheckClaim applies the claim rules and returns the amount to pay out.
// Life products always pay the full sum assured, so a zero amount means "full".
func CheckClaim(p PolicyView, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if p.IsClaimed {
		return decimal.Zero, ErrAlreadyClaimed
	}
	if !p.IsActive {
		return decimal.Zero, ErrPolicyInactive
	}
	if !now.Before(p.ExpiresAt) {
		return decimal.Zero, ErrPolicyExpired
	}
	if wait := waitingPeriods[p.Product]; now.Before(p.StartAt.Add(wait)) {
		return decimal.Zero, fmt.Errorf("%w: claims open %s", ErrWaitingPeriod, p.StartAt.Add(wait).Format(time.DateOnly))
	}

	if p.Product.IsLife() {
		if amount.IsZero() || amount.Equal(p.SumAssured) {
			return p.SumAssured, nil
		}
		return decimal.Zero, fmt.Errorf("%w: life claims pay the full sum assured %s", ErrInvalidClaimAmount, p.SumAssured)
	}

	if !amount.IsPositive() || amount.GreaterThan(p.SumAssured) {
		return decimal.Zero, fmt.Errorf("%w: %s exceeds cover %s", ErrInvalidClaimAmount, amount, p.SumAssured)
	}
	return amount, nil
}

// CheckRenewal verifies the policy may be renewed at now and returns its new expiry.
// Lapsed policies stay renewable through the grace period after expiry.
func CheckRenewal(p PolicyView, now time.Time) (time.Time, error) {
	if p.IsClaimed {
		return time.Time{}, ErrAlreadyClaimed
	}
	if !p.IsActive && !p.IsLapsed {
		return time.Time{}, ErrPolicyInactive
	}
	if now.Before(p.ExpiresAt.Add(-renewalWindow)) || now.After(p.ExpiresAt.Add(renewalWindow)) {
		return time.Time{}, ErrRenewalWindow
	}

	from := p.ExpiresAt
	if now.After(from) {
		from = now
	}
	return from.Add(Coverage(p.Product, p.TermYears)), nil
}

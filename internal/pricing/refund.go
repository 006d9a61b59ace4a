package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const freeLook = 15 * day

type refundTier struct {
	maxElapsed decimal.Decimal
	pct        decimal.Decimal
}

var refundTiers = []refundTier{
	{percent(25), percent(80)},
	{percent(50), percent(60)},
	{percent(75), percent(40)},
}

// CalculateRefund returns the THB refunded when a policy is cancelled at now.
// Full premium inside the free-look window, nothing for lite products after it,
// otherwise the unused share of the premium scaled by the elapsed-time tier.
// Only the current coverage period counts.
func CalculateRefund(p PolicyView, now time.Time) decimal.Decimal {
	start := p.periodStart()
	if !now.Before(p.ExpiresAt) || !p.ExpiresAt.After(start) {
		return decimal.Zero
	}
	if now.Before(start.Add(freeLook)) {
		return p.Premium
	}
	if p.Product.IsLite() {
		return decimal.Zero
	}

	elapsed := decimal.NewFromInt(int64(now.Sub(start)))
	total := decimal.NewFromInt(int64(p.ExpiresAt.Sub(start)))
	fraction := elapsed.Div(total)

	for _, tier := range refundTiers {
		if fraction.LessThanOrEqual(tier.maxElapsed) {
			unused := decimal.NewFromInt(1).Sub(fraction)
			return p.Premium.Mul(unused).Mul(tier.pct).Round(2)
		}
	}
	return decimal.Zero
}

package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	healthBase = []band{
		{0, 17, decimal.NewFromInt(3000)},
		{18, 30, decimal.NewFromInt(4500)},
		{31, 40, decimal.NewFromInt(6000)},
		{41, 50, decimal.NewFromInt(9000)},
		{51, 60, decimal.NewFromInt(14000)},
		{61, 70, decimal.NewFromInt(21000)},
	}
	healthMinSum = decimal.NewFromInt(100_000)
	healthMaxSum = decimal.NewFromInt(5_000_000)

	healthLiteRate = []band{
		{18, 35, decimal.New(10, -3)},
		{36, 50, decimal.New(15, -3)},
		{51, 60, decimal.New(22, -3)},
	}
	healthLiteSums = []decimal.Decimal{
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(300_000),
		decimal.NewFromInt(500_000),
	}
)

// healthPremium: age-band base + 0.5% of cover, loaded for smokers and pre-existing conditions.
func healthPremium(in QuoteInput) (decimal.Decimal, error) {
	base, ok := lookupBand(healthBase, in.Age)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: age %d", ErrNotEligible, in.Age)
	}
	if !inRange(in.SumAssured, healthMinSum, healthMaxSum) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidSumAssured, in.SumAssured)
	}

	premium := base.Add(in.SumAssured.Mul(decimal.New(5, -3)))
	if in.Smoker {
		premium = premium.Add(base.Mul(percent(20)))
	}
	if in.PreExistingConditions {
		premium = premium.Add(base.Mul(percent(30)))
	}
	return premium, nil
}

func healthLitePremium(in QuoteInput) (decimal.Decimal, error) {
	if in.PreExistingConditions {
		return decimal.Zero, fmt.Errorf("%w: pre-existing conditions", ErrNotEligible)
	}
	rate, ok := lookupBand(healthLiteRate, in.Age)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: age %d", ErrNotEligible, in.Age)
	}
	if !oneOf(in.SumAssured, healthLiteSums...) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidSumAssured, in.SumAssured)
	}

	premium := in.SumAssured.Mul(rate)
	if in.Smoker {
		premium = premium.Mul(decimal.New(110, -2))
	}
	return premium, nil
}

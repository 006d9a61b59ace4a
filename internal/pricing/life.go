package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	lifeMinTerm = 5
	lifeMaxTerm = 30
)

var (
	// rate per 1,000 THB of cover, per year
	lifeRate = []band{
		{18, 30, decimal.New(12, -1)},
		{31, 40, decimal.New(18, -1)},
		{41, 50, decimal.New(32, -1)},
		{51, 60, decimal.New(60, -1)},
		{61, 65, decimal.New(100, -1)},
	}
	lifeMinSum = decimal.NewFromInt(100_000)
	lifeMaxSum = decimal.NewFromInt(10_000_000)

	lifeLiteRate = []band{
		{18, 40, decimal.New(4, -3)},
		{41, 60, decimal.New(8, -3)},
	}
	lifeLiteSums = []decimal.Decimal{
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(200_000),
		decimal.NewFromInt(500_000),
	}
)

func lifePremium(in QuoteInput) (decimal.Decimal, error) {
	rate, ok := lookupBand(lifeRate, in.Age)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: age %d", ErrNotEligible, in.Age)
	}
	if !inRange(in.SumAssured, lifeMinSum, lifeMaxSum) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidSumAssured, in.SumAssured)
	}
	if in.TermYears < lifeMinTerm || in.TermYears > lifeMaxTerm {
		return decimal.Zero, fmt.Errorf("%w: %d years", ErrInvalidTerm, in.TermYears)
	}

	annual := in.SumAssured.Div(decimal.NewFromInt(1000)).Mul(rate)
	if in.Gender == Female {
		annual = annual.Mul(decimal.New(9, -1))
	}
	if in.Smoker {
		annual = annual.Mul(decimal.New(15, -1))
	}
	loading := annual.Mul(percent(int64(in.TermYears - lifeMinTerm)))
	annual = annual.Add(loading)

	return annual.Mul(decimal.NewFromInt(int64(in.TermYears))), nil
}

func lifeLitePremium(in QuoteInput) (decimal.Decimal, error) {
	rate, ok := lookupBand(lifeLiteRate, in.Age)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: age %d", ErrNotEligible, in.Age)
	}
	if !oneOf(in.SumAssured, lifeLiteSums...) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidSumAssured, in.SumAssured)
	}

	premium := in.SumAssured.Mul(rate)
	if in.Smoker {
		premium = premium.Mul(decimal.New(125, -2))
	}
	return premium, nil
}

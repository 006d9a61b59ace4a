// Package pricing holds the premium tables, the cancellation refund schedule and the
// claim and renewal rules for every insurance product.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct     error = errors.New("unknown product")
	ErrNotEligible        error = errors.New("applicant not eligible")
	ErrInvalidSumAssured  error = errors.New("invalid sum assured")
	ErrInvalidTerm        error = errors.New("invalid policy term")
	ErrPolicyInactive     error = errors.New("policy is not active")
	ErrAlreadyClaimed     error = errors.New("policy already claimed")
	ErrPolicyExpired      error = errors.New("policy expired")
	ErrWaitingPeriod      error = errors.New("claim filed within waiting period")
	ErrInvalidClaimAmount error = errors.New("invalid claim amount")
	ErrRenewalWindow      error = errors.New("policy outside renewal window")
)

type Product string

const (
	Health     Product = "health"
	HealthLite Product = "health_lite"
	Life       Product = "life"
	LifeLite   Product = "life_lite"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

const day = 24 * time.Hour

// Products lists every product that can be quoted.
var Products = []Product{Health, HealthLite, Life, LifeLite}

func ParseProduct(s string) (Product, error) {
	for _, p := range Products {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProduct, s)
}

func (p Product) IsLite() bool {
	return p == HealthLite || p == LifeLite
}

func (p Product) IsLife() bool {
	return p == Life || p == LifeLite
}

// QuoteInput describes the applicant and the requested cover.
type QuoteInput struct {
	Product               Product
	Age                   int
	Gender                Gender
	Smoker                bool
	PreExistingConditions bool
	SumAssured            decimal.Decimal
	TermYears             int
}

// Quote is the priced result of a QuoteInput.
type Quote struct {
	Product    Product
	Premium    decimal.Decimal
	SumAssured decimal.Decimal
	TermYears  int
	Coverage   time.Duration
}

// PolicyView is the subset of a policy the claim, refund and renewal rules look at.
type PolicyView struct {
	Product       Product
	Premium       decimal.Decimal
	SumAssured    decimal.Decimal
	TermYears     int
	StartAt       time.Time
	// PeriodStartAt starts the coverage period Premium pays for. Zero means StartAt.
	PeriodStartAt time.Time
	ExpiresAt     time.Time
	IsActive      bool
	// IsLapsed marks a policy that ended by reaching its expiry.
	IsLapsed      bool
	IsClaimed     bool
}

func (p PolicyView) periodStart() time.Time {
	if p.PeriodStartAt.IsZero() {
		return p.StartAt
	}
	return p.PeriodStartAt
}

// Coverage returns how long one period of cover lasts.
func Coverage(product Product, termYears int) time.Duration {
	if product == Life && termYears > 0 {
		return time.Duration(termYears) * 365 * day
	}
	return 365 * day
}

// CalculatePremium prices the requested cover in THB.
func CalculatePremium(in QuoteInput) (Quote, error) {
	var (
		premium decimal.Decimal
		err     error
		term    = 1
	)

	switch in.Product {
	case Health:
		premium, err = healthPremium(in)
	case HealthLite:
		premium, err = healthLitePremium(in)
	case Life:
		premium, err = lifePremium(in)
		term = in.TermYears
	case LifeLite:
		premium, err = lifeLitePremium(in)
	default:
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownProduct, in.Product)
	}
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Product:    in.Product,
		Premium:    premium.Round(2),
		SumAssured: in.SumAssured,
		TermYears:  term,
		Coverage:   Coverage(in.Product, term),
	}, nil
}

type band struct {
	minAge, maxAge int
	value          decimal.Decimal
}

func lookupBand(bands []band, age int) (decimal.Decimal, bool) {
	for _, b := range bands {
		if age >= b.minAge && age <= b.maxAge {
			return b.value, true
		}
	}
	return decimal.Zero, false
}

func inRange(v, min, max decimal.Decimal) bool {
	return v.GreaterThanOrEqual(min) && v.LessThanOrEqual(max)
}

func oneOf(v decimal.Decimal, allowed ...decimal.Decimal) bool {
	for _, a := range allowed {
		if v.Equal(a) {
			return true
		}
	}
	return false
}

func percent(p int64) decimal.Decimal {
	return decimal.New(p, -2)
}

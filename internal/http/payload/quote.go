package payload

import (
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	Product               string          `json:"product"`
	Age                   int             `json:"age"`
	Gender                string          `json:"gender"`
	Smoker                bool            `json:"smoker"`
	PreExistingConditions bool            `json:"preExistingConditions"`
	SumAssured            decimal.Decimal `json:"sumAssured"`
	TermYears             int             `json:"termYears"`
}

func (q QuoteRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Product, validation.Required, validation.In(products...)),
		validation.Field(&q.Age, validation.Min(0), validation.Max(120)),
		validation.Field(&q.Gender, validation.In(genders...)),
		validation.Field(&q.SumAssured, positiveAmount),
		validation.Field(&q.TermYears, validation.Min(0), validation.Max(50)),
	)
}

func (q QuoteRequest) ToQuoteRequest() core.QuoteRequest {
	return core.QuoteRequest{
		Product:               q.Product,
		Age:                   q.Age,
		Gender:                q.Gender,
		Smoker:                q.Smoker,
		PreExistingConditions: q.PreExistingConditions,
		SumAssured:            q.SumAssured,
		TermYears:             q.TermYears,
	}
}

// PurchaseRequest is a quote plus an optional payout wallet.
type PurchaseRequest struct {
	QuoteRequest
	Holder string `json:"holder"`
}

func (p PurchaseRequest) Validate() error {
	if err := p.QuoteRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.Holder, isAddress),
	)
}

func (p PurchaseRequest) ToPurchaseRequest() core.PurchaseRequest {
	return core.PurchaseRequest{
		QuoteRequest: p.QuoteRequest.ToQuoteRequest(),
		Holder:       p.Holder,
	}
}

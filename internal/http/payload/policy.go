package payload

import (
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

// ClaimRequest files a claim; a zero amount on a life policy claims the full sum assured.
type ClaimRequest struct {
	AmountTHB decimal.Decimal `json:"amountThb"`
	Reason    string          `json:"reason"`
}

func (c ClaimRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AmountTHB, nonNegativeAmount),
		validation.Field(&c.Reason, validation.Length(0, 500)),
	)
}

func (c ClaimRequest) ToClaimRequest() core.ClaimRequest {
	return core.ClaimRequest{
		AmountTHB: c.AmountTHB,
		Reason:    c.Reason,
	}
}

type RenewRequest struct {
	Age int `json:"age"`
}

func (r RenewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Age, validation.Required, validation.Min(1), validation.Max(120)),
	)
}

type VerifyRequest struct {
	Digest    string `json:"digest"`
	Signature string `json:"signature"`
}

func (v VerifyRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Digest, validation.Required, validation.Match(hexDigest)),
		validation.Field(&v.Signature, validation.Required, validation.Match(hexBytes)),
	)
}

package handler

import (
	"context"
	"net/http"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name InsuranceService . InsuranceService
type InsuranceService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Quote(ctx context.Context, req core.QuoteRequest) (core.QuoteResult, error)
	Authorize(ctx context.Context, userID string, req core.PurchaseRequest) (core.AuthorizationBundle, error)
	Purchase(ctx context.Context, userID string, req core.PurchaseRequest) (core.PolicyRecord, error)
	GetPolicy(ctx context.Context, userID, policyID string) (core.PolicyRecord, error)
	ListPolicies(ctx context.Context, userID string) ([]core.PolicyRecord, error)
	ListClaims(ctx context.Context, userID string) ([]core.ClaimRecord, error)
	RefundQuote(ctx context.Context, userID, policyID string) (core.RefundQuote, error)
	Cancel(ctx context.Context, userID, policyID string) (core.CancelResult, error)
	FileClaim(ctx context.Context, userID, policyID string, req core.ClaimRequest) (core.ClaimResult, error)
	Renew(ctx context.Context, userID, policyID string, age int) (core.RenewResult, error)
	VaultBalance(ctx context.Context) (core.VaultInfo, error)
	VerifySignature(digestHex, sigHex string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name RateService . RateService
type RateService interface {
	Current(ctx context.Context) (rate.Rate, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name HealthChecker . HealthChecker
type HealthChecker interface {
	Ping(ctx context.Context) error
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/pricing"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"

	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /api/authenticate"
	GetRate           = "GET /api/rate"
	CreateQuote       = "POST /api/quotes"
	PurchasePolicy    = "POST /api/policies"
	AuthorizePurchase = "POST /api/policies/authorize"
	ListPolicies      = "GET /api/policies"
	GetPolicy         = "GET /api/policies/{policyId}"
	GetRefundQuote    = "GET /api/policies/{policyId}/refund"
	CancelPolicy      = "POST /api/policies/{policyId}/cancel"
	RenewPolicy       = "POST /api/policies/{policyId}/renew"
	FileClaim         = "POST /api/policies/{policyId}/claims"
	ListClaims        = "GET /api/claims"
	GetVault          = "GET /api/vault"
	VerifySignature   = "POST /api/signatures/verify"
	Health            = "GET /healthz"
	Metrics           = "GET /metrics"
)

type InsuranceHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	insurance        InsuranceService
	rates            RateService
	health           HealthChecker
}

func NewInsuranceHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	insurance InsuranceService,
	rates RateService,
	health HealthChecker,
) *InsuranceHandler {
	return &InsuranceHandler{
		logs:             logger,
		requestValidator: requestValidator,
		insurance:        insurance,
		rates:            rates,
		health:           health,
	}
}

// Register mounts every route on mux. auth guards the routes that act for a user.
func (h *InsuranceHandler) Register(mux *http.ServeMux, auth func(http.HandlerFunc) http.HandlerFunc, metrics http.Handler) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetRate, h.HandleGetRate)
	mux.HandleFunc(CreateQuote, h.HandleCreateQuote)
	mux.HandleFunc(PurchasePolicy, auth(h.HandlePurchasePolicy))
	mux.HandleFunc(AuthorizePurchase, auth(h.HandleAuthorizePurchase))
	mux.HandleFunc(ListPolicies, auth(h.HandleListPolicies))
	mux.HandleFunc(GetPolicy, auth(h.HandleGetPolicy))
	mux.HandleFunc(GetRefundQuote, auth(h.HandleGetRefundQuote))
	mux.HandleFunc(CancelPolicy, auth(h.HandleCancelPolicy))
	mux.HandleFunc(RenewPolicy, auth(h.HandleRenewPolicy))
	mux.HandleFunc(FileClaim, auth(h.HandleFileClaim))
	mux.HandleFunc(ListClaims, auth(h.HandleListClaims))
	mux.HandleFunc(GetVault, h.HandleGetVault)
	mux.HandleFunc(VerifySignature, h.HandleVerifySignature)
	mux.HandleFunc(Health, h.HandleHealth)
	mux.Handle(Metrics, metrics)
}

func (h *InsuranceHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if err := h.health.Ping(r.Context()); err != nil {
		h.respond(w, Response{
			Message: "Unhealthy",
			Error:   "database unreachable",
		}, http.StatusServiceUnavailable,
			requestId)
		h.logs.Errorw("health check failed", "error", err, "handler", Health, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "OK"}, http.StatusOK, requestId)
}

// fail maps a service error to a status code and writes it. Unexpected errors are not echoed.
func (h *InsuranceHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code := statusFor(err)
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
		h.logs.Errorw(message, "error", err, "handler", handler, "request_id", requestId)
	} else {
		h.logs.Warnw(message, "error", err, "status", code, "handler", handler, "request_id", requestId)
	}
	h.respond(w, resp, code, requestId)
}

func (h *InsuranceHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func statusFor(err error) int {
	switch {
	case isAny(err, core.ErrInvalidInput, pricing.ErrUnknownProduct, pricing.ErrInvalidSumAssured,
		pricing.ErrInvalidTerm, signature.ErrInvalidSignature):
		return http.StatusBadRequest
	case isAny(err, core.ErrUserNotFound, core.ErrIncorrectPassword):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrPolicyNotFound):
		return http.StatusNotFound
	case isAny(err, core.ErrTxInFlight, pricing.ErrAlreadyClaimed, pricing.ErrPolicyInactive, pricing.ErrPolicyExpired):
		return http.StatusConflict
	case isAny(err, pricing.ErrNotEligible, pricing.ErrWaitingPeriod, pricing.ErrInvalidClaimAmount,
		pricing.ErrRenewalWindow, core.ErrNoWallet):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *InsuranceHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

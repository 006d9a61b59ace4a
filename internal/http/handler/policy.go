package handler

import (
	"fmt"
	"net/http"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/payload"
)

// policyID reads and validates the {policyId} path segment, answering 400 when it is malformed.
func (h *InsuranceHandler) policyID(w http.ResponseWriter, r *http.Request, handler, requestId string) (string, bool) {
	id := r.PathValue("policyId")
	if err := payload.ValidatePolicyID(id); err != nil {
		h.badRequest(w, "Request failed", fmt.Errorf("policy id: %w", err), handler, requestId)
		return "", false
	}
	return id, true
}

func (h *InsuranceHandler) HandleListPolicies(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	policies, err := h.insurance.ListPolicies(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		h.fail(w, "Could not list policies", err, ListPolicies, requestId)
		return
	}

	h.respond(w, Response{Data: policies}, http.StatusOK, requestId)
}

func (h *InsuranceHandler) HandleGetPolicy(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	id, ok := h.policyID(w, r, GetPolicy, requestId)
	if !ok {
		return
	}

	policy, err := h.insurance.GetPolicy(r.Context(), middleware.UserIDFrom(r.Context()), id)
	if err != nil {
		h.fail(w, "Could not get policy", err, GetPolicy, requestId)
		return
	}

	h.respond(w, Response{Data: policy}, http.StatusOK, requestId)
}

func (h *InsuranceHandler) HandleGetRefundQuote(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	id, ok := h.policyID(w, r, GetRefundQuote, requestId)
	if !ok {
		return
	}

	refund, err := h.insurance.RefundQuote(r.Context(), middleware.UserIDFrom(r.Context()), id)
	if err != nil {
		h.fail(w, "Could not quote refund", err, GetRefundQuote, requestId)
		return
	}

	h.respond(w, Response{Data: refund}, http.StatusOK, requestId)
}

func (h *InsuranceHandler) HandleCancelPolicy(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	id, ok := h.policyID(w, r, CancelPolicy, requestId)
	if !ok {
		return
	}

	result, err := h.insurance.Cancel(r.Context(), middleware.UserIDFrom(r.Context()), id)
	if err != nil {
		h.fail(w, "Could not cancel policy", err, CancelPolicy, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Cancellation submitted",
		Data:    result,
	}, http.StatusAccepted,
		requestId)
}

func (h *InsuranceHandler) HandleRenewPolicy(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	id, ok := h.policyID(w, r, RenewPolicy, requestId)
	if !ok {
		return
	}

	var req payload.RenewRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not renew policy", err, RenewPolicy, requestId)
		return
	}

	result, err := h.insurance.Renew(r.Context(), middleware.UserIDFrom(r.Context()), id, req.Age)
	if err != nil {
		h.fail(w, "Could not renew policy", err, RenewPolicy, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Renewal submitted",
		Data:    result,
	}, http.StatusAccepted,
		requestId)
}

func (h *InsuranceHandler) HandleFileClaim(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	id, ok := h.policyID(w, r, FileClaim, requestId)
	if !ok {
		return
	}

	var req payload.ClaimRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not file claim", err, FileClaim, requestId)
		return
	}

	result, err := h.insurance.FileClaim(r.Context(), middleware.UserIDFrom(r.Context()), id, req.ToClaimRequest())
	if err != nil {
		h.fail(w, "Could not file claim", err, FileClaim, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Claim submitted",
		Data:    result,
	}, http.StatusAccepted,
		requestId)
}

func (h *InsuranceHandler) HandleListClaims(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	claims, err := h.insurance.ListClaims(r.Context(), middleware.UserIDFrom(r.Context()))
	if err != nil {
		h.fail(w, "Could not list claims", err, ListClaims, requestId)
		return
	}

	h.respond(w, Response{Data: claims}, http.StatusOK, requestId)
}

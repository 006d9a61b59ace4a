package handler

import (
	"net/http"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/payload"
)

func (h *InsuranceHandler) HandleGetRate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	current, err := h.rates.Current(r.Context())
	if err != nil {
		h.fail(w, "Could not get exchange rate", err, GetRate, requestId)
		return
	}

	h.respond(w, Response{Data: current}, http.StatusOK, requestId)
}

func (h *InsuranceHandler) HandleCreateQuote(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.QuoteRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not quote", err, CreateQuote, requestId)
		return
	}

	quote, err := h.insurance.Quote(r.Context(), req.ToQuoteRequest())
	if err != nil {
		h.fail(w, "Could not quote", err, CreateQuote, requestId)
		return
	}

	h.logs.Infow("quote issued",
		"product", quote.Product,
		"premium_thb", quote.PremiumTHB.String(),
		"handler", CreateQuote,
		"request_id", requestId)

	h.respond(w, Response{Data: quote}, http.StatusOK, requestId)
}

func (h *InsuranceHandler) HandlePurchasePolicy(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := middleware.UserIDFrom(r.Context())

	var req payload.PurchaseRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not purchase policy", err, PurchasePolicy, requestId)
		return
	}

	policy, err := h.insurance.Purchase(r.Context(), userID, req.ToPurchaseRequest())
	if err != nil {
		h.fail(w, "Could not purchase policy", err, PurchasePolicy, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Purchase submitted",
		Data:    policy,
	}, http.StatusAccepted,
		requestId)
}

func (h *InsuranceHandler) HandleAuthorizePurchase(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := middleware.UserIDFrom(r.Context())

	var req payload.PurchaseRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not authorize purchase", err, AuthorizePurchase, requestId)
		return
	}

	bundle, err := h.insurance.Authorize(r.Context(), userID, req.ToPurchaseRequest())
	if err != nil {
		h.fail(w, "Could not authorize purchase", err, AuthorizePurchase, requestId)
		return
	}

	h.respond(w, Response{Data: bundle}, http.StatusOK, requestId)
}

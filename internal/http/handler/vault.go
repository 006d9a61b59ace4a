package handler

import (
	"net/http"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/payload"
)

func (h *InsuranceHandler) HandleGetVault(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	vault, err := h.insurance.VaultBalance(r.Context())
	if err != nil {
		h.fail(w, "Could not read vault balance", err, GetVault, requestId)
		return
	}

	h.respond(w, Response{Data: vault}, http.StatusOK, requestId)
}

func (h *InsuranceHandler) HandleVerifySignature(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.VerifyRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not verify signature", err, VerifySignature, requestId)
		return
	}

	valid, err := h.insurance.VerifySignature(req.Digest, req.Signature)
	if err != nil {
		h.fail(w, "Could not verify signature", err, VerifySignature, requestId)
		return
	}

	h.respond(w, Response{Data: verifyResponse{Valid: valid}}, http.StatusOK, requestId)
}

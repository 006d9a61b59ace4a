package handler

import (
	"net/http"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/payload"
)

func (h *InsuranceHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not authenticate", err, Authenticate, requestId)
		return
	}

	token, err := h.insurance.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	h.respond(w, Response{Data: tokenResponse{Token: token}}, http.StatusOK, requestId)
}

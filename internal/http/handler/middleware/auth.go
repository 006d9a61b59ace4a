package middleware

import (
	"context"
	"net/http"

	tokenIssuer "github.com/KaweewatN/decentralized-insurance-platform-sub000/pkg/jwt"

	"go.uber.org/zap"
)

const AuthTokenHeader = "AUTH_TOKEN"

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid AUTH_TOKEN and stores the user id in the context.
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestIDFrom(r.Context())

		authToken := r.Header.Get(AuthTokenHeader)
		if authToken == "" {
			writeError(w, http.StatusUnauthorized, "Authentication failed", "AUTH_TOKEN header is required")
			m.logs.Warnw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestId)
			return
		}

		claims, err := m.validator.Validate(authToken)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication failed", "invalid or expired token")
			m.logs.Warnw("token validation failed", "error", err, "path", r.URL.Path, "request_id", requestId)
			return
		}

		userID, err := tokenIssuer.Subject(claims)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication failed", "invalid or expired token")
			m.logs.Warnw("token has no subject", "error", err, "request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

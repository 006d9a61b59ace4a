package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		logger *zap.SugaredLogger
		w      *httptest.ResponseRecorder
		req    *http.Request
		seen   *http.Request
		next   http.HandlerFunc
	)

	BeforeEach(func() {
		logger = zap.NewNop().Sugar()
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/policies", nil)
		seen = nil
		next = func(w http.ResponseWriter, r *http.Request) {
			seen = r
			w.WriteHeader(http.StatusTeapot)
		}
	})

	Describe("RequestID", func() {
		It("assigns a request id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).NotTo(BeNil())
			id := middleware.RequestIDFrom(seen.Context())
			Expect(id).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(id))
		})

		It("keeps the caller's request id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(middleware.RequestIDFrom(seen.Context())).To(Equal("abc-123"))
		})
	})

	Describe("Authenticate", func() {
		var validator *fake.TokenValidator

		BeforeEach(func() {
			validator = new(fake.TokenValidator)
			validator.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			req.Header.Set(middleware.AuthTokenHeader, "token")
		})

		JustBeforeEach(func() {
			middleware.NewAuthMiddleware(logger, validator).Authenticate(next)(w, req)
		})

		It("stores the token subject as the user id", func() {
			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(middleware.UserIDFrom(seen.Context())).To(Equal("user-1"))
			Expect(validator.ValidateArgsForCall(0)).To(Equal("token"))
		})

		When("the header is missing", func() {
			BeforeEach(func() {
				req.Header.Del(middleware.AuthTokenHeader)
			})

			It("rejects the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(seen).To(BeNil())
				Expect(validator.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the token does not validate", func() {
			BeforeEach(func() {
				validator.ValidateReturns(nil, errors.New("expired"))
			})

			It("rejects the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(seen).To(BeNil())
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				validator.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("rejects the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("RateLimit", func() {
		It("rejects a client once its burst is spent", func() {
			limited := middleware.NewRateLimiter(logger, 0.001, 2).RateLimit(next)

			codes := make([]int, 0, 3)
			for range 3 {
				rec := httptest.NewRecorder()
				r := httptest.NewRequest("GET", "/api/rate", nil)
				r.RemoteAddr = "10.0.0.1:5555"
				limited.ServeHTTP(rec, r)
				codes = append(codes, rec.Code)
			}
			Expect(codes).To(Equal([]int{http.StatusTeapot, http.StatusTeapot, http.StatusTooManyRequests}))

			other := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/api/rate", nil)
			r.RemoteAddr = "10.0.0.2:5555"
			limited.ServeHTTP(other, r)
			Expect(other.Code).To(Equal(http.StatusTeapot))
		})

		It("keeps recently seen clients when pruning", func() {
			rl := middleware.NewRateLimiter(logger, 10, 10)
			rl.RateLimit(next).ServeHTTP(w, req)
			Expect(rl.Prune()).To(Equal(0))
		})
	})

	Describe("Logging", func() {
		It("passes the request through and keeps the status", func() {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/policies", next)

			middleware.NewLoggingMiddleware(logger).Logging(mux).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(seen.Pattern).To(Equal("GET /api/policies"))
		})
	})
})

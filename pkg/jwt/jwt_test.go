package jwt_test

import (
	"time"

	tokenIssuer "github.com/KaweewatN/decentralized-insurance-platform-sub000/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "user-1",
			Wallet:     "0x00000000000000000000000000000000000000a1",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("round-trips generated claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("alice"))
		Expect(claims["wallet"]).To(Equal(info.Wallet))

		sub, err := tokenIssuer.Subject(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal("user-1"))
	})

	When("the token was signed with another secret", func() {
		It("rejects it", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token has expired", func() {
		It("returns ErrTokenExpired", func() {
			tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-48 * time.Hour) }
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
			tokenIssuer.TimeNow = time.Now

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the token uses a non-HMAC method", func() {
		It("rejects it", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"})
			signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	It("fails on missing subject", func() {
		_, err := tokenIssuer.Subject(jwt.MapClaims{})
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})

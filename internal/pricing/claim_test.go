package pricing_test

import (
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/pricing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Claims and renewals", func() {
	const day = 24 * time.Hour

	var (
		start  time.Time
		policy pricing.PolicyView
	)

	BeforeEach(func() {
		start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		policy = pricing.PolicyView{
			Product:    pricing.Health,
			Premium:    decimal.NewFromInt(11_000),
			SumAssured: decimal.NewFromInt(500_000),
			TermYears:  1,
			StartAt:    start,
			ExpiresAt:  start.Add(365 * day),
			IsActive:   true,
		}
	})

	Describe("CheckClaim", func() {
		var (
			amount decimal.Decimal
			now    time.Time
			payout decimal.Decimal
			err    error
		)

		BeforeEach(func() {
			amount = decimal.NewFromInt(100_000)
			now = start.Add(40 * day)
		})

		JustBeforeEach(func() {
			payout, err = pricing.CheckClaim(policy, amount, now)
		})

		It("approves a health claim inside the cover", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(payout.Equal(amount)).To(BeTrue())
		})

		When("the amount exceeds the cover", func() {
			BeforeEach(func() {
				amount = decimal.NewFromInt(600_000)
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(pricing.ErrInvalidClaimAmount))
			})
		})

		When("the amount is zero on a health policy", func() {
			BeforeEach(func() {
				amount = decimal.Zero
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(pricing.ErrInvalidClaimAmount))
			})
		})

		When("filed during the waiting period", func() {
			BeforeEach(func() {
				now = start.Add(10 * day)
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(pricing.ErrWaitingPeriod))
			})
		})

		When("the policy was already claimed", func() {
			BeforeEach(func() {
				policy.IsClaimed = true
				policy.IsActive = false
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(pricing.ErrAlreadyClaimed))
			})
		})

		When("the policy is inactive", func() {
			BeforeEach(func() {
				policy.IsActive = false
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(pricing.ErrPolicyInactive))
			})
		})

		When("the policy has expired", func() {
			BeforeEach(func() {
				now = start.Add(400 * day)
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(pricing.ErrPolicyExpired))
			})
		})

		When("the policy is life cover", func() {
			BeforeEach(func() {
				policy.Product = pricing.Life
				now = start.Add(day)
			})

			When("no amount is given", func() {
				BeforeEach(func() {
					amount = decimal.Zero
				})

				It("pays the full sum assured without a waiting period", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(payout.Equal(policy.SumAssured)).To(BeTrue())
				})
			})

			When("a partial amount is given", func() {
				It("rejects it", func() {
					Expect(err).To(MatchError(pricing.ErrInvalidClaimAmount))
				})
			})
		})
	})

	Describe("CheckRenewal", func() {
		It("extends from expiry when renewed early", func() {
			expiry, err := pricing.CheckRenewal(policy, policy.ExpiresAt.Add(-10*day))
			Expect(err).NotTo(HaveOccurred())
			Expect(expiry).To(Equal(policy.ExpiresAt.Add(365 * day)))
		})

		It("extends from now inside the grace period", func() {
			now := policy.ExpiresAt.Add(10 * day)
			expiry, err := pricing.CheckRenewal(policy, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(expiry).To(Equal(now.Add(365 * day)))
		})

		It("rejects renewals outside the window", func() {
			_, err := pricing.CheckRenewal(policy, policy.ExpiresAt.Add(-40*day))
			Expect(err).To(MatchError(pricing.ErrRenewalWindow))

			_, err = pricing.CheckRenewal(policy, policy.ExpiresAt.Add(31*day))
			Expect(err).To(MatchError(pricing.ErrRenewalWindow))
		})

		It("accepts a lapsed policy inside the grace period", func() {
			policy.IsActive = false
			policy.IsLapsed = true
			now := policy.ExpiresAt.Add(10 * day)
			expiry, err := pricing.CheckRenewal(policy, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(expiry).To(Equal(now.Add(365 * day)))
		})

		It("rejects inactive policies that did not lapse", func() {
			policy.IsActive = false
			_, err := pricing.CheckRenewal(policy, policy.ExpiresAt.Add(-5*day))
			Expect(err).To(MatchError(pricing.ErrPolicyInactive))
		})

		It("rejects claimed policies", func() {
			policy.IsClaimed = true
			_, err := pricing.CheckRenewal(policy, policy.ExpiresAt)
			Expect(err).To(MatchError(pricing.ErrAlreadyClaimed))
		})
	})
})

package core_test

import (
	"context"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/pricing"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Policy lifecycle", func() {
	var (
		f      *fixture
		policy repository.Policy
	)

	BeforeEach(func() {
		f = newFixture()
		policy = f.activePolicy()
	})

	JustBeforeEach(func() {
		f.repo.GetPolicyReturns(policy, nil)
	})

	Describe("GetPolicy", func() {
		var (
			record core.PolicyRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = f.service.GetPolicy(f.ctx, f.userID, policy.ID)
		})

		When("the chain agrees with the mirror", func() {
			BeforeEach(func() {
				f.contract.GetPolicyReturns(&ethereum.OnChainPolicy{
					ID:       common.HexToHash(policy.ID),
					Expiry:   policy.ExpiresAt,
					IsActive: true,
				}, nil)
			})

			It("returns the mirror untouched", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal("active"))
				Expect(f.repo.UpdatePolicyCallCount()).To(Equal(0))
			})
		})

		When("the chain shows the policy claimed", func() {
			BeforeEach(func() {
				f.contract.GetPolicyReturns(&ethereum.OnChainPolicy{
					ID:        common.HexToHash(policy.ID),
					Expiry:    policy.ExpiresAt,
					IsClaimed: true,
				}, nil)
			})

			It("writes the chain state through", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal("claimed"))
				Expect(record.IsClaimed).To(BeTrue())
				Expect(record.IsActive).To(BeFalse())
				Expect(f.repo.UpdatePolicyCallCount()).To(Equal(1))
			})
		})

		When("a cancelled policy is past its expiry", func() {
			BeforeEach(func() {
				policy.Status = repository.PolicyCancelled
				policy.IsActive = false
				policy.ExpiresAt = f.now.AddDate(0, 0, -1)
				f.contract.GetPolicyReturns(&ethereum.OnChainPolicy{
					ID:     common.HexToHash(policy.ID),
					Expiry: policy.ExpiresAt,
				}, nil)
			})

			It("keeps the cancellation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal("cancelled"))
				Expect(f.repo.UpdatePolicyCallCount()).To(Equal(0))
			})
		})

		When("the chain cannot be read", func() {
			BeforeEach(func() {
				f.contract.GetPolicyReturns(nil, f.fakeErr)
			})

			It("falls back to the mirror", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal("active"))
			})
		})

		When("a relayed transaction is in flight", func() {
			BeforeEach(func() {
				policy.TxStatus = repository.TxPending
			})

			It("does not reconcile", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(f.contract.GetPolicyCallCount()).To(Equal(0))
			})
		})

		When("the policy belongs to someone else", func() {
			BeforeEach(func() {
				policy.UserID = "someone-else"
			})

			It("returns ErrForbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
			})
		})

		When("the policy does not exist", func() {
			JustBeforeEach(func() {
				f.repo.GetPolicyReturns(repository.Policy{}, repository.ErrPolicyNotFound)
				_, err = f.service.GetPolicy(f.ctx, f.userID, policy.ID)
			})

			It("returns ErrPolicyNotFound", func() {
				Expect(err).To(MatchError(core.ErrPolicyNotFound))
			})
		})
	})

	Describe("RefundQuote", func() {
		var (
			quote core.RefundQuote
			err   error
		)

		JustBeforeEach(func() {
			quote, err = f.service.RefundQuote(f.ctx, f.userID, policy.ID)
		})

		It("prices the refund from the elapsed tier", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(quote.RefundTHB.String()).To(Equal("2178.08"))
			Expect(quote.RefundWei).To(Equal("21780800000000000"))
		})

		When("inside the free-look window", func() {
			BeforeEach(func() {
				policy.StartAt = f.now.AddDate(0, 0, -3)
				policy.ExpiresAt = policy.StartAt.AddDate(0, 0, 365)
			})

			It("refunds the whole premium", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(quote.RefundTHB.Equal(decimal.NewFromInt(5_000))).To(BeTrue())
				Expect(quote.RefundWei).To(Equal(policy.PremiumWei))
			})
		})

		When("the policy was claimed", func() {
			BeforeEach(func() {
				policy.IsClaimed = true
			})

			It("returns ErrAlreadyClaimed", func() {
				Expect(err).To(MatchError(pricing.ErrAlreadyClaimed))
			})
		})

		When("the policy is cancelled", func() {
			BeforeEach(func() {
				policy.Status = repository.PolicyCancelled
			})

			It("returns ErrPolicyInactive", func() {
				Expect(err).To(MatchError(pricing.ErrPolicyInactive))
			})
		})
	})

	Describe("Cancel", func() {
		var (
			result core.CancelResult
			err    error
		)

		BeforeEach(func() {
			f.contract.CancelPolicyReturns("0xcafe", nil)
		})

		JustBeforeEach(func() {
			result, err = f.service.Cancel(f.ctx, f.userID, policy.ID)
		})

		It("relays the refund and marks the policy cancelled", func() {
			Expect(err).NotTo(HaveOccurred())

			fields := f.signer.SignCancelArgsForCall(0)
			Expect(fields.Refund.String()).To(Equal("21780800000000000"))
			_, call := f.contract.CancelPolicyArgsForCall(0)
			Expect(call.Refund.String()).To(Equal("21780800000000000"))
			Expect(call.Holder).To(Equal(common.HexToAddress(f.wallet)))

			_, updated := f.repo.UpdatePolicyArgsForCall(0)
			Expect(updated.Status).To(Equal(repository.PolicyCancelled))
			Expect(updated.PreviousStatus).To(Equal(repository.PolicyActive))
			Expect(updated.IsActive).To(BeFalse())
			Expect(updated.TxStatus).To(Equal(repository.TxPending))
			Expect(updated.LastAction).To(Equal(repository.ActionCancel))

			Expect(result.TxHash).To(Equal("0xcafe"))
			Expect(result.Refund.RefundTHB.String()).To(Equal("2178.08"))
		})

		When("a transaction is already in flight", func() {
			BeforeEach(func() {
				policy.TxStatus = repository.TxPending
				policy.TxHash = "0xbusy"
			})

			It("returns ErrTxInFlight", func() {
				Expect(err).To(MatchError(core.ErrTxInFlight))
				Expect(f.signer.SignCancelCallCount()).To(Equal(0))
			})
		})

		When("the relay fails", func() {
			BeforeEach(func() {
				f.contract.CancelPolicyReturns("", f.fakeErr)
			})

			It("leaves the mirror alone", func() {
				Expect(err).To(MatchError(f.fakeErr))
				Expect(f.repo.UpdatePolicyCallCount()).To(Equal(0))
			})
		})
	})

	Describe("FileClaim", func() {
		var (
			req    core.ClaimRequest
			result core.ClaimResult
			err    error
		)

		BeforeEach(func() {
			req = core.ClaimRequest{AmountTHB: decimal.NewFromInt(20_000), Reason: "hospital stay"}
			f.contract.ClaimReturns("0xc1a1", nil)
		})

		JustBeforeEach(func() {
			result, err = f.service.FileClaim(f.ctx, f.userID, policy.ID, req)
		})

		It("pays out a share of the locked sum assured", func() {
			Expect(err).NotTo(HaveOccurred())

			_, call := f.contract.ClaimArgsForCall(0)
			Expect(call.Amount.String()).To(Equal("200000000000000000"))

			_, claim := f.repo.SaveClaimArgsForCall(0)
			Expect(claim.PolicyID).To(Equal(policy.ID))
			Expect(claim.Status).To(Equal(repository.ClaimPending))
			Expect(claim.TxHash).To(Equal("0xc1a1"))
			Expect(claim.Reason).To(Equal("hospital stay"))

			_, updated := f.repo.UpdatePolicyArgsForCall(0)
			Expect(updated.Status).To(Equal(repository.PolicyClaimed))
			Expect(updated.IsClaimed).To(BeTrue())
			Expect(updated.LastAction).To(Equal(repository.ActionClaim))

			Expect(result.Claim.AmountWei).To(Equal("200000000000000000"))
			Expect(result.Policy.Status).To(Equal("claimed"))
		})

		When("the policy is inside its waiting period", func() {
			BeforeEach(func() {
				policy.StartAt = f.now.AddDate(0, 0, -10)
			})

			It("returns ErrWaitingPeriod", func() {
				Expect(err).To(MatchError(pricing.ErrWaitingPeriod))
				Expect(f.signer.SignClaimCallCount()).To(Equal(0))
			})
		})

		When("the amount exceeds the cover", func() {
			BeforeEach(func() {
				req.AmountTHB = decimal.NewFromInt(200_000)
			})

			It("returns ErrInvalidClaimAmount", func() {
				Expect(err).To(MatchError(pricing.ErrInvalidClaimAmount))
			})
		})

		When("the policy has expired", func() {
			BeforeEach(func() {
				policy.ExpiresAt = f.now.Add(-1)
			})

			It("returns ErrPolicyExpired", func() {
				Expect(err).To(MatchError(pricing.ErrPolicyExpired))
			})
		})

		When("the claim is relayed but the policy cannot be written", func() {
			BeforeEach(func() {
				f.repo.UpdatePolicyReturns(f.fakeErr)
			})

			It("keeps the claim and logs the missed policy write", func() {
				Expect(err).To(MatchError(f.fakeErr))
				Expect(f.repo.SaveClaimCallCount()).To(Equal(1))

				entries := f.logs.FilterMessage("claim relayed but policy mirror write failed").All()
				Expect(entries).To(HaveLen(1))
				fields := entries[0].ContextMap()
				Expect(fields["policy_id"]).To(Equal(policy.ID))
				Expect(fields["tx_hash"]).To(Equal("0xc1a1"))
			})
		})
	})

	Describe("Renew", func() {
		var (
			result core.RenewResult
			err    error
		)

		BeforeEach(func() {
			policy.StartAt = f.now.AddDate(0, 0, -350)
			policy.ExpiresAt = policy.StartAt.AddDate(0, 0, 365)
			f.contract.RenewPolicyReturns("0x4e4e", nil)
		})

		JustBeforeEach(func() {
			result, err = f.service.Renew(f.ctx, f.userID, policy.ID, 31)
		})

		It("re-quotes at the new age and extends from the current expiry", func() {
			Expect(err).NotTo(HaveOccurred())

			newExpiry := policy.ExpiresAt.AddDate(0, 0, 365)
			Expect(result.NewExpiry).To(BeTemporally("==", newExpiry))
			Expect(result.Quote.PremiumTHB.Equal(decimal.NewFromInt(6_500))).To(BeTrue())

			_, call := f.contract.RenewPolicyArgsForCall(0)
			Expect(call.NewExpiry).To(Equal(newExpiry.Unix()))
			Expect(call.Premium.String()).To(Equal("65000000000000000"))

			_, updated := f.repo.UpdatePolicyArgsForCall(0)
			Expect(updated.ExpiresAt).To(BeTemporally("==", newExpiry))
			Expect(*updated.PreviousExpiresAt).To(BeTemporally("==", policy.ExpiresAt))
			Expect(updated.Age).To(Equal(31))
			Expect(updated.LastAction).To(Equal(repository.ActionRenew))
			Expect(updated.PeriodStartAt).To(BeTemporally("==", policy.ExpiresAt))
			Expect(updated.PremiumTHB.Equal(decimal.NewFromInt(6_500))).To(BeTrue())
			Expect(updated.PremiumWei).To(Equal("65000000000000000"))
			Expect(*updated.PreviousPeriodStartAt).To(BeTemporally("==", policy.StartAt))
			Expect(updated.PreviousPremiumWei).To(Equal(policy.PremiumWei))
		})

		When("the renewal is cancelled once the new period has run", func() {
			var renewed repository.Policy

			JustBeforeEach(func() {
				Expect(err).NotTo(HaveOccurred())
				_, updated := f.repo.UpdatePolicyArgsForCall(0)
				renewed = *updated
				renewed.TxStatus = repository.TxConfirmed
				f.repo.GetPolicyReturns(renewed, nil)
			})

			It("refunds the renewal premium in full inside its free-look window", func() {
				f.now = renewed.PeriodStartAt.AddDate(0, 0, 5)
				quote, err := f.service.RefundQuote(f.ctx, f.userID, policy.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(quote.RefundTHB.Equal(decimal.NewFromInt(6_500))).To(BeTrue())
				Expect(quote.RefundWei).To(Equal("65000000000000000"))
			})

			It("prices later cancellations on the new period", func() {
				f.now = renewed.PeriodStartAt.AddDate(0, 0, 100)
				quote, err := f.service.RefundQuote(f.ctx, f.userID, policy.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(quote.RefundTHB.String()).To(Equal("2831.51"))
				Expect(quote.RefundWei).To(Equal("28315100000000000"))
			})
		})

		When("the policy lapsed and the mirror marked it expired", func() {
			BeforeEach(func() {
				policy = f.activePolicy()
				policy.StartAt = f.now.AddDate(0, 0, -375)
				policy.ExpiresAt = f.now.AddDate(0, 0, -10)
				f.repo.GetPoliciesByStatusStub = func(_ context.Context, statuses ...repository.PolicyStatus) ([]repository.Policy, error) {
					if statuses[0] == repository.PolicyActive {
						return []repository.Policy{policy}, nil
					}
					return nil, nil
				}

				_, syncErr := f.service.SyncPending(f.ctx)
				Expect(syncErr).NotTo(HaveOccurred())
				_, expired := f.repo.UpdatePolicyArgsForCall(0)
				Expect(expired.Status).To(Equal(repository.PolicyExpired))
				policy = *expired
			})

			It("renews it inside the grace period from now", func() {
				Expect(err).NotTo(HaveOccurred())
				newExpiry := f.now.AddDate(0, 0, 365)
				Expect(result.NewExpiry).To(BeTemporally("==", newExpiry))

				Expect(f.repo.UpdatePolicyCallCount()).To(Equal(2))
				_, renewed := f.repo.UpdatePolicyArgsForCall(1)
				Expect(renewed.Status).To(Equal(repository.PolicyActive))
				Expect(renewed.IsActive).To(BeTrue())
				Expect(renewed.PeriodStartAt).To(BeTemporally("==", f.now))
				Expect(renewed.PreviousStatus).To(Equal(repository.PolicyExpired))
			})
		})

		When("the policy was cancelled", func() {
			BeforeEach(func() {
				policy.Status = repository.PolicyCancelled
				policy.IsActive = false
			})

			It("returns ErrPolicyInactive", func() {
				Expect(err).To(MatchError(pricing.ErrPolicyInactive))
			})
		})

		When("the policy is far from expiry", func() {
			BeforeEach(func() {
				policy = f.activePolicy()
			})

			It("returns ErrRenewalWindow", func() {
				Expect(err).To(MatchError(pricing.ErrRenewalWindow))
				Expect(f.contract.RenewPolicyCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ListPolicies", func() {
		It("maps every mirrored policy", func() {
			f.repo.GetPoliciesByUserReturns([]repository.Policy{policy, f.activePolicy()}, nil)

			records, err := f.service.ListPolicies(f.ctx, f.userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].ID).To(Equal(policy.ID))
		})
	})
})

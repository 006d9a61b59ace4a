package core_test

import (
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/pricing"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Quoting and purchase", func() {
	var (
		f   *fixture
		req core.QuoteRequest
	)

	BeforeEach(func() {
		f = newFixture()
		req = core.QuoteRequest{
			Product:    "health",
			Age:        30,
			SumAssured: decimal.NewFromInt(100_000),
		}
	})

	Describe("Quote", func() {
		var (
			result core.QuoteResult
			err    error
		)

		JustBeforeEach(func() {
			result, err = f.service.Quote(f.ctx, req)
		})

		It("prices the cover in THB and wei", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Product).To(Equal("health"))
			Expect(result.PremiumTHB.Equal(decimal.NewFromInt(5_000))).To(BeTrue())
			Expect(result.PremiumETH.String()).To(Equal("0.05"))
			Expect(result.PremiumWei).To(Equal("50000000000000000"))
			Expect(result.SumAssuredWei).To(Equal("1000000000000000000"))
			Expect(result.CoverageDays).To(Equal(365))
			Expect(result.Rate.Source).To(Equal("coinbase"))
		})

		When("the product is unknown", func() {
			BeforeEach(func() {
				req.Product = "car"
			})

			It("returns ErrUnknownProduct without asking for a rate", func() {
				Expect(err).To(MatchError(pricing.ErrUnknownProduct))
				Expect(f.rates.CurrentCallCount()).To(Equal(0))
			})
		})

		When("the applicant is not eligible", func() {
			BeforeEach(func() {
				req.Age = 80
			})

			It("returns ErrNotEligible", func() {
				Expect(err).To(MatchError(pricing.ErrNotEligible))
			})
		})

		When("no exchange rate is available", func() {
			BeforeEach(func() {
				f.rates.CurrentReturns(rate.Rate{}, f.fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(f.fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		var (
			purchase core.PurchaseRequest
			bundle   core.AuthorizationBundle
			err      error
		)

		BeforeEach(func() {
			purchase = core.PurchaseRequest{QuoteRequest: req}
			f.repo.GetUserByIDReturns(repository.User{ID: f.userID, WalletAddress: f.wallet}, nil)
		})

		JustBeforeEach(func() {
			bundle, err = f.service.Authorize(f.ctx, f.userID, purchase)
		})

		It("signs the purchase for the user's wallet and mirrors it as pending", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(f.signer.SignPurchaseCallCount()).To(Equal(1))
			fields := f.signer.SignPurchaseArgsForCall(0)
			Expect(fields.Holder).To(Equal(common.HexToAddress(f.wallet)))
			Expect(fields.Premium.String()).To(Equal("50000000000000000"))
			Expect(fields.Expiry).To(Equal(f.now.AddDate(0, 0, 365).Unix()))

			Expect(f.repo.SavePolicyCallCount()).To(Equal(1))
			_, saved := f.repo.SavePolicyArgsForCall(0)
			Expect(saved.ID).To(Equal(fields.PolicyID.Hex()))
			Expect(saved.UserID).To(Equal(f.userID))
			Expect(saved.Status).To(Equal(repository.PolicyPending))
			Expect(saved.TxStatus).To(Equal(repository.TxNone))
			Expect(saved.LastAction).To(Equal(repository.ActionPurchase))

			Expect(bundle.PolicyID).To(Equal(saved.ID))
			Expect(bundle.Action).To(Equal("PURCHASE"))
			Expect(bundle.ChainID).To(Equal("11155111"))
			Expect(bundle.Contract).To(Equal(common.HexToAddress("0x00000000000000000000000000000000000c0de5").Hex()))
			Expect(bundle.Nonce).To(Equal("42"))
			Expect(bundle.Signature).To(Equal(hexutil.Encode(make([]byte, 65))))
			Expect(bundle.PremiumWei).To(Equal("50000000000000000"))
			Expect(f.contract.PurchasePolicyCallCount()).To(Equal(0))
		})

		When("an explicit holder is given", func() {
			BeforeEach(func() {
				purchase.Holder = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
			})

			It("uses it instead of the registered wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(bundle.Holder).To(Equal(purchase.Holder))
			})
		})

		When("the holder is not an address", func() {
			BeforeEach(func() {
				purchase.Holder = "not-an-address"
			})

			It("returns ErrInvalidInput", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(f.signer.SignPurchaseCallCount()).To(Equal(0))
			})
		})

		When("the user has no wallet", func() {
			BeforeEach(func() {
				f.repo.GetUserByIDReturns(repository.User{ID: f.userID}, nil)
			})

			It("returns ErrNoWallet", func() {
				Expect(err).To(MatchError(core.ErrNoWallet))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				f.repo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				f.signer.SignPurchaseReturns(signature.Authorization{}, f.fakeErr)
			})

			It("does not mirror anything", func() {
				Expect(err).To(MatchError(f.fakeErr))
				Expect(f.repo.SavePolicyCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Purchase", func() {
		var (
			record core.PolicyRecord
			err    error
		)

		BeforeEach(func() {
			f.repo.GetUserByIDReturns(repository.User{ID: f.userID, WalletAddress: f.wallet}, nil)
			f.contract.PurchasePolicyReturns("0xfeed", nil)
		})

		JustBeforeEach(func() {
			record, err = f.service.Purchase(f.ctx, f.userID, core.PurchaseRequest{QuoteRequest: req})
		})

		It("relays the call and mirrors the pending transaction", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(f.contract.PurchasePolicyCallCount()).To(Equal(1))
			_, call := f.contract.PurchasePolicyArgsForCall(0)
			Expect(call.Premium.String()).To(Equal("50000000000000000"))
			Expect(call.Nonce.Int64()).To(Equal(int64(42)))
			Expect(call.Signature).To(HaveLen(65))

			_, saved := f.repo.SavePolicyArgsForCall(0)
			Expect(saved.TxHash).To(Equal("0xfeed"))
			Expect(saved.TxStatus).To(Equal(repository.TxPending))
			Expect(record.ID).To(Equal(call.PolicyID.Hex()))
			Expect(record.TxStatus).To(Equal("pending"))
			Expect(record.Status).To(Equal("pending"))
		})

		When("the relay fails", func() {
			BeforeEach(func() {
				f.contract.PurchasePolicyReturns("", f.fakeErr)
			})

			It("does not mirror the policy", func() {
				Expect(err).To(MatchError(f.fakeErr))
				Expect(f.repo.SavePolicyCallCount()).To(Equal(0))
			})
		})

		When("the mirror write fails", func() {
			BeforeEach(func() {
				f.repo.SavePolicyReturns(f.fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(f.fakeErr))
			})
		})
	})
})

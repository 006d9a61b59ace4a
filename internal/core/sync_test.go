package core_test

import (
	"context"
	"math/big"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("SyncPending", func() {
	var (
		f          *fixture
		purchase   repository.Policy
		cancel     repository.Policy
		renew      repository.Policy
		authorized repository.Policy
		lapsed     repository.Policy
		claim      repository.Claim
		report     core.SyncReport
		err        error
	)

	updatedPolicy := func(id string) *repository.Policy {
		for i := 0; i < f.repo.UpdatePolicyCallCount(); i++ {
			_, p := f.repo.UpdatePolicyArgsForCall(i)
			if p.ID == id {
				return p
			}
		}
		return nil
	}

	BeforeEach(func() {
		f = newFixture()

		purchase = f.activePolicy()
		purchase.ID = common.HexToHash("0x01").Hex()
		purchase.Status = repository.PolicyPending
		purchase.IsActive = false
		purchase.TxStatus = repository.TxPending
		purchase.TxHash = "0xa1"

		cancel = f.activePolicy()
		cancel.ID = common.HexToHash("0x02").Hex()
		cancel.Status = repository.PolicyCancelled
		cancel.PreviousStatus = repository.PolicyActive
		cancel.IsActive = false
		cancel.TxStatus = repository.TxPending
		cancel.LastAction = repository.ActionCancel
		cancel.TxHash = "0xa2"

		renew = f.activePolicy()
		renew.ID = common.HexToHash("0x03").Hex()
		renew.TxStatus = repository.TxPending
		renew.LastAction = repository.ActionRenew
		renew.TxHash = "0xa3"

		authorized = f.activePolicy()
		authorized.ID = common.HexToHash("0x04").Hex()
		authorized.Status = repository.PolicyPending
		authorized.IsActive = false
		authorized.TxStatus = repository.TxNone
		authorized.CreatedAt = f.now.AddDate(0, 0, -2)

		lapsed = f.activePolicy()
		lapsed.ID = common.HexToHash("0x05").Hex()
		lapsed.ExpiresAt = f.now.Add(-1)

		claim = repository.Claim{ID: "claim-1", PolicyID: cancel.ID, Status: repository.ClaimPending, TxHash: "0xa2"}

		f.repo.GetPoliciesByTxStatusReturns([]repository.Policy{purchase, cancel, renew}, nil)
		f.repo.GetClaimsByStatusReturns([]repository.Claim{claim}, nil)
		f.repo.GetPoliciesByStatusStub = func(_ context.Context, statuses ...repository.PolicyStatus) ([]repository.Policy, error) {
			switch statuses[0] {
			case repository.PolicyPending:
				return []repository.Policy{purchase, authorized}, nil
			case repository.PolicyActive:
				return []repository.Policy{renew, lapsed}, nil
			}
			return nil, nil
		}
		f.chain.FetchTransactionsReturns([]*ethereum.Transaction{
			{Hash: "0xa1", Status: ethereum.TxSucceeded},
			{Hash: "0xa2", Status: ethereum.TxReverted},
		}, nil)
	})

	JustBeforeEach(func() {
		report, err = f.service.SyncPending(f.ctx)
	})

	It("settles every outstanding transaction", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(report).To(Equal(core.SyncReport{Confirmed: 1, Reverted: 1, Expired: 1, Pending: 1}))

		_, hashes := f.chain.FetchTransactionsArgsForCall(0)
		Expect(hashes).To(ConsistOf("0xa1", "0xa2", "0xa3"))

		confirmed := updatedPolicy(purchase.ID)
		Expect(confirmed).NotTo(BeNil())
		Expect(confirmed.Status).To(Equal(repository.PolicyActive))
		Expect(confirmed.IsActive).To(BeTrue())
		Expect(confirmed.TxStatus).To(Equal(repository.TxConfirmed))

		restored := updatedPolicy(cancel.ID)
		Expect(restored).NotTo(BeNil())
		Expect(restored.Status).To(Equal(repository.PolicyActive))
		Expect(restored.IsActive).To(BeTrue())
		Expect(restored.TxStatus).To(Equal(repository.TxFailed))
		Expect(restored.PreviousStatus).To(BeEmpty())

		Expect(updatedPolicy(renew.ID)).To(BeNil())

		failed := updatedPolicy(authorized.ID)
		Expect(failed).NotTo(BeNil())
		Expect(failed.Status).To(Equal(repository.PolicyFailed))

		expired := updatedPolicy(lapsed.ID)
		Expect(expired).NotTo(BeNil())
		Expect(expired.Status).To(Equal(repository.PolicyExpired))
		Expect(expired.IsActive).To(BeFalse())

		Expect(f.repo.UpdateClaimCallCount()).To(Equal(1))
		_, settled := f.repo.UpdateClaimArgsForCall(0)
		Expect(settled.Status).To(Equal(repository.ClaimFailed))
	})

	When("a reverted renewal is settled", func() {
		BeforeEach(func() {
			previous := renew.ExpiresAt
			renew.PreviousExpiresAt = &previous
			renew.ExpiresAt = previous.AddDate(1, 0, 0)
			f.repo.GetPoliciesByTxStatusReturns([]repository.Policy{renew}, nil)
			f.repo.GetClaimsByStatusReturns(nil, nil)
			f.chain.FetchTransactionsReturns([]*ethereum.Transaction{{Hash: "0xa3", Status: ethereum.TxReverted}}, nil)
		})

		It("restores the previous expiry", func() {
			Expect(err).NotTo(HaveOccurred())
			restored := updatedPolicy(renew.ID)
			Expect(restored).NotTo(BeNil())
			Expect(restored.ExpiresAt).To(BeTemporally("==", *renew.PreviousExpiresAt))
			Expect(restored.PreviousExpiresAt).To(BeNil())
		})

		When("the renewal had rolled in a new period", func() {
			BeforeEach(func() {
				previousStart := renew.StartAt
				renew.PreviousPeriodStartAt = &previousStart
				renew.PreviousPremiumTHB = renew.PremiumTHB
				renew.PreviousPremiumWei = renew.PremiumWei
				renew.PreviousStatus = repository.PolicyExpired
				renew.PeriodStartAt = *renew.PreviousExpiresAt
				renew.PremiumTHB = decimal.NewFromInt(6_500)
				renew.PremiumWei = "65000000000000000"
				f.repo.GetPoliciesByTxStatusReturns([]repository.Policy{renew}, nil)
			})

			It("restores the previous period, premium and status", func() {
				Expect(err).NotTo(HaveOccurred())
				restored := updatedPolicy(renew.ID)
				Expect(restored).NotTo(BeNil())
				Expect(restored.PeriodStartAt).To(BeTemporally("==", renew.StartAt))
				Expect(restored.PremiumTHB.Equal(decimal.NewFromInt(5_000))).To(BeTrue())
				Expect(restored.PremiumWei).To(Equal("50000000000000000"))
				Expect(restored.Status).To(Equal(repository.PolicyExpired))
				Expect(restored.IsActive).To(BeFalse())
				Expect(restored.PreviousPeriodStartAt).To(BeNil())
			})
		})
	})

	When("a claim settles for a policy whose mirror missed it", func() {
		var missed repository.Policy

		BeforeEach(func() {
			missed = f.activePolicy()
			missed.ID = common.HexToHash("0x06").Hex()
			claim = repository.Claim{ID: "claim-2", PolicyID: missed.ID, Status: repository.ClaimPending, TxHash: "0xc1"}

			f.repo.GetPoliciesByTxStatusReturns(nil, nil)
			f.repo.GetClaimsByStatusReturns([]repository.Claim{claim}, nil)
			f.repo.GetPoliciesByStatusReturns(nil, nil)
			f.repo.GetPolicyReturns(missed, nil)
			f.chain.FetchTransactionsReturns([]*ethereum.Transaction{{Hash: "0xc1", Status: ethereum.TxSucceeded}}, nil)
		})

		It("marks the policy claimed", func() {
			Expect(err).NotTo(HaveOccurred())
			_, policyID := f.repo.GetPolicyArgsForCall(0)
			Expect(policyID).To(Equal(missed.ID))

			repaired := updatedPolicy(missed.ID)
			Expect(repaired).NotTo(BeNil())
			Expect(repaired.Status).To(Equal(repository.PolicyClaimed))
			Expect(repaired.IsClaimed).To(BeTrue())
			Expect(repaired.IsActive).To(BeFalse())
			Expect(repaired.TxHash).To(Equal("0xc1"))
			Expect(repaired.TxStatus).To(Equal(repository.TxConfirmed))

			_, settled := f.repo.UpdateClaimArgsForCall(0)
			Expect(settled.Status).To(Equal(repository.ClaimApproved))
		})

		When("the claim is still pending", func() {
			BeforeEach(func() {
				f.chain.FetchTransactionsReturns(nil, nil)
			})

			It("tracks the claim transaction on the policy", func() {
				Expect(err).NotTo(HaveOccurred())
				repaired := updatedPolicy(missed.ID)
				Expect(repaired).NotTo(BeNil())
				Expect(repaired.TxStatus).To(Equal(repository.TxPending))
				Expect(repaired.PreviousStatus).To(Equal(repository.PolicyActive))
				Expect(f.repo.UpdateClaimCallCount()).To(Equal(0))
			})
		})
	})

	When("a holder-submitted purchase is found on-chain", func() {
		BeforeEach(func() {
			f.contract.GetPolicyStub = func(_ context.Context, id common.Hash) (*ethereum.OnChainPolicy, error) {
				if id.Hex() != authorized.ID {
					return nil, ethereum.ErrPolicyNotFound
				}
				return &ethereum.OnChainPolicy{ID: id, Expiry: authorized.ExpiresAt, IsActive: true}, nil
			}
		})

		It("activates the mirrored policy", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Confirmed).To(Equal(2))
			activated := updatedPolicy(authorized.ID)
			Expect(activated).NotTo(BeNil())
			Expect(activated.Status).To(Equal(repository.PolicyActive))
			Expect(activated.TxStatus).To(Equal(repository.TxConfirmed))
		})
	})

	When("some transactions cannot be fetched", func() {
		BeforeEach(func() {
			f.chain.FetchTransactionsReturns([]*ethereum.Transaction{{Hash: "0xa1", Status: ethereum.TxSucceeded}}, f.fakeErr)
		})

		It("settles what it could and leaves the rest pending", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Confirmed).To(Equal(1))
			Expect(report.Pending).To(Equal(2))
		})
	})

	When("a mirror write fails", func() {
		BeforeEach(func() {
			f.repo.UpdatePolicyReturns(f.fakeErr)
		})

		It("keeps going and joins the errors", func() {
			Expect(err).To(MatchError(f.fakeErr))
			Expect(f.repo.UpdateClaimCallCount()).To(Equal(1))
			Expect(report.Expired).To(Equal(0))
		})
	})

	When("pending policies cannot be loaded", func() {
		BeforeEach(func() {
			f.repo.GetPoliciesByTxStatusReturns(nil, f.fakeErr)
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(f.fakeErr))
			Expect(f.chain.FetchTransactionsCallCount()).To(Equal(0))
		})
	})
})

var _ = Describe("Vault", func() {
	var f *fixture

	BeforeEach(func() {
		f = newFixture()
	})

	Describe("VaultBalance", func() {
		It("reports the balance in wei, ETH and THB", func() {
			f.contract.VaultBalanceReturns(new(big.Int).Mul(big.NewInt(2), big.NewInt(1_000_000_000_000_000_000)), nil)
			f.contract.VaultAddressReturns(common.HexToAddress("0x00000000000000000000000000000000000c0de5"))

			info, err := f.service.VaultBalance(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.BalanceWei).To(Equal("2000000000000000000"))
			Expect(info.BalanceETH.Equal(decimal.NewFromInt(2))).To(BeTrue())
			Expect(info.BalanceTHB.Equal(decimal.NewFromInt(200_000))).To(BeTrue())
			Expect(info.Address).To(Equal(common.HexToAddress("0x00000000000000000000000000000000000c0de5").Hex()))
		})

		It("fails when the balance cannot be read", func() {
			f.contract.VaultBalanceReturns(nil, f.fakeErr)

			_, err := f.service.VaultBalance(f.ctx)
			Expect(err).To(MatchError(f.fakeErr))
		})

		It("fails when no rate is available", func() {
			f.contract.VaultBalanceReturns(big.NewInt(1), nil)
			f.rates.CurrentReturns(rate.Rate{}, f.fakeErr)

			_, err := f.service.VaultBalance(f.ctx)
			Expect(err).To(MatchError(f.fakeErr))
		})
	})

	Describe("VerifySignature", func() {
		digest := "0x" + common.Bytes2Hex(make([]byte, 32))

		It("asks the signer to verify", func() {
			f.signer.VerifyReturns(true, nil)

			ok, err := f.service.VerifySignature(digest[2:], "0x"+common.Bytes2Hex(make([]byte, 65)))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			gotDigest, gotSig := f.signer.VerifyArgsForCall(0)
			Expect(gotDigest).To(Equal(common.Hash{}))
			Expect(gotSig).To(HaveLen(65))
		})

		It("rejects a digest of the wrong length", func() {
			_, err := f.service.VerifySignature("0x1234", "0x00")
			Expect(err).To(MatchError(core.ErrInvalidInput))
			Expect(f.signer.VerifyCallCount()).To(Equal(0))
		})

		It("rejects a signature that is not hex", func() {
			_, err := f.service.VerifySignature(digest, "zz")
			Expect(err).To(MatchError(core.ErrInvalidInput))
		})
	})
})

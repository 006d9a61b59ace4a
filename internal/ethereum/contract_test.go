package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ContractService", func() {
	var (
		ctx          context.Context
		fakeContract *fake.BoundContract
		fakeClient   *fake.EthClient
		opts         *bind.TransactOpts
		vault        common.Address
		service      *ethereum.ContractService

		policyID common.Hash
		holder   common.Address
		sentTx   *types.Transaction
		testErr  error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeContract = new(fake.BoundContract)
		fakeClient = new(fake.EthClient)
		opts = &bind.TransactOpts{From: common.HexToAddress("0x00000000000000000000000000000000000000ad")}
		vault = common.HexToAddress("0x000000000000000000000000000000000000ba17")
		service = ethereum.NewContractService(fakeContract, fakeClient, opts, vault)

		policyID = crypto.Keccak256Hash([]byte("policy-1"))
		holder = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		sentTx = types.NewTransaction(7, common.Address{}, big.NewInt(0), 100000, big.NewInt(1), nil)
		testErr = errors.New("execution reverted")
	})

	It("parses the insurance abi", func() {
		parsed, err := ethereum.ParseInsuranceABI()
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.Methods).To(HaveKey("purchasePolicy"))
		Expect(parsed.Methods["purchasePolicy"].IsPayable()).To(BeTrue())
		Expect(parsed.Methods["policies"].Outputs).To(HaveLen(6))
	})

	Describe("PurchasePolicy", func() {
		var call ethereum.PurchaseCall

		BeforeEach(func() {
			call = ethereum.PurchaseCall{
				PolicyID:   policyID,
				Holder:     holder,
				Premium:    big.NewInt(5_000),
				SumAssured: big.NewInt(100_000),
				Expiry:     1767225600,
				Nonce:      big.NewInt(9),
				Signature:  []byte{1, 2, 3},
			}
		})

		It("sends the premium as value and returns the tx hash", func() {
			fakeContract.TransactReturns(sentTx, nil)

			hash, err := service.PurchasePolicy(ctx, call)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(sentTx.Hash().Hex()))

			Expect(fakeContract.TransactCallCount()).To(Equal(1))
			sentOpts, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("purchasePolicy"))
			Expect(sentOpts.Value).To(Equal(big.NewInt(5_000)))
			Expect(sentOpts.Context).To(Equal(ctx))
			Expect(sentOpts.From).To(Equal(opts.From))
			Expect(params).To(HaveLen(6))
			Expect(params[0]).To(Equal(policyID))
			Expect(params[1]).To(Equal(holder))
			Expect(params[3]).To(Equal(big.NewInt(1767225600)))
		})

		It("does not mutate the shared transact options", func() {
			fakeContract.TransactReturns(sentTx, nil)

			_, err := service.PurchasePolicy(ctx, call)
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.Value).To(BeNil())
		})

		It("wraps send failures", func() {
			fakeContract.TransactReturns(nil, testErr)

			_, err := service.PurchasePolicy(ctx, call)
			Expect(err).To(MatchError(testErr))
			Expect(err.Error()).To(ContainSubstring("send purchasePolicy"))
		})
	})

	Describe("non-payable calls", func() {
		BeforeEach(func() {
			fakeContract.TransactReturns(sentTx, nil)
		})

		It("sends claim without value", func() {
			_, err := service.Claim(ctx, ethereum.ClaimCall{PolicyID: policyID, Holder: holder, Amount: big.NewInt(10), Nonce: big.NewInt(1)})
			Expect(err).NotTo(HaveOccurred())

			sentOpts, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("claim"))
			Expect(sentOpts.Value).To(BeNil())
			Expect(params[2]).To(Equal(big.NewInt(10)))
		})

		It("sends cancelPolicy with the refund", func() {
			_, err := service.CancelPolicy(ctx, ethereum.CancelCall{PolicyID: policyID, Holder: holder, Refund: big.NewInt(42), Nonce: big.NewInt(1)})
			Expect(err).NotTo(HaveOccurred())

			_, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("cancelPolicy"))
			Expect(params[2]).To(Equal(big.NewInt(42)))
		})

		It("sends renewPolicy with the premium as value", func() {
			_, err := service.RenewPolicy(ctx, ethereum.RenewCall{PolicyID: policyID, Holder: holder, Premium: big.NewInt(77), NewExpiry: 1800000000, Nonce: big.NewInt(1)})
			Expect(err).NotTo(HaveOccurred())

			sentOpts, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("renewPolicy"))
			Expect(sentOpts.Value).To(Equal(big.NewInt(77)))
			Expect(params[2]).To(Equal(big.NewInt(1800000000)))
		})
	})

	Describe("GetPolicy", func() {
		var reply []interface{}

		BeforeEach(func() {
			reply = []interface{}{holder, big.NewInt(5_000), big.NewInt(100_000), big.NewInt(1767225600), true, false}
			fakeContract.CallStub = func(_ *bind.CallOpts, out *[]interface{}, method string, _ ...interface{}) error {
				*out = reply
				return nil
			}
		})

		It("decodes the on-chain record", func() {
			policy, err := service.GetPolicy(ctx, policyID)
			Expect(err).NotTo(HaveOccurred())
			Expect(policy.ID).To(Equal(policyID))
			Expect(policy.Holder).To(Equal(holder))
			Expect(policy.Premium).To(Equal(big.NewInt(5_000)))
			Expect(policy.Expiry).To(Equal(time.Unix(1767225600, 0).UTC()))
			Expect(policy.IsActive).To(BeTrue())
			Expect(policy.IsClaimed).To(BeFalse())

			_, _, method, params := fakeContract.CallArgsForCall(0)
			Expect(method).To(Equal("policies"))
			Expect(params).To(ConsistOf(Equal(policyID)))
		})

		It("reports a zero holder as not found", func() {
			reply[0] = common.Address{}

			_, err := service.GetPolicy(ctx, policyID)
			Expect(err).To(MatchError(ethereum.ErrPolicyNotFound))
		})

		It("rejects replies of the wrong shape", func() {
			reply = reply[:3]

			_, err := service.GetPolicy(ctx, policyID)
			Expect(err).To(MatchError(ethereum.ErrUnexpectedReply))
		})

		It("wraps call failures", func() {
			fakeContract.CallStub = nil
			fakeContract.CallReturns(testErr)

			_, err := service.GetPolicy(ctx, policyID)
			Expect(err).To(MatchError(testErr))
		})
	})

	Describe("VaultBalance", func() {
		It("reads the vault balance at the latest block", func() {
			fakeClient.BalanceAtReturns(big.NewInt(123), nil)

			balance, err := service.VaultBalance(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(big.NewInt(123)))

			_, account, block := fakeClient.BalanceAtArgsForCall(0)
			Expect(account).To(Equal(vault))
			Expect(block).To(BeNil())
		})

		It("wraps failures", func() {
			fakeClient.BalanceAtReturns(nil, testErr)

			_, err := service.VaultBalance(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})
})

package signature_test

import (
	"encoding/hex"
	"math/big"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/metrics"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AdminSigner", func() {
	const adminKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

	var (
		signer   *signature.AdminSigner
		chainID  *big.Int
		contract common.Address
		fields   signature.PurchaseFields
		nonce    *big.Int
	)

	BeforeEach(func() {
		var err error
		chainID = big.NewInt(11155111)
		contract = common.HexToAddress("0x00000000000000000000000000000000000c0de5")
		nonce = big.NewInt(42)

		signer, err = signature.NewAdminSigner(adminKey, chainID, contract)
		Expect(err).NotTo(HaveOccurred())
		signer.WithNonceSource(func() (*big.Int, error) { return nonce, nil })

		fields = signature.PurchaseFields{
			PolicyID:   crypto.Keccak256Hash([]byte("policy-1")),
			Holder:     common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Premium:    big.NewInt(1_000_000_000_000_000),
			SumAssured: big.NewInt(5_000_000_000_000_000),
			Expiry:     1767225600,
		}
	})

	It("derives the admin address from the key", func() {
		key, err := crypto.HexToECDSA(adminKey[2:])
		Expect(err).NotTo(HaveOccurred())
		Expect(signer.Address()).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
	})

	It("rejects malformed keys", func() {
		_, err := signature.NewAdminSigner("not-a-key", chainID, contract)
		Expect(err).To(MatchError(signature.ErrInvalidKey))
	})

	It("hashes purchase fields the way abi.encodePacked does", func() {
		expected := crypto.Keccak256Hash(
			math.U256Bytes(big.NewInt(11155111)),
			contract.Bytes(),
			[]byte("PURCHASE"),
			fields.PolicyID.Bytes(),
			fields.Holder.Bytes(),
			math.U256Bytes(big.NewInt(1_000_000_000_000_000)),
			math.U256Bytes(big.NewInt(5_000_000_000_000_000)),
			math.U256Bytes(big.NewInt(1767225600)),
			math.U256Bytes(big.NewInt(42)),
		)

		Expect(signature.PurchaseDigest(chainID, contract, fields, nonce)).To(Equal(expected))
	})

	It("does not mutate the caller's amounts while hashing", func() {
		premium := new(big.Int).Set(fields.Premium)
		signature.PurchaseDigest(chainID, contract, fields, nonce)
		Expect(fields.Premium).To(Equal(premium))
	})

	Describe("round trip", func() {
		var auth signature.Authorization

		BeforeEach(func() {
			var err error
			auth, err = signer.SignPurchase(fields)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces a signature the admin address verifies", func() {
			Expect(auth.Action).To(Equal(signature.ActionPurchase))
			Expect(auth.Nonce).To(Equal(nonce))
			Expect(auth.Signer).To(Equal(signer.Address()))
			Expect(auth.Signature).To(HaveLen(65))
			Expect(auth.Signature[64]).To(Or(Equal(byte(27)), Equal(byte(28))))

			ok, err := signer.Verify(auth.Digest, auth.Signature)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("accepts a 0/1 recovery id", func() {
			sig := append([]byte{}, auth.Signature...)
			sig[64] -= 27

			ok, err := signer.Verify(auth.Digest, sig)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("fails when any field changes", func() {
			fields.SumAssured = big.NewInt(6_000_000_000_000_000)
			tampered := signature.PurchaseDigest(chainID, contract, fields, nonce)

			ok, err := signer.Verify(tampered, auth.Signature)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("fails for a digest bound to another chain", func() {
			other := signature.PurchaseDigest(big.NewInt(1), contract, fields, nonce)
			Expect(other).NotTo(Equal(auth.Digest))

			ok, err := signer.Verify(other, auth.Signature)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	It("does not verify signatures from another key", func() {
		otherKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		other, err := signature.NewAdminSigner(hex.EncodeToString(crypto.FromECDSA(otherKey)), chainID, contract)
		Expect(err).NotTo(HaveOccurred())

		auth, err := other.SignClaim(signature.ClaimFields{PolicyID: fields.PolicyID, Holder: fields.Holder, Amount: big.NewInt(1)})
		Expect(err).NotTo(HaveOccurred())

		ok, err := signer.Verify(auth.Digest, auth.Signature)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("signs every action with distinct digests", func() {
		claim, err := signer.SignClaim(signature.ClaimFields{PolicyID: fields.PolicyID, Holder: fields.Holder, Amount: fields.Premium})
		Expect(err).NotTo(HaveOccurred())
		cancel, err := signer.SignCancel(signature.CancelFields{PolicyID: fields.PolicyID, Holder: fields.Holder, Refund: fields.Premium})
		Expect(err).NotTo(HaveOccurred())
		renew, err := signer.SignRenew(signature.RenewFields{PolicyID: fields.PolicyID, Holder: fields.Holder, Premium: fields.Premium, NewExpiry: fields.Expiry})
		Expect(err).NotTo(HaveOccurred())

		Expect(claim.Action).To(Equal(signature.ActionClaim))
		Expect(cancel.Action).To(Equal(signature.ActionCancel))
		Expect(renew.Action).To(Equal(signature.ActionRenew))
		Expect(claim.Digest).NotTo(Equal(cancel.Digest))

		for _, auth := range []signature.Authorization{claim, cancel, renew} {
			ok, err := signer.Verify(auth.Digest, auth.Signature)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		}
	})

	It("reports malformed signatures", func() {
		_, err := signer.Verify(common.Hash{}, []byte{1, 2, 3})
		Expect(err).To(MatchError(signature.ErrInvalidSignature))

		bad := make([]byte, 65)
		bad[64] = 5
		_, err = signer.Verify(common.Hash{}, bad)
		Expect(err).To(MatchError(signature.ErrInvalidSignature))
	})

	It("draws distinct random nonces", func() {
		a, err := signature.RandomNonce()
		Expect(err).NotTo(HaveOccurred())
		b, err := signature.RandomNonce()
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Cmp(b)).NotTo(BeZero())
	})
})

var _ = Describe("AdminSigner metrics", func() {
	It("counts every signature it issues by action", func() {
		signer, err := signature.NewAdminSigner("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
			big.NewInt(31337), common.HexToAddress("0x00000000000000000000000000000000000c0de5"))
		Expect(err).NotTo(HaveOccurred())

		before := issuedSignatures("RENEW")
		_, err = signer.SignRenew(signature.RenewFields{
			PolicyID:  crypto.Keccak256Hash([]byte("policy-1")),
			Holder:    common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Premium:   big.NewInt(1_000_000_000_000_000),
			NewExpiry: 1798761600,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(issuedSignatures("RENEW")).To(Equal(before + 1))
	})
})

func issuedSignatures(action string) float64 {
	families, err := metrics.Registry.Gather()
	Expect(err).NotTo(HaveOccurred())
	for _, family := range families {
		if family.GetName() != "insurance_signature_issued_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "action" && label.GetValue() == action {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

var _ = Describe("AdminSigner accessors", func() {
	It("exposes the domain it signs for", func() {
		chainID := big.NewInt(31337)
		contract := common.HexToAddress("0x00000000000000000000000000000000000c0de5")

		signer, err := signature.NewAdminSigner("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", chainID, contract)
		Expect(err).NotTo(HaveOccurred())
		Expect(signer.ChainID()).To(Equal(big.NewInt(31337)))
		Expect(signer.Contract()).To(Equal(contract))

		signer.ChainID().SetInt64(1)
		Expect(signer.ChainID()).To(Equal(big.NewInt(31337)))
	})
})

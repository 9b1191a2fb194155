package custody_test

import (
	"context"

	"textpay/internal/custody"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Vault", func() {
	var (
		vault *custody.Vault
		ctx   context.Context
	)

	BeforeEach(func() {
		vault = custody.NewVault("test-passphrase")
		ctx = context.Background()
	})

	Describe("CreateKey", func() {
		It("returns an address and a sealed key reference", func() {
			key, err := vault.CreateKey(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(key.Address).To(HavePrefix("0x"))
			Expect(key.Address).To(HaveLen(42))
			Expect(key.KeyRef).NotTo(BeEmpty())
		})

		It("seals each key with a distinct reference", func() {
			first, err := vault.CreateKey(ctx)
			Expect(err).NotTo(HaveOccurred())
			second, err := vault.CreateKey(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.KeyRef).NotTo(Equal(second.KeyRef))
		})
	})

	Describe("PrivateKey", func() {
		It("unseals the key that was created", func() {
			key, err := vault.CreateKey(ctx)
			Expect(err).NotTo(HaveOccurred())

			priv, err := vault.PrivateKey(ctx, key.KeyRef)
			Expect(err).NotTo(HaveOccurred())
			Expect(crypto.PubkeyToAddress(priv.PublicKey).Hex()).To(Equal(key.Address))
		})

		When("key ref is not base64", func() {
			It("should return invalid reference error", func() {
				_, err := vault.PrivateKey(ctx, "not-base64!!!")
				Expect(err).To(MatchError(custody.ErrKeyRefInvalid))
			})
		})

		When("key ref is truncated", func() {
			It("should return invalid reference error", func() {
				_, err := vault.PrivateKey(ctx, "c2hvcnQ=")
				Expect(err).To(MatchError(custody.ErrKeyRefInvalid))
			})
		})

		When("passphrase differs", func() {
			It("should fail to open the seal", func() {
				key, err := vault.CreateKey(ctx)
				Expect(err).NotTo(HaveOccurred())

				other := custody.NewVault("different-passphrase")
				_, err = other.PrivateKey(ctx, key.KeyRef)
				Expect(err).To(MatchError(custody.ErrKeyRefInvalid))
			})
		})
	})
})

package wallet_test

import (
	"context"
	"errors"
	"math/big"

	"textpay/internal/custody"
	"textpay/internal/repository"
	"textpay/internal/wallet"
	"textpay/internal/wallet/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Directory", func() {
	var (
		fakeStore   *fake.WalletStore
		fakeCustody *fake.CustodyProvider
		fakeChain   *fake.Balancer
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		directory *wallet.Directory

		fakeErr error
		phone   string
	)

	BeforeEach(func() {
		fakeStore = new(fake.WalletStore)
		fakeCustody = new(fake.CustodyProvider)
		fakeChain = new(fake.Balancer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		directory = wallet.NewDirectory(fakeLogger, fakeStore, fakeCustody, fakeChain)

		fakeErr = errors.New("fake error")
		phone = "+2348010000000"
	})

	Describe("ResolveOrCreate", func() {
		var (
			resolved repository.Wallet
			err      error
		)

		JustBeforeEach(func() {
			resolved, err = directory.ResolveOrCreate(ctx, phone)
		})

		When("the wallet already exists", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturns(repository.Wallet{
					PhoneNumber: phone,
					Address:     "0xabc",
				}, nil)
			})

			It("should return it without creating a key", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.Address).To(Equal("0xabc"))
				Expect(fakeCustody.CreateKeyCallCount()).To(Equal(0))
				Expect(fakeStore.InsertWalletIfAbsentCallCount()).To(Equal(0))
			})
		})

		When("the wallet does not exist yet", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturnsOnCall(0, repository.Wallet{}, repository.ErrWalletNotFound)
				fakeCustody.CreateKeyReturns(custody.Key{Address: "0xnew", KeyRef: "sealed"}, nil)
				fakeStore.InsertWalletIfAbsentReturns(true, nil)
				fakeStore.GetWalletByPhoneReturnsOnCall(1, repository.Wallet{
					PhoneNumber:   phone,
					Address:       "0xnew",
					CustodyKeyRef: "sealed",
				}, nil)
			})

			It("should create a key and insert the wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.Address).To(Equal("0xnew"))

				Expect(fakeCustody.CreateKeyCallCount()).To(Equal(1))
				Expect(fakeStore.InsertWalletIfAbsentCallCount()).To(Equal(1))
				_, argWallet := fakeStore.InsertWalletIfAbsentArgsForCall(0)
				Expect(argWallet.PhoneNumber).To(Equal(phone))
				Expect(argWallet.Address).To(Equal("0xnew"))
				Expect(argWallet.CustodyKeyRef).To(Equal("sealed"))
			})
		})

		When("a concurrent caller wins the insert", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturnsOnCall(0, repository.Wallet{}, repository.ErrWalletNotFound)
				fakeCustody.CreateKeyReturns(custody.Key{Address: "0xlost", KeyRef: "sealed"}, nil)
				fakeStore.InsertWalletIfAbsentReturns(false, nil)
				fakeStore.GetWalletByPhoneReturnsOnCall(1, repository.Wallet{
					PhoneNumber: phone,
					Address:     "0xwinner",
				}, nil)
			})

			It("should return the winner's wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.Address).To(Equal("0xwinner"))
			})
		})

		When("key generation fails", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturns(repository.Wallet{}, repository.ErrWalletNotFound)
				fakeCustody.CreateKeyReturns(custody.Key{}, fakeErr)
			})

			It("should return custody unavailable error", func() {
				Expect(err).To(MatchError(wallet.ErrCustodyUnavailable))
				Expect(fakeStore.InsertWalletIfAbsentCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Lookup", func() {
		When("the wallet is missing", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturns(repository.Wallet{}, repository.ErrWalletNotFound)
			})

			It("should return not found without creating", func() {
				_, err := directory.Lookup(ctx, phone)
				Expect(err).To(MatchError(wallet.ErrWalletNotFound))
				Expect(fakeCustody.CreateKeyCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetBalance", func() {
		var (
			balances map[string]string
			err      error
		)

		JustBeforeEach(func() {
			balances, err = directory.GetBalance(ctx, phone)
		})

		When("the wallet exists", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturns(repository.Wallet{
					PhoneNumber: phone,
					Address:     "0xabc",
				}, nil)
				fakeChain.BalanceOfReturns(big.NewInt(10_000_000), nil)
			})

			It("should report every supported asset", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balances).To(HaveKeyWithValue("USDC", "10"))
				Expect(balances).To(HaveKey("USDT"))
				Expect(balances).To(HaveKey("DAI"))
				Expect(fakeChain.BalanceOfCallCount()).To(Equal(3))
			})
		})

		When("a chain read fails", func() {
			BeforeEach(func() {
				fakeStore.GetWalletByPhoneReturns(repository.Wallet{Address: "0xabc"}, nil)
				fakeChain.BalanceOfReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})

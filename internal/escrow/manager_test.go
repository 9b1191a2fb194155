package escrow_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"textpay/internal/escrow"
	"textpay/internal/escrow/fake"
	"textpay/internal/repository"
	"textpay/pkg/currency"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Manager", func() {
	var (
		fakeClaims    *fake.ClaimStore
		fakeChain     *fake.EscrowChain
		fakeDirectory *fake.WalletResolver
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		manager *escrow.Manager

		fakeErr error
		usdc    currency.Asset
	)

	BeforeEach(func() {
		fakeClaims = new(fake.ClaimStore)
		fakeChain = new(fake.EscrowChain)
		fakeDirectory = new(fake.WalletResolver)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		manager = escrow.NewManager(fakeLogger, fakeClaims, fakeChain, fakeDirectory, 30*24*time.Hour)

		fakeErr = errors.New("fake error")
		usdc, _ = currency.Lookup("USDC")
	})

	Describe("LockForUnknownRecipient", func() {
		var (
			sender repository.Wallet
			ref    uuid.UUID
			claim  repository.PendingClaim
			err    error
		)

		BeforeEach(func() {
			sender = repository.Wallet{PhoneNumber: "+2348010000000", Address: "0xsender"}
			ref = uuid.New()
		})

		JustBeforeEach(func() {
			claim, err = manager.LockForUnknownRecipient(ctx, sender, "+2348020000000", big.NewInt(10_000_000), usdc, ref)
		})

		When("the chain lock succeeds", func() {
			BeforeEach(func() {
				fakeChain.LockReturns("0xlocktx", "0xref", nil)
			})

			It("should persist a locked claim with an expiry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(claim.Status).To(Equal(repository.ClaimStatusLocked))
				Expect(claim.LockTxHash).To(Equal("0xlocktx"))
				Expect(claim.EscrowRef).To(Equal("0xref"))
				Expect(claim.RecipientPhone).To(Equal("+2348020000000"))
				Expect(claim.SenderPhone).To(Equal(sender.PhoneNumber))
				Expect(claim.ExpiresAt).To(BeTemporally("~", time.Now().UTC().Add(30*24*time.Hour), time.Minute))

				Expect(fakeChain.LockCallCount()).To(Equal(1))
				_, argSender, argAmount, argAsset, argRef, _ := fakeChain.LockArgsForCall(0)
				Expect(argSender).To(Equal(sender))
				Expect(argAmount).To(Equal(big.NewInt(10_000_000)))
				Expect(argAsset).To(Equal(usdc))
				Expect(argRef).To(Equal(ref))

				Expect(fakeClaims.CreateClaimCallCount()).To(Equal(1))
			})
		})

		When("the chain lock fails", func() {
			BeforeEach(func() {
				fakeChain.LockReturns("", "", fakeErr)
			})

			It("should not persist anything", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeClaims.CreateClaimCallCount()).To(Equal(0))
			})
		})

		When("persisting the claim fails", func() {
			BeforeEach(func() {
				fakeChain.LockReturns("0xlocktx", "0xref", nil)
				fakeClaims.CreateClaimReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Claim", func() {
		var (
			result escrow.ClaimResult
			err    error
		)

		JustBeforeEach(func() {
			result, err = manager.Claim(ctx, "+2348020000000")
		})

		When("no claims are pending", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsByRecipientReturns(nil, nil)
			})

			It("should be a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Released).To(Equal(0))
				Expect(fakeDirectory.ResolveOrCreateCallCount()).To(Equal(0))
				Expect(fakeChain.ReleaseCallCount()).To(Equal(0))
			})
		})

		When("locked claims exist", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsByRecipientReturns([]repository.PendingClaim{
					{ClaimID: "claim-1", EscrowRef: "0xref1", Amount: "10000000", Asset: "USDC"},
					{ClaimID: "claim-2", EscrowRef: "0xref2", Amount: "5000000", Asset: "USDC"},
				}, nil)
				fakeDirectory.ResolveOrCreateReturns(repository.Wallet{Address: "0xrecipient"}, nil)
				fakeClaims.TransitionClaimReturns(true, nil)
				fakeChain.ReleaseReturns("0xreleasetx", nil)
			})

			It("should create the wallet and release each claim", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Released).To(Equal(2))
				Expect(result.WalletAddress).To(Equal("0xrecipient"))
				Expect(result.Amounts).To(HaveKeyWithValue("USDC", "15"))

				Expect(fakeChain.ReleaseCallCount()).To(Equal(2))
				_, argRef, argAddr := fakeChain.ReleaseArgsForCall(0)
				Expect(argRef).To(Equal("0xref1"))
				Expect(argAddr).To(Equal("0xrecipient"))
			})
		})

		When("a claim was already moved out of locked", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsByRecipientReturns([]repository.PendingClaim{
					{ClaimID: "claim-1", EscrowRef: "0xref1", Amount: "10000000", Asset: "USDC"},
				}, nil)
				fakeDirectory.ResolveOrCreateReturns(repository.Wallet{Address: "0xrecipient"}, nil)
				fakeClaims.TransitionClaimReturns(false, nil)
			})

			It("should skip it without touching the chain", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Released).To(Equal(0))
				Expect(fakeChain.ReleaseCallCount()).To(Equal(0))
			})
		})

		When("the release transaction fails", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsByRecipientReturns([]repository.PendingClaim{
					{ClaimID: "claim-1", EscrowRef: "0xref1", Amount: "10000000", Asset: "USDC"},
				}, nil)
				fakeDirectory.ResolveOrCreateReturns(repository.Wallet{Address: "0xrecipient"}, nil)
				fakeClaims.TransitionClaimReturns(true, nil)
				fakeChain.ReleaseReturns("", fakeErr)
			})

			It("should leave the claim claimed and not count it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Released).To(Equal(0))
			})
		})

		When("wallet creation fails", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsByRecipientReturns([]repository.PendingClaim{
					{ClaimID: "claim-1"},
				}, nil)
				fakeDirectory.ResolveOrCreateReturns(repository.Wallet{}, fakeErr)
			})

			It("should return the error before touching claims", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeClaims.TransitionClaimCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ExpireSweep", func() {
		var (
			expired int
			err     error
			now     time.Time
		)

		BeforeEach(func() {
			now = time.Now().UTC()
		})

		JustBeforeEach(func() {
			expired, err = manager.ExpireSweep(ctx, now)
		})

		When("overdue claims exist", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsExpiredBeforeReturns([]repository.PendingClaim{
					{ClaimID: "claim-1", EscrowRef: "0xref1"},
				}, nil)
				fakeClaims.TransitionClaimReturns(true, nil)
				fakeChain.RefundReturns("0xrefundtx", nil)
			})

			It("should expire and refund them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(expired).To(Equal(1))

				Expect(fakeClaims.TransitionClaimCallCount()).To(Equal(2))
				_, argID, argFrom, argTo, _ := fakeClaims.TransitionClaimArgsForCall(0)
				Expect(argID).To(Equal("claim-1"))
				Expect(argFrom).To(Equal(repository.ClaimStatusLocked))
				Expect(argTo).To(Equal(repository.ClaimStatusExpired))

				Expect(fakeChain.RefundCallCount()).To(Equal(1))
				_, argRef := fakeChain.RefundArgsForCall(0)
				Expect(argRef).To(Equal("0xref1"))
			})
		})

		When("a concurrent claim won the transition", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsExpiredBeforeReturns([]repository.PendingClaim{
					{ClaimID: "claim-1", EscrowRef: "0xref1"},
				}, nil)
				fakeClaims.TransitionClaimReturns(false, nil)
			})

			It("should not refund", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(expired).To(Equal(0))
				Expect(fakeChain.RefundCallCount()).To(Equal(0))
			})
		})

		When("the refund fails", func() {
			BeforeEach(func() {
				fakeClaims.LockedClaimsExpiredBeforeReturns([]repository.PendingClaim{
					{ClaimID: "claim-1", EscrowRef: "0xref1"},
				}, nil)
				fakeClaims.TransitionClaimReturns(true, nil)
				fakeChain.RefundReturns("", fakeErr)
			})

			It("should continue without counting the claim", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(expired).To(Equal(0))
			})
		})
	})
})

package core_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"textpay/internal/chain"
	"textpay/internal/core"
	"textpay/internal/core/fake"
	"textpay/internal/escrow"
	"textpay/internal/intent"
	"textpay/internal/ratelimit"
	"textpay/internal/repository"
	"textpay/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Dispatcher", func() {
	var (
		fakeLimiter   *fake.RateLimiter
		fakeDirectory *fake.WalletDirectory
		fakeClaims    *fake.ClaimService
		fakeChain     *fake.ChainService
		fakeRecords   *fake.RecordStore
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		dispatcher *core.Dispatcher

		fakeErr error
		msg     core.InboundMessage
		ack     core.Ack
		err     error
	)

	BeforeEach(func() {
		fakeLimiter = new(fake.RateLimiter)
		fakeDirectory = new(fake.WalletDirectory)
		fakeClaims = new(fake.ClaimService)
		fakeChain = new(fake.ChainService)
		fakeRecords = new(fake.RecordStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		dispatcher = core.NewDispatcher(
			fakeLogger,
			fakeLimiter,
			intent.NewParser("234"),
			fakeDirectory,
			fakeClaims,
			fakeChain,
			fakeRecords)

		fakeErr = errors.New("fake error")

		msg = core.InboundMessage{
			Channel:   core.ChannelWhatsApp,
			FromPhone: "+2348010000000",
			Text:      "balance",
			MessageID: "msg-1",
		}

		// fresh record, allowed, sender resolved, nothing held in escrow
		fakeRecords.CreateTransactionIfAbsentReturns(true, nil)
		fakeRecords.MarkTransactionReturns(true, nil)
		fakeRecords.MarkAcknowledgedReturns(true, nil)
		fakeLimiter.CheckAndIncrementReturns(ratelimit.Verdict{Allowed: true, Count: 1}, nil)
		fakeDirectory.ResolveOrCreateReturns(repository.Wallet{
			PhoneNumber: msg.FromPhone,
			Address:     "0xsender",
		}, nil)
		fakeClaims.ClaimReturns(escrow.ClaimResult{}, nil)
	})

	JustBeforeEach(func() {
		ack, err = dispatcher.Dispatch(ctx, msg)
	})

	Describe("idempotency", func() {
		When("the message id was already processed", func() {
			BeforeEach(func() {
				fakeRecords.CreateTransactionIfAbsentReturns(false, nil)
				fakeRecords.GetTransactionReturns(repository.TransactionRecord{
					Status:       repository.TxStatusConfirmed,
					ResponseText: "Your balance: 10 USDC.",
				}, nil)
			})

			It("should replay the stored response without side effects", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Text).To(Equal("Your balance: 10 USDC."))
				Expect(ack.Pending).To(BeFalse())

				Expect(fakeLimiter.CheckAndIncrementCallCount()).To(Equal(0))
				Expect(fakeChain.TransferCallCount()).To(Equal(0))
				Expect(fakeDirectory.ResolveOrCreateCallCount()).To(Equal(0))
			})
		})

		When("the duplicate arrives before the original finished", func() {
			BeforeEach(func() {
				fakeRecords.CreateTransactionIfAbsentReturns(false, nil)
				fakeRecords.GetTransactionReturns(repository.TransactionRecord{
					Status: repository.TxStatusSubmitted,
				}, nil)
			})

			It("should answer with a processing note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Pending).To(BeTrue())
				Expect(ack.Text).To(ContainSubstring("being processed"))
			})
		})

		When("creating the record fails", func() {
			BeforeEach(func() {
				fakeRecords.CreateTransactionIfAbsentReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("rate limiting", func() {
		When("the daily limit is reached", func() {
			BeforeEach(func() {
				fakeLimiter.CheckAndIncrementReturns(ratelimit.Verdict{
					Allowed:    false,
					Count:      20,
					RetryAfter: 90 * time.Minute,
				}, nil)
			})

			It("should refuse with a retry hint and fail the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Text).To(ContainSubstring("Daily message limit reached"))
				Expect(ack.Text).To(ContainSubstring("1h30m"))

				_, _, argFrom, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
				Expect(argFrom).To(Equal(repository.TxStatusPending))
				Expect(argTo).To(Equal(repository.TxStatusFailed))
				Expect(fakeChain.TransferCallCount()).To(Equal(0))
			})
		})

		When("the rate check itself fails", func() {
			BeforeEach(func() {
				fakeLimiter.CheckAndIncrementReturns(ratelimit.Verdict{}, fakeErr)
			})

			It("should fail the record so it never wedges in pending", func() {
				Expect(err).To(MatchError(fakeErr))

				_, _, argFrom, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
				Expect(argFrom).To(Equal(repository.TxStatusPending))
				Expect(argTo).To(Equal(repository.TxStatusFailed))

				Expect(fakeRecords.MarkAcknowledgedCallCount()).To(Equal(1))
				_, _, argText := fakeRecords.MarkAcknowledgedArgsForCall(0)
				Expect(argText).To(ContainSubstring("try again later"))
			})

			It("should give a retried delivery a terminal answer, not a processing note", func() {
				fakeRecords.CreateTransactionIfAbsentReturns(false, nil)
				fakeRecords.GetTransactionReturns(repository.TransactionRecord{
					Status:       repository.TxStatusFailed,
					ResponseText: "We cannot process your request right now. Please try again later.",
				}, nil)

				retryAck, retryErr := dispatcher.Dispatch(ctx, msg)
				Expect(retryErr).NotTo(HaveOccurred())
				Expect(retryAck.Text).NotTo(ContainSubstring("being processed"))
				Expect(retryAck.Text).To(ContainSubstring("try again later"))
				Expect(retryAck.Pending).To(BeFalse())

				Expect(fakeLimiter.CheckAndIncrementCallCount()).To(Equal(1))
				Expect(fakeChain.TransferCallCount()).To(Equal(0))
			})
		})
	})

	Describe("unparseable input", func() {
		BeforeEach(func() {
			msg.Text = "hello there"
		})

		It("should reply with guidance and fail the record", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ack.Text).To(ContainSubstring("could not understand"))
			Expect(ack.Text).To(ContainSubstring("send 10 USDC"))
			Expect(fakeDirectory.ResolveOrCreateCallCount()).To(Equal(0))
		})
	})

	Describe("balance", func() {
		BeforeEach(func() {
			fakeDirectory.GetBalanceReturns(map[string]string{
				"USDC": "10",
				"USDT": "0",
				"DAI":  "2.5",
			}, nil)
		})

		It("should reply with all balances in stable order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ack.Text).To(Equal("Your balance: 2.5 DAI, 10 USDC, 0 USDT."))
			Expect(ack.Pending).To(BeFalse())

			_, _, argFrom, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
			Expect(argFrom).To(Equal(repository.TxStatusPending))
			Expect(argTo).To(Equal(repository.TxStatusConfirmed))
		})

		When("held funds were released on first contact", func() {
			BeforeEach(func() {
				fakeClaims.ClaimReturns(escrow.ClaimResult{
					Released: 1,
					Amounts:  map[string]string{"USDC": "10"},
				}, nil)
			})

			It("should prefix the release note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Text).To(HavePrefix("Funds held for you have been released: 10 USDC. "))
			})
		})

		When("the balance read fails", func() {
			BeforeEach(func() {
				fakeDirectory.GetBalanceReturns(nil, fakeErr)
			})

			It("should reply with a retry note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Text).To(ContainSubstring("try again later"))
			})
		})
	})

	Describe("send", func() {
		BeforeEach(func() {
			msg.Text = "send 10 USDC to +2348020000000"
		})

		When("the recipient has a wallet", func() {
			BeforeEach(func() {
				fakeDirectory.LookupReturns(repository.Wallet{
					PhoneNumber: "+2348020000000",
					Address:     "0xrecipient",
				}, nil)
				fakeChain.TransferReturns("0xtxhash", nil)
			})

			It("should submit an on-chain transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Pending).To(BeTrue())
				Expect(ack.Text).To(ContainSubstring("Sending 10 USDC to +2348020000000"))

				Expect(fakeChain.TransferCallCount()).To(Equal(1))
				_, argSender, argTo, argAmount, argAsset, argRef := fakeChain.TransferArgsForCall(0)
				Expect(argSender.Address).To(Equal("0xsender"))
				Expect(argTo).To(Equal("0xrecipient"))
				Expect(argAmount).To(Equal(big.NewInt(10_000_000)))
				Expect(argAsset.Symbol).To(Equal("USDC"))
				Expect(argRef).To(Equal(core.RecordID(msg.Channel, msg.MessageID)))

				_, _, argFrom, argTo2, argExtra := fakeRecords.MarkTransactionArgsForCall(0)
				Expect(argFrom).To(Equal(repository.TxStatusPending))
				Expect(argTo2).To(Equal(repository.TxStatusSubmitted))
				Expect(argExtra).To(HaveKeyWithValue("chain_tx_hash", "0xtxhash"))
			})

			It("should record the parsed intent on the transaction", func() {
				Expect(fakeRecords.UpdateTransactionCallCount()).To(Equal(1))
				_, _, argUpdates := fakeRecords.UpdateTransactionArgsForCall(0)
				Expect(argUpdates).To(HaveKeyWithValue("to_phone", "+2348020000000"))
				Expect(argUpdates).To(HaveKeyWithValue("amount", "10000000"))
				Expect(argUpdates).To(HaveKeyWithValue("asset", "USDC"))
			})
		})

		When("the recipient has no wallet", func() {
			BeforeEach(func() {
				fakeDirectory.LookupReturns(repository.Wallet{}, wallet.ErrWalletNotFound)
				fakeClaims.LockForUnknownRecipientReturns(repository.PendingClaim{
					ClaimID:    "claim-1",
					LockTxHash: "0xlocktx",
					ExpiresAt:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				}, nil)
			})

			It("should lock the funds in escrow and tell the sender", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Pending).To(BeTrue())
				Expect(ack.Text).To(ContainSubstring("no wallet yet"))
				Expect(ack.Text).To(ContainSubstring("Oct 1"))

				Expect(fakeChain.TransferCallCount()).To(Equal(0))
				Expect(fakeClaims.LockForUnknownRecipientCallCount()).To(Equal(1))
				_, argSender, argPhone, argAmount, _, _ := fakeClaims.LockForUnknownRecipientArgsForCall(0)
				Expect(argSender.Address).To(Equal("0xsender"))
				Expect(argPhone).To(Equal("+2348020000000"))
				Expect(argAmount).To(Equal(big.NewInt(10_000_000)))

				_, _, _, argTo, argExtra := fakeRecords.MarkTransactionArgsForCall(0)
				Expect(argTo).To(Equal(repository.TxStatusSubmitted))
				Expect(argExtra).To(HaveKeyWithValue("chain_tx_hash", "0xlocktx"))
			})
		})

		When("the sender has insufficient funds", func() {
			BeforeEach(func() {
				fakeDirectory.LookupReturns(repository.Wallet{Address: "0xrecipient"}, nil)
				fakeChain.TransferReturns("", chain.ErrInsufficientFunds)
			})

			It("should fail the record with a clear message", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Pending).To(BeFalse())
				Expect(ack.Text).To(ContainSubstring("do not have enough USDC"))

				_, _, _, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
				Expect(argTo).To(Equal(repository.TxStatusFailed))
			})
		})

		When("the submission times out", func() {
			BeforeEach(func() {
				fakeDirectory.LookupReturns(repository.Wallet{Address: "0xrecipient"}, nil)
				fakeChain.TransferReturns("", chain.ErrTimeout)
			})

			It("should keep the outcome open and promise a confirmation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Pending).To(BeTrue())
				Expect(ack.Text).To(ContainSubstring("longer than expected"))

				// submitted without a hash, never failed, never resubmitted
				_, _, argFrom, argTo, argExtra := fakeRecords.MarkTransactionArgsForCall(0)
				Expect(argFrom).To(Equal(repository.TxStatusPending))
				Expect(argTo).To(Equal(repository.TxStatusSubmitted))
				Expect(argExtra).To(BeNil())
				Expect(fakeChain.TransferCallCount()).To(Equal(1))
			})
		})

		When("the chain is unavailable", func() {
			BeforeEach(func() {
				fakeDirectory.LookupReturns(repository.Wallet{Address: "0xrecipient"}, nil)
				fakeChain.TransferReturns("", chain.ErrChainUnavailable)
			})

			It("should fail the record with a retry note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Text).To(ContainSubstring("try again later"))
			})
		})

		When("the sender wallet cannot be created", func() {
			BeforeEach(func() {
				fakeDirectory.ResolveOrCreateReturns(repository.Wallet{}, wallet.ErrCustodyUnavailable)
			})

			It("should fail the record with a retry note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ack.Text).To(ContainSubstring("try again later"))
				Expect(fakeChain.TransferCallCount()).To(Equal(0))
			})
		})
	})

	Describe("unsupported operations", func() {
		BeforeEach(func() {
			msg.Text = "stake 100 DAI"
		})

		It("should acknowledge the feature is not available", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ack.Pending).To(BeFalse())
			Expect(ack.Text).To(ContainSubstring("stake feature is not available yet"))
		})
	})

	Describe("menu input", func() {
		BeforeEach(func() {
			msg.Channel = core.ChannelUSSD
			msg.Text = ""
			msg.MenuPath = "1*10*USDC*+2348020000000"

			fakeDirectory.LookupReturns(repository.Wallet{Address: "0xrecipient"}, nil)
			fakeChain.TransferReturns("0xtxhash", nil)
		})

		It("should parse the menu path as a send", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ack.Pending).To(BeTrue())
			Expect(fakeChain.TransferCallCount()).To(Equal(1))
		})
	})
})

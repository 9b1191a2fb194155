package chain_test

import (
	"context"
	"errors"
	"time"

	"textpay/internal/chain"
	"textpay/internal/chain/fake"
	"textpay/internal/repository"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Confirmer", func() {
	var (
		fakeReceipts *fake.ReceiptFetcher
		fakeRecords  *fake.RecordStore
		fakeNotify   *fake.Notifier
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		confirmer *chain.Confirmer

		fakeErr error
		txHash  string
		toPhone string
		record  repository.TransactionRecord
		err     error
	)

	BeforeEach(func() {
		fakeReceipts = new(fake.ReceiptFetcher)
		fakeRecords = new(fake.RecordStore)
		fakeNotify = new(fake.Notifier)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		confirmer = chain.NewConfirmer(fakeLogger, fakeReceipts, fakeRecords, fakeNotify, time.Second)

		fakeErr = errors.New("fake error")
		txHash = "0x00000000000000000000000000000000000000000000000000000000000000aa"
		toPhone = "+2348020000000"
		record = repository.TransactionRecord{
			ID:          "rec-1",
			FromPhone:   "+2348010000000",
			ToPhone:     &toPhone,
			Amount:      "10000000",
			Asset:       "USDC",
			Status:      repository.TxStatusSubmitted,
			ChainTxHash: &txHash,
		}
	})

	JustBeforeEach(func() {
		err = confirmer.Poll(ctx)
	})

	When("a submitted transfer has a successful receipt", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeReceipts.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			fakeRecords.MarkTransactionReturns(true, nil)
			fakeRecords.MarkAcknowledgedReturns(true, nil)
		})

		It("should confirm the record and notify the sender", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRecords.MarkTransactionCallCount()).To(Equal(1))
			_, argID, argFrom, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
			Expect(argID).To(Equal("rec-1"))
			Expect(argFrom).To(Equal(repository.TxStatusSubmitted))
			Expect(argTo).To(Equal(repository.TxStatusConfirmed))

			Expect(fakeNotify.SendCallCount()).To(Equal(1))
			_, argPhone, argText := fakeNotify.SendArgsForCall(0)
			Expect(argPhone).To(Equal("+2348010000000"))
			Expect(argText).To(Equal("Your transfer of 10 USDC to +2348020000000 is confirmed."))
		})
	})

	When("the receipt reports a revert", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeReceipts.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			fakeRecords.MarkTransactionReturns(true, nil)
			fakeRecords.MarkAcknowledgedReturns(true, nil)
		})

		It("should fail the record and tell the sender the balance is intact", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, _, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
			Expect(argTo).To(Equal(repository.TxStatusFailed))

			_, _, argText := fakeNotify.SendArgsForCall(0)
			Expect(argText).To(ContainSubstring("failed on-chain"))
			Expect(argText).To(ContainSubstring("balance was not affected"))
		})
	})

	When("the transfer is not mined yet", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeReceipts.TransactionReceiptReturns(nil, ethereum.NotFound)
		})

		It("should leave the record for the next pass", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRecords.MarkTransactionCallCount()).To(Equal(0))
			Expect(fakeNotify.SendCallCount()).To(Equal(0))
		})
	})

	When("a fresh record has no transaction hash yet", func() {
		BeforeEach(func() {
			record.ChainTxHash = nil
			record.UpdatedAt = time.Now()
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
		})

		It("should leave it within the grace period", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeReceipts.TransactionReceiptCallCount()).To(Equal(0))
			Expect(fakeRecords.MarkTransactionCallCount()).To(Equal(0))
			Expect(fakeNotify.SendCallCount()).To(Equal(0))
		})
	})

	When("a record has sat without a hash past the grace period", func() {
		BeforeEach(func() {
			record.ChainTxHash = nil
			record.UpdatedAt = time.Now().Add(-time.Hour)
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeRecords.MarkTransactionReturns(true, nil)
			fakeRecords.MarkAcknowledgedReturns(true, nil)
		})

		It("should fail it and tell the sender to check their balance", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeReceipts.TransactionReceiptCallCount()).To(Equal(0))

			Expect(fakeRecords.MarkTransactionCallCount()).To(Equal(1))
			_, argID, argFrom, argTo, _ := fakeRecords.MarkTransactionArgsForCall(0)
			Expect(argID).To(Equal("rec-1"))
			Expect(argFrom).To(Equal(repository.TxStatusSubmitted))
			Expect(argTo).To(Equal(repository.TxStatusFailed))

			Expect(fakeNotify.SendCallCount()).To(Equal(1))
			_, argPhone, argText := fakeNotify.SendArgsForCall(0)
			Expect(argPhone).To(Equal("+2348010000000"))
			Expect(argText).To(ContainSubstring("could not confirm your transfer of 10 USDC"))
			Expect(argText).To(ContainSubstring("check your balance"))
		})
	})

	When("a dispatcher settled the hashless record first", func() {
		BeforeEach(func() {
			record.ChainTxHash = nil
			record.UpdatedAt = time.Now().Add(-time.Hour)
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeRecords.MarkTransactionReturns(false, nil)
		})

		It("should not acknowledge or notify", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRecords.MarkAcknowledgedCallCount()).To(Equal(0))
			Expect(fakeNotify.SendCallCount()).To(Equal(0))
		})
	})

	When("another poller already moved the record", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeReceipts.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			fakeRecords.MarkTransactionReturns(false, nil)
		})

		It("should not acknowledge twice", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRecords.MarkAcknowledgedCallCount()).To(Equal(0))
			Expect(fakeNotify.SendCallCount()).To(Equal(0))
		})
	})

	When("the record was already acknowledged", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeReceipts.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			fakeRecords.MarkTransactionReturns(true, nil)
			fakeRecords.MarkAcknowledgedReturns(false, nil)
		})

		It("should not send a duplicate message", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeNotify.SendCallCount()).To(Equal(0))
		})
	})

	When("delivery fails", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns([]repository.TransactionRecord{record}, nil)
			fakeReceipts.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			fakeRecords.MarkTransactionReturns(true, nil)
			fakeRecords.MarkAcknowledgedReturns(true, nil)
			fakeNotify.SendReturns(fakeErr)
		})

		It("should keep the record terminal", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRecords.MarkTransactionCallCount()).To(Equal(1))
		})
	})

	When("listing submitted records fails", func() {
		BeforeEach(func() {
			fakeRecords.ListSubmittedReturns(nil, fakeErr)
		})

		It("should return the error", func() {
			Expect(err).To(MatchError(fakeErr))
		})
	})
})

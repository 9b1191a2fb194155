package ratelimit_test

import (
	"context"
	"errors"
	"time"

	"textpay/internal/ratelimit"
	"textpay/internal/ratelimit/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Limiter", func() {
	var (
		fakeStore  *fake.CounterStore
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		limiter *ratelimit.Limiter

		fakeErr error
	)

	BeforeEach(func() {
		fakeStore = new(fake.CounterStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		limiter = ratelimit.NewLimiter(fakeLogger, fakeStore, 20)

		fakeErr = errors.New("fake error")
	})

	Describe("CheckAndIncrement", func() {
		var (
			verdict ratelimit.Verdict
			err     error
		)

		JustBeforeEach(func() {
			verdict, err = limiter.CheckAndIncrement(ctx, "+2348010000000")
		})

		When("the sender is under the limit", func() {
			BeforeEach(func() {
				fakeStore.CheckAndIncrementReturns(5, true, nil)
			})

			It("should allow the message", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Allowed).To(BeTrue())
				Expect(verdict.Count).To(Equal(int64(5)))
				Expect(verdict.RetryAfter).To(BeZero())

				Expect(fakeStore.CheckAndIncrementCallCount()).To(Equal(1))
				_, argPhone, argDay, argLimit := fakeStore.CheckAndIncrementArgsForCall(0)
				Expect(argPhone).To(Equal("+2348010000000"))
				Expect(argDay).To(Equal(time.Now().UTC().Format("2006-01-02")))
				Expect(argLimit).To(Equal(int64(20)))
			})
		})

		When("the sender reached the limit", func() {
			BeforeEach(func() {
				fakeStore.CheckAndIncrementReturns(20, false, nil)
			})

			It("should deny with a retry hint", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Allowed).To(BeFalse())
				Expect(verdict.Count).To(Equal(int64(20)))
				Expect(verdict.RetryAfter).To(BeNumerically(">", 0))
				Expect(verdict.RetryAfter).To(BeNumerically("<=", 24*time.Hour))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.CheckAndIncrementReturns(0, false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ResetAllCounters", func() {
		var (
			summary ratelimit.ResetSummary
			err     error
		)

		JustBeforeEach(func() {
			summary, err = limiter.ResetAllCounters(ctx)
		})

		When("counters exist", func() {
			BeforeEach(func() {
				fakeStore.CountersReturns([]ratelimit.Counter{
					{PhoneNumber: "+2348010000000"},
					{PhoneNumber: "+2348020000000"},
				}, nil)
			})

			It("should delete each counter", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.ResetCount).To(Equal(2))
				Expect(summary.DailyLimit).To(Equal(int64(20)))
				Expect(fakeStore.DeleteCounterCallCount()).To(Equal(2))
				_, argPhone := fakeStore.DeleteCounterArgsForCall(0)
				Expect(argPhone).To(Equal("+2348010000000"))
			})
		})

		When("one delete fails", func() {
			BeforeEach(func() {
				fakeStore.CountersReturns([]ratelimit.Counter{
					{PhoneNumber: "+2348010000000"},
					{PhoneNumber: "+2348020000000"},
				}, nil)
				fakeStore.DeleteCounterReturnsOnCall(0, fakeErr)
			})

			It("should continue and count the rest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.ResetCount).To(Equal(1))
			})
		})

		When("listing counters fails", func() {
			BeforeEach(func() {
				fakeStore.CountersReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GlobalStats", func() {
		var (
			stats ratelimit.Stats
			err   error
			today string
		)

		BeforeEach(func() {
			today = time.Now().UTC().Format("2006-01-02")
		})

		JustBeforeEach(func() {
			stats, err = limiter.GlobalStats(ctx)
		})

		When("counters span multiple days", func() {
			BeforeEach(func() {
				fakeStore.CountersReturns([]ratelimit.Counter{
					{PhoneNumber: "+2348010000000", WindowStart: today, MessageCount: 3},
					{PhoneNumber: "+2348020000000", WindowStart: today, MessageCount: 19},
					{PhoneNumber: "+2348030000000", WindowStart: "2020-01-01", MessageCount: 7},
				}, nil)
			})

			It("should aggregate only today's counters", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.TotalMessagesToday).To(Equal(int64(22)))
				Expect(stats.ActiveUsers).To(Equal(2))
				Expect(stats.NearLimitUsers).To(Equal(1))
			})
		})

		When("listing counters fails", func() {
			BeforeEach(func() {
				fakeStore.CountersReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})

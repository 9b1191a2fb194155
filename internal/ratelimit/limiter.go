package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const dayFormat = "2006-01-02"

// nearLimitFraction marks users at or above 80% of the daily limit.
const nearLimitNum, nearLimitDen = 4, 5

// Verdict is the outcome of one check-and-increment call.
type Verdict struct {
	Allowed    bool
	Count      int64
	RetryAfter time.Duration // until window rollover, zero when allowed
}

// ResetSummary reports an administrative counter reset.
type ResetSummary struct {
	ResetCount int
	DailyLimit int64
}

// Stats is an aggregate, eventually-consistent view over all counters.
type Stats struct {
	TotalMessagesToday int64
	ActiveUsers        int
	NearLimitUsers     int
}

// Limiter caps financial actions per sender per UTC day, uniformly across
// channels. The counter store is the single source of truth; there is no
// process-local cache to race against.
type Limiter struct {
	logs  *zap.SugaredLogger
	store CounterStore
	limit int64
	now   func() time.Time
}

func NewLimiter(logger *zap.SugaredLogger, store CounterStore, dailyLimit int64) *Limiter {
	return &Limiter{
		logs:  logger,
		store: store,
		limit: dailyLimit,
		now:   time.Now,
	}
}

func (l *Limiter) CheckAndIncrement(ctx context.Context, phone string) (Verdict, error) {
	now := l.now().UTC()

	count, allowed, err := l.store.CheckAndIncrement(ctx, phone, now.Format(dayFormat), l.limit)
	if err != nil {
		return Verdict{}, fmt.Errorf("check and increment %q: %w", phone, err)
	}

	if !allowed {
		return Verdict{
			Allowed:    false,
			Count:      count,
			RetryAfter: untilNextDay(now),
		}, nil
	}

	return Verdict{Allowed: true, Count: count}, nil
}

// ResetAllCounters zeroes every counter. Each delete is independent and
// atomic; traffic flowing during the reset simply starts fresh counters.
func (l *Limiter) ResetAllCounters(ctx context.Context) (ResetSummary, error) {
	counters, err := l.store.Counters(ctx)
	if err != nil {
		return ResetSummary{}, fmt.Errorf("list counters: %w", err)
	}

	reset := 0
	for _, counter := range counters {
		if err := l.store.DeleteCounter(ctx, counter.PhoneNumber); err != nil {
			l.logs.Errorw("failed to reset counter", "phone", counter.PhoneNumber, "error", err)
			continue
		}
		reset++
	}

	l.logs.Infow("rate counters reset", "count", reset, "daily_limit", l.limit)

	return ResetSummary{
		ResetCount: reset,
		DailyLimit: l.limit,
	}, nil
}

func (l *Limiter) GlobalStats(ctx context.Context) (Stats, error) {
	counters, err := l.store.Counters(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list counters: %w", err)
	}

	today := l.now().UTC().Format(dayFormat)

	var stats Stats
	for _, counter := range counters {
		if counter.WindowStart != today {
			continue
		}
		stats.TotalMessagesToday += counter.MessageCount
		stats.ActiveUsers++
		if counter.MessageCount*nearLimitDen >= l.limit*nearLimitNum {
			stats.NearLimitUsers++
		}
	}

	return stats, nil
}

func (l *Limiter) DailyLimit() int64 {
	return l.limit
}

func untilNextDay(now time.Time) time.Duration {
	next := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return next.Sub(now)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"textpay/internal/config"
	"textpay/internal/ratelimit"
	"textpay/pkg/log"

	"go.uber.org/zap/zapcore"
)

// ResetRateLimiter zeroes every daily message counter. It is a standalone
// command so operators can run it from a shell without touching the server.
func ResetRateLimiter(args []string) error {
	flags := flag.NewFlagSet("reset-rate-limiter", flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: textpay reset-rate-limiter")
		fmt.Fprintln(flags.Output(), "Resets the daily message counter for every phone number.")
		fmt.Fprintf(flags.Output(), "Requires the %s environment variable.\n", "REDIS_URL")
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := log.NewZapLogger("textpay-reset", zapcore.WarnLevel)

	config, err := config.NewResetApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	counterStore, err := ratelimit.NewRedisStore(config.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	limiter := ratelimit.NewLimiter(logger, counterStore, config.DailyMessageLimit)

	ctx := context.Background()

	summary, err := limiter.ResetAllCounters(ctx)
	if err != nil {
		return fmt.Errorf("reset counters: %w", err)
	}

	fmt.Printf("reset %d counter(s), daily limit is %d messages\n", summary.ResetCount, summary.DailyLimit)

	stats, err := limiter.GlobalStats(ctx)
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}

	fmt.Printf("active users today: %d, messages today: %d, near limit: %d\n",
		stats.ActiveUsers, stats.TotalMessagesToday, stats.NearLimitUsers)

	return nil
}

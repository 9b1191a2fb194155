package ratelimit

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Counter is one phone number's usage inside the current window.
type Counter struct {
	PhoneNumber  string
	WindowStart  string // UTC day, 2006-01-02
	MessageCount int64
}

//counterfeiter:generate -o fake -fake-name CounterStore . CounterStore
type CounterStore interface {
	// CheckAndIncrement atomically rolls the window if day differs from the
	// stored one, then increments unless the count already reached limit.
	// Returns the count after the call and whether the increment happened.
	CheckAndIncrement(ctx context.Context, phone, day string, limit int64) (int64, bool, error)
	Counters(ctx context.Context) ([]Counter, error)
	DeleteCounter(ctx context.Context, phone string) error
}

package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const counterKeyPrefix = "ratecounter:"

// counterTTL keeps stale counters from accumulating; two days covers any
// window still relevant to a rollover check.
const counterTTLSeconds = 2 * 24 * 60 * 60

// checkScript performs the whole window-roll + compare + increment sequence
// server-side so it is atomic per key. KEYS[1] counter key, ARGV[1] current
// day, ARGV[2] limit, ARGV[3] ttl. Returns {count, allowed}.
var checkScript = redis.NewScript(`
local window = redis.call('HGET', KEYS[1], 'window')
if window ~= ARGV[1] then
  redis.call('HSET', KEYS[1], 'window', ARGV[1], 'count', 0)
end
local count = tonumber(redis.call('HGET', KEYS[1], 'count'))
if count >= tonumber(ARGV[2]) then
  return {count, 0}
end
count = redis.call('HINCRBY', KEYS[1], 'count', 1)
redis.call('EXPIRE', KEYS[1], ARGV[3])
return {count, 1}
`)

// RedisStore keeps one hash per phone number: {window, count}.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) CheckAndIncrement(ctx context.Context, phone, day string, limit int64) (int64, bool, error) {
	res, err := checkScript.Run(ctx, s.client, []string{counterKey(phone)}, day, limit, counterTTLSeconds).Slice()
	if err != nil {
		return 0, false, fmt.Errorf("run counter script: %w", err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("counter script returned %d values, want 2", len(res))
	}

	count, ok := res[0].(int64)
	if !ok {
		return 0, false, fmt.Errorf("counter script count type %T", res[0])
	}
	allowed, ok := res[1].(int64)
	if !ok {
		return 0, false, fmt.Errorf("counter script verdict type %T", res[1])
	}

	return count, allowed == 1, nil
}

func (s *RedisStore) Counters(ctx context.Context) ([]Counter, error) {
	var counters []Counter

	iter := s.client.Scan(ctx, 0, counterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("read counter %q: %w", key, err)
		}
		if len(fields) == 0 {
			// expired between scan and read
			continue
		}

		count, err := strconv.ParseInt(fields["count"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse counter %q: %w", key, err)
		}

		counters = append(counters, Counter{
			PhoneNumber:  strings.TrimPrefix(key, counterKeyPrefix),
			WindowStart:  fields["window"],
			MessageCount: count,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan counters: %w", err)
	}

	return counters, nil
}

func (s *RedisStore) DeleteCounter(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, counterKey(phone)).Err(); err != nil {
		return fmt.Errorf("delete counter %q: %w", phone, err)
	}
	return nil
}

func counterKey(phone string) string {
	return counterKeyPrefix + phone
}

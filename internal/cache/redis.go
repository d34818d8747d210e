package cache

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"

	"lakbay/internal/utils"
)

const redisKeyPrefix = "lakbay:cache:"

// Redis is the shared-instance Store. Payloads are stored as JSON;
// readers get a json.RawMessage back and unmarshal through Memoize.
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedis connects a Redis-backed cache store.
func NewRedis(addr string) *Redis {
	return &Redis{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		timeout: 2 * time.Second,
	}
}

func (r *Redis) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

func (r *Redis) Get(key string) (any, bool) {
	ctx, cancel := r.ctx()
	defer cancel()

	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.LogWarn("", "cache", "redis_get", err.Error())
		}
		return nil, false
	}
	return json.RawMessage(raw), true
}

func (r *Redis) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		utils.LogWarn("", "cache", "redis_set", "marshal: "+err.Error())
		return
	}

	ctx, cancel := r.ctx()
	defer cancel()
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		utils.LogWarn("", "cache", "redis_set", err.Error())
	}
}

func (r *Redis) Invalidate(key string) {
	ctx, cancel := r.ctx()
	defer cancel()
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		utils.LogWarn("", "cache", "redis_del", err.Error())
	}
}

// InvalidatePattern scans the cache keyspace and deletes keys whose
// canonical (unprefixed) form matches the regex.
func (r *Redis) InvalidatePattern(pattern *regexp.Regexp) int {
	ctx, cancel := r.ctx()
	defer cancel()

	removed := 0
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		full := iter.Val()
		if !pattern.MatchString(full[len(redisKeyPrefix):]) {
			continue
		}
		if err := r.client.Del(ctx, full).Err(); err != nil {
			utils.LogWarn("", "cache", "redis_del", err.Error())
			continue
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		utils.LogWarn("", "cache", "redis_scan", err.Error())
	}
	return removed
}

// Memoize wraps an expensive computation with the cache: one
// underlying call per key per TTL. The bool reports a cache hit.
func Memoize[T any](s Store, key string, ttl time.Duration, compute func() (T, error)) (T, bool, error) {
	if v, ok := s.Get(key); ok {
		switch typed := v.(type) {
		case T:
			return typed, true, nil
		case json.RawMessage:
			var out T
			if err := json.Unmarshal(typed, &out); err == nil {
				return out, true, nil
			}
			// Corrupt payload; fall through to recompute.
			s.Invalidate(key)
		}
	}

	out, err := compute()
	if err != nil {
		var zero T
		return zero, false, err
	}
	s.Set(key, out, ttl)
	return out, false, nil
}

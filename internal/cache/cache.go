package cache

import (
	"context"
	"time"
)

// Cache stores JSON-serializable values by key.
type Cache interface {
	// Get decodes the value stored under key into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// Noop is a Cache that never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Ping(context.Context) error                            { return nil }
func (Noop) Close() error                                          { return nil }

// UntilNextUTCMidnight is the TTL for values that belong to the current day.
func UntilNextUTCMidnight(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return next.Sub(now)
}

// DayKey builds a cache key scoped to the current UTC day.
func DayKey(now time.Time, parts ...string) string {
	key := "daily:" + now.UTC().Format("2006-01-02")
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

package cryptoapi

import (
	"math/rand/v2"
	"time"
)

// DefaultMaxRetries is how many times a transient failure is retried.
const DefaultMaxRetries = 2

// Backoff returns a duration for attempt n (0-indexed) with jitter, doubling
// from base and capped at 30 times base.
func Backoff(attempt int, base time.Duration) time.Duration {
	d := time.Duration(1<<uint(attempt)) * base
	if limit := 30 * base; d > limit {
		d = limit
	}
	if d <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int64N(int64(d)/2 + 1))
	return d + jitter
}

package advisor

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const limiterCacheSize = 4096

// RateLimitError is returned when a user has used up their request
// allowance for the current window.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter.Round(time.Second))
}

type rateWindow struct {
	count int
	start time.Time
}

// Limiter caps requests per user inside a fixed window. Counters live in
// an expirable LRU so idle users age out on their own; the limit is
// best-effort, not a guarantee.
type Limiter struct {
	max    int
	window time.Duration
	cache  *expirable.LRU[string, rateWindow]
	now    func() time.Time
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:    max,
		window: window,
		cache:  expirable.NewLRU[string, rateWindow](limiterCacheSize, nil, window),
		now:    time.Now,
	}
}

// Allow records a request attempt for the user. It returns false, with
// the time left until the window resets, once the cap is reached.
func (l *Limiter) Allow(userID string) (bool, time.Duration) {
	now := l.now()

	w, ok := l.cache.Get(userID)
	if !ok || now.Sub(w.start) >= l.window {
		l.cache.Add(userID, rateWindow{count: 1, start: now})
		return true, 0
	}

	remaining := l.window - now.Sub(w.start)
	if w.count >= l.max {
		return false, remaining
	}

	l.cache.Add(userID, rateWindow{count: w.count + 1, start: w.start})
	return true, 0
}

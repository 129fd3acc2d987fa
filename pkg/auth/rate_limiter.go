package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"postboard/pkg/utils"
)

// SlidingWindowLimiter implements sliding window rate limiting
type SlidingWindowLimiter struct {
	mu         sync.Mutex
	windows    map[string]*window
	limit      int
	windowSize time.Duration
	clock      utils.Clock
}

type window struct {
	requests []time.Time
	mu       sync.Mutex
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter
func NewSlidingWindowLimiter(limit int, windowSize time.Duration, clock utils.Clock) *SlidingWindowLimiter {
	if clock == nil {
		clock = utils.NewRealClock()
	}
	return &SlidingWindowLimiter{
		windows:    make(map[string]*window),
		limit:      limit,
		windowSize: windowSize,
		clock:      clock,
	}
}

// Allow checks if a request is allowed
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	l.mu.Lock()
	w, exists := l.windows[key]
	if !exists {
		w = &window{}
		l.windows[key] = w
	}
	l.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := l.clock.NowUTC()
	windowStart := now.Add(-l.windowSize)

	// Drop requests that fell out of the window
	kept := w.requests[:0]
	for _, reqTime := range w.requests {
		if reqTime.After(windowStart) {
			kept = append(kept, reqTime)
		}
	}
	w.requests = kept

	if len(w.requests) >= l.limit {
		return false, nil
	}

	w.requests = append(w.requests, now)
	return true, nil
}

// Prune removes windows with no requests inside the current window
func (l *SlidingWindowLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := l.clock.NowUTC().Add(-l.windowSize)
	removed := 0
	for key, w := range l.windows {
		w.mu.Lock()
		idle := len(w.requests) == 0 || !w.requests[len(w.requests)-1].After(windowStart)
		w.mu.Unlock()
		if idle {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Limit returns the number of requests allowed per window
func (l *SlidingWindowLimiter) Limit() int {
	return l.limit
}

// Window returns the window size
func (l *SlidingWindowLimiter) Window() time.Duration {
	return l.windowSize
}

// IPRateLimiter wraps a rate limiter for IP-based limiting
type IPRateLimiter struct {
	*SlidingWindowLimiter
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(requestsPerMinute int, clock utils.Clock) *IPRateLimiter {
	return &IPRateLimiter{
		SlidingWindowLimiter: NewSlidingWindowLimiter(requestsPerMinute, time.Minute, clock),
	}
}

// Allow checks if a request from an IP is allowed
func (l *IPRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	return l.SlidingWindowLimiter.Allow(ctx, fmt.Sprintf("ip:%s", ip))
}

// StartJanitor prunes idle windows every interval until ctx is cancelled
func (l *SlidingWindowLimiter) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Prune()
			}
		}
	}()
}

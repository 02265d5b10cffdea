package promptblog

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLimiter is a sliding-window request limiter keyed by client IP.
type RequestLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	done   chan struct{}
	once   sync.Once
}

// NewRequestLimiter allows max requests per window per client. Stop it to
// end the background sweep.
func NewRequestLimiter(max int, window time.Duration) *RequestLimiter {
	l := &RequestLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		done:   make(chan struct{}),
	}
	go l.sweep()
	return l
}

func (l *RequestLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for ip := range l.hits {
				if kept := l.recent(ip, now); len(kept) == 0 {
					delete(l.hits, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// recent drops hits older than the window and returns the rest. l.mu must be held.
func (l *RequestLimiter) recent(ip string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	hits := l.hits[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.hits[ip] = kept
	return kept
}

// Allow records a request from ip and reports whether it is within the limit.
// Rejected requests are not recorded.
func (l *RequestLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.recent(ip, now)) >= l.max {
		return false
	}
	l.hits[ip] = append(l.hits[ip], now)
	return true
}

// Stop ends the background sweep. It is safe to call more than once.
func (l *RequestLimiter) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Middleware rejects requests over the limit with 429.
func (l *RequestLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.Allow(c.RealIP()) {
			c.Response().Header().Set("Retry-After", retryAfter(l.window))
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		}
		return next(c)
	}
}

func retryAfter(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

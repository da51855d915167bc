package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"docdash/internal/metrics"
)

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Forget drops the bucket of a session token. Wire it to the end of a session.
func (l *RateLimiter) Forget(token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, sessionKey(token))
}

// Len reports how many buckets are held.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func sessionKey(token string) string { return "session:" + token }

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

// Handler rejects requests over the limit with 429. The key is the session token
// when it resolves to a live session, otherwise the client IP.
func (l *RateLimiter) Handler(sessions SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "ip:" + c.IP()
		if tok := tokenFrom(c, cookieName); tok != "" && sessions != nil {
			if _, err := sessions.Get(tok); err == nil {
				key = sessionKey(tok)
			}
		}
		if !l.limiter(key).Allow() {
			metrics.RateLimitDecisions.WithLabelValues("rejected").Inc()
			c.Set(fiber.HeaderRetryAfter, "1")
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		metrics.RateLimitDecisions.WithLabelValues("allowed").Inc()
		return c.Next()
	}
}

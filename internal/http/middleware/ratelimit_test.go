package middleware

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdash/internal/dashboard"
)

func liveTokens(tokens ...string) SessionResolver {
	live := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		live[t] = true
	}
	return resolverFunc(func(tok string) (*dashboard.Dashboard, error) {
		if live[tok] {
			return &dashboard.Dashboard{}, nil
		}
		return nil, errors.New("unknown")
	})
}

func newLimitedApp(l *RateLimiter, sessions SessionResolver) *fiber.App {
	app := fiber.New()
	app.Use(l.Handler(sessions, "sid"))
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func get(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/test", nil)
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRateLimiter(t *testing.T) {
	app := newLimitedApp(NewRateLimiter(0.001, 2), liveTokens("tok-1"))

	for i := 0; i < 2; i++ {
		assert.Equal(t, fiber.StatusOK, get(t, app, ""))
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(fiber.HeaderRetryAfter))

	// a live session gets its own bucket
	assert.Equal(t, fiber.StatusOK, get(t, app, "tok-1"))
}

func TestRateLimiterForgedTokensShareIPBucket(t *testing.T) {
	l := NewRateLimiter(0.001, 1)
	app := newLimitedApp(l, liveTokens())

	rejected := 0
	for i := 0; i < 20; i++ {
		if get(t, app, fmt.Sprintf("forged-%d", i)) == fiber.StatusTooManyRequests {
			rejected++
		}
	}
	assert.Equal(t, 19, rejected)
	assert.Equal(t, 1, l.Len())
}

func TestRateLimiterForget(t *testing.T) {
	l := NewRateLimiter(0.001, 1)
	app := newLimitedApp(l, liveTokens("tok-1"))

	assert.Equal(t, fiber.StatusOK, get(t, app, "tok-1"))
	assert.Equal(t, fiber.StatusTooManyRequests, get(t, app, "tok-1"))
	assert.Equal(t, 1, l.Len())

	l.Forget("tok-1")
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, fiber.StatusOK, get(t, app, "tok-1"))
}

package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docdash/internal/dashboard"
)

const (
	// SessionHeader carries the session token for non-browser clients.
	SessionHeader = "X-Session-ID"

	sessionLocalKey   = "session_id"
	dashboardLocalKey = "dashboard"
)

// ErrUnauthenticated is returned when a request carries no live session.
var ErrUnauthenticated = fiber.NewError(fiber.StatusUnauthorized, "login required")

// SessionResolver looks up the dashboard of a session token.
type SessionResolver interface {
	Get(token string) (*dashboard.Dashboard, error)
}

// RequireSession resolves the session token from the X-Session-ID header or the
// session cookie and stores its dashboard in locals.
func RequireSession(sessions SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := tokenFrom(c, cookieName)
		if tok == "" {
			return ErrUnauthenticated
		}
		d, err := sessions.Get(tok)
		if err != nil {
			return ErrUnauthenticated
		}
		c.Locals(sessionLocalKey, tok)
		c.Locals(dashboardLocalKey, d)
		return c.Next()
	}
}

// DashboardFrom returns the dashboard stored by RequireSession.
func DashboardFrom(c *fiber.Ctx) (*dashboard.Dashboard, error) {
	d, ok := c.Locals(dashboardLocalKey).(*dashboard.Dashboard)
	if !ok || d == nil {
		return nil, errors.New("no dashboard in request context")
	}
	return d, nil
}

// SessionTokenFrom returns the token stored by RequireSession, falling back to
// the raw request token.
func SessionTokenFrom(c *fiber.Ctx, cookieName string) string {
	if s, ok := c.Locals(sessionLocalKey).(string); ok {
		return s
	}
	return tokenFrom(c, cookieName)
}

func tokenFrom(c *fiber.Ctx, cookieName string) string {
	if tok := c.Get(SessionHeader); tok != "" {
		return tok
	}
	if cookieName == "" {
		return ""
	}
	return c.Cookies(cookieName)
}

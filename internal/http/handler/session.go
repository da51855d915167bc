package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docdash/internal/dashboard"
	"docdash/internal/http/middleware"
)

// SessionManager mounts and resolves per-login dashboards.
type SessionManager interface {
	Login(ctx context.Context) (string, *dashboard.Dashboard, error)
	Get(token string) (*dashboard.Dashboard, error)
	Logout(token string) bool
	Len() int
}

type LoginResponse struct {
	SessionID string `json:"session_id" example:"7f1f6a52-8a8e-4c4f-9d0e-1f9f3c0b2a61"`
}

// Login godoc
// @Summary Log in
// @Description Mounts a fresh dashboard seeded with the mock documents. The token is returned in the body and as a cookie.
// @Tags session
// @Produce json
// @Success 201 {object} LoginResponse
// @Failure 500 {object} errorPayload
// @Router /api/session [post]
func Login(sessions SessionManager, cookieName string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, _, err := sessions.Login(c.UserContext())
		if err != nil {
			log.Error("login failed", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    tok,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.Status(fiber.StatusCreated).JSON(LoginResponse{SessionID: tok})
	}
}

// Logout godoc
// @Summary Log out
// @Description Discards the session and every change made in it. Logging out twice is not an error.
// @Tags session
// @Param X-Session-ID header string false "session token"
// @Success 204
// @Router /api/session [delete]
func Logout(sessions SessionManager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := middleware.SessionTokenFrom(c, cookieName); tok != "" {
			sessions.Logout(tok)
		}
		c.ClearCookie(cookieName)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

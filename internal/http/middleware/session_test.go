package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdash/internal/dashboard"
	"docdash/internal/repository/memory"
	"docdash/internal/seed"
	"docdash/internal/service"
)

type resolverFunc func(string) (*dashboard.Dashboard, error)

func (f resolverFunc) Get(token string) (*dashboard.Dashboard, error) { return f(token) }

func TestRequireSession(t *testing.T) {
	store := service.NewDocumentStore(memory.NewDocumentMemory(), seed.Static())
	require.NoError(t, store.Initialize(context.Background()))
	dash := dashboard.New(store)

	resolver := resolverFunc(func(tok string) (*dashboard.Dashboard, error) {
		if tok == "good" {
			return dash, nil
		}
		return nil, errors.New("unknown")
	})

	app := fiber.New()
	app.Use(RequireSession(resolver, "sid"))
	app.Get("/test", func(c *fiber.Ctx) error {
		d, err := DashboardFrom(c)
		if err != nil {
			return err
		}
		if d != dash {
			return fiber.ErrTeapot
		}
		return c.SendString(SessionTokenFrom(c, "sid"))
	})

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "header", header: "good", want: fiber.StatusOK},
		{name: "cookie", cookie: "good", want: fiber.StatusOK},
		{name: "missing", want: fiber.StatusUnauthorized},
		{name: "unknown", header: "bad", want: fiber.StatusUnauthorized},
		{name: "header wins over cookie", header: "bad", cookie: "good", want: fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set("Cookie", "sid="+tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestDashboardFromWithoutSession(t *testing.T) {
	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		_, err := DashboardFrom(c)
		assert.Error(t, err)
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
}

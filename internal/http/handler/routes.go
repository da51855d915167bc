package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"docdash/docs"
	"docdash/internal/http/middleware"
)

// Dependencies are the collaborators of the HTTP routes.
type Dependencies struct {
	Sessions   SessionManager
	CookieName string
	// Gatherer backs /metrics; nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Every /api route except session creation and logout requires a live session.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(deps.Sessions))
	if deps.Gatherer != nil {
		app.Get("/metrics", Metrics(deps.Gatherer))
	}
	app.Get("/swagger/*", Swagger())

	api := app.Group("/api")
	api.Post("/session", Login(deps.Sessions, deps.CookieName, log))
	api.Delete("/session", Logout(deps.Sessions, deps.CookieName))

	authed := api.Group("", middleware.RequireSession(deps.Sessions, deps.CookieName))
	authed.Get("/dashboard", GetDashboard())
	authed.Get("/documents", ListDocuments())
	authed.Get("/documents/:id", GetDocument())
	authed.Get("/stats", GetStats())

	authed.Get("/filters", GetFilters())
	authed.Put("/filters/:field", SetFilter())
	authed.Delete("/filters", ResetFilters())

	authed.Get("/modal", GetModal())
	authed.Delete("/modal", CloseModal())
	authed.Post("/modal/add", OpenAddForm())
	authed.Post("/modal/edit/:id", OpenEditForm())
	authed.Post("/modal/delete/:id", OpenDeleteDialog())
	authed.Patch("/modal/fields", UpdateFormFields())
	authed.Post("/modal/submit", SubmitModal())
}

// Swagger serves the UI with the host and scheme of the incoming request.
func Swagger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

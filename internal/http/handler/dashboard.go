package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/dashboard"
	"docdash/internal/http/middleware"
	"docdash/internal/model"
)

type DocumentList struct {
	Items []model.Document `json:"items"`
	Count int              `json:"count" example:"4"`
}

type FilterValue struct {
	Value string `json:"value" example:"Draft"`
}

// withDashboard resolves the session dashboard before calling fn.
func withDashboard(fn func(c *fiber.Ctx, d *dashboard.Dashboard) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := middleware.DashboardFrom(c)
		if err != nil {
			return middleware.ErrUnauthenticated
		}
		return fn(c, d)
	}
}

// GetDashboard godoc
// @Summary Full dashboard view
// @Description Banner, summary counts over all documents, active filters, filtered rows and the open modal.
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} dashboard.View
// @Failure 401 {object} errorPayload
// @Router /api/dashboard [get]
func GetDashboard() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		v, err := d.View(c.UserContext())
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(v)
	})
}

// ListDocuments godoc
// @Summary Filtered documents
// @Tags documents
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} DocumentList
// @Failure 401 {object} errorPayload
// @Router /api/documents [get]
func ListDocuments() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		docs, err := d.Store().Filtered(c.UserContext())
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(DocumentList{Items: docs, Count: len(docs)})
	})
}

// GetDocument godoc
// @Summary One document
// @Tags documents
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Param id path string true "document id"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /api/documents/{id} [get]
func GetDocument() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		doc, err := d.Document(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(doc)
	})
}

// GetStats godoc
// @Summary Summary counts
// @Description Counts cover the whole collection regardless of filters.
// @Tags documents
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} query.Stats
// @Router /api/stats [get]
func GetStats() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		st, err := d.Store().Stats(c.UserContext())
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(st)
	})
}

// GetFilters godoc
// @Summary Active filter criteria
// @Tags filters
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} model.FilterCriteria
// @Router /api/filters [get]
func GetFilters() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		return c.JSON(d.Store().Criteria())
	})
}

// SetFilter godoc
// @Summary Set one filter field
// @Description Enumeration fields accept a member name or "all"; search accepts any text.
// @Tags filters
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Param field path string true "division, category, status or search"
// @Param body body FilterValue true "new value"
// @Success 200 {object} model.FilterCriteria
// @Failure 400 {object} errorPayload
// @Router /api/filters/{field} [put]
func SetFilter() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		var body FilterValue
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		crit, err := d.SetFilter(c.UserContext(), c.Params("field"), body.Value)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(crit)
	})
}

// ResetFilters godoc
// @Summary Reset filters
// @Tags filters
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} model.FilterCriteria
// @Router /api/filters [delete]
func ResetFilters() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		return c.JSON(d.ResetFilters(c.UserContext()))
	})
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/dashboard"
	"docdash/internal/form"
)

// GetModal godoc
// @Summary Open modal
// @Tags modal
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} dashboard.ModalView
// @Router /api/modal [get]
func GetModal() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		return c.JSON(d.Modal())
	})
}

// OpenAddForm godoc
// @Summary Open the add form
// @Description Replaces any open modal with an empty form (Human Resources, Policy, Draft).
// @Tags modal
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} dashboard.ModalView
// @Router /api/modal/add [post]
func OpenAddForm() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		return c.JSON(d.OpenAdd())
	})
}

// OpenEditForm godoc
// @Summary Open the edit form
// @Tags modal
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Param id path string true "document id"
// @Success 200 {object} dashboard.ModalView
// @Failure 404 {object} errorPayload
// @Router /api/modal/edit/{id} [post]
func OpenEditForm() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		m, err := d.OpenEdit(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(m)
	})
}

// OpenDeleteDialog godoc
// @Summary Open the delete confirmation
// @Description Opening the dialog never removes anything.
// @Tags modal
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Param id path string true "document id"
// @Success 200 {object} dashboard.ModalView
// @Failure 404 {object} errorPayload
// @Router /api/modal/delete/{id} [post]
func OpenDeleteDialog() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		m, err := d.OpenDelete(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(m)
	})
}

// UpdateFormFields godoc
// @Summary Edit pending form fields
// @Description Applies the given fields in form order. The form stays in its current step.
// @Tags modal
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Param body body map[string]string true "field values"
// @Success 200 {object} dashboard.ModalView
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/modal/fields [patch]
func UpdateFormFields() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		var body map[string]string
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		values := make(map[form.Field]string, len(body))
		for k, v := range body {
			f, err := form.ParseField(k)
			if err != nil {
				return writeDomainError(c, err)
			}
			values[f] = v
		}

		m, err := d.SetFields(values)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(m)
	})
}

// SubmitModal godoc
// @Summary Submit the open modal
// @Description The first submit of a form only enters review (202); the second commits (200). A delete dialog commits on the first submit.
// @Tags modal
// @Produce json
// @Param X-Session-ID header string true "session token"
// @Success 200 {object} dashboard.SubmitResult
// @Success 202 {object} dashboard.SubmitResult
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/modal/submit [post]
func SubmitModal() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		res, err := d.Submit(c.UserContext())
		if err != nil {
			return writeDomainError(c, err)
		}
		if !res.Committed {
			return c.Status(fiber.StatusAccepted).JSON(res)
		}
		return c.JSON(res)
	})
}

// CloseModal godoc
// @Summary Cancel the open modal
// @Description Pending edits are discarded. Closing with nothing open is not an error.
// @Tags modal
// @Param X-Session-ID header string true "session token"
// @Success 204
// @Router /api/modal [delete]
func CloseModal() fiber.Handler {
	return withDashboard(func(c *fiber.Ctx, d *dashboard.Dashboard) error {
		d.Close()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

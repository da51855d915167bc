package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docdash/internal/dashboard"
	"docdash/internal/form"
	"docdash/internal/http/middleware"
	"docdash/internal/model"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_FILTER", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeDomainError maps errors from the dashboard packages onto the envelope.
func writeDomainError(c *fiber.Ctx, err error) error {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", verr.Error())
	case errors.Is(err, model.ErrInvalidFilterValue):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid filter value")
	case errors.Is(err, model.ErrUnknownField):
		return writeError(c, fiber.StatusBadRequest, "UNKNOWN_FIELD", "unknown field")
	case errors.Is(err, model.ErrInvalidEnum):
		return writeError(c, fiber.StatusBadRequest, "INVALID_VALUE", err.Error())
	case errors.Is(err, dashboard.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, dashboard.ErrNoModal):
		return writeError(c, fiber.StatusConflict, "NO_MODAL", "no modal is open")
	case errors.Is(err, dashboard.ErrNotForm):
		return writeError(c, fiber.StatusConflict, "NOT_A_FORM", "open modal has no editable fields")
	case errors.Is(err, form.ErrClosed):
		return writeError(c, fiber.StatusConflict, "MODAL_CLOSED", "modal is already closed")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHENTICATED", "login required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many requests")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}

package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

var statusByKind = map[string]int{
	"duplicate_email":        fiber.StatusConflict,
	"account_not_found":      fiber.StatusNotFound,
	"invalid_credential":     fiber.StatusUnauthorized,
	"no_active_session":      fiber.StatusUnauthorized,
	"invalid_identity":       fiber.StatusUnauthorized,
	"not_found":              fiber.StatusNotFound,
	"forbidden":              fiber.StatusForbidden,
	"invalid_input":          fiber.StatusBadRequest,
	"content_rejected":       fiber.StatusUnprocessableEntity,
	"malformed_stored_value": fiber.StatusInternalServerError,
	"persistence_failure":    fiber.StatusInternalServerError,
}

// respondError writes err with a stable code. Server-side failures are
// logged and their details withheld.
func respondError(c *fiber.Ctx, err error) error {
	kind := services.Kind(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err,
		)
		message = "Internal server error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    kind,
		Message: message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Code: "invalid_input", Message: message,
	})
}

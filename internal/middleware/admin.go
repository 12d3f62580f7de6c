package middleware

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired runs after SessionRequired and admits accounts whose admin
// flag was set at their last login.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := CurrentAccount(c)
		if account == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: "unauthorized", Message: "Unauthorized",
			})
		}
		if !account.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Code: "forbidden", Message: "Admin access required",
			})
		}
		return c.Next()
	}
}

package middleware

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const accountLocal = "account"

// SessionRequired runs after JWTProtected. The token's subject must be the
// account the session pointer names; logging out or signing in as someone
// else invalidates older tokens.
func SessionRequired(directory *services.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub := tokenSubject(c)
		if sub == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: "unauthorized", Message: "Invalid claims",
			})
		}

		account, err := directory.CurrentAccount()
		if err != nil || account.ID != sub {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Code:    services.Kind(services.ErrNoActiveSession),
				Message: services.ErrNoActiveSession.Error(),
			})
		}

		c.Locals(accountLocal, account)
		return c.Next()
	}
}

// CurrentAccount returns the account SessionRequired attached to c.
func CurrentAccount(c *fiber.Ctx) *models.AccountRecord {
	account, _ := c.Locals(accountLocal).(*models.AccountRecord)
	return account
}

func tokenSubject(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

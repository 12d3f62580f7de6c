package handlers

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	directory *services.DirectoryService
	tokens    *services.TokenService
	verifier  *services.IdentityVerifier
}

func NewAuthHandler(directory *services.DirectoryService, tokens *services.TokenService, verifier *services.IdentityVerifier) *AuthHandler {
	return &AuthHandler{directory: directory, tokens: tokens, verifier: verifier}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	account, err := h.directory.Register(req.Email, req.Password, models.ProviderPassword)
	if err != nil {
		return respondError(c, err)
	}
	return h.issue(c, fiber.StatusCreated, account)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	account, err := h.directory.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return h.issue(c, fiber.StatusOK, account)
}

// FederatedSignIn verifies an Apple or Google identity token and signs in
// the account for its email.
func (h *AuthHandler) FederatedSignIn(c *fiber.Ctx) error {
	provider := strings.ToLower(c.Params("provider"))
	var req dto.FederatedSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.IdentityToken == "" {
		return badRequest(c, "Identity token is required")
	}

	claims, err := h.verifier.Verify(provider, req.IdentityToken)
	if err != nil {
		return respondError(c, err)
	}

	account, err := h.directory.FederatedSignIn(claims.Email, provider)
	if err != nil {
		return respondError(c, err)
	}
	return h.issue(c, fiber.StatusOK, account)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.directory.Logout(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentAccount(c).Public())
}

func (h *AuthHandler) issue(c *fiber.Ctx, status int, account *models.AccountRecord) error {
	token, _, err := h.tokens.Issue(account.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(status).JSON(dto.AuthResponse{
		SessionToken: token,
		Account:      account.Public(),
	})
}

package handlers

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PreferenceHandler struct {
	preferences *services.PreferenceService
}

func NewPreferenceHandler(preferences *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

func (h *PreferenceHandler) GetMuscle(c *fiber.Ctx) error {
	return c.JSON(h.preferences.MuscleContext(middleware.CurrentAccount(c).ID))
}

func (h *PreferenceHandler) SetMuscle(c *fiber.Ctx) error {
	var req models.MuscleContext
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	saved, err := h.preferences.SetMuscleContext(middleware.CurrentAccount(c).ID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

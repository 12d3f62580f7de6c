package handlers

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/nutrition"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	directory *services.DirectoryService
}

func NewProfileHandler(directory *services.DirectoryService) *ProfileHandler {
	return &ProfileHandler{directory: directory}
}

// Get returns the profile, or null before onboarding.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.directory.ReadProfile()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req models.FitnessProfile
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.directory.SaveProfile(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfilePatch
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.directory.UpdateProfile(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

// PreviewTargets runs the calculator without saving anything.
func (h *ProfileHandler) PreviewTargets(c *fiber.Ctx) error {
	var req dto.TargetsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Age <= 0 || req.Height <= 0 || req.Weight <= 0 {
		return badRequest(c, "age, height and weight must be positive")
	}

	return c.JSON(nutrition.ComputeTargets(nutrition.Input{
		Age:           req.Age,
		Gender:        req.Gender,
		HeightCm:      req.Height,
		WeightKg:      req.Weight,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	}))
}

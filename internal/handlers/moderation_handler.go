package handlers

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ModerationHandler serves the admin console.
type ModerationHandler struct {
	directory  *services.DirectoryService
	community  *services.CommunityService
	moderation *services.ModerationService
	platform   *services.PlatformService
}

func NewModerationHandler(
	directory *services.DirectoryService,
	community *services.CommunityService,
	moderation *services.ModerationService,
	platform *services.PlatformService,
) *ModerationHandler {
	return &ModerationHandler{
		directory:  directory,
		community:  community,
		moderation: moderation,
		platform:   platform,
	}
}

func (h *ModerationHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.platform.Snapshot())
}

func (h *ModerationHandler) ListAccounts(c *fiber.Ctx) error {
	accounts := h.directory.ListAccounts()
	return c.JSON(fiber.Map{"accounts": accounts, "total": len(accounts)})
}

func (h *ModerationHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.directory.DeleteAccount(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

func (h *ModerationHandler) BanUser(c *fiber.Ctx) error {
	result, err := h.moderation.BanUser(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func (h *ModerationHandler) CreateContest(c *fiber.Ctx) error {
	var req dto.CreateContestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	contest, err := h.community.CreateContest(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contest)
}

func (h *ModerationHandler) UpdateContest(c *fiber.Ctx) error {
	var req dto.CreateContestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	contest, err := h.community.UpdateContest(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contest)
}

func (h *ModerationHandler) DeleteContest(c *fiber.Ctx) error {
	contests, err := h.community.DeleteContest(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"contests": contests})
}

func (h *ModerationHandler) ReviewSubmission(c *fiber.Ctx) error {
	var req dto.ReviewSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sub, err := h.community.ReviewSubmission(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sub)
}

func (h *ModerationHandler) DeleteSubmission(c *fiber.Ctx) error {
	subs, err := h.community.DeleteSubmission(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"submissions": subs})
}

package handlers

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommunityHandler struct {
	community *services.CommunityService
}

func NewCommunityHandler(community *services.CommunityService) *CommunityHandler {
	return &CommunityHandler{community: community}
}

func (h *CommunityHandler) ListContests(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"contests": h.community.ListContests()})
}

func (h *CommunityHandler) JoinContest(c *fiber.Ctx) error {
	contest, err := h.community.JoinContest(c.Params("id"), middleware.CurrentAccount(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contest)
}

func (h *CommunityHandler) ListSubmissions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"submissions": h.community.ListSubmissions(c.Query("status"))})
}

func (h *CommunityHandler) CreateSubmission(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sub, err := h.community.CreateSubmission(middleware.CurrentAccount(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"posts": h.community.ListPosts()})
}

func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.community.CreatePost(middleware.CurrentAccount(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *CommunityHandler) DeletePost(c *fiber.Ctx) error {
	posts, err := h.community.DeletePost(c.Params("id"), middleware.CurrentAccount(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *CommunityHandler) LikePost(c *fiber.Ctx) error {
	post, err := h.community.LikePost(c.Params("id"), middleware.CurrentAccount(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *CommunityHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.community.AddComment(c.Params("id"), middleware.CurrentAccount(c), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

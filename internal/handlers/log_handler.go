package handlers

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LogHandler struct {
	logs *services.DailyLogService
}

func NewLogHandler(logs *services.DailyLogService) *LogHandler {
	return &LogHandler{logs: logs}
}

func (h *LogHandler) dateParam(c *fiber.Ctx) string {
	date := c.Params("date")
	if date == "today" {
		return h.logs.Today()
	}
	return date
}

func (h *LogHandler) Recent(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	logs, err := h.logs.GetRecentLogs(middleware.CurrentAccount(c).ID, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RecentLogsResponse{Days: days, Logs: logs})
}

func (h *LogHandler) Get(c *fiber.Ctx) error {
	log, err := h.logs.GetLog(middleware.CurrentAccount(c).ID, h.dateParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(log)
}

func (h *LogHandler) AppendMeal(c *fiber.Ctx) error {
	var req dto.AppendMealRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	log, err := h.logs.AppendMeal(middleware.CurrentAccount(c).ID, services.NewMeal(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

func (h *LogHandler) SetWater(c *fiber.Ctx) error {
	var req dto.WaterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	log, err := h.logs.SetWaterIntake(middleware.CurrentAccount(c).ID, h.dateParam(c), req.Glasses)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(log)
}

func (h *LogHandler) SetWorkout(c *fiber.Ctx) error {
	var req dto.WorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	log, err := h.logs.SetWorkoutCompleted(middleware.CurrentAccount(c).ID, h.dateParam(c), req.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(log)
}

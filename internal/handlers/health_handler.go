package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/kvstore"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store   kvstore.Store
	backend string
}

func NewHealthHandler(store kvstore.Store, backend string) *HealthHandler {
	return &HealthHandler{store: store, backend: backend}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "ok"
	storeStatus := "ok"
	if err := h.store.Ping(); err != nil {
		status = "degraded"
		storeStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Store:     storeStatus,
		Backend:   h.backend,
	})
}

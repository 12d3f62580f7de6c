package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
)

type AppendMealRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	ImageURL    string                `json:"imageUrl"`
	Timestamp   *time.Time            `json:"timestamp"`
	Macros      models.MacroBreakdown `json:"macros"`
	Confirmed   bool                  `json:"confirmed"`
}

type WaterRequest struct {
	Glasses int `json:"glasses"`
}

type WorkoutRequest struct {
	Completed bool `json:"completed"`
}

type RecentLogsResponse struct {
	Days int               `json:"days"`
	Logs []models.DailyLog `json:"logs"`
}

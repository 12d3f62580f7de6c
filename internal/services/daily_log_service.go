package services

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/nutrition"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/google/uuid"
)

// MaxRecentDays bounds GetRecentLogs.
const MaxRecentDays = 366

type DailyLogService struct {
	logs  *repository.DailyLogStore
	clock Clock
}

func NewDailyLogService(repo *repository.Repository, clock Clock) *DailyLogService {
	return &DailyLogService{
		logs:  repository.NewDailyLogStore(repo),
		clock: clock,
	}
}

// Today is the date key of the current local day.
func (s *DailyLogService) Today() string {
	return s.clock.Today()
}

// GetLog returns the stored log for dateKey or a zeroed one, which is not
// persisted.
func (s *DailyLogService) GetLog(userID, dateKey string) (models.DailyLog, error) {
	if userID == "" {
		return models.DailyLog{}, ErrNoActiveSession
	}
	if _, err := nutrition.ParseDateKey(dateKey); err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return logOrZero(s.logs.All(userID), dateKey), nil
}

// GetRecentLogs returns exactly n logs for the n local days ending today,
// oldest first, with zeroed logs filling missing days.
func (s *DailyLogService) GetRecentLogs(userID string, n int) ([]models.DailyLog, error) {
	if userID == "" {
		return nil, ErrNoActiveSession
	}
	if n < 1 || n > MaxRecentDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, MaxRecentDays)
	}
	stored := s.logs.All(userID)
	keys := nutrition.RecentDateKeys(s.clock.Now(), s.clock.Location, n)
	out := make([]models.DailyLog, len(keys))
	for i, k := range keys {
		out[i] = logOrZero(stored, k)
	}
	return out, nil
}

// AppendMeal files meal under the local date of its own timestamp and
// refolds that day's totals.
func (s *DailyLogService) AppendMeal(userID string, meal models.MealEntry) (models.DailyLog, error) {
	if userID == "" {
		return models.DailyLog{}, ErrNoActiveSession
	}
	meal.Name = strings.TrimSpace(meal.Name)
	if meal.Name == "" {
		return models.DailyLog{}, fmt.Errorf("%w: meal name is required", ErrInvalidInput)
	}
	if err := validateMacros(meal.Macros); err != nil {
		return models.DailyLog{}, err
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	if meal.Timestamp.IsZero() {
		meal.Timestamp = s.clock.Now()
	}
	dateKey := s.clock.DateKey(meal.Timestamp)

	var out models.DailyLog
	_, err := s.logs.Mutate(userID, func(logs models.DailyLogs) error {
		l := logOrZero(logs, dateKey)
		l.Meals = append(l.Meals, meal)
		l.Recompute()
		logs[dateKey] = l
		out = l
		return nil
	})
	return out, err
}

// NewMeal builds a MealEntry from a request.
func NewMeal(req dto.AppendMealRequest) models.MealEntry {
	meal := models.MealEntry{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Macros:      req.Macros,
		Confirmed:   req.Confirmed,
	}
	if req.Timestamp != nil {
		meal.Timestamp = *req.Timestamp
	}
	return meal
}

// SetWaterIntake records glasses of water for dateKey.
func (s *DailyLogService) SetWaterIntake(userID, dateKey string, glasses int) (models.DailyLog, error) {
	if glasses < 0 {
		return models.DailyLog{}, fmt.Errorf("%w: water intake cannot be negative", ErrInvalidInput)
	}
	return s.modify(userID, dateKey, func(l *models.DailyLog) { l.WaterIntake = glasses })
}

// SetWorkoutCompleted marks whether the day's workout happened.
func (s *DailyLogService) SetWorkoutCompleted(userID, dateKey string, completed bool) (models.DailyLog, error) {
	return s.modify(userID, dateKey, func(l *models.DailyLog) { l.WorkoutCompleted = completed })
}

func (s *DailyLogService) modify(userID, dateKey string, fn func(*models.DailyLog)) (models.DailyLog, error) {
	if userID == "" {
		return models.DailyLog{}, ErrNoActiveSession
	}
	if _, err := nutrition.ParseDateKey(dateKey); err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	var out models.DailyLog
	_, err := s.logs.Mutate(userID, func(logs models.DailyLogs) error {
		l := logOrZero(logs, dateKey)
		fn(&l)
		l.Recompute()
		logs[dateKey] = l
		out = l
		return nil
	})
	return out, err
}

func logOrZero(logs models.DailyLogs, dateKey string) models.DailyLog {
	l, ok := logs[dateKey]
	if !ok {
		return models.NewDailyLog(dateKey)
	}
	l.Date = dateKey
	if l.Meals == nil {
		l.Meals = []models.MealEntry{}
	}
	return l
}

func validateMacros(m models.MacroBreakdown) error {
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fats < 0 || m.Fiber < 0 {
		return fmt.Errorf("%w: macros cannot be negative", ErrInvalidInput)
	}
	return nil
}

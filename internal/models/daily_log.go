package models

import "time"

type MacroBreakdown struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber,omitempty"`
}

// Add returns the component-wise sum of m and o.
func (m MacroBreakdown) Add(o MacroBreakdown) MacroBreakdown {
	return MacroBreakdown{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fats:     m.Fats + o.Fats,
		Fiber:    m.Fiber + o.Fiber,
	}
}

type MealEntry struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Macros      MacroBreakdown `json:"macros"`
	Confirmed   bool           `json:"confirmed"`
}

// DailyLog holds one calendar day of a user's intake. TotalMacros is a fold
// over Meals and is only ever set through Recompute.
type DailyLog struct {
	Date             string         `json:"date"`
	Meals            []MealEntry    `json:"meals"`
	WaterIntake      int            `json:"waterIntake"`
	WorkoutCompleted bool           `json:"workoutCompleted"`
	TotalMacros      MacroBreakdown `json:"totalMacros"`
}

// NewDailyLog returns the zeroed log for date.
func NewDailyLog(date string) DailyLog {
	return DailyLog{Date: date, Meals: []MealEntry{}}
}

// Recompute refolds TotalMacros from Meals.
func (l *DailyLog) Recompute() {
	var total MacroBreakdown
	for _, m := range l.Meals {
		total = total.Add(m.Macros)
	}
	l.TotalMacros = total
}

// DailyLogs is the stored shape of one user's log key: date -> log.
type DailyLogs map[string]DailyLog

package models

import "time"

// FitnessProfile is attached to an account once onboarding completes.
// Targets is always derived from the biometric fields.
type FitnessProfile struct {
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Gender          string          `json:"gender"`
	Height          float64         `json:"height"`
	CurrentWeight   float64         `json:"currentWeight"`
	GoalWeight      float64         `json:"goalWeight"`
	DietPreference  string          `json:"dietPreference"`
	ActivityLevel   string          `json:"activityLevel"`
	Goal            string          `json:"goal"`
	ExperienceLevel string          `json:"experienceLevel"`
	Bio             string          `json:"bio,omitempty"`
	Avatar          string          `json:"avatar,omitempty"`
	Settings        ProfileSettings `json:"settings"`
	CreatedAt       time.Time       `json:"createdAt"`
	Targets         Targets         `json:"targets"`
	IsAdmin         bool            `json:"isAdmin,omitempty"`
}

type ProfileSettings struct {
	Notifications bool `json:"notifications"`
	PublicProfile bool `json:"publicProfile"`
	DataSharing   bool `json:"dataSharing"`
}

// Targets are the daily goals computed from a profile.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Steps    int `json:"steps"`
}

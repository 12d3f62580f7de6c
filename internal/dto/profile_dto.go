package dto

import "github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"

// ProfilePatch carries the editable profile fields; nil means unchanged.
type ProfilePatch struct {
	Name            *string                 `json:"name"`
	Age             *int                    `json:"age"`
	Gender          *string                 `json:"gender"`
	Height          *float64                `json:"height"`
	CurrentWeight   *float64                `json:"currentWeight"`
	GoalWeight      *float64                `json:"goalWeight"`
	DietPreference  *string                 `json:"dietPreference"`
	ActivityLevel   *string                 `json:"activityLevel"`
	Goal            *string                 `json:"goal"`
	ExperienceLevel *string                 `json:"experienceLevel"`
	Bio             *string                 `json:"bio"`
	Avatar          *string                 `json:"avatar"`
	Settings        *models.ProfileSettings `json:"settings"`
}

// Apply copies the set fields onto p.
func (pp ProfilePatch) Apply(p *models.FitnessProfile) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Age != nil {
		p.Age = *pp.Age
	}
	if pp.Gender != nil {
		p.Gender = *pp.Gender
	}
	if pp.Height != nil {
		p.Height = *pp.Height
	}
	if pp.CurrentWeight != nil {
		p.CurrentWeight = *pp.CurrentWeight
	}
	if pp.GoalWeight != nil {
		p.GoalWeight = *pp.GoalWeight
	}
	if pp.DietPreference != nil {
		p.DietPreference = *pp.DietPreference
	}
	if pp.ActivityLevel != nil {
		p.ActivityLevel = *pp.ActivityLevel
	}
	if pp.Goal != nil {
		p.Goal = *pp.Goal
	}
	if pp.ExperienceLevel != nil {
		p.ExperienceLevel = *pp.ExperienceLevel
	}
	if pp.Bio != nil {
		p.Bio = *pp.Bio
	}
	if pp.Avatar != nil {
		p.Avatar = *pp.Avatar
	}
	if pp.Settings != nil {
		p.Settings = *pp.Settings
	}
}

type TargetsRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

// Package nutrition derives daily calorie, macro and step targets from a
// biometric profile.
package nutrition

import (
	"math"
	"strings"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
)

const (
	ActivitySedentary        = "Sedentary"
	ActivityLightlyActive    = "Lightly Active"
	ActivityModeratelyActive = "Moderately Active"
	ActivityVeryActive       = "Very Active"

	GoalFatLoss       = "Fat Loss"
	GoalMuscleGain    = "Muscle Gain"
	GoalRecomposition = "Recomposition"
	GoalMaintenance   = "Maintenance"

	MinCalories = 1200
)

var activityMultipliers = map[string]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
}

var goalAdjustments = map[string]float64{
	GoalFatLoss:       -500,
	GoalMuscleGain:    300,
	GoalRecomposition: -100,
}

var baseSteps = map[string]int{
	ActivitySedentary:        6000,
	ActivityLightlyActive:    6000,
	ActivityModeratelyActive: 8000,
	ActivityVeryActive:       10000,
}

// Input is the subset of a profile the calculator reads.
type Input struct {
	Age           int
	Gender        string
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	Goal          string
}

// InputFromProfile extracts the calculator inputs from p.
func InputFromProfile(p *models.FitnessProfile) Input {
	return Input{
		Age:           p.Age,
		Gender:        p.Gender,
		HeightCm:      p.Height,
		WeightKg:      p.CurrentWeight,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(in Input) float64 {
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if isMale(in.Gender) {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity multiplier. Unknown levels count as
// sedentary.
func TDEE(in Input) float64 {
	m, ok := activityMultipliers[canonical(in.ActivityLevel, activityMultipliers)]
	if !ok {
		m = activityMultipliers[ActivitySedentary]
	}
	return BMR(in) * m
}

// ComputeTargets is pure: identical inputs give identical targets.
func ComputeTargets(in Input) models.Targets {
	goal := canonical(in.Goal, goalAdjustments)
	calories := int(math.Round(TDEE(in) + goalAdjustments[goal]))
	if calories < MinCalories {
		calories = MinCalories
	}

	protein := int(math.Round(in.WeightKg * 2.0))
	fats := int(math.Round(in.WeightKg * 0.8))
	carbs := int(math.Round(float64(calories-protein*4-fats*9) / 4))
	if carbs < 0 {
		carbs = 0
	}

	steps, ok := baseSteps[canonical(in.ActivityLevel, baseSteps)]
	if !ok {
		steps = baseSteps[ActivitySedentary]
	}
	if goal == GoalFatLoss {
		steps += 2000
	}

	return models.Targets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		Steps:    steps,
	}
}

// ApplyTargets recomputes p.Targets from the profile's own fields.
func ApplyTargets(p *models.FitnessProfile) {
	p.Targets = ComputeTargets(InputFromProfile(p))
}

func isMale(gender string) bool {
	g := strings.ToLower(strings.TrimSpace(gender))
	return g == "male" || g == "m"
}

// canonical matches s case-insensitively against the keys of table.
func canonical[V any](s string, table map[string]V) string {
	s = strings.TrimSpace(s)
	if _, ok := table[s]; ok {
		return s
	}
	for k := range table {
		if strings.EqualFold(k, s) {
			return k
		}
	}
	return s
}

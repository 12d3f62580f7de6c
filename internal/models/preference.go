package models

// MuscleContext is the user's preferred training split and environment.
type MuscleContext struct {
	Split       string `json:"split"`
	Environment string `json:"environment"`
}

package services

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
)

// PreferenceService stores the per-user muscle training context.
type PreferenceService struct {
	store *repository.MuscleContextStore
}

func NewPreferenceService(repo *repository.Repository) *PreferenceService {
	return &PreferenceService{store: repository.NewMuscleContextStore(repo)}
}

// MuscleContext returns the saved context, or the zero value when none is
// stored.
func (s *PreferenceService) MuscleContext(userID string) models.MuscleContext {
	ctx, _ := s.store.Get(userID)
	return ctx
}

func (s *PreferenceService) SetMuscleContext(userID string, ctx models.MuscleContext) (*models.MuscleContext, error) {
	ctx.Split = strings.TrimSpace(ctx.Split)
	ctx.Environment = strings.TrimSpace(ctx.Environment)
	if ctx.Split == "" && ctx.Environment == "" {
		return nil, fmt.Errorf("%w: split or environment is required", ErrInvalidInput)
	}
	if err := s.store.Set(userID, ctx); err != nil {
		return nil, err
	}
	return &ctx, nil
}

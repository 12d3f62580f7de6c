package repository

import "github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"

// MuscleContextStore keeps each user's training context preference.
type MuscleContextStore struct {
	repo *Repository
}

func NewMuscleContextStore(repo *Repository) *MuscleContextStore {
	return &MuscleContextStore{repo: repo}
}

// Get reports ok=false when the user never saved a preference.
func (s *MuscleContextStore) Get(userID string) (models.MuscleContext, bool) {
	if _, ok := s.repo.Raw(MuscleContextKey(userID)); !ok {
		return models.MuscleContext{}, false
	}
	return load[models.MuscleContext](s.repo, MuscleContextKey(userID)), true
}

func (s *MuscleContextStore) Set(userID string, ctx models.MuscleContext) error {
	key := MuscleContextKey(userID)
	unlock := s.repo.Lock(key)
	defer unlock()
	return s.repo.save(key, ctx)
}

func (s *MuscleContextStore) Delete(userID string) error {
	key := MuscleContextKey(userID)
	unlock := s.repo.Lock(key)
	defer unlock()
	return s.repo.remove(key)
}

package repository

import "github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"

// DailyLogStore keeps one date -> log map per account.
type DailyLogStore struct {
	repo *Repository
}

func NewDailyLogStore(repo *Repository) *DailyLogStore {
	return &DailyLogStore{repo: repo}
}

// All returns every stored log for userID; never nil.
func (s *DailyLogStore) All(userID string) models.DailyLogs {
	logs := load[models.DailyLogs](s.repo, LogsKey(userID))
	if logs == nil {
		logs = models.DailyLogs{}
	}
	return logs
}

func (s *DailyLogStore) Mutate(userID string, fn func(models.DailyLogs) error) (models.DailyLogs, error) {
	return mutate(s.repo, LogsKey(userID), func(logs *models.DailyLogs) error {
		if *logs == nil {
			*logs = models.DailyLogs{}
		}
		return fn(*logs)
	})
}

// DeleteAll drops the user's log key.
func (s *DailyLogStore) DeleteAll(userID string) error {
	key := LogsKey(userID)
	unlock := s.repo.Lock(key)
	defer unlock()
	return s.repo.remove(key)
}

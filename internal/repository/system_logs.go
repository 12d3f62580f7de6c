package repository

import (
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
)

// MaxSystemLogs bounds the log ring.
const MaxSystemLogs = 500

// SystemLogStore keeps recent ERROR+ records under KeySystemLogs, oldest
// first.
type SystemLogStore struct {
	repo *Repository
}

func NewSystemLogStore(repo *Repository) *SystemLogStore {
	return &SystemLogStore{repo: repo}
}

func (s *SystemLogStore) List() []models.SystemLog {
	logs := load[[]models.SystemLog](s.repo, KeySystemLogs)
	if logs == nil {
		logs = []models.SystemLog{}
	}
	return logs
}

// Append adds batch and drops the oldest entries beyond MaxSystemLogs.
func (s *SystemLogStore) Append(batch []models.SystemLog) error {
	_, err := mutate(s.repo, KeySystemLogs, func(logs *[]models.SystemLog) error {
		*logs = append(*logs, batch...)
		if over := len(*logs) - MaxSystemLogs; over > 0 {
			*logs = (*logs)[over:]
		}
		return nil
	})
	return err
}

// PruneBefore drops entries older than cutoff and returns how many went.
func (s *SystemLogStore) PruneBefore(cutoff time.Time) (int, error) {
	removed := 0
	_, err := mutate(s.repo, KeySystemLogs, func(logs *[]models.SystemLog) error {
		kept := make([]models.SystemLog, 0, len(*logs))
		for _, l := range *logs {
			if l.Timestamp.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, l)
		}
		if removed == 0 {
			return errNoMatch
		}
		*logs = kept
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return 0, nil
	}
	return removed, err
}

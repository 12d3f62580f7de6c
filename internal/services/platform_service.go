package services

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/tidwall/gjson"
)

// RevenuePerAccount is the flat monthly figure behind the revenue estimate.
const RevenuePerAccount = 4.99

// recentErrorWindow bounds which system log entries count as recent.
const recentErrorWindow = 24 * time.Hour

// PlatformService builds the admin snapshot straight from stored text,
// counting with gjson paths instead of decoding every record.
type PlatformService struct {
	repo  *repository.Repository
	clock Clock
}

func NewPlatformService(repo *repository.Repository, clock Clock) *PlatformService {
	return &PlatformService{repo: repo, clock: clock}
}

// Snapshot reads each top-level key once. Two snapshots taken during a
// concurrent write may disagree.
func (s *PlatformService) Snapshot() dto.PlatformStats {
	now := s.clock.Now()
	today := s.clock.DateKey(now)

	dirRaw, _ := s.repo.Raw(repository.KeyDirectory)
	postsRaw, _ := s.repo.Raw(repository.KeyPosts)
	contestsRaw, _ := s.repo.Raw(repository.KeyContests)
	subsRaw, _ := s.repo.Raw(repository.KeySubmissions)
	logsRaw, _ := s.repo.Raw(repository.KeySystemLogs)

	stats := dto.PlatformStats{
		TotalPosts:         arrayLen(postsRaw),
		TotalContests:      arrayLen(contestsRaw),
		TotalSubmissions:   arrayLen(subsRaw),
		PendingSubmissions: countWhere(subsRaw, `#(status=="`+models.SubmissionPending+`")#`),
		GeneratedAt:        now.UTC().Format(time.RFC3339),
	}

	storage := len(dirRaw) + len(postsRaw) + len(contestsRaw) + len(subsRaw)
	if sess, ok := s.repo.Raw(repository.KeySession); ok {
		storage += len(sess)
	}

	dir := gjson.Parse(dirRaw)
	if dir.IsObject() {
		dir.ForEach(func(id, acc gjson.Result) bool {
			if !acc.IsObject() {
				return true
			}
			stats.TotalUsers++
			if last := acc.Get("lastLoginAt"); last.Exists() && s.clock.DateKey(last.Time()) == today {
				stats.ActiveToday++
			}
			for _, prefix := range repository.UserScopedPrefixes {
				if raw, ok := s.repo.Raw(prefix + id.String()); ok {
					storage += len(raw)
				}
			}
			return true
		})
	}

	cutoff := now.Add(-recentErrorWindow)
	gjson.Get(logsRaw, "#.timestamp").ForEach(func(_, ts gjson.Result) bool {
		if ts.Time().After(cutoff) {
			stats.RecentErrors++
		}
		return true
	})

	stats.RevenueEstimate = float64(stats.TotalUsers) * RevenuePerAccount
	stats.StorageBytesEstimate = storage
	return stats
}

func arrayLen(raw string) int {
	if !gjson.Valid(raw) {
		return 0
	}
	return int(gjson.Get(raw, "#").Int())
}

func countWhere(raw, path string) int {
	if !gjson.Valid(raw) {
		return 0
	}
	return len(gjson.Get(raw, path).Array())
}

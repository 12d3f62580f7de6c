package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/robfig/cron/v3"
)

// PruneSystemLogs drops ring entries older than retentionDays.
func PruneSystemLogs(store *repository.SystemLogStore, retentionDays int, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	removed, err := store.PruneBefore(cutoff)
	if err != nil {
		slog.Warn("log cleanup failed", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("log cleanup completed", "deleted", removed)
	}
}

// StartCleanup schedules PruneSystemLogs once a day. Stop the returned
// scheduler on shutdown.
func StartCleanup(store *repository.SystemLogStore, retentionDays int) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		PruneSystemLogs(store, retentionDays, time.Now())
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

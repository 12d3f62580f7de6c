package services

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// flakyStore is a MemoryStore whose reads can be made to fail.
type flakyStore struct {
	*kvstore.MemoryStore
	failReads atomic.Bool
}

func (f *flakyStore) Get(key string) (string, bool, error) {
	if f.failReads.Load() {
		return "", false, errors.New("connection reset by peer")
	}
	return f.MemoryStore.Get(key)
}

type testEnv struct {
	kv          *flakyStore
	repo        *repository.Repository
	cfg         *config.Config
	now         time.Time
	clock       Clock
	directory   *DirectoryService
	logs        *DailyLogService
	community   *CommunityService
	moderation  *ModerationService
	platform    *PlatformService
	preferences *PreferenceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{now: testNow}
	env.kv = &flakyStore{MemoryStore: kvstore.NewMemoryStore()}
	env.repo = repository.New(env.kv)
	env.clock = Clock{Now: func() time.Time { return env.now }, Location: time.UTC}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	env.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTSessionExpiry:  time.Hour,
		AdminEmail:        "Admin@Fit.io",
		AdminPasswordHash: string(adminHash),
	}

	env.community = NewCommunityService(env.repo, NewContentFilter(config.DefaultBannedWords), env.clock)
	env.directory = NewDirectoryService(env.repo, env.community, env.cfg, env.clock)
	env.directory.SetPasswordCost(bcrypt.MinCost)
	env.logs = NewDailyLogService(env.repo, env.clock)
	env.moderation = NewModerationService(env.community)
	env.platform = NewPlatformService(env.repo, env.clock)
	env.preferences = NewPreferenceService(env.repo)
	return env
}

package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_EmptyStore(t *testing.T) {
	env := newTestEnv(t)

	stats := env.platform.Snapshot()
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalPosts)
	assert.Zero(t, stats.RevenueEstimate)
	assert.Zero(t, stats.StorageBytesEstimate)
	assert.Equal(t, "2024-03-15T10:00:00Z", stats.GeneratedAt)
}

func TestSnapshot_Counts(t *testing.T) {
	env := newTestEnv(t)

	a, err := env.directory.Register("a@x.com", "pw1", "")
	require.NoError(t, err)
	env.now = env.now.Add(-48 * time.Hour)
	_, err = env.directory.Register("b@x.com", "pw1", "")
	require.NoError(t, err)
	env.now = testNow

	contest, err := env.community.CreateContest(dto.CreateContestRequest{Title: "Plank"})
	require.NoError(t, err)
	sub, err := env.community.CreateSubmission(a, dto.CreateSubmissionRequest{ContestID: contest.ID})
	require.NoError(t, err)
	_, err = env.community.CreateSubmission(a, dto.CreateSubmissionRequest{ContestID: contest.ID})
	require.NoError(t, err)
	_, err = env.community.ReviewSubmission(sub.ID, models.SubmissionRejected)
	require.NoError(t, err)
	_, err = env.community.CreatePost(a, dto.CreatePostRequest{Content: "hi"})
	require.NoError(t, err)

	stats := env.platform.Snapshot()
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveToday)
	assert.Equal(t, 1, stats.TotalContests)
	assert.Equal(t, 2, stats.TotalSubmissions)
	assert.Equal(t, 1, stats.PendingSubmissions)
	assert.Equal(t, 1, stats.TotalPosts)
	assert.InDelta(t, 2*RevenuePerAccount, stats.RevenueEstimate, 1e-9)
	assert.Positive(t, stats.StorageBytesEstimate)
}

func TestSnapshot_EstimatesAreMonotonic(t *testing.T) {
	env := newTestEnv(t)

	prev := env.platform.Snapshot()
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		acc, err := env.directory.Register(email, "pw1", "")
		require.NoError(t, err)
		_, err = env.logs.AppendMeal(acc.ID, models.MealEntry{Name: "oats", Macros: models.MacroBreakdown{Calories: float64(100 * (i + 1))}})
		require.NoError(t, err)

		next := env.platform.Snapshot()
		assert.GreaterOrEqual(t, next.RevenueEstimate, prev.RevenueEstimate)
		assert.Greater(t, next.StorageBytesEstimate, prev.StorageBytesEstimate)
		assert.GreaterOrEqual(t, next.RevenueEstimate, 0.0)
		prev = next
	}
}

func TestSnapshot_RecentErrors(t *testing.T) {
	env := newTestEnv(t)
	logs := repository.NewSystemLogStore(env.repo)

	require.NoError(t, logs.Append([]models.SystemLog{
		{ID: "old", Timestamp: testNow.Add(-72 * time.Hour), Level: "ERROR", Message: "old"},
		{ID: "new", Timestamp: testNow.Add(-time.Hour), Level: "ERROR", Message: "new"},
	}))

	assert.Equal(t, 1, env.platform.Snapshot().RecentErrors)
}

func TestSnapshot_MalformedKeysCountAsEmpty(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.kv.Set(repository.KeyPosts, "{not json"))
	require.NoError(t, env.kv.Set(repository.KeyDirectory, "[]"))

	stats := env.platform.Snapshot()
	assert.Zero(t, stats.TotalPosts)
	assert.Zero(t, stats.TotalUsers)
}

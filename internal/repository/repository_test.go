package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore rejects every write.
type failingStore struct {
	*kvstore.MemoryStore
}

func (failingStore) Set(string, string) error { return errors.New("quota exceeded") }
func (failingStore) Delete(string) error      { return errors.New("quota exceeded") }

// flakyStore fails reads while down is set.
type flakyStore struct {
	*kvstore.MemoryStore
	down bool
}

func (f *flakyStore) Get(key string) (string, bool, error) {
	if f.down {
		return "", false, errors.New("connection reset")
	}
	return f.MemoryStore.Get(key)
}

func newRepo(t *testing.T) (*Repository, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	return New(kv), kv
}

func TestCollection_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	posts := NewPosts(repo)

	assert.Empty(t, posts.List())

	_, err := posts.Create(models.CommunityPost{ID: "p1", Content: "first"})
	require.NoError(t, err)
	list, err := posts.Create(models.CommunityPost{ID: "p2", Content: "second"})
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[0].ID, "newest record is at the head")
	assert.Equal(t, list, posts.List())

	count := 0
	for _, p := range posts.List() {
		if p.ID == "p2" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	remaining, err := posts.Remove("p2")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "p1", remaining[0].ID)
	_, found := posts.Get("p2")
	assert.False(t, found)
}

func TestCollection_Update(t *testing.T) {
	repo, _ := newRepo(t)
	contests := NewContests(repo)
	_, err := contests.Create(models.Contest{ID: "c1", Title: "Old"})
	require.NoError(t, err)

	ok, err := contests.Update(models.Contest{ID: "c1", Title: "New"})
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := contests.Get("c1")
	assert.Equal(t, "New", got.Title)

	ok, err = contests.Update(models.Contest{ID: "missing"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, contests.List(), 1)
}

func TestCollection_Modify(t *testing.T) {
	repo, _ := newRepo(t)
	subs := NewSubmissions(repo)
	_, err := subs.Create(models.ContestSubmission{ID: "s1", Status: models.SubmissionPending})
	require.NoError(t, err)

	out, found, err := subs.Modify("s1", func(s *models.ContestSubmission) error {
		s.Status = models.SubmissionApproved
		return nil
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.SubmissionApproved, out.Status)

	_, found, err = subs.Modify("nope", func(*models.ContestSubmission) error { return nil })
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCollection_RemoveWhere(t *testing.T) {
	repo, _ := newRepo(t)
	posts := NewPosts(repo)
	for _, p := range []models.CommunityPost{
		{ID: "1", UserID: "u1"}, {ID: "2", UserID: "u2"}, {ID: "3", UserID: "u1"},
	} {
		_, err := posts.Create(p)
		require.NoError(t, err)
	}

	left, err := posts.RemoveWhere(func(p models.CommunityPost) bool { return p.UserID == "u1" })
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "2", left[0].ID)
}

func TestMalformedValueFallsBackToDefault(t *testing.T) {
	repo, kv := newRepo(t)
	require.NoError(t, kv.Set(KeyDirectory, `{"broken":`))
	require.NoError(t, kv.Set(KeyPosts, `"not an array"`))

	assert.Empty(t, NewDirectoryStore(repo).All())
	assert.Empty(t, NewPosts(repo).List())

	// the next write replaces the corrupt value
	_, err := NewPosts(repo).Create(models.CommunityPost{ID: "p1"})
	require.NoError(t, err)
	assert.Len(t, NewPosts(repo).List(), 1)
}

func TestWriteFailureIsPersistenceFailure(t *testing.T) {
	repo := New(failingStore{kvstore.NewMemoryStore()})

	_, err := NewContests(repo).Create(models.Contest{ID: "c1"})
	assert.ErrorIs(t, err, ErrPersistenceFailure)

	assert.ErrorIs(t, NewSessionStore(repo).Set("u1"), ErrPersistenceFailure)
	assert.ErrorIs(t, NewSessionStore(repo).Clear(), ErrPersistenceFailure)
}

func TestReadFailureAbortsWrite(t *testing.T) {
	kv := &flakyStore{MemoryStore: kvstore.NewMemoryStore()}
	repo := New(kv)
	dir := NewDirectoryStore(repo)
	posts := NewPosts(repo)

	_, err := dir.Mutate(func(d models.Directory) error {
		d["a"] = &models.AccountRecord{ID: "a", Email: "a@x.com"}
		d["b"] = &models.AccountRecord{ID: "b", Email: "b@x.com"}
		return nil
	})
	require.NoError(t, err)
	_, err = posts.Create(models.CommunityPost{ID: "p1"})
	require.NoError(t, err)
	before, _, _ := kv.MemoryStore.Get(KeyDirectory)

	kv.down = true
	called := false
	_, err = dir.Mutate(func(d models.Directory) error {
		called = true
		d["c"] = &models.AccountRecord{ID: "c", Email: "c@x.com"}
		return nil
	})
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.False(t, called)

	_, err = posts.Create(models.CommunityPost{ID: "p2"})
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	ok, err := posts.Update(models.CommunityPost{ID: "p1", Content: "edited"})
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.False(t, ok)

	// read-only paths still degrade to the default
	assert.Empty(t, dir.All())

	kv.down = false
	after, _, _ := kv.MemoryStore.Get(KeyDirectory)
	assert.Equal(t, before, after)
	assert.Len(t, dir.All(), 2)
	require.Len(t, posts.List(), 1)
	assert.Empty(t, posts.List()[0].Content)
}

func TestSessionStore(t *testing.T) {
	repo, _ := newRepo(t)
	sessions := NewSessionStore(repo)

	_, ok := sessions.Current()
	assert.False(t, ok)

	require.NoError(t, sessions.Set("u1"))
	id, ok := sessions.Current()
	assert.True(t, ok)
	assert.Equal(t, "u1", id)

	require.NoError(t, sessions.ClearIf("u2"))
	_, ok = sessions.Current()
	assert.True(t, ok, "session of another account is untouched")

	require.NoError(t, sessions.ClearIf("u1"))
	_, ok = sessions.Current()
	assert.False(t, ok)

	require.NoError(t, sessions.Clear())
	_, ok = sessions.Current()
	assert.False(t, ok)
}

func TestDailyLogStore(t *testing.T) {
	repo, kv := newRepo(t)
	logs := NewDailyLogStore(repo)

	assert.Empty(t, logs.All("u1"))

	_, err := logs.Mutate("u1", func(l models.DailyLogs) error {
		l["2026-01-02"] = models.NewDailyLog("2026-01-02")
		return nil
	})
	require.NoError(t, err)

	_, ok, _ := kv.Get(LogsKey("u1"))
	assert.True(t, ok)
	assert.Contains(t, logs.All("u1"), "2026-01-02")
	assert.Empty(t, logs.All("u2"))

	require.NoError(t, logs.DeleteAll("u1"))
	assert.Empty(t, logs.All("u1"))
}

func TestMuscleContextStore(t *testing.T) {
	repo, _ := newRepo(t)
	prefs := NewMuscleContextStore(repo)

	_, ok := prefs.Get("u1")
	assert.False(t, ok)

	require.NoError(t, prefs.Set("u1", models.MuscleContext{Split: "push-pull-legs", Environment: "gym"}))
	got, ok := prefs.Get("u1")
	assert.True(t, ok)
	assert.Equal(t, "gym", got.Environment)

	require.NoError(t, prefs.Delete("u1"))
	_, ok = prefs.Get("u1")
	assert.False(t, ok)
}

func TestSystemLogStore(t *testing.T) {
	repo, _ := newRepo(t)
	logs := NewSystemLogStore(repo)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	batch := make([]models.SystemLog, 0, MaxSystemLogs+10)
	for i := 0; i < MaxSystemLogs+10; i++ {
		batch = append(batch, models.SystemLog{Timestamp: now.Add(time.Duration(i) * time.Minute)})
	}
	require.NoError(t, logs.Append(batch))
	all := logs.List()
	require.Len(t, all, MaxSystemLogs)
	assert.True(t, now.Add(10*time.Minute).Equal(all[0].Timestamp), "oldest entries were dropped")

	removed, err := logs.PruneBefore(now.Add(20 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 10, removed)
	assert.Len(t, logs.List(), MaxSystemLogs-10)

	removed, err = logs.PruneBefore(now)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestLock_SerializesWriters(t *testing.T) {
	repo, _ := newRepo(t)
	contests := NewContests(repo)

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(i int) {
			_, _ = contests.Create(models.Contest{ID: string(rune('a' + i))})
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}
	assert.Len(t, contests.List(), 20)
}

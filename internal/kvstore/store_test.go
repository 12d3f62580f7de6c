package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	t.Run("absent key is not an error", func(t *testing.T) {
		v, ok, err := s.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set("fitai_users", `{"a":1}`))
		v, ok, err := s.Get("fitai_users")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"a":1}`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, s.Set("fitai_current_user", "u1"))
		require.NoError(t, s.Set("fitai_current_user", "u2"))
		v, _, err := s.Get("fitai_current_user")
		require.NoError(t, err)
		assert.Equal(t, "u2", v)
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		require.NoError(t, s.Set("k", "v"))
		require.NoError(t, s.Delete("k"))
		require.NoError(t, s.Delete("k"))
		_, ok, err := s.Get("k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping())
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("fitai_contests", "[]"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get("fitai_contests")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(client)
	defer s.Close()

	exerciseStore(t, s)

	t.Run("values are namespaced", func(t *testing.T) {
		require.NoError(t, s.Set("fitai_posts", "[]"))
		got, err := mr.Get("fitcore:fitai_posts")
		require.NoError(t, err)
		assert.Equal(t, "[]", got)
	})
}

func TestInstrumented(t *testing.T) {
	s := NewInstrumented(NewMemoryStore(), "fitai_logs_")
	exerciseStore(t, s)

	assert.Equal(t, "fitai_logs", s.family("fitai_logs_u1"))
	assert.Equal(t, "fitai_users", s.family("fitai_users"))
}

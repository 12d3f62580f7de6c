package database

import (
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	cases := []struct {
		name string
		cfg  *config.Config
	}{
		{"memory", &config.Config{StoreBackend: BackendMemory}},
		{"sqlite", &config.Config{StoreBackend: BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "fit.db")}},
		{"redis", &config.Config{StoreBackend: BackendRedis, RedisAddr: mr.Addr()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(tc.cfg)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Ping())
			require.NoError(t, store.Set("fitai_current_user", "acc_1"))
			v, ok, err := store.Get("fitai_current_user")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "acc_1", v)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(&config.Config{StoreBackend: "etcd"})
	assert.Error(t, err)

	_, err = Open(&config.Config{StoreBackend: BackendRedis, RedisAddr: "127.0.0.1:1"})
	assert.Error(t, err)
}

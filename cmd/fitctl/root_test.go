package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func seed(t *testing.T, path string, emails ...string) []string {
	t.Helper()
	store, err := kvstore.OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	repo := repository.New(store)
	cfg := &config.Config{}
	clock := services.SystemClock(nil)
	dir := services.NewDirectoryService(repo, services.NewCommunityService(repo, services.NewContentFilter(cfg.BannedWords), clock), cfg, clock)
	dir.SetPasswordCost(bcrypt.MinCost)

	ids := make([]string, 0, len(emails))
	for _, e := range emails {
		acc, err := dir.Register(e, "pw1", "")
		require.NoError(t, err)
		ids = append(ids, acc.ID)
	}
	return ids
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "fitctl")
}

func TestTargetsCommand(t *testing.T) {
	out, err := run(t, "targets", "--age", "30", "--gender", "Male", "--height", "180", "--weight", "80",
		"--activity", "Moderately Active", "--goal", "Maintenance")
	require.NoError(t, err)
	assert.Contains(t, out, "Calories: 2759")
	assert.Contains(t, out, "Protein: 160g")
	assert.Contains(t, out, "Steps: 8000")

	_, err = run(t, "targets", "--age", "0")
	assert.Error(t, err)
}

func TestStatsAndAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.db")
	ids := seed(t, path, "a@x.com", "b@x.com")

	out, err := run(t, "--backend", "sqlite", "--sqlite-path", path, "stats")
	require.NoError(t, err)
	assert.Equal(t, int64(2), gjson.Get(out, "totalUsers").Int())

	out, err = run(t, "--backend", "sqlite", "--sqlite-path", path, "accounts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "b@x.com")

	out, err = run(t, "--backend", "sqlite", "--sqlite-path", path, "accounts", "delete", ids[0])
	require.NoError(t, err)
	assert.Contains(t, out, ids[0])

	out, err = run(t, "--backend", "sqlite", "--sqlite-path", path, "accounts", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "a@x.com")

	_, err = run(t, "--backend", "sqlite", "--sqlite-path", path, "accounts", "delete", "missing")
	assert.Error(t, err)
}

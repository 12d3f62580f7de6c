package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("JWT_SESSION_EXPIRY", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_RETENTION_DAYS", "")
	t.Setenv("CONTENT_BANNED_WORDS", "")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, 720*time.Hour, cfg.JWTSessionExpiry)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultBannedWords, cfg.BannedWords)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_SESSION_EXPIRY", "2h")
	t.Setenv("ADMIN_EMAIL", "root@fit.io")
	t.Setenv("CONTENT_BANNED_WORDS", " spam , , dm for cycle")

	cfg := Load()
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2*time.Hour, cfg.JWTSessionExpiry)
	assert.Equal(t, "root@fit.io", cfg.AdminEmail)
	assert.Equal(t, []string{"spam", "dm for cycle"}, cfg.BannedWords)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "three")
	t.Setenv("JWT_SESSION_EXPIRY", "forever")

	cfg := Load()
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 720*time.Hour, cfg.JWTSessionExpiry)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.Local, (&Config{}).Location())
	assert.Equal(t, time.Local, (&Config{Timezone: "Mars/Olympus"}).Location())
	assert.Equal(t, "Asia/Tokyo", (&Config{Timezone: "Asia/Tokyo"}).Location().String())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "fit", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=fit port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

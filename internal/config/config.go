package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBannedWords seeds the community filter when CONTENT_BANNED_WORDS
// is unset. Slurs and abuse, plus the usual marketplace spam of fitness
// feeds.
var DefaultBannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "bullshit",
	"asshole", "bastard", "bitch", "cunt",
	"nigger", "nigga", "chink", "spic", "kike", "faggot", "fag",
	"retard", "retarded", "tranny",
	"porn", "nude", "nudes", "onlyfans",
	"fatass", "fatso", "landwhale",
	"steroids for sale", "sarms for sale", "dm for cycle",
	"scam", "phishing", "crypto giveaway",
}

type Config struct {
	// Backing store
	StoreBackend string // sqlite, postgres, redis, memory
	SQLitePath   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Session tokens
	JWTSecret        string
	JWTSessionExpiry time.Duration

	// Admin gate
	AdminEmail        string
	AdminPasswordHash string

	// Federated sign-in audiences
	AppleClientID  string
	GoogleClientID string

	// Community content filter
	BannedWords []string

	// Date keys are derived in this zone
	Timezone string

	// Logging
	LogLevel         string
	LogRetentionDays int

	// Server
	Port        string
	CORSOrigins string
	Environment string
	SentryDSN   string
}

// Load reads a .env file when one exists, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		StoreBackend: getEnv("STORE_BACKEND", "sqlite"),
		SQLitePath:   getEnv("SQLITE_PATH", "fitcore.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "fitcore"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTSessionExpiry: parseDuration(getEnv("JWT_SESSION_EXPIRY", "720h")),

		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		AppleClientID:  getEnv("APPLE_CLIENT_ID", ""),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		BannedWords: getEnvList("CONTENT_BANNED_WORDS", DefaultBannedWords),

		Timezone: getEnv("APP_TIMEZONE", ""),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogRetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		Environment: getEnv("APP_ENV", "development"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// Location resolves Timezone, falling back to the host's local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown APP_TIMEZONE, using local time", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}

package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Open connects the configured backing store and wraps it with metrics.
func Open(cfg *config.Config) (kvstore.Store, error) {
	var (
		store kvstore.Store
		err   error
	)
	switch cfg.StoreBackend {
	case BackendSQLite, "":
		store, err = kvstore.OpenSQLite(cfg.SQLitePath)
	case BackendPostgres:
		store, err = openPostgres(cfg)
	case BackendRedis:
		store, err = openRedis(cfg)
	case BackendMemory:
		store = kvstore.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("backing store connected", "backend", cfg.StoreBackend)
	return kvstore.NewInstrumented(store, repository.UserScopedPrefixes...), nil
}

func openPostgres(cfg *config.Config) (*kvstore.PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	store := kvstore.NewPostgresStore(db)
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return store, nil
}

func openRedis(cfg *config.Config) (*kvstore.RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return kvstore.NewRedisStore(client), nil
}

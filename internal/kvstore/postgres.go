package kvstore

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// KVEntry is the row shape behind PostgresStore.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// PostgresStore keeps top-level keys as rows of kv_entries through GORM.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates kv_entries if it does not exist.
func (p *PostgresStore) Migrate() error {
	return p.db.AutoMigrate(&KVEntry{})
}

func (p *PostgresStore) Get(key string) (string, bool, error) {
	var rows []KVEntry
	if err := p.db.Raw(`SELECT key, value, updated_at FROM kv_entries WHERE key = ?`, key).Scan(&rows).Error; err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (p *PostgresStore) Set(key, value string) error {
	err := p.db.Exec(`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) Delete(key string) error {
	if err := p.db.Exec(`DELETE FROM kv_entries WHERE key = ?`, key).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (p *PostgresStore) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Package repository maps each top-level key of the backing store to a
// typed store. Every mutation is a whole-value read-modify-write under a
// per-key lock.
package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/codec"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/kvstore"
)

const (
	KeyDirectory   = "fitai_users"
	KeySession     = "fitai_current_user"
	KeyContests    = "fitai_contests"
	KeyPosts       = "fitai_posts"
	KeySubmissions = "fitai_submissions"
	KeySystemLogs  = "fitai_system_logs"

	PrefixLogs          = "fitai_logs_"
	PrefixMuscleContext = "fitai_muscle_context_"
)

// UserScopedPrefixes lists the key families that carry an account id suffix.
var UserScopedPrefixes = []string{PrefixLogs, PrefixMuscleContext}

func LogsKey(userID string) string          { return PrefixLogs + userID }
func MuscleContextKey(userID string) string { return PrefixMuscleContext + userID }

// ErrPersistenceFailure wraps any failed write to the backing store.
var ErrPersistenceFailure = errors.New("persistence failure")

// Repository is the shared handle every typed store is built on.
type Repository struct {
	kv    kvstore.Store
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(kv kvstore.Store) *Repository {
	return &Repository{
		kv:    kv,
		locks: make(map[string]*sync.Mutex),
	}
}

// Store exposes the underlying backing store.
func (r *Repository) Store() kvstore.Store {
	return r.kv
}

// Lock acquires the mutex guarding key and returns its release func.
func (r *Repository) Lock(key string) func() {
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Raw returns the stored text for key. Read errors are logged and reported
// as absent.
func (r *Repository) Raw(key string) (string, bool) {
	v, ok, err := r.kv.Get(key)
	if err != nil {
		slog.Warn("store read failed, treating key as absent", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// load decodes the value under key for read-only callers. Absent,
// unreadable or malformed values yield the zero T; the latter two are logged.
func load[T any](r *Repository, key string) T {
	v, err := read[T](r, key)
	if err != nil {
		slog.Warn("store read failed, substituting default", "key", key, "error", err)
	}
	return v
}

// read decodes the value under key. A failed store read is returned as an
// error; absent and malformed values yield the zero T.
func read[T any](r *Repository, key string) (T, error) {
	var zero T
	raw, ok, err := r.kv.Get(key)
	if err != nil {
		return zero, fmt.Errorf("%w: read %s: %v", ErrPersistenceFailure, key, err)
	}
	if !ok {
		return zero, nil
	}
	v, err := codec.Decode[T](raw)
	if err != nil {
		slog.Warn("stored value is malformed, substituting default", "key", key, "error", err)
		return zero, nil
	}
	return v, nil
}

func (r *Repository) save(key string, v any) error {
	raw, err := codec.Encode(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistenceFailure, key, err)
	}
	if err := r.kv.Set(key, raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistenceFailure, key, err)
	}
	return nil
}

func (r *Repository) setRaw(key, value string) error {
	if err := r.kv.Set(key, value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistenceFailure, key, err)
	}
	return nil
}

func (r *Repository) remove(key string) error {
	if err := r.kv.Delete(key); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistenceFailure, key, err)
	}
	return nil
}

// mutate runs fn over the decoded value of key under its lock and persists
// the result. A failed read or fn returning an error aborts without writing.
func mutate[T any](r *Repository, key string, fn func(*T) error) (T, error) {
	unlock := r.Lock(key)
	defer unlock()

	v, err := read[T](r, key)
	if err != nil {
		return v, err
	}
	if err := fn(&v); err != nil {
		return v, err
	}
	if err := r.save(key, v); err != nil {
		return v, err
	}
	return v, nil
}

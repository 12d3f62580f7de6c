package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	flushSize     = 50
	flushInterval = 5 * time.Second
)

// StoreHandler is an slog.Handler that batches ERROR+ logs into the
// system log ring of the backing store.
type StoreHandler struct {
	store  *repository.SystemLogStore
	mu     sync.Mutex
	buffer []models.SystemLog
	attrs  []slog.Attr
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	parent *StoreHandler
}

func NewStoreHandler(store *repository.SystemLogStore) *StoreHandler {
	h := &StoreHandler{
		store:  store,
		buffer: make([]models.SystemLog, 0, flushSize),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *StoreHandler) root() *StoreHandler {
	if h.parent != nil {
		return h.parent
	}
	return h
}

func (h *StoreHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.Flush()
		case <-h.done:
			h.Flush()
			return
		}
	}
}

// Flush writes any buffered entries.
func (h *StoreHandler) Flush() {
	r := h.root()
	r.mu.Lock()
	if len(r.buffer) == 0 {
		r.mu.Unlock()
		return
	}
	batch := r.buffer
	r.buffer = make([]models.SystemLog, 0, flushSize)
	r.mu.Unlock()

	// Logging here at ERROR would feed the handler its own failure.
	if err := r.store.Append(batch); err != nil {
		slog.Warn("failed to flush system logs to store", "error", err, "count", len(batch))
	}
}

// Stop flushes what is buffered and ends the background loop.
func (h *StoreHandler) Stop() {
	r := h.root()
	r.once.Do(func() {
		r.ticker.Stop()
		close(r.done)
	})
}

// Enabled only handles ERROR and above.
func (h *StoreHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *StoreHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.NewString(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "trace_id", "request_id":
			entry.TraceID = a.Value.String()
		case "user_id":
			entry.UserID = a.Value.String()
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "key":
			entry.Key = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	r := h.root()
	r.mu.Lock()
	r.buffer = append(r.buffer, entry)
	needFlush := len(r.buffer) >= flushSize
	r.mu.Unlock()

	if needFlush {
		go r.Flush()
	}
	return nil
}

func (h *StoreHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &StoreHandler{attrs: merged, parent: h.root()}
}

func (h *StoreHandler) WithGroup(name string) slog.Handler {
	return h
}

package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	pgBatchSize     = 50
	pgFlushInterval = 5 * time.Second
)

// PGHandler is an slog.Handler that batches ERROR+ records into the
// system_logs table. Well-known keys become columns, everything else lands
// in the extra JSON column.
type PGHandler struct {
	sink  *pgSink
	attrs []slog.Attr
}

type pgSink struct {
	db      *gorm.DB
	mu      sync.Mutex
	buffer  []models.SystemLog
	stopped bool
	ticker  *time.Ticker
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewPGHandler(db *gorm.DB) *PGHandler {
	s := &pgSink{
		db:     db,
		buffer: make([]models.SystemLog, 0, pgBatchSize),
		ticker: time.NewTicker(pgFlushInterval),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	return &PGHandler{sink: s}
}

func (s *pgSink) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ticker.C:
			s.flush()
		case <-s.done:
			s.flush()
			return
		}
	}
}

func (s *pgSink) flush() {
	s.mu.Lock()
	if len(s.buffer) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.buffer
	s.buffer = make([]models.SystemLog, 0, pgBatchSize)
	s.mu.Unlock()

	if err := s.db.CreateInBatches(batch, pgBatchSize).Error; err != nil {
		// Logged at warn so the failure is not fed back into this handler.
		slog.Warn("failed to flush system logs", "error", err, "count", len(batch))
	}
}

// add buffers entry and starts a flush once the batch is full. Records that
// arrive after Stop are dropped.
func (s *pgSink) add(entry models.SystemLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.buffer = append(s.buffer, entry)
	if len(s.buffer) >= pgBatchSize {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.flush()
		}()
	}
}

// Flush writes buffered records now.
func (h *PGHandler) Flush() {
	h.sink.flush()
}

// Stop flushes what is buffered, waits for in-flight writes and ends the
// background loop. Calling it again is a no-op.
func (h *PGHandler) Stop() {
	s := h.sink
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.ticker.Stop()
	close(s.done)
	s.wg.Wait()
}

func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]any)
	apply := func(a slog.Attr) bool {
		liftAttr(&entry, extra, a)
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

	h.sink.add(entry)
	return nil
}

func liftAttr(entry *models.SystemLog, extra map[string]any, a slog.Attr) {
	switch a.Key {
	case "request_id":
		entry.RequestID = a.Value.String()
	case "user_id":
		s := a.Value.String()
		entry.UserID = &s
	case "game_id":
		entry.GameID = a.Value.String()
	case "level":
		entry.GameLevel = a.Value.String()
	case "action":
		entry.Action = a.Value.String()
	case "error":
		entry.Error = a.Value.String()
	case "latency_ms":
		switch a.Value.Kind() {
		case slog.KindFloat64:
			entry.LatencyMs = int(math.Round(a.Value.Float64()))
		case slog.KindInt64:
			entry.LatencyMs = int(a.Value.Int64())
		case slog.KindDuration:
			entry.LatencyMs = int(a.Value.Duration().Milliseconds())
		}
	default:
		extra[a.Key] = a.Value.Any()
	}
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PGHandler{sink: h.sink, attrs: merged}
}

// WithGroup is a no-op; groups are flattened into the same columns.
func (h *PGHandler) WithGroup(string) slog.Handler {
	return h
}

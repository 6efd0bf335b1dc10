// Package audit records advisory metadata for compliance review. Only
// metadata is stored: message content and advice text never leave the
// request (chat-history persistence belongs to an external collaborator).
// Recording is best-effort and never affects the advisory response.
package audit

import (
	"context"
	"database/sql"
	"time"

	"fin-advisory/internal/common/logger"
)

// Entry is one advisory audit record.
type Entry struct {
	RequestID   string
	Emotion     string
	EntityCount int
	Fallback    bool
	Outcome     string // greeting, thanks, generated, fallback
	Duration    time.Duration
}

// Recorder is the capability the pipeline consumes.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

const insertEntry = `
	INSERT INTO advisory_audit (request_id, emotion, entity_count, fallback, outcome, duration_ms, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Store persists entries to PostgreSQL.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db: db,
		logger: log.With(map[string]interface{}{
			"component": "audit-store",
		}),
	}
}

// Record inserts one entry. Failures are logged and swallowed.
func (s *Store) Record(ctx context.Context, e Entry) {
	_, err := s.db.ExecContext(ctx, insertEntry,
		e.RequestID,
		e.Emotion,
		e.EntityCount,
		e.Fallback,
		e.Outcome,
		e.Duration.Milliseconds(),
		time.Now().UTC(),
	)
	if err != nil {
		s.logger.Error("audit insert failed", map[string]interface{}{
			"requestId": e.RequestID,
			"error":     err.Error(),
		})
	}
}

// NopRecorder discards entries; used when auditing is disabled.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) {}

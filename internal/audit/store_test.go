package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fin-advisory/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, logger.NewTestLogger(t)), mock
}

// ==========================
// Core Functionality Tests
// ==========================

func TestStore_Record(t *testing.T) {
	store, mock := createTestStore(t)

	mock.ExpectExec("INSERT INTO advisory_audit").
		WithArgs("req-1", "worried", 2, true, "fallback", int64(42), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store.Record(context.Background(), Entry{
		RequestID:   "req-1",
		Emotion:     "worried",
		EntityCount: 2,
		Fallback:    true,
		Outcome:     "fallback",
		Duration:    42 * time.Millisecond,
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_RecordSwallowsInsertFailure(t *testing.T) {
	store, mock := createTestStore(t)

	mock.ExpectExec("INSERT INTO advisory_audit").
		WillReturnError(errors.New("connection reset"))

	// Must not panic or propagate; auditing never affects the response path.
	store.Record(context.Background(), Entry{RequestID: "req-2", Outcome: "generated"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopRecorder_DiscardsEntries(t *testing.T) {
	assert.NotPanics(t, func() {
		NopRecorder{}.Record(context.Background(), Entry{RequestID: "req-3"})
	})
}

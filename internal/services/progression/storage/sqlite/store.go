package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/caseprogression/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage/sqlite/migrations"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store is a SQLite-backed event journal.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the event journal at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadEvents returns the stream history ordered by seq and the stream version.
func (s *Store) LoadEvents(ctx context.Context, aggregateType, aggregateID string) ([]event.Event, uint64, error) {
	if s == nil || s.sqlDB == nil {
		return nil, 0, fmt.Errorf("storage is not configured")
	}
	aggregateType, aggregateID = strings.TrimSpace(aggregateType), strings.TrimSpace(aggregateID)
	if aggregateType == "" || aggregateID == "" {
		return nil, 0, storage.ErrStreamRequired
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT seq, event_id, event_type, timestamp, correlation_id, causation_id, payload_json
FROM events
WHERE aggregate_type = ? AND aggregate_id = ?
ORDER BY seq`, aggregateType, aggregateID)
	if err != nil {
		return nil, 0, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var (
		history []event.Event
		version uint64
	)
	for rows.Next() {
		var (
			seq       int64
			eventType string
			millis    int64
		)
		evt := event.Event{AggregateType: aggregateType, AggregateID: aggregateID}
		if err := rows.Scan(&seq, &evt.ID, &eventType, &millis, &evt.CorrelationID, &evt.CausationID, &evt.PayloadJSON); err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		evt.Seq = uint64(seq)
		evt.Type = event.Type(eventType)
		evt.Timestamp = fromMillis(millis)
		history = append(history, evt)
		version = evt.Seq
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read events: %w", err)
	}
	return history, version, nil
}

// AppendEvents appends events in one transaction when the stream is still at
// expectedVersion.
func (s *Store) AppendEvents(ctx context.Context, aggregateType, aggregateID string, expectedVersion uint64, events []event.Event) ([]event.Event, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	aggregateType, aggregateID = strings.TrimSpace(aggregateType), strings.TrimSpace(aggregateID)
	if aggregateType == "" || aggregateID == "" {
		return nil, storage.ErrStreamRequired
	}
	if len(events) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var current int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(seq), 0) FROM events WHERE aggregate_type = ? AND aggregate_id = ?",
		aggregateType, aggregateID,
	).Scan(&current); err != nil {
		return nil, conflictOr(fmt.Errorf("read stream version: %w", err))
	}
	if uint64(current) != expectedVersion {
		return nil, fmt.Errorf("%w: %s/%s at %d, expected %d", storage.ErrVersionConflict, aggregateType, aggregateID, current, expectedVersion)
	}

	stored := make([]event.Event, len(events))
	for i, evt := range events {
		evt.AggregateType = aggregateType
		evt.AggregateID = aggregateID
		evt.Seq = expectedVersion + uint64(i) + 1
		if evt.Timestamp.IsZero() {
			evt.Timestamp = time.Now().UTC()
		}
		evt.Timestamp = evt.Timestamp.UTC().Truncate(time.Millisecond)
		if len(evt.PayloadJSON) == 0 {
			evt.PayloadJSON = []byte("{}")
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO events (aggregate_type, aggregate_id, seq, event_id, event_type, timestamp, correlation_id, causation_id, payload_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			evt.AggregateType,
			evt.AggregateID,
			int64(evt.Seq),
			evt.ID,
			string(evt.Type),
			toMillis(evt.Timestamp),
			evt.CorrelationID,
			evt.CausationID,
			evt.PayloadJSON,
		); err != nil {
			return nil, conflictOr(fmt.Errorf("append event %d: %w", i, err))
		}
		stored[i] = evt
	}

	if err := tx.Commit(); err != nil {
		return nil, conflictOr(fmt.Errorf("commit: %w", err))
	}
	return stored, nil
}

// conflictOr reports a lost append race as a version conflict so the caller
// retries from replay.
func conflictOr(err error) error {
	if isPrimaryKeyError(err) || isSQLiteBusyError(err) {
		return fmt.Errorf("%w: %w", storage.ErrVersionConflict, err)
	}
	return err
}

func isPrimaryKeyError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
		return true
	}
	return code == sqlite3.SQLITE_CONSTRAINT && !strings.Contains(strings.ToLower(err.Error()), "event_id")
}

func isSQLiteBusyError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

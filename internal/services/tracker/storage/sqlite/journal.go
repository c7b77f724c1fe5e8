// Package sqlite provides a SQLite-backed action journal.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/bloom/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/bloom/internal/services/tracker/storage"
	"github.com/louisbranch/bloom/internal/services/tracker/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// maxPrealloc caps the slice capacity reserved for a List page.
const maxPrealloc = 256

// Journal persists accepted actions in a SQLite file.
type Journal struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a journal file and applies migrations.
func Open(ctx context.Context, path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Journal{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the SQLite connection.
func (j *Journal) Close() error {
	if j == nil || j.sqlDB == nil {
		return nil
	}
	return j.sqlDB.Close()
}

// Append inserts entry and returns it with the assigned sequence number.
func (j *Journal) Append(ctx context.Context, entry storage.Entry) (storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return storage.Entry{}, err
	}
	if j == nil || j.sqlDB == nil {
		return storage.Entry{}, storage.ErrNotConfigured
	}
	entry, err := storage.Normalize(entry, j.now)
	if err != nil {
		return storage.Entry{}, err
	}

	result, err := j.sqlDB.ExecContext(ctx, `
INSERT INTO action_journal (
	action_type,
	slice,
	payload,
	user_id,
	recorded_at
) VALUES (?, ?, ?, ?, ?)
`,
		entry.Type,
		entry.Slice,
		entry.Payload,
		entry.UserID,
		entry.RecordedAt.UnixMilli(),
	)
	if err != nil {
		return storage.Entry{}, fmt.Errorf("append entry: %w", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return storage.Entry{}, fmt.Errorf("read entry seq: %w", err)
	}
	entry.Seq = uint64(seq)
	entry.RecordedAt = time.UnixMilli(entry.RecordedAt.UnixMilli()).UTC()
	return entry, nil
}

// List returns entries after afterSeq, oldest first.
func (j *Journal) List(ctx context.Context, afterSeq uint64, limit int) ([]storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if j == nil || j.sqlDB == nil {
		return nil, storage.ErrNotConfigured
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := j.sqlDB.QueryContext(ctx, `
SELECT
	seq,
	action_type,
	slice,
	payload,
	user_id,
	recorded_at
FROM action_journal
WHERE seq > ?
ORDER BY seq
LIMIT ?
`, int64(afterSeq), limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]storage.Entry, 0, min(limit, maxPrealloc))
	for rows.Next() {
		var (
			entry      storage.Entry
			seq        int64
			recordedAt int64
		)
		if err := rows.Scan(&seq, &entry.Type, &entry.Slice, &entry.Payload, &entry.UserID, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.Seq = uint64(seq)
		entry.RecordedAt = time.UnixMilli(recordedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

var _ storage.Journal = (*Journal)(nil)

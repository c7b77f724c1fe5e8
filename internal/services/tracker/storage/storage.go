// Package storage defines the append-only action journal. The journal is an
// audit trail of accepted dispatches; nothing replays it into the store.
package storage

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotConfigured reports use of a nil or closed journal.
var ErrNotConfigured = errors.New("journal is not configured")

// Entry is one accepted action.
type Entry struct {
	// Seq is assigned by the journal on append, starting at 1.
	Seq        uint64
	Type       string
	Slice      string
	Payload    []byte
	// UserID is the session grant holder that dispatched the action. It is
	// empty when grants are disabled.
	UserID     string
	RecordedAt time.Time
}

// Journal persists accepted actions in dispatch order.
type Journal interface {
	// Append stores entry and returns it with its sequence number.
	Append(ctx context.Context, entry Entry) (Entry, error)
	// List returns up to limit entries with Seq greater than afterSeq, oldest first.
	List(ctx context.Context, afterSeq uint64, limit int) ([]Entry, error)
}

// Normalize trims entry fields and fills RecordedAt. It rejects entries
// without a type.
func Normalize(entry Entry, now func() time.Time) (Entry, error) {
	entry.Type = strings.TrimSpace(entry.Type)
	entry.Slice = strings.TrimSpace(entry.Slice)
	entry.UserID = strings.TrimSpace(entry.UserID)
	if entry.Type == "" {
		return Entry{}, errors.New("entry type is required")
	}
	if entry.RecordedAt.IsZero() {
		if now == nil {
			now = time.Now
		}
		entry.RecordedAt = now()
	}
	entry.RecordedAt = entry.RecordedAt.UTC()
	return entry, nil
}

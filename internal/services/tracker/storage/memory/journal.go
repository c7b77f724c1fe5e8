// Package memory provides an in-process action journal.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/louisbranch/bloom/internal/services/tracker/storage"
)

// Journal keeps entries in memory for the life of the process.
type Journal struct {
	mu      sync.RWMutex
	entries []storage.Entry
	now     func() time.Time
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{now: time.Now}
}

// Append stores entry with the next sequence number.
func (j *Journal) Append(ctx context.Context, entry storage.Entry) (storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return storage.Entry{}, err
	}
	if j == nil {
		return storage.Entry{}, storage.ErrNotConfigured
	}
	entry, err := storage.Normalize(entry, j.now)
	if err != nil {
		return storage.Entry{}, err
	}
	entry.Payload = slices.Clone(entry.Payload)

	j.mu.Lock()
	defer j.mu.Unlock()
	entry.Seq = uint64(len(j.entries)) + 1
	j.entries = append(j.entries, entry)
	return entry, nil
}

// List returns entries after afterSeq, oldest first.
func (j *Journal) List(ctx context.Context, afterSeq uint64, limit int) ([]storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if j == nil {
		return nil, storage.ErrNotConfigured
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	j.mu.RLock()
	defer j.mu.RUnlock()
	start := sort.Search(len(j.entries), func(i int) bool { return j.entries[i].Seq > afterSeq })
	end := min(start+limit, len(j.entries))
	out := make([]storage.Entry, 0, end-start)
	for _, entry := range j.entries[start:end] {
		entry.Payload = slices.Clone(entry.Payload)
		out = append(out, entry)
	}
	return out, nil
}

var _ storage.Journal = (*Journal)(nil)

package tracker

import (
	"encoding/json"
	"time"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/selector"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"github.com/louisbranch/bloom/internal/services/tracker/storage"
)

// StateResponse carries a root snapshot.
type StateResponse struct {
	State store.State `json:"state"`
}

// SummaryResponse carries the dashboard summary and its localized strings.
type SummaryResponse struct {
	Summary   selector.Summary          `json:"summary"`
	Localized selector.LocalizedSummary `json:"localized"`
}

// ListJournalRequest pages through the action journal.
type ListJournalRequest struct {
	PageSize  int    `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

// JournalEntry is one journaled action.
type JournalEntry struct {
	Seq        uint64          `json:"seq"`
	Type       string          `json:"type"`
	Slice      string          `json:"slice"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	UserID     string          `json:"userId,omitempty"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// ListJournalResponse is one page of journal entries.
type ListJournalResponse struct {
	Entries       []JournalEntry `json:"entries"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account creation form.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	DateOfBirth     string `json:"dateOfBirth"`
	DueDate         string `json:"dueDate"`
	PregnancyType   string `json:"pregnancyType,omitempty"`
}

// SessionResponse is returned by Login and Register. Grant is empty when the
// server runs without session grants.
type SessionResponse struct {
	User      auth.User  `json:"user"`
	Grant     string     `json:"grant,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func journalEntryFromStorage(entry storage.Entry) JournalEntry {
	out := JournalEntry{
		Seq:        entry.Seq,
		Type:       entry.Type,
		Slice:      entry.Slice,
		UserID:     entry.UserID,
		RecordedAt: entry.RecordedAt.UTC(),
	}
	if len(entry.Payload) > 0 && json.Valid(entry.Payload) {
		out.Payload = json.RawMessage(entry.Payload)
	}
	return out
}

package storage

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	entry, err := Normalize(Entry{Type: " pregnancy/addWeightEntry ", Slice: "pregnancy"}, func() time.Time { return now })
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if entry.Type != "pregnancy/addWeightEntry" {
		t.Fatalf("type = %q", entry.Type)
	}
	if !entry.RecordedAt.Equal(now) || entry.RecordedAt.Location() != time.UTC {
		t.Fatalf("recorded at = %v", entry.RecordedAt)
	}

	if _, err := Normalize(Entry{Type: "  "}, nil); err == nil {
		t.Fatal("expected error for blank type")
	}
}

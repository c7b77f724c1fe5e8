package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 200}
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 50},
		{in: -3, want: 50},
		{in: 10, want: 10},
		{in: 500, want: 200},
	}
	for _, tc := range tests {
		if got := ClampPageSize(tc.in, cfg); got != tc.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize without defaults = %d, want 1", got)
	}
}

func TestSeqCursorRoundTrip(t *testing.T) {
	if SeqCursor(0) != "" {
		t.Fatal("expected empty cursor for zero")
	}
	seq, err := ParseSeqCursor(SeqCursor(42))
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if seq != 42 {
		t.Fatalf("seq = %d, want 42", seq)
	}
	if _, err := ParseSeqCursor("abc"); err == nil {
		t.Fatal("expected invalid cursor error")
	}
}

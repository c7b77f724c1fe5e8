package collection

import (
	"slices"
	"testing"
)

type entry struct {
	ID    string
	Value int
}

func (e entry) EntityID() string { return e.ID }

func ids(items []entry) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.ID)
	}
	return out
}

func TestAppendGrowsByOneWithoutAliasing(t *testing.T) {
	base := make([]entry, 1, 4)
	base[0] = entry{ID: "a"}

	first := Append(base, entry{ID: "b"})
	second := Append(base, entry{ID: "c"})

	if len(first) != 2 || first[1] != (entry{ID: "b"}) {
		t.Fatalf("first = %v", first)
	}
	if second[1].ID != "c" || first[1].ID != "b" {
		t.Fatalf("appends share storage: first=%v second=%v", first, second)
	}
	if len(base) != 1 {
		t.Fatalf("base changed: %v", base)
	}
}

func TestReplacePreservesPosition(t *testing.T) {
	items := []entry{{ID: "a", Value: 1}, {ID: "b", Value: 2}, {ID: "c", Value: 3}}

	got := Replace(items, entry{ID: "b", Value: 20})

	if !slices.Equal(ids(got), []string{"a", "b", "c"}) || got[1].Value != 20 {
		t.Fatalf("replace = %v", got)
	}
	if items[1].Value != 2 {
		t.Fatal("input was modified")
	}
}

func TestReplaceAndRemoveMissingIDAreNoOps(t *testing.T) {
	items := []entry{{ID: "a"}, {ID: "b"}}

	replaced := Replace(items, entry{ID: "zzz", Value: 9})
	removed := Remove(items, "zzz")

	if &replaced[0] != &items[0] || &removed[0] != &items[0] {
		t.Fatal("expected missing id to return the same collection")
	}
	if !slices.Equal(replaced, items) || !slices.Equal(removed, items) {
		t.Fatalf("collections changed: %v %v", replaced, removed)
	}
}

func TestRemoveKeepsRelativeOrder(t *testing.T) {
	items := []entry{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	got := Remove(items, "b")

	if !slices.Equal(ids(got), []string{"a", "c", "d"}) {
		t.Fatalf("remove = %v", ids(got))
	}
	if !slices.Equal(ids(items), []string{"a", "b", "c", "d"}) {
		t.Fatal("input was modified")
	}
}

func TestUpdateWhere(t *testing.T) {
	items := []entry{{ID: "a"}, {ID: "b"}}
	got := UpdateWhere(items, func(e entry) bool { return e.ID == "b" }, func(e entry) entry {
		e.Value = 7
		return e
	})
	if got[1].Value != 7 || items[1].Value != 0 {
		t.Fatalf("update = %v, input = %v", got, items)
	}
	same := UpdateWhere(items, func(entry) bool { return false }, func(e entry) entry { return e })
	if &same[0] != &items[0] {
		t.Fatal("expected no match to return same collection")
	}
}

func TestRecent(t *testing.T) {
	items := []entry{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if got := ids(Recent(items, 2)); !slices.Equal(got, []string{"c", "b"}) {
		t.Fatalf("recent 2 = %v", got)
	}
	if got := ids(Recent(items, 10)); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Fatalf("recent 10 = %v", got)
	}
	if got := Recent(items, 0); len(got) != 0 {
		t.Fatalf("recent 0 = %v", got)
	}
}

func TestDuplicateIDsAreAllAffected(t *testing.T) {
	items := []entry{{ID: "w1", Value: 1}, {ID: "w2", Value: 2}, {ID: "w1", Value: 3}}

	removed := Remove(items, "w1")
	if !slices.Equal(removed, []entry{{ID: "w2", Value: 2}}) {
		t.Fatalf("remove = %v", removed)
	}

	replaced := Replace(items, entry{ID: "w1", Value: 9})
	if replaced[0].Value != 9 || replaced[1].Value != 2 || replaced[2].Value != 9 {
		t.Fatalf("replace = %v", replaced)
	}

	if !slices.Equal(items, []entry{{ID: "w1", Value: 1}, {ID: "w2", Value: 2}, {ID: "w1", Value: 3}}) {
		t.Fatalf("input was modified: %v", items)
	}
}

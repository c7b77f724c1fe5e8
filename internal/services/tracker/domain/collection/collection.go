// Package collection implements copy-on-write operations over ordered entity
// collections. Inputs are never modified in place, so snapshots that share a
// backing array stay stable. Update and delete of a missing id return the
// input unchanged.
package collection

import "slices"

// Entity is a record addressed by a caller-supplied id.
type Entity interface {
	EntityID() string
}

// Append returns a new collection with item added at the end. The id is not
// checked for uniqueness.
func Append[S ~[]E, E any](items S, item E) S {
	out := make(S, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// Replace returns a collection where every element sharing item's id is
// replaced in place. It returns items itself when no element matches.
func Replace[S ~[]E, E Entity](items S, item E) S {
	id := item.EntityID()
	return UpdateWhere(items, func(e E) bool { return e.EntityID() == id }, func(E) E { return item })
}

// Remove returns a collection without any element whose id matches. It
// returns items itself when no element matches.
func Remove[S ~[]E, E Entity](items S, id string) S {
	match := func(e E) bool { return e.EntityID() == id }
	if !slices.ContainsFunc(items, match) {
		return items
	}
	return slices.DeleteFunc(slices.Clone(items), match)
}

// UpdateWhere applies update to every element accepted by match. It
// returns items itself when nothing matches.
func UpdateWhere[S ~[]E, E any](items S, match func(E) bool, update func(E) E) S {
	idx := slices.IndexFunc(items, match)
	if idx < 0 {
		return items
	}
	out := slices.Clone(items)
	for i := idx; i < len(out); i++ {
		if match(out[i]) {
			out[i] = update(out[i])
		}
	}
	return out
}

// Recent returns up to n trailing elements, most recent first.
func Recent[S ~[]E, E any](items S, n int) S {
	if n <= 0 || len(items) == 0 {
		return S{}
	}
	start := max(len(items)-n, 0)
	out := slices.Clone(items[start:])
	slices.Reverse(out)
	return out
}

package selector

import "github.com/louisbranch/bloom/internal/services/tracker/domain/collection"

// Recent returns the last n items, most recent first. Order comes from
// insertion, never from sorting by date.
func Recent[S ~[]E, E any](items S, n int) S {
	return collection.Recent(items, n)
}

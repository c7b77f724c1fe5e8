// Package store owns the tracker's root state and the only path that changes
// it.
//
// A Store is constructed, not global. At construction it builds a registry of
// every action variant and an index from action type to the one slice fold
// that handles it; construction fails if any slice registers a type its fold
// does not handle, or the reverse. Dispatch then validates the action, folds
// it into its slice, installs the new root snapshot, appends the action to the
// optional journal and notifies subscribers in registration order.
//
// Snapshots are values whose collections are copy-on-write, so a State held
// by a caller never changes after later dispatches.
package store

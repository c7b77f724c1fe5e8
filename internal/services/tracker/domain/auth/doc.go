// Package auth models the signed-in account slice.
//
// The slice holds the current user and the sign-in lifecycle flags. Its fold
// keeps one rule above all others: a user is present exactly when the slice
// reports an authenticated session. Every transition either installs a user
// and marks the session authenticated, or clears both together.
//
// The package holds:
//   - the slice state and its user record,
//   - the closed set of auth action variants,
//   - fold logic applying those variants,
//   - and registration of their payload validators.
package auth

// Package selector derives read-only display values from tracker state:
// trimester and phase, baby age, due date countdown, the next vaccine, the
// baby size comparison, water goals, and a dashboard summary that can be
// rendered in any supported locale.
//
// Selectors never change the state they read.
package selector

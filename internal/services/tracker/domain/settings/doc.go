// Package settings models user preferences: theme, notification toggles,
// language, measurement units and device feedback flags.
package settings

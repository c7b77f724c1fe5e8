package store

import "time"

// ExportVersion tags the export layout.
const ExportVersion = "1.0.0"

// ExportData is a full backup of the root state.
type ExportData struct {
	State
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
}

// Export snapshots the current state with an export timestamp.
func (s *Store) Export() ExportData {
	return ExportData{
		State:      s.State(),
		ExportDate: s.clock().UTC().Format(time.RFC3339),
		Version:    ExportVersion,
	}
}

package model

import "time"

// ExportStatus is the outcome of a single export.
type ExportStatus string

const (
	ExportCompleted ExportStatus = "completed"
	ExportFailed    ExportStatus = "failed"
)

// ExportResult describes one file written for an export template.
type ExportResult struct {
	ID         string       `json:"id"`
	SnapshotID string       `json:"snapshotId"`
	Template   string       `json:"template"`
	Format     string       `json:"format"` // "csv" or "json"
	Path       string       `json:"path"`
	Records    int          `json:"records"`
	Status     ExportStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
	ExportedAt time.Time    `json:"exportedAt"`
}

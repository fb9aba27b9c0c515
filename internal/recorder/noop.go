package recorder

import "FoodHubMetrics/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *model.Snapshot) error   { return nil }
func (n *NoopRecorder) RecordExport(_ *model.ExportResult) error { return nil }
func (n *NoopRecorder) Close() error                             { return nil }

package recorder

import "FoodHubMetrics/internal/model"

// Recorder persists generated snapshots and export results for later analysis.
type Recorder interface {
	RecordSnapshot(snap *model.Snapshot) error
	RecordExport(res *model.ExportResult) error
	Close() error
}

// Open returns a SQLite recorder for path, or a NoopRecorder when path is
// empty. The error is returned alongside the fallback so callers can log it.
func Open(path string) (Recorder, error) {
	if path == "" {
		return NewNoopRecorder(), nil
	}
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		return NewNoopRecorder(), err
	}
	return r, nil
}

package exporter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"FoodHubMetrics/internal/model"
)

// ErrUnsupportedFormat is returned for formats other than csv and json, or
// for formats a template does not offer.
var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var csvHeader = []string{
	"date", "orders", "revenue", "customers",
	"avg_order_value", "delivery_time", "customer_satisfaction",
}

// Exporter writes snapshots to files under Dir.
type Exporter struct {
	Dir string
	Now func() time.Time
}

// New creates an Exporter rooted at dir.
func New(dir string) *Exporter {
	return &Exporter{Dir: dir, Now: time.Now}
}

// Export writes snap for the given template in the requested format. The
// returned result is always populated; on failure its Status is
// ExportFailed and the same error is returned.
func (e *Exporter) Export(snap *model.Snapshot, tmpl model.ExportTemplate, format string) (model.ExportResult, error) {
	now := e.now()
	format = strings.ToLower(format)
	res := model.ExportResult{
		ID:         uuid.NewString(),
		SnapshotID: snap.ID,
		Template:   tmpl.ID,
		Format:     format,
		ExportedAt: now,
	}

	err := e.write(snap, tmpl, format, now, &res)
	if err != nil {
		res.Status = model.ExportFailed
		res.Error = err.Error()
		log.Printf("[ERROR] export %s/%s failed: %v", tmpl.ID, format, err)
		return res, err
	}
	res.Status = model.ExportCompleted
	log.Printf("[INFO] exported %s/%s: %d records to %s", tmpl.ID, format, res.Records, res.Path)
	return res, nil
}

// ExportAll writes every format the template offers and returns one
// result per format. The first error is returned after all formats ran.
func (e *Exporter) ExportAll(snap *model.Snapshot, tmpl model.ExportTemplate) ([]model.ExportResult, error) {
	var firstErr error
	results := make([]model.ExportResult, 0, len(tmpl.Formats))
	for _, f := range tmpl.Formats {
		res, err := e.Export(snap, tmpl, f)
		results = append(results, res)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}

func (e *Exporter) write(snap *model.Snapshot, tmpl model.ExportTemplate, format string, now time.Time, res *model.ExportResult) error {
	if format != FormatCSV && format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if !offers(tmpl, format) {
		return fmt.Errorf("%w: template %s does not offer %s", ErrUnsupportedFormat, tmpl.ID, format)
	}

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	res.Path = filepath.Join(e.Dir, Filename(tmpl.ID, snap.DataSource, now, format))

	var err error
	switch format {
	case FormatCSV:
		res.Records, err = writeCSV(res.Path, snap.Series)
	case FormatJSON:
		res.Records, err = writeJSON(res.Path, snap)
	}
	return err
}

// Filename builds "<template>_<source>_<timestamp>.<ext>".
func Filename(template, dataSource string, at time.Time, format string) string {
	return fmt.Sprintf("%s_%s_%s.%s", template, dataSource, at.UTC().Format("20060102T150405Z"), format)
}

func offers(tmpl model.ExportTemplate, format string) bool {
	for _, f := range tmpl.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

func writeCSV(path string, series []model.DailyMetric) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for _, m := range series {
		row := []string{
			m.Day.Format("2006-01-02"),
			strconv.Itoa(m.Orders),
			strconv.FormatFloat(m.Revenue, 'f', 2, 64),
			strconv.Itoa(m.Customers),
			strconv.FormatFloat(m.AvgOrderValue, 'f', 2, 64),
			strconv.FormatFloat(m.DeliveryTime, 'f', 2, 64),
			strconv.FormatFloat(m.CustomerSatisfaction, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(series), nil
}

func writeJSON(path string, snap *model.Snapshot) (int, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write file: %w", err)
	}
	return len(snap.Series), nil
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

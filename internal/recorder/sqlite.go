package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"FoodHubMetrics/internal/model"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id              TEXT PRIMARY KEY,
			timestamp       INTEGER NOT NULL,
			data_source     TEXT NOT NULL,
			window_days     INTEGER,
			total_orders    INTEGER,
			total_revenue   REAL,
			total_customers INTEGER,
			peak_date       TEXT,
			peak_revenue    REAL,
			pipeline_value  REAL,
			pipeline_weighted REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS daily_metrics (
			id                    INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id           TEXT NOT NULL REFERENCES snapshots(id),
			day                   TEXT NOT NULL,
			orders                INTEGER,
			revenue               REAL,
			customers             INTEGER,
			avg_order_value       REAL,
			delivery_time         REAL,
			customer_satisfaction REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_snapshot ON daily_metrics(snapshot_id)`,

		`CREATE TABLE IF NOT EXISTS kpi_values (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
			title       TEXT,
			value       REAL,
			change      REAL,
			trend       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_kpi_snapshot ON kpi_values(snapshot_id)`,

		`CREATE TABLE IF NOT EXISTS exports (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			snapshot_id TEXT,
			template    TEXT,
			format      TEXT,
			path        TEXT,
			records     INTEGER,
			status      TEXT,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exports_ts ON exports(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot writes the snapshot header, its daily series and KPI values
// in a single transaction.
func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	sum := snap.Summary
	_, err = tx.Exec(`INSERT INTO snapshots
		(id, timestamp, data_source, window_days, total_orders, total_revenue, total_customers,
		 peak_date, peak_revenue, pipeline_value, pipeline_weighted)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		snap.ID, snap.GeneratedAt.Unix(), snap.DataSource, snap.WindowDays,
		sum.TotalOrders, sum.TotalRevenue, sum.TotalCustomers,
		sum.PeakRevenueDate, sum.PeakRevenue,
		snap.Totals.Value, snap.Totals.WeightedValue,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO daily_metrics
		(snapshot_id, day, orders, revenue, customers, avg_order_value, delivery_time, customer_satisfaction)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare daily_metrics: %w", err)
	}
	defer stmt.Close()
	for _, m := range snap.Series {
		if _, err := stmt.Exec(snap.ID, m.Day.Format("2006-01-02"), m.Orders, m.Revenue,
			m.Customers, m.AvgOrderValue, m.DeliveryTime, m.CustomerSatisfaction); err != nil {
			return fmt.Errorf("insert daily metric %s: %w", m.Date, err)
		}
	}

	for _, k := range snap.KPIs {
		if _, err := tx.Exec(`INSERT INTO kpi_values
			(snapshot_id, title, value, change, trend) VALUES (?,?,?,?,?)`,
			snap.ID, k.Title, k.Value, k.Change, string(k.Trend)); err != nil {
			return fmt.Errorf("insert kpi %s: %w", k.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordExport(res *model.ExportResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO exports
		(id, timestamp, snapshot_id, template, format, path, records, status, error)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		res.ID, res.ExportedAt.Unix(), res.SnapshotID, res.Template, res.Format,
		res.Path, res.Records, string(res.Status), res.Error,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

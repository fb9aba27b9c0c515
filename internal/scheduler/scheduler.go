package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"FoodHubMetrics/internal/catalog"
	"FoodHubMetrics/internal/collector"
	"FoodHubMetrics/internal/exporter"
	"FoodHubMetrics/internal/format"
	"FoodHubMetrics/internal/model"
	"FoodHubMetrics/internal/recorder"
	"FoodHubMetrics/internal/source"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron        *cron.Cron
	Collector   *collector.Collector
	Exporter    *exporter.Exporter
	Recorder    recorder.Recorder
	DataSources []string
	WindowDays  int
	Ctx         context.Context

	running sync.WaitGroup
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, exp *exporter.Exporter, rec recorder.Recorder, dataSources []string, windowDays int) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Collector:   col,
		Exporter:    exp,
		Recorder:    rec,
		DataSources: dataSources,
		WindowDays:  windowDays,
		Ctx:         ctx,
	}
}

// RegisterAll registers the snapshot and export tasks.
func (s *Scheduler) RegisterAll(snapshotCron, exportCron string) error {
	if _, err := s.Cron.AddFunc(snapshotCron, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	if _, err := s.Cron.AddFunc(exportCron, s.exportTask); err != nil {
		return fmt.Errorf("register export task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks, including
// those started by RunInBackground.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.running.Wait()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the snapshot and export tasks immediately.
func (s *Scheduler) RunNow() {
	s.snapshotTask()
	s.exportTask()
}

// RunInBackground runs RunNow on its own goroutine (for RUN_ON_START).
// Stop waits for it to finish.
func (s *Scheduler) RunInBackground() {
	s.running.Add(1)
	go func() {
		defer s.running.Done()
		s.RunNow()
	}()
}

func (s *Scheduler) snapshotTask() {
	log.Printf("[INFO] running snapshot task for %d data sources", len(s.DataSources))
	for _, ds := range s.DataSources {
		if s.Ctx.Err() != nil {
			log.Println("[WARN] snapshot task cancelled")
			return
		}
		snap, err := s.Collector.Collect(ds, s.WindowDays)
		if err != nil {
			log.Printf("[ERROR] collect %s: %v", ds, err)
			continue
		}
		if err := s.Recorder.RecordSnapshot(snap); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", snap.ID, err)
		}
		if snap.DataSource == string(source.All) {
			log.Printf("[INFO] digest:\n%s", format.ExecutiveSummary(snap))
		}
	}
}

func (s *Scheduler) exportTask() {
	log.Println("[INFO] running export task")
	snap, err := s.Collector.Collect(string(source.All), s.WindowDays)
	if err != nil {
		log.Printf("[ERROR] export collect: %v", err)
		return
	}

	for _, tmpl := range automatedTemplates() {
		if s.Ctx.Err() != nil {
			log.Println("[WARN] export task cancelled")
			return
		}
		results, err := s.Exporter.ExportAll(snap, tmpl)
		if err != nil {
			log.Printf("[WARN] export %s incomplete: %v", tmpl.ID, err)
		}
		for i := range results {
			if err := s.Recorder.RecordExport(&results[i]); err != nil {
				log.Printf("[ERROR] record export %s: %v", results[i].ID, err)
			}
		}
	}
}

func automatedTemplates() []model.ExportTemplate {
	var out []model.ExportTemplate
	for _, t := range catalog.ExportTemplates() {
		if t.Automated {
			out = append(out, t)
		}
	}
	return out
}

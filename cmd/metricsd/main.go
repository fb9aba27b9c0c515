package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"FoodHubMetrics/internal/collector"
	"FoodHubMetrics/internal/config"
	"FoodHubMetrics/internal/exporter"
	"FoodHubMetrics/internal/generator"
	"FoodHubMetrics/internal/recorder"
	"FoodHubMetrics/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] FoodHubMetrics starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// Init generator; seed 0 means a fresh random stream per process
	clock := generator.SystemClock{Location: loc}
	var gen *generator.Generator
	if cfg.Generator.Seed != 0 {
		gen = generator.NewSeeded(clock, cfg.Generator.Seed)
		log.Printf("[INFO] generator seeded with %d", cfg.Generator.Seed)
	} else {
		gen = generator.New(clock, nil)
	}

	col := collector.NewCollector(gen, cfg.Generator.MaxWindowDays)
	exp := exporter.New(cfg.Export.Dir)

	// Init recorder
	rec, err := recorder.Open(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
	}
	defer rec.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, exp, rec, cfg.DataSources, cfg.Generator.DefaultWindowDays)
	if err := sched.RegisterAll(cfg.Schedule.SnapshotCron, cfg.Schedule.ExportCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing snapshot and export tasks now")
		sched.RunInBackground()
	}

	log.Printf("[INFO] FoodHubMetrics is running (tz %s, %d sources, %dd window). Press Ctrl+C to stop.",
		loc, len(cfg.DataSources), cfg.Generator.DefaultWindowDays)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] FoodHubMetrics stopped")
}

package collector

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"FoodHubMetrics/internal/calculator"
	"FoodHubMetrics/internal/catalog"
	"FoodHubMetrics/internal/classify"
	"FoodHubMetrics/internal/model"
	"FoodHubMetrics/internal/source"
)

// ForecastHorizon is the number of projected days in a snapshot forecast.
const ForecastHorizon = 10

// ErrWindowTooLarge is returned when a requested window exceeds the collector's limit.
var ErrWindowTooLarge = errors.New("window exceeds maximum")

// Collector orchestrates metric generation and derivation into snapshots.
type Collector struct {
	Source        Source
	MaxWindowDays int
}

// NewCollector creates a new Collector. A non-positive maxWindow disables the limit.
func NewCollector(src Source, maxWindow int) *Collector {
	return &Collector{Source: src, MaxWindowDays: maxWindow}
}

// Collect generates a fresh snapshot for dataSource over windowDays.
// Unknown data sources are collected as "all".
func (c *Collector) Collect(dataSource string, windowDays int) (*model.Snapshot, error) {
	if c.MaxWindowDays > 0 && windowDays > c.MaxWindowDays {
		return nil, fmt.Errorf("collect %d days: %w (%d)", windowDays, ErrWindowTooLarge, c.MaxWindowDays)
	}
	if windowDays < 0 {
		log.Printf("[WARN] negative window %d requested, clamping to 0", windowDays)
		windowDays = 0
	}
	id, known := source.Parse(dataSource)
	if !known {
		log.Printf("[WARN] unknown data source %q, using %s", dataSource, id)
	}

	snap := &model.Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: c.Source.Now(),
		DataSource:  string(id),
		WindowDays:  windowDays,
	}

	snap.Series = c.Source.TimeSeries(windowDays, string(id))
	if len(snap.Series) == 0 {
		log.Printf("[WARN] empty series for %s/%dd, summary left at zero", id, windowDays)
	}
	snap.Summary = calculator.SummarizeSeries(snap.Series)
	snap.KPIs = c.Source.KPIs(string(id))

	snap.Industry = calculator.IndustryDistribution(catalog.Segments())

	stages := catalog.Pipeline()
	snap.Pipeline = calculator.Pipeline(stages)
	snap.Totals = calculator.PipelineTotals(stages)

	snap.Funnel = calculator.Funnel(catalog.Lifecycle())

	snap.Risks = catalog.Risks()
	for i := range snap.Risks {
		snap.Risks[i].Level = classify.RiskLevel(snap.Risks[i].Score)
	}
	snap.Competitors = catalog.Competitors()

	snap.Monthly = c.Source.MonthlyFinancials()
	snap.Forecast = c.Source.Forecast(snap.Series, ForecastHorizon)

	team := catalog.Team()
	snap.Performance = calculator.PerformanceMatrix(team)
	snap.Companies = c.Source.CompanyPerformance(team)

	return snap, nil
}

package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"FoodHubMetrics/internal/model"
	"FoodHubMetrics/internal/source"
)

const (
	weekendFactor    = 1.3
	seasonalAmp      = 0.2
	forecastLookback = 10
	forecastBase     = 100000.0
)

var sectors = []string{"Enterprise Software", "Data Analytics", "AI/ML", "Cloud Services", "Cybersecurity"}

// Generator produces randomized dashboard metrics. It is safe for concurrent use.
type Generator struct {
	clock Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator. A nil clock uses the system clock and a nil rng
// is replaced with a randomly seeded one.
func New(clock Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{clock: clock, rng: rng}
}

// NewSeeded creates a Generator whose output is reproducible for a given seed and clock.
func NewSeeded(clock Clock, seed uint64) *Generator {
	return New(clock, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Now returns the generator clock's current time.
func (g *Generator) Now() time.Time { return g.clock.Now() }

// SeasonalFactor returns the sine modulation for a record i days before today
// in a window of the given length. A zero window has no modulation.
func SeasonalFactor(i, windowDays int) float64 {
	if windowDays <= 0 {
		return 1
	}
	return 1 + seasonalAmp*math.Sin(2*math.Pi*float64(i)/float64(windowDays))
}

// WeekendFactor returns 1.3 for Saturdays and Sundays, 1 otherwise.
func WeekendFactor(day time.Time) float64 {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendFactor
	}
	return 1
}

// TimeSeries returns windowDays+1 daily records ending today, oldest first.
// Negative windows are clamped to zero. Unknown data sources scale like "all".
func (g *Generator) TimeSeries(windowDays int, dataSource string) []model.DailyMetric {
	if windowDays < 0 {
		windowDays = 0
	}
	profile := source.Lookup(dataSource)
	today := startOfDay(g.clock.Now())

	g.mu.Lock()
	defer g.mu.Unlock()

	series := make([]model.DailyMetric, 0, windowDays+1)
	for i := windowDays; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		weekend := WeekendFactor(day)
		scale := profile.SeriesMultiplier * SeasonalFactor(i, windowDays) * weekend

		series = append(series, model.DailyMetric{
			Day:                  day,
			Date:                 day.Format("Jan 02"),
			Orders:               int(math.Floor(g.uniform(600, 1400) * scale)),
			Revenue:              math.Floor(g.uniform(45000, 105000) * scale),
			Customers:            int(math.Floor(g.uniform(300, 800) * profile.SeriesMultiplier * weekend)),
			AvgOrderValue:        g.uniform(65, 85),
			DeliveryTime:         g.uniform(25, 40),
			CustomerSatisfaction: g.uniform(85, 95),
		})
	}
	return series
}

// MonthlyFinancials scales a fresh 12-point daily sample into monthly figures,
// labelled with the trailing twelve months, oldest first.
func (g *Generator) MonthlyFinancials() []model.MonthlyFinancial {
	series := g.TimeSeries(11, string(source.All))
	now := g.clock.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	months := make([]model.MonthlyFinancial, len(series))
	for i, d := range series {
		revenue := d.Revenue * 30
		months[i] = model.MonthlyFinancial{
			Month:     firstOfMonth.AddDate(0, -(len(series) - 1 - i), 0).Format("Jan"),
			Revenue:   revenue,
			Profit:    revenue * 0.20,
			Customers: d.Customers * 15,
			Orders:    d.Orders * 20,
		}
	}
	return months
}

// Forecast returns the last ten actual revenue points followed by horizon
// projected points, each 5-15% above the latest actual revenue.
func (g *Generator) Forecast(series []model.DailyMetric, horizon int) []model.ForecastPoint {
	if horizon < 0 {
		horizon = 0
	}
	start := len(series) - forecastLookback
	if start < 0 {
		start = 0
	}
	base := forecastBase
	if len(series) > 0 {
		base = series[len(series)-1].Revenue
	}

	points := make([]model.ForecastPoint, 0, len(series)-start+horizon)
	for _, d := range series[start:] {
		points = append(points, model.ForecastPoint{Date: d.Date, Revenue: d.Revenue})
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 1; i <= horizon; i++ {
		points = append(points, model.ForecastPoint{
			Date:      fmt.Sprintf("Future %d", i),
			Revenue:   base * (1 + g.uniform(0.05, 0.15)),
			Predicted: base * (1 + g.uniform(0.05, 0.15)),
			Projected: true,
		})
	}
	return points
}

// CompanyPerformance renders sales reps as company tiles with a random headcount.
func (g *Generator) CompanyPerformance(team []model.SalesRep) []model.CompanyPerformance {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]model.CompanyPerformance, len(team))
	for i, rep := range team {
		out[i] = model.CompanyPerformance{
			Name:      rep.Rep,
			Revenue:   rep.Revenue,
			Growth:    rep.Achievement - 100,
			Employees: g.rng.IntN(50) + 20,
			Industry:  sectors[i%len(sectors)],
		}
	}
	return out
}

// uniform must be called with g.mu held.
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

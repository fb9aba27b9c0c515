package collector

import (
	"time"

	"FoodHubMetrics/internal/model"
)

// Source defines the generated data a Collector assembles into snapshots.
type Source interface {
	Now() time.Time
	TimeSeries(windowDays int, dataSource string) []model.DailyMetric
	KPIs(dataSource string) []model.KPISummary
	MonthlyFinancials() []model.MonthlyFinancial
	Forecast(series []model.DailyMetric, horizon int) []model.ForecastPoint
	CompanyPerformance(team []model.SalesRep) []model.CompanyPerformance
}

package model

import "time"

// Snapshot is everything one dashboard render needs for a data source and window.
type Snapshot struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generatedAt"`
	DataSource  string               `json:"dataSource"`
	WindowDays  int                  `json:"windowDays"`
	Series      []DailyMetric        `json:"series"`
	Summary     SeriesSummary        `json:"summary"`
	KPIs        []KPISummary         `json:"kpis"`
	Industry    []IndustryShare      `json:"industry"`
	Pipeline    []WeightedStage      `json:"pipeline"`
	Totals      PipelineTotals       `json:"pipelineTotals"`
	Funnel      []FunnelStep         `json:"funnel"`
	Risks       []Risk               `json:"risks"`
	Competitors []Competitor         `json:"competitors"`
	Monthly     []MonthlyFinancial   `json:"monthly"`
	Forecast    []ForecastPoint      `json:"forecast"`
	Performance []RepPerformance     `json:"performance"`
	Companies   []CompanyPerformance `json:"companies"`
}

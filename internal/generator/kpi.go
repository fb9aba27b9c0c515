package generator

import (
	"math"

	"FoodHubMetrics/internal/classify"
	"FoodHubMetrics/internal/model"
	"FoodHubMetrics/internal/source"
)

type kpiDef struct {
	title     string
	icon      string
	period    string
	format    model.ValueFormat
	maxRating int
	value     func(p source.Profile) float64
	change    func(p source.Profile) float64
}

var kpiDefs = []kpiDef{
	{
		title:  "Total Daily Orders",
		icon:   "🍽️",
		period: "vs yesterday",
		format: model.FormatPlain,
		value:  func(p source.Profile) float64 { return math.Floor(911 * p.KPIMultiplier) },
		change: func(p source.Profile) float64 { return 8.2 + p.OrdersChangeOffset },
	},
	{
		title:  "Daily Revenue",
		icon:   "💰",
		period: "vs yesterday",
		format: model.FormatCurrency,
		value:  func(p source.Profile) float64 { return math.Floor(68295 * p.KPIMultiplier) },
		change: func(source.Profile) float64 { return 12.5 },
	},
	{
		title:  "Average Order Value",
		icon:   "📊",
		period: "vs last week",
		format: model.FormatCurrency,
		value:  func(p source.Profile) float64 { return 75.0 + p.AvgOrderValueOffset },
		change: func(source.Profile) float64 { return 4.3 },
	},
	{
		title:     "Customer Satisfaction",
		icon:      "⭐",
		period:    "vs last week",
		format:    model.FormatRating,
		maxRating: 5,
		value:     func(source.Profile) float64 { return 4.7 },
		change:    func(source.Profile) float64 { return 0.2 },
	},
}

// KPIs returns the four headline tiles scaled for dataSource.
func KPIs(dataSource string) []model.KPISummary {
	id := source.Resolve(dataSource)
	profile := source.Profiles[id]

	out := make([]model.KPISummary, len(kpiDefs))
	for i, d := range kpiDefs {
		change := d.change(profile)
		out[i] = model.KPISummary{
			Title:      d.title,
			Value:      d.value(profile),
			Change:     change,
			Trend:      classify.Trend(change),
			Icon:       d.icon,
			Period:     d.period,
			Format:     d.format,
			MaxRating:  d.maxRating,
			DataSource: string(id),
		}
	}
	return out
}

// KPIs is the method form of KPIs so a Generator satisfies collector.Source.
func (g *Generator) KPIs(dataSource string) []model.KPISummary {
	return KPIs(dataSource)
}

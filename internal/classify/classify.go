package classify

import "FoodHubMetrics/internal/model"

// Band maps a minimum score to a label. Tables are ordered by descending MinScore.
type Band struct {
	MinScore float64
	Label    string
}

// ConversionBands grades funnel stage conversion percentages.
var ConversionBands = []Band{
	{80, "high"},
	{50, "medium"},
	{25, "low"},
}

// RiskBands grades risk register scores (0-10).
var RiskBands = []Band{
	{8.0, "critical"},
	{6.5, "high"},
	{5.0, "medium"},
}

const (
	defaultConversion = "critical"
	defaultRisk       = "low"
)

func mapBand(bands []Band, score float64, fallback string) string {
	for _, b := range bands {
		if score >= b.MinScore {
			return b.Label
		}
	}
	return fallback
}

// Conversion returns the band for a conversion percentage.
func Conversion(pct float64) string { return mapBand(ConversionBands, pct, defaultConversion) }

// RiskLevel returns the band for a risk score.
func RiskLevel(score float64) string { return mapBand(RiskBands, score, defaultRisk) }

// Trend is up for non-negative changes and down otherwise.
func Trend(change float64) model.Trend {
	if change < 0 {
		return model.TrendDown
	}
	return model.TrendUp
}

package calculator

import (
	"github.com/shopspring/decimal"

	"FoodHubMetrics/internal/model"
)

var hundred = decimal.NewFromInt(100)

// WeightedValue discounts value by its close probability (0-100).
func WeightedValue(value, probability float64) float64 {
	f, _ := weighted(value, probability).Float64()
	return f
}

func weighted(value, probability float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Mul(decimal.NewFromFloat(probability)).Div(hundred)
}

// Pipeline attaches the weighted value to every stage.
func Pipeline(stages []model.PipelineStage) []model.WeightedStage {
	out := make([]model.WeightedStage, len(stages))
	for i, s := range stages {
		out[i] = model.WeightedStage{PipelineStage: s, WeightedValue: WeightedValue(s.Value, s.Probability)}
	}
	return out
}

// PipelineTotals sums deals, value and weighted value across the stages.
func PipelineTotals(stages []model.PipelineStage) model.PipelineTotals {
	value, weightedSum := decimal.Zero, decimal.Zero
	var deals int
	for _, s := range stages {
		deals += s.Deals
		value = value.Add(decimal.NewFromFloat(s.Value))
		weightedSum = weightedSum.Add(weighted(s.Value, s.Probability))
	}
	v, _ := value.Float64()
	w, _ := weightedSum.Float64()
	return model.PipelineTotals{Deals: deals, Value: v, WeightedValue: w}
}

package calculator

import (
	"FoodHubMetrics/internal/classify"
	"FoodHubMetrics/internal/model"
)

// Dropoffs returns count[i-1]-count[i] for each stage, 0 for the first.
func Dropoffs(counts []int) []int {
	out := make([]int, len(counts))
	for i := 1; i < len(counts); i++ {
		out[i] = counts[i-1] - counts[i]
	}
	return out
}

// Funnel derives dropoff, width relative to the first stage and conversion band.
func Funnel(stages []model.LifecycleStage) []model.FunnelStep {
	counts := make([]int, len(stages))
	for i, s := range stages {
		counts[i] = s.Count
	}
	drops := Dropoffs(counts)

	out := make([]model.FunnelStep, len(stages))
	for i, s := range stages {
		out[i] = model.FunnelStep{
			LifecycleStage: s,
			Dropoff:        drops[i],
			Width:          Percent(float64(s.Count), float64(counts[0])),
			Band:           classify.Conversion(s.Conversion),
		}
	}
	return out
}

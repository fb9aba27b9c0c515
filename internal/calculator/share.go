package calculator

import (
	"math"

	"FoodHubMetrics/internal/model"
)

// Ratio returns a/b, or 0 when b is zero or the result is not finite.
func Ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Percent returns a as a percentage of b, 0 for a zero denominator.
func Percent(a, b float64) float64 {
	return Ratio(a, b) * 100
}

// Shares returns each value as a percentage of their sum.
func Shares(values []float64) []float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Percent(v, total)
	}
	return out
}

// IndustryDistribution splits segment revenue into percentage shares.
func IndustryDistribution(segments []model.Segment) []model.IndustryShare {
	revenues := make([]float64, len(segments))
	for i, s := range segments {
		revenues[i] = s.Revenue
	}
	shares := Shares(revenues)

	out := make([]model.IndustryShare, len(segments))
	for i, s := range segments {
		out[i] = model.IndustryShare{
			Industry:   s.Segment,
			Companies:  s.Customers / 10,
			Revenue:    s.Revenue,
			Percentage: shares[i],
			Color:      s.Color,
		}
	}
	return out
}

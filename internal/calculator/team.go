package calculator

import "FoodHubMetrics/internal/model"

// PerformanceMatrix computes revenue per deal (in thousands) for each rep.
func PerformanceMatrix(team []model.SalesRep) []model.RepPerformance {
	out := make([]model.RepPerformance, len(team))
	for i, r := range team {
		out[i] = model.RepPerformance{
			Name:       r.Rep,
			Deals:      r.Deals,
			Revenue:    r.Revenue,
			Efficiency: Ratio(r.Revenue, float64(r.Deals)) / 1000,
			Quota:      r.Achievement,
		}
	}
	return out
}

// AverageEfficiency is the headcount-independent mean efficiency across departments.
func AverageEfficiency(departments []model.Department) float64 {
	var sum float64
	for _, d := range departments {
		sum += d.Efficiency
	}
	return Ratio(sum, float64(len(departments)))
}

// EfficiencyGap returns efficiency minus target for a department.
func EfficiencyGap(d model.Department) float64 {
	return d.Efficiency - d.Target
}

// OutputPerEmployee is department output divided by headcount.
func OutputPerEmployee(d model.Department) float64 {
	return Ratio(float64(d.Output), float64(d.Employees))
}

package calculator

import (
	"math"
	"testing"
	"time"

	"FoodHubMetrics/internal/model"
)

func TestWeightedValue(t *testing.T) {
	tests := []struct {
		value, probability, want float64
	}{
		{12500000, 10, 1250000},
		{8900000, 25, 2225000},
		{6200000, 50, 3100000},
		{3800000, 75, 2850000},
		{2100000, 100, 2100000},
		{999.99, 33, 329.9967},
		{1000, 0, 0},
	}
	for _, tt := range tests {
		if got := WeightedValue(tt.value, tt.probability); got != tt.want {
			t.Errorf("WeightedValue(%.2f, %.0f): expected %.4f, got %.4f", tt.value, tt.probability, tt.want, got)
		}
	}
}

func TestPipeline_DerivesEveryStage(t *testing.T) {
	stages := []model.PipelineStage{
		{Stage: "Prospecting", Deals: 234, Value: 12500000, Probability: 10},
		{Stage: "Proposal", Deals: 89, Value: 6200000, Probability: 50},
	}
	derived := Pipeline(stages)
	for i, s := range derived {
		if s.Stage != stages[i].Stage {
			t.Errorf("stage %d: expected %q, got %q", i, stages[i].Stage, s.Stage)
		}
		if s.WeightedValue != s.Value*s.Probability/100 {
			t.Errorf("%s: weighted value %.0f drifted from value×probability", s.Stage, s.WeightedValue)
		}
	}

	totals := PipelineTotals(stages)
	if totals.Deals != 323 || totals.Value != 18700000 || totals.WeightedValue != 4350000 {
		t.Errorf("unexpected totals %+v", totals)
	}
	if empty := PipelineTotals(nil); empty != (model.PipelineTotals{}) {
		t.Errorf("expected zero totals for no stages, got %+v", empty)
	}
}

func TestDropoffs(t *testing.T) {
	got := Dropoffs([]int{15420, 1310, 461, 316})
	want := []int{0, 14110, 849, 145}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage %d: expected dropoff %d, got %d", i, want[i], got[i])
		}
	}
	if len(Dropoffs(nil)) != 0 {
		t.Error("expected no dropoffs for no stages")
	}
}

func TestFunnel(t *testing.T) {
	stages := []model.LifecycleStage{
		{Stage: "Leads", Count: 15420, Conversion: 8.5},
		{Stage: "Qualified", Count: 1310, Conversion: 35.2},
		{Stage: "Opportunity", Count: 461, Conversion: 68.5},
		{Stage: "Customers", Count: 316, Conversion: 100},
	}
	steps := Funnel(stages)
	if steps[0].Width != 100 || steps[0].Dropoff != 0 {
		t.Errorf("first stage: expected width 100 and no dropoff, got %+v", steps[0])
	}
	if steps[3].Dropoff != 145 {
		t.Errorf("last stage: expected dropoff 145, got %d", steps[3].Dropoff)
	}
	wantBands := []string{"critical", "low", "medium", "high"}
	for i, s := range steps {
		if s.Band != wantBands[i] {
			t.Errorf("%s: expected band %q, got %q", s.Stage, wantBands[i], s.Band)
		}
	}

	zero := Funnel([]model.LifecycleStage{{Stage: "Leads"}, {Stage: "Qualified"}})
	for _, s := range zero {
		if s.Width != 0 {
			t.Errorf("%s: expected width 0 with an empty first stage, got %.2f", s.Stage, s.Width)
		}
	}
}

func TestIndustryDistribution_SumsToHundred(t *testing.T) {
	segments := []model.Segment{
		{Segment: "Enterprise", Customers: 145, Revenue: 8500000},
		{Segment: "Mid-Market", Customers: 387, Revenue: 7200000},
		{Segment: "Small Business", Customers: 1240, Revenue: 4800000},
		{Segment: "Startup", Customers: 2890, Revenue: 2100000},
	}
	dist := IndustryDistribution(segments)
	var sum float64
	for _, d := range dist {
		sum += d.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("expected shares summing to 100, got %.12f", sum)
	}
	if math.Abs(dist[0].Percentage-8500000.0/22600000*100) > 1e-9 {
		t.Errorf("enterprise: expected %.4f%%, got %.4f%%", 8500000.0/22600000*100, dist[0].Percentage)
	}
	if dist[3].Companies != 289 {
		t.Errorf("startup: expected 289 companies, got %d", dist[3].Companies)
	}
}

func TestShares_ZeroTotal(t *testing.T) {
	for i, s := range Shares([]float64{0, 0, 0}) {
		if s != 0 {
			t.Errorf("share %d: expected 0, got %f", i, s)
		}
	}
	if len(Shares(nil)) != 0 {
		t.Error("expected no shares for no values")
	}
}

func TestRatio_GuardsDenominator(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 4, 2.5},
		{10, 0, 0},
		{0, 0, 0},
		{math.Inf(1), 1, 0},
	}
	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); got != tt.want {
			t.Errorf("Ratio(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
	if Percent(1, 4) != 25 {
		t.Errorf("expected 25%%, got %v", Percent(1, 4))
	}
}

func TestPerformanceMatrix(t *testing.T) {
	team := []model.SalesRep{
		{Rep: "Sarah Johnson", Deals: 45, Revenue: 2340000, Achievement: 117},
		{Rep: "Nobody", Deals: 0, Revenue: 500000, Achievement: 0},
	}
	m := PerformanceMatrix(team)
	if m[0].Efficiency != 52 || m[0].Quota != 117 {
		t.Errorf("expected efficiency 52 and quota 117, got %+v", m[0])
	}
	if m[1].Efficiency != 0 {
		t.Errorf("expected zero efficiency with no deals, got %v", m[1].Efficiency)
	}
}

func TestDepartmentMetrics(t *testing.T) {
	deps := []model.Department{
		{Department: "Sales", Efficiency: 87.5, Target: 85, Employees: 24, Output: 210},
		{Department: "Engineering", Efficiency: 89.3, Target: 90, Employees: 0, Output: 402},
	}
	if got := AverageEfficiency(deps); math.Abs(got-88.4) > 1e-9 {
		t.Errorf("expected average efficiency 88.4, got %v", got)
	}
	if AverageEfficiency(nil) != 0 {
		t.Error("expected 0 average for no departments")
	}
	if got := EfficiencyGap(deps[1]); math.Abs(got+0.7) > 1e-9 {
		t.Errorf("expected gap -0.7, got %v", got)
	}
	if OutputPerEmployee(deps[0]) != 8.75 || OutputPerEmployee(deps[1]) != 0 {
		t.Errorf("unexpected output per employee %v / %v", OutputPerEmployee(deps[0]), OutputPerEmployee(deps[1]))
	}
}

func TestSummarizeSeries(t *testing.T) {
	sat := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	series := []model.DailyMetric{
		{Day: sat, Date: "Jan 06", Orders: 1300, Revenue: 90000, Customers: 500, CustomerSatisfaction: 90, DeliveryTime: 30},
		{Day: sat.AddDate(0, 0, 1), Date: "Jan 07", Orders: 1100, Revenue: 120000, Customers: 400, CustomerSatisfaction: 86, DeliveryTime: 28},
		{Day: sat.AddDate(0, 0, 2), Date: "Jan 08", Orders: 900, Revenue: 60000, Customers: 300, CustomerSatisfaction: 94, DeliveryTime: 32},
	}
	s := SummarizeSeries(series)
	if s.Days != 3 || s.TotalOrders != 3300 || s.TotalRevenue != 270000 || s.TotalCustomers != 1200 {
		t.Errorf("unexpected totals %+v", s)
	}
	if s.MeanOrders != 1100 || s.MeanRevenue != 90000 || s.MeanSatisfaction != 90 || s.MeanDeliveryTime != 30 {
		t.Errorf("unexpected means %+v", s)
	}
	if s.PeakRevenueDate != "Jan 07" || s.PeakRevenue != 120000 {
		t.Errorf("expected peak on Jan 07, got %s %.0f", s.PeakRevenueDate, s.PeakRevenue)
	}
	if s.WeekendMeanOrders != 1200 || s.WeekdayMeanOrders != 900 {
		t.Errorf("expected weekend 1200 / weekday 900, got %.0f / %.0f", s.WeekendMeanOrders, s.WeekdayMeanOrders)
	}

	if empty := SummarizeSeries(nil); empty != (model.SeriesSummary{}) {
		t.Errorf("expected zero summary, got %+v", empty)
	}
}

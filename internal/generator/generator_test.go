package generator

import (
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"FoodHubMetrics/internal/model"
)

// 2024-01-10 is a Wednesday.
var fixedNow = FixedClock(time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC))

func TestTimeSeries_LengthAndOrder(t *testing.T) {
	g := NewSeeded(fixedNow, 1)
	for _, days := range []int{0, 1, 7, 30, 90, 365} {
		series := g.TimeSeries(days, "all")
		if len(series) != days+1 {
			t.Fatalf("window %d: expected %d records, got %d", days, days+1, len(series))
		}
		for i := 1; i < len(series); i++ {
			if !series[i-1].Day.Before(series[i].Day) {
				t.Fatalf("window %d: record %d (%s) not after record %d (%s)",
					days, i, series[i].Day, i-1, series[i-1].Day)
			}
			if got := series[i].Day.Sub(series[i-1].Day); got != 24*time.Hour {
				t.Errorf("window %d: expected consecutive days, gap %v at %d", days, got, i)
			}
		}
		last := series[len(series)-1].Day
		if last.Year() != 2024 || last.Month() != time.January || last.Day() != 10 {
			t.Errorf("window %d: expected last record today, got %s", days, last)
		}
	}
}

func TestTimeSeries_Labels(t *testing.T) {
	g := NewSeeded(fixedNow, 1)
	series := g.TimeSeries(7, "all")
	want := []string{"Jan 03", "Jan 04", "Jan 05", "Jan 06", "Jan 07", "Jan 08", "Jan 09", "Jan 10"}
	for i, d := range series {
		if d.Date != want[i] {
			t.Errorf("record %d: expected %q, got %q", i, want[i], d.Date)
		}
	}

	// Labels carry no year, so a window crossing New Year wraps around.
	g = NewSeeded(FixedClock(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)), 1)
	series = g.TimeSeries(4, "all")
	want = []string{"Dec 29", "Dec 30", "Dec 31", "Jan 01", "Jan 02"}
	for i, d := range series {
		if d.Date != want[i] {
			t.Errorf("year boundary record %d: expected %q, got %q", i, want[i], d.Date)
		}
	}
}

// Highest pos multiplier times the seasonal peak and the weekend lift.
const maxScaledOrders = 1400 * 1.2 * 1.2 * 1.3

func TestTimeSeries_Bounds(t *testing.T) {
	g := NewSeeded(fixedNow, 7)
	for _, ds := range []string{"all", "pos", "delivery", "kitchen", "inventory", "customer", "bogus"} {
		for run := 0; run < 20; run++ {
			for _, d := range g.TimeSeries(90, ds) {
				if d.Orders < 0 || d.Revenue < 0 || d.Customers < 0 {
					t.Fatalf("%s: negative counts in %+v", ds, d)
				}
				if d.CustomerSatisfaction < 85 || d.CustomerSatisfaction > 95 {
					t.Fatalf("%s: satisfaction %.2f out of [85,95]", ds, d.CustomerSatisfaction)
				}
				if d.AvgOrderValue < 65 || d.AvgOrderValue > 85 {
					t.Fatalf("%s: avg order value %.2f out of [65,85]", ds, d.AvgOrderValue)
				}
				if d.DeliveryTime < 25 || d.DeliveryTime > 40 {
					t.Fatalf("%s: delivery time %.2f out of [25,40]", ds, d.DeliveryTime)
				}
				if float64(d.Orders) > maxScaledOrders {
					t.Fatalf("%s: orders %d above the scaled maximum", ds, d.Orders)
				}
				if d.Revenue != math.Floor(d.Revenue) {
					t.Fatalf("%s: revenue %.4f is not floored", ds, d.Revenue)
				}
			}
		}
	}
}

func TestTimeSeries_WeekendLift(t *testing.T) {
	g := NewSeeded(fixedNow, 42)
	const window = 6 // seven records, one per weekday

	var weekendSum, weekdaySum, weekendRev, weekdayRev float64
	var weekendN, weekdayN int
	for run := 0; run < 3000; run++ {
		series := g.TimeSeries(window, "all")
		for idx, d := range series {
			seasonal := SeasonalFactor(window-idx, window)
			orders := float64(d.Orders) / seasonal
			revenue := d.Revenue / seasonal
			if WeekendFactor(d.Day) > 1 {
				weekendSum += orders
				weekendRev += revenue
				weekendN++
			} else {
				weekdaySum += orders
				weekdayRev += revenue
				weekdayN++
			}
		}
	}
	if weekendN == 0 || weekdayN == 0 {
		t.Fatal("expected both weekend and weekday samples")
	}
	ordersRatio := (weekendSum / float64(weekendN)) / (weekdaySum / float64(weekdayN))
	if math.Abs(ordersRatio-1.3) > 0.05 {
		t.Errorf("expected weekend orders ≈1.3x weekdays, got %.3f", ordersRatio)
	}
	revenueRatio := (weekendRev / float64(weekendN)) / (weekdayRev / float64(weekdayN))
	if math.Abs(revenueRatio-1.3) > 0.05 {
		t.Errorf("expected weekend revenue ≈1.3x weekdays, got %.3f", revenueRatio)
	}
}

func meanOrders(g *Generator, ds string, runs int) float64 {
	var sum float64
	var n int
	for i := 0; i < runs; i++ {
		for _, d := range g.TimeSeries(30, ds) {
			sum += float64(d.Orders)
			n++
		}
	}
	return sum / float64(n)
}

func TestTimeSeries_SourceScaling(t *testing.T) {
	all := meanOrders(NewSeeded(fixedNow, 100), "all", 300)
	pos := meanOrders(NewSeeded(fixedNow, 200), "pos", 300)
	delivery := meanOrders(NewSeeded(fixedNow, 300), "delivery", 300)

	if r := pos / all; math.Abs(r-1.2) > 0.03 {
		t.Errorf("expected pos orders ≈1.2x all, got %.3f", r)
	}
	if r := delivery / all; math.Abs(r-0.9) > 0.03 {
		t.Errorf("expected delivery orders ≈0.9x all, got %.3f", r)
	}
}

func TestTimeSeries_UnknownSourceMatchesAll(t *testing.T) {
	want := NewSeeded(fixedNow, 9).TimeSeries(30, "all")
	for _, ds := range []string{"bogus", "", "kitchen"} {
		got := NewSeeded(fixedNow, 9).TimeSeries(30, ds)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%q: expected output identical to all", ds)
		}
	}
}

func TestTimeSeries_ZeroAndNegativeWindows(t *testing.T) {
	g := NewSeeded(fixedNow, 3)
	for _, days := range []int{0, -1, -30} {
		series := g.TimeSeries(days, "all")
		if len(series) != 1 {
			t.Fatalf("window %d: expected a single record, got %d", days, len(series))
		}
		d := series[0]
		if d.Date != "Jan 10" {
			t.Errorf("window %d: expected today's label, got %q", days, d.Date)
		}
		if d.Orders < 600 || d.Orders > 1400 {
			t.Errorf("window %d: expected unmodulated weekday orders, got %d", days, d.Orders)
		}
	}
}

func TestTimeSeries_NotIdempotent(t *testing.T) {
	g := NewSeeded(fixedNow, 5)
	a := g.TimeSeries(30, "all")
	b := g.TimeSeries(30, "all")

	differs := false
	for i := range a {
		if a[i].Date != b[i].Date || !a[i].Day.Equal(b[i].Day) {
			t.Fatalf("record %d: dates differ between calls: %s vs %s", i, a[i].Date, b[i].Date)
		}
		if a[i].Revenue != b[i].Revenue {
			differs = true
		}
	}
	if !differs {
		t.Error("expected fresh random values on the second call")
	}
}

func TestNewSeeded_Reproducible(t *testing.T) {
	a := NewSeeded(fixedNow, 77).TimeSeries(90, "pos")
	b := NewSeeded(fixedNow, 77).TimeSeries(90, "pos")
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical output for identical seeds")
	}
}

func TestSeasonalFactor(t *testing.T) {
	tests := []struct {
		i, days int
		want    float64
	}{
		{0, 30, 1.0},
		{30, 30, 1.0},
		{15, 30, 1.0},
		{1, 4, 1.2},
		{3, 4, 0.8},
		{0, 0, 1.0},
		{5, 0, 1.0},
	}
	for _, tt := range tests {
		if got := SeasonalFactor(tt.i, tt.days); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SeasonalFactor(%d, %d): expected %.3f, got %.3f", tt.i, tt.days, tt.want, got)
		}
	}
}

func TestWeekendFactor(t *testing.T) {
	// 2024-01-06 is a Saturday.
	start := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	want := []float64{1.3, 1.3, 1, 1, 1, 1, 1}
	for i, w := range want {
		day := start.AddDate(0, 0, i)
		if got := WeekendFactor(day); got != w {
			t.Errorf("%s: expected %.1f, got %.1f", day.Weekday(), w, got)
		}
	}
}

func TestMonthlyFinancials(t *testing.T) {
	g := NewSeeded(FixedClock(time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)), 11)
	months := g.MonthlyFinancials()
	want := []string{"Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	if len(months) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(months))
	}
	for i, m := range months {
		if m.Month != want[i] {
			t.Errorf("month %d: expected %q, got %q", i, want[i], m.Month)
		}
		if math.Abs(m.Profit-m.Revenue*0.20) > 1e-6 {
			t.Errorf("month %s: expected 20%% profit margin, got %.2f of %.2f", m.Month, m.Profit, m.Revenue)
		}
		if m.Revenue < 45000*30*0.8 {
			t.Errorf("month %s: revenue %.0f below minimum", m.Month, m.Revenue)
		}
	}
}

func TestForecast(t *testing.T) {
	g := NewSeeded(fixedNow, 13)
	series := g.TimeSeries(30, "all")
	points := g.Forecast(series, 10)
	if len(points) != 20 {
		t.Fatalf("expected 20 points, got %d", len(points))
	}
	for i, p := range points[:10] {
		src := series[len(series)-10+i]
		if p.Projected || p.Date != src.Date || p.Revenue != src.Revenue {
			t.Errorf("point %d: expected actual %s %.0f, got %+v", i, src.Date, src.Revenue, p)
		}
	}
	base := series[len(series)-1].Revenue
	for i, p := range points[10:] {
		if !p.Projected {
			t.Errorf("future point %d not marked projected", i)
		}
		for _, v := range []float64{p.Revenue, p.Predicted} {
			if v < base*1.05 || v > base*1.15 {
				t.Errorf("future point %d: %.0f outside [%.0f, %.0f]", i, v, base*1.05, base*1.15)
			}
		}
	}

	empty := g.Forecast(nil, 3)
	if len(empty) != 3 {
		t.Fatalf("expected 3 projected points for an empty series, got %d", len(empty))
	}
	if empty[0].Date != "Future 1" || empty[0].Revenue < 105000 || empty[0].Revenue > 115000 {
		t.Errorf("expected projection off the default base, got %+v", empty[0])
	}
}

func TestCompanyPerformance(t *testing.T) {
	team := []model.SalesRep{
		{Rep: "A", Revenue: 100, Achievement: 117},
		{Rep: "B", Revenue: 90, Achievement: 99},
		{Rep: "C"}, {Rep: "D"}, {Rep: "E"}, {Rep: "F"},
	}
	out := NewSeeded(fixedNow, 1).CompanyPerformance(team)
	if len(out) != len(team) {
		t.Fatalf("expected %d companies, got %d", len(team), len(out))
	}
	if out[0].Growth != 17 || out[1].Growth != -1 {
		t.Errorf("expected growth achievement-100, got %.1f and %.1f", out[0].Growth, out[1].Growth)
	}
	if out[5].Industry != out[0].Industry {
		t.Errorf("expected sectors to rotate, got %q and %q", out[0].Industry, out[5].Industry)
	}
	for _, c := range out {
		if c.Employees < 20 || c.Employees > 69 {
			t.Errorf("%s: employees %d out of [20,69]", c.Name, c.Employees)
		}
	}
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	g := NewSeeded(fixedNow, 21)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := len(g.TimeSeries(30, "pos")); got != 31 {
				t.Errorf("expected 31 records, got %d", got)
			}
		}()
	}
	wg.Wait()
}

package calculator

import (
	"time"

	"FoodHubMetrics/internal/model"
)

// SummarizeSeries scans a daily series for totals, means and the peak revenue day.
// An empty series yields a zero summary.
func SummarizeSeries(series []model.DailyMetric) model.SeriesSummary {
	s := model.SeriesSummary{Days: len(series)}
	if len(series) == 0 {
		return s
	}

	var satisfaction, delivery float64
	var weekendOrders, weekdayOrders, weekendDays, weekdayDays int
	for i, d := range series {
		s.TotalOrders += d.Orders
		s.TotalRevenue += d.Revenue
		s.TotalCustomers += d.Customers
		satisfaction += d.CustomerSatisfaction
		delivery += d.DeliveryTime

		if i == 0 || d.Revenue > s.PeakRevenue {
			s.PeakRevenue = d.Revenue
			s.PeakRevenueDate = d.Date
		}

		switch d.Day.Weekday() {
		case time.Saturday, time.Sunday:
			weekendOrders += d.Orders
			weekendDays++
		default:
			weekdayOrders += d.Orders
			weekdayDays++
		}
	}

	n := float64(len(series))
	s.MeanOrders = float64(s.TotalOrders) / n
	s.MeanRevenue = s.TotalRevenue / n
	s.MeanSatisfaction = satisfaction / n
	s.MeanDeliveryTime = delivery / n
	s.WeekendMeanOrders = Ratio(float64(weekendOrders), float64(weekendDays))
	s.WeekdayMeanOrders = Ratio(float64(weekdayOrders), float64(weekdayDays))
	return s
}

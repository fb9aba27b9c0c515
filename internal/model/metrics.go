package model

import "time"

// DailyMetric is one generated day of business activity.
type DailyMetric struct {
	Day                  time.Time `json:"day"`
	Date                 string    `json:"date"` // short label, e.g. "Jan 05"
	Orders               int       `json:"orders"`
	Revenue              float64   `json:"revenue"`
	Customers            int       `json:"customers"`
	AvgOrderValue        float64   `json:"avgOrderValue"`
	DeliveryTime         float64   `json:"deliveryTime"` // minutes
	CustomerSatisfaction float64   `json:"customerSatisfaction"`
}

// MonthlyFinancial is a month-level roll-up derived from a daily sample.
type MonthlyFinancial struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	Customers int     `json:"customers"`
	Orders    int     `json:"orders"`
}

// ForecastPoint is either an actual observation or a projected one.
type ForecastPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Predicted float64 `json:"predicted,omitempty"`
	Projected bool    `json:"projected"`
}

// SeriesSummary holds roll-ups over a daily series.
type SeriesSummary struct {
	Days              int     `json:"days"`
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalCustomers    int     `json:"totalCustomers"`
	MeanOrders        float64 `json:"meanOrders"`
	MeanRevenue       float64 `json:"meanRevenue"`
	MeanSatisfaction  float64 `json:"meanSatisfaction"`
	MeanDeliveryTime  float64 `json:"meanDeliveryTime"`
	PeakRevenueDate   string  `json:"peakRevenueDate"`
	PeakRevenue       float64 `json:"peakRevenue"`
	WeekendMeanOrders float64 `json:"weekendMeanOrders"`
	WeekdayMeanOrders float64 `json:"weekdayMeanOrders"`
}

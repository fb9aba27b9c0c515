package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"FoodHubMetrics/internal/model"
)

// Currency renders an amount as dollars with cents, e.g. "$68,295.00".
func Currency(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Number renders a value rounded to an integer with thousands separators.
func Number(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Percentage renders a value with one decimal, e.g. "12.5%".
func Percentage(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Change renders a signed percentage change, e.g. "+8.2%".
func Change(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// Rating renders a score against its maximum, e.g. "4.7/5".
func Rating(v float64, max int) string {
	if max <= 0 {
		max = 5
	}
	return fmt.Sprintf("%.1f/%d", v, max)
}

// Value renders v according to the KPI format hint.
func Value(v float64, f model.ValueFormat, maxRating int) string {
	switch f {
	case model.FormatCurrency:
		return Currency(v)
	case model.FormatPercentage:
		return Percentage(v)
	case model.FormatRating:
		return Rating(v, maxRating)
	default:
		return Number(v)
	}
}

// KPI renders a tile as a single line.
func KPI(k model.KPISummary) string {
	arrow := "↑"
	if k.Trend == model.TrendDown {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %s: %s %s %s %s", k.Icon, k.Title,
		Value(k.Value, k.Format, k.MaxRating), arrow, Change(k.Change), k.Period)
}

// ExecutiveSummary renders a snapshot as a plain-text digest.
func ExecutiveSummary(s *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 Executive Summary | %s | %s, last %d days\n\n",
		s.GeneratedAt.Format("2006-01-02"), s.DataSource, s.WindowDays))

	for _, k := range s.KPIs {
		b.WriteString("  " + KPI(k) + "\n")
	}

	sum := s.Summary
	b.WriteString("\n📈 Period totals:\n")
	b.WriteString(fmt.Sprintf("  Orders: %s (avg %s/day)\n", Number(float64(sum.TotalOrders)), Number(sum.MeanOrders)))
	b.WriteString(fmt.Sprintf("  Revenue: %s (avg %s/day)\n", Currency(sum.TotalRevenue), Currency(sum.MeanRevenue)))
	b.WriteString(fmt.Sprintf("  Customers: %s\n", Number(float64(sum.TotalCustomers))))
	if sum.PeakRevenueDate != "" {
		b.WriteString(fmt.Sprintf("  Peak day: %s at %s\n", sum.PeakRevenueDate, Currency(sum.PeakRevenue)))
	}
	b.WriteString(fmt.Sprintf("  Satisfaction: %s | Delivery: %.1f min\n", Percentage(sum.MeanSatisfaction), sum.MeanDeliveryTime))

	b.WriteString("\n💼 Pipeline:\n")
	b.WriteString(fmt.Sprintf("  %s deals, %s total, %s weighted\n",
		Number(float64(s.Totals.Deals)), Currency(s.Totals.Value), Currency(s.Totals.WeightedValue)))

	var flagged []string
	for _, r := range s.Risks {
		if r.Level == "critical" || r.Level == "high" {
			flagged = append(flagged, fmt.Sprintf("%s (%.1f)", r.Risk, r.Score))
		}
	}
	if len(flagged) > 0 {
		b.WriteString("\n⚠️ Top risks: " + strings.Join(flagged, ", ") + "\n")
	}

	return b.String()
}

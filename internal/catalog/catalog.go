// Package catalog holds the fixed reference data shown alongside the
// generated metrics. Every accessor returns a fresh slice.
package catalog

import "FoodHubMetrics/internal/model"

func Brands() []model.Brand {
	return []model.Brand{
		{ID: "dipndip", Name: "DipnDip", DailyOrders: 247, Change: 12.3, Trend: model.TrendUp, Color: "#8B5CF6", Revenue: 18750, AvgOrderValue: 75.91},
		{ID: "elestez", Name: "Elestez", DailyOrders: 189, Change: -3.2, Trend: model.TrendDown, Color: "#EF4444", Revenue: 14220, AvgOrderValue: 75.24},
		{ID: "ellena", Name: "Ellena", DailyOrders: 156, Change: 8.7, Trend: model.TrendUp, Color: "#10B981", Revenue: 11700, AvgOrderValue: 75.00},
		{ID: "procuts", Name: "Procuts", DailyOrders: 134, Change: 15.4, Trend: model.TrendUp, Color: "#F59E0B", Revenue: 10050, AvgOrderValue: 75.00},
		{ID: "elestez_uae", Name: "Elestez UAE", DailyOrders: 98, Change: 5.8, Trend: model.TrendUp, Color: "#3B82F6", Revenue: 7350, AvgOrderValue: 75.00},
		{ID: "dillydally", Name: "dillydally", DailyOrders: 87, Change: -1.4, Trend: model.TrendDown, Color: "#EC4899", Revenue: 6525, AvgOrderValue: 75.00},
	}
}

func Quarterly() []model.QuarterlyFinancial {
	return []model.QuarterlyFinancial{
		{Quarter: "Q1 2024", Revenue: 6200000, Profit: 1240000, Margin: 20.0, Growth: 12.5},
		{Quarter: "Q2 2024", Revenue: 6800000, Profit: 1360000, Margin: 20.0, Growth: 15.2},
		{Quarter: "Q3 2024", Revenue: 7100000, Profit: 1420000, Margin: 20.0, Growth: 18.7},
		{Quarter: "Q4 2024", Revenue: 7850000, Profit: 1570000, Margin: 20.0, Growth: 22.1},
	}
}

func Segments() []model.Segment {
	return []model.Segment{
		{Segment: "Enterprise", Customers: 145, Revenue: 8500000, AvgDeal: 58620, Retention: 94.2, Color: "#3B82F6"},
		{Segment: "Mid-Market", Customers: 387, Revenue: 7200000, AvgDeal: 18605, Retention: 87.5, Color: "#10B981"},
		{Segment: "Small Business", Customers: 1240, Revenue: 4800000, AvgDeal: 3871, Retention: 78.3, Color: "#F59E0B"},
		{Segment: "Startup", Customers: 2890, Revenue: 2100000, AvgDeal: 727, Retention: 65.7, Color: "#EF4444"},
	}
}

func Lifecycle() []model.LifecycleStage {
	return []model.LifecycleStage{
		{Stage: "Leads", Count: 15420, Conversion: 8.5, Cost: 45},
		{Stage: "Qualified", Count: 1310, Conversion: 35.2, Cost: 180},
		{Stage: "Opportunity", Count: 461, Conversion: 68.5, Cost: 520},
		{Stage: "Customers", Count: 316, Conversion: 100, Cost: 1250},
	}
}

func Churn() []model.ChurnMonth {
	return []model.ChurnMonth{
		{Month: "Jan", Churn: 3.2, NewCustomers: 145, NetGrowth: 4.8},
		{Month: "Feb", Churn: 2.8, NewCustomers: 167, NetGrowth: 5.9},
		{Month: "Mar", Churn: 3.5, NewCustomers: 134, NetGrowth: 3.7},
		{Month: "Apr", Churn: 2.9, NewCustomers: 189, NetGrowth: 6.8},
		{Month: "May", Churn: 3.1, NewCustomers: 156, NetGrowth: 5.2},
		{Month: "Jun", Churn: 2.6, NewCustomers: 198, NetGrowth: 7.1},
	}
}

func Team() []model.SalesRep {
	return []model.SalesRep{
		{Rep: "Sarah Johnson", Deals: 45, Revenue: 2340000, Quota: 2000000, Achievement: 117.0, AvgDeal: 52000},
		{Rep: "Michael Chen", Deals: 38, Revenue: 1980000, Quota: 1800000, Achievement: 110.0, AvgDeal: 52105},
		{Rep: "Emily Rodriguez", Deals: 52, Revenue: 1750000, Quota: 1600000, Achievement: 109.4, AvgDeal: 33654},
		{Rep: "David Kim", Deals: 29, Revenue: 1620000, Quota: 1500000, Achievement: 108.0, AvgDeal: 55862},
		{Rep: "Lisa Thompson", Deals: 41, Revenue: 1450000, Quota: 1400000, Achievement: 103.6, AvgDeal: 35366},
	}
}

// Pipeline lists the open sales pipeline. Weighted values are derived by
// calculator.Pipeline.
func Pipeline() []model.PipelineStage {
	return []model.PipelineStage{
		{Stage: "Prospecting", Deals: 234, Value: 12500000, Probability: 10},
		{Stage: "Qualification", Deals: 156, Value: 8900000, Probability: 25},
		{Stage: "Proposal", Deals: 89, Value: 6200000, Probability: 50},
		{Stage: "Negotiation", Deals: 34, Value: 3800000, Probability: 75},
		{Stage: "Closed Won", Deals: 28, Value: 2100000, Probability: 100},
	}
}

func Departments() []model.Department {
	return []model.Department{
		{Department: "Sales", Efficiency: 87.5, Target: 85, Employees: 24, Output: 210},
		{Department: "Marketing", Efficiency: 92.1, Target: 88, Employees: 18, Output: 165},
		{Department: "Engineering", Efficiency: 89.3, Target: 90, Employees: 45, Output: 402},
		{Department: "Customer Success", Efficiency: 94.2, Target: 92, Employees: 12, Output: 113},
		{Department: "Operations", Efficiency: 86.7, Target: 85, Employees: 15, Output: 130},
	}
}

func Costs() []model.CostCategory {
	return []model.CostCategory{
		{Category: "Personnel", Amount: 1240000, Percentage: 45.2, Trend: "up", Change: 8.5},
		{Category: "Technology", Amount: 680000, Percentage: 24.8, Trend: "up", Change: 12.3},
		{Category: "Marketing", Amount: 520000, Percentage: 19.0, Trend: "down", Change: -5.2},
		{Category: "Facilities", Amount: 180000, Percentage: 6.6, Trend: "stable", Change: 1.1},
		{Category: "Other", Amount: 120000, Percentage: 4.4, Trend: "down", Change: -2.8},
	}
}

func Competitors() []model.Competitor {
	return []model.Competitor{
		{Company: "CompetitorA", MarketShare: 28.5, Revenue: 450000000, Growth: 15.2, Employees: 2400},
		{Company: "Our Company", MarketShare: 18.7, Revenue: 285000000, Growth: 22.1, Employees: 1200},
		{Company: "CompetitorB", MarketShare: 16.3, Revenue: 248000000, Growth: 8.9, Employees: 1800},
		{Company: "CompetitorC", MarketShare: 12.1, Revenue: 184000000, Growth: 12.7, Employees: 950},
		{Company: "Others", MarketShare: 24.4, Revenue: 371000000, Growth: 10.5, Employees: 3200},
	}
}

func MarketTrends() []model.MarketTrend {
	return []model.MarketTrend{
		{Trend: "AI/ML Adoption", Impact: "High", Timeline: "6-12 months", Probability: 85},
		{Trend: "Remote Work Tools", Impact: "Medium", Timeline: "3-6 months", Probability: 92},
		{Trend: "Sustainability Focus", Impact: "High", Timeline: "12-18 months", Probability: 78},
		{Trend: "Data Privacy Regulations", Impact: "Medium", Timeline: "6-9 months", Probability: 88},
	}
}

func Risks() []model.Risk {
	return []model.Risk{
		{Category: "Financial", Risk: "Currency Exchange Rate Volatility", Probability: "Medium", Impact: "High", Score: 7.2, Mitigation: "Hedge 70% of foreign currency exposure", Owner: "CFO"},
		{Category: "Operational", Risk: "Key Supplier Dependency", Probability: "Low", Impact: "High", Score: 5.8, Mitigation: "Diversify supplier base by Q2", Owner: "COO"},
		{Category: "Technology", Risk: "Cybersecurity Breach", Probability: "Medium", Impact: "Very High", Score: 8.5, Mitigation: "Enhanced security protocols and training", Owner: "CTO"},
		{Category: "Market", Risk: "New Competitor Entry", Probability: "High", Impact: "Medium", Score: 6.9, Mitigation: "Accelerate product development", Owner: "CEO"},
		{Category: "Regulatory", Risk: "Data Privacy Compliance", Probability: "Medium", Impact: "Medium", Score: 5.5, Mitigation: "Legal review and system updates", Owner: "Legal"},
	}
}

func Reports() []model.Report {
	return []model.Report{
		{
			ID: "monthly-board", Title: "Monthly Board Report",
			Description:   "Comprehensive monthly performance overview for board members",
			LastGenerated: "2024-01-15", Frequency: "Monthly", Status: "Published",
			Recipients: []string{"Board Members", "C-Suite"},
			KeyMetrics: []string{"Revenue", "Profit", "Customer Growth", "Market Share"},
		},
		{
			ID: "quarterly-investor", Title: "Quarterly Investor Update",
			Description:   "Detailed financial and strategic update for investors",
			LastGenerated: "2024-01-01", Frequency: "Quarterly", Status: "Draft",
			Recipients: []string{"Investors", "Analysts"},
			KeyMetrics: []string{"Financial Performance", "Strategic Initiatives", "Market Position"},
		},
		{
			ID: "weekly-executive", Title: "Weekly Executive Summary",
			Description:   "Key performance indicators and alerts for executive team",
			LastGenerated: "2024-01-22", Frequency: "Weekly", Status: "Published",
			Recipients: []string{"C-Suite", "VPs"},
			KeyMetrics: []string{"KPIs", "Risks", "Opportunities", "Action Items"},
		},
	}
}

func Alerts() []model.Alert {
	return []model.Alert{
		{ID: 1, Type: "opportunity", Description: "Q4 revenue exceeded targets by 22.1%", Amount: 1850000, Time: "2 hours ago", Status: "success", Priority: "high"},
		{ID: 2, Type: "risk", Description: "Customer churn rate increased to 3.5% in March", Time: "4 hours ago", Status: "warning", Priority: "high"},
		{ID: 3, Type: "milestone", Description: "Reached 10,000 active customers milestone", Time: "1 day ago", Status: "success", Priority: "medium"},
		{ID: 4, Type: "market", Description: "AI/ML market showing 85% adoption probability", Time: "2 days ago", Status: "info", Priority: "medium"},
		{ID: 5, Type: "compliance", Description: "Data privacy compliance review completed", Time: "3 days ago", Status: "info", Priority: "low"},
	}
}

func PerformanceMetrics() []model.PerformanceMetric {
	return []model.PerformanceMetric{
		{Metric: "Customer Satisfaction", Value: "94.2%", Target: "> 90%", Status: "excellent"},
		{Metric: "Employee Retention", Value: "96.8%", Target: "> 95%", Status: "excellent"},
		{Metric: "Gross Margin", Value: "68.5%", Target: "> 65%", Status: "excellent"},
		{Metric: "Sales Cycle Length", Value: "45 days", Target: "< 60 days", Status: "good"},
		{Metric: "Lead Conversion", Value: "8.5%", Target: "> 7%", Status: "excellent"},
		{Metric: "Market Share", Value: "18.7%", Target: "> 15%", Status: "excellent"},
	}
}

// ExportTemplates lists the export bundles. Automated templates are exported
// by the scheduler.
func ExportTemplates() []model.ExportTemplate {
	return []model.ExportTemplate{
		{ID: "executive-summary", Name: "Executive Summary Report", Description: "High-level overview with key metrics and insights for C-suite", Type: "report", Formats: []string{"json"}, Automated: true},
		{ID: "financial-data", Name: "Financial Data Export", Description: "Complete financial metrics, revenue, and cost analysis", Type: "data", Formats: []string{"csv", "json"}, Automated: false},
		{ID: "sales-dashboard", Name: "Sales Dashboard", Description: "Interactive sales performance dashboard with charts", Type: "dashboard", Formats: []string{"csv", "json"}, Automated: true},
		{ID: "customer-analytics", Name: "Customer Analytics Report", Description: "Detailed customer segmentation and behavior analysis", Type: "analytics", Formats: []string{"csv"}, Automated: false},
	}
}

// ExportTemplate returns the template with the given id.
func ExportTemplate(id string) (model.ExportTemplate, bool) {
	for _, t := range ExportTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return model.ExportTemplate{}, false
}

package model

// Segment is a customer segment in the reference catalog.
type Segment struct {
	Segment   string  `json:"segment"`
	Customers int     `json:"customers"`
	Revenue   float64 `json:"revenue"`
	AvgDeal   float64 `json:"avgDeal"`
	Retention float64 `json:"retention"` // percentage
	Color     string  `json:"color"`
}

// IndustryShare is a segment's slice of total segment revenue.
type IndustryShare struct {
	Industry   string  `json:"industry"`
	Companies  int     `json:"companies"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// PipelineStage is a sales pipeline step. The weighted value is never
// stored; see calculator.WeightedValue.
type PipelineStage struct {
	Stage       string  `json:"stage"`
	Deals       int     `json:"deals"`
	Value       float64 `json:"value"`
	Probability float64 `json:"probability"` // 0..100
}

// WeightedStage is a PipelineStage together with its derived weighted value.
type WeightedStage struct {
	PipelineStage
	WeightedValue float64 `json:"weightedValue"`
}

// PipelineTotals sums a derived pipeline.
type PipelineTotals struct {
	Deals         int     `json:"deals"`
	Value         float64 `json:"value"`
	WeightedValue float64 `json:"weightedValue"`
}

// LifecycleStage is a customer funnel step.
type LifecycleStage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Conversion float64 `json:"conversion"`
	Cost       float64 `json:"cost"`
}

// FunnelStep is a LifecycleStage with derived dropoff and relative width.
type FunnelStep struct {
	LifecycleStage
	Dropoff int     `json:"dropoff"`
	Width   float64 `json:"width"` // percent of the first stage
	Band    string  `json:"band"`
}

// ChurnMonth is a monthly churn observation.
type ChurnMonth struct {
	Month        string  `json:"month"`
	Churn        float64 `json:"churn"`
	NewCustomers int     `json:"newCustomers"`
	NetGrowth    float64 `json:"netGrowth"`
}

// SalesRep is a member of the sales team.
type SalesRep struct {
	Rep         string  `json:"rep"`
	Deals       int     `json:"deals"`
	Revenue     float64 `json:"revenue"`
	Quota       float64 `json:"quota"`
	Achievement float64 `json:"achievement"`
	AvgDeal     float64 `json:"avgDeal"`
}

// RepPerformance is the analytics performance-matrix row for a rep.
type RepPerformance struct {
	Name       string  `json:"name"`
	Deals      int     `json:"deals"`
	Revenue    float64 `json:"revenue"`
	Efficiency float64 `json:"efficiency"` // revenue per deal, thousands
	Quota      float64 `json:"quota"`
}

// CompanyPerformance is a rep rendered as a company tile.
type CompanyPerformance struct {
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Growth    float64 `json:"growth"`
	Employees int     `json:"employees"`
	Industry  string  `json:"industry"`
}

// Department is an operational productivity row.
type Department struct {
	Department string  `json:"department"`
	Efficiency float64 `json:"efficiency"`
	Target     float64 `json:"target"`
	Employees  int     `json:"employees"`
	Output     int     `json:"output"`
}

// CostCategory is an operating-cost line.
type CostCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Trend      string  `json:"trend"`
	Change     float64 `json:"change"`
}

// Competitor is a market-share row.
type Competitor struct {
	Company     string  `json:"company"`
	MarketShare float64 `json:"marketShare"`
	Revenue     float64 `json:"revenue"`
	Growth      float64 `json:"growth"`
	Employees   int     `json:"employees"`
}

// MarketTrend is a market intelligence entry.
type MarketTrend struct {
	Trend       string  `json:"trend"`
	Impact      string  `json:"impact"`
	Timeline    string  `json:"timeline"`
	Probability float64 `json:"probability"`
}

// Risk is a risk register entry.
type Risk struct {
	Category    string  `json:"category"`
	Risk        string  `json:"risk"`
	Probability string  `json:"probability"`
	Impact      string  `json:"impact"`
	Score       float64 `json:"score"`
	Level       string  `json:"level,omitempty"`
	Mitigation  string  `json:"mitigation"`
	Owner       string  `json:"owner"`
}

// QuarterlyFinancial is a quarter of reported financials.
type QuarterlyFinancial struct {
	Quarter string  `json:"quarter"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
	Growth  float64 `json:"growth"`
}

// Brand is a Food Hub brand with its daily order figures.
type Brand struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DailyOrders   int     `json:"dailyOrders"`
	Change        float64 `json:"change"`
	Trend         Trend   `json:"trend"`
	Color         string  `json:"color"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// Report is an executive report definition.
type Report struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	LastGenerated string   `json:"lastGenerated"`
	Frequency     string   `json:"frequency"`
	Recipients    []string `json:"recipients"`
	Status        string   `json:"status"`
	KeyMetrics    []string `json:"keyMetrics"`
}

// Alert is an executive alert.
type Alert struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount,omitempty"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
}

// PerformanceMetric is a headline metric against its target.
type PerformanceMetric struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Target string `json:"target"`
	Status string `json:"status"`
}

// ExportTemplate describes an export bundle offered on the exports page.
type ExportTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Formats     []string `json:"formats"`
	Automated   bool     `json:"automated"`
}

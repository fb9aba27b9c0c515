package model

// Trend is the direction of a KPI change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// ValueFormat tells the renderer how to display a KPI value.
type ValueFormat string

const (
	FormatPlain      ValueFormat = "plain"
	FormatCurrency   ValueFormat = "currency"
	FormatPercentage ValueFormat = "percentage"
	FormatRating     ValueFormat = "rating"
)

// KPISummary is a single dashboard tile.
type KPISummary struct {
	Title      string      `json:"title"`
	Value      float64     `json:"value"`
	Change     float64     `json:"change"` // signed percentage
	Trend      Trend       `json:"trend"`
	Icon       string      `json:"icon"`
	Period     string      `json:"period"`
	Format     ValueFormat `json:"format"`
	MaxRating  int         `json:"maxRating,omitempty"`
	DataSource string      `json:"dataSource"`
}

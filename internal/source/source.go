package source

// ID identifies a data source selectable on the dashboard.
type ID string

const (
	All       ID = "all"
	POS       ID = "pos"
	Delivery  ID = "delivery"
	Kitchen   ID = "kitchen"
	Inventory ID = "inventory"
	Customer  ID = "customer"
)

// Info describes a data source for the selector.
type Info struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Profile holds the scaling applied to generated metrics for a data source.
type Profile struct {
	SeriesMultiplier    float64
	KPIMultiplier       float64
	OrdersChangeOffset  float64
	AvgOrderValueOffset float64
}

var defaultProfile = Profile{SeriesMultiplier: 1.0, KPIMultiplier: 1.0}

// Profiles maps each known data source to its scaling.
var Profiles = map[ID]Profile{
	All:       defaultProfile,
	POS:       {SeriesMultiplier: 1.2, KPIMultiplier: 1.2, OrdersChangeOffset: 3.1, AvgOrderValueOffset: 5.2},
	Delivery:  {SeriesMultiplier: 0.9, KPIMultiplier: 0.8, OrdersChangeOffset: -2.1},
	Kitchen:   defaultProfile,
	Inventory: defaultProfile,
	Customer:  defaultProfile,
}

var catalog = []Info{
	{All, "All Brands", "Combined view of all Food Hub brands"},
	{POS, "POS Systems", "Point of sale and order data"},
	{Delivery, "Delivery Platforms", "Third-party delivery analytics"},
	{Kitchen, "Kitchen Management", "Operational and kitchen efficiency data"},
	{Inventory, "Inventory System", "Stock and supply chain data"},
	{Customer, "Customer Analytics", "Customer behavior and loyalty data"},
}

// List returns the selectable data sources in display order.
func List() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Parse reports whether s names a known data source.
func Parse(s string) (ID, bool) {
	id := ID(s)
	if _, ok := Profiles[id]; ok {
		return id, true
	}
	return All, false
}

// Resolve returns the known ID for s, falling back to All.
func Resolve(s string) ID {
	id, _ := Parse(s)
	return id
}

// Lookup returns the profile for s. Unknown ids get the All profile.
func Lookup(s string) Profile {
	return Profiles[Resolve(s)]
}

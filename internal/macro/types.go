package macro

// Pillar readings use *float64 so "unknown" stays distinct from a
// legitimate zero: nil fields contribute no score points, a parsed 0.0
// still can. A reading whose fields are all nil collapses to a nil
// reading instead of being kept as an empty object.

// RetailSales is the retail-sales pillar, percent month-over-month
type RetailSales struct {
	Actual   *float64 `json:"actual"`
	Forecast *float64 `json:"forecast"`
	Previous *float64 `json:"previous"`
}

// PMI is the purchasing-managers-index pillar, plain index values
type PMI struct {
	Current  *float64 `json:"current"`
	Previous *float64 `json:"previous"`
}

// CPI is the consumer-price-index pillar, percent year-over-year
type CPI struct {
	ActualYoY   *float64 `json:"actual_yoy"`
	ForecastYoY *float64 `json:"forecast_yoy"`
	PreviousYoY *float64 `json:"previous_yoy"`
}

// RegionMacro is one region's scored macro state. Built fresh on every
// snapshot rebuild and never mutated afterward.
type RegionMacro struct {
	Retail *RetailSales `json:"retail"`
	PMI    *PMI         `json:"pmi"`
	CPI    *CPI         `json:"cpi"`
	Score  int          `json:"score"`
	Bias   string       `json:"bias"`
}

// Snapshot is the full multi-region result plus its build timestamp.
// It is the unit of caching: one snapshot serves every caller for the
// whole TTL window, stale timestamp included.
type Snapshot struct {
	Regions     map[string]RegionMacro `json:"regions"`
	LastUpdated string                 `json:"last_updated"`
}

// Bias labels, keyed by score
const (
	BiasStrong     = "Strong macro, bullish bias"
	BiasSupportive = "Supportive macro, mild bullish bias"
	BiasNeutral    = "Neutral / mixed"
	BiasWeak       = "Weak macro, bearish bias"
)

func f64(v float64) *float64 { return &v }

package signals

// Instrument is one tradable symbol, mapped to its chart ticker and
// the macro region whose score feeds its combined rating
type Instrument struct {
	Symbol string
	Ticker string
	Region string
}

// DefaultInstruments is the dashboard's instrument table. Gold and
// silver ride the US macro score.
func DefaultInstruments() []Instrument {
	return []Instrument{
		{Symbol: "EURUSD", Ticker: "EURUSD=X", Region: "eurozone"},
		{Symbol: "GBPUSD", Ticker: "GBPUSD=X", Region: "uk"},
		{Symbol: "USDJPY", Ticker: "JPY=X", Region: "us"},
		{Symbol: "AUDUSD", Ticker: "AUDUSD=X", Region: "australia"},
		{Symbol: "NZDUSD", Ticker: "NZDUSD=X", Region: "new_zealand"},
		{Symbol: "USDCAD", Ticker: "CAD=X", Region: "canada"},
		{Symbol: "USDCHF", Ticker: "CHF=X", Region: "switzerland"},
		{Symbol: "XAUUSD", Ticker: "XAUUSD=X", Region: "us"},
		{Symbol: "XAGUSD", Ticker: "XAGUSD=X", Region: "us"},
	}
}

// Row is one scored line of the combined signal table
type Row struct {
	Symbol         string   `json:"symbol"`
	Trend          int      `json:"trend"`
	Momentum       int      `json:"momentum"`
	Macro          int      `json:"macro"`
	COT            int      `json:"cot"`
	Total          int      `json:"total"`
	Recommendation string   `json:"recommendation"`
	LastPrice      *float64 `json:"last_price"`
	Updated        string   `json:"updated"`
}

// Recommendation maps the combined 0-12 score to a display label
func Recommendation(total int) string {
	switch {
	case total >= 7:
		return "Strong Buy"
	case total >= 5:
		return "Buy"
	case total >= 3:
		return "Neutral"
	case total >= 1:
		return "Sell"
	default:
		return "Strong Sell"
	}
}

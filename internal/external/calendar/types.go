package calendar

import "context"

// RawEvent is one economic-calendar entry as extracted from the source.
// Values keep their source formatting ("0.5%", "51.2", "N/A");
// coercion into typed readings happens in internal/macro.
type RawEvent struct {
	Region      string // region key the event was fetched for
	Currency    string // currency code (json topology only)
	Name        string // free-text indicator name
	ActualRaw   string
	ForecastRaw string
	PreviousRaw string
	Timestamp   string // RFC3339 when the source provides one, else ""
}

// Fetcher returns the calendar events for one region.
// Implementations never surface errors: transport failures, bad status
// codes and malformed bodies all degrade to an empty slice, so one bad
// region cannot abort a snapshot build.
type Fetcher interface {
	Events(ctx context.Context, region Region) []RawEvent
}

// Region maps one economic area to its source locator.
// Path is used by the per-region HTML topology, Currency by the
// single-endpoint JSON topology. A Region with neither configured is
// still listed in snapshots but scores the neutral default.
type Region struct {
	Key      string
	Path     string
	Currency string
}

// Configured reports whether the region has any source locator
func (r Region) Configured() bool {
	return r.Path != "" || r.Currency != ""
}

// DefaultRegions is the region table served by the dashboard
func DefaultRegions() []Region {
	return []Region{
		{Key: "us", Path: "/united-states", Currency: "USD"},
		{Key: "eurozone", Path: "/euro-zone", Currency: "EUR"},
		{Key: "uk", Path: "/united-kingdom", Currency: "GBP"},
		{Key: "canada", Path: "/canada", Currency: "CAD"},
		{Key: "australia", Path: "/australia", Currency: "AUD"},
		{Key: "new_zealand", Path: "/new-zealand", Currency: "NZD"},
		{Key: "switzerland", Path: "/switzerland", Currency: "CHF"},
		{Key: "japan", Path: "/japan", Currency: "JPY"},
	}
}

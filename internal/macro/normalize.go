package macro

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/edgefinder/internal/external/calendar"
)

// Per-pillar keyword sets. Substring match, case-insensitive: the
// source names the same release a dozen ways ("Core Retail Sales",
// "Retail Sales (QoQ)", ...).
var (
	retailKeywords = []string{"retail sales", "retail sales (mom)", "core retail sales", "retail sales (qoq)"}
	pmiKeywords    = []string{"pmi", "manufacturing pmi", "services pmi", "composite pmi"}
	cpiKeywords    = []string{"cpi", "consumer price", "inflation", "inflation rate", "cpi (yoy)"}
)

var (
	percentValueRe = regexp.MustCompile(`([-+]?\d+\.\d+)\s*%`)
	plainValueRe   = regexp.MustCompile(`([-+]?\d+\.\d+)`)
)

// selectEvent picks the best candidate row for a pillar: filter by
// keyword, then newest timestamp first. Rows without a parsable
// timestamp sort as oldest rather than being skipped; ties keep
// first-encountered order.
func selectEvent(rows []calendar.RawEvent, keywords []string) *calendar.RawEvent {
	var matched []calendar.RawEvent
	for _, r := range rows {
		name := strings.ToLower(r.Name)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				matched = append(matched, r)
				break
			}
		}
	}

	if len(matched) == 0 {
		return nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return parseEventTime(matched[i].Timestamp).After(parseEventTime(matched[j].Timestamp))
	})

	return &matched[0]
}

// parseEventTime parses the source timestamp; anything unparsable
// (including absent) collapses to the zero time so it sorts oldest
func parseEventTime(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

// extractPercent pulls the first percent-formatted number out of raw
// cell text ("0.5%", "-0.2 %"). "N/A", "" and any other non-matching
// text coerce to nil, never zero.
func extractPercent(raw string) *float64 {
	if isAbsent(raw) {
		return nil
	}
	m := percentValueRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// extractPlain pulls the first plain decimal number ("51.2"), used for
// PMI which carries no percent suffix
func extractPlain(raw string) *float64 {
	if isAbsent(raw) {
		return nil
	}
	m := plainValueRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

func isAbsent(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "n/a")
}

// ParseRetailSales selects and normalizes the retail-sales pillar.
// Returns nil when no candidate row matched or every field coerced to
// absent.
func ParseRetailSales(rows []calendar.RawEvent) *RetailSales {
	r := selectEvent(rows, retailKeywords)
	if r == nil {
		return nil
	}

	reading := &RetailSales{
		Actual:   extractPercent(r.ActualRaw),
		Forecast: extractPercent(r.ForecastRaw),
		Previous: extractPercent(r.PreviousRaw),
	}

	if reading.Actual == nil && reading.Forecast == nil && reading.Previous == nil {
		return nil
	}
	return reading
}

// ParsePMI selects and normalizes the PMI pillar
func ParsePMI(rows []calendar.RawEvent) *PMI {
	r := selectEvent(rows, pmiKeywords)
	if r == nil {
		return nil
	}

	reading := &PMI{
		Current:  extractPlain(r.ActualRaw),
		Previous: extractPlain(r.PreviousRaw),
	}

	if reading.Current == nil && reading.Previous == nil {
		return nil
	}
	return reading
}

// ParseCPI selects and normalizes the CPI pillar, treated as YoY
func ParseCPI(rows []calendar.RawEvent) *CPI {
	r := selectEvent(rows, cpiKeywords)
	if r == nil {
		return nil
	}

	reading := &CPI{
		ActualYoY:   extractPercent(r.ActualRaw),
		ForecastYoY: extractPercent(r.ForecastRaw),
		PreviousYoY: extractPercent(r.PreviousRaw),
	}

	if reading.ActualYoY == nil && reading.ForecastYoY == nil && reading.PreviousYoY == nil {
		return nil
	}
	return reading
}

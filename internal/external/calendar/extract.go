package calendar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// indicatorKeywords filters calendar rows down to the three pillars we
// score (Retail Sales, PMI, CPI). Case-insensitive substring match.
var indicatorKeywords = []string{
	"retail sales",
	"pmi",
	"cpi",
	"consumer price",
	"inflation",
}

var (
	percentRe = regexp.MustCompile(`[-+]?\d+\.\d+\s*%`)
)

// blockScanWindow is how far past a keyword hit the degraded fallback
// scans for percent tokens. Matches the source layout we have observed;
// see blockScan.
const blockScanWindow = 400

// matchesKeyword reports whether an indicator name mentions any pillar
func matchesKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range indicatorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cleanText collapses runs of whitespace the way the source pads cells
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseCalendarTable extracts candidate rows from the calendar HTML.
//
// Primary strategy: scan table rows with at least 4 cells and treat
// cell[1] as the indicator name, cells[2..4] as actual/forecast/previous.
// When the table scan yields nothing (the source reshuffles its markup
// periodically) we fall back to blockScan.
func parseCalendarTable(html, region string) []RawEvent {
	if html == "" {
		return nil
	}

	var rows []RawEvent

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() < 4 {
				return
			}

			// Column guess: [time, event name, actual, forecast, previous, ...]
			name := cleanText(cells.Eq(1).Text())
			if !matchesKeyword(name) {
				return
			}

			ev := RawEvent{
				Region:      region,
				Name:        name,
				ActualRaw:   cleanText(cells.Eq(2).Text()),
				ForecastRaw: cleanText(cells.Eq(3).Text()),
			}
			if cells.Length() > 4 {
				ev.PreviousRaw = cleanText(cells.Eq(4).Text())
			}
			rows = append(rows, ev)
		})
	}

	if len(rows) == 0 {
		rows = blockScan(html, region)
	}

	return rows
}

// blockScan is the degraded fallback when no table rows survive: for
// each keyword's first occurrence it slices a fixed window of raw HTML
// and pulls up to three percent tokens as actual/forecast/previous, in
// window order. This is inherently lossy since it trusts the source to
// lay the three figures out left to right; it exists so a markup drift
// degrades the reading instead of blanking it.
//
// Both the index and the window slice use the case-folded copy: folding
// can change byte lengths (e.g. U+0130), so offsets into it must not be
// applied to the original. The percent tokens survive folding unchanged.
func blockScan(html, region string) []RawEvent {
	lower := strings.ToLower(html)

	var rows []RawEvent
	for _, kw := range []string{"retail sales", "pmi", "cpi", "consumer price"} {
		idx := strings.Index(lower, kw)
		if idx == -1 {
			continue
		}

		end := idx + blockScanWindow
		if end > len(lower) {
			end = len(lower)
		}
		block := lower[idx:end]

		percents := percentRe.FindAllString(block, 3)

		ev := RawEvent{Region: region, Name: kw}
		if len(percents) > 0 {
			ev.ActualRaw = percents[0]
		}
		if len(percents) > 1 {
			ev.ForecastRaw = percents[1]
		}
		if len(percents) > 2 {
			ev.PreviousRaw = percents[2]
		}
		rows = append(rows, ev)
	}

	return rows
}

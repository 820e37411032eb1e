package calendar

import (
	"strings"
	"testing"
)

const calendarHTML = `
<html><body><table>
<tr><td>08:30</td><td>Retail Sales (MoM)</td><td>0.5%</td><td>0.2%</td><td>0.3%</td></tr>
<tr><td>09:00</td><td>Manufacturing PMI</td><td>51.2</td><td>50.8</td><td>50.1</td></tr>
<tr><td>10:00</td><td>CPI (YoY)</td><td>3.4%</td><td>3.2%</td><td>3.1%</td></tr>
<tr><td>11:00</td><td>Trade Balance</td><td>-1.2B</td><td>-1.0B</td><td>-0.9B</td></tr>
<tr><td>12:00</td><td>GDP (QoQ)</td><td>0.4%</td></tr>
</table></body></html>`

func TestParseCalendarTable(t *testing.T) {
	rows := parseCalendarTable(calendarHTML, "us")

	// Trade Balance filtered out, GDP row too short, 3 pillar rows kept
	if len(rows) != 3 {
		t.Fatalf("parseCalendarTable() got %d rows, want 3", len(rows))
	}

	retail := rows[0]
	if retail.Name != "Retail Sales (MoM)" {
		t.Errorf("Name = %q, want Retail Sales (MoM)", retail.Name)
	}
	if retail.ActualRaw != "0.5%" || retail.ForecastRaw != "0.2%" || retail.PreviousRaw != "0.3%" {
		t.Errorf("Retail cells = %q/%q/%q, want 0.5%%/0.2%%/0.3%%",
			retail.ActualRaw, retail.ForecastRaw, retail.PreviousRaw)
	}
	if retail.Region != "us" {
		t.Errorf("Region = %q, want us", retail.Region)
	}

	pmi := rows[1]
	if pmi.ActualRaw != "51.2" || pmi.PreviousRaw != "50.1" {
		t.Errorf("PMI cells = %q/%q, want 51.2/50.1", pmi.ActualRaw, pmi.PreviousRaw)
	}
}

func TestParseCalendarTableFourCells(t *testing.T) {
	// Rows with exactly 4 cells still extract, previous stays empty
	html := `<table><tr><td>08:30</td><td>Core CPI</td><td>0.3%</td><td>0.2%</td></tr></table>`

	rows := parseCalendarTable(html, "uk")
	if len(rows) != 1 {
		t.Fatalf("parseCalendarTable() got %d rows, want 1", len(rows))
	}
	if rows[0].PreviousRaw != "" {
		t.Errorf("PreviousRaw = %q, want empty", rows[0].PreviousRaw)
	}
}

func TestParseCalendarTableEmptyInput(t *testing.T) {
	if rows := parseCalendarTable("", "us"); rows != nil {
		t.Errorf("parseCalendarTable(\"\") = %v, want nil", rows)
	}
}

func TestBlockScanFallback(t *testing.T) {
	// No <tr> structure at all: the fallback slices windows after each
	// keyword and pulls percent tokens in order
	html := `<div>Retail Sales came in at 0.7% versus 0.2% expected, prior 0.3%.</div>
<div>CPI printed 3.5% against 3.0% consensus.</div>`

	rows := parseCalendarTable(html, "eurozone")

	var retail, cpi *RawEvent
	for i := range rows {
		switch rows[i].Name {
		case "retail sales":
			retail = &rows[i]
		case "cpi":
			cpi = &rows[i]
		}
	}

	if retail == nil {
		t.Fatal("blockScan found no retail sales row")
	}
	if retail.ActualRaw != "0.7%" || retail.ForecastRaw != "0.2%" || retail.PreviousRaw != "0.3%" {
		t.Errorf("retail = %q/%q/%q, want 0.7%%/0.2%%/0.3%%",
			retail.ActualRaw, retail.ForecastRaw, retail.PreviousRaw)
	}

	if cpi == nil {
		t.Fatal("blockScan found no cpi row")
	}
	if cpi.ActualRaw != "3.5%" || cpi.ForecastRaw != "3.0%" {
		t.Errorf("cpi = %q/%q, want 3.5%%/3.0%%", cpi.ActualRaw, cpi.ForecastRaw)
	}
	if cpi.PreviousRaw != "" {
		t.Errorf("cpi previous = %q, want empty (only two tokens in window)", cpi.PreviousRaw)
	}
}

func TestBlockScanWindowLimit(t *testing.T) {
	// A percent token past the 400-char window must not be picked up
	html := "PMI data release" + strings.Repeat(" filler", 80) + " 48.5% late token"

	rows := blockScan(html, "us")
	if len(rows) != 1 {
		t.Fatalf("blockScan() got %d rows, want 1", len(rows))
	}
	if rows[0].ActualRaw != "" {
		t.Errorf("ActualRaw = %q, want empty (token outside window)", rows[0].ActualRaw)
	}
}

func TestBlockScanMultibyteCaseFolding(t *testing.T) {
	// U+023A is 2 bytes but its lowercase U+2C65 is 3, so offsets into
	// the folded text drift past the end of the original. The scan must
	// stay self-consistent.
	html := strings.Repeat("Ⱥ", 300) + "Retail Sales came in at 0.7% versus 0.2% expected."

	rows := blockScan(html, "us")
	if len(rows) != 1 {
		t.Fatalf("blockScan() got %d rows, want 1", len(rows))
	}
	if rows[0].ActualRaw != "0.7%" || rows[0].ForecastRaw != "0.2%" {
		t.Errorf("blockScan() = %q/%q, want 0.7%%/0.2%%", rows[0].ActualRaw, rows[0].ForecastRaw)
	}
}

func TestMatchesKeyword(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Retail Sales (MoM)", true},
		{"Core Retail Sales", true},
		{"Services PMI", true},
		{"CPI (YoY)", true},
		{"Consumer Price Index", true},
		{"Inflation Rate YoY", true},
		{"Trade Balance", false},
		{"Unemployment Rate", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesKeyword(tt.name); got != tt.want {
				t.Errorf("matchesKeyword(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

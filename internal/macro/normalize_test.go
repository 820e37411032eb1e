package macro

import (
	"testing"

	"github.com/wonny/edgefinder/internal/external/calendar"
)

func TestExtractPercent(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"0.7%", f64(0.7)},
		{"-0.5%", f64(-0.5)},
		{"+1.2 %", f64(1.2)},
		{"CPI came in at 3.4% this month", f64(3.4)},
		{"N/A", nil},
		{"n/a", nil},
		{"", nil},
		{"   ", nil},
		{"pending", nil},
		{"51.2", nil}, // no percent suffix
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := extractPercent(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("extractPercent(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("extractPercent(%q) = %v, want %v", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestExtractPlain(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"51.2", f64(51.2)},
		{"-0.5", f64(-0.5)},
		{"48.9 (prelim)", f64(48.9)},
		{"N/A", nil},
		{"", nil},
		{"no release", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := extractPlain(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("extractPlain(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("extractPlain(%q) = %v, want %v", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestSelectEventNewestFirst(t *testing.T) {
	rows := []calendar.RawEvent{
		{Name: "Manufacturing PMI", ActualRaw: "49.0", Timestamp: "2025-01-01"},
		{Name: "Services PMI", ActualRaw: "52.5", Timestamp: "2025-02-01"},
	}

	got := selectEvent(rows, pmiKeywords)
	if got == nil {
		t.Fatal("selectEvent() = nil, want the February row")
	}
	if got.Name != "Services PMI" {
		t.Errorf("selectEvent() picked %q, want the newer Services PMI", got.Name)
	}
}

func TestSelectEventUnparsableTimestampSortsOldest(t *testing.T) {
	rows := []calendar.RawEvent{
		{Name: "CPI (YoY)", ActualRaw: "3.1%", Timestamp: "not a date"},
		{Name: "Core CPI", ActualRaw: "3.4%", Timestamp: "2025-02-01T10:00:00Z"},
	}

	got := selectEvent(rows, cpiKeywords)
	if got == nil || got.Name != "Core CPI" {
		t.Fatalf("selectEvent() = %v, want the dated Core CPI row", got)
	}
}

func TestSelectEventTieKeepsInputOrder(t *testing.T) {
	rows := []calendar.RawEvent{
		{Name: "Retail Sales (MoM)", ActualRaw: "0.5%"},
		{Name: "Core Retail Sales", ActualRaw: "0.3%"},
	}

	got := selectEvent(rows, retailKeywords)
	if got == nil || got.Name != "Retail Sales (MoM)" {
		t.Fatalf("selectEvent() = %v, want first-encountered row on tie", got)
	}
}

func TestSelectEventNoMatch(t *testing.T) {
	rows := []calendar.RawEvent{
		{Name: "Trade Balance", ActualRaw: "-1.2B"},
	}
	if got := selectEvent(rows, retailKeywords); got != nil {
		t.Errorf("selectEvent() = %v, want nil", got)
	}
}

func TestParseRetailSales(t *testing.T) {
	rows := []calendar.RawEvent{
		{Name: "Retail Sales (MoM)", ActualRaw: "0.7%", ForecastRaw: "0.2%", PreviousRaw: "0.3%"},
	}

	got := ParseRetailSales(rows)
	if got == nil {
		t.Fatal("ParseRetailSales() = nil")
	}
	if *got.Actual != 0.7 || *got.Forecast != 0.2 || *got.Previous != 0.3 {
		t.Errorf("ParseRetailSales() = %+v", got)
	}
}

func TestParseRetailSalesAllAbsentCollapses(t *testing.T) {
	// A matching row whose every value coerces to absent must be
	// reported as no reading, not a zero-valued object
	rows := []calendar.RawEvent{
		{Name: "Retail Sales (MoM)", ActualRaw: "N/A", ForecastRaw: "", PreviousRaw: "tbd"},
	}

	if got := ParseRetailSales(rows); got != nil {
		t.Errorf("ParseRetailSales() = %+v, want nil", got)
	}
}

func TestParsePMIPlainNumbers(t *testing.T) {
	rows := []calendar.RawEvent{
		{Name: "Manufacturing PMI", ActualRaw: "51.2", PreviousRaw: "50.1"},
	}

	got := ParsePMI(rows)
	if got == nil {
		t.Fatal("ParsePMI() = nil")
	}
	if *got.Current != 51.2 || *got.Previous != 50.1 {
		t.Errorf("ParsePMI() = %+v", got)
	}
}

func TestParseCPIPartialFields(t *testing.T) {
	// One present field is enough to keep the reading
	rows := []calendar.RawEvent{
		{Name: "Inflation Rate YoY", ActualRaw: "2.4%", ForecastRaw: "N/A", PreviousRaw: ""},
	}

	got := ParseCPI(rows)
	if got == nil {
		t.Fatal("ParseCPI() = nil")
	}
	if *got.ActualYoY != 2.4 {
		t.Errorf("ActualYoY = %v, want 2.4", *got.ActualYoY)
	}
	if got.ForecastYoY != nil || got.PreviousYoY != nil {
		t.Errorf("ParseCPI() = %+v, want nil forecast/previous", got)
	}
}

func TestParseCPINoRows(t *testing.T) {
	if got := ParseCPI(nil); got != nil {
		t.Errorf("ParseCPI(nil) = %+v, want nil", got)
	}
}

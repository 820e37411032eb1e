package commands

import (
	"fmt"

	"github.com/wonny/edgefinder/internal/macro"
)

// formatPct renders an optional percentage value
func formatPct(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// formatRetail renders "actual vs forecast / previous"
func formatRetail(r *macro.RetailSales) string {
	if r == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s vs %s / %s", formatPct(r.Actual), formatPct(r.Forecast), formatPct(r.Previous))
}

// formatPMI renders "current (prev previous)"
func formatPMI(p *macro.PMI) string {
	if p == nil || p.Current == nil {
		return "N/A"
	}
	if p.Previous == nil {
		return fmt.Sprintf("%.1f", *p.Current)
	}
	return fmt.Sprintf("%.1f (prev %.1f)", *p.Current, *p.Previous)
}

// formatCPI renders "actual (fcst forecast)"
func formatCPI(c *macro.CPI) string {
	if c == nil || c.ActualYoY == nil {
		return "N/A"
	}
	if c.ForecastYoY == nil {
		return fmt.Sprintf("%.2f%%", *c.ActualYoY)
	}
	return fmt.Sprintf("%.2f%% (fcst %.2f%%)", *c.ActualYoY, *c.ForecastYoY)
}

// formatPrice renders an optional last price
func formatPrice(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *v)
}

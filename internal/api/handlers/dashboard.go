package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/wonny/edgefinder/internal/macro"
	"github.com/wonny/edgefinder/internal/signals"
	"github.com/wonny/edgefinder/pkg/logger"
)

// regionLabels is the macro page display order
var regionLabels = []struct {
	Key   string
	Label string
}{
	{"eurozone", "Eurozone"},
	{"uk", "United Kingdom"},
	{"us", "United States"},
	{"canada", "Canada"},
	{"australia", "Australia"},
	{"new_zealand", "New Zealand"},
	{"switzerland", "Switzerland"},
	{"japan", "Japan"},
}

// DashboardHandler renders the HTML dashboard pages
type DashboardHandler struct {
	macroSvc *macro.Service
	builder  *signals.Builder
	logger   *logger.Logger

	signalsTmpl *template.Template
	macroTmpl   *template.Template
}

// NewDashboardHandler creates a dashboard handler with parsed templates
func NewDashboardHandler(macroSvc *macro.Service, builder *signals.Builder, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		macroSvc:    macroSvc,
		builder:     builder,
		logger:      log,
		signalsTmpl: template.Must(template.New("signals").Parse(signalsPage)),
		macroTmpl:   template.Must(template.New("macro").Parse(macroPage)),
	}
}

// Signals renders the combined signal table
// GET /
func (h *DashboardHandler) Signals(w http.ResponseWriter, r *http.Request) {
	rows := h.builder.Build(r.Context(), signals.DefaultInstruments())

	type viewRow struct {
		signals.Row
		Price string
	}

	view := struct {
		Rows []viewRow
	}{}
	for _, row := range rows {
		price := "N/A"
		if row.LastPrice != nil {
			price = fmt.Sprintf("%.4f", *row.LastPrice)
		}
		view.Rows = append(view.Rows, viewRow{Row: row, Price: price})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.signalsTmpl.Execute(w, view); err != nil {
		h.logger.WithError(err).Error("Signals page render failed")
	}
}

// Macro renders the per-region macro table
// GET /macro
func (h *DashboardHandler) Macro(w http.ResponseWriter, r *http.Request) {
	snapshot := h.macroSvc.Get(r.Context())

	type viewRow struct {
		Label  string
		Retail string
		PMI    string
		CPI    string
		Score  int
		Bias   string
	}

	view := struct {
		LastUpdated string
		Rows        []viewRow
	}{LastUpdated: snapshot.LastUpdated}

	for _, rl := range regionLabels {
		rm, ok := snapshot.Regions[rl.Key]
		if !ok {
			rm = macro.RegionMacro{Score: 1, Bias: macro.BiasNeutral}
		}
		view.Rows = append(view.Rows, viewRow{
			Label:  rl.Label,
			Retail: fmtRetail(rm.Retail),
			PMI:    fmtPMI(rm.PMI),
			CPI:    fmtCPI(rm.CPI),
			Score:  rm.Score,
			Bias:   rm.Bias,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.macroTmpl.Execute(w, view); err != nil {
		h.logger.WithError(err).Error("Macro page render failed")
	}
}

// fmtRetail renders "0.70% vs 0.20% / 0.30% ✓"
func fmtRetail(r *macro.RetailSales) string {
	if r == nil {
		return "N/A"
	}

	mark := "–"
	if r.Actual != nil {
		switch {
		case r.Forecast != nil && *r.Actual > *r.Forecast:
			mark = "✓"
		case r.Previous != nil && *r.Actual > *r.Previous:
			mark = "✓"
		case r.Previous != nil && *r.Actual < *r.Previous:
			mark = "✗"
		}
	}

	return fmt.Sprintf("%s vs %s / %s %s", fmtPct(r.Actual), fmtPct(r.Forecast), fmtPct(r.Previous), mark)
}

// fmtPMI renders "51.2 ↑ ✓" (direction vs previous, expansion flag)
func fmtPMI(p *macro.PMI) string {
	if p == nil || p.Current == nil {
		return "N/A"
	}

	arrow := "↔"
	if p.Previous != nil {
		if *p.Current > *p.Previous {
			arrow = "↑"
		} else if *p.Current < *p.Previous {
			arrow = "↓"
		}
	}

	flag := "✗"
	if *p.Current >= 50 {
		flag = "✓"
	}

	return fmt.Sprintf("%.1f %s %s", *p.Current, arrow, flag)
}

// fmtCPI renders "3.40% ▲" (hot/cool vs forecast)
func fmtCPI(c *macro.CPI) string {
	if c == nil || c.ActualYoY == nil {
		return "N/A"
	}

	mark := ""
	if c.ForecastYoY != nil {
		switch {
		case *c.ActualYoY > *c.ForecastYoY:
			mark = " ▲"
		case *c.ActualYoY < *c.ForecastYoY:
			mark = " ▼"
		default:
			mark = " ↔"
		}
	}

	return fmt.Sprintf("%.2f%%%s", *c.ActualYoY, mark)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

const pageStyle = `
body { font-family: sans-serif; background: #111; color: #eee; margin: 2rem; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; }
th { background: #1e1e1e; color: white; text-align: left; }
th, td { padding: 6px 10px; border-bottom: 1px solid #333; }
.score-3 { background-color: #2ecc71; color: white; }
.score-2 { background-color: #f1c40f; color: black; }
.score-1 { background-color: #bdc3c7; color: black; }
.score-0 { background-color: #e74c3c; color: white; }
.caption { color: #888; font-size: 0.85rem; margin-top: 1rem; }
nav a { color: #6cf; margin-right: 1rem; }
`

const signalsPage = `<!DOCTYPE html>
<html><head><title>EdgeFinder - Signals</title><style>` + pageStyle + `</style></head>
<body>
<nav><a href="/">Signals</a><a href="/macro">Macro</a></nav>
<h1>EdgeFinder - Signals</h1>
<table>
<tr><th>Symbol</th><th>Trend (0-3)</th><th>Momentum (0-3)</th><th>Macro (0-3)</th><th>COT (0-3)</th><th>Total (0-12)</th><th>Recommendation</th><th>Last Price</th><th>Updated</th></tr>
{{range .Rows}}
<tr>
<td>{{.Symbol}}</td>
<td>{{.Trend}}</td>
<td>{{.Momentum}}</td>
<td class="score-{{.Macro}}">{{.Macro}}</td>
<td>{{.COT}}</td>
<td>{{.Total}}</td>
<td>{{.Recommendation}}</td>
<td>{{.Price}}</td>
<td>{{.Updated}}</td>
</tr>
{{end}}
</table>
<p class="caption">Macro (0-3) is live Retail Sales / PMI / CPI for the instrument's region. COT (0-3) is a placeholder for now.</p>
</body></html>`

const macroPage = `<!DOCTYPE html>
<html><head><title>EdgeFinder - Macro Dashboard</title><style>` + pageStyle + `</style></head>
<body>
<nav><a href="/">Signals</a><a href="/macro">Macro</a></nav>
<h1>Macro Dashboard</h1>
<p class="caption">Last updated: {{.LastUpdated}}</p>
<table>
<tr><th>Region</th><th>Retail Sales (m/m)</th><th>PMI</th><th>CPI YoY</th><th>Macro Score (0-3)</th><th>Bias</th></tr>
{{range .Rows}}
<tr>
<td>{{.Label}}</td>
<td>{{.Retail}}</td>
<td>{{.PMI}}</td>
<td>{{.CPI}}</td>
<td class="score-{{.Score}}">{{.Score}}</td>
<td>{{.Bias}}</td>
</tr>
{{end}}
</table>
</body></html>`

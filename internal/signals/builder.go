package signals

import (
	"context"
	"sort"

	"github.com/wonny/edgefinder/internal/external/yahoo"
	"github.com/wonny/edgefinder/internal/macro"
	"github.com/wonny/edgefinder/pkg/logger"
)

// cotPlaceholder stands in for the COT positioning score until the
// CFTC feed is wired up
const cotPlaceholder = 1

// PriceSource supplies daily candles for an instrument
type PriceSource interface {
	FetchDaily(ctx context.Context, ticker, rng string) ([]yahoo.Candle, error)
}

// Builder assembles the combined signal table: trend + momentum from
// price history, macro from the snapshot service, COT placeholder.
// ⭐ SSOT: combined-score assembly happens only here.
type Builder struct {
	prices PriceSource
	macro  *macro.Service
	logger *logger.Logger
	rng    string
}

// NewBuilder creates a signal table builder
func NewBuilder(prices PriceSource, macroSvc *macro.Service, log *logger.Logger) *Builder {
	return &Builder{
		prices: prices,
		macro:  macroSvc,
		logger: log,
		rng:    "6mo",
	}
}

// Build scores every instrument and returns rows sorted by total,
// best first. Price failures degrade that instrument to neutral
// trend/momentum instead of dropping the row.
func (b *Builder) Build(ctx context.Context, instruments []Instrument) []Row {
	snapshot := b.macro.Get(ctx)

	rows := make([]Row, 0, len(instruments))
	for _, inst := range instruments {
		rows = append(rows, b.buildRow(ctx, inst, snapshot))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	return rows
}

// buildRow scores one instrument
func (b *Builder) buildRow(ctx context.Context, inst Instrument, snapshot macro.Snapshot) Row {
	candles, err := b.prices.FetchDaily(ctx, inst.Ticker, b.rng)
	if err != nil {
		b.logger.WithError(err).WithField("symbol", inst.Symbol).Warn("Price fetch failed, scoring neutral")
		candles = nil
	}

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	trend := ScoreTrend(closes)
	momentum := ScoreMomentum(closes)

	// Unknown region falls back to the neutral default, same as an
	// unconfigured one
	macroScore := 1
	if rm, ok := snapshot.Regions[inst.Region]; ok {
		macroScore = rm.Score
	}

	total := trend + momentum + macroScore + cotPlaceholder

	row := Row{
		Symbol:         inst.Symbol,
		Trend:          trend,
		Momentum:       momentum,
		Macro:          macroScore,
		COT:            cotPlaceholder,
		Total:          total,
		Recommendation: Recommendation(total),
	}

	if len(candles) > 0 {
		last := candles[len(candles)-1]
		price := last.Close
		row.LastPrice = &price
		row.Updated = last.Date.Format("2006-01-02")
	}

	return row
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/edgefinder/internal/external/yahoo"
	"github.com/wonny/edgefinder/internal/signals"
	"github.com/wonny/edgefinder/pkg/config"
	"github.com/wonny/edgefinder/pkg/httputil"
	"github.com/wonny/edgefinder/pkg/logger"
)

// signalsCmd represents the signals command
var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Print the combined signal table",
	Long: `Builds the combined signal table and prints it, best score first.

Each instrument shows:
- Trend score (price vs 50/200-day moving averages)
- Momentum score (14-day RSI)
- Macro score (region Retail Sales / PMI / CPI)
- Total and recommendation

Example:
  go run ./cmd/edgefinder signals`,
	RunE: runSignals,
}

func init() {
	rootCmd.AddCommand(signalsCmd)
}

func runSignals(cmd *cobra.Command, args []string) error {
	fmt.Println("=== EdgeFinder Signals ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	macroService, err := newMacroService(cfg, log)
	if err != nil {
		return fmt.Errorf("create macro service: %w", err)
	}

	yahooHTTP := httputil.NewWithTimeout(log, cfg.Yahoo.Timeout)
	yahooClient := yahoo.NewClient(yahooHTTP, log, cfg.Yahoo.BaseURL)
	prices := yahoo.NewCachedClient(yahooClient, cfg.Macro.PriceTTL, log)

	builder := signals.NewBuilder(prices, macroService, log)

	fmt.Println("Fetching prices and calendar data...")
	rows := builder.Build(context.Background(), signals.DefaultInstruments())

	fmt.Printf("\n%-10s %-6s %-9s %-6s %-4s %-6s %-12s %-12s %s\n",
		"Symbol", "Trend", "Momentum", "Macro", "COT", "Total", "Signal", "Last Price", "Updated")
	fmt.Println("──────────────────────────────────────────────────────────────────────────────────────")

	for _, row := range rows {
		fmt.Printf("%-10s %-6d %-9d %-6d %-4d %-6d %-12s %-12s %s\n",
			row.Symbol,
			row.Trend,
			row.Momentum,
			row.Macro,
			row.COT,
			row.Total,
			row.Recommendation,
			formatPrice(row.LastPrice),
			row.Updated,
		)
	}

	return nil
}

package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wonny/edgefinder/pkg/config"
	"github.com/wonny/edgefinder/pkg/logger"
)

// macroCmd represents the macro command
var macroCmd = &cobra.Command{
	Use:   "macro",
	Short: "Print the macro snapshot",
	Long: `Builds a fresh macro snapshot and prints the per-region table.

Each region shows:
- Retail Sales (actual vs forecast / previous)
- PMI (current and previous)
- CPI YoY (actual and forecast)
- Score (0-3) and bias

Example:
  go run ./cmd/edgefinder macro`,
	RunE: runMacro,
}

func init() {
	rootCmd.AddCommand(macroCmd)
}

func runMacro(cmd *cobra.Command, args []string) error {
	fmt.Println("=== EdgeFinder Macro Snapshot ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	service, err := newMacroService(cfg, log)
	if err != nil {
		return fmt.Errorf("create macro service: %w", err)
	}

	fmt.Println("Fetching calendar data for all regions...")
	snapshot := service.Get(context.Background())

	keys := make([]string, 0, len(snapshot.Regions))
	for key := range snapshot.Regions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("\nLast updated: %s\n\n", snapshot.LastUpdated)
	fmt.Printf("%-14s %-28s %-20s %-22s %-6s %s\n", "Region", "Retail Sales", "PMI", "CPI YoY", "Score", "Bias")
	fmt.Println("─────────────────────────────────────────────────────────────────────────────────────────────────────────")

	for _, key := range keys {
		rm := snapshot.Regions[key]
		fmt.Printf("%-14s %-28s %-20s %-22s %-6d %s\n",
			key,
			formatRetail(rm.Retail),
			formatPMI(rm.PMI),
			formatCPI(rm.CPI),
			rm.Score,
			rm.Bias,
		)
	}

	return nil
}

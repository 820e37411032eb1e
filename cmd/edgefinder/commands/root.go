package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edgefinder",
	Short: "EdgeFinder - macro snapshot and signal dashboard",
	Long: `EdgeFinder CLI

Fetches economic-calendar releases (Retail Sales, PMI, CPI) per region,
scores them into a 0-3 macro bias, and combines the result with trend
and momentum scores into a per-instrument signal table.

Usage:
  go run ./cmd/edgefinder [command]

Examples:
  go run ./cmd/edgefinder api
  go run ./cmd/edgefinder macro
  go run ./cmd/edgefinder signals`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

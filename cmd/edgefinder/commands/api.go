package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/edgefinder/internal/api"
	"github.com/wonny/edgefinder/internal/api/handlers"
	"github.com/wonny/edgefinder/internal/external/yahoo"
	"github.com/wonny/edgefinder/internal/scheduler"
	"github.com/wonny/edgefinder/internal/scheduler/jobs"
	"github.com/wonny/edgefinder/internal/signals"
	"github.com/wonny/edgefinder/pkg/config"
	"github.com/wonny/edgefinder/pkg/httputil"
	"github.com/wonny/edgefinder/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the dashboard server",
	Long: `Starts the HTTP dashboard and API server.

This command:
- Serves the signal table and macro dashboard pages
- Exposes the JSON API
- Runs the snapshot refresh scheduler

Endpoints:
  GET  /                   - Combined signal table
  GET  /macro              - Macro dashboard
  GET  /health             - Health check
  GET  /api/macro          - Macro snapshot (JSON)
  POST /api/macro/refresh  - Force snapshot rebuild
  GET  /api/signals        - Signal table (JSON)

Example:
  go run ./cmd/edgefinder api
  go run ./cmd/edgefinder api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "dashboard server port")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== EdgeFinder Dashboard Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port":          cfg.Port,
		"env":           cfg.Env,
		"calendar_mode": cfg.Calendar.Mode,
	}).Info("Initializing dashboard server")

	// 3. Create macro snapshot service
	macroService, err := newMacroService(cfg, log)
	if err != nil {
		return fmt.Errorf("create macro service: %w", err)
	}

	// 4. Create price source
	yahooHTTP := httputil.NewWithTimeout(log, cfg.Yahoo.Timeout)
	yahooClient := yahoo.NewClient(yahooHTTP, log, cfg.Yahoo.BaseURL)
	prices := yahoo.NewCachedClient(yahooClient, cfg.Macro.PriceTTL, log)

	// 5. Create signal builder
	builder := signals.NewBuilder(prices, macroService, log)

	// 6. Create handlers
	macroHandler := handlers.NewMacroHandler(macroService, log)
	signalsHandler := handlers.NewSignalsHandler(builder, log)
	dashboard := handlers.NewDashboardHandler(macroService, builder, log)

	// 7. Create router
	router := api.NewRouter(macroHandler, signalsHandler, dashboard, log)

	// 8. Create server
	server := api.New(cfg, log, router)

	// 9. Create scheduler with the refresh job
	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewMacroRefreshJob(macroService, log)); err != nil {
		return fmt.Errorf("add refresh job: %w", err)
	}
	sched.Start()

	// 10. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("Dashboard server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /")
	fmt.Println("  GET  /macro")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/macro")
	fmt.Println("  POST /api/macro/refresh")
	fmt.Println("  GET  /api/signals")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	sched.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

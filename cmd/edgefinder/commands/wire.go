package commands

import (
	"fmt"

	"github.com/wonny/edgefinder/internal/external/calendar"
	"github.com/wonny/edgefinder/internal/macro"
	"github.com/wonny/edgefinder/pkg/config"
	"github.com/wonny/edgefinder/pkg/httputil"
	"github.com/wonny/edgefinder/pkg/logger"
)

// newCalendarFetcher builds the calendar fetcher selected by CALENDAR_MODE.
// The fetcher never retries: a region that fails to scrape is reported as
// having no releases, not re-requested. Requests are throttled to one per
// second so the sequential region scrape stays polite.
func newCalendarFetcher(cfg *config.Config, log *logger.Logger) (calendar.Fetcher, error) {
	client := httputil.NewWithTimeout(log, cfg.Calendar.Timeout).
		DisableRetry().
		WithRateLimit(1, 1)

	switch cfg.Calendar.Mode {
	case "html":
		return calendar.NewHTMLFetcher(client, log, cfg.Calendar.BaseURL), nil
	case "json":
		return calendar.NewJSONFetcher(client, log, cfg.Calendar.JSONURL), nil
	default:
		return nil, fmt.Errorf("unknown calendar mode: %s", cfg.Calendar.Mode)
	}
}

// newMacroService builds the snapshot service over the configured fetcher
func newMacroService(cfg *config.Config, log *logger.Logger) (*macro.Service, error) {
	fetcher, err := newCalendarFetcher(cfg, log)
	if err != nil {
		return nil, err
	}

	return macro.NewService(fetcher, calendar.DefaultRegions(), cfg.Macro.SnapshotTTL, log), nil
}

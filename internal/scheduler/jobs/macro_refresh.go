package jobs

import (
	"context"

	"github.com/wonny/edgefinder/internal/macro"
	"github.com/wonny/edgefinder/pkg/logger"
)

// MacroRefreshJob warms the macro snapshot cache on a schedule so
// the first dashboard hit after expiry doesn't pay for the full
// sequential region scrape
type MacroRefreshJob struct {
	service *macro.Service
	logger  *logger.Logger
}

// NewMacroRefreshJob creates a new macro refresh job
func NewMacroRefreshJob(service *macro.Service, log *logger.Logger) *MacroRefreshJob {
	return &MacroRefreshJob{
		service: service,
		logger:  log,
	}
}

// Name returns the job name
func (j *MacroRefreshJob) Name() string {
	return "macro_refresh"
}

// Schedule returns the cron schedule (every 12 hours, aligned with
// the snapshot TTL)
func (j *MacroRefreshJob) Schedule() string {
	return "0 0 */12 * * *"
}

// Run rebuilds the macro snapshot
func (j *MacroRefreshJob) Run(ctx context.Context) error {
	snapshot := j.service.Refresh(ctx)

	j.logger.WithFields(map[string]interface{}{
		"regions":      len(snapshot.Regions),
		"last_updated": snapshot.LastUpdated,
	}).Info("Macro snapshot refreshed")

	return nil
}

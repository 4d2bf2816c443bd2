package scheduler

import (
	"context"
	"time"

	"github.com/featherwood/featherwood-backend/internal/spreadsheet"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

const exportTimeout = 2 * time.Minute

// LeadExportScheduler periodically overwrites a workbook of all
// consultation requests so the sales team always has a fresh sheet.
type LeadExportScheduler struct {
	cron     *cron.Cron
	schedule string
	location string
	source   spreadsheet.LeadSource
	dest     spreadsheet.DocumentWriter
}

func NewLeadExportScheduler(schedule, location string, source spreadsheet.LeadSource, dest spreadsheet.DocumentWriter) *LeadExportScheduler {
	return &LeadExportScheduler{
		cron:     cron.New(),
		schedule: schedule,
		location: location,
		source:   source,
		dest:     dest,
	}
}

// Start registers the job and starts the cron runner. An invalid
// schedule is returned and nothing is started.
func (s *LeadExportScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.RunOnce)
	if err != nil {
		logger.Error("Failed to add cron job for lead export", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Lead export scheduler started", map[string]interface{}{
		"schedule": s.schedule,
		"location": s.location,
	})
	return nil
}

// RunOnce performs a single export. Failures are logged only.
func (s *LeadExportScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	count, err := spreadsheet.ExportLeads(ctx, s.source, s.dest, s.location)
	if err != nil {
		logger.Error("Scheduled lead export failed", err, map[string]interface{}{
			"location": s.location,
		})
		return
	}
	logger.Info("Scheduled lead export completed", map[string]interface{}{
		"location": s.location,
		"rows":     count,
	})
}

// Stop waits for a running export to finish.
func (s *LeadExportScheduler) Stop() {
	logger.Info("Stopping lead export scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Lead export scheduler stopped")
}

package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"newsdash/config"
	"newsdash/internal/service"
)

// Scheduler runs the refresh pipeline in the background on a cron schedule.
type Scheduler struct {
	cron           *cron.Cron
	pipeline       *service.PipelineService
	config         config.CronConfig
	refreshEntryID cron.EntryID
}

func NewScheduler(pipeline *service.PipelineService, cfg config.CronConfig) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		pipeline: pipeline,
		config:   cfg,
	}
}

func (s *Scheduler) Start() {
	s.refreshEntryID, _ = s.cron.AddFunc(s.config.RefreshInterval, func() {
		log.Println("[Cron] Refreshing feeds...")
		if _, err := s.pipeline.Refresh(context.Background()); err != nil {
			log.Printf("[Cron] Refresh failed: %v", err)
		}
	})

	s.cron.Start()
	log.Printf("[Cron] Scheduler started (refresh: %s)", s.config.RefreshInterval)
}

// GetNextRefreshTime returns the next scheduled refresh run.
func (s *Scheduler) GetNextRefreshTime() time.Time {
	entry := s.cron.Entry(s.refreshEntryID)
	return entry.Next
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

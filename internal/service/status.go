package service

import (
	"context"
	"time"

	"newsdash/config"
)

// StatusService summarizes the aggregator state for the status endpoint.
type StatusService struct {
	store   *StoreService
	sources []config.Source
}

type SystemStatus struct {
	TotalArticles    int64            `json:"total_articles"`
	ArticlesBySource map[string]int64 `json:"articles_by_source"`
	TotalSources     int              `json:"total_sources"`
	EnabledSources   int              `json:"enabled_sources"`
	LastRefreshAt    time.Time        `json:"last_refresh_at"`
	NextRefreshAt    time.Time        `json:"next_refresh_at"`
}

func NewStatusService(store *StoreService, sources []config.Source) *StatusService {
	return &StatusService{store: store, sources: sources}
}

// GetSystemStatus gathers counts; nextRefresh comes from the scheduler.
func (s *StatusService) GetSystemStatus(ctx context.Context, nextRefresh time.Time) (*SystemStatus, error) {
	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	bySource, err := s.store.CountBySource(ctx)
	if err != nil {
		return nil, err
	}

	enabled := 0
	for _, src := range s.sources {
		if src.Enabled {
			enabled++
		}
	}

	return &SystemStatus{
		TotalArticles:    total,
		ArticlesBySource: bySource,
		TotalSources:     len(s.sources),
		EnabledSources:   enabled,
		LastRefreshAt:    s.store.LatestCreatedAt(ctx),
		NextRefreshAt:    nextRefresh,
	}, nil
}

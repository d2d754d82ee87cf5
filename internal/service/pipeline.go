package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"newsdash/internal/model"
)

// Batch-level failures. Everything below these — a single source down, a
// missed image, a failed translation — degrades silently into less data.
var (
	ErrNoArticles            = errors.New("no articles fetched from any source")
	ErrTranslatorUnreachable = errors.New("translation endpoint unreachable")
)

// PipelineService orchestrates the refresh cycle
// (fetch → filter → enrich → persist → aggregate) and the startup load path.
type PipelineService struct {
	fetcher    *FetcherService
	recency    *RecencyService
	enricher   *EnricherService
	translator *TranslatorService
	store      *StoreService
	loadLimit  int
}

func NewPipelineService(
	fetcher *FetcherService,
	recency *RecencyService,
	enricher *EnricherService,
	translator *TranslatorService,
	store *StoreService,
	loadLimit int,
) *PipelineService {
	return &PipelineService{
		fetcher:    fetcher,
		recency:    recency,
		enricher:   enricher,
		translator: translator,
		store:      store,
		loadLimit:  loadLimit,
	}
}

// Refresh runs one full ingestion cycle and returns the fresh projection.
// It fails only on batch-level problems: zero fetched entries, the
// translation endpoint being down, or the store rejecting the write.
func (p *PipelineService) Refresh(ctx context.Context) (*model.Projection, error) {
	entries := p.fetcher.FetchAll(ctx)
	if len(entries) == 0 {
		return nil, ErrNoArticles
	}
	log.Printf("[Pipeline] Fetched %d entries", len(entries))

	if p.translator != nil && p.translator.Enabled() {
		if err := p.translator.Ping(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTranslatorUnreachable, err)
		}
	}

	fresh := p.recency.Filter(entries, time.Now())
	log.Printf("[Pipeline] %d entries after recency filter", len(fresh))

	enriched := p.enricher.EnrichAll(ctx, fresh)

	rows, err := p.store.UpsertAll(ctx, enriched)
	if err != nil {
		return nil, fmt.Errorf("persist refresh batch: %w", err)
	}

	projection := BuildProjection(rows, time.Now())
	return &projection, nil
}

// Load rehydrates the dashboard from persisted state without fetching.
// An empty store or a failing query yields no projection and no error; the
// caller substitutes placeholder content.
func (p *PipelineService) Load(ctx context.Context) (*model.Projection, error) {
	rows, err := p.store.Recent(ctx, p.loadLimit)
	if err != nil {
		log.Printf("[Pipeline] Load query failed: %v", err)
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, nil
	}

	projection := BuildProjection(rows, time.Now())
	return &projection, nil
}

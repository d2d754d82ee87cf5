package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsdash/internal/model"
)

// StoreService is the persistence adapter over the durable article store.
// Writes are upserts keyed by canonical URL, so repeated refresh cycles with
// unchanged source data never grow the table.
type StoreService struct {
	db         *gorm.DB
	summaryMax int
}

func NewStoreService(db *gorm.DB, summaryMax int) *StoreService {
	return &StoreService{db: db, summaryMax: summaryMax}
}

// UpsertAll writes the enriched batch and returns the persisted rows in
// input order. A URL already present gets its fields replaced.
func (s *StoreService) UpsertAll(ctx context.Context, enriched []model.EnrichedArticle) ([]model.Article, error) {
	if len(enriched) == 0 {
		return nil, nil
	}

	rows := make([]model.Article, 0, len(enriched))
	for _, e := range enriched {
		rows = append(rows, model.Article{
			ID:            model.ArticleID(e.URL),
			Title:         e.DisplayTitle,
			OriginalTitle: e.Title,
			Summary:       Truncate(StripHTML(e.Description), s.summaryMax),
			Source:        e.Source,
			URL:           e.URL,
			ImageURL:      e.ImageURL,
			PublishedAt:   e.PublishedAt,
			Category:      e.Category,
		})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("upsert articles: %w", err)
	}

	return rows, nil
}

// Recent returns the newest n rows by publish time descending.
func (s *StoreService) Recent(ctx context.Context, n int) ([]model.Article, error) {
	var rows []model.Article
	err := s.db.WithContext(ctx).
		Order("published_at DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query recent articles: %w", err)
	}
	return rows, nil
}

// List returns a page of rows for the full-article endpoint.
func (s *StoreService) List(ctx context.Context, limit, offset int) ([]model.Article, error) {
	var rows []model.Article
	err := s.db.WithContext(ctx).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return rows, nil
}

// CountAll returns the total number of stored articles.
func (s *StoreService) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).Count(&count).Error
	return count, err
}

// CountBySource returns per-source article counts.
func (s *StoreService) CountBySource(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Source string
		Count  int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.Article{}).
		Select("source, COUNT(*) as count").
		Group("source").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Source] = r.Count
	}
	return counts, nil
}

// LatestCreatedAt returns the time of the most recent write, zero when the
// store is empty.
func (s *StoreService) LatestCreatedAt(ctx context.Context) time.Time {
	var article model.Article
	if err := s.db.WithContext(ctx).Order("created_at DESC").First(&article).Error; err != nil {
		return time.Time{}
	}
	return article.CreatedAt
}

package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newsdash/internal/model"
)

// newTestDB opens a throwaway on-disk database. A pooled :memory: DB would
// give each connection its own empty schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Article{}, &model.Preference{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func enrichedEntry(url, title, desc string, published time.Time) model.EnrichedArticle {
	return model.EnrichedArticle{
		RawEntry: model.RawEntry{
			Title:       title,
			URL:         url,
			PublishedAt: published,
			Description: desc,
			Source:      "Test",
			Category:    "AI",
		},
		DisplayTitle: strings.ToUpper(title),
	}
}

func TestUpsertIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStoreService(newTestDB(t), 500)
	published := time.Now().Add(-time.Hour)

	first := []model.EnrichedArticle{
		enrichedEntry("https://example.com/a", "first title", "first desc", published),
	}
	if _, err := store.UpsertAll(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := []model.EnrichedArticle{
		enrichedEntry("https://example.com/a", "second title", "second desc", published),
	}
	if _, err := store.UpsertAll(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := store.CountAll(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("same URL twice must leave one row, got %d", count)
	}

	rows, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if rows[0].Title != "SECOND TITLE" {
		t.Errorf("second write must win, got title %q", rows[0].Title)
	}
	if rows[0].OriginalTitle != "second title" {
		t.Errorf("original title not replaced: %q", rows[0].OriginalTitle)
	}
}

func TestUpsertSummaryDerivation(t *testing.T) {
	ctx := context.Background()
	store := NewStoreService(newTestDB(t), 20)

	batch := []model.EnrichedArticle{
		enrichedEntry("https://example.com/s", "t",
			"<p>A <b>long</b> description full of markup that needs capping</p>",
			time.Now()),
	}
	rows, err := store.UpsertAll(ctx, batch)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	summary := rows[0].Summary
	if strings.ContainsAny(summary, "<>") {
		t.Errorf("markup not stripped: %q", summary)
	}
	if len([]rune(summary)) > 20 {
		t.Errorf("summary not capped: %d runes", len([]rune(summary)))
	}
	if !strings.HasSuffix(summary, "...") {
		t.Errorf("capped summary should be ellipsized: %q", summary)
	}
}

func TestRecentOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStoreService(newTestDB(t), 500)
	now := time.Now()

	batch := []model.EnrichedArticle{
		enrichedEntry("https://example.com/old", "old", "", now.Add(-3*time.Hour)),
		enrichedEntry("https://example.com/new", "new", "", now.Add(-1*time.Hour)),
		enrichedEntry("https://example.com/mid", "mid", "", now.Add(-2*time.Hour)),
	}
	if _, err := store.UpsertAll(ctx, batch); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("limit not applied: got %d rows", len(rows))
	}
	if rows[0].Title != "NEW" || rows[1].Title != "MID" {
		t.Errorf("wrong order: %q, %q", rows[0].Title, rows[1].Title)
	}
}

func TestUpsertEmptyBatch(t *testing.T) {
	store := NewStoreService(newTestDB(t), 500)
	rows, err := store.UpsertAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("empty batch produced %d rows", len(rows))
	}
}

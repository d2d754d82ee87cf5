package service

import (
	"time"

	"newsdash/internal/model"
)

// Live-feed severity and color are assigned by position. Positions past the
// end of these tables default to normal/green.
var (
	liveFeedSeverities = []model.Severity{
		model.SeverityCritical,
		model.SeverityMajor,
		model.SeverityMajor,
		model.SeverityNormal,
		model.SeverityNormal,
	}
	liveFeedPalette = []string{"#EF4444", "#F59E0B", "#22C55E", "#22C55E", "#22C55E"}
)

const (
	featuredCount    = 2
	latestDropsCount = 4
	liveFeedCount    = 5
)

// BuildProjection partitions one ordered (most-recent-first) article list
// into the three dashboard views. Pure: same input and clock, same output.
func BuildProjection(articles []model.Article, now time.Time) model.Projection {
	featured := articles[:min(featuredCount, len(articles))]

	latestFrom := min(featuredCount, len(articles))
	latestTo := min(featuredCount+latestDropsCount, len(articles))
	latestDrops := articles[latestFrom:latestTo]

	liveCount := min(liveFeedCount, len(articles))
	liveFeed := make([]model.LiveUpdate, 0, liveCount)
	for i := 0; i < liveCount; i++ {
		a := articles[i]
		liveFeed = append(liveFeed, model.LiveUpdate{
			ID:        a.ID,
			Text:      a.Title,
			Timestamp: RelativeTime(a.PublishedAt, now),
			Type:      severityAt(i),
			Color:     colorAt(i),
			Source:    a.Source,
		})
	}

	return model.Projection{
		Featured:      featured,
		LatestDrops:   latestDrops,
		LiveFeed:      liveFeed,
		TotalArticles: len(articles),
	}
}

func severityAt(i int) model.Severity {
	if i < 0 || i >= len(liveFeedSeverities) {
		return model.SeverityNormal
	}
	return liveFeedSeverities[i]
}

func colorAt(i int) string {
	if i < 0 || i >= len(liveFeedPalette) {
		return "#22C55E"
	}
	return liveFeedPalette[i]
}

package model

import "time"

// RawEntry is one article as extracted from a feed document. A zero
// PublishedAt means the feed carried no parsable date; the recency filter
// owns what happens to those.
type RawEntry struct {
	Title       string
	URL         string
	PublishedAt time.Time
	Description string
	Source      string
	Category    string
}

// HasDate reports whether the entry carried a parsable publish date.
func (e RawEntry) HasDate() bool {
	return !e.PublishedAt.IsZero()
}

// EnrichedArticle is a RawEntry after best-effort augmentation: an og:image
// URL (possibly empty) and a display title (translated, uppercased).
type EnrichedArticle struct {
	RawEntry
	DisplayTitle string
	ImageURL     string
}

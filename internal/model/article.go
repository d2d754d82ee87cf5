package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Article is the durable record. URL is the canonical key: upserting the
// same URL again replaces the row instead of appending a duplicate.
type Article struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	Title         string    `gorm:"size:500;not null" json:"title"`
	OriginalTitle string    `gorm:"size:500" json:"original_title"`
	Summary       string    `gorm:"type:text" json:"summary"`
	Source        string    `gorm:"size:255;not null" json:"source"`
	URL           string    `gorm:"size:500;uniqueIndex;not null" json:"url"`
	ImageURL      string    `gorm:"size:500" json:"image_url,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
	Category      string    `gorm:"size:100" json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

const displaySummaryMax = 160

// DisplaySummary returns the summary capped for transient card display.
func (a Article) DisplaySummary() string {
	runes := []rune(a.Summary)
	if len(runes) <= displaySummaryMax {
		return a.Summary
	}
	return string(runes[:displaySummaryMax-3]) + "..."
}

// ArticleID derives the stable row ID from the canonical URL.
func ArticleID(url string) string {
	h := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", h[:16])
}

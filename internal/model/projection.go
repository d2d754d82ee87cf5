package model

// Severity tags a live-feed row with display urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityNormal   Severity = "normal"
)

// LiveUpdate is one row of the live-feed panel.
type LiveUpdate struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Timestamp string   `json:"timestamp"`
	Type      Severity `json:"type"`
	Color     string   `json:"color"`
	Source    string   `json:"source"`
}

// Projection is the dashboard-facing aggregate. All three views are slices
// over the same ordered article list; none of them fetches independently.
type Projection struct {
	Featured      []Article    `json:"featured"`
	LatestDrops   []Article    `json:"latest_drops"`
	LiveFeed      []LiveUpdate `json:"live_feed"`
	TotalArticles int          `json:"total_articles"`
}

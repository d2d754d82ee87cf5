package model

import "time"

// Preference is one named JSON blob of UI state (saved articles, read
// history, display preferences). The ingestion pipeline never touches it.
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Well-known preference keys used by the dashboard.
const (
	PrefSaved       = "saved"
	PrefHistory     = "history"
	PrefPreferences = "preferences"
)

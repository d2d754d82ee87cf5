package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsdash/internal/model"
)

// PrefsService stores named JSON blobs of UI state (saved articles, read
// history, display preferences). It is a capability handed to the HTTP
// layer; the ingestion pipeline has no reference to it.
type PrefsService struct {
	db *gorm.DB
}

func NewPrefsService(db *gorm.DB) *PrefsService {
	return &PrefsService{db: db}
}

// Get returns the blob stored under key, or "" when none exists.
func (s *PrefsService) Get(ctx context.Context, key string) (string, error) {
	var pref model.Preference
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return pref.Value, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *PrefsService) Set(ctx context.Context, key, value string) error {
	pref := model.Preference{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

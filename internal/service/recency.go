package service

import (
	"sort"
	"time"

	"newsdash/internal/model"
)

// RecencyService selects the entries worth showing: everything younger than
// the freshness window, or the N most recent valid entries when a quiet
// window would otherwise leave the dashboard empty.
type RecencyService struct {
	window   time.Duration
	fallback int
}

func NewRecencyService(window time.Duration, fallback int) *RecencyService {
	return &RecencyService{window: window, fallback: fallback}
}

// Filter drops undated entries first, then keeps entries younger than the
// window as of now. The fallback triggers only when a non-empty valid set
// filtered down to nothing; empty input stays empty.
func (s *RecencyService) Filter(entries []model.RawEntry, now time.Time) []model.RawEntry {
	valid := make([]model.RawEntry, 0, len(entries))
	for _, e := range entries {
		if e.HasDate() {
			valid = append(valid, e)
		}
	}

	recent := make([]model.RawEntry, 0, len(valid))
	for _, e := range valid {
		if now.Sub(e.PublishedAt) < s.window {
			recent = append(recent, e)
		}
	}
	if len(recent) > 0 {
		return recent
	}

	if len(valid) == 0 {
		return nil
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].PublishedAt.After(valid[j].PublishedAt)
	})
	if len(valid) > s.fallback {
		valid = valid[:s.fallback]
	}
	return valid
}

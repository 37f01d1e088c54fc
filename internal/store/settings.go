package store

import (
	"dress-rental-service/internal/model"
	"sync"
)

// SettingsStore holds the site settings
type SettingsStore struct {
	mu       sync.RWMutex
	settings model.SiteSettings
}

func NewSettingsStore(initial model.SiteSettings) *SettingsStore {
	return &SettingsStore{settings: initial}
}

func (s *SettingsStore) Get() model.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetHeroImage replaces the hero image; an empty url keeps the current one
func (s *SettingsStore) SetHeroImage(url string) model.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if url != "" {
		s.settings.HeroImage = url
	}
	return s.settings
}

package config

import "sync"

// Store holds the live configuration shared between the UI and the file watcher.
type Store struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewStore creates a store seeded with a copy of cfg.
func NewStore(cfg *Config) *Store {
	return &Store{cfg: cfg.Clone()}
}

// Current returns the current settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Settings
}

// Config returns a copy of the whole configuration.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Update replaces the configuration with a copy of cfg.
func (s *Store) Update(cfg *Config) {
	clone := cfg.Clone()
	s.mu.Lock()
	s.cfg = clone
	s.mu.Unlock()
}

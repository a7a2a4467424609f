// Package settings holds user preferences as an observable in-memory store.
// Only a whitelisted subset (currency, theme) is serialized to disk; session
// state like the sidebar flag always starts from its default.
package settings

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Settings are the user-facing preferences.
type Settings struct {
	Currency    string `json:"currency"`
	Theme       string `json:"theme"`
	SidebarOpen bool   `json:"sidebarOpen"`
}

// persisted is the subset of Settings written to disk.
type persisted struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
}

// Defaults returns the initial settings.
func Defaults() Settings {
	return Settings{Currency: "EUR", Theme: "dark", SidebarOpen: false}
}

// Store is a concurrency-safe settings store persisted to a JSON file.
type Store struct {
	mu          sync.RWMutex
	path        string
	current     Settings
	subscribers []func(Settings)
}

// NewStore creates a store backed by the given file path, loading the
// persisted subset over defaults. A missing or unreadable file is not an
// error; defaults apply.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, current: Defaults()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, nil
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt settings file: fall back to defaults.
		return s, nil
	}
	if p.Currency != "" {
		s.current.Currency = p.Currency
	}
	if p.Theme != "" {
		s.current.Theme = p.Theme
	}
	return s, nil
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the settings, persists the whitelisted subset, and
// notifies subscribers.
func (s *Store) Update(next Settings) error {
	s.mu.Lock()
	s.current = next
	subs := make([]func(Settings), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}

	return s.save(next)
}

// Subscribe registers a callback invoked after every update.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) save(current Settings) error {
	raw, err := json.MarshalIndent(persisted{Currency: current.Currency, Theme: current.Theme}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cooklang/cookprefs/util/log"
)

// Store owns the live Settings record. It loads the record once over the defaults and
// writes the whole record back through its Storage on every mutation.
type Store struct {
	storage   Storage
	settings  Settings
	listeners []func(Settings)
	mu        sync.RWMutex // guards settings and listeners
	writeMu   sync.Mutex   // serializes Mutate
}

// NewStore returns a store holding the defaults until Load is called.
func NewStore(storage Storage) *Store {
	return &Store{
		storage:  storage,
		settings: DefaultSettings(),
	}
}

// Load reads the persisted blob and merges it over the defaults. It never fails:
// missing or unreadable data leaves every field it cannot account for at its default.
func (s *Store) Load() Settings {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = s.loadFromStorage()
	return s.settings
}

func (s *Store) loadFromStorage() Settings {
	merged := DefaultSettings()

	data, err := s.storage.Load()
	if err != nil {
		log.Printf("Error loading recipe settings, using defaults: %v", err)
		return merged
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return merged
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Error decoding recipe settings, using defaults: %v", err)
		return merged
	}

	// Keys match flags exactly. Absent keys keep their defaults, unknown keys are dropped.
	for key, value := range raw {
		f, ok := FlagByKey(key)
		if !ok {
			log.Debugf("Ignoring unknown recipe setting %q", key)
			continue
		}
		var v *bool
		if err := json.Unmarshal(value, &v); err != nil {
			log.Printf("Ignoring malformed recipe setting %q: %v", key, err)
			continue
		}
		if v != nil {
			f.Set(&merged, *v)
		}
	}
	return merged
}

// Settings returns a copy of the live record.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Mutate applies update to a copy of the live record, installs the copy and persists it.
// Mutations are serialized; update may read the store but must not call Mutate.
// The in-memory change is kept even when saving fails; the save error is returned.
func (s *Store) Mutate(update func(*Settings)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Settings()
	update(&next)

	s.mu.Lock()
	s.settings = next
	listeners := make([]func(Settings), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if err := s.save(next); err != nil {
		return err
	}
	for _, fn := range listeners {
		fn(next)
	}
	return nil
}

// OnChange registers fn to be called with the new record after every successful mutation.
// Listeners run inside Mutate and must not call Mutate themselves.
func (s *Store) OnChange(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding recipe settings: %w", err)
	}
	if err := s.storage.Save(data); err != nil {
		return fmt.Errorf("saving recipe settings: %w", err)
	}
	return nil
}

package recipe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/cooklang/cookprefs/config"
)

// Storage is the host's persistence primitive for the settings blob.
// Load returns nil data and a nil error when nothing has been saved yet.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// PrefsStorage keeps the settings blob as a single string preference.
type PrefsStorage struct {
	prefs fyne.Preferences
	key   string
}

// NewPrefsStorage returns a Storage backed by the application's fyne preferences.
func NewPrefsStorage(p fyne.Preferences) *PrefsStorage {
	return &PrefsStorage{prefs: p, key: config.SettingsPrefKey}
}

// Load returns the saved blob, or nil if the preference was never written.
func (ps *PrefsStorage) Load() ([]byte, error) {
	v := ps.prefs.StringWithFallback(ps.key, "")
	if v == "" {
		return nil, nil
	}
	return []byte(v), nil
}

// Save writes the blob to the preference. Fyne persists preferences on its own schedule.
func (ps *PrefsStorage) Save(data []byte) error {
	ps.prefs.SetString(ps.key, string(data))
	return nil
}

// Reset removes the saved blob so the next load starts from defaults.
func (ps *PrefsStorage) Reset() {
	ps.prefs.RemoveValue(ps.key)
}

// FileStorage keeps the settings blob in a JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage returns a Storage reading and writing the file at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the settings file location.
func (f *FileStorage) Path() string {
	return f.path
}

// Load reads the settings file. A missing file is not an error.
func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return data, nil
}

// Save writes the settings file, creating its directory if needed.
func (f *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}

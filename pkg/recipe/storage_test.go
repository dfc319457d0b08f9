package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/cooklang/cookprefs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsStorage(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	prefs := a.Preferences()
	storage := NewPrefsStorage(prefs)

	data, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "nothing saved yet")

	require.NoError(t, storage.Save([]byte(`{"displayCookware":false}`)))
	assert.Equal(t, `{"displayCookware":false}`, prefs.String(config.SettingsPrefKey))

	data, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"displayCookware":false}`, string(data))

	storage.Reset()
	data, err = storage.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestPrefsStorageWithStore(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	store := NewStore(NewPrefsStorage(a.Preferences()))
	store.Load()
	require.NoError(t, store.Mutate(func(s *Settings) { s.DisplayQuantityInline = false }))

	restarted := NewStore(NewPrefsStorage(a.Preferences())).Load()
	assert.False(t, restarted.DisplayQuantityInline)
	assert.True(t, restarted.DisplayCookware)
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.SettingsFileName)
	storage := NewFileStorage(path)
	assert.Equal(t, path, storage.Path())

	t.Run("Missing file", func(t *testing.T) {
		data, err := storage.Load()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("Save creates directory", func(t *testing.T) {
		require.NoError(t, storage.Save([]byte(`{"soundAlarm":false}`)))
		_, err := os.Stat(path)
		require.NoError(t, err)

		data, err := storage.Load()
		require.NoError(t, err)
		assert.Equal(t, `{"soundAlarm":false}`, string(data))
	})

	t.Run("Unreadable path", func(t *testing.T) {
		dirStorage := NewFileStorage(t.TempDir())
		_, err := dirStorage.Load()
		assert.Error(t, err)
	})
}

func TestFileStorageWithStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"displayTimers": false, "legacyFlag": true}`), 0644))

	store := NewStore(NewFileStorage(path))
	loaded := store.Load()
	assert.False(t, loaded.DisplayTimers)
	assert.True(t, loaded.SoundAlarm)

	require.NoError(t, store.Mutate(func(s *Settings) { s.DisplayTimers = true }))
	assert.True(t, NewStore(NewFileStorage(path)).Load().DisplayTimers)
}

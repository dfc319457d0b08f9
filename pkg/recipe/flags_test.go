package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsCoverEverySetting(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)
	var keys map[string]bool
	require.NoError(t, json.Unmarshal(data, &keys))

	fs := Flags()
	assert.Len(t, fs, len(keys))
	for _, f := range fs {
		_, ok := keys[f.Key]
		assert.True(t, ok, "flag %s has no settings field", f.Key)
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Description)
	}
}

func TestFlagsOrder(t *testing.T) {
	var keys []string
	for _, f := range Flags() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{
		"displayCookware",
		"displayIngredients",
		"displayTotalCookTime",
		"displayQuantityInline",
		"displayTimers",
		"soundAlarm",
	}, keys)
}

func TestFlagSetTouchesOneField(t *testing.T) {
	for _, f := range Flags() {
		t.Run(f.Key, func(t *testing.T) {
			s := DefaultSettings()
			f.Set(&s, false)
			assert.False(t, f.Get(s))

			data, err := json.Marshal(s)
			require.NoError(t, err)
			var blob map[string]bool
			require.NoError(t, json.Unmarshal(data, &blob))
			for k, v := range blob {
				assert.Equal(t, k != f.Key, v, k)
			}
		})
	}
}

func TestFlagByKey(t *testing.T) {
	f, ok := FlagByKey("soundAlarm")
	require.True(t, ok)
	assert.Equal(t, "Sound alarm", f.Name)

	_, ok = FlagByKey("doesNotExist")
	assert.False(t, ok)
}

func TestFlagsReturnsCopy(t *testing.T) {
	fs := Flags()
	fs[0].Key = "changed"
	assert.Equal(t, "displayCookware", Flags()[0].Key)
}

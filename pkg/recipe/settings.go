// Package recipe holds the recipe display settings, their persistent store and the
// preferences panel that edits them.
package recipe

// Settings is the flat set of boolean preferences the recipe view reads to decide what to show.
// The JSON keys are read by the recipe renderer and must stay stable.
type Settings struct {
	DisplayCookware       bool `json:"displayCookware"`
	DisplayIngredients    bool `json:"displayIngredients"`
	DisplayTotalCookTime  bool `json:"displayTotalCookTime"`
	DisplayQuantityInline bool `json:"displayQuantityInline"`
	DisplayTimers         bool `json:"displayTimers"`
	SoundAlarm            bool `json:"soundAlarm"` // Independent of DisplayTimers.
}

// DefaultSettings returns the compiled-in defaults. Every flag is on.
func DefaultSettings() Settings {
	return Settings{
		DisplayCookware:       true,
		DisplayIngredients:    true,
		DisplayTotalCookTime:  true,
		DisplayQuantityInline: true,
		DisplayTimers:         true,
		SoundAlarm:            true,
	}
}

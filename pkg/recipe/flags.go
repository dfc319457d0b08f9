package recipe

// Flag describes one toggle of the settings panel and binds it to a Settings field.
type Flag struct {
	Key         string // JSON key of the field
	Name        string
	Description string
	Get         func(Settings) bool
	Set         func(*Settings, bool)
}

var flags = []Flag{
	{
		Key:         "displayCookware",
		Name:        "Display cookware",
		Description: "Whether cookware should be displayed in a recipe",
		Get:         func(s Settings) bool { return s.DisplayCookware },
		Set:         func(s *Settings, v bool) { s.DisplayCookware = v },
	},
	{
		Key:         "displayIngredients",
		Name:        "Display ingredients",
		Description: "Whether ingredients should be displayed in a recipe",
		Get:         func(s Settings) bool { return s.DisplayIngredients },
		Set:         func(s *Settings, v bool) { s.DisplayIngredients = v },
	},
	{
		Key:         "displayTotalCookTime",
		Name:        "Display total cook time",
		Description: "Whether the total cook time should be displayed in a recipe",
		Get:         func(s Settings) bool { return s.DisplayTotalCookTime },
		Set:         func(s *Settings, v bool) { s.DisplayTotalCookTime = v },
	},
	{
		Key:         "displayQuantityInline",
		Name:        "Display quantities inline",
		Description: "Whether the quantities should be displayed alongside the recipe instruction",
		Get:         func(s Settings) bool { return s.DisplayQuantityInline },
		Set:         func(s *Settings, v bool) { s.DisplayQuantityInline = v },
	},
	{
		Key:         "displayTimers",
		Name:        "Display timers",
		Description: "Whether timers should be displayed in a recipe",
		Get:         func(s Settings) bool { return s.DisplayTimers },
		Set:         func(s *Settings, v bool) { s.DisplayTimers = v },
	},
	{
		Key:         "soundAlarm",
		Name:        "Sound alarm",
		Description: "Whether an alarm should sound when a timer ends",
		Get:         func(s Settings) bool { return s.SoundAlarm },
		Set:         func(s *Settings, v bool) { s.SoundAlarm = v },
	},
}

// Flags returns the panel's toggles in display order.
func Flags() []Flag {
	out := make([]Flag, len(flags))
	copy(out, flags)
	return out
}

// FlagByKey looks up a flag by its JSON key.
func FlagByKey(key string) (Flag, bool) {
	for _, f := range flags {
		if f.Key == key {
			return f, true
		}
	}
	return Flag{}, false
}

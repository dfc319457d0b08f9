package main

import (
	"flag"

	"fyne.io/fyne/v2/app"
	"github.com/cooklang/cookprefs/config"
	"github.com/cooklang/cookprefs/pkg/recipe"
	"github.com/cooklang/cookprefs/ui"
	"github.com/cooklang/cookprefs/util/log"
)

func main() {
	reset := flag.Bool("reset", false, "discard saved recipe display settings before starting")
	flag.Parse()

	a := app.NewWithID(config.AppID)

	storage := recipe.NewPrefsStorage(a.Preferences())
	if *reset {
		log.Println("Resetting recipe display settings to defaults")
		storage.Reset()
	}

	store := recipe.NewStore(storage)
	settings := store.Load()
	log.Printf("%s %s loaded recipe display settings: %+v", config.AppName, config.AppVersion, settings)
	store.OnChange(func(s recipe.Settings) {
		log.Debugf("Recipe display settings changed: %+v", s)
	})

	ca := ui.NewApp(a)
	ca.AddPanel(recipe.NewPanel(store, ca.SettingsManager()))
	ca.CreateTrayMenu()
	ca.ShowPreferences()
	ca.Run()
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/cooklang/cookprefs/config"
	"github.com/cooklang/cookprefs/pkg/ui/setting"
	"github.com/cooklang/cookprefs/util/log"
)

type hostedPanel struct {
	panel   setting.Panel
	content *fyne.Container
}

// App hosts the preferences window and the panels rendered into it.
type App struct {
	app         fyne.App
	prefsWindow fyne.Window
	sm          setting.SettingsManager
	body        *fyne.Container
	panels      []hostedPanel
}

// NewApp creates the preferences window for a. The window is hidden rather than
// destroyed when closed so it can be shown again.
func NewApp(a fyne.App) *App {
	w := a.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	w.Resize(fyne.NewSize(640, 560))
	w.CenterOnScreen()
	w.SetCloseIntercept(w.Hide)

	ca := &App{
		app:         a,
		prefsWindow: w,
		sm:          NewSettingsManager(w),
		body:        container.NewVBox(),
	}

	closeButton := widget.NewButton("Close", w.Hide)
	w.SetContent(container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), closeButton), nil, nil, container.NewVScroll(ca.body)))
	return ca
}

// SettingsManager returns the manager panels use to build their widgets.
func (ca *App) SettingsManager() setting.SettingsManager {
	return ca.sm
}

// PreferencesWindow returns the preferences window.
func (ca *App) PreferencesWindow() fyne.Window {
	return ca.prefsWindow
}

// AddPanel adds p to the preferences window. Panels are shown in the order they are added.
func (ca *App) AddPanel(p setting.Panel) {
	content := container.NewVBox()
	if len(ca.panels) > 0 {
		ca.body.Add(widget.NewSeparator())
	}
	ca.body.Add(content)
	ca.panels = append(ca.panels, hostedPanel{panel: p, content: content})
}

// ShowPreferences re-renders every panel from current settings and shows the window.
func (ca *App) ShowPreferences() {
	for _, hp := range ca.panels {
		hp.panel.Render(hp.content)
	}
	ca.body.Refresh()
	ca.prefsWindow.Show()
	ca.prefsWindow.RequestFocus()
}

// CreateTrayMenu installs a tray menu when the driver supports one. It reports whether it did.
func (ca *App) CreateTrayMenu() bool {
	desk, ok := ca.app.(desktop.App)
	if !ok {
		log.Println("Tray menu not supported on this platform")
		return false
	}
	quit := fyne.NewMenuItem("Quit", ca.app.Quit)
	quit.IsQuit = true
	menu := fyne.NewMenu(config.AppName,
		fyne.NewMenuItem("Preferences", ca.ShowPreferences),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	desk.SetSystemTrayMenu(menu)
	return true
}

// Run runs the fyne event loop until the application quits.
func (ca *App) Run() {
	ca.app.Run()
}

package setting

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Panel is a preferences panel the host renders into a container it owns.
// Render may be called any number of times; each call replaces the container's content.
type Panel interface {
	Render(container *fyne.Container)
}

// SettingsHelper is the interface that must be implemented by all settings helpers.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label           // Creates a section title label.
	CreateSettingTitleLabel(desc string) *widget.Label           // Creates a setting title label.
	CreateSettingDescriptionLabel(desc string) fyne.CanvasObject // Creates a setting description label.
}

// BoolConfig holds configuration for a boolean check widget.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(bool) // Called on every change with the new value.
}

// SettingsManager creates settings widgets and forwards failures to the host.
type SettingsManager interface {
	SettingsHelper

	CreateBoolSetting(cfg *BoolConfig, header *fyne.Container) *widget.Check // Create a boolean setting widget.
	ReportError(err error)                                                   // Show an error on the host's error surface.
}

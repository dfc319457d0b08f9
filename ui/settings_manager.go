package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/cooklang/cookprefs/pkg/ui/setting"
	"github.com/cooklang/cookprefs/util/log"
)

// SettingsManager builds settings rows for a preferences window. Changes are applied as soon
// as the user makes them; there is no apply step.
type SettingsManager struct {
	prefsWindow fyne.Window
}

// NewSettingsManager creates a new SettingsManager. Errors are shown as dialogs on window.
func NewSettingsManager(window fyne.Window) setting.SettingsManager {
	return &SettingsManager{prefsWindow: window}
}

// CreateSectionTitleLabel creates a label for a section heading.
func (sm *SettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.HighImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// CreateSettingTitleLabel creates a label for a setting title.
func (sm *SettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// CreateSettingDescriptionLabel creates a label for a setting description.
func (sm *SettingsManager) CreateSettingDescriptionLabel(desc string) fyne.CanvasObject {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.LowImportance
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}

// CreateBoolSetting adds a label and check row to header, followed by the help content.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil)
	check.SetChecked(cfg.InitialValue) // before OnChanged so the initial value is not applied

	label := cfg.Label
	if label == nil {
		label = sm.CreateSettingTitleLabel(cfg.Name)
	}
	header.Add(NewSplitRow(label, check, OneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	check.OnChanged = func(b bool) {
		log.Debugf("%s changed to %t", cfg.Name, b)
		if cfg.ApplyFunc != nil {
			cfg.ApplyFunc(b)
		}
	}
	return check
}

// ReportError shows err in a dialog on the preferences window.
func (sm *SettingsManager) ReportError(err error) {
	if sm.prefsWindow == nil {
		log.Printf("Settings error: %v", err)
		return
	}
	dialog.ShowError(err, sm.prefsWindow)
}

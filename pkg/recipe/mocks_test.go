package recipe

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/cooklang/cookprefs/pkg/ui/setting"
)

// memStorage is an in-memory Storage that counts saves and can be made to fail.
type memStorage struct {
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (m *memStorage) Load() ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *memStorage) Save(data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

// MockSettingsManager implements setting.SettingsManager with plain widgets.
type MockSettingsManager struct {
	checkWidgets map[string]*widget.Check
	errors       []error
}

func NewMockSettingsManager() *MockSettingsManager {
	return &MockSettingsManager{checkWidgets: make(map[string]*widget.Check)}
}

func (m *MockSettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return widget.NewLabel(desc)
}

func (m *MockSettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return widget.NewLabel(desc)
}

func (m *MockSettingsManager) CreateSettingDescriptionLabel(desc string) fyne.CanvasObject {
	return widget.NewLabel(desc)
}

func (m *MockSettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck(cfg.Name, nil)
	check.SetChecked(cfg.InitialValue)
	check.OnChanged = cfg.ApplyFunc

	header.Add(cfg.Label)
	header.Add(check)
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
	m.checkWidgets[cfg.Name] = check
	return check
}

func (m *MockSettingsManager) ReportError(err error) {
	m.errors = append(m.errors, err)
}

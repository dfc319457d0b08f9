package recipe

import (
	"fyne.io/fyne/v2"
	"github.com/cooklang/cookprefs/pkg/ui/setting"
	"github.com/cooklang/cookprefs/util/log"
)

// Panel renders one toggle per Flag, bound to a Store.
type Panel struct {
	store *Store
	sm    setting.SettingsManager
}

// NewPanel creates a panel editing store with widgets built by sm.
func NewPanel(store *Store, sm setting.SettingsManager) *Panel {
	return &Panel{store: store, sm: sm}
}

// Render clears container and rebuilds the heading and one row per flag from the current settings.
func (p *Panel) Render(container *fyne.Container) {
	container.RemoveAll()

	current := p.store.Settings()

	container.Add(p.sm.CreateSectionTitleLabel("Recipe Display"))
	container.Add(p.sm.CreateSettingDescriptionLabel("Choose what the recipe view shows. Changes are saved as soon as you make them."))

	for _, f := range Flags() {
		cfg := &setting.BoolConfig{
			Name:         f.Key,
			InitialValue: f.Get(current),
			Label:        p.sm.CreateSettingTitleLabel(f.Name),
			HelpContent:  p.sm.CreateSettingDescriptionLabel(f.Description),
			ApplyFunc: func(b bool) {
				err := p.store.Mutate(func(s *Settings) {
					f.Set(s, b)
				})
				if err != nil {
					log.Printf("Failed to save %s: %v", f.Key, err)
					p.sm.ReportError(err)
				}
			},
		}
		p.sm.CreateBoolSetting(cfg, container)
	}

	container.Refresh()
}

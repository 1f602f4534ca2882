package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Backdrop/config"
	"github.com/dixieflatline76/Backdrop/pkg/wallpaper"
	"github.com/dixieflatline76/Backdrop/util/log"
)

// ScaleSetter receives scale mode changes.
type ScaleSetter interface {
	SetScale(mode wallpaper.ScaleMode)
}

// KeySetter receives a new Unsplash access key.
type KeySetter interface {
	SetAccessKey(key string)
}

func newSettingsView(app fyne.App, window fyne.Window, cfg *config.AppConfig, scale ScaleSetter, keys KeySetter) fyne.CanvasObject {
	modes := make([]string, len(wallpaper.ScaleModes))
	for i, m := range wallpaper.ScaleModes {
		modes[i] = string(m)
	}
	scaleSelect := widget.NewSelect(modes, func(s string) {
		mode, err := wallpaper.ParseScaleMode(s)
		if err != nil {
			log.Printf("UI: %v", err)
			return
		}
		cfg.SetWallpaperScale(string(mode))
		scale.SetScale(mode)
	})
	scaleSelect.SetSelected(cfg.GetWallpaperScale())

	themeSelect := widget.NewSelect(themeOptions, func(s string) {
		cfg.SetTheme(s)
		app.Settings().SetTheme(themeFor(s))
	})
	themeSelect.SetSelected(cfg.GetTheme())

	notifications := widget.NewCheck("Show desktop notifications", cfg.SetAppNotificationsEnabled)
	notifications.SetChecked(cfg.GetAppNotificationsEnabled())

	updates := widget.NewCheck("Check for updates on start", cfg.SetUpdateCheckEnabled)
	updates.SetChecked(cfg.GetUpdateCheckEnabled())

	hotkeys := widget.NewCheck("Global shortcuts (applies after restart)", cfg.SetHotkeysEnabled)
	hotkeys.SetChecked(cfg.GetHotkeysEnabled())

	keyEntry := widget.NewPasswordEntry()
	keyEntry.SetPlaceHolder("Unsplash access key")
	saveKey := widget.NewButton("Save", func() {
		if err := config.SetUnsplashAccessKey(keyEntry.Text); err != nil {
			dialog.ShowError(err, window)
			return
		}
		key, err := config.GetUnsplashAccessKey()
		if err != nil {
			log.Printf("UI: %v", err)
		}
		keys.SetAccessKey(key)
		keyEntry.SetText("")
		dialog.ShowInformation("Access key", "Access key saved.", window)
	})

	return container.NewVScroll(container.NewVBox(
		newSettingRow("Wallpaper scaling", scaleSelect),
		newSettingRow("Theme", themeSelect),
		newSettingRow("Notifications", notifications),
		newSettingRow("Updates", updates),
		newSettingRow("Shortcuts", hotkeys),
		newSettingRow("Unsplash access key", container.NewBorder(nil, nil, nil, saveKey, keyEntry)),
	))
}

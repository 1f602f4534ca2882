package config

import "fyne.io/fyne/v2"

const (
	// AppNotificationsEnabledKey toggles desktop notifications.
	AppNotificationsEnabledKey = "app_notifications_enabled"
	// AppUpdateCheckEnabledKey toggles the release check on start.
	AppUpdateCheckEnabledKey = "app_update_check_enabled"
	// AppThemeKey selects System, Light or Dark.
	AppThemeKey = "app_theme"
	// WallpaperScaleKey is how the OS scales the wallpaper image.
	WallpaperScaleKey = "wallpaper_scale"
	// HotkeysEnabledKey toggles the global shortcuts.
	HotkeysEnabledKey = "hotkeys_enabled"
)

// DefaultWallpaperScale is used until the user picks another mode.
const DefaultWallpaperScale = "stretch"

// AppConfig holds user preferences backed by fyne.Preferences.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetAppNotificationsEnabled returns whether system notifications are enabled
func (c *AppConfig) GetAppNotificationsEnabled() bool {
	return c.prefs.BoolWithFallback(AppNotificationsEnabledKey, true)
}

// SetAppNotificationsEnabled sets whether system notifications are enabled
func (c *AppConfig) SetAppNotificationsEnabled(enabled bool) {
	c.prefs.SetBool(AppNotificationsEnabledKey, enabled)
}

// GetUpdateCheckEnabled returns whether the application should check for updates
func (c *AppConfig) GetUpdateCheckEnabled() bool {
	return c.prefs.BoolWithFallback(AppUpdateCheckEnabledKey, true)
}

// SetUpdateCheckEnabled sets whether the application should check for updates
func (c *AppConfig) SetUpdateCheckEnabled(enabled bool) {
	c.prefs.SetBool(AppUpdateCheckEnabledKey, enabled)
}

// GetTheme returns the current application theme
func (c *AppConfig) GetTheme() string {
	return c.prefs.StringWithFallback(AppThemeKey, "System")
}

// SetTheme sets the application theme
func (c *AppConfig) SetTheme(theme string) {
	c.prefs.SetString(AppThemeKey, theme)
}

// GetWallpaperScale returns the configured scale mode name.
func (c *AppConfig) GetWallpaperScale() string {
	return c.prefs.StringWithFallback(WallpaperScaleKey, DefaultWallpaperScale)
}

// SetWallpaperScale stores the scale mode name.
func (c *AppConfig) SetWallpaperScale(mode string) {
	c.prefs.SetString(WallpaperScaleKey, mode)
}

// GetHotkeysEnabled returns whether global shortcuts are registered on start.
func (c *AppConfig) GetHotkeysEnabled() bool {
	return c.prefs.BoolWithFallback(HotkeysEnabledKey, true)
}

// SetHotkeysEnabled sets whether global shortcuts are registered on start.
func (c *AppConfig) SetHotkeysEnabled(enabled bool) {
	c.prefs.SetBool(HotkeysEnabledKey, enabled)
}

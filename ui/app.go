// Package ui is the Backdrop window: the photo viewer, the history grid and
// the settings tab.
package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"github.com/dixieflatline76/Backdrop/config"
	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/dixieflatline76/Backdrop/pkg/viewer"
	"github.com/dixieflatline76/Backdrop/util"
	"github.com/dixieflatline76/Backdrop/util/log"
)

const updateCheckTimeout = 20 * time.Second

// Deps are the collaborators the window is built on.
type Deps struct {
	Config     *config.AppConfig
	Controller *viewer.Controller
	History    HistoryReader
	Images     ImageFetcher
	Scale      ScaleSetter
	Keys       KeySetter
}

// App is the main window and its views.
type App struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.AppConfig
	ctrl   *viewer.Controller

	tabs        *container.AppTabs
	photoTab    *container.TabItem
	historyTab  *container.TabItem
	photoView   *photoView
	historyView *historyView

	settingWallpaper bool
}

// NewApp builds the window. It does not show it.
func NewApp(a fyne.App, deps Deps) *App {
	ba := &App{
		app:    a,
		window: a.NewWindow(config.AppName),
		cfg:    deps.Config,
		ctrl:   deps.Controller,
	}
	a.Settings().SetTheme(themeFor(deps.Config.GetTheme()))

	images := newImageCache(deps.Images)
	ba.photoView = newPhotoView(deps.Controller, images, ba.window, ba.notify)
	ba.historyView = newHistoryView(deps.History, images, ba.selectFromHistory)

	ba.photoTab = container.NewTabItemWithIcon(photoTabTitle, theme.MediaPhotoIcon(), ba.photoView.content)
	ba.historyTab = container.NewTabItemWithIcon(historyTabTitle, theme.HistoryIcon(), ba.historyView.content)
	settingsTab := container.NewTabItemWithIcon(settingsTabTitle, theme.SettingsIcon(),
		newSettingsView(a, ba.window, deps.Config, deps.Scale, deps.Keys))

	ba.tabs = container.NewAppTabs(ba.photoTab, ba.historyTab, settingsTab)
	ba.tabs.OnSelected = func(item *container.TabItem) {
		if item == ba.historyTab {
			ba.historyView.reload()
		}
	}

	deps.Controller.AddListener(func(s viewer.State) {
		fyne.Do(func() { ba.applyState(s) })
	})

	ba.window.SetContent(ba.tabs)
	ba.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	ba.window.SetMaster()
	return ba
}

// applyState renders s and refreshes an open history tab once a wallpaper
// has been set. It must run on the UI goroutine.
func (ba *App) applyState(s viewer.State) {
	finished := ba.settingWallpaper && !s.SetWallpaperLoading
	ba.settingWallpaper = s.SetWallpaperLoading
	ba.photoView.apply(s)
	if finished && s.LastError == nil && ba.tabs.Selected() == ba.historyTab {
		ba.historyView.reload()
	}
}

// Window returns the main window.
func (ba *App) Window() fyne.Window {
	return ba.window
}

// Start shows the window, fetches a first photo when none is current and
// runs the update check when enabled.
func (ba *App) Start() {
	ba.window.Show()
	if !ba.ctrl.State().HasPhoto {
		go ba.photoView.refresh()
	}
	if ba.cfg.GetUpdateCheckEnabled() {
		go ba.checkForUpdates()
	}
}

// Refresh, SetWallpaper and Download are the hotkey entry points.
func (ba *App) Refresh() {
	if !ba.ctrl.State().CanRefresh() {
		return
	}
	ba.photoView.refresh()
}
func (ba *App) SetWallpaper() { ba.photoView.setWallpaper() }
func (ba *App) Download()     { ba.photoView.download() }

// selectFromHistory makes rec current and returns to the photo tab.
func (ba *App) selectFromHistory(rec photo.Record) {
	ba.ctrl.SetPhoto(rec)
	ba.tabs.Select(ba.photoTab)
}

func (ba *App) notify(title, content string) {
	if !ba.cfg.GetAppNotificationsEnabled() {
		return
	}
	ba.app.SendNotification(fyne.NewNotification(title, content))
}

func (ba *App) checkForUpdates() {
	ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
	defer cancel()

	info, err := util.CheckForUpdates(ctx, nil)
	if err != nil {
		log.Printf("UI: update check failed: %v", err)
		return
	}
	if info.UpdateAvailable {
		log.Printf("UI: update available %s -> %s", info.CurrentVersion, info.LatestVersion)
		ba.notify(config.AppName+" "+info.LatestVersion+" is available", info.ReleaseURL)
	}
}

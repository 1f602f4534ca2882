package main

import (
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"github.com/dixieflatline76/Backdrop/config"
	"github.com/dixieflatline76/Backdrop/pkg/history"
	"github.com/dixieflatline76/Backdrop/pkg/hotkey"
	"github.com/dixieflatline76/Backdrop/pkg/unsplash"
	"github.com/dixieflatline76/Backdrop/pkg/viewer"
	"github.com/dixieflatline76/Backdrop/pkg/wallpaper"
	"github.com/dixieflatline76/Backdrop/ui"
	"github.com/dixieflatline76/Backdrop/util/log"
)

func main() {
	configDir, err := config.GetPath()
	if err != nil {
		log.Fatalf("Failed to resolve config directory: %v", err)
	}

	acquired, err := acquireLock(configDir)
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running", config.AppName)
		return
	}
	defer releaseLock()

	a := app.NewWithID(config.AppID)
	cfg := config.NewAppConfig(a.Preferences())

	accessKey, err := config.GetUnsplashAccessKey()
	if err != nil {
		log.Printf("%v", err)
	}
	client := unsplash.NewClient(nil, accessKey)
	store := history.NewStore(filepath.Join(configDir, "storage"))

	paths, err := wallpaper.DefaultPaths()
	if err != nil {
		log.Fatalf("%v", err)
	}
	wp := wallpaper.NewService(store, client, paths)
	scale, err := wallpaper.ParseScaleMode(cfg.GetWallpaperScale())
	if err != nil {
		log.Printf("Using %s: %v", scale, err)
	}
	wp.SetScale(scale)

	ctrl := viewer.NewController(client, wp)
	window := ui.NewApp(a, ui.Deps{
		Config:     cfg,
		Controller: ctrl,
		History:    store,
		Images:     client,
		Scale:      wp,
		Keys:       client,
	})

	if cfg.GetHotkeysEnabled() {
		a.Lifecycle().SetOnStarted(func() {
			stop := hotkey.StartListeners(hotkey.Actions{
				Refresh:      window.Refresh,
				SetWallpaper: window.SetWallpaper,
				Download:     window.Download,
			})
			a.Lifecycle().SetOnStopped(stop)
		})
	}

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)
	window.Start()
	a.Run()
}

// Package hotkey registers the global keyboard shortcuts.
package hotkey

import (
	"github.com/dixieflatline76/Backdrop/util"
	"github.com/dixieflatline76/Backdrop/util/log"
	"golang.design/x/hotkey"
)

// Actions are the callbacks bound to shortcuts. Nil actions are not registered.
type Actions struct {
	Refresh      func()
	SetWallpaper func()
	Download     func()
}

type binding struct {
	name   string
	key    hotkey.Key
	action func()
}

func (a Actions) bindings() []binding {
	all := []binding{
		{"Refresh Photo (Ctrl+Shift+R)", hotkey.KeyR, a.Refresh},
		{"Set Wallpaper (Ctrl+Shift+W)", hotkey.KeyW, a.SetWallpaper},
		{"Download Photo (Ctrl+Shift+D)", hotkey.KeyD, a.Download},
	}
	var out []binding
	for _, b := range all {
		if b.action != nil {
			out = append(out, b)
		}
	}
	return out
}

// guarded wraps action so a key held down or pressed again while the action
// is still running does not queue another run.
func guarded(action func()) func() bool {
	running := util.NewSafeFlag()
	return func() bool {
		if !running.TryRaise() {
			return false
		}
		go func() {
			defer running.Set(false)
			action()
		}()
		return true
	}
}

// StartListeners registers every bound shortcut and returns a function that
// unregisters them. Registration failures are logged and skipped.
func StartListeners(actions Actions) (stop func()) {
	var registered []*hotkey.Hotkey

	for _, b := range actions.bindings() {
		hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, b.key)
		if err := hk.Register(); err != nil {
			log.Printf("Hotkey: failed to register %s: %v", b.name, err)
			continue
		}
		log.Printf("Hotkey: registered %s", b.name)
		registered = append(registered, hk)

		fire := guarded(b.action)
		name := b.name
		go func() {
			for range hk.Keydown() {
				if !fire() {
					log.Debugf("Hotkey: %s ignored, still running", name)
				}
			}
		}()
	}

	return func() {
		for _, hk := range registered {
			if err := hk.Unregister(); err != nil {
				log.Printf("Hotkey: failed to unregister: %v", err)
			}
		}
	}
}

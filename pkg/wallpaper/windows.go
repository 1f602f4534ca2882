//go:build windows

package wallpaper

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02

	desktopKeyPath = `Control Panel\Desktop`
)

// windowsOS writes the style to the registry, then asks the shell to reload.
type windowsOS struct{}

func getOS() OS {
	return &windowsOS{}
}

func wallpaperStyle(scale ScaleMode) string {
	switch scale {
	case ScaleCenter:
		return "0"
	case ScaleFit:
		return "6"
	case ScaleFill:
		return "10"
	}
	return "2"
}

func (w *windowsOS) setWallpaper(imagePath string, scale ScaleMode) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, desktopKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open desktop registry key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("WallpaperStyle", wallpaperStyle(scale)); err != nil {
		return fmt.Errorf("set WallpaperStyle: %w", err)
	}
	if err := key.SetStringValue("TileWallpaper", "0"); err != nil {
		return fmt.Errorf("set TileWallpaper: %w", err)
	}

	pathUTF16, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return err
	}
	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(pathUTF16)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}
	return nil
}

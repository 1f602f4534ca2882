//go:build !linux && !windows && !darwin

package wallpaper

import (
	"fmt"
	"runtime"
)

type unsupportedOS struct{}

func getOS() OS {
	return unsupportedOS{}
}

func (unsupportedOS) setWallpaper(string, ScaleMode) error {
	return fmt.Errorf("setting the wallpaper is not supported on %s", runtime.GOOS)
}

//go:build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
	"strings"
)

// macOSOS drives System Events; the desktop keeps its own scaling, so the
// scale mode is not applied.
type macOSOS struct{}

func getOS() OS {
	return &macOSOS{}
}

func (m *macOSOS) setWallpaper(imagePath string, _ ScaleMode) error {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(imagePath)
	script := fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to "%s"`, escaped)

	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

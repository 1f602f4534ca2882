//go:build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// linuxOS covers the common X11 desktops plus GNOME and Sway on Wayland.
type linuxOS struct{}

func getOS() OS {
	return &linuxOS{}
}

func (l *linuxOS) setWallpaper(imagePath string, scale ScaleMode) error {
	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = os.Getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	switch {
	case strings.Contains(desktopEnv, "gnome"), strings.Contains(desktopEnv, "unity"),
		strings.Contains(desktopEnv, "cinnamon"), strings.Contains(desktopEnv, "mutter"):
		return l.setWallpaperGNOME(imagePath, scale)
	case strings.Contains(desktopEnv, "kde"):
		return l.setWallpaperKDE(imagePath, scale)
	case strings.Contains(desktopEnv, "xfce"):
		return l.setWallpaperXFCE(imagePath, scale)
	case strings.Contains(desktopEnv, "sway"):
		return l.setWallpaperSway(imagePath, scale)
	}
	return fmt.Errorf("unsupported desktop environment: %q", desktopEnv)
}

func gnomePictureOption(scale ScaleMode) string {
	switch scale {
	case ScaleFill:
		return "zoom"
	case ScaleFit:
		return "scaled"
	case ScaleCenter:
		return "centered"
	}
	return "stretched"
}

func (l *linuxOS) setWallpaperGNOME(imagePath string, scale ScaleMode) error {
	uri := "file://" + imagePath
	if err := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-options", gnomePictureOption(scale)).Run(); err != nil {
		return fmt.Errorf("gsettings picture-options: %w", err)
	}
	if err := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri).Run(); err != nil {
		return fmt.Errorf("gsettings picture-uri: %w", err)
	}
	// Dark-style variant; absent before GNOME 42.
	_ = exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri).Run()
	return nil
}

func kdeFillMode(scale ScaleMode) int {
	switch scale {
	case ScaleFit:
		return 1
	case ScaleFill:
		return 2
	case ScaleCenter:
		return 6
	}
	return 0
}

func (l *linuxOS) setWallpaperKDE(imagePath string, scale ScaleMode) error {
	script := fmt.Sprintf(`
var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
    var d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", "file://%s");
    d.writeConfig("FillMode", %d);
}`, imagePath, kdeFillMode(scale))

	cmd := exec.Command("dbus-send", "--session", "--dest=org.kde.plasmashell", "--type=method_call",
		"/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", "string:"+script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("plasmashell evaluateScript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func xfceImageStyle(scale ScaleMode) string {
	switch scale {
	case ScaleCenter:
		return "1"
	case ScaleFit:
		return "4"
	case ScaleFill:
		return "5"
	}
	return "3"
}

// setWallpaperXFCE updates every monitor/workspace property xfdesktop knows about.
func (l *linuxOS) setWallpaperXFCE(imagePath string, scale ScaleMode) error {
	out, err := exec.Command("xfconf-query", "--channel", "xfce4-desktop", "--list").Output()
	if err != nil {
		return fmt.Errorf("xfconf-query list: %w", err)
	}

	var updated int
	for _, prop := range strings.Split(string(out), "\n") {
		prop = strings.TrimSpace(prop)
		if !strings.HasSuffix(prop, "/last-image") {
			continue
		}
		base := strings.TrimSuffix(prop, "/last-image")
		if err := exec.Command("xfconf-query", "--channel", "xfce4-desktop", "--property", prop, "--set", imagePath).Run(); err != nil {
			return fmt.Errorf("xfconf-query set %s: %w", prop, err)
		}
		_ = exec.Command("xfconf-query", "--channel", "xfce4-desktop", "--property", base+"/image-style", "--set", xfceImageStyle(scale)).Run()
		updated++
	}
	if updated == 0 {
		return fmt.Errorf("no xfce4-desktop image properties found")
	}
	return nil
}

// setWallpaperSway replaces any running swaybg. swaybg stays in the foreground,
// so it is started and released rather than waited on.
func (l *linuxOS) setWallpaperSway(imagePath string, scale ScaleMode) error {
	_ = exec.Command("pkill", "-x", "swaybg").Run()

	cmd := exec.Command("swaybg", "-m", string(scale), "-i", imagePath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("swaybg: %w", err)
	}
	return cmd.Process.Release()
}

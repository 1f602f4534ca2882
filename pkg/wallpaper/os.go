package wallpaper

import (
	"fmt"
	"strings"
)

// ScaleMode is how the desktop scales the wallpaper image.
type ScaleMode string

// Supported scale modes.
const (
	ScaleStretch ScaleMode = "stretch"
	ScaleFill    ScaleMode = "fill"
	ScaleFit     ScaleMode = "fit"
	ScaleCenter  ScaleMode = "center"
)

// ScaleModes lists the modes in display order.
var ScaleModes = []ScaleMode{ScaleStretch, ScaleFill, ScaleFit, ScaleCenter}

// ParseScaleMode maps a stored preference to a ScaleMode.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch m := ScaleMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ScaleStretch, ScaleFill, ScaleFit, ScaleCenter:
		return m, nil
	case "":
		return ScaleStretch, nil
	}
	return ScaleStretch, fmt.Errorf("unknown scale mode %q", s)
}

// OS is the platform wallpaper primitive.
type OS interface {
	setWallpaper(imagePath string, scale ScaleMode) error
}

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme choices offered in settings.
var themeOptions = []string{"System", "Light", "Dark"}

// variantTheme pins the default theme to one variant.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// themeFor maps a stored preference to a theme. Unknown names follow the system.
func themeFor(name string) fyne.Theme {
	switch name {
	case "Light":
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight}
	case "Dark":
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark}
	}
	return theme.DefaultTheme()
}

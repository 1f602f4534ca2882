package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// tappableImage is an image that runs a callback when clicked. Taps are
// ignored while it is disabled.
type tappableImage struct {
	widget.DisableableWidget
	image    *canvas.Image
	OnTapped func()
}

func newTappableImage(minSize fyne.Size, onTapped func()) *tappableImage {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(minSize)

	t := &tappableImage{image: img, OnTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

// SetResource swaps the displayed image.
func (t *tappableImage) SetResource(res fyne.Resource) {
	t.image.Resource = res
	t.image.Refresh()
}

func (t *tappableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.image)
}

func (t *tappableImage) Tapped(*fyne.PointEvent) {
	if t.Disabled() || t.OnTapped == nil {
		return
	}
	t.OnTapped()
}

func (t *tappableImage) Cursor() desktop.Cursor {
	if t.Disabled() {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// labelFraction is the share of a setting row taken by its label.
const labelFraction = float32(1) / 3

// settingRowLayout puts a label on the left and its control on the right.
type settingRowLayout struct {
	fraction float32
}

func (l *settingRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, o := range objects {
		min := o.MinSize()
		w += min.Width
		h = fyne.Max(h, min.Height)
	}
	return fyne.NewSize(w, h)
}

func (l *settingRowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	labelWidth := size.Width * l.fraction
	objects[0].Move(fyne.NewPos(0, 0))
	objects[0].Resize(fyne.NewSize(labelWidth, size.Height))
	objects[1].Move(fyne.NewPos(labelWidth, 0))
	objects[1].Resize(fyne.NewSize(size.Width-labelWidth, size.Height))
}

// newSettingRow lays out a titled control.
func newSettingRow(title string, control fyne.CanvasObject) *fyne.Container {
	label := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.New(&settingRowLayout{fraction: labelFraction}, label, control)
}

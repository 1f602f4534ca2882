package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Backdrop/pkg/photo"
	"github.com/dixieflatline76/Backdrop/util/log"
)

// HistoryReader lists the photos that have been set as wallpaper.
type HistoryReader interface {
	List() ([]photo.Record, error)
}

// historyView is a grid of past wallpapers. Selecting one hands it to onSelect.
type historyView struct {
	store    HistoryReader
	images   *imageCache
	onSelect func(photo.Record)

	items  []photo.Record
	grid   *widget.GridWrap
	status *widget.Label

	content fyne.CanvasObject
}

func newHistoryView(store HistoryReader, images *imageCache, onSelect func(photo.Record)) *historyView {
	hv := &historyView{store: store, images: images, onSelect: onSelect}

	hv.status = widget.NewLabel("")
	hv.status.Wrapping = fyne.TextWrapWord
	hv.grid = widget.NewGridWrap(
		func() int { return len(hv.items) },
		hv.createCell,
		hv.updateCell,
	)
	hv.grid.OnSelected = func(id widget.GridWrapItemID) {
		hv.grid.UnselectAll()
		if id < 0 || id >= len(hv.items) {
			return
		}
		hv.onSelect(hv.items[id])
	}

	hv.content = container.NewBorder(hv.status, nil, nil, nil, hv.grid)
	return hv
}

// reload re-reads the history. It must run on the UI goroutine.
func (hv *historyView) reload() {
	list, err := hv.store.List()
	if err != nil {
		log.Printf("UI: failed to read history: %v", err)
		hv.status.SetText("Could not read history: " + err.Error())
		hv.status.Show()
		return
	}

	hv.items = list
	if len(list) == 0 {
		hv.status.SetText("No wallpapers yet. Photos you set as wallpaper appear here.")
		hv.status.Show()
	} else {
		hv.status.Hide()
	}
	hv.grid.Refresh()
}

// historyCell remembers which record it shows so late thumbnails are dropped.
type historyCell struct {
	widget.BaseWidget
	id     string
	image  *canvas.Image
	author *widget.Label
}

func newHistoryCell() *historyCell {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(thumbnailWidth, thumbnailHeight))

	c := &historyCell{image: img, author: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})}
	c.author.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

func (c *historyCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, c.author, nil, nil, c.image))
}

func (hv *historyView) createCell() fyne.CanvasObject {
	return newHistoryCell()
}

func (hv *historyView) updateCell(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(hv.items) {
		return
	}
	rec := hv.items[id]
	cell := obj.(*historyCell)
	if cell.id == rec.ID {
		return
	}
	cell.id = rec.ID
	cell.author.SetText(rec.AuthorName())
	cell.image.Resource = nil
	cell.image.Refresh()

	go func() {
		res, err := hv.images.Resource(context.Background(), rec.URLs.Small)
		if err != nil {
			log.Printf("UI: thumbnail for %s: %v", rec.ID, err)
			return
		}
		fyne.Do(func() {
			if cell.id == rec.ID {
				cell.image.Resource = res
				cell.image.Refresh()
			}
		})
	}()
}

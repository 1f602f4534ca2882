package ui

import (
	"context"
	"errors"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Backdrop/pkg/viewer"
	"github.com/dixieflatline76/Backdrop/util/log"
)

// photoView shows the current photo and its actions.
type photoView struct {
	ctrl   *viewer.Controller
	images *imageCache
	window fyne.Window
	notify func(title, content string)

	background  *canvas.Rectangle
	preview     *tappableImage
	hint        *widget.Label
	activity    *widget.Activity
	refreshBtn  *widget.Button
	setBtn      *widget.Button
	downloadBtn *widget.Button
	author      *widget.Hyperlink

	shownID string
	content fyne.CanvasObject
}

func newPhotoView(ctrl *viewer.Controller, images *imageCache, window fyne.Window, notify func(title, content string)) *photoView {
	pv := &photoView{
		ctrl:   ctrl,
		images: images,
		window: window,
		notify: notify,
	}

	pv.background = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	pv.preview = newTappableImage(fyne.NewSize(previewWidth, previewHeight), func() { go pv.refresh() })
	pv.hint = widget.NewLabelWithStyle("Fetching a photo...", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	pv.activity = widget.NewActivity()
	pv.activity.Hide()
	pv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() { go pv.refresh() })
	pv.setBtn = widget.NewButtonWithIcon("Set as Wallpaper", theme.ComputerIcon(), func() { go pv.setWallpaper() })
	pv.setBtn.Importance = widget.HighImportance
	pv.downloadBtn = widget.NewButtonWithIcon("Download", theme.DownloadIcon(), func() { go pv.download() })
	pv.author = widget.NewHyperlink("", nil)

	controls := container.NewHBox(
		pv.author,
		layout.NewSpacer(),
		pv.activity,
		pv.refreshBtn,
		pv.setBtn,
		pv.downloadBtn,
	)
	pv.content = container.NewBorder(nil, container.NewPadded(controls), nil, nil,
		container.NewStack(pv.background, container.NewPadded(pv.preview), pv.hint))

	pv.apply(ctrl.State())
	return pv
}

// apply renders s. It must run on the UI goroutine.
func (pv *photoView) apply(s viewer.State) {
	if s.GetPhotoLoading {
		pv.activity.Show()
		pv.activity.Start()
	} else {
		pv.activity.Stop()
		pv.activity.Hide()
	}
	enable(pv.refreshBtn, s.CanRefresh())
	enable(pv.preview, s.CanRefresh())
	enable(pv.setBtn, s.CanSetWallpaper())
	enable(pv.downloadBtn, s.CanDownload())

	if !s.HasPhoto {
		pv.author.Hide()
		return
	}
	pv.hint.Hide()
	pv.author.Show()
	if s.Photo.ID == pv.shownID {
		return
	}
	pv.shownID = s.Photo.ID

	pv.background.FillColor = s.Photo.BackgroundColor()
	pv.background.Refresh()
	pv.author.SetText("By " + s.Photo.AuthorName())
	if u, err := url.Parse(s.Photo.Links.HTML); err == nil {
		pv.author.SetURL(u)
	}

	id, src := s.Photo.ID, s.Photo.URLs.Small
	go func() {
		res, err := pv.images.Resource(context.Background(), src)
		if err != nil {
			log.Printf("UI: %v", err)
			return
		}
		fyne.Do(func() {
			if pv.shownID == id {
				pv.preview.SetResource(res)
			}
		})
	}()
}

func (pv *photoView) refresh() {
	if err := pv.ctrl.GetPhoto(context.Background()); err != nil {
		pv.showError(err)
	}
}

func (pv *photoView) setWallpaper() {
	path, err := pv.ctrl.SetWallpaper(context.Background())
	if err != nil {
		pv.showError(err)
		return
	}
	pv.notify("Wallpaper set", path)
}

func (pv *photoView) download() {
	path, err := pv.ctrl.Download(context.Background())
	if err != nil {
		pv.showError(err)
		return
	}
	pv.notify("Download completed!", path)
	fyne.Do(func() {
		dialog.ShowInformation("Download", "Download completed!", pv.window)
	})
}

func (pv *photoView) showError(err error) {
	if errors.Is(err, viewer.ErrBusy) {
		return
	}
	fyne.Do(func() {
		dialog.ShowError(err, pv.window)
	})
}

func enable(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}

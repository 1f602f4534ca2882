package viewer

import "github.com/dixieflatline76/Backdrop/pkg/photo"

// State is a snapshot of the current photo and its pending operations.
type State struct {
	Photo               photo.Record
	HasPhoto            bool
	GetPhotoLoading     bool
	SetWallpaperLoading bool
	DownloadLoading     bool
	// LastError is the failure of the most recent operation, nil once one succeeds.
	LastError error
}

// CanRefresh reports whether a new fetch may be started from the UI.
func (s State) CanRefresh() bool {
	return !s.GetPhotoLoading && !s.SetWallpaperLoading
}

// CanSetWallpaper reports whether the set-wallpaper action is available.
func (s State) CanSetWallpaper() bool {
	return s.HasPhoto && !s.GetPhotoLoading && !s.SetWallpaperLoading
}

// CanDownload reports whether the download action is available.
func (s State) CanDownload() bool {
	return s.HasPhoto && !s.GetPhotoLoading && !s.SetWallpaperLoading && !s.DownloadLoading
}

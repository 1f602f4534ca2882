package ui

const (
	windowWidth  = 960
	windowHeight = 680

	previewWidth  = 640
	previewHeight = 420

	thumbnailWidth  = 200
	thumbnailHeight = 140
)

// Tab titles; the first two form the navigation bar.
const (
	photoTabTitle    = "Photo"
	historyTabTitle  = "History"
	settingsTabTitle = "Settings"
)

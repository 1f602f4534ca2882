package config

import "strings"

// AppVersion is injected at build time via -ldflags.
var AppVersion = "0.0.0"

// AppName is the display name of the application.
const AppName = "Backdrop"

// AppID is the fyne application id; it scopes preferences.
const AppID = "com.dixieflatline76.backdrop"

// LogWinSubDir is the log directory under the user cache dir on Windows.
var LogWinSubDir = AppName

// LogSubDir is the log directory under the home dir elsewhere.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the log file extension.
var LogExt = ".log"

// LogFileName returns the rotating log file name.
func LogFileName() string {
	return strings.ToLower(AppName) + LogExt
}

package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilePrefix starts every file name written by this package.
const FilePrefix = "unsplash-"

// FileExt is the extension of cached and downloaded files.
const FileExt = ".png"

// Paths are the two directories files are written to.
type Paths struct {
	PicturesDir  string
	DownloadsDir string
}

// NewPaths derives the Pictures and Downloads directories from home.
func NewPaths(home string) Paths {
	return Paths{
		PicturesDir:  filepath.Clean(filepath.Join(home, "Pictures")),
		DownloadsDir: filepath.Clean(filepath.Join(home, "Downloads")),
	}
}

// DefaultPaths uses the current user's home directory.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewPaths(home), nil
}

// CachePath is the wallpaper file for id. It depends on id alone.
func (p Paths) CachePath(id string) (string, error) {
	return fileFor(p.PicturesDir, id)
}

// DownloadPath is the user download file for id.
func (p Paths) DownloadPath(id string) (string, error) {
	return fileFor(p.DownloadsDir, id)
}

func fileFor(dir, id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	return filepath.Join(dir, FilePrefix+id+FileExt), nil
}

// validateID ensures the id cannot escape its directory.
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("invalid id: empty")
	}
	if strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid id %q: contains illegal characters", id)
	}
	return nil
}

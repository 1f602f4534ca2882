package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

// UnsplashAccessKey is the build-time default Unsplash access key, injected via -ldflags.
var UnsplashAccessKey = ""

const (
	keyringService        = AppName
	unsplashAccessKeyUser = "unsplash_access_key"
)

// GetPath returns the per-user application directory (~/.backdrop).
func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName)), nil
}

// GetUnsplashAccessKey returns the key stored in the OS keyring, or the
// build-time default when none is stored.
func GetUnsplashAccessKey() (string, error) {
	key, err := keyring.Get(keyringService, unsplashAccessKeyUser)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return UnsplashAccessKey, nil
	case err != nil:
		return UnsplashAccessKey, fmt.Errorf("failed to read access key from keyring: %w", err)
	case key == "":
		return UnsplashAccessKey, nil
	}
	return key, nil
}

// SetUnsplashAccessKey stores key in the OS keyring. An empty key removes it.
func SetUnsplashAccessKey(key string) error {
	if key == "" {
		err := keyring.Delete(keyringService, unsplashAccessKeyUser)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to delete access key from keyring: %w", err)
		}
		return nil
	}
	if err := keyring.Set(keyringService, unsplashAccessKeyUser, key); err != nil {
		return fmt.Errorf("failed to save access key to keyring: %w", err)
	}
	return nil
}

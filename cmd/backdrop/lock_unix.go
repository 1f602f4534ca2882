//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/Backdrop/config"
	"golang.org/x/sys/unix"
)

var lockFile *os.File

// acquireLock takes an exclusive flock on a file in dir. It reports false
// when another process holds it.
func acquireLock(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	file, err := os.OpenFile(filepath.Join(dir, config.AppName+".lock"), os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock: %w", err)
	}
	lockFile = file
	return true, nil
}

func releaseLock() {
	if lockFile == nil {
		return
	}
	_ = unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)
	lockFile.Close()
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockFileSuffix = ".lock"
)

// StateLock manages a file-based lock for the state database. State writes
// are single-writer by design, so concurrent lunchpick processes queue on it.
type StateLock struct {
	lock *flock.Flock
	path string
}

// NewStateLock creates a new lock for the given database path.
func NewStateLock(dbPath string) (*StateLock, error) {
	absPath, err := GetAbsStatePath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute state path: %w", err)
	}
	lockPath := absPath + lockFileSuffix
	return &StateLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}, nil
}

// Lock acquires the state lock, waiting if necessary.
// It will print a message if it has to wait.
func (l *StateLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another lunchpick process is writing to the state file, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the state lock.
func (l *StateLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// GetAbsStatePath resolves the state database path, defaulting under
// ~/.config/lunchpick.
func GetAbsStatePath(dbPath string) (string, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "lunchpick", "lunchpick.sqlite"), nil
	}
	return filepath.Abs(dbPath)
}

// Package runlock guards an output path with an advisory file lock so two
// translatesrt runs cannot write the same subtitle file at once.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("output is locked by another run")

// Lock is a held advisory lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for target.
func PathFor(target string) string {
	return target + ".lock"
}

// Acquire takes a non-blocking lock on target's lock file.
func Acquire(target string) (*Lock, error) {
	path := PathFor(target)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks the lock file. The file is left in place so every run
// contends on the same inode.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

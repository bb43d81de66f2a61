package storage

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFilename = ".scrape.lock"

// RunLock guards the data directory against concurrent scraper runs. Two
// processes interleaving checkpoint and court writes would corrupt both
// artifacts, so a run refuses to start if the lock is held.
type RunLock struct {
	fl *flock.Flock
}

// AcquireLock takes the run lock for the store's data directory without
// blocking. It fails if another run holds the lock.
func (s *Store) AcquireLock() (*RunLock, error) {
	fl := flock.New(filepath.Join(s.dataDir, lockFilename))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another scrape is already running against %s", s.dataDir)
	}
	return &RunLock{fl: fl}, nil
}

// Release drops the run lock.
func (l *RunLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

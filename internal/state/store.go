package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/egcctl/egcapi"
)

// Snapshot is the latest view of the status document for the dashboard.
type Snapshot struct {
	Status              egcapi.Status
	HasStatus           bool
	ModTime             time.Time // document mtime at the last successful read
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports whether the document has been unreadable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored status. When err is non-nil the previous status
// is kept and the error recorded.
func (s *Store) Update(status *egcapi.Status, modTime time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastUpdated = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	} else {
		s.snapshot.Status = egcapi.Status{}
		s.snapshot.HasStatus = false
	}
	s.snapshot.ModTime = modTime
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

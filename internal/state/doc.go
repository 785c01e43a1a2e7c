// Package state shares the latest status document reading between the
// background poller and the dashboard.
//
// # Overview
//
// The poller calls Store.Update after every read of the status document;
// the dashboard calls Store.Snapshot on its own tick. A sync.RWMutex guards
// the snapshot, so the dashboard never blocks on file I/O.
//
//	Poller:                          Dashboard:
//	client.Status()                  snap := store.Snapshot()
//	os.Stat(document)                render(snap)
//	store.Update(status, mtime, err)
//
// # Update Semantics
//
// On success the status, document mtime and timestamp are replaced and the
// failure counter reset. On error the previous status and mtime stay in
// place, LastError is recorded and ConsecutiveFailures increments, so the
// dashboard keeps showing the last good reading next to the error.
//
// IsOffline turns true after two consecutive failures, which is how the
// dashboard distinguishes a document caught mid-rewrite from one that is
// gone.
//
// # Zero Value
//
// A zero Store is ready to use and Snapshot returns a zero Snapshot with
// HasStatus false until the first successful Update.
package state

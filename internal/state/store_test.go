package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/egcctl/egcapi"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	status := &egcapi.Status{Running: true, NumScenes: 10}
	mtime := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	before := time.Now()
	s.Update(status, mtime, nil)

	snap := s.Snapshot()
	if !snap.HasStatus || !snap.Status.Running || snap.Status.NumScenes != 10 {
		t.Fatalf("snapshot status = %#v, want running with 10 scenes", snap.Status)
	}
	if !snap.ModTime.Equal(mtime) {
		t.Fatalf("ModTime = %v, want %v", snap.ModTime, mtime)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Mutating the caller's status must not reach the store.
	status.Running = false
	if !s.Snapshot().Status.Running {
		t.Fatalf("store shares caller's status value")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	mtime := time.Now().Add(-time.Minute)
	s.Update(&egcapi.Status{Recording: true}, mtime, nil)
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.Update(nil, time.Time{}, origErr)

	snap := s.Snapshot()
	if snap.HasStatus != prev.HasStatus || snap.Status != prev.Status {
		t.Fatalf("status changed on error: got %#v want %#v", snap.Status, prev.Status)
	}
	if !snap.ModTime.Equal(mtime) {
		t.Fatalf("ModTime changed on error: got %v want %v", snap.ModTime, mtime)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("zero store = %+v, want online with no failures", snap)
	}

	for i, wantOffline := range []bool{false, true, true} {
		s.Update(nil, time.Time{}, errors.New("fail"))
		snap := s.Snapshot()
		if snap.ConsecutiveFailures != i+1 {
			t.Fatalf("ConsecutiveFailures = %d, want %d", snap.ConsecutiveFailures, i+1)
		}
		if snap.IsOffline() != wantOffline {
			t.Fatalf("IsOffline() after %d failures = %v, want %v", i+1, snap.IsOffline(), wantOffline)
		}
	}

	s.Update(&egcapi.Status{Running: true}, time.Now(), nil)
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success = %+v, want counter reset", snap)
	}
}

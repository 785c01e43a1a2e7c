package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/five82/egcctl/egcapi"
	"github.com/five82/egcctl/internal/logging"
	"github.com/five82/egcctl/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeSource struct {
	mu     sync.Mutex
	status egcapi.Status
	err    error
	path   string
	calls  int
}

func (f *fakeSource) Status() (egcapi.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.status, f.err
}

func (f *fakeSource) Path() string { return f.path }

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRefresh_RecordsStatusAndModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EGCAPILite.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	mtime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	var store state.Store
	src := &fakeSource{status: egcapi.Status{Streaming: true}, path: path}
	if err := refresh(&store, src); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}

	snap := store.Snapshot()
	if !snap.HasStatus || !snap.Status.Streaming {
		t.Fatalf("snapshot = %+v, want streaming status", snap)
	}
	if !snap.ModTime.Equal(mtime) {
		t.Fatalf("ModTime = %v, want %v", snap.ModTime, mtime)
	}
}

func TestRefresh_ErrorRecorded(t *testing.T) {
	var store state.Store
	want := errors.New("document busy")
	if err := refresh(&store, &fakeSource{err: want}); !errors.Is(err, want) {
		t.Fatalf("refresh error = %v, want %v", err, want)
	}
	snap := store.Snapshot()
	if snap.HasStatus || snap.ConsecutiveFailures != 1 || !errors.Is(snap.LastError, want) {
		t.Fatalf("snapshot = %+v, want one recorded failure", snap)
	}
}

func TestStartPoller_PollsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store state.Store
	src := &fakeSource{status: egcapi.Status{Running: true}}
	StartPoller(ctx, &store, src, 10*time.Millisecond, logging.Discard())

	deadline := time.Now().Add(2 * time.Second)
	for src.callCount() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("poller made %d calls, want >= 3", src.callCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !store.Snapshot().Status.Running {
		t.Fatalf("store not updated by poller")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	settled := src.callCount()
	time.Sleep(50 * time.Millisecond)
	if got := src.callCount(); got != settled {
		t.Fatalf("poller kept running after cancel: %d -> %d calls", settled, got)
	}
}

func TestStartPoller_FirstReadIsSynchronous(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store state.Store
	src := &fakeSource{status: egcapi.Status{NumScenes: 4}}
	StartPoller(ctx, &store, src, time.Hour, logging.Discard())

	if got := src.callCount(); got != 1 {
		t.Fatalf("calls after StartPoller = %d, want 1", got)
	}
	if snap := store.Snapshot(); !snap.HasStatus || snap.Status.NumScenes != 4 {
		t.Fatalf("snapshot = %+v, want status populated before return", snap)
	}
}

func TestStartPoller_InitialFailureCounts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store state.Store
	src := &fakeSource{err: errors.New("document busy")}
	StartPoller(ctx, &store, src, time.Hour, logging.Discard())

	if got := src.callCount(); got != 1 {
		t.Fatalf("calls after StartPoller = %d, want 1", got)
	}
	if snap := store.Snapshot(); snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestLogFile(t *testing.T) {
	w, err := LogFile("")
	if err != nil {
		t.Fatalf("LogFile(\"\") error = %v, want nil", err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Fatalf("discard write error = %v", err)
	}
	_ = w.Close()

	path := filepath.Join(t.TempDir(), "dashboard.log")
	w, err = LogFile(path)
	if err != nil {
		t.Fatalf("LogFile(%q) error = %v", path, err)
	}
	_ = w.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "no-such-dir", "dashboard.log")
	if _, err := LogFile(missing); err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LogFile(%q) error = %v, want not-exist error", missing, err)
	}
}

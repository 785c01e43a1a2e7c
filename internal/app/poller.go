package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/five82/egcctl/egcapi"
	"github.com/five82/egcctl/internal/state"
)

const (
	defaultPollInterval = time.Second
	maxBackoff          = 30 * time.Second
)

// StatusSource is what the poller reads from; *egcapi.Client satisfies it.
type StatusSource interface {
	Status() (egcapi.Status, error)
	Path() string
}

// StartPoller reads the document once before returning, so the first frame
// has data, then launches a background goroutine that keeps the store
// fresh, backing off while the document stays unreadable.
func StartPoller(ctx context.Context, store *state.Store, source StatusSource, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	failures := 0
	poll := func() {
		if err := refresh(store, source); err != nil {
			failures++
			logger.Warn("status poll failed", "error", err, "failures", failures, "path", source.Path())
		} else {
			failures = 0
		}
	}

	poll()
	go func() {
		for {
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			poll()
		}
	}()
}

func refresh(store *state.Store, source StatusSource) error {
	status, err := source.Status()
	if err != nil {
		store.Update(nil, time.Time{}, err)
		return err
	}
	var modTime time.Time
	if info, err := os.Stat(source.Path()); err == nil {
		modTime = info.ModTime()
	}
	store.Update(&status, modTime, nil)
	return nil
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/egcctl/egcapi"
	"github.com/five82/egcctl/internal/config"
	"github.com/five82/egcctl/internal/logging"
	"github.com/five82/egcctl/internal/prefs"
	"github.com/five82/egcctl/internal/state"
	"github.com/five82/egcctl/internal/ui"
)

// Options configure the dashboard.
type Options struct {
	ConfigPath   string
	DocumentPath string // overrides config document_path
	PrefsPath    string // empty uses default ~/.config/egcctl/prefs.toml
	PollEvery    int    // seconds; zero uses config
	LogLevel     string // overrides config log_level
	LogWriter    io.Writer
}

// Run boots the dashboard until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if doc := strings.TrimSpace(opts.DocumentPath); doc != "" {
		cfg.DocumentPath = doc
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	// The alt screen owns stdout/stderr while the UI runs.
	logWriter := opts.LogWriter
	if logWriter == nil {
		logWriter = io.Discard
	}
	logger, err := logging.NewFromConfig(cfg, logWriter)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With("component", "dashboard")

	client, err := egcapi.NewClient(cfg.DocumentPath)
	if err != nil {
		return err
	}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = secondsToDuration(opts.PollEvery)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	StartPoller(ctx, store, client, interval, logger)

	return ui.Run(ui.Options{
		Context:          ctx,
		Client:           client,
		Store:            store,
		DocumentPath:     client.Path(),
		PollTick:         interval,
		FlashbackSeconds: cfg.FlashbackSeconds,
		ThemeName:        userPrefs.Theme,
		ShowFeatures:     userPrefs.ShowFeatures,
		PrefsPath:        opts.PrefsPath,
		Logger:           logger,
	})
}

// LogFile opens path for dashboard logging. An empty path discards logs.
func LogFile(path string) (io.WriteCloser, error) {
	if strings.TrimSpace(path) == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

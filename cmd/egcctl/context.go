package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/five82/egcctl/egcapi"
	"github.com/five82/egcctl/internal/config"
	"github.com/five82/egcctl/internal/logging"
)

type commandContext struct {
	configFlag   *string
	documentFlag *string
	logLevelFlag *string

	configOnce sync.Once
	config     config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
	logErr     error
}

func newCommandContext(configFlag, documentFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		documentFlag: documentFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if doc := flagValue(c.documentFlag); doc != "" {
			expanded, err := config.ExpandPath(doc)
			if err != nil {
				c.configErr = fmt.Errorf("document path: %w", err)
				return
			}
			cfg.DocumentPath = expanded
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.LogLevel = strings.ToLower(level)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// documentPath returns the configured document path, or the platform
// default when none is set.
func (c *commandContext) documentPath() (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.DocumentPath != "" {
		return cfg.DocumentPath, nil
	}
	return egcapi.DefaultPath()
}

func (c *commandContext) withClient(fn func(*egcapi.Client) error) error {
	path, err := c.documentPath()
	if err != nil {
		return err
	}
	client, err := egcapi.NewClient(path)
	if err != nil {
		return wrapClientError(err)
	}
	return fn(client)
}

// ensureLogger builds the stderr logger from config once. An invalid
// log_format fails the command, matching the dashboard.
func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			c.logErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.log = logger.With("component", "cli")
	})
	return c.log, c.logErr
}

// logger returns the logger built by ensureLogger in PersistentPreRunE.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	logger, err := c.ensureLogger(cmd)
	if err != nil {
		return logging.Discard()
	}
	return logger
}

func wrapClientError(err error) error {
	var initErr *egcapi.InitError
	if errors.As(err, &initErr) && errors.Is(err, egcapi.ErrDocumentNotFound) {
		return fmt.Errorf("%w; is Elgato Game Capture installed and running?", err)
	}
	return err
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/egcctl/internal/app"
)

func newPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved status document path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.documentPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: document does not exist yet")
			}
			return nil
		},
	}
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var pollSeconds int
	var logFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Open the interactive status dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logWriter, err := app.LogFile(logFile)
			if err != nil {
				return err
			}
			defer logWriter.Close()

			return app.Run(cmd.Context(), app.Options{
				ConfigPath:   flagValue(ctx.configFlag),
				DocumentPath: cfg.DocumentPath,
				PollEvery:    pollSeconds,
				LogLevel:     cfg.LogLevel,
				LogWriter:    logWriter,
			})
		},
	}
	cmd.Flags().IntVar(&pollSeconds, "poll", 0, "Refresh interval in seconds (defaults to config poll_seconds)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write dashboard logs to this file")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var documentFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &documentFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "egcctl",
		Short:         "Control Elgato Game Capture through its status document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			_, err := ctx.ensureLogger(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&documentFlag, "document", "d", "", "Path to EGCAPILite.json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level for stderr diagnostics (debug, info, warn, error)")

	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newCapabilitiesCommand(ctx))
	for _, cmd := range newRequestCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newFlashbackCommand(ctx))
	rootCmd.AddCommand(newSceneCommand(ctx))
	rootCmd.AddCommand(newPathCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))

	return rootCmd
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/egcctl/egcapi"
)

// requestDef describes one leaf command that writes a single request.
type requestDef struct {
	use     string
	short   string
	message string
	run     func(*egcapi.Client) error
}

func newRequestCommands(ctx *commandContext) []*cobra.Command {
	record := newRequestGroup(ctx, "record", "Start, stop or toggle recording", []requestDef{
		{"start", "Request recording start", "Recording start requested", (*egcapi.Client).StartRecording},
		{"stop", "Request recording stop", "Recording stop requested", (*egcapi.Client).StopRecording},
		{"toggle", "Request the opposite of the current recording state", "Recording toggle requested", (*egcapi.Client).ToggleRecording},
	})
	stream := newRequestGroup(ctx, "stream", "Start, stop or toggle streaming", []requestDef{
		{"start", "Request streaming start", "Streaming start requested", (*egcapi.Client).StartStreaming},
		{"stop", "Request streaming stop", "Streaming stop requested", (*egcapi.Client).StopStreaming},
		{"toggle", "Request the opposite of the current streaming state", "Streaming toggle requested", (*egcapi.Client).ToggleStreaming},
	})
	commentary := newRequestGroup(ctx, "commentary", "Activate, deactivate or toggle live commentary", []requestDef{
		{"on", "Request live commentary activation", "Live commentary activation requested", (*egcapi.Client).ActivateLiveCommentary},
		{"off", "Request live commentary deactivation", "Live commentary deactivation requested", (*egcapi.Client).DeactivateLiveCommentary},
		{"toggle", "Request the opposite of the current commentary state", "Live commentary toggle requested", (*egcapi.Client).ToggleLiveCommentary},
	})
	screenshot := newRequestCommand(ctx, requestDef{
		use:     "screenshot",
		short:   "Request a screenshot",
		message: "Screenshot requested",
		run:     (*egcapi.Client).SaveScreenshot,
	})
	return []*cobra.Command{record, stream, commentary, screenshot}
}

func newRequestGroup(ctx *commandContext, use, short string, defs []requestDef) *cobra.Command {
	group := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	for _, def := range defs {
		group.AddCommand(newRequestCommand(ctx, def))
	}
	return group
}

func newRequestCommand(ctx *commandContext, def requestDef) *cobra.Command {
	return &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *egcapi.Client) error {
				if err := def.run(client); err != nil {
					return err
				}
				ctx.logger(cmd).Debug("request written", "request", cmd.CommandPath(), "path", client.Path())
				fmt.Fprintln(cmd.OutOrStdout(), def.message)
				return nil
			})
		},
	}
}

func newFlashbackCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "flashback [seconds]",
		Short: "Save the flashback buffer (default length from config)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			seconds := cfg.FlashbackSeconds
			if len(args) == 1 {
				seconds, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid seconds %q: %w", args[0], err)
				}
			}
			return ctx.withClient(func(client *egcapi.Client) error {
				if err := client.SaveFlashbackBuffer(seconds); err != nil {
					return err
				}
				ctx.logger(cmd).Debug("request written", "request", "flashback", "seconds", seconds, "path", client.Path())
				fmt.Fprintf(cmd.OutOrStdout(), "Flashback save requested (%ds)\n", seconds)
				return nil
			})
		},
	}
}

func newSceneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scene [index]",
		Short: "Show the selected scene, or select scene index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := -1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid scene index %q: %w", args[0], err)
				}
				index = parsed
			}
			return ctx.withClient(func(client *egcapi.Client) error {
				if len(args) == 0 {
					selected, err := client.SelectedSceneIndex()
					if err != nil {
						return err
					}
					count, err := client.NumScenes()
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), sceneText(egcapi.Status{SelectedSceneIndex: selected, NumScenes: count}))
					return nil
				}
				if err := client.SelectScene(index); err != nil {
					return err
				}
				ctx.logger(cmd).Debug("request written", "request", "scene", "index", index, "path", client.Path())
				fmt.Fprintf(cmd.OutOrStdout(), "Scene %d requested\n", index)
				return nil
			})
		},
	}
}

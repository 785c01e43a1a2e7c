package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/egcctl/egcapi"
)

type statusOutput struct {
	Document   string     `json:"document"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	egcapi.Status
}

type capabilitiesOutput struct {
	Capabilities   egcapi.Flags `json:"capabilities"`
	Features       egcapi.Flags `json:"features"`
	CapabilityMask int          `json:"capability_mask"`
	FeatureMask    int          `json:"feature_mask"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show Game Capture status from the status document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *egcapi.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				out := statusOutput{Document: client.Path(), Status: status}
				if info, err := os.Stat(client.Path()); err == nil {
					mod := info.ModTime()
					out.ModifiedAt = &mod
				}

				if jsonOutput {
					return writeJSON(cmd, out)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderStatusTable(out, shouldColorize(cmd.OutOrStdout())))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderStatusTable(out statusOutput, colorize bool) string {
	modified := "unknown"
	if out.ModifiedAt != nil {
		modified = humanize.Time(*out.ModifiedAt)
	}
	rows := [][]string{
		{"Document", out.Document},
		{"Updated", modified},
		{"Running", onOff(out.Running, colorize)},
		{"Recording", liveOnOff(out.Recording, colorize)},
		{"Streaming", liveOnOff(out.Streaming, colorize)},
		{"Live commentary", onOff(out.CommentaryActive, colorize)},
		{"Scene", sceneText(out.Status)},
		{"Capabilities", flagList(out.Capabilities)},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func newCapabilitiesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "capabilities",
		Aliases: []string{"caps"},
		Short:   "Show capability and feature flags",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *egcapi.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				out := capabilitiesOutput{
					Capabilities:   status.Capabilities,
					Features:       status.Features,
					CapabilityMask: status.Capabilities.Mask(),
					FeatureMask:    status.Features.Mask(),
				}
				if jsonOutput {
					return writeJSON(cmd, out)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderCapabilitiesTable(out, shouldColorize(cmd.OutOrStdout())))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderCapabilitiesTable(out capabilitiesOutput, colorize bool) string {
	rows := make([][]string, 0, len(egcapi.FlagNames)+1)
	for i, name := range egcapi.FlagNames {
		rows = append(rows, []string{
			name,
			strconv.Itoa(1 << i),
			flagMark(out.Capabilities.Has(name), colorize),
			flagMark(out.Features.Has(name), colorize),
		})
	}
	rows = append(rows, []string{
		"mask",
		"",
		strconv.Itoa(out.CapabilityMask),
		strconv.Itoa(out.FeatureMask),
	})
	return renderTable(
		[]string{"Flag", "Bit", "Capability", "Feature"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignCenter, alignCenter},
	)
}

func sceneText(status egcapi.Status) string {
	return fmt.Sprintf("%d/%d", status.SelectedSceneIndex, status.NumScenes)
}

func flagList(flags egcapi.Flags) string {
	names := flags.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

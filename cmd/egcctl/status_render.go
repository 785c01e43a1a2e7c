package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// onOff renders a boolean as yes/no, green or faint on terminals.
func onOff(value bool, colorize bool) string {
	label := "no"
	color := text.Colors{text.Faint}
	if value {
		label = "yes"
		color = text.Colors{text.FgGreen, text.Bold}
	}
	if !colorize {
		return label
	}
	return color.Sprint(label)
}

// liveOnOff is onOff with red for active recording or streaming.
func liveOnOff(value bool, colorize bool) string {
	if value && colorize {
		return text.Colors{text.FgRed, text.Bold}.Sprint("yes")
	}
	return onOff(value, colorize)
}

func flagMark(value bool, colorize bool) string {
	if !value {
		if colorize {
			return text.Faint.Sprint("-")
		}
		return "-"
	}
	if colorize {
		return text.FgGreen.Sprint("✓")
	}
	return "✓"
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/egcctl/egcapi"
)

// maxSceneChips caps the scene strip; only 0-9 have direct keys.
const maxSceneChips = 10

// renderMain renders the full dashboard.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderPathBar())
	b.WriteString("\n\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderContent lays out the flag grid and the scene strip.
func (m Model) renderContent() string {
	if !m.snapshot.HasStatus {
		return m.theme.Styles().MutedText.Render("Waiting for " + truncateMiddle(m.documentPath, 60))
	}

	flags := m.theme.Styles().Panel.Render(m.renderFlagTable())
	scenes := m.theme.Styles().Panel.Render(m.renderScenes())
	if m.width > 0 && lipgloss.Width(flags)+lipgloss.Width(scenes)+1 > m.width {
		return lipgloss.JoinVertical(lipgloss.Left, flags, scenes)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, flags, " ", scenes)
}

// renderFlagTable renders capabilities, and features when enabled, per flag.
func (m Model) renderFlagTable() string {
	styles := m.theme.Styles()
	status := m.snapshot.Status

	headers := []string{"Flag", "Capability"}
	if m.showFeatures {
		headers = append(headers, "Feature")
	}

	rows := make([][]string, 0, len(egcapi.FlagNames))
	for _, name := range egcapi.FlagNames {
		row := []string{flagLabel(name), flagMark(status.Capabilities.Has(name))}
		if m.showFeatures {
			row = append(row, flagMark(status.Features.Has(name)))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.AccentText.Bold(true).PaddingRight(2)
			}
			if col == 0 {
				return styles.Text.PaddingRight(2)
			}
			if row >= 0 && row < len(rows) && rows[row][col] == flagMark(true) {
				return styles.SuccessText.PaddingRight(2)
			}
			return styles.FaintText.PaddingRight(2)
		})
	return t.Render()
}

func flagMark(on bool) string {
	if on {
		return "●"
	}
	return "○"
}

// renderScenes renders one chip per scene with the selected one highlighted.
func (m Model) renderScenes() string {
	styles := m.theme.Styles()
	status := m.snapshot.Status

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Scenes"))
	b.WriteString("\n")

	if status.NumScenes <= 0 {
		b.WriteString(styles.FaintText.Render("none reported"))
		return b.String()
	}

	count := status.NumScenes
	if count > maxSceneChips {
		count = maxSceneChips
	}
	chips := make([]string, 0, count)
	for i := 0; i < count; i++ {
		label := fmt.Sprintf(" %d ", i)
		if i == status.SelectedSceneIndex {
			chips = append(chips, styles.BadgeOn.Render(label))
		} else {
			chips = append(chips, styles.BadgeOff.Render(label))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	if status.NumScenes > maxSceneChips {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("+%d more, use [ and ]", status.NumScenes-maxSceneChips)))
	}
	if status.SelectedSceneIndex >= maxSceneChips {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("selected %d", status.SelectedSceneIndex)))
	}
	return b.String()
}

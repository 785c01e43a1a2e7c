package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/egcctl/egcapi"
)

const logoText = "egcctl"

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasStatus || m.snapshot.IsOffline() {
		return bg.FillLine(m.renderConnectingHeader(styles, bg), m.width)
	}

	status := m.snapshot.Status
	parts := []string{
		bg.Render(logoText, styles.Logo),
		m.theme.Styles().Badge("RUNNING", status.Running),
		m.theme.Styles().LiveBadge("REC", status.Recording),
		m.theme.Styles().LiveBadge("LIVE", status.Streaming),
		m.theme.Styles().Badge("COMMENTARY", status.CommentaryActive),
		bg.Render(sceneSummary(status), styles.AccentText),
	}
	if !m.snapshot.ModTime.IsZero() {
		parts = append(parts, bg.Render("updated "+humanize.Time(m.snapshot.ModTime), styles.MutedText))
	}
	if m.snapshot.LastError != nil {
		parts = append(parts, bg.Render("read failed, showing last status", styles.WarningText))
	}
	return bg.FillLine(bg.Join(parts, 2), m.width)
}

// renderConnectingHeader shows the waiting/error state.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	if m.snapshot.LastError == nil {
		return bg.Join([]string{
			bg.Render(logoText, styles.Logo),
			bg.Render("Reading status document...", styles.MutedText),
		}, 2)
	}

	last := "never"
	if !m.snapshot.ModTime.IsZero() {
		last = humanize.Time(m.snapshot.ModTime)
	}
	return bg.Join([]string{
		bg.Render(logoText, styles.Logo),
		bg.Render(classifyDocumentError(m.snapshot.LastError), styles.DangerText),
		bg.Render("Retrying...", styles.WarningText.Bold(true)),
		bg.Render("last good read "+last, styles.MutedText),
	}, 2)
}

// renderPathBar renders the document path and the flashback length.
func (m Model) renderPathBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	flashback := fmt.Sprintf("flashback %ds", m.flashback)
	limit := m.width - len(flashback) - 8
	if limit < 10 {
		limit = 10
	}
	parts := []string{
		bg.Render(truncateMiddle(m.documentPath, limit), styles.FaintText),
		bg.Render(flashback, styles.InfoText),
	}
	return bg.FillLine(bg.Join(parts, 2), m.width)
}

func sceneSummary(status egcapi.Status) string {
	if status.NumScenes <= 0 {
		return "no scenes"
	}
	return fmt.Sprintf("scene %d/%d", status.SelectedSceneIndex, status.NumScenes)
}

// classifyDocumentError maps read errors to a short header label.
func classifyDocumentError(err error) string {
	var fieldErr *egcapi.FieldError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, os.ErrNotExist):
		return "DOCUMENT MISSING"
	case errors.Is(err, os.ErrPermission):
		return "DOCUMENT NOT READABLE"
	case errors.Is(err, egcapi.ErrMalformedDocument):
		return "DOCUMENT MALFORMED"
	case errors.As(err, &fieldErr):
		return strings.ToUpper("bad field " + string(fieldErr.Section) + "." + fieldErr.Key)
	default:
		return "DOCUMENT ERROR"
	}
}

// renderStatusLine shows the outcome of the most recent request.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	a := m.lastAction
	if a.label == "" {
		return styles.FaintText.Render("No requests sent")
	}
	when := a.at.Format("15:04:05")
	if a.err != nil {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styles.DangerText.Render("✗ "+a.label),
			styles.MutedText.Render("  "+a.err.Error()+"  "+when),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.SuccessText.Render("✓ "+a.label),
		styles.MutedText.Render("  written "+when),
	)
}

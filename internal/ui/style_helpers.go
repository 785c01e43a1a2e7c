package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders segments onto a shared background color. Lipgloss resets
// the background between separately styled segments, which leaves gaps in
// header and footer bars; rendering every space explicitly avoids them.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a helper for the given background color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render applies style plus the background to every word and space of text.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return styled.Render(text)
	}
	words := strings.Split(text, " ")
	out := make([]string, len(words))
	for i, w := range words {
		if w != "" {
			out[i] = styled.Render(w)
		}
	}
	return strings.Join(out, b.space)
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins already rendered parts with n styled spaces.
func (b BgStyle) Join(parts []string, n int) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, b.Spaces(n))
}

// FillLine pads rendered content to width with the background color.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}

// WithBackground returns a copy of the text styles with bgColor applied.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	s.Text = s.Text.Background(bg)
	s.MutedText = s.MutedText.Background(bg)
	s.FaintText = s.FaintText.Background(bg)
	s.AccentText = s.AccentText.Background(bg)
	s.SuccessText = s.SuccessText.Background(bg)
	s.WarningText = s.WarningText.Background(bg)
	s.DangerText = s.DangerText.Background(bg)
	s.InfoText = s.InfoText.Background(bg)
	s.Logo = s.Logo.Background(bg)
	return s
}

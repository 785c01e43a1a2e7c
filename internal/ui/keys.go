package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Requests
	ToggleRecording  key.Binding
	ToggleStreaming  key.Binding
	ToggleCommentary key.Binding
	Screenshot       key.Binding
	Flashback        key.Binding
	FlashbackLonger  key.Binding
	FlashbackShorter key.Binding

	// Scenes
	SelectScene key.Binding
	PrevScene   key.Binding
	NextScene   key.Binding

	// General
	ToggleFeatures key.Binding
	CycleTheme     key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		ToggleRecording: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Toggle recording"),
		),
		ToggleStreaming: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle streaming"),
		),
		ToggleCommentary: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle live commentary"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Screenshot"),
		),
		Flashback: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Save flashback"),
		),
		FlashbackLonger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Flashback +10s"),
		),
		FlashbackShorter: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Flashback -10s"),
		),

		SelectScene: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "Select scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "Previous scene"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "Next scene"),
		),

		ToggleFeatures: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Toggle feature flags"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleRecording, k.ToggleStreaming, k.Screenshot, k.Flashback, k.SelectScene, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleRecording, k.ToggleStreaming, k.ToggleCommentary, k.Screenshot},
		{k.Flashback, k.FlashbackLonger, k.FlashbackShorter},
		{k.SelectScene, k.PrevScene, k.NextScene},
		{k.ToggleFeatures, k.CycleTheme, k.Help, k.Quit},
	}
}

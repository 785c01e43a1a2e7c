package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/egcctl/egcapi"
	"github.com/five82/egcctl/internal/logging"
	"github.com/five82/egcctl/internal/prefs"
	"github.com/five82/egcctl/internal/state"
)

const (
	defaultFlashbackSeconds = 30
	flashbackStep           = 10
	minFlashbackSeconds     = 10
)

// Options configures the UI.
type Options struct {
	Context          context.Context
	Client           egcapi.Requester
	Store            *state.Store
	DocumentPath     string
	PollTick         time.Duration
	FlashbackSeconds int
	ThemeName        string
	ShowFeatures     bool
	PrefsPath        string
	Logger           *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	client       egcapi.Requester
	store        *state.Store
	documentPath string
	prefsPath    string
	pollTick     time.Duration
	logger       *slog.Logger

	// UI state
	theme        Theme
	keys         keyMap
	help         help.Model
	width        int
	height       int
	ready        bool
	showHelp     bool
	showFeatures bool
	flashback    int

	// Data state
	snapshot state.Snapshot

	// Result of the most recent request
	lastAction actionResultMsg
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	flashback := opts.FlashbackSeconds
	if flashback <= 0 {
		flashback = defaultFlashbackSeconds
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	theme := GetTheme(opts.ThemeName)
	m := Model{
		ctx:          ctx,
		client:       opts.Client,
		store:        opts.Store,
		documentPath: opts.DocumentPath,
		prefsPath:    prefsPath,
		pollTick:     pollTick,
		logger:       logger,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		showFeatures: opts.ShowFeatures,
		flashback:    flashback,
	}
	m.applyTheme(theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		if err := m.ctx.Err(); err != nil {
			return m, tea.Quit
		}
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case actionResultMsg:
		m.lastAction = msg
		if msg.err != nil {
			m.logger.Warn("request failed", "action", msg.label, "error", msg.err)
		} else {
			m.logger.Info("request written", "action", msg.label)
		}
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFeatures):
		m.showFeatures = !m.showFeatures
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.FlashbackLonger):
		m.flashback += flashbackStep
		return m, nil

	case key.Matches(msg, m.keys.FlashbackShorter):
		if m.flashback-flashbackStep >= minFlashbackSeconds {
			m.flashback -= flashbackStep
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleRecording):
		return m, m.request(actionToggleRecording)

	case key.Matches(msg, m.keys.ToggleStreaming):
		return m, m.request(actionToggleStreaming)

	case key.Matches(msg, m.keys.ToggleCommentary):
		return m, m.request(actionToggleCommentary)

	case key.Matches(msg, m.keys.Screenshot):
		return m, m.request(actionScreenshot)

	case key.Matches(msg, m.keys.Flashback):
		return m, m.request(flashbackAction(m.flashback))

	case key.Matches(msg, m.keys.SelectScene):
		return m.selectScene(int(msg.String()[0] - '0'))

	case key.Matches(msg, m.keys.PrevScene):
		return m.stepScene(-1)

	case key.Matches(msg, m.keys.NextScene):
		return m.stepScene(1)
	}

	return m, nil
}

// selectScene requests index, refusing indexes the document says do not exist.
func (m Model) selectScene(index int) (tea.Model, tea.Cmd) {
	status := m.snapshot.Status
	if m.snapshot.HasStatus && status.NumScenes > 0 && index >= status.NumScenes {
		m.lastAction = actionResultMsg{
			label: sceneLabel(index),
			err:   errSceneOutOfRange{index: index, count: status.NumScenes},
			at:    time.Now(),
		}
		return m, nil
	}
	return m, m.request(sceneAction(index))
}

// stepScene moves the selection by delta, wrapping at both ends.
func (m Model) stepScene(delta int) (tea.Model, tea.Cmd) {
	status := m.snapshot.Status
	if !m.snapshot.HasStatus || status.NumScenes <= 0 {
		return m, nil
	}
	next := (status.SelectedSceneIndex + delta) % status.NumScenes
	if next < 0 {
		next += status.NumScenes
	}
	return m, m.request(sceneAction(next))
}

func (m *Model) applyTheme(theme Theme) {
	m.theme = theme
	styles := theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, ShowFeatures: m.showFeatures}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, teaOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}

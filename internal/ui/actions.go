package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/egcctl/egcapi"
)

var errNoClient = errors.New("no document client")

// action is one request the dashboard can write into the client section.
type action struct {
	label string
	run   func(egcapi.Requester) error
}

var (
	actionToggleRecording = action{
		label: "toggle recording",
		run:   func(c egcapi.Requester) error { return c.ToggleRecording() },
	}
	actionToggleStreaming = action{
		label: "toggle streaming",
		run:   func(c egcapi.Requester) error { return c.ToggleStreaming() },
	}
	actionToggleCommentary = action{
		label: "toggle live commentary",
		run:   func(c egcapi.Requester) error { return c.ToggleLiveCommentary() },
	}
	actionScreenshot = action{
		label: "screenshot",
		run:   func(c egcapi.Requester) error { return c.SaveScreenshot() },
	}
)

func flashbackAction(seconds int) action {
	return action{
		label: fmt.Sprintf("save flashback %ds", seconds),
		run:   func(c egcapi.Requester) error { return c.SaveFlashbackBuffer(seconds) },
	}
}

func sceneAction(index int) action {
	return action{
		label: sceneLabel(index),
		run:   func(c egcapi.Requester) error { return c.SelectScene(index) },
	}
}

func sceneLabel(index int) string {
	return fmt.Sprintf("select scene %d", index)
}

// actionResultMsg reports the outcome of a request write.
type actionResultMsg struct {
	label string
	err   error
	at    time.Time
}

// request runs a in the background and reports the result.
func (m Model) request(a action) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if client == nil {
			return actionResultMsg{label: a.label, err: errNoClient, at: time.Now()}
		}
		err := a.run(client)
		return actionResultMsg{label: a.label, err: err, at: time.Now()}
	}
}

type errSceneOutOfRange struct {
	index int
	count int
}

func (e errSceneOutOfRange) Error() string {
	return fmt.Sprintf("scene %d out of range (%d scenes)", e.index, e.count)
}

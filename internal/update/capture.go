package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// handleCaptureKey drives the AwaitingCompletionTime step. Enter with a time
// records it, enter on a blank input skips the capture, esc abandons the whole
// attempt and leaves the task incomplete.
func (m Model) handleCaptureKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.closeCapture()
		m.Status = StatusBar{Text: "completion cancelled", IsError: false}
		return m, nil
	case "enter":
		m.submitCapture()
		return m, nil
	}
	var cmd tea.Cmd
	m.captureInput, cmd = m.captureInput.Update(msg)
	m.Capture.Input = m.captureInput.Value()
	return m, cmd
}

func (m *Model) submitCapture() {
	value := strings.TrimSpace(m.captureInput.Value())
	if value != "" {
		if _, err := time.Parse("15:04", value); err != nil {
			m.Status = StatusBar{Text: "invalid time, use HH:MM", IsError: true}
			return
		}
	}
	id := m.Capture.TaskID
	m.Tasks.Toggle(id)
	if value != "" {
		m.Tasks.SetCompletionTime(id, value, m.clock().UTC())
	}
	m.persistTasks()
	m.closeCapture()
	if value != "" {
		m.Status = StatusBar{Text: fmt.Sprintf("task completed at %s", value), IsError: false}
	} else {
		m.Status = StatusBar{Text: "task completed", IsError: false}
	}
}

func (m *Model) closeCapture() {
	m.Capture = CaptureState{}
	m.captureInput.SetValue("")
	m.captureInput.Blur()
}

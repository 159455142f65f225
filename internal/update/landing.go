package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"myplanner/internal/model"
)

var landingFocusOrder = []string{FieldName, FieldBackground, FieldGoalDate, FieldSavedList}

func (m Model) handleLandingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "tab":
		m.cycleLandingFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleLandingFocus(-1)
		return m, nil
	}

	switch m.Landing.Focus {
	case FieldName:
		if msg.String() == "enter" {
			m.submitLandingForm()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.Landing.Name = m.nameInput.Value()
		return m, cmd
	case FieldBackground:
		switch msg.String() {
		case "enter":
			m.submitLandingForm()
		case "h", "left":
			m.cycleBackground(-1)
		case "l", "right":
			m.cycleBackground(1)
		}
		return m, nil
	case FieldGoalDate:
		if msg.String() == "enter" {
			m.submitLandingForm()
			return m, nil
		}
		var cmd tea.Cmd
		m.goalInput, cmd = m.goalInput.Update(msg)
		m.Landing.GoalDate = m.goalInput.Value()
		return m, cmd
	case FieldSavedList:
		return m.handleSavedListKey(msg)
	}
	return m, nil
}

func (m Model) handleSavedListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	saved := m.Planners.Saved()
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case m.Keys.Palette:
		m.openPalette()
	case "up", "k":
		if m.Landing.Cursor > 0 {
			m.Landing.Cursor--
		}
	case "down", "j":
		if m.Landing.Cursor < len(saved)-1 {
			m.Landing.Cursor++
		}
	case "enter":
		if m.Landing.Cursor < len(saved) {
			m.selectPlanner(saved[m.Landing.Cursor].ID)
		}
	case m.Keys.Delete:
		if m.Landing.Cursor < len(saved) {
			m.deletePlanner(saved[m.Landing.Cursor].ID)
		}
	}
	return m, nil
}

func (m *Model) cycleLandingFocus(delta int) {
	index := 0
	for i, field := range landingFocusOrder {
		if field == m.Landing.Focus {
			index = i
			break
		}
	}
	index = (index + delta + len(landingFocusOrder)) % len(landingFocusOrder)
	// Skip the saved list when there is nothing to select.
	if landingFocusOrder[index] == FieldSavedList && len(m.Planners.Saved()) == 0 {
		index = (index + delta + len(landingFocusOrder)) % len(landingFocusOrder)
	}
	m.Landing.Focus = landingFocusOrder[index]
	m.syncLandingFocus()
}

func (m *Model) syncLandingFocus() {
	m.nameInput.Blur()
	m.goalInput.Blur()
	switch m.Landing.Focus {
	case FieldName:
		m.nameInput.Focus()
	case FieldGoalDate:
		m.goalInput.Focus()
	}
}

func (m *Model) cycleBackground(delta int) {
	count := len(model.Backgrounds())
	m.Landing.BackgroundIndex = (m.Landing.BackgroundIndex + delta + count) % count
}

func (m *Model) submitLandingForm() {
	m.createPlanner(m.nameInput.Value(), backgroundAt(m.Landing.BackgroundIndex), strings.TrimSpace(m.goalInput.Value()))
}

func (m *Model) createPlanner(name string, background model.Background, goalDate string) {
	if strings.TrimSpace(name) == "" {
		m.Status = StatusBar{Text: "planner name is required", IsError: true}
		return
	}
	created, err := m.Planners.Create(contextBackground(), name, background, goalDate)
	if err != nil {
		m.setError(err)
		return
	}
	m.resetLanding()
	m.CurrentView = ViewPlanner
	m.loadTasksForActive()
	m.Status = StatusBar{Text: fmt.Sprintf("planner %q created", created.Name), IsError: false}
}

func (m *Model) selectPlanner(id string) {
	if err := m.Planners.Select(contextBackground(), id); err != nil {
		m.setError(err)
		return
	}
	active, ok := m.Planners.Active()
	if !ok || active.ID != id {
		// Unknown id: the store treats it as a no-op and so do we.
		return
	}
	m.resetLanding()
	m.CurrentView = ViewPlanner
	m.loadTasksForActive()
	m.Status = StatusBar{Text: fmt.Sprintf("planner %q resumed", active.Name), IsError: false}
}

func (m *Model) deletePlanner(id string) {
	if err := m.Planners.Delete(contextBackground(), id); err != nil {
		m.setError(err)
		return
	}
	saved := m.Planners.Saved()
	if m.Landing.Cursor >= len(saved) && m.Landing.Cursor > 0 {
		m.Landing.Cursor--
	}
	if len(saved) == 0 && m.Landing.Focus == FieldSavedList {
		m.Landing.Focus = FieldName
		m.syncLandingFocus()
	}
	m.Status = StatusBar{Text: "planner deleted", IsError: false}
}

func (m *Model) startNewPlanner() {
	if err := m.Planners.ClearActive(contextBackground()); err != nil {
		m.setError(err)
		return
	}
	m.Tasks = newEmptyTaskStore()
	m.Cursor = 0
	m.SelectedTaskID = ""
	m.resetLanding()
	m.CurrentView = ViewLanding
	m.Status = StatusBar{Text: "create a new planner", IsError: false}
}

func (m *Model) resetLanding() {
	m.Landing = LandingState{Focus: FieldName}
	m.nameInput.SetValue("")
	m.goalInput.SetValue("")
	m.syncLandingFocus()
}

package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"myplanner/internal/model"
	"myplanner/internal/taskstore"
)

var formFocusOrder = []string{FieldTitle, FieldDescription, FieldPriority, FieldDueDate, FieldDueTime, FieldCategory}

func (m Model) handlePlannerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Capture.Active {
		return m.handleCaptureKey(msg)
	}
	if m.Form.Active {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case m.Keys.Palette:
		m.openPalette()
	case m.Keys.AddTask:
		m.openTaskForm()
	case m.Keys.NewPlanner:
		m.startNewPlanner()
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.syncSelectedTask()
	case "down", "j":
		if m.Cursor < m.Tasks.Len()-1 {
			m.Cursor++
		}
		m.syncSelectedTask()
	case m.Keys.Toggle:
		m.requestToggle(m.SelectedTaskID)
	case m.Keys.Delete:
		m.deleteTask(m.SelectedTaskID)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.closeTaskForm()
		return m, nil
	case "tab":
		m.cycleFormFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFormFocus(-1)
		return m, nil
	case "enter":
		// The description textarea keeps enter for newlines; every other
		// field submits.
		if m.Form.Focus != FieldDescription {
			m.submitTaskForm()
			return m, nil
		}
	}

	switch m.Form.Focus {
	case FieldPriority:
		switch msg.String() {
		case "h", "left":
			m.cyclePriority(-1)
		case "l", "right":
			m.cyclePriority(1)
		}
		return m, nil
	case FieldDescription:
		var cmd tea.Cmd
		m.descArea, cmd = m.descArea.Update(msg)
		m.Form.Description = m.descArea.Value()
		return m, cmd
	default:
		return m.updateFormInput(msg)
	}
}

func (m Model) updateFormInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Form.Focus {
	case FieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.Form.Title = m.titleInput.Value()
	case FieldDueDate:
		m.dueDateInput, cmd = m.dueDateInput.Update(msg)
		m.Form.DueDate = m.dueDateInput.Value()
	case FieldDueTime:
		m.dueTimeInput, cmd = m.dueTimeInput.Update(msg)
		m.Form.DueTime = m.dueTimeInput.Value()
	case FieldCategory:
		m.categoryInput, cmd = m.categoryInput.Update(msg)
		m.Form.Category = m.categoryInput.Value()
	}
	return m, cmd
}

func (m *Model) openTaskForm() {
	m.Form = TaskFormState{Active: true, Focus: FieldTitle}
	m.titleInput.SetValue("")
	m.descArea.SetValue("")
	m.dueDateInput.SetValue("")
	m.dueTimeInput.SetValue("")
	m.categoryInput.SetValue("")
	m.syncFormFocus()
}

func (m *Model) closeTaskForm() {
	m.Form = TaskFormState{}
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dueDateInput.Blur()
	m.dueTimeInput.Blur()
	m.categoryInput.Blur()
}

func (m *Model) cycleFormFocus(delta int) {
	index := 0
	for i, field := range formFocusOrder {
		if field == m.Form.Focus {
			index = i
			break
		}
	}
	index = (index + delta + len(formFocusOrder)) % len(formFocusOrder)
	m.Form.Focus = formFocusOrder[index]
	m.syncFormFocus()
}

func (m *Model) syncFormFocus() {
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dueDateInput.Blur()
	m.dueTimeInput.Blur()
	m.categoryInput.Blur()
	switch m.Form.Focus {
	case FieldTitle:
		m.titleInput.Focus()
	case FieldDescription:
		m.descArea.Focus()
	case FieldDueDate:
		m.dueDateInput.Focus()
	case FieldDueTime:
		m.dueTimeInput.Focus()
	case FieldCategory:
		m.categoryInput.Focus()
	}
}

func (m *Model) cyclePriority(delta int) {
	m.Form.PriorityIndex = (m.Form.PriorityIndex + delta + 3) % 3
}

func (m *Model) submitTaskForm() {
	draft := model.TaskDraft{
		Title:       m.titleInput.Value(),
		Description: m.descArea.Value(),
		Priority:    priorityAt(m.Form.PriorityIndex),
		DueDate:     strings.TrimSpace(m.dueDateInput.Value()),
		DueTime:     strings.TrimSpace(m.dueTimeInput.Value()),
		Category:    strings.TrimSpace(m.categoryInput.Value()),
	}
	task, err := m.Tasks.Add(draft)
	if err != nil {
		m.Form.Err = "title is required"
		return
	}
	m.persistTasks()
	m.closeTaskForm()
	m.Cursor = 0
	m.SelectedTaskID = task.ID
	m.Status = StatusBar{Text: "task added", IsError: false}
}

func (m *Model) addTask(draft model.TaskDraft) {
	task, err := m.Tasks.Add(draft)
	if err != nil {
		m.setError(err)
		return
	}
	m.persistTasks()
	m.Cursor = 0
	m.SelectedTaskID = task.ID
	m.Status = StatusBar{Text: "task added", IsError: false}
}

// requestToggle starts the completion workflow for the selected task. An
// incomplete task first passes through the completion-time capture step;
// un-completing is a direct toggle.
func (m *Model) requestToggle(id string) {
	task, ok := m.Tasks.Get(id)
	if !ok {
		return
	}
	if !task.Completed && m.Config.CaptureCompletionTime {
		m.Capture = CaptureState{Active: true, TaskID: task.ID, TaskTitle: task.Title}
		m.captureInput.SetValue("")
		m.captureInput.Focus()
		return
	}
	m.toggleTask(id)
}

func (m *Model) toggleTask(id string) {
	if _, ok := m.Tasks.Get(id); !ok {
		return
	}
	m.Tasks.Toggle(id)
	m.persistTasks()
	task, _ := m.Tasks.Get(id)
	if task.Completed {
		m.Status = StatusBar{Text: "task completed", IsError: false}
	} else {
		m.Status = StatusBar{Text: "task reopened", IsError: false}
	}
}

func (m *Model) deleteTask(id string) {
	if _, ok := m.Tasks.Get(id); !ok {
		return
	}
	m.Tasks.Delete(id)
	m.persistTasks()
	if m.Cursor >= m.Tasks.Len() && m.Cursor > 0 {
		m.Cursor--
	}
	m.syncSelectedTask()
	m.Status = StatusBar{Text: "task deleted", IsError: false}
}

func (m *Model) recordCompletionTime(id string, hhmm string) {
	if _, ok := m.Tasks.Get(id); !ok {
		return
	}
	m.Tasks.SetCompletionTime(id, hhmm, m.clock().UTC())
	m.persistTasks()
}

func (m *Model) syncSelectedTask() {
	tasks := m.Tasks.Tasks()
	if len(tasks) == 0 {
		m.SelectedTaskID = ""
		return
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(tasks) {
		m.Cursor = len(tasks) - 1
	}
	m.SelectedTaskID = tasks[m.Cursor].ID
}

// loadTasksForActive restores the active planner's task list, seeding sample
// tasks the first time a planner is opened.
func (m *Model) loadTasksForActive() {
	active, ok := m.Planners.Active()
	if !ok {
		m.Tasks = newEmptyTaskStore()
		m.Cursor = 0
		m.SelectedTaskID = ""
		return
	}
	tasks, found, err := m.Planners.LoadTasks(contextBackground(), active.ID)
	if err != nil {
		m.Tasks = newEmptyTaskStore()
		m.setError(err)
		return
	}
	switch {
	case found:
		m.Tasks = taskstore.NewWithTasks(tasks)
	case m.Config.SeedSampleTasks:
		m.Tasks = taskstore.NewWithTasks(sampleTasks(m.clock()))
		m.persistTasks()
	default:
		m.Tasks = newEmptyTaskStore()
	}
	m.Cursor = 0
	m.syncSelectedTask()
}

func (m *Model) persistTasks() {
	active, ok := m.Planners.Active()
	if !ok {
		return
	}
	if err := m.Planners.SaveTasks(contextBackground(), active.ID, m.Tasks.Tasks()); err != nil {
		m.setError(err)
	}
}

// sampleTasks seeds a fresh planner with the demo tasks the original app
// showed on every visit.
func sampleTasks(now time.Time) []model.Task {
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	return []model.Task{
		{
			ID:          uuid.NewString(),
			Title:       "Read a programming book",
			Description: "Chapters 3 through 5",
			Priority:    model.PriorityHigh,
			DueDate:     today,
			DueTime:     "14:30",
			Category:    "study",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Morning run",
			Description: "30 minutes in the park",
			Completed:   true,
			Priority:    model.PriorityMedium,
			DueDate:     yesterday,
			DueTime:     "07:00",
			Category:    "health",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Team sync meeting",
			Description: "Review the new project",
			Priority:    model.PriorityHigh,
			DueDate:     tomorrow,
			DueTime:     "10:00",
			Category:    "work",
		},
	}
}

package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"myplanner/internal/commands"
	"myplanner/internal/model"
	"myplanner/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.nameInput = textinput.New()
	m.nameInput.Prompt = ""
	m.nameInput.Placeholder = "e.g. my work planner"
	m.nameInput.CharLimit = 128
	m.nameInput.Width = 32
	m.nameInput.Focus()

	m.goalInput = textinput.New()
	m.goalInput.Prompt = ""
	m.goalInput.Placeholder = "YYYY-MM-DD"
	m.goalInput.CharLimit = 10
	m.goalInput.Width = 12

	m.titleInput = textinput.New()
	m.titleInput.Prompt = ""
	m.titleInput.Placeholder = "task title"
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 40

	m.descArea = textarea.New()
	m.descArea.SetWidth(48)
	m.descArea.SetHeight(3)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "details (markdown)"

	m.dueDateInput = textinput.New()
	m.dueDateInput.Prompt = ""
	m.dueDateInput.Placeholder = "YYYY-MM-DD"
	m.dueDateInput.CharLimit = 10
	m.dueDateInput.Width = 12

	m.dueTimeInput = textinput.New()
	m.dueTimeInput.Prompt = ""
	m.dueTimeInput.Placeholder = "HH:MM"
	m.dueTimeInput.CharLimit = 5
	m.dueTimeInput.Width = 7

	m.categoryInput = textinput.New()
	m.categoryInput.Prompt = ""
	m.categoryInput.Placeholder = "e.g. work, study"
	m.categoryInput.CharLimit = 64
	m.categoryInput.Width = 20

	m.captureInput = textinput.New()
	m.captureInput.Prompt = ""
	m.captureInput.Placeholder = "HH:MM"
	m.captureInput.CharLimit = 5
	m.captureInput.Width = 7

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.statsProgress = progress.New(progress.WithDefaultGradient())
	m.statsProgress.Width = 40

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Capture.Active {
		m.captureInput.Focus()
	}
}

func (m Model) renderLandingView() string {
	saved := make([]views.SavedPlannerData, 0, len(m.Planners.Saved()))
	for _, planner := range m.Planners.Saved() {
		saved = append(saved, views.SavedPlannerData{
			ID:         planner.ID,
			Name:       planner.Name,
			Background: string(planner.Background),
			GoalDate:   planner.GoalDate,
			CreatedAt:  planner.CreatedAt.Format("2006-01-02"),
		})
	}
	backgrounds := make([]string, 0, len(model.Backgrounds()))
	for _, b := range model.Backgrounds() {
		backgrounds = append(backgrounds, string(b))
	}
	return views.RenderLandingPanel(views.LandingData{
		NameView:     m.nameInput.View(),
		GoalDateView: m.goalInput.View(),
		Background:   string(backgroundAt(m.Landing.BackgroundIndex)),
		Backgrounds:  backgrounds,
		FocusField:   m.Landing.Focus,
		Saved:        saved,
		Cursor:       m.Landing.Cursor,
	})
}

func (m Model) renderPlannerView() string {
	stats := m.Tasks.Stats(m.clock())
	parts := []string{
		views.RenderStatsPanel(views.StatsData{
			Total:          stats.Total,
			Completed:      stats.Completed,
			DueToday:       stats.DueToday,
			CompletionRate: stats.CompletionRate,
			ProgressView:   m.statsProgress.ViewAs(float64(stats.CompletionRate) / 100),
		}),
	}
	if m.Form.Active {
		parts = append(parts, m.renderTaskForm())
	}
	if m.Capture.Active {
		parts = append(parts, views.RenderCapturePrompt(views.CaptureData{
			Active:    true,
			TaskTitle: m.Capture.TaskTitle,
			InputView: m.captureInput.View(),
		}))
	}
	parts = append(parts, m.renderTaskList())
	return strings.Join(parts, "\n\n")
}

func (m Model) renderTaskList() string {
	items := make([]views.TaskCardData, 0, m.Tasks.Len())
	for _, task := range m.Tasks.Tasks() {
		items = append(items, views.TaskCardData{
			ID:             task.ID,
			Title:          task.Title,
			Description:    task.Description,
			Completed:      task.Completed,
			Priority:       string(task.Priority),
			DueDate:        task.DueDate,
			DueTime:        task.DueTime,
			Category:       task.Category,
			CompletionTime: task.CompletionTime,
		})
	}
	return views.RenderTaskListPanel(views.TaskListData{
		Items:      items,
		SelectedID: m.SelectedTaskID,
	})
}

func (m Model) renderTaskForm() string {
	return views.RenderTaskFormPanel(views.TaskFormData{
		Active:          true,
		TitleView:       m.titleInput.View(),
		DescriptionView: m.descArea.View(),
		Priority:        string(priorityAt(m.Form.PriorityIndex)),
		DueDateView:     m.dueDateInput.View(),
		DueTimeView:     m.dueTimeInput.View(),
		CategoryView:    m.categoryInput.View(),
		FocusField:      m.Form.Focus,
		ErrorText:       m.Form.Err,
	})
}

func (m Model) renderPlannerSidebar() string {
	parts := []string{views.RenderWeeklyCalendar(m.weekData())}
	parts = append(parts, m.renderTaskMetadataPane())
	if palette := m.renderCommandPalette(); palette != "" {
		parts = append(parts, palette)
	}
	if helpView := m.renderHelpIfVisible(); helpView != "" {
		parts = append(parts, helpView)
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderTaskMetadataPane() string {
	task, ok := m.Tasks.Get(m.SelectedTaskID)
	if !ok {
		return views.RenderTaskMetadataPane(views.TaskMetadataData{})
	}
	return views.RenderTaskMetadataPane(views.TaskMetadataData{
		SelectedID:     task.ID,
		Priority:       string(task.Priority),
		Category:       task.Category,
		DueDate:        task.DueDate,
		DueTime:        task.DueTime,
		CompletionTime: task.CompletionTime,
		MarkdownView:   views.RenderMarkdown(task.Description),
	})
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.Value())
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{m.helpModel.ShortHelpView(m.helpBindings())}
	bindings = append(bindings, m.viewBindings()...)
	return views.RenderHelpPanel(views.HelpData{
		CurrentView: string(m.CurrentView),
		Bindings:    bindings,
	})
}

func (m Model) helpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(m.Keys.Palette), key.WithHelp(m.Keys.Palette, "command")),
		key.NewBinding(key.WithKeys(m.Keys.Help), key.WithHelp(m.Keys.Help, "help")),
		key.NewBinding(key.WithKeys(m.Keys.Quit), key.WithHelp(m.Keys.Quit, "quit")),
	}
}

func (m Model) viewBindings() []string {
	if m.CurrentView == ViewLanding {
		return []string{
			"tab: next field",
			"h/l: background",
			"enter: create or resume",
			"d: delete saved planner",
		}
	}
	return []string{
		"j/k: move",
		"space: toggle (asks for completion time)",
		"a: add task",
		"d: delete task",
		"n: new planner",
	}
}

func (m *Model) openPalette() {
	m.Palette = CommandPaletteState{Active: true}
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active", IsError: false}
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.closePalette()
		m.Status = StatusBar{}
		return m, nil
	case "enter":
		next := m.executePaletteCommand()
		return next, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	input := m.commandInput.Value()
	m.closePalette()

	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			if _, ok := m.Planners.Active(); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active planner"}
			}
			m.addTask(model.TaskDraft{Title: args.Title})
			return commands.Result{Message: fmt.Sprintf("added %q", args.Title)}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			id, ok := m.resolveTaskTarget(args.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matches %q", args.Target)}
			}
			m.toggleTask(id)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(args commands.DeleteArgs) (commands.Result, error) {
			id, ok := m.resolveTaskTarget(args.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matches %q", args.Target)}
			}
			m.deleteTask(id)
			return commands.Result{Message: "task deleted"}, nil
		},
		Planner: func(args commands.PlannerArgs) (commands.Result, error) {
			m.createPlanner(args.Name, model.BackgroundDefault, "")
			return commands.Result{Message: m.Status.Text}, nil
		},
		Background: func(args commands.BackgroundArgs) (commands.Result, error) {
			background := model.Background(args.Variant)
			if !background.IsValid() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown background %q", args.Variant)}
			}
			if err := m.Planners.UpdateActiveBackground(contextBackground(), background); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("background set to %s", background)}, nil
		},
	}

	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if result.Message != "" {
		m.Status = StatusBar{Text: result.Message, IsError: false}
	}
	return m
}

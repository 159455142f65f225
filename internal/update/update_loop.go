package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"myplanner/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.CurrentView == ViewLanding {
			return m.handleLandingKey(typed)
		}
		return m.handlePlannerKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewPlanner {
				m.loadTasksForActive()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case CreatePlannerMsg:
		m.createPlanner(typed.Name, typed.Background, typed.GoalDate)
		return m, nil
	case SelectPlannerMsg:
		m.selectPlanner(typed.ID)
		return m, nil
	case DeletePlannerMsg:
		m.deletePlanner(typed.ID)
		return m, nil
	case NewPlannerMsg:
		m.startNewPlanner()
		return m, nil
	case AddTaskMsg:
		m.addTask(typed.Draft)
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.ID)
		return m, nil
	case DeleteTaskMsg:
		m.deleteTask(typed.ID)
		return m, nil
	case RecordCompletionMsg:
		m.recordCompletionTime(typed.ID, typed.Time)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	header := "my planner"
	background := "default"
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewLanding:
		leftPane = m.renderLandingView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
		if rightPane == "" {
			rightPane = "create a planner to get started"
		}
	case ViewPlanner:
		if active, ok := m.Planners.Active(); ok {
			header = views.RenderPlannerHeader(views.PlannerHeaderData{
				Name:       active.Name,
				Background: string(active.Background),
				GoalDate:   active.GoalDate,
			})
			background = string(active.Background)
		}
		leftPane = m.renderPlannerView()
		rightPane = m.renderPlannerSidebar()
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		Background: background,
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer:     m.footerText(),
	})
}

func (m Model) footerText() string {
	if m.CurrentView == ViewLanding {
		return "keys: tab field | enter create/resume | d delete | / cmd | ctrl+c quit"
	}
	return fmt.Sprintf("keys: %s add | space toggle | %s delete | %s new planner | %s cmd | %s help | %s quit",
		m.Keys.AddTask, m.Keys.Delete, m.Keys.NewPlanner, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}

func isKnownView(v View) bool {
	switch v {
	case ViewLanding, ViewPlanner:
		return true
	default:
		return false
	}
}

package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"myplanner/internal/model"
	"myplanner/internal/planner"
	"myplanner/internal/storage"
	"myplanner/internal/taskstore"
)

type View string

const (
	ViewLanding View = "Landing"
	ViewPlanner View = "Planner"
)

// Focusable fields of the landing screen and the add-task form. The saved
// planner list participates in the landing focus cycle like a fourth field.
const (
	FieldName        = "name"
	FieldBackground  = "background"
	FieldGoalDate    = "goalDate"
	FieldSavedList   = "saved"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldDueDate     = "dueDate"
	FieldDueTime     = "dueTime"
	FieldCategory    = "category"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	AddTask    string
	Toggle     string
	Delete     string
	NewPlanner string
	Palette    string
	Help       string
	Quit       string
}

type LandingState struct {
	Name            string
	BackgroundIndex int
	GoalDate        string
	Focus           string
	Cursor          int
}

type TaskFormState struct {
	Active        bool
	Title         string
	Description   string
	PriorityIndex int
	DueDate       string
	DueTime       string
	Category      string
	Focus         string
	Err           string
}

// CaptureState is the transient AwaitingCompletionTime step: it exists only in
// the view layer and abandoning it leaves the task store untouched.
type CaptureState struct {
	Active    bool
	TaskID    string
	TaskTitle string
	Input     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	Planners       *planner.Store
	Tasks          *taskstore.Store
	Landing        LandingState
	Form           TaskFormState
	Capture        CaptureState
	Palette        CommandPaletteState
	Cursor         int
	SelectedTaskID string
	Status         StatusBar
	Keys           GlobalKeyMap
	HelpVisible    bool
	Quitting       bool
	LastError      error
	Config         RuntimeConfig

	clock func() time.Time

	// Bubble components used for rich TUI controls
	nameInput     textinput.Model
	goalInput     textinput.Model
	titleInput    textinput.Model
	descArea      textarea.Model
	dueDateInput  textinput.Model
	dueTimeInput  textinput.Model
	categoryInput textinput.Model
	captureInput  textinput.Model
	commandInput  textinput.Model
	statsProgress progress.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type CreatePlannerMsg struct {
	Name       string
	Background model.Background
	GoalDate   string
}

type SelectPlannerMsg struct {
	ID string
}

type DeletePlannerMsg struct {
	ID string
}

type NewPlannerMsg struct{}

type AddTaskMsg struct {
	Draft model.TaskDraft
}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

type RecordCompletionMsg struct {
	ID   string
	Time string
}

// NewModel builds a memory-backed model with no saved planners. Tests and the
// no-database fallback path use it.
func NewModel() Model {
	planners := planner.NewStore(storage.NewMemoryStore())
	_ = planners.Load(context.Background())
	return NewModelWithConfig(planners, DefaultRuntimeConfig())
}

func NewModelWithStore(planners *planner.Store) Model {
	return NewModelWithConfig(planners, DefaultRuntimeConfig())
}

func NewModelWithConfig(planners *planner.Store, cfg RuntimeConfig) Model {
	m := Model{
		CurrentView: ViewLanding,
		Planners:    planners,
		Tasks:       taskstore.New(),
		Landing:     LandingState{Focus: FieldName},
		Config:      cfg,
		Keys: GlobalKeyMap{
			AddTask:    "a",
			Toggle:     " ",
			Delete:     "d",
			NewPlanner: "n",
			Palette:    "/",
			Help:       "?",
			Quit:       "q",
		},
		clock: time.Now,
	}
	m.initBubbleComponents()
	// Presence of the active planner gates the initial view.
	if _, ok := planners.Active(); ok {
		m.CurrentView = ViewPlanner
		m.loadTasksForActive()
	}
	m.syncBubbleData()
	return m
}

func backgroundAt(index int) model.Background {
	all := model.Backgrounds()
	if index < 0 || index >= len(all) {
		return model.BackgroundDefault
	}
	return all[index]
}

func priorityAt(index int) model.Priority {
	priorities := []model.Priority{model.PriorityMedium, model.PriorityHigh, model.PriorityLow}
	if index < 0 || index >= len(priorities) {
		return model.PriorityMedium
	}
	return priorities[index]
}

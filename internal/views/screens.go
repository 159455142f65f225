package views

import (
	"fmt"
	"strings"
)

type SavedPlannerData struct {
	ID         string
	Name       string
	Background string
	GoalDate   string
	CreatedAt  string
}

type LandingData struct {
	NameView     string
	GoalDateView string
	Background   string
	Backgrounds  []string
	FocusField   string
	Saved        []SavedPlannerData
	Cursor       int
}

type StatsData struct {
	Total          int
	Completed      int
	DueToday       int
	CompletionRate int
	ProgressView   string
}

type TaskCardData struct {
	ID             string
	Title          string
	Description    string
	Completed      bool
	Priority       string
	DueDate        string
	DueTime        string
	Category       string
	CompletionTime string
}

type TaskListData struct {
	Items      []TaskCardData
	SelectedID string
}

type TaskFormData struct {
	Active          bool
	TitleView       string
	DescriptionView string
	Priority        string
	DueDateView     string
	DueTimeView     string
	CategoryView    string
	FocusField      string
	ErrorText       string
}

type CaptureData struct {
	Active    bool
	TaskTitle string
	InputView string
}

type WeekDayData struct {
	Label      string
	Day        int
	IsToday    bool
	Indicators []string
}

type WeekData struct {
	MonthLabel string
	Days       []WeekDayData
}

type PlannerHeaderData struct {
	Name       string
	Background string
	GoalDate   string
}

type TaskMetadataData struct {
	SelectedID     string
	Priority       string
	Category       string
	DueDate        string
	DueTime        string
	CompletionTime string
	MarkdownView   string
}

type HelpData struct {
	CurrentView string
	Bindings    []string
}

func RenderLandingPanel(data LandingData) string {
	var b strings.Builder
	b.WriteString("my planner\n")
	b.WriteString("create a new planner:\n\n")
	b.WriteString(fieldMarker(data.FocusField, "name") + "name: " + data.NameView + "\n")

	b.WriteString(fieldMarker(data.FocusField, "background") + "background: ")
	for _, variant := range data.Backgrounds {
		if variant == data.Background {
			b.WriteString("[" + variant + "] ")
		} else {
			b.WriteString(" " + variant + "  ")
		}
	}
	b.WriteString("\n")
	b.WriteString(fieldMarker(data.FocusField, "goalDate") + "goal date (optional): " + data.GoalDateView + "\n")
	b.WriteString("\nactions: [tab]next field [h/l]background [enter]create\n")

	b.WriteString("\nsaved planners:\n")
	if len(data.Saved) == 0 {
		b.WriteString("  (none yet)\n")
	}
	for i, saved := range data.Saved {
		cursor := " "
		if data.FocusField == "saved" && i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s", cursor, saved.Name, saved.Background))
		if saved.GoalDate != "" {
			b.WriteString(", goal " + saved.GoalDate)
		}
		b.WriteString(fmt.Sprintf(") created %s\n", saved.CreatedAt))
	}
	if len(data.Saved) > 0 {
		b.WriteString("actions: [j/k]move [enter]resume [d]delete\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderStatsPanel(data StatsData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("total: %d | completed: %d | today: %d | progress: %d%%\n",
		data.Total, data.Completed, data.DueToday, data.CompletionRate))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTaskListPanel(data TaskListData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if len(data.Items) == 0 {
		b.WriteString("  no tasks yet, press [a] to add one")
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if item.ID == data.SelectedID {
			cursor = ">"
		}
		checkbox := "[ ]"
		title := item.Title
		if item.Completed {
			checkbox = "[x]"
			title = strikeStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, checkbox, priorityBadge(item.Priority), title))
		if item.DueDate != "" {
			b.WriteString(" due:" + item.DueDate)
			if item.DueTime != "" {
				b.WriteString(" " + item.DueTime)
			}
		}
		if item.Category != "" {
			b.WriteString(" #" + item.Category)
		}
		if item.CompletionTime != "" {
			b.WriteString(" done@" + item.CompletionTime)
		}
		b.WriteString("\n")
	}
	b.WriteString("actions: [j/k]move [space]toggle [d]delete [a]add [n]new planner")
	return b.String()
}

func RenderTaskFormPanel(data TaskFormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("new task:\n")
	b.WriteString(fieldMarker(data.FocusField, "title") + "title: " + data.TitleView + "\n")
	b.WriteString(fieldMarker(data.FocusField, "description") + "description:\n" + data.DescriptionView + "\n")
	b.WriteString(fieldMarker(data.FocusField, "priority") + fmt.Sprintf("priority: < %s >\n", data.Priority))
	b.WriteString(fieldMarker(data.FocusField, "dueDate") + "due date: " + data.DueDateView + "\n")
	b.WriteString(fieldMarker(data.FocusField, "dueTime") + "due time: " + data.DueTimeView + "\n")
	b.WriteString(fieldMarker(data.FocusField, "category") + "category: " + data.CategoryView + "\n")
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString("actions: [tab]next field [h/l]priority [enter]add [esc]cancel")
	return b.String()
}

func RenderCapturePrompt(data CaptureData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("completion time:\n")
	b.WriteString(fmt.Sprintf("what time did you finish %q?\n", data.TaskTitle))
	b.WriteString("time (HH:MM): " + data.InputView + "\n")
	b.WriteString("actions: [enter]record (blank skips) [esc]cancel")
	return b.String()
}

func RenderPlannerHeader(data PlannerHeaderData) string {
	var b strings.Builder
	b.WriteString(data.Name)
	if data.GoalDate != "" {
		b.WriteString(" | goal: " + data.GoalDate)
	}
	b.WriteString(" | theme: " + data.Background)
	return b.String()
}

func RenderWeeklyCalendar(data WeekData) string {
	var b strings.Builder
	b.WriteString("weekly plan (" + data.MonthLabel + "):\n")
	for _, day := range data.Days {
		cell := fmt.Sprintf("%-3s %2d", day.Label, day.Day)
		if day.IsToday {
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
		for _, indicator := range day.Indicators {
			b.WriteString(" " + indicator)
		}
		b.WriteString("\n")
	}
	b.WriteString("legend: [RED]high [YELLOW]medium [GREEN]low")
	return b.String()
}

func RenderTaskMetadataPane(data TaskMetadataData) string {
	if strings.TrimSpace(data.SelectedID) == "" {
		return "task-details:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("task-details:\n")
	b.WriteString("id: " + data.SelectedID + "\n")
	b.WriteString("priority: " + data.Priority + "\n")
	if data.Category != "" {
		b.WriteString("category: " + data.Category + "\n")
	}
	if data.DueDate != "" {
		b.WriteString("due: " + data.DueDate + " " + data.DueTime + "\n")
	}
	if data.CompletionTime != "" {
		b.WriteString("completed at: " + data.CompletionTime + "\n")
	}
	if data.MarkdownView != "" {
		b.WriteString("\ndescription:\n" + data.MarkdownView)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpData) string {
	return fmt.Sprintf("help:\n%s view:\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
	)
}

func fieldMarker(focus string, field string) string {
	if focus == field {
		return "> "
	}
	return "  "
}

func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return "[RED]"
	case "low":
		return "[GREEN]"
	default:
		return "[YELLOW]"
	}
}

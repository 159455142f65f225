package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Background string
	LeftPane   string
	RightPane  string
	StatusLine string
	Footer     string
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	strikeStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	todayStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// backgroundColors maps each planner background variant to its accent color.
// The terminal stand-in for the web build's gradients and images.
var backgroundColors = map[string]lipgloss.Color{
	"default": lipgloss.Color("12"),
	"sunset":  lipgloss.Color("208"),
	"ocean":   lipgloss.Color("39"),
	"forest":  lipgloss.Color("34"),
	"purple":  lipgloss.Color("99"),
}

func BackgroundColor(variant string) lipgloss.Color {
	if c, ok := backgroundColors[variant]; ok {
		return c
	}
	return backgroundColors["default"]
}

func RenderApp(data AppData) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(BackgroundColor(data.Background))
	left := panelStyle.Width(58).Render(data.LeftPane)
	right := panelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorMagenta = "13"
	ColorRed     = "9"
	ColorWhite   = "15"
	ColorGreen   = "10"

	DefaultWidth  = 80
	DefaultHeight = 30
)

type AppData struct {
	Width         int
	Height        int
	TimerPanel    string
	InputView     string
	InputActive   bool
	PomodoroNo    int
	TaskTableView string
	TasksActive   bool
	StatusLine    string
	StatusIsError bool
	Footer        string
	HelpOverlay   string
	BreakOverlay  string
}

var (
	logoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorGreen))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle = panelStyle.BorderForeground(lipgloss.Color(ColorMagenta))
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderApp lays out one full frame. Overlays replace the whole frame; help
// wins over the break modal.
func RenderApp(data AppData) string {
	width, height := frameSize(data.Width, data.Height)

	if data.HelpOverlay != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, data.HelpOverlay)
	}
	if data.BreakOverlay != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, data.BreakOverlay)
	}

	inner := width - 2
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center, logoStyle.Render(strings.Trim(Logo, "\n")))
	timer := panel("Timer", data.TimerPanel, inner, false)

	counterWidth := width / 5
	inputWidth := width - counterWidth
	input := panel("Task Input", data.InputView, inputWidth-2, data.InputActive)
	counter := panel("Pomodoro No", lipgloss.PlaceHorizontal(counterWidth-4, lipgloss.Center, strconv.Itoa(data.PomodoroNo)), counterWidth-2, false)
	row := lipgloss.JoinHorizontal(lipgloss.Top, input, counter)

	tasks := panel("Tasks", data.TaskTableView, inner, data.TasksActive)

	lines := []string{header, timer, row, tasks}
	if data.StatusLine != "" {
		if data.StatusIsError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown falls back to the raw markdown when glamour fails.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func panel(title, body string, width int, active bool) string {
	style := panelStyle
	if active {
		style = activeStyle
	}
	if width > 4 {
		style = style.Width(width)
	}
	return style.Render(titleStyle.Render(title) + "\n" + body)
}

func modal(title, body string) string {
	return modalStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}

func frameSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

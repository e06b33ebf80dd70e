package update

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/pomo/internal/clock"
	"github.com/sandeepkv93/pomo/internal/logging"
	"github.com/sandeepkv93/pomo/internal/model"
	"github.com/sandeepkv93/pomo/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Logger is the subset of logging.Logger the dispatcher writes to.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type Model struct {
	state          *model.State
	keys           keyMap
	Status         StatusBar
	statusID       int
	Quitting       bool
	LastError      error
	DesktopEnabled bool
	notifier       DesktopNotifier
	logger         Logger
	frameInterval  time.Duration
	width          int
	height         int
	snapshot       model.Snapshot
	// Bubble components used for rich TUI controls
	taskInput     textinput.Model
	taskTable     table.Model
	workProgress  progress.Model
	breakProgress progress.Model
	helpModel     help.Model
	tableStyles   table.Styles
	taskCellWidth int
	selectedStyle lipgloss.Style
	// rendered help overlays keyed by mode and width
	helpCache map[string]string
}

// ClearStatusMsg clears the status line if it still shows status ID.
type ClearStatusMsg struct {
	ID int
}

type AppErrorMsg struct {
	Err error
}

// FrameMsg drives redraws and timer completion checks.
type FrameMsg struct {
	At time.Time
}

func NewModelWithConfig(cfg RuntimeConfig, clk clock.Clock, notifier DesktopNotifier, logger Logger) Model {
	def := DefaultRuntimeConfig()
	if cfg.WorkMinutes <= 0 {
		cfg.WorkMinutes = def.WorkMinutes
	}
	if cfg.BreakMinutes <= 0 {
		cfg.BreakMinutes = def.BreakMinutes
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = def.FrameInterval
	}
	if notifier == nil {
		notifier = NoopDesktopNotifier{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		state:          model.NewState(cfg.WorkLength(), cfg.BreakLength(), clk),
		keys:           defaultKeyMap(),
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       notifier,
		logger:         logger,
		frameInterval:  cfg.FrameInterval,
		helpCache:      make(map[string]string),
	}
	m.initBubbleComponents()
	m.resize()
	m.syncBubbleData()
	return m
}

// State exposes the application state driven by this model.
func (m Model) State() *model.State { return m.state }

func (m Model) Snapshot() model.Snapshot { return m.snapshot }

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "> "
	m.taskInput.Placeholder = "press i to add a task"
	m.taskInput.CharLimit = 256
	m.taskInput.Cursor.SetMode(cursor.CursorStatic)

	m.taskTable = table.New(table.WithColumns(taskColumns(views.DefaultWidth)), table.WithRows([]table.Row{}), table.WithFocused(false))
	m.tableStyles = table.DefaultStyles()
	m.tableStyles.Header = m.tableStyles.Header.Bold(true).Foreground(lipgloss.Color(views.ColorGreen))
	m.selectedStyle = lipgloss.NewStyle().Reverse(true)

	m.workProgress = progress.New(progress.WithSolidFill(views.ColorMagenta))
	m.breakProgress = progress.New(progress.WithSolidFill(views.ColorGreen))

	m.helpModel = help.New()
}

const (
	doneColumnWidth = 4
	estColumnWidth  = 5
)

func taskColumns(width int) []table.Column {
	return []table.Column{
		{Title: views.CheckMark, Width: doneColumnWidth},
		{Title: "Task", Width: taskColumnWidth(width)},
		{Title: "Est.", Width: estColumnWidth},
	}
}

// taskColumnWidth leaves room for the panel frame and one cell of padding on
// both sides of each column.
func taskColumnWidth(width int) int {
	w := width - 6 - doneColumnWidth - estColumnWidth - 6
	if w < 8 {
		w = 8
	}
	return w
}

// resize fits the components to the current window.
func (m *Model) resize() {
	width, height := m.width, m.height
	if width <= 0 {
		width = views.DefaultWidth
	}
	if height <= 0 {
		height = views.DefaultHeight
	}
	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	m.workProgress.Width = barWidth
	m.breakProgress.Width = barWidth / 2
	m.helpModel.Width = width

	m.taskInput.Width = width*4/5 - 10
	if m.taskInput.Width < 10 {
		m.taskInput.Width = 10
	}

	m.taskCellWidth = taskColumnWidth(width)
	m.taskTable.SetColumns(taskColumns(width))
	m.taskTable.SetWidth(width - 4)
	tableHeight := height - 24
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.taskTable.SetHeight(tableHeight)
}

// syncBubbleData copies the latest snapshot into the bubble components.
func (m *Model) syncBubbleData() {
	m.snapshot = m.state.Snapshot()
	snap := m.snapshot

	if m.taskInput.Value() != snap.Input {
		m.taskInput.SetValue(snap.Input)
	}
	if snap.Mode == model.ModeInsert {
		m.taskInput.Focus()
	} else {
		m.taskInput.Blur()
	}

	rows := make([]table.Row, 0, len(snap.Tasks))
	for _, task := range snap.Tasks {
		rows = append(rows, table.Row{
			views.CompletedMarker(task.Completed),
			views.TruncateCell(task.Description, m.taskCellWidth),
			strconv.Itoa(task.Estimation),
		})
	}
	m.taskTable.SetRows(rows)

	styles := m.tableStyles
	if snap.HasSelection {
		m.taskTable.SetCursor(snap.Selected)
		styles.Selected = m.selectedStyle
	} else {
		m.taskTable.SetCursor(0)
		styles.Selected = lipgloss.NewStyle()
	}
	m.taskTable.SetStyles(styles)

	m.workProgress.FullColor = workBarColor(snap.Work, snap.Now)
}

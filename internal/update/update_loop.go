package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomo/internal/model"
	"github.com/sandeepkv93/pomo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return frameTickCmd(m.frameInterval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case FrameMsg:
		return m.onFrame()
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.resize()
		return m, nil
	case ClearStatusMsg:
		if typed.ID == m.statusID {
			m.Status = StatusBar{}
		}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.setStatus(typed.Err.Error(), true)
			m.logger.Error("application error", "err", typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	snap := m.snapshot
	data := views.AppData{
		Width:         m.width,
		Height:        m.height,
		TimerPanel:    m.renderTimerPanel(),
		InputView:     m.taskInput.View(),
		InputActive:   snap.Mode == model.ModeInsert,
		PomodoroNo:    snap.PomodoroCount,
		TaskTableView: m.taskTable.View(),
		TasksActive:   snap.Mode == model.ModeEdit,
		StatusLine:    m.statusLine(),
		StatusIsError: m.Status.IsError,
		Footer:        m.footer(),
		BreakOverlay:  m.renderBreakOverlay(),
	}
	if snap.HelpVisible {
		data.HelpOverlay = m.renderHelpOverlay()
	}
	return views.RenderApp(data)
}

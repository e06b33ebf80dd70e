package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomo/internal/commands"
	"github.com/sandeepkv93/pomo/internal/model"
)

type keyHandler func(Model, tea.KeyMsg) (Model, tea.Cmd)

// modeHandlers holds exactly one handler per mode.
var modeHandlers = map[model.Mode]keyHandler{
	model.ModeNormal: Model.handleNormalKey,
	model.ModeInsert: Model.handleInsertKey,
	model.ModeEdit:   Model.handleEditKey,
	model.ModeBreak:  Model.handleBreakKey,
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.exec(commands.TypeQuit)
	}
	handler, ok := modeHandlers[m.state.Mode()]
	if !ok {
		m.logger.Error("no key handler for mode", "mode", m.state.Mode())
		return m, nil
	}
	return handler(m, msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, _ := m.dispatch(m.keys.Normal, msg)
	return next, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, _ := m.dispatch(m.keys.Edit, msg)
	return next, cmd
}

func (m Model) handleBreakKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, _ := m.dispatch(m.keys.Break, msg)
	return next, cmd
}

// handleInsertKey forwards everything it does not bind to the text input.
func (m Model) handleInsertKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if strings.TrimSpace(m.taskInput.Value()) == "" {
			m.taskInput.Reset()
			m.state.SetInput("")
			return m, nil
		}
		m.state.SetInput(m.taskInput.Value())
		return m.exec(commands.TypeSubmit)
	}
	if next, cmd, ok := m.dispatch(m.keys.Insert, msg); ok {
		return next, cmd
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	m.state.SetInput(m.taskInput.Value())
	return m, cmd
}

// dispatch runs the first action whose binding matches msg.
func (m Model) dispatch(actions []action, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, a := range actions {
		if key.Matches(msg, a.binding) {
			next, cmd := m.exec(a.command)
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (m Model) exec(cmd commands.Type) (Model, tea.Cmd) {
	before := m.state.Mode()
	res, err := commands.Execute(cmd, m.state)
	if err != nil {
		m.LastError = err
		m.setStatus(err.Error(), true)
		m.logger.Warn("command rejected", "command", cmd, "mode", before, "err", err)
		return m, nil
	}
	m.logger.Debug("command applied", "command", cmd, "mode", before)
	if after := m.state.Mode(); after != before {
		m.logger.Debug("mode transition", "from", before, "to", after)
	}
	if res.Quit {
		m.Quitting = true
		return m, tea.Quit
	}
	if res.Message == "" {
		return m, nil
	}
	return m, m.setStatus(res.Message, false)
}

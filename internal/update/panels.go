package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomo/internal/model"
	"github.com/sandeepkv93/pomo/internal/views"
)

const statusTTL = 4 * time.Second

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

func (m Model) renderTimerPanel() string {
	w := m.snapshot.Work
	return views.RenderTimerPanel(views.TimerPanelData{
		Bar:       m.workProgress.ViewAs(views.Fraction(w.Elapsed, w.Length)),
		Remaining: w.Remaining,
		Length:    w.Length,
		Running:   w.Running,
		Finished:  w.Finished,
	})
}

func (m Model) renderBreakOverlay() string {
	if m.snapshot.Mode != model.ModeBreak {
		return ""
	}
	b := m.snapshot.Break
	return views.RenderBreakPanel(views.BreakPanelData{
		Bar:       m.breakProgress.ViewAs(views.Fraction(b.Elapsed, b.Length)),
		Remaining: b.Remaining,
		Length:    b.Length,
		Finished:  b.Finished,
	})
}

func (m Model) statusLine() string {
	if m.Status.Text == "" {
		return ""
	}
	if m.Status.IsError {
		return fmt.Sprintf("status: error: %s", m.Status.Text)
	}
	return fmt.Sprintf("status: %s", m.Status.Text)
}

// setStatus replaces the status line. Informational text clears itself after
// statusTTL unless a newer status replaced it first; errors stay put.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.Status = StatusBar{Text: text, IsError: isErr}
	if isErr {
		return nil
	}
	id := m.statusID
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return ClearStatusMsg{ID: id} })
}

// notifyCmd sends a desktop notification off the update loop. A failed send
// comes back as an AppErrorMsg.
func (m Model) notifyCmd(title, body, level string) tea.Cmd {
	if strings.TrimSpace(body) == "" || !m.DesktopEnabled || m.notifier == nil {
		return nil
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.state.Clock().Now(),
	}
	notifier := m.notifier
	return func() tea.Msg {
		if err := notifier.Send(n); err != nil {
			return AppErrorMsg{Err: fmt.Errorf("desktop notification: %w", err)}
		}
		return nil
	}
}

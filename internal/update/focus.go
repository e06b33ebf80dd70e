package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pomo/internal/model"
	"github.com/sandeepkv93/pomo/internal/views"
)

const blinkPhase = 500 * time.Millisecond

func frameTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return FrameMsg{At: t} })
}

// onFrame re-reads both timers and announces each finish once.
func (m Model) onFrame() (Model, tea.Cmd) {
	p := m.state.Refresh()
	cmds := []tea.Cmd{frameTickCmd(m.frameInterval)}
	if p.WorkFinished {
		n := m.state.PomodoroCount()
		text := fmt.Sprintf("pomodoro %d complete; b for a break, r for the next one", n)
		m.logger.Info("work timer finished", "pomodoro", n)
		cmds = append(cmds, m.setStatus(text, false), m.notifyCmd("Pomodoro finished", text, "info"))
	}
	if p.BreakFinished {
		text := "break over; esc to get back to work"
		m.logger.Info("break timer finished", "pomodoro", m.state.PomodoroCount())
		cmds = append(cmds, m.setStatus(text, false), m.notifyCmd("Break finished", text, "info"))
	}
	return m, tea.Batch(cmds...)
}

// blinkOn alternates every blinkPhase of clock time.
func blinkOn(now time.Time) bool {
	return (now.UnixMilli()/blinkPhase.Milliseconds())%2 == 0
}

func workBarColor(r model.TimerReading, now time.Time) string {
	if !r.Finished {
		return views.ColorMagenta
	}
	if blinkOn(now) {
		return views.ColorRed
	}
	return views.ColorWhite
}

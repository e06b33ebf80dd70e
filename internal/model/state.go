package model

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/pomo/internal/clock"
)

type Mode string

const (
	ModeNormal Mode = "Normal"
	ModeInsert Mode = "Insert"
	ModeEdit   Mode = "Edit"
	ModeBreak  Mode = "Break"
)

// Modes lists every mode in a stable order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeInsert, ModeEdit, ModeBreak}
}

// State is the single application state owned by the run loop.
type State struct {
	clock         clock.Clock
	work          *Timer
	brk           *Timer
	pomodoroCount int
	mode          Mode
	input         string
	tasks         TaskList
	helpVisible   bool
	workReported  bool
	brkReported   bool
}

// Progress reports timers that reached zero during a Refresh.
type Progress struct {
	WorkFinished  bool
	BreakFinished bool
}

// Snapshot is an immutable copy of State handed to the renderer.
type Snapshot struct {
	Mode          Mode
	Work          TimerReading
	Break         TimerReading
	PomodoroCount int
	Input         string
	Tasks         []Task
	Selected      int
	HasSelection  bool
	HelpVisible   bool
	Now           time.Time
}

func NewState(workLength, breakLength time.Duration, clk clock.Clock) *State {
	if clk == nil {
		clk = clock.System
	}
	return &State{
		clock:         clk,
		work:          NewTimer(workLength, clk),
		brk:           NewTimer(breakLength, clk),
		pomodoroCount: 1,
		mode:          ModeNormal,
	}
}

func (s *State) Mode() Mode         { return s.mode }
func (s *State) PomodoroCount() int { return s.pomodoroCount }
func (s *State) Input() string      { return s.input }
func (s *State) HelpVisible() bool  { return s.helpVisible }
func (s *State) Tasks() *TaskList   { return &s.tasks }
func (s *State) WorkTimer() *Timer  { return s.work }
func (s *State) BreakTimer() *Timer { return s.brk }
func (s *State) SetInput(in string) { s.input = in }
func (s *State) Clock() clock.Clock { return s.clock }
func (s *State) ToggleHelp()        { s.helpVisible = !s.helpVisible }
func (s *State) HideHelp()          { s.helpVisible = false }
func (s *State) StartTimer()        { s.work.Start() }
func (s *State) PauseTimer()        { s.work.Pause() }

// ResetTimer restarts the work interval and advances to the next pomodoro.
func (s *State) ResetTimer() {
	s.work.Reset()
	s.workReported = false
	s.pomodoroCount++
}

func (s *State) EnterInsert() error {
	return s.transition(ModeNormal, ModeInsert)
}

func (s *State) EnterEdit() error {
	return s.transition(ModeNormal, ModeEdit)
}

// ExitToNormal leaves Insert or Edit. Leaving Edit clears the row selection.
func (s *State) ExitToNormal() error {
	switch s.mode {
	case ModeNormal:
		return nil
	case ModeInsert:
		s.mode = ModeNormal
		return nil
	case ModeEdit:
		s.tasks.Unselect()
		s.mode = ModeNormal
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.mode, ModeNormal)
	}
}

// StartBreak pauses the work timer and starts the break timer.
func (s *State) StartBreak() error {
	if err := s.transition(ModeNormal, ModeBreak); err != nil {
		return err
	}
	s.work.Pause()
	s.brk.Start()
	return nil
}

// DismissBreak returns to Normal with the break timer reset to full length.
func (s *State) DismissBreak() error {
	if err := s.transition(ModeBreak, ModeNormal); err != nil {
		return err
	}
	s.brk.Reset()
	s.brkReported = false
	return nil
}

// SubmitInput turns the buffer into a task and clears it. The mode is left
// unchanged so entry can continue.
func (s *State) SubmitInput() (Task, error) {
	if s.mode != ModeInsert {
		return Task{}, fmt.Errorf("%w: submit outside %s mode", ErrInvalidTransition, ModeInsert)
	}
	task, err := s.tasks.Add(s.input)
	s.input = ""
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

func (s *State) NextRow() error {
	if err := s.requireMode(ModeEdit); err != nil {
		return err
	}
	s.tasks.Next()
	return nil
}

func (s *State) PreviousRow() error {
	if err := s.requireMode(ModeEdit); err != nil {
		return err
	}
	s.tasks.Previous()
	return nil
}

func (s *State) MarkSelectedCompleted() error {
	if err := s.requireMode(ModeEdit); err != nil {
		return err
	}
	return s.tasks.MarkSelectedCompleted()
}

func (s *State) DeleteSelected() error {
	if err := s.requireMode(ModeEdit); err != nil {
		return err
	}
	return s.tasks.RemoveSelected()
}

// Refresh reads both timers and reports each finish exactly once, however
// many reads happened in between.
func (s *State) Refresh() Progress {
	s.work.Read()
	s.brk.Read()
	p := Progress{
		WorkFinished:  s.work.Finished() && !s.workReported,
		BreakFinished: s.brk.Finished() && !s.brkReported,
	}
	s.workReported = s.work.Finished()
	s.brkReported = s.brk.Finished()
	return p
}

func (s *State) Snapshot() Snapshot {
	sel, ok := s.tasks.Selected()
	if !ok {
		sel = -1
	}
	return Snapshot{
		Mode:          s.mode,
		Work:          s.work.Reading(),
		Break:         s.brk.Reading(),
		PomodoroCount: s.pomodoroCount,
		Input:         s.input,
		Tasks:         s.tasks.Tasks(),
		Selected:      sel,
		HasSelection:  ok,
		HelpVisible:   s.helpVisible,
		Now:           s.clock.Now(),
	}
}

func (s *State) transition(from, to Mode) error {
	if s.mode != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.mode, to)
	}
	s.mode = to
	return nil
}

func (s *State) requireMode(want Mode) error {
	if s.mode != want {
		return fmt.Errorf("%w: %s required, in %s", ErrInvalidTransition, want, s.mode)
	}
	return nil
}

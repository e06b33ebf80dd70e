package commands

import (
	"fmt"

	"github.com/sandeepkv93/pomo/internal/model"
)

type Result struct {
	Message string
	Quit    bool
}

// Execute applies one command to the state. State errors come back wrapped
// in a CommandError with ErrCodeRejected; the state is left unchanged.
func Execute(cmd Type, s *model.State) (Result, error) {
	switch cmd {
	case TypeQuit:
		return Result{Message: "bye", Quit: true}, nil
	case TypeStart:
		s.StartTimer()
		return Result{Message: "timer running"}, nil
	case TypePause:
		s.PauseTimer()
		return Result{Message: "timer paused"}, nil
	case TypeReset:
		s.ResetTimer()
		return Result{Message: fmt.Sprintf("pomodoro %d ready", s.PomodoroCount())}, nil
	case TypeInsert:
		return apply(cmd, s.EnterInsert(), "insert mode")
	case TypeEdit:
		return apply(cmd, s.EnterEdit(), "edit mode")
	case TypeNormal:
		return apply(cmd, s.ExitToNormal(), "normal mode")
	case TypeToggleHelp:
		s.ToggleHelp()
		if s.HelpVisible() {
			return Result{Message: "help shown"}, nil
		}
		return Result{Message: "help hidden"}, nil
	case TypeHideHelp:
		s.HideHelp()
		return Result{Message: "help hidden"}, nil
	case TypeBreak:
		return apply(cmd, s.StartBreak(), "break started")
	case TypeDismissBreak:
		return apply(cmd, s.DismissBreak(), "break over")
	case TypeRowDown:
		return apply(cmd, s.NextRow(), "")
	case TypeRowUp:
		return apply(cmd, s.PreviousRow(), "")
	case TypeMarkComplete:
		msg := selectionMessage(s, "task completed")
		return apply(cmd, s.MarkSelectedCompleted(), msg)
	case TypeDeleteSelected:
		msg := selectionMessage(s, "task deleted")
		return apply(cmd, s.DeleteSelected(), msg)
	case TypeSubmit:
		task, err := s.SubmitInput()
		if err != nil {
			return Result{}, reject(cmd, err)
		}
		return Result{Message: fmt.Sprintf("task added: %s", task.Description)}, nil
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd)}
	}
}

func apply(cmd Type, err error, msg string) (Result, error) {
	if err != nil {
		return Result{}, reject(cmd, err)
	}
	return Result{Message: msg}, nil
}

func reject(cmd Type, err error) error {
	return &CommandError{Code: ErrCodeRejected, Message: fmt.Sprintf("%s: %v", cmd, err), Err: err}
}

// selectionMessage must be taken before the command runs. Without a selected
// row the command is a silent no-op.
func selectionMessage(s *model.State, msg string) string {
	if _, ok := s.Tasks().Selected(); !ok {
		return ""
	}
	return msg
}

package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeQuit           Type = "quit"
	TypePause          Type = "pause"
	TypeStart          Type = "start"
	TypeReset          Type = "reset"
	TypeInsert         Type = "insert"
	TypeEdit           Type = "edit"
	TypeToggleHelp     Type = "toggle_help"
	TypeHideHelp       Type = "hide_help"
	TypeBreak          Type = "break"
	TypeDismissBreak   Type = "dismiss_break"
	TypeRowDown        Type = "row_down"
	TypeRowUp          Type = "row_up"
	TypeMarkComplete   Type = "mark_complete"
	TypeDeleteSelected Type = "delete_selected"
	TypeNormal         Type = "normal"
	TypeSubmit         Type = "submit"
)

// All lists every command type in a stable order.
func All() []Type {
	return []Type{
		TypeQuit, TypePause, TypeStart, TypeReset, TypeInsert, TypeEdit,
		TypeToggleHelp, TypeHideHelp, TypeBreak, TypeDismissBreak,
		TypeRowDown, TypeRowUp, TypeMarkComplete, TypeDeleteSelected,
		TypeNormal, TypeSubmit,
	}
}

type ErrorCode string

const (
	ErrCodeEmptyInput     ErrorCode = "empty_input"
	ErrCodeUnknownCommand ErrorCode = "unknown_command"
	ErrCodeRejected       ErrorCode = "rejected"
)

type CommandError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Parse resolves a command name such as "toggle_help" or "toggle-help".
func Parse(input string) (Type, error) {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "" {
		return "", &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	raw = strings.ReplaceAll(raw, "-", "_")
	for _, t := range All() {
		if Type(raw) == t {
			return t, nil
		}
	}
	return "", &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", raw)}
}

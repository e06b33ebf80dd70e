package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/pomo/internal/commands"
	"github.com/sandeepkv93/pomo/internal/model"
)

// action binds keys to the command they trigger.
type action struct {
	binding key.Binding
	command commands.Type
}

type keyMap struct {
	ForceQuit key.Binding
	Submit    key.Binding
	Normal    []action
	Insert    []action
	Edit      []action
	Break     []action
}

// bind resolves a command name to its type. The tables below are fixed, so an
// unknown name is a programming error.
func bind(name, help, desc string, keys ...string) action {
	cmd, err := commands.Parse(name)
	if err != nil {
		panic(fmt.Sprintf("keymap: %v", err))
	}
	return action{
		binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		command: cmd,
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Normal: []action{
			bind("start", "s", "start timer", "s"),
			bind("pause", "p", "pause timer", "p"),
			bind("reset", "r", "next pomodoro", "r"),
			bind("insert", "i", "add tasks", "i"),
			bind("edit", "e", "edit tasks", "e"),
			bind("break", "b", "take a break", "b"),
			bind("toggle-help", "?", "toggle help", "?"),
			bind("hide-help", "esc", "hide help", "esc"),
			bind("quit", "q", "quit", "q"),
		},
		Insert: []action{
			bind("normal", "esc", "back", "esc"),
			bind("toggle-help", "f1", "toggle help", "f1"),
		},
		Edit: []action{
			bind("row-down", "j/↓", "next task", "j", "down"),
			bind("row-up", "k/↑", "previous task", "k", "up"),
			bind("mark-complete", "m", "mark complete", "m"),
			bind("delete-selected", "d", "delete task", "d"),
			bind("normal", "esc", "back", "esc"),
			bind("toggle-help", "?", "toggle help", "?"),
		},
		Break: []action{
			bind("dismiss-break", "esc/b", "end break", "esc", "b"),
			bind("toggle-help", "?", "toggle help", "?"),
		},
	}
}

// ForMode returns the actions active in mode. Insert also carries the
// submit binding, which is handled outside the table.
func (k keyMap) ForMode(mode model.Mode) []action {
	switch mode {
	case model.ModeInsert:
		return append([]action{{binding: k.Submit, command: commands.TypeSubmit}}, k.Insert...)
	case model.ModeEdit:
		return k.Edit
	case model.ModeBreak:
		return k.Break
	default:
		return k.Normal
	}
}

func bindings(actions []action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.binding)
	}
	return out
}

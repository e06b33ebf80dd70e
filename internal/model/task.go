package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange        = errors.New("model: task index out of range")
	ErrEmptyDescription  = errors.New("model: task description is required")
	ErrInvalidTransition = errors.New("model: invalid mode transition")
)

type Task struct {
	Completed   bool
	Description string
	Estimation  int
}

// TaskList is an ordered task collection with an optional selected row.
// Insertion order is significant: it drives display and index selection.
type TaskList struct {
	tasks    []Task
	selected int
	hasSel   bool
}

func (l *TaskList) Add(description string) (Task, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return Task{}, ErrEmptyDescription
	}
	task := Task{Description: trimmed}
	l.tasks = append(l.tasks, task)
	return task, nil
}

func (l *TaskList) Len() int { return len(l.tasks) }

// Tasks returns a copy of the list in insertion order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) At(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(l.tasks))
	}
	return l.tasks[i], nil
}

// Selected reports the selected row, if any.
func (l *TaskList) Selected() (int, bool) {
	if !l.hasSel {
		return 0, false
	}
	return l.selected, true
}

func (l *TaskList) Select(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(l.tasks))
	}
	l.selected = i
	l.hasSel = true
	return nil
}

func (l *TaskList) Unselect() {
	l.selected = 0
	l.hasSel = false
}

// Next moves the selection down one row, wrapping to the first row.
func (l *TaskList) Next() {
	n := len(l.tasks)
	if n == 0 {
		l.Unselect()
		return
	}
	if !l.hasSel {
		l.selected, l.hasSel = 0, true
		return
	}
	l.selected = (l.selected + 1) % n
}

// Previous moves the selection up one row, wrapping to the last row.
func (l *TaskList) Previous() {
	n := len(l.tasks)
	if n == 0 {
		l.Unselect()
		return
	}
	if !l.hasSel {
		l.selected, l.hasSel = 0, true
		return
	}
	l.selected = (l.selected - 1 + n) % n
}

// MarkSelectedCompleted is a no-op when no row is selected.
func (l *TaskList) MarkSelectedCompleted() error {
	i, ok := l.Selected()
	if !ok {
		return nil
	}
	if i >= len(l.tasks) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(l.tasks))
	}
	l.tasks[i].Completed = true
	return nil
}

// RemoveSelected deletes the selected row. Later rows shift down by one and
// the selection is clamped to the new length, or cleared when the list
// becomes empty.
func (l *TaskList) RemoveSelected() error {
	i, ok := l.Selected()
	if !ok {
		return nil
	}
	if i >= len(l.tasks) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(l.tasks))
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	switch {
	case len(l.tasks) == 0:
		l.Unselect()
	case i >= len(l.tasks):
		l.selected = len(l.tasks) - 1
	}
	return nil
}

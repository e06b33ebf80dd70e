package model

import (
	"errors"
	"testing"
)

func newTaskList(t *testing.T, descriptions ...string) *TaskList {
	t.Helper()
	var l TaskList
	for _, d := range descriptions {
		if _, err := l.Add(d); err != nil {
			t.Fatalf("add %q: %v", d, err)
		}
	}
	return &l
}

func TestTaskListAdd(t *testing.T) {
	l := newTaskList(t, "write report")
	got, err := l.At(0)
	if err != nil {
		t.Fatalf("At(0) error: %v", err)
	}
	want := Task{Completed: false, Description: "write report", Estimation: 0}
	if got != want {
		t.Fatalf("unexpected task: %+v", got)
	}

	if _, err := l.Add("   "); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("blank description should not be added, len=%d", l.Len())
	}
}

func TestTaskListNavigationWraps(t *testing.T) {
	l := newTaskList(t, "a", "b", "c")
	if _, ok := l.Selected(); ok {
		t.Fatal("expected no initial selection")
	}
	l.Next()
	if i, _ := l.Selected(); i != 0 {
		t.Fatalf("first Next should select row 0, got %d", i)
	}
	l.Previous()
	if i, _ := l.Selected(); i != 2 {
		t.Fatalf("Previous from row 0 should wrap to 2, got %d", i)
	}
	l.Next()
	if i, _ := l.Selected(); i != 0 {
		t.Fatalf("Next from last row should wrap to 0, got %d", i)
	}
}

func TestTaskListNavigationOnEmptyList(t *testing.T) {
	var l TaskList
	l.Next()
	l.Previous()
	if _, ok := l.Selected(); ok {
		t.Fatal("empty list must not gain a selection")
	}
	if err := l.RemoveSelected(); err != nil {
		t.Fatalf("remove without selection should be a no-op, got %v", err)
	}
	if err := l.MarkSelectedCompleted(); err != nil {
		t.Fatalf("mark without selection should be a no-op, got %v", err)
	}
}

func TestTaskListRemoveSelectedShiftsRows(t *testing.T) {
	l := newTaskList(t, "first", "second", "third")
	if err := l.Select(0); err != nil {
		t.Fatalf("Select(0): %v", err)
	}
	if err := l.RemoveSelected(); err != nil {
		t.Fatalf("RemoveSelected: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", l.Len())
	}
	if got, _ := l.At(0); got.Description != "second" {
		t.Fatalf("expected former row 1 at row 0, got %q", got.Description)
	}

	if err := l.Select(1); err != nil {
		t.Fatalf("Select(1): %v", err)
	}
	if err := l.RemoveSelected(); err != nil {
		t.Fatalf("RemoveSelected: %v", err)
	}
	if i, ok := l.Selected(); !ok || i != 0 {
		t.Fatalf("selection should clamp to last row, got %d ok=%t", i, ok)
	}

	if err := l.RemoveSelected(); err != nil {
		t.Fatalf("RemoveSelected: %v", err)
	}
	if _, ok := l.Selected(); ok || l.Len() != 0 {
		t.Fatalf("emptied list should clear selection, len=%d ok=%t", l.Len(), ok)
	}
}

func TestTaskListMarkSelectedCompleted(t *testing.T) {
	l := newTaskList(t, "a", "b")
	l.Next()
	l.Next()
	if err := l.MarkSelectedCompleted(); err != nil {
		t.Fatalf("MarkSelectedCompleted: %v", err)
	}
	tasks := l.Tasks()
	if tasks[0].Completed || !tasks[1].Completed {
		t.Fatalf("expected only row 1 completed, got %+v", tasks)
	}
	// Marking twice keeps it completed.
	if err := l.MarkSelectedCompleted(); err != nil || !l.Tasks()[1].Completed {
		t.Fatalf("second mark changed state: %v", err)
	}
}

func TestTaskListSelectOutOfRange(t *testing.T) {
	l := newTaskList(t, "only")
	err := l.Select(3)
	if err == nil || !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := l.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for At(-1), got %v", err)
	}
}

func TestTaskListTasksReturnsCopy(t *testing.T) {
	l := newTaskList(t, "a")
	tasks := l.Tasks()
	tasks[0].Description = "mutated"
	if got, _ := l.At(0); got.Description != "a" {
		t.Fatalf("Tasks() leaked internal slice, got %q", got.Description)
	}
}

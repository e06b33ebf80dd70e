package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/pomo/internal/clock"
	"github.com/sandeepkv93/pomo/internal/model"
)

func newState() (*model.State, *clock.Fake) {
	clk := clock.NewFake(time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC))
	return model.NewState(model.DefaultWorkLength, model.DefaultBreakLength, clk), clk
}

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"quit", TypeQuit},
		{" Start ", TypeStart},
		{"toggle-help", TypeToggleHelp},
		{"delete_selected", TypeDeleteSelected},
		{"dismiss-break", TypeDismissBreak},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if got != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, got, tc.typeWant)
		}
	}
}

func TestParseRoundTripsAllTypes(t *testing.T) {
	for _, typ := range All() {
		got, err := Parse(string(typ))
		if err != nil || got != typ {
			t.Fatalf("Parse(%q) = %q, %v", typ, got, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("snooze")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestExecuteTimerCommands(t *testing.T) {
	s, clk := newState()
	if _, err := Execute(TypeStart, s); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.Advance(time.Second)
	if _, err := Execute(TypePause, s); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if r := s.WorkTimer().Reading(); r.Running || r.Remaining != model.DefaultWorkLength-time.Second {
		t.Fatalf("unexpected work timer after pause: %+v", r)
	}
	res, err := Execute(TypeReset, s)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.PomodoroCount() != 2 || res.Message != "pomodoro 2 ready" {
		t.Fatalf("unexpected reset result %q count=%d", res.Message, s.PomodoroCount())
	}
}

func TestExecuteQuit(t *testing.T) {
	s, _ := newState()
	res, err := Execute(TypeQuit, s)
	if err != nil || !res.Quit {
		t.Fatalf("expected quit result, got %+v %v", res, err)
	}
}

func TestExecuteRejectedTransitionWrapsStateError(t *testing.T) {
	s, _ := newState()
	_, err := Execute(TypeDismissBreak, s)
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeRejected {
		t.Fatalf("expected rejected command error, got %v", err)
	}
	if !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected wrapped ErrInvalidTransition, got %v", err)
	}
	if s.Mode() != model.ModeNormal {
		t.Fatalf("mode changed on rejected command: %s", s.Mode())
	}
}

func TestExecuteSubmitAndEditFlow(t *testing.T) {
	s, _ := newState()
	mustExecute(t, s, TypeInsert)
	for _, d := range []string{"one", "two", "three"} {
		s.SetInput(d)
		mustExecute(t, s, TypeSubmit)
	}
	mustExecute(t, s, TypeNormal)
	mustExecute(t, s, TypeEdit)
	mustExecute(t, s, TypeRowDown)
	res := mustExecute(t, s, TypeDeleteSelected)
	if res.Message != "task deleted" {
		t.Fatalf("unexpected delete message %q", res.Message)
	}
	tasks := s.Tasks().Tasks()
	if len(tasks) != 2 || tasks[0].Description != "two" {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}
	mustExecute(t, s, TypeMarkComplete)
	if !s.Tasks().Tasks()[0].Completed {
		t.Fatal("expected selected task completed")
	}
}

func TestExecuteSubmitEmptyIsRejected(t *testing.T) {
	s, _ := newState()
	mustExecute(t, s, TypeInsert)
	_, err := Execute(TypeSubmit, s)
	if !errors.Is(err, model.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestExecuteUnknownType(t *testing.T) {
	s, _ := newState()
	_, err := Execute(Type("snooze"), s)
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func mustExecute(t *testing.T, s *model.State, cmd Type) Result {
	t.Helper()
	res, err := Execute(cmd, s)
	if err != nil {
		t.Fatalf("execute %s: %v", cmd, err)
	}
	return res
}

package model

import (
	"testing"
	"time"

	"github.com/sandeepkv93/pomo/internal/clock"
)

var testEpoch = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

func TestNewTimerReadsFullLength(t *testing.T) {
	clk := clock.NewFake(testEpoch)
	timer := NewTimer(DefaultWorkLength, clk)
	remaining, elapsed := timer.Read()
	if remaining != DefaultWorkLength || elapsed != 0 {
		t.Fatalf("expected %v/0, got %v/%v", DefaultWorkLength, remaining, elapsed)
	}
	if timer.Finished() || timer.Running() {
		t.Fatalf("fresh timer should be idle, running=%t finished=%t", timer.Running(), timer.Finished())
	}
}

func TestTimerDecaysWhileRunning(t *testing.T) {
	clk := clock.NewFake(testEpoch)
	timer := NewTimer(DefaultWorkLength, clk)
	timer.Start()
	clk.Advance(time.Second)

	remaining, elapsed := timer.Read()
	if WholeSeconds(remaining) != 1499 || WholeSeconds(elapsed) != 1 {
		t.Fatalf("expected 1499s remaining / 1s elapsed, got %v / %v", remaining, elapsed)
	}
	// A second read with no time passing must not subtract again.
	again, _ := timer.Read()
	if again != remaining {
		t.Fatalf("repeated read drifted: %v then %v", remaining, again)
	}
}

func TestTimerClampsAndFinishes(t *testing.T) {
	clk := clock.NewFake(testEpoch)
	timer := NewTimer(time.Minute, clk)
	timer.Start()
	clk.Advance(90 * time.Second)

	remaining, elapsed := timer.Read()
	if remaining != 0 || elapsed != time.Minute {
		t.Fatalf("expected clamped 0/1m, got %v/%v", remaining, elapsed)
	}
	if !timer.Finished() || timer.Running() {
		t.Fatalf("expected finished and stopped, running=%t finished=%t", timer.Running(), timer.Finished())
	}

	clk.Advance(time.Minute)
	if remaining, _ := timer.Read(); remaining != 0 {
		t.Fatalf("finished timer should stay at zero, got %v", remaining)
	}
	timer.Start()
	if timer.Running() {
		t.Fatal("start on a finished timer should be a no-op")
	}
}

func TestTimerPauseHoldsRemaining(t *testing.T) {
	clk := clock.NewFake(testEpoch)
	timer := NewTimer(DefaultWorkLength, clk)
	timer.Start()
	clk.Advance(10 * time.Second)
	timer.Pause()

	held, _ := timer.Read()
	if held != DefaultWorkLength-10*time.Second {
		t.Fatalf("pause should settle elapsed time, got %v", held)
	}
	for i := 0; i < 3; i++ {
		clk.Advance(time.Minute)
		if got, _ := timer.Read(); got != held {
			t.Fatalf("paused timer decayed: %v -> %v", held, got)
		}
	}

	timer.Start()
	clk.Advance(5 * time.Second)
	if got, _ := timer.Read(); got != held-5*time.Second {
		t.Fatalf("resume should continue from %v, got %v", held, got)
	}
}

func TestTimerStartWhileRunningDoesNotDoubleCount(t *testing.T) {
	clk := clock.NewFake(testEpoch)
	timer := NewTimer(DefaultWorkLength, clk)
	timer.Start()
	clk.Advance(3 * time.Second)
	timer.Start()
	clk.Advance(2 * time.Second)

	if got, _ := timer.Read(); got != DefaultWorkLength-5*time.Second {
		t.Fatalf("expected 5s consumed, got remaining %v", got)
	}
}

func TestTimerReset(t *testing.T) {
	clk := clock.NewFake(testEpoch)
	timer := NewTimer(time.Minute, clk)
	timer.Start()
	clk.Advance(2 * time.Minute)
	timer.Read()

	timer.Reset()
	remaining, elapsed := timer.Read()
	if remaining != time.Minute || elapsed != 0 || timer.Finished() || timer.Running() {
		t.Fatalf("reset did not restore timer: remaining=%v elapsed=%v finished=%t running=%t",
			remaining, elapsed, timer.Finished(), timer.Running())
	}
}

func TestWholeSecondsTruncates(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int64
	}{
		{0, 0},
		{999 * time.Millisecond, 0},
		{time.Second, 1},
		{1499*time.Second + 999999*time.Microsecond, 1499},
		{-1500 * time.Millisecond, -1},
	}
	for _, tc := range cases {
		if got := WholeSeconds(tc.in); got != tc.want {
			t.Fatalf("WholeSeconds(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

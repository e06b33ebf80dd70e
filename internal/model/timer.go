package model

import (
	"time"

	"github.com/sandeepkv93/pomo/internal/clock"
)

const (
	DefaultWorkLength  = 25 * time.Minute
	DefaultBreakLength = 5 * time.Minute
)

// Timer counts down one interval. Remaining time is only accurate as of
// lastUpdatedAt; while running, the true value is derived on Read.
type Timer struct {
	running       bool
	finished      bool
	lastUpdatedAt time.Time
	remaining     time.Duration
	length        time.Duration
	clock         clock.Clock
}

// TimerReading is a point-in-time view of a Timer.
type TimerReading struct {
	Remaining time.Duration
	Elapsed   time.Duration
	Length    time.Duration
	Running   bool
	Finished  bool
}

func NewTimer(length time.Duration, clk clock.Clock) *Timer {
	if clk == nil {
		clk = clock.System
	}
	if length < 0 {
		length = 0
	}
	return &Timer{
		remaining:     length,
		length:        length,
		lastUpdatedAt: clk.Now(),
		clock:         clk,
	}
}

// Start begins or resumes the countdown. A running timer is settled before
// the reference instant is re-stamped so no elapsed time is counted twice
// or dropped.
func (t *Timer) Start() {
	if t.finished {
		return
	}
	if t.running {
		t.settle()
		if t.finished {
			return
		}
	}
	t.running = true
	t.lastUpdatedAt = t.clock.Now()
}

// Pause settles the time elapsed since the last read before stopping, so a
// pause never drops a partial interval.
func (t *Timer) Pause() {
	if t.running {
		t.settle()
	}
	t.running = false
}

func (t *Timer) Reset() {
	t.running = false
	t.finished = false
	t.remaining = t.length
	t.lastUpdatedAt = t.clock.Now()
}

// Read returns the remaining and elapsed time, writing the decayed value back
// so repeated reads never subtract the same interval twice.
func (t *Timer) Read() (remaining, elapsed time.Duration) {
	if t.running {
		t.settle()
	}
	return t.remaining, t.length - t.remaining
}

// Reading reads the timer and bundles the result with its flags.
func (t *Timer) Reading() TimerReading {
	remaining, elapsed := t.Read()
	return TimerReading{
		Remaining: remaining,
		Elapsed:   elapsed,
		Length:    t.length,
		Running:   t.running,
		Finished:  t.finished,
	}
}

func (t *Timer) Running() bool         { return t.running }
func (t *Timer) Finished() bool        { return t.finished }
func (t *Timer) Length() time.Duration { return t.length }

func (t *Timer) settle() {
	now := t.clock.Now()
	delta := now.Sub(t.lastUpdatedAt)
	if delta < 0 {
		delta = 0
	}
	t.lastUpdatedAt = now
	t.remaining -= delta
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		t.finished = true
	}
}

// WholeSeconds truncates d toward zero.
func WholeSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

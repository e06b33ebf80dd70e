package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/sandeepkv93/pomo/internal/model"
)

const CheckMark = "✅"

type TimerPanelData struct {
	Bar       string
	Remaining time.Duration
	Length    time.Duration
	Running   bool
	Finished  bool
}

type HelpRow struct {
	Key    string
	Action string
}

// HelpPanelData carries the help body already rendered from HelpMarkdown.
type HelpPanelData struct {
	Mode     string
	Rendered string
}

type BreakPanelData struct {
	Bar       string
	Remaining time.Duration
	Length    time.Duration
	Finished  bool
}

func RenderTimerPanel(data TimerPanelData) string {
	state := "paused"
	switch {
	case data.Finished:
		state = "finished"
	case data.Running:
		state = "running"
	}
	return fmt.Sprintf("%s\n%s  [%s]", data.Bar, TimerLabel(data.Remaining, data.Length), state)
}

func RenderBreakPanel(data BreakPanelData) string {
	body := fmt.Sprintf("%s\n%s", data.Bar, TimerLabel(data.Remaining, data.Length))
	if data.Finished {
		body += "\nbreak is over, press esc to get back to work"
	} else {
		body += "\npress esc to end the break"
	}
	return modal("Break", body)
}

// HelpMarkdown builds the key/action table shown in the help overlay.
func HelpMarkdown(rows []HelpRow) string {
	var b strings.Builder
	b.WriteString("| Key | Action |\n")
	b.WriteString("| --- | --- |\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("| `%s` | %s |\n", r.Key, r.Action))
	}
	return b.String()
}

func RenderHelpPanel(data HelpPanelData) string {
	return modal(fmt.Sprintf("Help (%s mode)", strings.ToLower(data.Mode)), data.Rendered)
}

// TimerLabel formats elapsed/length (remaining) as MM:SS. Elapsed seconds
// are derived from the truncated remaining seconds so the two always add up
// to the length.
func TimerLabel(remaining, length time.Duration) string {
	remainingSec := model.WholeSeconds(remaining)
	lengthSec := model.WholeSeconds(length)
	elapsedSec := lengthSec - remainingSec
	return fmt.Sprintf("%s/%s (%s)", FormatClock(elapsedSec), FormatClock(lengthSec), FormatClock(remainingSec))
}

func FormatClock(totalSec int64) string {
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}

// Fraction returns elapsed/length clamped to [0, 1].
func Fraction(elapsed, length time.Duration) float64 {
	if length <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(length)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func CompletedMarker(done bool) string {
	if done {
		return CheckMark
	}
	return ""
}

// TruncateCell shortens s to width terminal cells.
func TruncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Package notify shows transient, auto-dismissing messages.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout is how long a toast stays visible when no timeout is given.
const DefaultTimeout = 2000 * time.Millisecond

// Level picks the toast's color.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// HideMsg asks the toaster to hide the toast with the given sequence number.
type HideMsg struct {
	Seq uint64
}

// Toaster holds at most one visible message. Each Show bumps a sequence
// number; a HideMsg only hides the toast it was scheduled for, so an older
// timer can never dismiss a newer message.
type Toaster struct {
	message string
	level   Level
	visible bool
	seq     uint64
}

// Show replaces any visible message and schedules its dismissal after
// timeout. A timeout of zero or less uses DefaultTimeout.
func (t Toaster) Show(message string, level Level, timeout time.Duration) (Toaster, tea.Cmd) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t.seq++
	t.message = message
	t.level = level
	t.visible = true
	return t, hideAfter(t.seq, timeout)
}

// Update handles HideMsg; other messages are ignored.
func (t Toaster) Update(msg tea.Msg) Toaster {
	if hide, ok := msg.(HideMsg); ok && hide.Seq == t.seq {
		t.visible = false
		t.message = ""
	}
	return t
}

// Hide dismisses the current toast immediately.
func (t Toaster) Hide() Toaster {
	t.visible = false
	t.message = ""
	return t
}

// Visible reports whether a message is showing.
func (t Toaster) Visible() bool { return t.visible }

// Message returns the visible message, or "" when hidden.
func (t Toaster) Message() string { return t.message }

// Level returns the level of the visible message.
func (t Toaster) Level() Level { return t.level }

// Seq returns the sequence number of the latest Show.
func (t Toaster) Seq() uint64 { return t.seq }

func hideAfter(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HideMsg{Seq: seq}
	})
}

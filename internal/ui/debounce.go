package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg fires when a scheduled debounce interval elapses. Only
// the message carrying the latest sequence number is still live.
type DebounceMsg struct {
	Seq int
}

// Debouncer is a schedule-replace-on-repeat delayed task: every
// Schedule call supersedes the previous one, and Live tells a handler
// whether an arriving message is the current schedule or a stale one.
type Debouncer struct {
	seq      int
	interval time.Duration
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Schedule arms the debouncer and returns the command that will
// deliver the DebounceMsg once the interval passes without another
// Schedule call superseding it.
func (d *Debouncer) Schedule() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.interval, func(time.Time) tea.Msg {
		return DebounceMsg{Seq: seq}
	})
}

// Live reports whether msg belongs to the most recent Schedule call.
func (d *Debouncer) Live(msg DebounceMsg) bool {
	return msg.Seq == d.seq
}

// Cancel invalidates any in-flight schedule.
func (d *Debouncer) Cancel() {
	d.seq++
}

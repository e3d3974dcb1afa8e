// Package tui drives the Neon Pulse simulation from a Bubble Tea program.
// It owns the frame loop, key mapping, the HUD footer and score persistence.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
// Loop identifies the tick chain so a stale chain can be dropped.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick chain id.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a command that fires one TickMsg after a frame interval.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// Package tui is the Bubble Tea frontend: the game model, the start menu,
// the scoreboard and the SSH server that hands each connection its own game.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skydive/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Each game model owns a
// tick loop id so a loop left over from a previous game is dropped.
type TickMsg struct {
	At time.Time
	id int64
}

var lastTickID atomic.Int64

func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd schedules the next tick of loop id at core.TickRate.
func tickCmd(id int64) tea.Cmd {
	interval := time.Second / time.Duration(core.TickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, id: id}
	})
}

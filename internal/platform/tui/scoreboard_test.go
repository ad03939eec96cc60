package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store := openTestStore(t)
	sid := storage.NewSessionID()
	report := core.JumpReport{Outcome: "landed", LandingX: 50, TargetLeft: 40, TargetRight: 72, ChuteOpen: true, OpenAt: 64}
	if _, err := store.SaveJump(storage.JumpFromReport(sid, "ann", report)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveSession(storage.Session{ID: sid, Player: "ann", Score: 10, TriesLeft: 2, Outcome: storage.OutcomeWin, Ticks: 3720}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.Tab() != TabSessions {
		t.Fatalf("initial tab = %v", m.Tab())
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][1] != "ann" || rows[0][2] != "10" || rows[0][5] != "1:02" {
		t.Errorf("session rows = %v", rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != TabJumps {
		t.Fatalf("tab after tab key = %v", m.Tab())
	}
	rows = m.table.Rows()
	if len(rows) != 1 || rows[0][1] != "landed" || rows[0][3] != "-6.0" || rows[0][4] != "64" {
		t.Errorf("jump rows = %v", rows)
	}

	if view := m.View(); !strings.Contains(view, "1 jumps, 1 landed") {
		t.Errorf("stats line missing:\n%s", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "Scores are unavailable.") {
		t.Error("missing unavailable message")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks uint64
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600 + 600, "1:10"},
	}
	for _, tt := range tests {
		if got := formatTicks(tt.ticks); got != tt.want {
			t.Errorf("formatTicks(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skydive/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{enter}, ChoicePlay},
		{"scores", []tea.KeyMsg{down, enter}, ChoiceScores},
		{"quit entry", []tea.KeyMsg{down, down, down, enter}, ChoiceQuit},
		{"up stops at top", []tea.KeyMsg{up, up, enter}, ChoicePlay},
		{"q", []tea.KeyMsg{runeKey('q')}, ChoiceQuit},
		{"nothing yet", []tea.KeyMsg{down}, ChoiceNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressMenu(NewMenuModel(nil, "", 80, 24), tt.keys...)
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(storage.Session{Player: "ann", Score: 7, Outcome: storage.OutcomeGameOver}); err != nil {
		t.Fatal(err)
	}

	view := NewMenuModel(store, "ann", 80, 24).View()
	for _, want := range []string{"High score: 7", "Welcome, ann", "Play", "High Scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

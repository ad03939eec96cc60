package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/games/skydive"
)

func newTestModel(t *testing.T, embedded bool) Model {
	t.Helper()
	m := NewModel(skydive.New(), Options{
		Config:        config.DefaultSkydiveConfig(),
		Logger:        log.New(io.Discard),
		Seed:          7,
		ScreenshotDir: t.TempDir(),
		Embedded:      embedded,
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = update(t, m, TickMsg{id: m.tickID})
	}
	return m
}

func TestModelJumpKeyLeavesTitle(t *testing.T) {
	m := newTestModel(t, false)
	m = tick(t, m, 3)
	if got := m.State().Phase; got != "title" {
		t.Fatalf("phase = %s, want title", got)
	}

	m, _ = update(t, m, runeKey('x'))
	m = tick(t, m, skydive.DebounceWindow+1)
	if got := m.State().Phase; got != "starting" {
		t.Errorf("phase = %s, want starting", got)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, false)
	m, cmd := update(t, m, TickMsg{id: m.tickID + 1000})
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if m.runner.Game().(*skydive.Game).Ticks() != 0 {
		t.Error("stale tick stepped the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, false)
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit a standalone model")
	}

	e := newTestModel(t, true)
	e, cmd = update(t, e, runeKey('q'))
	if e.IsQuitting() || !e.BackToMenu() || cmd != nil {
		t.Error("q should return an embedded model to the menu")
	}

	e = newTestModel(t, true)
	e, _ = update(t, e, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !e.IsQuitting() {
		t.Error("ctrl+c should always quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(m.screenshotDir, "skydive_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "INSERT COIN") {
		t.Errorf("screenshot misses the title prompt:\n%s", data)
	}
	if !strings.HasPrefix(m.status, "Saved: ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelMousePointer(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5})
	x, y := m.runner.Pointer()
	if x != 20 || y != 20 {
		t.Errorf("pointer = %d,%d, want 20,20", x, y)
	}
}

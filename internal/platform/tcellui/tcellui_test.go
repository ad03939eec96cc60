package tcellui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/games/skydive"
	"github.com/vovakirdan/tui-skydive/internal/platform"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(core.ScreenCols, core.ScreenRows)

	app := New(screen, skydive.New(), Options{
		Config:   config.DefaultSkydiveConfig(),
		Platform: platform.Options{Logger: log.New(io.Discard)},
		Seed:     11,
	})
	return app, screen
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{tcell.KeyLeft, 0, 0, "left"},
		{tcell.KeyUp, 0, 0, "up"},
		{tcell.KeyEnter, 0, 0, "enter"},
		{tcell.KeyEscape, 0, 0, "esc"},
		{tcell.KeyCtrlC, 0, tcell.ModCtrl, "ctrl+c"},
		{tcell.KeyRune, 'x', 0, "x"},
		{tcell.KeyRune, ' ', 0, "space"},
		{tcell.KeyRune, 'a', tcell.ModAlt, "alt+a"},
	}
	for _, tt := range tests {
		if got := keyName(tt.key, tt.r, tt.mod); got != tt.want {
			t.Errorf("keyName(%v, %q) = %q, want %q", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestHandleKey(t *testing.T) {
	app, _ := newTestApp(t)

	for _, quit := range []string{"q", "esc", "ctrl+c"} {
		if app.HandleKey(quit) {
			t.Errorf("%s should quit", quit)
		}
	}
	if !app.HandleKey("x") {
		t.Error("x should not quit")
	}

	for range skydive.DebounceWindow + 1 {
		app.Step()
	}
	if got := app.Runner().State().Phase; got != "starting" {
		t.Errorf("phase = %s, want starting", got)
	}
}

func TestDrawFillsScreen(t *testing.T) {
	app, screen := newTestApp(t)
	app.Draw()

	var row string
	found := false
	for y := range core.ScreenRows {
		row = ""
		for x := range core.ScreenCols {
			r, _, _, _ := screen.GetContent(x, y)
			row += string(r)
		}
		if strings.Contains(row, "INSERT COIN") {
			found = true
			break
		}
	}
	if !found {
		t.Error("title prompt not drawn")
	}

	r, _, style, _ := screen.GetContent(0, core.ScreenRows-1)
	if r != '▀' {
		t.Errorf("bottom-left rune = %q, want half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.GetColor("#86c06c") || bg != tcell.GetColor("#86c06c") {
		t.Errorf("ground colors = %v/%v", fg, bg)
	}
}

func TestHandleMouse(t *testing.T) {
	app, _ := newTestApp(t)
	app.HandleMouse(3, 4)
	if x, y := app.Runner().Pointer(); x != 6 || y != 16 {
		t.Errorf("pointer = %d,%d, want 6,16", x, y)
	}
}

func TestDrawHelpLine(t *testing.T) {
	app, screen := newTestApp(t)
	screen.SetSize(core.ScreenCols, core.ScreenRows+1)
	app.Draw()

	var row string
	for x := range core.ScreenCols {
		r, _, _, _ := screen.GetContent(x, core.ScreenRows)
		row += string(r)
	}
	if want := " x jump  up chute  left/right steer  q quit"; !strings.HasPrefix(row, want) {
		t.Errorf("help row = %q, want prefix %q", row, want)
	}
}

func TestHelpLineDisabled(t *testing.T) {
	cfg := config.DefaultSkydiveConfig()
	cfg.Display.ShowHelp = false
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)

	app := New(screen, skydive.New(), Options{Config: cfg, Platform: platform.Options{Logger: log.New(io.Discard)}})
	if h := app.cells.Height(); h != core.ScreenRows {
		t.Errorf("cell rows = %d, want %d", h, core.ScreenRows)
	}
}

// Package tcellui runs a game directly on a tcell screen, without Bubble
// Tea. It shares the platform Runner with the tui frontend, so input,
// storage and audio behave the same.
package tcellui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/platform"
	"github.com/vovakirdan/tui-skydive/internal/registry"
)

// Options configures an App.
type Options struct {
	Config   config.SkydiveConfig
	Platform platform.Options

	// Seed drives the initial pointer reading; 0 means time-based.
	Seed int64
}

// App draws one game on a tcell screen.
type App struct {
	screen  tcell.Screen
	runner  *platform.Runner
	cells   *core.Screen
	palette [core.PaletteSize]tcell.Color
	keys    map[string]core.Buttons
	quit    map[string]bool
	config  core.RuntimeConfig
	help    string
}

// New wraps an initialized screen.
func New(screen tcell.Screen, game registry.Game, opts Options) *App {
	cfg := core.DefaultConfig()
	cfg.Seed = opts.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Platform.HoldTicks == 0 {
		opts.Platform.HoldTicks = opts.Config.Input.HoldTicks
	}

	rows := core.ScreenRows
	if opts.Config.Display.ShowHelp {
		rows++
	}
	a := &App{
		screen: screen,
		runner: platform.NewRunner(game, opts.Platform),
		cells:  core.NewScreen(core.ScreenCols, rows),
		keys:   make(map[string]core.Buttons),
		quit:   map[string]bool{"ctrl+c": true},
		config: cfg,
	}

	a.palette = [core.PaletteSize]tcell.Color{
		tcell.GetColor("#e0f8cf"), tcell.GetColor("#86c06c"),
		tcell.GetColor("#306850"), tcell.GetColor("#071821"),
	}
	for i, hex := range opts.Config.Palette {
		if i < core.PaletteSize && hex != "" {
			a.palette[i] = tcell.GetColor(hex)
		}
	}

	keys := opts.Config.Input.Keys
	a.bind(keys.Left, core.ButtonLeft)
	a.bind(keys.Right, core.ButtonRight)
	a.bind(keys.Chute, core.ButtonUp)
	a.bind(keys.Jump, core.Button1)
	for _, k := range keys.Quit {
		a.quit[k] = true
	}
	if opts.Config.Display.ShowHelp {
		a.help = helpLine(keys)
	}

	a.runner.Reset(cfg)
	return a
}

func (a *App) bind(names []string, b core.Buttons) {
	for _, n := range names {
		a.keys[n] |= b
	}
}

// helpLine lists the first binding of each action.
func helpLine(k config.KeysConfig) string {
	first := func(names []string) string {
		if len(names) == 0 {
			return "-"
		}
		return names[0]
	}
	return fmt.Sprintf("%s jump  %s chute  %s/%s steer  %s quit",
		first(k.Jump), first(k.Chute), first(k.Left), first(k.Right), first(k.Quit))
}

// keyName converts a tcell key to the key-string form used in the config.
func keyName(k tcell.Key, r rune, mod tcell.ModMask) string {
	switch k {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		if r == ' ' {
			return "space"
		}
		name := string(r)
		if mod&tcell.ModAlt != 0 {
			name = "alt+" + name
		}
		return name
	}
	return strings.ToLower(tcell.KeyNames[k])
}

// HandleKey applies a key press. It returns false when the key quits.
func (a *App) HandleKey(name string) bool {
	if a.quit[name] {
		return false
	}
	if b := a.keys[name]; b != 0 {
		a.runner.Press(b)
	}
	return true
}

// HandleMouse moves the pointer to the given terminal cell.
func (a *App) HandleMouse(col, row int) {
	a.runner.Point(col, row)
}

// Step runs one tick and redraws.
func (a *App) Step() {
	a.runner.Tick()
	a.Draw()
}

// Draw copies the current frame onto the screen.
func (a *App) Draw() {
	a.runner.Draw(a.cells)
	if a.help != "" {
		for x := range a.cells.Width() {
			a.cells.SetCell(x, core.ScreenRows, core.Cell{Rune: ' ', FG: core.Color4, BG: core.Color1})
		}
		a.cells.DrawText(1, core.ScreenRows, a.help)
	}
	a.screen.Clear()
	for y := range a.cells.Height() {
		for x := range a.cells.Width() {
			c := a.cells.GetCell(x, y)
			style := tcell.StyleDefault.
				Foreground(a.color(c.FG)).
				Background(a.color(c.BG))
			a.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	a.screen.Show()
}

func (a *App) color(c core.Color) tcell.Color {
	if !c.Valid() {
		return a.palette[0]
	}
	return a.palette[c-core.Color1]
}

// Runner returns the underlying session runner.
func (a *App) Runner() *platform.Runner {
	return a.runner
}

// Loop ticks at core.TickRate and handles terminal events until a quit key
// is pressed or ctx is done.
func (a *App) Loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / core.TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.HandleKey(keyName(ev.Key(), ev.Rune(), ev.Modifiers())) {
					return
				}
			case *tcell.EventMouse:
				a.HandleMouse(ev.Position())
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case <-ticker.C:
			a.Step()
		}
	}
}

// Run opens the terminal, plays until quit and restores the terminal.
func Run(ctx context.Context, game registry.Game, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	New(screen, game, opts).Loop(ctx)
	return nil
}

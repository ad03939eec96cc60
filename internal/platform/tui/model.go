package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skydive/internal/audio"
	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/platform"
	"github.com/vovakirdan/tui-skydive/internal/registry"
	"github.com/vovakirdan/tui-skydive/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config config.SkydiveConfig
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
	Player string

	// Seed drives the initial pointer reading; 0 means time-based.
	Seed int64

	// ScreenshotDir defaults to ~/.skydive/screenshots.
	ScreenshotDir string

	// Embedded models hand control back to the menu on the quit keys
	// instead of ending the program.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	runner        *platform.Runner
	screen        *core.Screen
	palette       Palette
	keys          KeyMap
	help          help.Model
	showHelp      bool
	config        core.RuntimeConfig
	tickID        int64
	logger        *log.Logger
	screenshotDir string
	embedded      bool
	status        string
	quitting      bool
	backToMenu    bool
}

// NewModel creates a new game model.
func NewModel(game registry.Game, opts Options) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = opts.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	runner := platform.NewRunner(game, platform.Options{
		Store:     opts.Store,
		Audio:     opts.Audio,
		Logger:    opts.Logger,
		Player:    opts.Player,
		HoldTicks: opts.Config.Input.HoldTicks,
	})

	return Model{
		runner:        runner,
		screen:        core.NewScreen(core.ScreenCols, core.ScreenRows),
		palette:       NewPalette(opts.Config.Palette),
		keys:          NewKeyMap(opts.Config.Input.Keys),
		help:          help.New(),
		showHelp:      opts.Config.Display.ShowHelp,
		config:        cfg,
		tickID:        nextTickID(),
		logger:        opts.Logger,
		screenshotDir: opts.ScreenshotDir,
		embedded:      opts.Embedded,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.runner.Reset(m.config)
	return tickCmd(m.tickID)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		ox, oy := m.origin()
		m.runner.Point(msg.X-ox, msg.Y-oy)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.id != m.tickID || m.quitting || m.backToMenu {
			return m, nil
		}
		m.runner.Tick()
		return m, tickCmd(m.tickID)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "Screenshot failed: " + err.Error()
		} else {
			m.status = "Saved: " + path
		}
		return m, nil
	}

	if b := m.keys.Buttons(msg); b != 0 {
		m.runner.Press(b)
	}
	return m, nil
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".skydive", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("cannot create screenshots directory: %w", err)
	}

	m.runner.Draw(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.runner.Game().ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.runner.Draw(m.screen)
	parts := []string{RenderScreen(m.screen, m.palette)}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.config.ScreenW > core.ScreenCols || m.config.ScreenH > core.ScreenRows {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// origin returns the terminal cell where View places the top-left cell of
// the game screen.
func (m Model) origin() (x, y int) {
	lines := core.ScreenRows
	if m.status != "" {
		lines++
	}
	if m.showHelp {
		lines++
	}
	x = max(0, (m.config.ScreenW-core.ScreenCols)/2)
	y = max(0, (m.config.ScreenH-lines)/2)
	return x, y
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.runner.State()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

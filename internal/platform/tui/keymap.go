package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Chute      key.Binding
	Jump       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left:       binding(keys.Left, "steer left"),
		Right:      binding(keys.Right, "steer right"),
		Chute:      binding(keys.Chute, "open chute"),
		Jump:       binding(keys.Jump, "jump / continue"),
		Quit:       binding(keys.Quit, "quit"),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// binding creates a binding from config key names. "space" also matches
// the " " key string some terminals produce for the space bar.
func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names)+1)
	for _, n := range names {
		keys = append(keys, n)
		if n == "space" {
			keys = append(keys, " ")
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Left, k.Right, k.Chute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Chute},
		{k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// Buttons translates a key message to the gamepad buttons it presses.
func (k KeyMap) Buttons(msg tea.KeyMsg) core.Buttons {
	var b core.Buttons
	if key.Matches(msg, k.Left) {
		b |= core.ButtonLeft
	}
	if key.Matches(msg, k.Right) {
		b |= core.ButtonRight
	}
	if key.Matches(msg, k.Chute) {
		b |= core.ButtonUp
	}
	if key.Matches(msg, k.Jump) {
		b |= core.Button1
	}
	return b
}

// MenuKeyMap holds the menu and scoreboard navigation bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Tab    key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the fixed navigation bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "x"),
			key.WithHelp("enter", "select"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Tab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Tab, k.Back, k.Quit},
	}
}

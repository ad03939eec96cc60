package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapButtons(t *testing.T) {
	keys := NewKeyMap(config.DefaultSkydiveConfig().Input.Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Buttons
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft},
		{"a", runeKey('a'), core.ButtonLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight},
		{"d", runeKey('d'), core.ButtonRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ButtonUp},
		{"w", runeKey('w'), core.ButtonUp},
		{"x", runeKey('x'), core.Button1},
		{"z", runeKey('z'), core.Button1},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Button1},
		{"unbound", runeKey('p'), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Buttons(tt.msg); got != tt.want {
				t.Errorf("Buttons(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapCustomKeys(t *testing.T) {
	keys := NewKeyMap(config.KeysConfig{
		Left:  []string{"j"},
		Right: []string{"l"},
		Chute: []string{"i"},
		Jump:  []string{"space"},
	})

	if got := keys.Buttons(runeKey('j')); got != core.ButtonLeft {
		t.Errorf("j = %v, want left", got)
	}
	if got := keys.Buttons(runeKey('a')); got != 0 {
		t.Errorf("a = %v, want nothing once rebound", got)
	}
	if got := keys.Buttons(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.Button1 {
		t.Errorf("space = %v, want button 1", got)
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/skydive.yaml
var defaultSkydiveYAML []byte

// DefaultSkydiveConfig returns the built-in configuration.
func DefaultSkydiveConfig() SkydiveConfig {
	return SkydiveConfig{
		Palette: []string{"#e0f8cf", "#86c06c", "#306850", "#071821"},
		Input: InputConfig{
			HoldTicks: 12,
			Keys: KeysConfig{
				Left:  []string{"left", "a"},
				Right: []string{"right", "d"},
				Chute: []string{"up", "w"},
				Jump:  []string{"x", "z", "space", "enter"},
				Quit:  []string{"q", "esc", "ctrl+c"},
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Display: DisplayConfig{
			ShowHelp: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSkydiveYAML
}

// Package config provides YAML and TOML configuration loading for the
// skydive frontends: palette, key bindings, audio and display options.
// Game physics is fixed and deliberately absent here.
package config

// SkydiveConfig contains all user-tunable settings.
type SkydiveConfig struct {
	Palette []string      `yaml:"palette" toml:"palette"` // Four #rrggbb colors, lightest first
	Input   InputConfig   `yaml:"input" toml:"input"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
	Display DisplayConfig `yaml:"display" toml:"display"`
}

// InputConfig defines how terminal keys become gamepad buttons.
type InputConfig struct {
	// HoldTicks is how long a key press keeps its button down.
	// Must exceed the game's debounce window or taps never register.
	HoldTicks int        `yaml:"hold_ticks" toml:"hold_ticks"`
	Keys      KeysConfig `yaml:"keys" toml:"keys"`
}

// KeysConfig lists the terminal keys bound to each action, in bubbletea
// key-string form ("left", "x", "space", "ctrl+c").
type KeysConfig struct {
	Left  []string `yaml:"left" toml:"left"`
	Right []string `yaml:"right" toml:"right"`
	Chute []string `yaml:"chute" toml:"chute"`
	Jump  []string `yaml:"jump" toml:"jump"`
	Quit  []string `yaml:"quit" toml:"quit"`
}

// AudioConfig defines sound cue output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// DisplayConfig defines frontend presentation options.
type DisplayConfig struct {
	ShowHelp bool `yaml:"show_help" toml:"show_help"`
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/games/skydive"
)

// Source names used when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadSkydive loads the configuration and reports where it came from.
// Search order: customPath -> ~/.skydive/config.yaml -> ~/.skydive/config.toml
// -> ./configs/skydive.yaml -> embedded default -> DefaultSkydiveConfig.
// Only an explicit customPath turns read, parse or validation failures into
// errors; candidates further down the list are skipped when unusable.
func LoadSkydive(customPath string) (SkydiveConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath("config.yaml"),
		userConfigPath("config.toml"),
		filepath.Join("configs", "skydive.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultSkydiveConfig()
	if err := yaml.Unmarshal(defaultSkydiveYAML, &cfg); err != nil {
		return DefaultSkydiveConfig(), SourceBuiltin, nil
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSkydiveConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (SkydiveConfig, error) {
	cfg := DefaultSkydiveConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data into cfg, choosing TOML for .toml paths and YAML
// otherwise. Fields missing from data keep their current values.
func Decode(path string, data []byte, cfg *SkydiveConfig) error {
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// Encode renders cfg as "yaml" or "toml".
func Encode(cfg SkydiveConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		return out, nil
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skydive", filename)
}

// Validate reports every problem found in cfg.
func (c SkydiveConfig) Validate() error {
	var errs []error

	if len(c.Palette) != core.PaletteSize {
		errs = append(errs, fmt.Errorf("palette needs %d colors, got %d", core.PaletteSize, len(c.Palette)))
	}
	for i, hex := range c.Palette {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette[%d]: %w", i, err))
		}
	}

	if c.Input.HoldTicks <= skydive.DebounceWindow {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be greater than %d, got %d",
			skydive.DebounceWindow, c.Input.HoldTicks))
	}
	keys := map[string][]string{
		"left":  c.Input.Keys.Left,
		"right": c.Input.Keys.Right,
		"chute": c.Input.Keys.Chute,
		"jump":  c.Input.Keys.Jump,
		"quit":  c.Input.Keys.Quit,
	}
	for _, name := range []string{"left", "right", "chute", "jump", "quit"} {
		if len(keys[name]) == 0 {
			errs = append(errs, fmt.Errorf("input.keys.%s is empty", name))
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// ParseHexColor parses "#rrggbb" into a 24-bit value.
func ParseHexColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q is not #rrggbb", s)
	}
	return uint32(v), nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skydive/internal/audio"
	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/platform"
	"github.com/vovakirdan/tui-skydive/internal/platform/tcellui"
	"github.com/vovakirdan/tui-skydive/internal/platform/tui"
	"github.com/vovakirdan/tui-skydive/internal/registry"
)

var (
	flagBackend string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls (default bindings, see 'skydive config'):
  X/Z/Space/Enter  - Start, jump, continue
  Up/W             - Open the chute
  Left/A Right/D   - Steer
  Ctrl+S           - Save a text screenshot (bubbletea backend)
  Q/Esc/Ctrl+C     - Quit

Examples:
  skydive play
  skydive play --seed 42
  skydive play --backend tcell
  skydive play --mute --config ./my-skydive.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "bubbletea", "Terminal backend: bubbletea or tcell")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < core.ScreenCols || h < core.ScreenRows {
			logger.Warn("terminal smaller than the playfield",
				"size", fmt.Sprintf("%dx%d", w, h),
				"want", fmt.Sprintf("%dx%d", core.ScreenCols, core.ScreenRows),
			)
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player, cleanup := newAudio(cfg, logger)
	defer cleanup()

	switch flagBackend {
	case "bubbletea", "":
		return tui.Run(game, tui.Options{
			Config: cfg,
			Store:  store,
			Audio:  player,
			Logger: logger,
			Player: currentUser(),
			Seed:   flagSeed,
		})

	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tcellui.Run(ctx, game, tcellui.Options{
			Config: cfg,
			Platform: platform.Options{
				Store:  store,
				Audio:  player,
				Logger: logger,
				Player: currentUser(),
			},
			Seed: flagSeed,
		})

	default:
		return fmt.Errorf("unknown backend %q (want bubbletea or tcell)", flagBackend)
	}
}

// newAudio opens the speaker unless sound is off. A speaker that cannot
// be opened degrades to silence.
func newAudio(cfg config.SkydiveConfig, logger *log.Logger) (audio.Player, func()) {
	if flagMute || !cfg.Audio.Enabled {
		return audio.Silent{}, func() {}
	}

	sm := audio.NewSoundManager(audio.Config{
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
	})
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Silent{}, func() {}
	}
	return sm, sm.Cleanup
}

// currentUser names the local player after the OS account.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

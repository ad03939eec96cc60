package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skydive/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with high scores",
	Long: `Open the start menu: play a game, browse the high scores or quit.
Esc or Q during a game returns to the menu.

Example:
  skydive menu`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player, cleanup := newAudio(cfg, logger)
	defer cleanup()

	return tui.RunSession(gameID, tui.Options{
		Config: cfg,
		Store:  store,
		Audio:  player,
		Logger: logger,
		Player: currentUser(),
		Seed:   flagSeed,
	}, width, height)
}

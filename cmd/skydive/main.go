// skydive is a terminal skydiving arcade game: jump from a passing plane,
// open your chute and steer onto the landing zone while the wind pushes
// you around. Ten good landings win; three failures end the session.
//
// Usage:
//
//	skydive play             - Play in this terminal
//	skydive menu             - Start menu with high scores
//	skydive serve            - Start SSH server for remote play
//	skydive scores           - Show the best sessions
//	skydive stats            - Show landing statistics
//	skydive config           - Print the effective configuration
//	skydive list             - List the available games
//
// Global flags:
//
//	--seed <value>     - Fix the initial pointer reading for reproducible games
//	--db <path>        - Set database path (default: ~/.skydive/scores.db)
//	--config <path>    - Use a YAML or TOML config file
//	--log-file <path>  - Write the log to a file
//	--debug            - Log transitions and jumps
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skydive/internal/config"
	"github.com/vovakirdan/tui-skydive/internal/storage"

	// Register the game
	_ "github.com/vovakirdan/tui-skydive/internal/games/skydive"
)

const gameID = "skydive"

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skydive",
	Short: "Skydive - a parachute landing arcade game for your terminal",
	Long: `Skydive is a terminal arcade game. A plane crosses the sky; jump at the
right moment, open your chute and steer onto the landing zone while the
wind drifts you off course.

Available commands:
  play     - Play a game directly
  menu     - Start menu with high scores
  serve    - Start SSH server for remote play
  scores   - View the best sessions
  stats    - View landing statistics
  config   - Print the effective configuration
  list     - List the available games

Examples:
  skydive play
  skydive play --backend tcell --mute
  skydive menu
  skydive serve --ssh :2222
  skydive scores --limit 20`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Initial pointer seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skydive/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback; the returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "skydive",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the configuration selected by --config.
func loadConfig(logger *log.Logger) (config.SkydiveConfig, error) {
	cfg, source, err := config.LoadSkydive(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// openStore opens the scores database. Interactive commands keep running
// without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
